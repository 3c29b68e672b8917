package dispatcher

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/quill/internal/editor"
	"github.com/dshills/quill/internal/input/key"
)

type funcHandler struct {
	name string
	fn   func(key.Event, *editor.State) bool
}

func (f funcHandler) Name() string { return f.name }

func (f funcHandler) TryApply(ev key.Event, st *editor.State) bool { return f.fn(ev, st) }

func claimOn(name string, k key.Key, calls *[]string) Handler {
	return funcHandler{name, func(ev key.Event, _ *editor.State) bool {
		*calls = append(*calls, name)
		return ev.Key == k
	}}
}

func TestDispatchFirstClaimWins(t *testing.T) {
	var calls []string
	d := New([]Handler{
		claimOn("a", key.KeyUp, &calls),
		claimOn("b", key.KeyDown, &calls),
		claimOn("c", key.KeyDown, &calls),
	})

	res := d.Dispatch(key.NewSpecialEvent(key.KeyDown), editor.New())

	assert.Equal(t, Result{Handler: "b", Claimed: true}, res)
	assert.Equal(t, []string{"a", "b"}, calls)
}

func TestDispatchUnclaimed(t *testing.T) {
	var calls []string
	d := New([]Handler{claimOn("a", key.KeyUp, &calls)})

	res := d.Dispatch(key.NewCharEvent('x'), editor.New())

	assert.False(t, res.Claimed)
	assert.Empty(t, res.Handler)
	assert.Equal(t, []string{"a"}, calls)
}

func TestDispatchRecoversPanics(t *testing.T) {
	var logs bytes.Buffer
	m := NewMetrics()
	d := New([]Handler{
		funcHandler{"boom", func(key.Event, *editor.State) bool { panic("bad state") }},
		funcHandler{"never", func(key.Event, *editor.State) bool { return true }},
	},
		WithPanicRecovery(),
		WithMetrics(m),
		WithLogger(slog.New(slog.NewTextHandler(&logs, nil))),
	)

	res := d.Dispatch(key.NewCharEvent('x'), editor.New())

	assert.False(t, res.Claimed)
	assert.Equal(t, "boom", res.Handler)
	require.Error(t, res.Panic)
	assert.Contains(t, res.Panic.Error(), "bad state")
	assert.Contains(t, logs.String(), "handler panic")
	assert.Equal(t, uint64(1), m.Snapshot().TotalPanics)
	top := m.TopHandlers(1)
	require.Len(t, top, 1)
	assert.Equal(t, uint64(1), top[0].PanicCount)
}

func TestMetrics(t *testing.T) {
	m := NewMetrics()
	var calls []string
	d := New([]Handler{
		claimOn("up", key.KeyUp, &calls),
		claimOn("down", key.KeyDown, &calls),
	}, WithMetrics(m))
	st := editor.New()

	d.Dispatch(key.NewSpecialEvent(key.KeyDown), st)
	d.Dispatch(key.NewSpecialEvent(key.KeyDown), st)
	d.Dispatch(key.NewSpecialEvent(key.KeyUp), st)
	d.Dispatch(key.NewCharEvent('x'), st)

	assert.Same(t, m, d.Metrics())
	snap := m.Snapshot()
	assert.Equal(t, uint64(4), snap.TotalDispatches)
	assert.Equal(t, uint64(1), snap.TotalIgnored)
	assert.Equal(t, 2, snap.HandlerCount)

	top := m.TopHandlers(5)
	require.Len(t, top, 2)
	assert.Equal(t, "down", top[0].Name)
	assert.Equal(t, uint64(2), top[0].ClaimCount)
	assert.Equal(t, "up", top[1].Name)
	assert.Len(t, m.TopHandlers(1), 1)
	assert.Empty(t, m.TopHandlers(-1))

	top[0].ClaimCount = 99
	assert.Equal(t, uint64(2), m.TopHandlers(1)[0].ClaimCount)
}
