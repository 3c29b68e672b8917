package dispatcher

import (
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/dshills/quill/internal/editor"
	"github.com/dshills/quill/internal/input/key"
)

// Result describes how an event was dispatched.
type Result struct {
	// Handler is the name of the claiming handler, empty if none claimed.
	Handler string

	// Claimed is true if a handler claimed the event.
	Claimed bool

	// Panic holds a recovered handler panic.
	Panic error
}

// Dispatcher tries handlers in order until one claims an event.
type Dispatcher struct {
	handlers []Handler
	logger   *slog.Logger
	metrics  *Metrics

	recoverPanics bool
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets the logger. Dispatch decisions are logged at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Dispatcher) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// WithMetrics records dispatch statistics in m.
func WithMetrics(m *Metrics) Option {
	return func(d *Dispatcher) {
		d.metrics = m
	}
}

// WithPanicRecovery turns handler panics into unclaimed results carrying
// the panic.
func WithPanicRecovery() Option {
	return func(d *Dispatcher) {
		d.recoverPanics = true
	}
}

// New creates a dispatcher trying handlers in the given order.
func New(handlers []Handler, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		handlers: append([]Handler(nil), handlers...),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Handlers returns the handler names in dispatch order.
func (d *Dispatcher) Handlers() []string {
	names := make([]string, len(d.handlers))
	for i, h := range d.handlers {
		names[i] = h.Name()
	}
	return names
}

// Metrics returns the metrics collector, or nil.
func (d *Dispatcher) Metrics() *Metrics {
	return d.metrics
}

// Dispatch offers ev to each handler in order and stops at the first claim.
func (d *Dispatcher) Dispatch(ev key.Event, st *editor.State) Result {
	start := time.Now()

	var res Result
	for _, h := range d.handlers {
		claimed, err := d.apply(h, ev, st)
		if err != nil {
			res = Result{Handler: h.Name(), Panic: err}
			d.logger.Error("handler panic", "handler", h.Name(), "event", ev.String(), "error", err)
			break
		}
		if claimed {
			res = Result{Handler: h.Name(), Claimed: true}
			break
		}
	}

	if res.Claimed {
		d.logger.Debug("event dispatched", "event", ev.String(), "handler", res.Handler)
	} else if res.Panic == nil {
		d.logger.Debug("event ignored", "event", ev.String())
	}

	if d.metrics != nil {
		d.metrics.RecordDispatch(res, time.Since(start))
	}
	return res
}

func (d *Dispatcher) apply(h Handler, ev key.Event, st *editor.State) (claimed bool, err error) {
	if !d.recoverPanics {
		return h.TryApply(ev, st), nil
	}
	defer func() {
		if r := recover(); r != nil {
			stack := make([]byte, 4096)
			n := runtime.Stack(stack, false)
			claimed = false
			err = fmt.Errorf("handler %s panicked: %v\n%s", h.Name(), r, stack[:n])
		}
	}()
	return h.TryApply(ev, st), nil
}
