// Package script runs the edited buffer as a Lua program.
//
// Each run gets a fresh interpreter with only the base, table, string and
// math libraries. Functions that reach the filesystem or load other code are
// removed, and print writes to a captured buffer instead of the terminal.
// Runs are bounded by the caller's context and by an output limit.
package script

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	lua "github.com/yuin/gopher-lua"
)

// Defaults for a Runner.
const (
	DefaultChunkName     = "main.lua"
	DefaultMaxOutput     = 64 * 1024
	DefaultCallStackSize = 256
)

// Runner executes Lua source.
type Runner struct {
	chunkName     string
	maxOutput     int
	callStackSize int
	logger        *slog.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithChunkName sets the name used in error messages.
func WithChunkName(name string) Option {
	return func(r *Runner) {
		if name != "" {
			r.chunkName = name
		}
	}
}

// WithMaxOutput sets how many bytes print may produce per run.
func WithMaxOutput(n int) Option {
	return func(r *Runner) {
		r.maxOutput = n
	}
}

// WithCallStackSize limits the Lua call depth.
func WithCallStackSize(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.callStackSize = n
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewRunner creates a runner.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		chunkName:     DefaultChunkName,
		maxOutput:     DefaultMaxOutput,
		callStackSize: DefaultCallStackSize,
		logger:        slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes source and returns everything it printed. On failure the
// output printed so far is returned with the error.
func (r *Runner) Run(ctx context.Context, source string) (string, error) {
	L := lua.NewState(lua.Options{
		SkipOpenLibs:  true,
		CallStackSize: r.callStackSize,
	})
	defer L.Close()

	out := &output{limit: r.maxOutput}
	openSafeLibraries(L)
	installSandbox(L, out)
	L.SetContext(ctx)

	fn, err := L.Load(strings.NewReader(source), r.chunkName)
	if err != nil {
		return "", &RunError{Phase: "compile", Err: err}
	}

	L.Push(fn)
	err = callWithRecovery(func() error {
		return L.PCall(0, lua.MultRet, nil)
	})

	switch {
	case err == nil:
		r.logger.Debug("script finished", "chunk", r.chunkName, "output_bytes", out.buf.Len())
		return out.buf.String(), nil
	case out.exceeded:
		err = ErrOutputLimit
	case ctx.Err() != nil:
		err = fmt.Errorf("%w: %w", ErrTimeout, ctx.Err())
	}
	r.logger.Debug("script failed", "chunk", r.chunkName, "error", err)
	return out.buf.String(), &RunError{Phase: "run", Err: err}
}

func callWithRecovery(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("lua panic: %v", r)
		}
	}()
	return fn()
}

// openSafeLibraries opens the libraries that cannot reach outside the
// interpreter. io, os, debug and package stay closed.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}

// errOutputLimit is raised inside the interpreter; Run reports
// ErrOutputLimit instead.
var errOutputLimit = errors.New("output limit exceeded")

type output struct {
	buf      strings.Builder
	limit    int
	exceeded bool
}

func (o *output) write(s string) error {
	if o.limit > 0 && o.buf.Len()+len(s) > o.limit {
		o.exceeded = true
		return errOutputLimit
	}
	o.buf.WriteString(s)
	return nil
}

// installSandbox removes code-loading functions and captures print.
func installSandbox(L *lua.LState, out *output) {
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "require", "module"} {
		L.SetGlobal(name, lua.LNil)
	}

	L.SetGlobal("print", L.NewFunction(func(L *lua.LState) int {
		top := L.GetTop()
		parts := make([]string, top)
		for i := 1; i <= top; i++ {
			parts[i-1] = L.ToStringMeta(L.Get(i)).String()
		}
		if err := out.write(strings.Join(parts, "\t") + "\n"); err != nil {
			L.RaiseError("%s", err.Error())
		}
		return 0
	}))
}
