// Package app wires the editor together and runs its event loop.
package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync/atomic"

	"github.com/spf13/afero"

	"github.com/dshills/quill/internal/config"
	"github.com/dshills/quill/internal/dispatcher"
	"github.com/dshills/quill/internal/editor"
	"github.com/dshills/quill/internal/filestore"
	"github.com/dshills/quill/internal/input"
	"github.com/dshills/quill/internal/input/key"
	"github.com/dshills/quill/internal/renderer"
	"github.com/dshills/quill/internal/renderer/backend"
	"github.com/dshills/quill/internal/renderer/style"
	"github.com/dshills/quill/internal/script"
)

// Terminal is the controlling terminal: an input source that frames are
// written to. A Terminal that also implements io.Closer is closed when the
// Run context is cancelled, which unblocks a pending read. One that
// implements Resizer is polled for size changes after every event, and one
// that also implements WindowSizer is asked for the new size directly
// instead of through a cursor position report.
type Terminal interface {
	input.Source
	io.Writer
}

// Resizer reports whether the terminal changed size since the last call.
type Resizer interface {
	Resized() bool
}

// WindowSizer reports the terminal size in cells.
type WindowSizer interface {
	WindowSize() (width, height int, err error)
}

// topHandlerCount is how many handlers the exit log lists.
const topHandlerCount = 3

// GoodbyeMessage is shown after a clean exit.
const GoodbyeMessage = "Goodbye!"

// Application is the editor: one buffer, one terminal, one loop.
type Application struct {
	opts   Options
	logger *slog.Logger

	state      *editor.State
	screen     *backend.Terminal
	decoder    *key.Decoder
	dispatcher *dispatcher.Dispatcher
	renderer   *renderer.Renderer
	store      *filestore.Store
	runner     *script.Runner

	// runCtx is the parent of programs started from command mode.
	runCtx     context.Context
	cancelRuns context.CancelFunc

	running atomic.Bool
}

// Options configures the application.
type Options struct {
	// Terminal is required.
	Terminal Terminal

	// Config defaults to config.Default().
	Config *config.Config

	// FS holds the edited file. Defaults to the OS filesystem.
	FS afero.Fs

	// Logger defaults to a logger discarding everything.
	Logger *slog.Logger
}

// New creates an application. Nothing is read or drawn until Run.
func New(opts Options) (*Application, error) {
	app := &Application{opts: opts}
	if err := app.bootstrap(); err != nil {
		return nil, err
	}
	return app, nil
}

// Run loads the file, draws the first frame and processes input until the
// user confirms exit, the input fails or ctx is cancelled. On the way out
// the buffer is saved unless transient and a final message is shown.
//
// A malformed terminal size report aborts startup before anything is saved.
// Input errors are returned unless ctx was cancelled. Cancelling ctx also
// stops a running program; programs cannot be run after that.
func (app *Application) Run(ctx context.Context) error {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	if c, ok := app.opts.Terminal.(io.Closer); ok {
		stop := context.AfterFunc(ctx, func() {
			if err := c.Close(); err != nil {
				app.logger.Warn("close terminal", "error", err)
			}
		})
		defer stop()
	}
	stopRuns := context.AfterFunc(ctx, app.cancelRuns)
	defer stopRuns()

	app.load()

	if err := app.resize(); err != nil {
		return err
	}
	if err := app.render(); err != nil {
		return err
	}

	app.logger.Info("editor started", "file", app.store.Path(), "transient", app.state.IsTransient())
	return app.shutdown(app.loop(ctx))
}

// load fills the buffer from the file. A missing file starts an empty
// buffer. Any other failure is reported on the status line and the buffer
// is made transient so the exit save cannot overwrite the unread file.
func (app *Application) load() {
	text, err := app.store.Load()
	switch {
	case err == nil:
		app.state.Buffer().SetContent(text)
	case errors.Is(err, filestore.ErrNotFound):
		app.logger.Info("starting new file", "file", app.store.Path())
	default:
		app.logger.Error("load failed", "error", err)
		app.state.SetError(err.Error())
		app.state.SetTransient(true)
	}
}

func (app *Application) loop(ctx context.Context) error {
	for {
		app.state.ResetStatus()

		ev, err := app.decoder.Next()
		if err != nil {
			if ctx.Err() != nil {
				app.logger.Info("input stopped", "reason", context.Cause(ctx))
				return nil
			}
			return NewOperationError("read input", "", err)
		}

		res := app.dispatcher.Dispatch(ev, app.state)
		if res.Panic != nil {
			app.state.SetError("internal error in " + res.Handler)
		}
		if app.state.IsExitConfirmed() {
			return nil
		}

		if r, ok := app.opts.Terminal.(Resizer); ok && r.Resized() {
			if err := app.windowResize(); err != nil {
				return err
			}
		}
		if err := app.render(); err != nil {
			return err
		}
	}
}

// resize queries the terminal size. The query moves the terminal cursor;
// the next flush puts it back.
func (app *Application) resize() error {
	w, h, err := backend.QuerySize(app.opts.Terminal, app.opts.Terminal)
	if err != nil {
		return NewOperationError("query terminal size", "", err)
	}
	app.screen.SetSize(w, h)
	app.logger.Debug("terminal size", "width", w, "height", h)
	return nil
}

// windowResize picks up a size change. The terminal is asked directly when
// it can say; otherwise the size is queried like at startup, which fails if
// keys typed since the resize arrive ahead of the report.
func (app *Application) windowResize() error {
	ws, ok := app.opts.Terminal.(WindowSizer)
	if !ok {
		return app.resize()
	}
	w, h, err := ws.WindowSize()
	if err != nil || w < 1 || h < 1 {
		app.logger.Warn("window size unavailable, querying terminal", "error", err)
		return app.resize()
	}
	app.screen.SetSize(w-1, h-1)
	app.logger.Debug("terminal size", "width", w-1, "height", h-1)
	return nil
}

// render lays out, draws and flushes one frame.
func (app *Application) render() error {
	l := app.renderer.Layout(app.screen, app.state)
	view := app.state.View()
	view.SetSize(l.ViewSize())
	view.Update(app.state.Buffer())

	app.screen.Clear()
	app.renderer.Draw(app.screen, app.state, app.decoder.Trace())
	if err := app.screen.Flush(); err != nil {
		return NewOperationError("draw", "", err)
	}
	return nil
}

// shutdown saves the buffer and replaces the editor with the final message.
func (app *Application) shutdown(loopErr error) error {
	err := loopErr
	if !app.state.IsTransient() {
		if saveErr := app.store.Save(app.state.Buffer().Text()); saveErr != nil {
			err = errors.Join(err, NewOperationError("save", app.store.Path(), saveErr))
		}
	}

	snap := app.dispatcher.Metrics().Snapshot()
	app.logger.Info("editor stopped",
		"dispatches", snap.TotalDispatches,
		"ignored", snap.TotalIgnored,
		"panics", snap.TotalPanics,
		"avg_dispatch", snap.AverageDuration,
		"handlers", snap.HandlerCount,
		"error", err,
	)
	for _, hm := range app.dispatcher.Metrics().TopHandlers(topHandlerCount) {
		app.logger.Info("handler stats",
			"handler", hm.Name,
			"claims", hm.ClaimCount,
			"panics", hm.PanicCount,
			"max_duration", hm.MaxDuration,
		)
	}

	msg := GoodbyeMessage
	if err != nil {
		msg = err.Error()
	}
	app.screen.Clear()
	for i, line := range strings.Split(msg, "\n") {
		app.screen.SetCursor(0, i)
		app.screen.Write(style.ExitMessage, line)
	}
	if flushErr := app.screen.Flush(); flushErr != nil {
		app.logger.Warn("final frame not shown", "error", flushErr)
	}
	return err
}
