package app

import (
	"context"
	"errors"

	"github.com/spf13/afero"

	"github.com/dshills/quill/internal/config"
	"github.com/dshills/quill/internal/dispatcher"
	"github.com/dshills/quill/internal/dispatcher/handlers"
	"github.com/dshills/quill/internal/editor"
	"github.com/dshills/quill/internal/filestore"
	"github.com/dshills/quill/internal/input/key"
	"github.com/dshills/quill/internal/renderer"
	"github.com/dshills/quill/internal/renderer/backend"
	"github.com/dshills/quill/internal/renderer/highlight"
	"github.com/dshills/quill/internal/script"
)

// bootstrap initializes all components in dependency order.
func (app *Application) bootstrap() error {
	opts := &app.opts
	if opts.Terminal == nil {
		return &InitError{Component: "terminal", Err: errors.New("no terminal")}
	}
	if opts.Config == nil {
		opts.Config = config.Default()
	}
	if opts.FS == nil {
		opts.FS = afero.NewOsFs()
	}
	if opts.Logger == nil {
		opts.Logger, _ = NewLogger(config.LogConfig{})
	}
	cfg := opts.Config
	app.logger = WithComponent(opts.Logger, "app")

	// 1. Theme
	theme, err := cfg.BuildTheme()
	if err != nil {
		return &InitError{Component: "theme", Err: err}
	}

	// 2. Editor state and screen
	app.state = editor.New()
	app.state.SetTransient(cfg.Transient)
	app.screen = backend.NewTerminal(opts.Terminal, theme)

	// 3. Persistence and the run command backend
	app.store = filestore.New(opts.FS, cfg.File)
	app.runner = script.NewRunner(
		script.WithChunkName(cfg.File),
		script.WithMaxOutput(cfg.Run.MaxOutput),
		script.WithCallStackSize(cfg.Run.CallStackSize),
		script.WithLogger(WithComponent(opts.Logger, "script")),
	)

	// 4. Input and dispatch. Runs are cancelled with the Run context.
	app.runCtx, app.cancelRuns = context.WithCancel(context.Background())
	app.decoder = key.NewDecoder(opts.Terminal)
	app.dispatcher = dispatcher.New(
		handlers.Default(opts.Terminal, handlers.CommandConfig{
			Saver:    app.store,
			Runner:   app.runner,
			FileName: cfg.File,
			Timeout:  cfg.Run.Timeout,
			Context:  app.runCtx,
		}),
		dispatcher.WithLogger(WithComponent(opts.Logger, "dispatcher")),
		dispatcher.WithMetrics(dispatcher.NewMetrics()),
		dispatcher.WithPanicRecovery(),
	)

	// 5. Renderer
	hl := highlight.New(cfg.Language, cfg.File)
	app.renderer = renderer.New(cfg.File, hl)

	app.logger.Debug("bootstrap complete",
		"file", cfg.File,
		"language", hl.Language(),
		"handlers", app.dispatcher.Handlers(),
	)
	return nil
}
