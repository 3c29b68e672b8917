package handlers

import (
	"context"
	"strings"
	"time"

	"github.com/dshills/quill/internal/editor"
	"github.com/dshills/quill/internal/input/key"
)

// Saver persists the buffer text.
type Saver interface {
	Save(text string) error
}

// Runner executes the buffer text as a program and returns its output.
type Runner interface {
	Run(ctx context.Context, source string) (string, error)
}

// DefaultRunTimeout bounds a run started from command mode.
const DefaultRunTimeout = 2 * time.Second

// Command runs single-key commands in command mode: s saves the buffer and
// r runs it. Results are reported through the status line.
type Command struct {
	saver    Saver
	runner   Runner
	fileName string
	timeout  time.Duration
	base     context.Context
}

// CommandConfig configures a Command handler. A nil Saver or Runner leaves
// the corresponding command unclaimed.
type CommandConfig struct {
	Saver    Saver
	Runner   Runner
	FileName string
	Timeout  time.Duration

	// Context is the parent of every run; cancelling it stops a running
	// program. Nil means context.Background.
	Context context.Context
}

// NewCommand creates a command handler.
func NewCommand(cfg CommandConfig) *Command {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultRunTimeout
	}
	if cfg.Context == nil {
		cfg.Context = context.Background()
	}
	return &Command{
		saver:    cfg.Saver,
		runner:   cfg.Runner,
		fileName: cfg.FileName,
		timeout:  cfg.Timeout,
		base:     cfg.Context,
	}
}

// Name implements dispatcher.Handler.
func (*Command) Name() string { return "command" }

// TryApply implements dispatcher.Handler.
func (c *Command) TryApply(ev key.Event, st *editor.State) bool {
	if !ev.IsChar() || st.Mode() != editor.ModeCommand {
		return false
	}
	switch ev.Char {
	case 's', 'S':
		if c.saver == nil {
			return false
		}
		c.save(st)
		return true
	case 'r', 'R':
		if c.runner == nil {
			return false
		}
		c.run(st)
		return true
	}
	return false
}

func (c *Command) save(st *editor.State) {
	if st.IsTransient() {
		st.SetError("transient buffer is not saved")
		return
	}
	if err := c.saver.Save(st.Buffer().Text()); err != nil {
		st.SetError(err.Error())
		return
	}
	st.SetInfo("saved " + c.fileName)
}

func (c *Command) run(st *editor.State) {
	ctx, cancel := context.WithTimeout(c.base, c.timeout)
	defer cancel()

	out, err := c.runner.Run(ctx, st.Buffer().Text())
	if err != nil {
		st.SetError(firstLine(err.Error()))
		return
	}
	if line := firstLine(out); line != "" {
		st.SetInfo(line)
		return
	}
	st.SetInfo("program finished")
}

func firstLine(s string) string {
	s = strings.TrimLeft(s, "\n")
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
