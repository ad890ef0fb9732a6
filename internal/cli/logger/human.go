package logger

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"
)

const humanTimeLayout = "2006/01/02 15:04:05"

// HumanTextHandler writes records as "LEVEL message key=value...", optionally
// prefixed by the local time.
type HumanTextHandler struct {
	logTime bool
	w       io.Writer
	opts    slog.HandlerOptions

	h  slog.Handler
	b  *bytes.Buffer
	mu *sync.Mutex
}

var _ slog.Handler = (*HumanTextHandler)(nil)

func NewHumanTextHandler(w io.Writer, opts *slog.HandlerOptions,
	logTime bool,
) *HumanTextHandler {
	if opts == nil {
		opts = &slog.HandlerOptions{}
	}

	self := &HumanTextHandler{
		logTime: logTime,
		w:       w,
		opts:    *opts,
		b:       new(bytes.Buffer),
		mu:      new(sync.Mutex),
	}

	textOpts := self.opts
	textOpts.ReplaceAttr = self.replace
	self.h = slog.NewTextHandler(self.b, &textOpts)
	return self
}

func (self *HumanTextHandler) replace(groups []string, a slog.Attr) slog.Attr {
	if len(groups) == 0 {
		switch a.Key {
		case slog.TimeKey, slog.LevelKey, slog.MessageKey:
			return slog.Attr{}
		}
	}
	if self.opts.ReplaceAttr != nil {
		return self.opts.ReplaceAttr(groups, a)
	}
	return a
}

func (self *HumanTextHandler) Enabled(ctx context.Context, level slog.Level,
) bool {
	return self.h.Enabled(ctx, level)
}

func (self *HumanTextHandler) Handle(ctx context.Context, r slog.Record) error {
	self.mu.Lock()
	defer self.mu.Unlock()
	defer self.b.Reset()

	if self.logTime {
		t := r.Time
		if t.IsZero() {
			t = time.Now()
		}
		self.b.WriteString(t.Format(humanTimeLayout))
		self.b.WriteByte(' ')
	}
	self.b.WriteString(r.Level.String())
	self.b.WriteByte(' ')
	self.b.WriteString(r.Message)
	self.b.WriteByte(' ')

	if err := self.h.Handle(ctx, r); err != nil {
		return fmt.Errorf("logger: failed slog handler: %w", err)
	}

	line := append(bytes.TrimSpace(self.b.Bytes()), '\n')
	if _, err := self.w.Write(line); err != nil {
		return fmt.Errorf("logger: failed write formatted entry: %w", err)
	}
	return nil
}

func (self *HumanTextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	h := *self
	h.h = self.h.WithAttrs(attrs)
	return &h
}

func (self *HumanTextHandler) WithGroup(name string) slog.Handler {
	h := *self
	h.h = self.h.WithGroup(name)
	return &h
}
