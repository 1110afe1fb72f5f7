package logger

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"sync"

	"github.com/fatih/color"
)

// PrettyHandler renders records as a single colored line:
//
//	[DEBUG] registry built count=9 (convention.go:52)
type PrettyHandler struct {
	opts    *slog.HandlerOptions
	w       io.Writer
	mu      *sync.Mutex
	attrs   []slog.Attr
	groups  []string
	noColor bool
}

func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if opts == nil {
		opts = &slog.HandlerOptions{}
	}
	return &PrettyHandler{opts: opts, w: w, mu: &sync.Mutex{}}
}

// WithoutColor disables ANSI sequences when off is true.
func (h *PrettyHandler) WithoutColor(off bool) *PrettyHandler {
	c := h.clone()
	c.noColor = off
	return c
}

func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	minLevel := slog.LevelWarn
	if h.opts.Level != nil {
		minLevel = h.opts.Level.Level()
	}
	return level >= minLevel
}

func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	var buf strings.Builder

	buf.WriteString(h.badge(r.Level))
	buf.WriteString(" ")
	buf.WriteString(r.Message)

	for _, a := range h.attrs {
		buf.WriteString(" ")
		buf.WriteString(h.formatAttr(a))
	}
	r.Attrs(func(a slog.Attr) bool {
		buf.WriteString(" ")
		buf.WriteString(h.formatAttr(h.qualify(a)))
		return true
	})

	if h.opts.AddSource && r.PC != 0 {
		frame, _ := runtime.CallersFrames([]uintptr{r.PC}).Next()
		if frame.File != "" {
			buf.WriteString(" ")
			buf.WriteString(h.paint(color.FgHiBlack, "("+filepath.Base(frame.File)+":"+strconv.Itoa(frame.Line)+")"))
		}
	}
	buf.WriteString("\n")

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, buf.String())
	return err
}

func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	c := h.clone()
	for _, a := range attrs {
		c.attrs = append(c.attrs, h.qualify(a))
	}
	return c
}

func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	c := h.clone()
	c.groups = append(c.groups, name)
	return c
}

func (h *PrettyHandler) clone() *PrettyHandler {
	return &PrettyHandler{
		opts:    h.opts,
		w:       h.w,
		mu:      h.mu,
		attrs:   append([]slog.Attr(nil), h.attrs...),
		groups:  append([]string(nil), h.groups...),
		noColor: h.noColor,
	}
}

func (h *PrettyHandler) qualify(a slog.Attr) slog.Attr {
	if len(h.groups) > 0 {
		a.Key = strings.Join(h.groups, ".") + "." + a.Key
	}
	return a
}

func (h *PrettyHandler) badge(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return h.paint(color.FgRed, "[ERROR]")
	case level >= slog.LevelWarn:
		return h.paint(color.FgYellow, "[WARN] ")
	case level >= slog.LevelInfo:
		return h.paint(color.FgCyan, "[INFO] ")
	default:
		return h.paint(color.FgHiBlack, "[DEBUG]")
	}
}

func (h *PrettyHandler) formatAttr(a slog.Attr) string {
	text := a.Key + "=" + a.Value.String()

	switch a.Key {
	case "error", "err":
		return h.paint(color.FgRed, text)
	case "bump", "version", "next":
		return h.paint(color.FgMagenta, text)
	case "count", "total", "skipped":
		return h.paint(color.FgGreen, text)
	default:
		return h.paint(color.FgHiBlack, text)
	}
}

func (h *PrettyHandler) paint(attr color.Attribute, s string) string {
	if h.noColor {
		return s
	}
	c := color.New(attr)
	c.EnableColor()
	return c.Sprint(s)
}
