package logger

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

type contextKey string

const requestIDKey contextKey = "request_id"

type Options struct {
	// Level reports the minimum level to log; lower levels are discarded.
	Level slog.Leveler

	// TimeFormat is the record timestamp format.
	TimeFormat string

	// NoColor disables ANSI colors, default: false.
	NoColor bool
}

var DefaultOptions = &Options{
	Level:      slog.LevelDebug,
	TimeFormat: time.DateTime,
}

type Handler struct {
	groups []string
	attrs  []slog.Attr

	opts Options

	mu  *sync.Mutex
	out io.Writer
}

// NewHandler creates a new Handler with the specified options. If opts is nil, uses [DefaultOptions].
func NewHandler(out io.Writer, opts *Options) *Handler {
	h := &Handler{out: out, mu: &sync.Mutex{}}
	if opts == nil {
		h.opts = *DefaultOptions
	} else {
		h.opts = *opts
	}
	return h
}

func (h *Handler) clone() *Handler {
	return &Handler{
		groups: h.groups,
		attrs:  h.attrs,
		opts:   h.opts,
		mu:     h.mu,
		out:    h.out,
	}
}

// Enabled implements slog.Handler.Enabled .
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.Level.Level()
}

// Handle implements slog.Handler.Handle .
func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	bf := &bytes.Buffer{}

	if !r.Time.IsZero() {
		fmt.Fprint(bf, h.paint(color.New(color.Faint), r.Time.Format(h.opts.TimeFormat)))
		fmt.Fprint(bf, " ")
	}

	if requestID, ok := RequestIDFromContext(ctx); ok {
		fmt.Fprint(bf, h.paint(color.New(color.FgMagenta), fmt.Sprintf("%d", requestID)))
		fmt.Fprint(bf, " ")
	}

	fmt.Fprint(bf, h.levelBadge(r.Level))
	fmt.Fprint(bf, " ")

	fmt.Fprint(bf, r.Message)

	var attrs []slog.Attr
	attrs = append(attrs, h.attrs...)
	r.Attrs(func(a slog.Attr) bool {
		attrs = append(attrs, a)
		return true
	})

	for _, a := range attrs {
		fmt.Fprint(bf, " ")
		key := a.Key
		if len(h.groups) > 0 {
			key = strings.Join(h.groups, ".") + "." + key
		}
		keyColor := color.New(color.FgCyan)
		if strings.Contains(a.Key, "err") {
			keyColor = color.New(color.FgRed)
		}
		fmt.Fprint(bf, h.paint(keyColor, key+"=")+a.Value.String())
	}

	fmt.Fprint(bf, "\n")

	h.mu.Lock()
	_, err := io.Copy(h.out, bf)
	h.mu.Unlock()

	return err
}

func (h *Handler) levelBadge(level slog.Level) string {
	switch level {
	case slog.LevelDebug:
		return h.paint(color.New(color.BgCyan, color.FgHiWhite), "DEBUG")
	case slog.LevelWarn:
		return h.paint(color.New(color.BgYellow, color.FgHiWhite), "WARN ")
	case slog.LevelError:
		return h.paint(color.New(color.BgRed, color.FgHiWhite), "ERROR")
	default:
		return h.paint(color.New(color.BgGreen, color.FgHiWhite), "INFO ")
	}
}

func (h *Handler) paint(c *color.Color, s string) string {
	if h.opts.NoColor {
		return s
	}
	return c.Sprint(s)
}

// WithGroup implements slog.Handler.WithGroup .
func (h *Handler) WithGroup(name string) slog.Handler {
	h2 := h.clone()
	h2.groups = append(h2.groups, name)
	return h2
}

// WithAttrs implements slog.Handler.WithAttrs .
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	h2 := h.clone()
	h2.attrs = append(h2.attrs, attrs...)
	return h2
}

func Err(err error) slog.Attr {
	return slog.Any("err", err)
}

func ContextWithRequestID(ctx context.Context, requestID int64) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

func RequestIDFromContext(ctx context.Context) (int64, bool) {
	requestID, ok := ctx.Value(requestIDKey).(int64)
	return requestID, ok
}
