package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorPurple = "\033[35m"
	colorWhite  = "\033[37m"
)

type LogType string

const (
	TypeDB     LogType = "DB"
	TypeHTTP   LogType = "HTTP"
	TypeSystem LogType = "SYS"
	TypeError  LogType = "ERR"
)

type CustomHandler struct {
	name   string
	level  slog.Leveler
	out    io.Writer
	mu     *sync.Mutex
	attrs  []slog.Attr
	groups []string
}

// NewHandler returns a colored single-line handler writing to stdout.
func NewHandler(name string, level slog.Leveler) *CustomHandler {
	return NewHandlerWithWriter(name, level, os.Stdout)
}

func NewHandlerWithWriter(name string, level slog.Leveler, out io.Writer) *CustomHandler {
	if level == nil {
		level = slog.LevelInfo
	}
	return &CustomHandler{
		name:   name,
		level:  level,
		out:    out,
		mu:     &sync.Mutex{},
		attrs:  make([]slog.Attr, 0),
		groups: make([]string, 0),
	}
}

func (h *CustomHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *CustomHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)
	return &CustomHandler{
		name:   h.name,
		level:  h.level,
		out:    h.out,
		mu:     h.mu,
		attrs:  merged,
		groups: h.groups,
	}
}

func (h *CustomHandler) WithGroup(name string) slog.Handler {
	groups := make([]string, 0, len(h.groups)+1)
	groups = append(groups, h.groups...)
	return &CustomHandler{
		name:   h.name,
		level:  h.level,
		out:    h.out,
		mu:     h.mu,
		attrs:  h.attrs,
		groups: append(groups, name),
	}
}

func (h *CustomHandler) Handle(_ context.Context, r slog.Record) error {
	timestamp := r.Time.Format("15:04:05")
	if r.Time.IsZero() {
		timestamp = time.Now().Format("15:04:05")
	}

	var levelColor, levelText string
	switch {
	case r.Level >= slog.LevelError:
		levelColor = colorRed
		levelText = "ERROR"
	case r.Level >= slog.LevelWarn:
		levelColor = colorYellow
		levelText = "WARN"
	case r.Level >= slog.LevelInfo:
		levelColor = colorGreen
		levelText = "INFO"
	default:
		levelColor = colorPurple
		levelText = "DEBUG"
	}

	logType := getLogType(&r, h.attrs)
	status := getAttr(&r, "status")
	errorDetails := getAttr(&r, "error")

	message := r.Message
	if r.Level >= slog.LevelError {
		if location := getErrorLocation(&r); location != "" {
			message = fmt.Sprintf("%s (%s)", message, location)
		}
		if errorDetails != "" {
			message = fmt.Sprintf("%s: %s", message, errorDetails)
		}
	}

	if status != "" {
		message = fmt.Sprintf("%s [Status: %s]", message, status)
	}

	var attrs strings.Builder
	prefix := strings.Join(h.groups, ".")
	writeAttr := func(a slog.Attr) {
		if isInternalAttr(a.Key) {
			return
		}
		if a.Key == "error" && r.Level >= slog.LevelError {
			return
		}
		key := a.Key
		if prefix != "" {
			key = prefix + "." + key
		}
		fmt.Fprintf(&attrs, " %s=%v", key, a.Value)
	}
	for _, a := range h.attrs {
		writeAttr(a)
	}
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(a)
		return true
	})

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := fmt.Fprintf(h.out, "%s[%s] [%s] [%s%s%s] [%s] %s%s%s\n",
		colorWhite,
		h.name,
		timestamp,
		levelColor,
		levelText,
		colorWhite,
		logType,
		message,
		attrs.String(),
		colorReset,
	)
	return err
}

func getLogType(r *slog.Record, base []slog.Attr) LogType {
	value := ""
	for _, a := range base {
		if a.Key == "type" {
			value = a.Value.String()
		}
	}
	if v := getAttr(r, "type"); v != "" {
		value = v
	}

	switch value {
	case "db":
		return TypeDB
	case "http":
		return TypeHTTP
	case "error":
		return TypeError
	default:
		return TypeSystem
	}
}

func isInternalAttr(key string) bool {
	switch key {
	case "type", "status", "error_location":
		return true
	}
	return false
}

func getAttr(r *slog.Record, key string) string {
	var value string
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == key {
			value = a.Value.String()
			return false
		}
		return true
	})
	return value
}

func getErrorLocation(r *slog.Record) string {
	if location := getAttr(r, "error_location"); location != "" {
		return location
	}
	if r.PC == 0 {
		return ""
	}
	frames := runtime.CallersFrames([]uintptr{r.PC})
	frame, _ := frames.Next()
	if frame.File == "" {
		return ""
	}
	return fmt.Sprintf("%s:%d", filepath.Base(frame.File), frame.Line)
}
