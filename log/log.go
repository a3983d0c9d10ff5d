// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package log is the structured logging facade of the ledger, built on go-ethereum's slog based logger.
// Package level loggers created with WithContext follow handler changes made later with SetHandler.
package log

import (
	"context"
	"io"
	"log/slog"
	"os"
	"slices"
	"sync/atomic"

	ethlog "github.com/ethereum/go-ethereum/log"
)

// Logger writes key/value pairs to a Handler.
type Logger = ethlog.Logger

// Levels, aligned with go-ethereum.
const (
	LevelTrace = ethlog.LevelTrace
	LevelDebug = ethlog.LevelDebug
	LevelInfo  = ethlog.LevelInfo
	LevelWarn  = ethlog.LevelWarn
	LevelError = ethlog.LevelError
	LevelCrit  = ethlog.LevelCrit
)

var (
	current atomic.Pointer[slog.Handler]
	root    Logger
)

func init() {
	SetHandler(NewTerminalHandler(os.Stderr, 3, false))
	root = ethlog.NewLogger(&dynamicHandler{})
}

// SetHandler replaces the handler of every logger of the package.
func SetHandler(h slog.Handler) {
	current.Store(&h)
}

// Handler returns the handler in use.
func Handler() slog.Handler {
	return *current.Load()
}

// Root returns the root logger.
func Root() Logger {
	return root
}

// WithContext returns a logger carrying ctx on every record.
func WithContext(ctx ...any) Logger {
	return root.With(ctx...)
}

// NewTerminalHandler returns a human readable handler. verbosity follows the legacy scale:
// 0 crit, 1 error, 2 warn, 3 info, 4 debug, 5 trace.
func NewTerminalHandler(w io.Writer, verbosity int, color bool) slog.Handler {
	return ethlog.NewTerminalHandlerWithLevel(w, ethlog.FromLegacyLevel(verbosity), color)
}

// JSONHandler returns a handler writing one JSON object per record.
func JSONHandler(w io.Writer) slog.Handler {
	return ethlog.JSONHandler(w)
}

// DiscardHandler returns a handler dropping every record.
func DiscardHandler() slog.Handler {
	return ethlog.DiscardHandler()
}

func Trace(msg string, ctx ...any) { root.Trace(msg, ctx...) }
func Debug(msg string, ctx ...any) { root.Debug(msg, ctx...) }
func Info(msg string, ctx ...any)  { root.Info(msg, ctx...) }
func Warn(msg string, ctx ...any)  { root.Warn(msg, ctx...) }
func Error(msg string, ctx ...any) { root.Error(msg, ctx...) }

// dynamicHandler resolves the current handler for each record.
type dynamicHandler struct {
	attrs []slog.Attr
}

func (h *dynamicHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return Handler().Enabled(ctx, level)
}

func (h *dynamicHandler) Handle(ctx context.Context, r slog.Record) error {
	target := Handler()
	if len(h.attrs) > 0 {
		target = target.WithAttrs(h.attrs)
	}
	return target.Handle(ctx, r)
}

func (h *dynamicHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &dynamicHandler{attrs: append(slices.Clip(h.attrs), attrs...)}
}

func (h *dynamicHandler) WithGroup(_ string) slog.Handler {
	return h
}
