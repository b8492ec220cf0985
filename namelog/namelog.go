// Package namelog attaches extracted type names to structured log
// records, for zap and slog.
//
//	logger.Info("handling message",
//	    namelog.FieldOf(msg),
//	)
package namelog

import (
	"log/slog"

	"go.uber.org/zap"

	"github.com/namekit/typename"
)

// Key is the attribute key under which type names are logged.
const Key = "type"

// Field returns a zap field holding T's extracted name under [Key].
func Field[T any]() zap.Field {
	return zap.Stringer(Key, typename.For[T]())
}

// FieldOf returns a zap field holding the extracted name of v's dynamic
// type under [Key]. A nil v produces a no-op field.
func FieldOf(v any) zap.Field {
	n := typename.Of(v)
	if n == nil {
		return zap.Skip()
	}
	return zap.Stringer(Key, n)
}

// Attr returns a slog attribute holding T's extracted name under [Key].
func Attr[T any]() slog.Attr {
	return slog.Any(Key, typename.For[T]())
}

// AttrOf returns a slog attribute holding the extracted name of v's
// dynamic type under [Key]. A nil v produces an empty name.
func AttrOf(v any) slog.Attr {
	n := typename.Of(v)
	if n == nil {
		return slog.String(Key, "")
	}
	return slog.Any(Key, n)
}
