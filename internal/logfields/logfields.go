package logfields

import (
	"log/slog"
	"time"
)

// Canonical log field name constants to avoid drift across packages.
const (
	KeyURL        = "url"
	KeyReference  = "reference"
	KeyLocale     = "locale"
	KeyRedirectTo = "redirect_to"
	KeyErrorKind  = "error_kind"
	KeyPath       = "path"
	KeyDurationMS = "duration_ms"
	KeyCount      = "count"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func URL(u string) slog.Attr             { return slog.String(KeyURL, u) }
func Reference(r string) slog.Attr       { return slog.String(KeyReference, r) }
func Locale(l string) slog.Attr          { return slog.String(KeyLocale, l) }
func RedirectTo(u string) slog.Attr      { return slog.String(KeyRedirectTo, u) }
func ErrorKind(k string) slog.Attr       { return slog.String(KeyErrorKind, k) }
func Path(p string) slog.Attr            { return slog.String(KeyPath, p) }
func Count(n int) slog.Attr              { return slog.Int(KeyCount, n) }
func Duration(d time.Duration) slog.Attr { return slog.Float64(KeyDurationMS, float64(d.Microseconds())/1000) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
