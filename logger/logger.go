package logger

import (
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
)

// Fields represents structured log fields
type Fields map[string]interface{}

// Init sets up Sentry when a DSN is given. Logging works without it.
func Init(dsn, environment string) error {
	if dsn == "" {
		return nil
	}
	return sentry.Init(sentry.ClientOptions{
		Dsn:         dsn,
		Environment: environment,
	})
}

// Flush waits for buffered Sentry events before exit.
func Flush() {
	sentry.Flush(2 * time.Second)
}

func breadcrumb(kind string, level sentry.Level, msg string, fields Fields) {
	if hub := sentry.CurrentHub(); hub.Client() != nil {
		sentry.AddBreadcrumb(&sentry.Breadcrumb{
			Type:     kind,
			Category: "log",
			Message:  msg,
			Data:     fields,
			Level:    level,
		})
	}
}

func Info(msg string, fields Fields) {
	log.Printf("[INFO] %s %v", msg, formatFields(fields))
	breadcrumb("info", sentry.LevelInfo, msg, fields)
}

func Warn(msg string, fields Fields) {
	log.Printf("[WARN] %s %v", msg, formatFields(fields))
	breadcrumb("warning", sentry.LevelWarning, msg, fields)
}

func Debug(msg string, fields Fields) {
	log.Printf("[DEBUG] %s %v", msg, formatFields(fields))
	breadcrumb("debug", sentry.LevelDebug, msg, fields)
}

// Error logs an error message with structured fields and sends to Sentry
func Error(msg string, err error, fields Fields) {
	log.Printf("[ERROR] %s: %v %v", msg, err, formatFields(fields))

	if hub := sentry.CurrentHub(); hub.Client() != nil {
		hub.WithScope(func(scope *sentry.Scope) {
			for key, value := range fields {
				scope.SetContext(key, map[string]interface{}{
					"value": value,
				})
			}
			if requestID, ok := fields["request_id"].(string); ok {
				scope.SetTag("request_id", requestID)
			}
			hub.CaptureException(err)
		})
	}
}

// formatFields renders fields as {k=v, ...} with keys sorted.
func formatFields(fields Fields) string {
	if len(fields) == 0 {
		return ""
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+formatValue(fields[k]))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func formatValue(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return fmt.Sprintf("%.2f", val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
