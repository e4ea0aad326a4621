package requestid

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/inputguard/pkg/logger"
)

// LoggerExtractor adds a request_id attribute to records logged with a
// request context.
func LoggerExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if requestID := FromContext(ctx); requestID != "" {
			return slog.String("request_id", requestID), true
		}
		return slog.Attr{}, false
	}
}
