package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/vfg2006/fee-tracker-api/pkg/log"
)

// slowRequestThreshold marca requisições lentas no log
const slowRequestThreshold = 500 * time.Millisecond

// Sondas de infraestrutura só aparecem no nível debug
var quietPaths = map[string]bool{
	"/healthcheck": true,
	"/metrics":     true,
}

// LoggingMiddleware registra início e fim de cada requisição HTTP com o ID de correlação
func LoggingMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, correlationID := log.WithCorrelationID(r.Context(), r.Header.Get(log.CorrelationIDHeader))
			r = r.WithContext(ctx)
			w.Header().Set(log.CorrelationIDHeader, correlationID)

			lrw := newLoggingResponseWriter(w)
			startTime := time.Now()
			quiet := quietPaths[r.URL.Path]

			if !quiet {
				log.L.WithFields(requestFields(r, correlationID)).Info("Requisição iniciada")
			}

			next.ServeHTTP(lrw, r)

			elapsed := time.Since(startTime)
			logger := log.L.WithFields(log.Fields{
				"correlation_id": correlationID,
				"method":         r.Method,
				"path":           r.URL.Path,
				"status_code":    lrw.statusCode,
				"duration_ms":    elapsed.Milliseconds(),
			})

			msg := completionMessage(lrw.statusCode, elapsed)
			switch {
			case lrw.statusCode >= http.StatusInternalServerError:
				logger.Error(msg)
			case lrw.statusCode >= http.StatusBadRequest:
				logger.Warn(msg)
			case quiet:
				logger.Debug(msg)
			default:
				logger.Info(msg)
			}

			if elapsed > slowRequestThreshold {
				logger.Warnf("Requisição lenta: %s %s", r.Method, formatDuration(elapsed))
			}
		})
	}
}

func requestFields(r *http.Request, correlationID string) log.Fields {
	fields := log.Fields{
		"correlation_id": correlationID,
		"method":         r.Method,
		"path":           r.URL.Path,
	}
	if log.IsDevelopment() {
		return fields
	}

	fields["remote_addr"] = r.RemoteAddr
	fields["query"] = r.URL.RawQuery
	fields["user_agent"] = r.UserAgent()
	if r.ContentLength > 0 {
		fields["content_type"] = r.Header.Get("Content-Type")
		fields["content_length"] = r.ContentLength
	}
	return fields
}

func completionMessage(status int, elapsed time.Duration) string {
	if !log.IsDevelopment() {
		return "Requisição finalizada"
	}
	symbol := "✓"
	if status >= http.StatusBadRequest {
		symbol = "✗"
	}
	return fmt.Sprintf("%s %d em %s", symbol, status, formatDuration(elapsed))
}

func formatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%d µs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%d ms", d.Milliseconds())
	default:
		return fmt.Sprintf("%.2f s", d.Seconds())
	}
}

// loggingResponseWriter captura o status code enviado pelo handler
type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func newLoggingResponseWriter(w http.ResponseWriter) *loggingResponseWriter {
	return &loggingResponseWriter{w, http.StatusOK}
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}
