package middleware

import (
	"bytes"
	"io"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/user-management-api/internal/reqlog"
	"github.com/deppfellow/user-management-api/internal/server"
)

// RequestLogger is the innermost middleware layer. It records the inbound
// request before the handler runs and the outgoing response after the
// handler completes, tee-ing the response body as it is written.
type RequestLogger struct {
	server *server.Server
}

func NewRequestLogger(s *server.Server) *RequestLogger {
	return &RequestLogger{server: s}
}

func (l *RequestLogger) Capture() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := GetRequestID(c)
			req := c.Request()

			l.server.Recorder.Request(reqlog.FromRequest(req, requestID))

			resBody := new(bytes.Buffer)
			res := c.Response()
			res.Writer = &captureWriter{
				Writer:         io.MultiWriter(res.Writer, resBody),
				ResponseWriter: res.Writer,
			}

			start := RequestStart(c)
			// Flush in a defer so a response record exists even when the
			// handler panics; the boundary above fills in the client reply.
			// On error paths the status captured here predates the
			// boundary's write, so it is echo's default, not the final 500.
			defer func() {
				l.server.Recorder.Response(reqlog.Record{
					RequestID: requestID,
					Direction: reqlog.DirectionResponse,
					Method:    req.Method,
					Path:      req.URL.Path,
					Headers:   res.Header().Clone(),
					Body:      resBody.String(),
					Status:    res.Status,
					Elapsed:   time.Since(start),
				})
			}()

			return next(c)
		}
	}
}

// captureWriter duplicates everything written to the client into a buffer.
// The embedded ResponseWriter keeps the original header map and any
// optional interfaces reachable; Write is redirected through the tee.
type captureWriter struct {
	io.Writer
	http.ResponseWriter
}

func (w *captureWriter) Write(b []byte) (int, error) {
	return w.Writer.Write(b)
}

func (w *captureWriter) WriteHeader(status int) {
	w.ResponseWriter.WriteHeader(status)
}

func (w *captureWriter) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}
