package reqlog

import (
	"github.com/rs/zerolog"
)

// Recorder flushes records to the structured log and the daily file. Both
// sinks receive every record; a file write failure is reported on the
// structured log rather than failing the request.
type Recorder struct {
	logger zerolog.Logger
	file   *DailyFile
}

// NewRecorder builds a recorder writing to logger and to per-day files
// under dir (created if absent).
func NewRecorder(logger zerolog.Logger, dir string) (*Recorder, error) {
	file, err := NewDailyFile(dir)
	if err != nil {
		return nil, err
	}
	return &Recorder{logger: logger, file: file}, nil
}

// Request flushes an inbound request record.
func (r *Recorder) Request(rec Record) {
	event := r.logger.Info().
		Str("direction", DirectionRequest).
		Str("request_id", rec.RequestID).
		Str("method", rec.Method).
		Str("path", rec.Path).
		Str("query", rec.Query).
		Str("headers", rec.headerString())
	if rec.Body != "" {
		event = event.Str("body", rec.Body)
	}
	event.Msg("request received")

	r.appendFile(rec)
}

// Response flushes an outgoing response record.
func (r *Recorder) Response(rec Record) {
	event := r.logger.Info().
		Str("direction", DirectionResponse).
		Str("request_id", rec.RequestID).
		Str("method", rec.Method).
		Str("path", rec.Path).
		Int("status", rec.Status).
		Dur("elapsed", rec.Elapsed).
		Str("headers", rec.headerString())
	if rec.Body != "" {
		event = event.Str("body", rec.Body)
	}
	event.Msg("response sent")

	r.appendFile(rec)
}

// Close releases the file sink.
func (r *Recorder) Close() error {
	return r.file.Close()
}

func (r *Recorder) appendFile(rec Record) {
	if err := r.file.Append(rec.fileText()); err != nil {
		r.logger.Error().Err(err).
			Str("request_id", rec.RequestID).
			Msg("failed to append request log file")
	}
}
