// Package reqlog builds and flushes request/response log records.
//
// Every request produces exactly two records: one for the inbound request
// and one for the outgoing response. Records are constructed, flushed to the
// structured log and the daily log file, and never read back. The recorder
// is shared so the authentication gate can emit records for requests it
// rejects before they reach the logging middleware.
package reqlog

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"
)

// Directions of a record.
const (
	DirectionRequest  = "request"
	DirectionResponse = "response"
)

// Record is one request or response log record.
type Record struct {
	RequestID string
	Direction string
	Method    string
	Path      string
	Query     string
	Headers   http.Header
	Body      string

	// Response-only fields.
	Status  int
	Elapsed time.Duration
}

// bodyMethods are the verbs that conventionally carry a request body worth
// logging.
var bodyMethods = map[string]bool{
	http.MethodPost: true,
	http.MethodPut:  true,
}

// FromRequest captures an inbound request as a record. For body-carrying
// methods the body is read and then restored, so downstream consumers see
// the identical, fully readable stream.
func FromRequest(req *http.Request, requestID string) Record {
	rec := Record{
		RequestID: requestID,
		Direction: DirectionRequest,
		Method:    req.Method,
		Path:      req.URL.Path,
		Query:     req.URL.RawQuery,
		Headers:   req.Header.Clone(),
	}

	if bodyMethods[req.Method] && req.Body != nil {
		if body, err := io.ReadAll(req.Body); err == nil {
			rec.Body = string(body)
			req.Body = io.NopCloser(bytes.NewReader(body))
		}
	}

	return rec
}

// headerString flattens the header set into "Name=v1;v2, Name2=v3" form,
// sorted by name so output is deterministic.
func (r Record) headerString() string {
	names := make([]string, 0, len(r.Headers))
	for name := range r.Headers {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+"="+strings.Join(r.Headers[name], ";"))
	}
	return strings.Join(parts, ", ")
}

// fileText renders the record as the multi-line block appended to the daily
// log file.
func (r Record) fileText() string {
	var b strings.Builder

	switch r.Direction {
	case DirectionResponse:
		fmt.Fprintf(&b, "[RESPONSE %s]\n", r.RequestID)
		fmt.Fprintf(&b, "Status Code: %d\n", r.Status)
		fmt.Fprintf(&b, "Elapsed Time: %d ms\n", r.Elapsed.Milliseconds())
	default:
		fmt.Fprintf(&b, "[REQUEST %s]\n", r.RequestID)
		fmt.Fprintf(&b, "Method: %s\n", r.Method)
		fmt.Fprintf(&b, "Path: %s\n", r.Path)
		fmt.Fprintf(&b, "Query: %s\n", r.Query)
	}

	fmt.Fprintf(&b, "Headers: %s\n", r.headerString())
	if r.Body != "" {
		fmt.Fprintf(&b, "Body: %s\n", r.Body)
	}

	return b.String()
}
