// Package middleware holds the request pipeline: correlation id assignment,
// the error boundary, the token authentication gate, and the
// request/response logger.
//
// For a single request the three main layers always execute in the fixed
// order error boundary -> authentication gate -> request/response logger ->
// handler, and unwind in reverse. The ordering is a correctness requirement:
// the boundary must see every downstream failure, and authentication
// outcomes must be observable in the request log.
package middleware
