// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package netutil provides HTTP I/O helpers shared by the techfeed API
// client and the fixture backend.
//
// Response helpers (ReadResponse, DecodeResponse, ErrorBody) bound body
// reads at MaxResponseSize so a misbehaving server cannot exhaust
// memory. WriteJSON is the server-side counterpart used by the fixture
// backend's handlers.
package netutil

import (
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
)

// MaxResponseSize bounds response body reads: 8 MB. Subscription API
// responses are candidate lists and status objects measured in
// kilobytes.
const MaxResponseSize int64 = 8 << 20

// RequestIDHeader carries the per-request correlation ID between the
// client and the backend logs.
const RequestIDHeader = "X-Request-ID"

// ReadResponse reads a response body up to MaxResponseSize bytes.
func ReadResponse(body io.Reader) ([]byte, error) {
	return io.ReadAll(io.LimitReader(body, MaxResponseSize))
}

// DecodeResponse reads a JSON response body (up to MaxResponseSize
// bytes) and decodes it into v.
func DecodeResponse(body io.Reader, v any) error {
	data, err := ReadResponse(body)
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decoding response body: %w", err)
	}
	return nil
}

// ErrorBody reads an error response body for diagnostics. Read errors
// are ignored; a partial body is still useful in an error message.
func ErrorBody(body io.Reader) string {
	data, _ := ReadResponse(body)
	return string(data)
}

// IsJSON reports whether a Content-Type header value names JSON.
func IsJSON(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "application/json"
}

// WriteJSON writes v as a JSON response with the given status code.
// Encoding errors after the header is written cannot be reported to
// the client and are returned for logging.
func WriteJSON(writer http.ResponseWriter, status int, v any) error {
	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(status)
	return json.NewEncoder(writer).Encode(v)
}
