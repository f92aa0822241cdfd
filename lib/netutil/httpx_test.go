// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package netutil

import (
	"bytes"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestReadResponse(t *testing.T) {
	t.Run("normal body", func(t *testing.T) {
		data, err := ReadResponse(bytes.NewReader([]byte(`{"status":"success"}`)))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(data) != `{"status":"success"}` {
			t.Fatalf("got %q", data)
		}
	})

	t.Run("read error propagates", func(t *testing.T) {
		if _, err := ReadResponse(&failReader{}); err == nil {
			t.Fatal("expected error from failing reader")
		}
	})

	t.Run("bounded", func(t *testing.T) {
		oversized := strings.NewReader(strings.Repeat("x", int(MaxResponseSize)+10))
		data, err := ReadResponse(oversized)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if int64(len(data)) != MaxResponseSize {
			t.Fatalf("read %d bytes, want %d", len(data), MaxResponseSize)
		}
	})
}

func TestDecodeResponse(t *testing.T) {
	t.Run("valid JSON", func(t *testing.T) {
		var companies []struct {
			Company string `json:"company"`
		}
		body := bytes.NewReader([]byte(`[{"company":"Netflix"},{"company":"Airbnb"}]`))
		if err := DecodeResponse(body, &companies); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(companies) != 2 || companies[1].Company != "Airbnb" {
			t.Fatalf("decoded %+v", companies)
		}
	})

	t.Run("invalid JSON", func(t *testing.T) {
		if err := DecodeResponse(strings.NewReader(`<html>`), &struct{}{}); err == nil {
			t.Fatal("expected error for invalid JSON")
		}
	})

	t.Run("read error", func(t *testing.T) {
		if err := DecodeResponse(&failReader{}, &struct{}{}); err == nil {
			t.Fatal("expected error from failing reader")
		}
	})
}

func TestErrorBody(t *testing.T) {
	if got := ErrorBody(strings.NewReader("bad gateway")); got != "bad gateway" {
		t.Fatalf("got %q", got)
	}
	if got := ErrorBody(&failReader{}); got != "" {
		t.Fatalf("got %q from failing reader, want empty", got)
	}
}

func TestIsJSON(t *testing.T) {
	tests := map[string]bool{
		"application/json":                true,
		"application/json; charset=utf-8": true,
		"text/html":                       false,
		"":                                false,
		"application/jsonx":               false,
	}
	for contentType, want := range tests {
		if got := IsJSON(contentType); got != want {
			t.Errorf("IsJSON(%q) = %v, want %v", contentType, got, want)
		}
	}
}

func TestWriteJSON(t *testing.T) {
	recorder := httptest.NewRecorder()
	if err := WriteJSON(recorder, 404, map[string]string{"status": "error"}); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	if recorder.Code != 404 {
		t.Errorf("status = %d, want 404", recorder.Code)
	}
	if !IsJSON(recorder.Header().Get("Content-Type")) {
		t.Errorf("content type = %q", recorder.Header().Get("Content-Type"))
	}
	if body := strings.TrimSpace(recorder.Body.String()); body != `{"status":"error"}` {
		t.Errorf("body = %q", body)
	}
}

type failReader struct{}

func (failReader) Read([]byte) (int, error) {
	return 0, fmt.Errorf("simulated read failure")
}
