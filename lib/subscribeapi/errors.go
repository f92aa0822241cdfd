// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package subscribeapi

import "fmt"

// StatusError is returned when the backend answers with a non-2xx
// status and no decodable result body.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s %s: HTTP %d", e.Method, e.Path, e.StatusCode)
	}
	return fmt.Sprintf("%s %s: HTTP %d: %s", e.Method, e.Path, e.StatusCode, e.Body)
}

// RejectedError is returned when the backend answered with a result
// whose status is not "success".
type RejectedError struct {
	Path   string
	Result Result
}

func (e *RejectedError) Error() string {
	if e.Result.Message == "" {
		return fmt.Sprintf("%s rejected (status %q)", e.Path, e.Result.Status)
	}
	return fmt.Sprintf("%s rejected: %s", e.Path, e.Result.Message)
}
