// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package subscribeapi is the HTTP client for the techfeed
// subscription backend.
//
// The backend exposes candidate lists (companies, categories per
// company, tech teams), the existing subscriptions for an email
// address, and three submission endpoints (subscribe, interested,
// feedback). [Client] wraps each endpoint in one method that takes a
// context and returns decoded Go values.
//
// Every request carries a fresh X-Request-ID and is logged at debug
// level with its duration. Responses may be gzip-compressed; the
// default transport negotiates and decompresses transparently.
//
// Failures come back as ordinary errors. A non-2xx response without a
// usable body is a [*StatusError]; a well-formed response whose status
// field is not "success" is a [*RejectedError] carrying the server's
// message. Callers that only need to tell the user "it failed" can
// ignore the distinction.
package subscribeapi
