// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides YAML configuration loading for the techfeed
// client.
//
// Configuration is loaded from a single file specified by either the
// TECHFEED_CONFIG environment variable (via [Load]) or a --config flag
// (via [LoadFile]). There is no automatic file search. A command run
// without either uses [Default].
//
// The configuration file supports environment-specific sections
// (development, staging, production) that override base values when
// [Config].Environment matches.
//
// ${VAR} and ${VAR:-default} patterns in api.base_url are expanded
// after loading, so one file can point at different backends:
//
//	api:
//	  base_url: ${TECHFEED_API:-http://localhost:5000}
//
// Key exports:
//
//   - [Config] -- master struct with API, Form, Display
//   - [Default] -- returns a Config with development defaults
//   - [Load] and [LoadFile] -- the two entry points for loading
//   - [Config.Validate] -- checks values before the client starts
//
// This package depends on no other techfeed packages.
package config
