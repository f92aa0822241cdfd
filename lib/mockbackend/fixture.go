// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package mockbackend is an in-memory implementation of the techfeed
// subscription backend for development and tests.
//
// A [Fixture] seeds the candidate lists and any pre-existing
// subscriptions. Fixtures are authored as JSONC (JSON with comments and
// trailing commas):
//
//  1. ReadFixture or ParseFixture: JSONC bytes → Fixture
//  2. New: Fixture → Server
//  3. Server.Handler: the HTTP surface, mounted on any http.Server or
//     httptest.Server
//
// The server records interest registrations and feedback so tests can
// assert on what the client sent.
package mockbackend

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidwall/jsonc"
)

// Fixture is the seed data of a Server.
type Fixture struct {
	// Companies is the /companies candidate list, in display order.
	Companies []string `json:"companies"`

	// Categories maps a company name to its /categories list.
	Categories map[string][]string `json:"categories"`

	// TechTeams is the /techteams list, stored lower case.
	TechTeams []string `json:"techteams"`

	// Subscriptions are pre-existing subscriptions.
	Subscriptions []Subscription `json:"subscriptions,omitempty"`
}

// Subscription is one (email, group, publisher) row. Group is a topic
// for tech-team subscriptions and a company for category
// subscriptions; Publisher is the tech team or the category.
type Subscription struct {
	Email     string `json:"email"`
	Group     string `json:"group"`
	Publisher string `json:"publisher"`
}

// DefaultFixture returns a small built-in data set.
func DefaultFixture() Fixture {
	return Fixture{
		Companies: []string{"Netflix", "Airbnb", "Uber", "Spotify", "Stripe"},
		Categories: map[string][]string{
			"Netflix": {"Data Engineering", "Streaming", "Machine Learning"},
			"Airbnb":  {"Data Science", "Frontend", "Infrastructure"},
			"Uber":    {"Mobile", "Data Engineering", "Maps"},
			"Spotify": {"Backend", "Machine Learning", "Audio"},
			"Stripe":  {"Payments", "Infrastructure", "Developer Tools"},
		},
		TechTeams: []string{"netflix", "airbnb", "uber", "spotify", "stripe", "dropbox"},
	}
}

// ParseFixture strips JSONC comments and trailing commas from data and
// unmarshals the result.
func ParseFixture(data []byte) (Fixture, error) {
	var fixture Fixture
	if err := json.Unmarshal(jsonc.ToJSON(data), &fixture); err != nil {
		return Fixture{}, fmt.Errorf("parsing fixture: %w", err)
	}
	return fixture, nil
}

// ReadFixture reads and parses a JSONC fixture file.
func ReadFixture(path string) (Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Fixture{}, fmt.Errorf("reading %s: %w", path, err)
	}
	fixture, err := ParseFixture(data)
	if err != nil {
		return Fixture{}, fmt.Errorf("%s: %w", path, err)
	}
	return fixture, nil
}
