// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package subscribeapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// StatusSuccess is the status value of a successful submission.
const StatusSuccess = "success"

// Result is the body of the subscribe and feedback endpoints.
type Result struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// OK reports whether the backend accepted the submission.
func (result Result) OK() bool {
	return result.Status == StatusSuccess
}

// SubscribeRequest is one submission of the subscription form. Exactly
// one publisher shape is used per form: Company with Categories (the
// company form) or TechTeams with Topic (the tech-team form).
type SubscribeRequest struct {
	Email      string
	Company    string
	Categories []string
	TechTeams  []string
	Topic      string
}

// subscribeForm is the form-encoded wire shape of SubscribeRequest.
// Multi-select fields travel comma-joined.
type subscribeForm struct {
	Email      string `form:"email"`
	Company    string `form:"company,omitempty"`
	Categories string `form:"categories,omitempty"`
	TechTeams  string `form:"techteams,omitempty"`
	Topic      string `form:"topic,omitempty"`
}

func (request SubscribeRequest) wire() subscribeForm {
	return subscribeForm{
		Email:      request.Email,
		Company:    request.Company,
		Categories: strings.Join(request.Categories, ","),
		TechTeams:  strings.Join(request.TechTeams, ","),
		Topic:      request.Topic,
	}
}

// companyEntry is one element of the /companies response.
type companyEntry struct {
	Company string `json:"company"`
}

// SubscriptionGroup is one line of the existing-subscription summary:
// a group name (a company or a topic) and the publishers or categories
// subscribed under it.
type SubscriptionGroup struct {
	Name  string
	Items []string
}

// Subscriptions is the decoded /subscriptions_for_email response, in
// the order the backend listed the groups. The backend answers {} (or
// [] for a blank email) when there are none.
type Subscriptions []SubscriptionGroup

// UnmarshalJSON decodes a JSON object of group name to string array,
// preserving key order. An empty array is accepted as "none".
func (subscriptions *Subscriptions) UnmarshalJSON(data []byte) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	token, err := decoder.Token()
	if err != nil {
		return err
	}

	switch token {
	case json.Delim('['):
		var discard []json.RawMessage
		if err := json.Unmarshal(data, &discard); err != nil {
			return err
		}
		if len(discard) != 0 {
			return fmt.Errorf("subscriptions: expected an object, got a non-empty array")
		}
		*subscriptions = nil
		return nil
	case json.Delim('{'):
	default:
		return fmt.Errorf("subscriptions: expected an object, got %v", token)
	}

	var groups Subscriptions
	for decoder.More() {
		keyToken, err := decoder.Token()
		if err != nil {
			return err
		}
		name, ok := keyToken.(string)
		if !ok {
			return fmt.Errorf("subscriptions: unexpected key %v", keyToken)
		}
		var items []string
		if err := decoder.Decode(&items); err != nil {
			return fmt.Errorf("subscriptions: group %q: %w", name, err)
		}
		groups = append(groups, SubscriptionGroup{Name: name, Items: items})
	}
	if _, err := decoder.Token(); err != nil {
		return err
	}
	*subscriptions = groups
	return nil
}
