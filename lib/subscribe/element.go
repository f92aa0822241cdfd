// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package subscribe

import "fmt"

// Variant selects which form is shown.
type Variant string

const (
	// CompanyForm subscribes to categories of one company.
	CompanyForm Variant = "company"

	// TechTeamForm subscribes to tech teams under one topic.
	TechTeamForm Variant = "techteam"
)

// Element identifies an interactive element of the form.
type Element int

const (
	// ElementNone means no element, e.g. nothing has focus.
	ElementNone Element = iota

	// ElementEmail is the email input.
	ElementEmail

	// ElementCompany is the company single-select (company form).
	ElementCompany

	// ElementCategories is the category multi-select (company form).
	ElementCategories

	// ElementTechTeams is the tech-team multi-select (tech-team form).
	ElementTechTeams

	// ElementTopic is the topic single-select (tech-team form).
	ElementTopic

	// ElementNotificationIcon toggles the notification panel.
	ElementNotificationIcon

	// ElementNotificationPanel is the notification panel area.
	ElementNotificationPanel
)

var elementNames = map[Element]string{
	ElementNone:              "none",
	ElementEmail:             "email",
	ElementCompany:           "company",
	ElementCategories:        "categories",
	ElementTechTeams:         "techteams",
	ElementTopic:             "topic",
	ElementNotificationIcon:  "notification-icon",
	ElementNotificationPanel: "notification-panel",
}

func (element Element) String() string {
	if name, ok := elementNames[element]; ok {
		return name
	}
	return fmt.Sprintf("element(%d)", int(element))
}

// Inputs returns the focusable inputs of variant in tab order.
func (variant Variant) Inputs() []Element {
	switch variant {
	case CompanyForm:
		return []Element{ElementEmail, ElementCompany, ElementCategories}
	case TechTeamForm:
		return []Element{ElementEmail, ElementTechTeams, ElementTopic}
	}
	return nil
}

// Valid reports whether variant names a known form.
func (variant Variant) Valid() bool {
	return variant == CompanyForm || variant == TechTeamForm
}
