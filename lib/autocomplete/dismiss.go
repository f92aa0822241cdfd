// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package autocomplete

// Dismissible is anything that shows a floating panel owned by a
// control: a widget's dropdown owned by its input, or a notification
// panel owned by its icon.
type Dismissible interface {
	// OwnsPoint reports whether point is on the owning control.
	OwnsPoint(point Point) bool

	// PanelContains reports whether point is inside the visible panel.
	PanelContains(point Point) bool

	// Dismiss hides the panel.
	Dismiss()
}

// PanelClicker is implemented by Dismissibles whose panel rows are
// themselves clickable, such as a Widget's suggestion rows.
type PanelClicker interface {
	ClickPanel(point Point) bool
}

// Coverer is implemented by Dismissibles drawn above every dropdown,
// such as a notification panel fixed to the screen. A click the
// Coverer covers never reaches a panel beneath it.
type Coverer interface {
	Covers(point Point) bool
}

// Dismisser implements page-level outside-click dismissal across any
// number of panels. Every click on the surface goes through Click.
//
// Points are page coordinates: the screen position plus the scroll
// offset. Dropdown anchors are computed the same way, so a panel keeps
// its hit area while the page scrolls.
type Dismisser struct {
	targets []Dismissible
}

// Register adds target to the set of panels checked on every click.
func (dismisser *Dismisser) Register(target Dismissible) {
	dismisser.targets = append(dismisser.targets, target)
}

// Click routes a click at point. A click on a Coverer dismisses every
// other panel and is left to the Coverer's owner. Otherwise clicks on
// a panel row are resolved as selections first; then every panel whose
// area and owning control both miss point is dismissed, each checked
// independently.
//
// Returns true if a panel row consumed the click.
func (dismisser *Dismisser) Click(point Point) bool {
	if top := dismisser.coverAt(point); top != nil {
		for _, target := range dismisser.targets {
			if target != top {
				target.Dismiss()
			}
		}
		return false
	}

	consumed := false
	for _, target := range dismisser.targets {
		clicker, ok := target.(PanelClicker)
		if !ok || !target.PanelContains(point) {
			continue
		}
		if clicker.ClickPanel(point) {
			consumed = true
		}
	}

	for _, target := range dismisser.targets {
		if target.PanelContains(point) || target.OwnsPoint(point) {
			continue
		}
		target.Dismiss()
	}
	return consumed
}

func (dismisser *Dismisser) coverAt(point Point) Dismissible {
	for _, target := range dismisser.targets {
		if coverer, ok := target.(Coverer); ok && coverer.Covers(point) {
			return target
		}
	}
	return nil
}
