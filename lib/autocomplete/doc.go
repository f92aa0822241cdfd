// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package autocomplete implements the autocomplete input and tag
// selector used by techfeed's subscription form.
//
// A [Widget] owns one text input, one suggestion dropdown and (in
// [MultiSelect] mode) one tag container. On every keystroke or focus
// it filters its candidate list by case-insensitive substring
// ([Filter]), renders the matches in a dropdown anchored directly
// below its input, and on selection either fills the input
// ([SingleSelect]) or appends the value to its [SelectionSet] and
// renders a removable tag ([MultiSelect]).
//
// The package never draws anything itself. All display effects go
// through a [Renderer] supplied by the caller, so the selection and
// filter logic runs unchanged against a terminal, a browser bridge or
// a recording fake in tests.
//
// A page with several widgets routes every click through a
// [Dismisser], which resolves clicks on suggestion rows as selections
// and then hides each dropdown the click landed outside of.
//
// Widgets are not safe for concurrent use. They are meant to be driven
// from a single event loop; asynchronous candidate fetches report back
// to that loop before calling [Widget.SetCandidates].
package autocomplete
