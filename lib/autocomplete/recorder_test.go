// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package autocomplete

// recordingRenderer is a Renderer that keeps the display state a real
// surface would show, plus a count of each call.
type recordingRenderer struct {
	input    string
	dropdown DropdownState
	visible  bool
	tags     []string

	renderListCalls int
	hideListCalls   int
	renderTagCalls  int
}

func (renderer *recordingRenderer) RenderInput(text string) {
	renderer.input = text
}

func (renderer *recordingRenderer) RenderList(dropdown DropdownState) {
	renderer.renderListCalls++
	renderer.dropdown = dropdown
	renderer.visible = true
}

func (renderer *recordingRenderer) HideList() {
	renderer.hideListCalls++
	renderer.dropdown = DropdownState{}
	renderer.visible = false
}

func (renderer *recordingRenderer) RenderTag(value string) {
	renderer.renderTagCalls++
	renderer.tags = append(renderer.tags, value)
}

func (renderer *recordingRenderer) RemoveTag(value string) {
	for index, tag := range renderer.tags {
		if tag == value {
			renderer.tags = append(renderer.tags[:index], renderer.tags[index+1:]...)
			return
		}
	}
}

func (renderer *recordingRenderer) ClearTags() {
	renderer.tags = nil
}

// renderedValues returns the values of the rows currently shown.
func (renderer *recordingRenderer) renderedValues() []string {
	var values []string
	for _, item := range renderer.dropdown.Items {
		values = append(values, item.Value)
	}
	return values
}

func equalStrings(left, right []string) bool {
	if len(left) != len(right) {
		return false
	}
	for index := range left {
		if left[index] != right[index] {
			return false
		}
	}
	return true
}
