// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package subscribe

import (
	"context"
	"testing"
	"time"

	"github.com/bureau-foundation/techfeed/lib/autocomplete"
	"github.com/bureau-foundation/techfeed/lib/subscribeapi"
)

type fakeBackend struct {
	companies       []string
	categories      map[string][]string
	techTeams       []string
	subscriptions   map[string]subscribeapi.Subscriptions
	subscribeResult subscribeapi.Result
	subscribeErr    error
	interestedErr   error
	feedbackResult  subscribeapi.Result
	feedbackErr     error
	fetchErr        error

	categoryCalls     []string
	subscriptionCalls []string
	subscribeRequests []subscribeapi.SubscribeRequest
	interestCalls     []string
	feedbackCalls     []string
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		companies: []string{"Netflix", "Airbnb", "Alphabet"},
		categories: map[string][]string{
			"Netflix": {"Streaming", "Data Engineering"},
			"Airbnb":  {"Frontend", "Data Science"},
		},
		techTeams:       []string{"Netflix", "Uber", "Airbnb"},
		subscriptions:   map[string]subscribeapi.Subscriptions{},
		subscribeResult: subscribeapi.Result{Status: "success", Message: "Subscription updated."},
		feedbackResult:  subscribeapi.Result{Status: "success"},
	}
}

func (backend *fakeBackend) Companies(ctx context.Context) ([]string, error) {
	return backend.companies, backend.fetchErr
}

func (backend *fakeBackend) Categories(ctx context.Context, company string) ([]string, error) {
	backend.categoryCalls = append(backend.categoryCalls, company)
	return backend.categories[company], backend.fetchErr
}

func (backend *fakeBackend) TechTeams(ctx context.Context) ([]string, error) {
	return backend.techTeams, backend.fetchErr
}

func (backend *fakeBackend) SubscriptionsForEmail(ctx context.Context, email string) (subscribeapi.Subscriptions, error) {
	backend.subscriptionCalls = append(backend.subscriptionCalls, email)
	return backend.subscriptions[email], backend.fetchErr
}

func (backend *fakeBackend) Subscribe(ctx context.Context, request subscribeapi.SubscribeRequest) (subscribeapi.Result, error) {
	backend.subscribeRequests = append(backend.subscribeRequests, request)
	return backend.subscribeResult, backend.subscribeErr
}

func (backend *fakeBackend) Interested(ctx context.Context, email string) error {
	backend.interestCalls = append(backend.interestCalls, email)
	return backend.interestedErr
}

func (backend *fakeBackend) Feedback(ctx context.Context, text string) (subscribeapi.Result, error) {
	backend.feedbackCalls = append(backend.feedbackCalls, text)
	return backend.feedbackResult, backend.feedbackErr
}

type toast struct {
	message  string
	duration time.Duration
}

type fakeSurface struct {
	alerts        []string
	toasts        []toast
	messages      []toast
	hints         []string
	statusHeading string
	statusGroups  []subscribeapi.SubscriptionGroup
	statusClears  int
	resets        int
}

func (surface *fakeSurface) Alert(message string) { surface.alerts = append(surface.alerts, message) }

func (surface *fakeSurface) Toast(message string, duration time.Duration) {
	surface.toasts = append(surface.toasts, toast{message, duration})
}

func (surface *fakeSurface) ShowMessage(message string, duration time.Duration) {
	surface.messages = append(surface.messages, toast{message, duration})
}

func (surface *fakeSurface) Hint(message string) { surface.hints = append(surface.hints, message) }

func (surface *fakeSurface) RenderStatus(heading string, groups []subscribeapi.SubscriptionGroup) {
	surface.statusHeading = heading
	surface.statusGroups = groups
}

func (surface *fakeSurface) ClearStatus() {
	surface.statusHeading = ""
	surface.statusGroups = nil
	surface.statusClears++
}

func (surface *fakeSurface) FormReset() { surface.resets++ }

// fieldRenderer records the display state of one autocomplete element.
type fieldRenderer struct {
	input    string
	dropdown autocomplete.DropdownState
	visible  bool
	tags     []string
}

func (renderer *fieldRenderer) RenderInput(text string) { renderer.input = text }

func (renderer *fieldRenderer) RenderList(dropdown autocomplete.DropdownState) {
	renderer.dropdown = dropdown
	renderer.visible = true
}

func (renderer *fieldRenderer) HideList() { renderer.visible = false }

func (renderer *fieldRenderer) RenderTag(value string) { renderer.tags = append(renderer.tags, value) }

func (renderer *fieldRenderer) RemoveTag(value string) {
	for index, tag := range renderer.tags {
		if tag == value {
			renderer.tags = append(renderer.tags[:index], renderer.tags[index+1:]...)
			return
		}
	}
}

func (renderer *fieldRenderer) ClearTags() { renderer.tags = nil }

// fakeLayout stacks elements vertically, five rows apart, 30 columns
// wide. The notification icon sits at the top right and the panel
// below it.
type fakeLayout struct {
	renderers map[Element]*fieldRenderer
}

func newFakeLayout() *fakeLayout {
	return &fakeLayout{renderers: make(map[Element]*fieldRenderer)}
}

func (layout *fakeLayout) Renderer(element Element) autocomplete.Renderer {
	renderer := &fieldRenderer{}
	layout.renderers[element] = renderer
	return renderer
}

func (layout *fakeLayout) Bounds(element Element) autocomplete.Rect {
	switch element {
	case ElementNotificationIcon:
		return autocomplete.Rect{X: 70, Y: 0, Width: 3, Height: 1}
	case ElementNotificationPanel:
		return autocomplete.Rect{X: 50, Y: 1, Width: 30, Height: 10}
	}
	return autocomplete.Rect{X: 2, Y: 5 * int(element), Width: 30, Height: 1}
}

func (layout *fakeLayout) Scroll() autocomplete.Point { return autocomplete.Point{} }

func (layout *fakeLayout) PanelWidth(element Element, items []autocomplete.Suggestion) int {
	return 30
}

type testForm struct {
	form    *Form
	backend *fakeBackend
	surface *fakeSurface
	layout  *fakeLayout
}

func newTestForm(t *testing.T, variant Variant) *testForm {
	t.Helper()
	harness := &testForm{
		backend: newFakeBackend(),
		surface: &fakeSurface{},
		layout:  newFakeLayout(),
	}
	form, err := New(Options{
		Variant: variant,
		Backend: harness.backend,
		Surface: harness.surface,
		Layout:  harness.layout,
		Topics:  []string{"Software Engineering", "Data Science", "Data Analytics"},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	harness.form = form
	form.Init()
	harness.drain()
	return harness
}

// drain runs queued tasks and applies their completions until the
// queue is empty.
func (harness *testForm) drain() int {
	ran := 0
	for {
		tasks := harness.form.TakeTasks()
		if len(tasks) == 0 {
			return ran
		}
		for _, task := range tasks {
			task(context.Background())()
			ran++
		}
	}
}

func (harness *testForm) renderer(element Element) *fieldRenderer {
	return harness.layout.renderers[element]
}
