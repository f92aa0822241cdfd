// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package subscribeui

import (
	"context"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bureau-foundation/techfeed/lib/autocomplete"
	"github.com/bureau-foundation/techfeed/lib/clock"
	"github.com/bureau-foundation/techfeed/lib/subscribe"
	"github.com/bureau-foundation/techfeed/lib/tui"
)

// completionMsg carries a finished backend task back to the event
// loop, where its Completion is applied to the form.
type completionMsg struct {
	apply subscribe.Completion
}

// transientTickMsg drives toast and message expiry. While anything is
// showing, a new tick is scheduled after each one.
type transientTickMsg struct{}

// Options configures a Model.
type Options struct {
	Variant subscribe.Variant
	Backend subscribe.Backend

	// Topics is the tech-team form's topic list.
	Topics []string

	// Announcement overrides the notification panel message.
	Announcement string

	ToastDuration   time.Duration
	MessageDuration time.Duration

	// Context bounds every backend request. Default: Background.
	Context context.Context

	// Clock times toasts and messages. Default: clock.Real().
	Clock clock.Clock

	Logger *slog.Logger
}

// Model is the top-level bubbletea model of the subscription form.
type Model struct {
	form   *subscribe.Form
	screen *screen
	keys   KeyMap
	ctx    context.Context
	ready  bool

	// tick schedules a delayed message. tea.Tick outside tests.
	tick func(time.Duration, func(time.Time) tea.Msg) tea.Cmd
}

// NewModel creates the form and its terminal surface. Candidate lists
// are fetched by the command Init returns.
func NewModel(options Options) (Model, error) {
	if options.Context == nil {
		options.Context = context.Background()
	}
	if options.Clock == nil {
		options.Clock = clock.Real()
	}
	if options.Logger == nil {
		options.Logger = slog.New(slog.DiscardHandler)
	}

	screen := newScreen(options.Variant, tui.DefaultTheme, options.Clock, options.Logger)
	form, err := subscribe.New(subscribe.Options{
		Variant:         options.Variant,
		Backend:         options.Backend,
		Surface:         screen,
		Layout:          screen,
		Topics:          options.Topics,
		Announcement:    options.Announcement,
		ToastDuration:   options.ToastDuration,
		MessageDuration: options.MessageDuration,
		Logger:          options.Logger,
	})
	if err != nil {
		return Model{}, err
	}
	screen.form = form

	model := Model{
		form:   form,
		screen: screen,
		keys:   DefaultKeyMap,
		ctx:    options.Context,
		tick:   tea.Tick,
	}
	model.focus(subscribe.ElementEmail)
	return model, nil
}

// Form returns the form controller.
func (model Model) Form() *subscribe.Form { return model.form }

// Init implements tea.Model. Starts the initial candidate fetch.
func (model Model) Init() tea.Cmd {
	model.form.Init()
	return model.runTasks()
}

// Update implements tea.Model.
func (model Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	var command tea.Cmd

	switch message := message.(type) {
	case tea.KeyMsg:
		command = model.handleKey(message)

	case tea.MouseMsg:
		model.handleMouse(message)

	case tea.WindowSizeMsg:
		model.screen.width = message.Width
		model.screen.height = message.Height
		model.ready = true

	case completionMsg:
		message.apply()

	case transientTickMsg:
		model.screen.tickActive = false

	case logRecordMsg:
		model.screen.logSequence++
		model.screen.logNotice = message.Summary
		model.screen.logLevel = message.Level
		sequence := model.screen.logSequence
		command = model.tick(logRecordFadeDelay, func(time.Time) tea.Msg {
			return logRecordFadeMsg{sequence: sequence}
		})

	case logRecordFadeMsg:
		if message.sequence == model.screen.logSequence {
			model.screen.logNotice = ""
		}
	}

	model.screen.clampScroll()
	return model, tea.Batch(command, model.runTasks(), model.scheduleTick())
}

// runTasks turns the form's queued backend work into commands. Each
// runs off the event loop and reports back as a completionMsg.
func (model Model) runTasks() tea.Cmd {
	tasks := model.form.TakeTasks()
	if len(tasks) == 0 {
		return nil
	}
	commands := make([]tea.Cmd, 0, len(tasks))
	for _, task := range tasks {
		ctx := model.ctx
		commands = append(commands, func() tea.Msg {
			return completionMsg{apply: task(ctx)}
		})
	}
	return tea.Batch(commands...)
}

// scheduleTick starts the transient tick timer when something is
// showing and no tick is pending.
func (model Model) scheduleTick() tea.Cmd {
	if model.screen.tickActive || !model.screen.transients.HasActive(model.screen.clock.Now()) {
		return nil
	}
	model.screen.tickActive = true
	return model.tick(tui.TransientTickInterval, func(time.Time) tea.Msg {
		return transientTickMsg{}
	})
}

func (model Model) handleKey(message tea.KeyMsg) tea.Cmd {
	screen := model.screen
	if key.Matches(message, model.keys.Quit) {
		return tea.Quit
	}

	// An alert blocks everything until acknowledged.
	if len(screen.alerts) > 0 {
		if key.Matches(message, model.keys.Enter, model.keys.Cancel) {
			screen.alerts = screen.alerts[1:]
		}
		return nil
	}

	if screen.feedback != nil {
		return model.handleFeedbackKeys(message)
	}

	focused := model.form.Focused()
	switch {
	case key.Matches(message, model.keys.NextField):
		model.cycleFocus(1)

	case key.Matches(message, model.keys.PreviousField):
		model.cycleFocus(-1)

	case key.Matches(message, model.keys.Up):
		if widget := model.form.Widget(focused); widget != nil {
			widget.MoveUp()
		}

	case key.Matches(message, model.keys.Down):
		if widget := model.form.Widget(focused); widget != nil {
			widget.MoveDown()
		}

	case key.Matches(message, model.keys.Enter):
		model.form.Enter(focused)

	case key.Matches(message, model.keys.Cancel):
		if widget := model.form.Widget(focused); widget != nil {
			widget.Dismiss()
		}
		if panel := model.form.Panel(); panel != nil {
			panel.Close()
		}

	case key.Matches(message, model.keys.PageUp):
		screen.scrollBy(-screen.viewportHeight())

	case key.Matches(message, model.keys.PageDown):
		screen.scrollBy(screen.viewportHeight())

	case key.Matches(message, model.keys.Submit):
		model.form.Submit()

	case key.Matches(message, model.keys.TechTeams):
		model.form.ToggleTechTeams()

	case key.Matches(message, model.keys.Notifications):
		model.form.TogglePanel()

	case key.Matches(message, model.keys.Interested):
		if model.form.Panel() != nil {
			model.form.ExpressInterest()
		}

	case key.Matches(message, model.keys.Feedback):
		model.openFeedback()

	default:
		return model.typeInto(focused, message)
	}
	return nil
}

// typeInto forwards a key to the focused input and reports a changed
// value to the form.
func (model Model) typeInto(element subscribe.Element, message tea.KeyMsg) tea.Cmd {
	field := model.screen.fields[element]
	if field == nil {
		return nil
	}
	if widget := model.form.Widget(element); widget != nil && widget.Disabled() {
		return nil
	}
	before := field.input.Value()
	var command tea.Cmd
	field.input, command = field.input.Update(message)
	if after := field.input.Value(); after != before {
		model.screen.hint = ""
		model.form.Type(element, after)
	}
	return command
}

func (model Model) handleFeedbackKeys(message tea.KeyMsg) tea.Cmd {
	screen := model.screen
	switch {
	case key.Matches(message, model.keys.SendFeedback):
		model.form.SendFeedback(screen.feedback.Value())
		if !model.form.FeedbackOpen() {
			screen.feedback = nil
		}
		return nil
	case key.Matches(message, model.keys.Cancel):
		model.form.CloseFeedback()
		screen.feedback = nil
		return nil
	}
	return screen.feedback.Update(message)
}

func (model Model) openFeedback() {
	if !model.form.OpenFeedback() {
		return
	}
	modal := tui.NewFeedbackModal(model.screen.theme)
	model.screen.feedback = &modal
}

// cycleFocus moves focus by step through the enabled inputs, wrapping.
func (model Model) cycleFocus(step int) {
	inputs := model.form.Variant().Inputs()
	current := -1
	for index, element := range inputs {
		if element == model.form.Focused() {
			current = index
		}
	}
	for range inputs {
		current = (current + step + len(inputs)) % len(inputs)
		element := inputs[current]
		if widget := model.form.Widget(element); widget != nil && widget.Disabled() {
			continue
		}
		model.focus(element)
		return
	}
}

// focus moves keyboard focus to element, moving the text cursor with
// it.
func (model Model) focus(element subscribe.Element) {
	for other, field := range model.screen.fields {
		if other != element {
			field.input.Blur()
		}
	}
	if field := model.screen.fields[element]; field != nil {
		field.input.Focus()
	}
	model.screen.hint = ""
	model.form.Focus(element)
}

func (model Model) blur() {
	for _, field := range model.screen.fields {
		field.input.Blur()
	}
	model.form.Blur()
}

func (model Model) handleMouse(message tea.MouseMsg) {
	screen := model.screen
	switch message.Button {
	case tea.MouseButtonWheelUp:
		screen.scrollBy(-wheelStep)
		return
	case tea.MouseButtonWheelDown:
		screen.scrollBy(wheelStep)
		return
	}
	if message.Action != tea.MouseActionPress || message.Button != tea.MouseButtonLeft {
		return
	}

	if len(screen.alerts) > 0 {
		screen.alerts = screen.alerts[1:]
		return
	}
	if screen.feedback != nil || message.Y >= screen.viewportHeight() {
		return
	}

	onScreen := autocomplete.Point{X: message.X, Y: message.Y}
	onPage := autocomplete.Point{X: message.X, Y: message.Y + screen.scroll}

	// Outside-click dismissal, selecting a dropdown row unless the
	// notification panel or its icon is drawn over it.
	if model.form.Click(onPage) {
		return
	}

	if panel := model.form.Panel(); panel != nil {
		if screen.iconRect().Contains(onScreen) {
			model.form.TogglePanel()
			return
		}
		if panel.Open() {
			rect := screen.panelRect()
			if rect.Contains(onScreen) {
				hit, ok := tui.HitAt(screen.panelView().Buttons, onScreen.X-rect.X, onScreen.Y-rect.Y)
				if ok {
					model.clickPanelButton(hit.Value)
				}
				return
			}
		}
	}

	layout := screen.composePage()
	for element, hits := range layout.tagHits {
		if hit, ok := tui.HitAt(hits, onPage.X, onPage.Y); ok {
			model.form.RemoveTag(element, hit.Value)
			return
		}
	}
	switch {
	case layout.checkbox.Contains(onPage):
		model.form.ToggleTechTeams()
		return
	case layout.submit.Contains(onPage):
		model.form.Submit()
		return
	}
	for _, element := range model.form.Variant().Inputs() {
		if layout.inputs[element].Contains(onPage) {
			if widget := model.form.Widget(element); widget != nil && widget.Disabled() {
				return
			}
			model.focus(element)
			return
		}
	}
	model.blur()
}

func (model Model) clickPanelButton(label string) {
	switch label {
	case tui.ButtonInterested:
		model.form.ExpressInterest()
	case tui.ButtonFeedback:
		model.openFeedback()
	}
}
