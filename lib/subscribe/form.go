// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package subscribe

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/bureau-foundation/techfeed/lib/autocomplete"
	"github.com/bureau-foundation/techfeed/lib/subscribeapi"
)

// User-facing texts.
const (
	StatusHeading          = "Already Subscribed To:"
	GenericFailure         = "Something went wrong. Please try again later."
	SubscriptionFailed     = "Subscription failed."
	SubscriptionUpdated    = "Subscription Updated!"
	InterestThanks         = "Thank you for your interest! We'll keep you updated."
	FeedbackEmpty          = "Please enter feedback"
	FeedbackSent           = "Feedback sent successfully"
	FeedbackFailed         = "Error sending feedback"
	defaultToastDuration   = 3 * time.Second
	defaultMessageDuration = 5 * time.Second
)

// Backend is the subset of the subscription API the form uses.
// *subscribeapi.Client implements it.
type Backend interface {
	Companies(ctx context.Context) ([]string, error)
	Categories(ctx context.Context, company string) ([]string, error)
	TechTeams(ctx context.Context) ([]string, error)
	SubscriptionsForEmail(ctx context.Context, email string) (subscribeapi.Subscriptions, error)
	Subscribe(ctx context.Context, request subscribeapi.SubscribeRequest) (subscribeapi.Result, error)
	Interested(ctx context.Context, email string) error
	Feedback(ctx context.Context, text string) (subscribeapi.Result, error)
}

// Surface receives the form's page-level display effects. Methods are
// called on the event loop.
type Surface interface {
	// Alert shows a blocking message the user must acknowledge.
	Alert(message string)

	// Toast shows a transient message for duration.
	Toast(message string, duration time.Duration)

	// ShowMessage shows the company form's inline subscribe message
	// for duration.
	ShowMessage(message string, duration time.Duration)

	// Hint shows a non-blocking hint next to the focused input.
	Hint(message string)

	// RenderStatus replaces the existing-subscription panel.
	RenderStatus(heading string, groups []subscribeapi.SubscriptionGroup)

	// ClearStatus empties the existing-subscription panel.
	ClearStatus()

	// FormReset clears display-owned input state (the email input and
	// the tech-teams checkbox) after a successful submission.
	FormReset()
}

// Layout supplies per-element renderers and geometry.
type Layout interface {
	// Renderer returns the widget renderer of an autocomplete element.
	Renderer(element Element) autocomplete.Renderer

	// Bounds returns the element's current box in screen
	// coordinates.
	Bounds(element Element) autocomplete.Rect

	// Scroll returns the current scroll offset. Page coordinates are
	// screen coordinates plus this offset.
	Scroll() autocomplete.Point

	// PanelWidth returns the dropdown width for items of element.
	PanelWidth(element Element, items []autocomplete.Suggestion) int
}

// Options configures a Form.
type Options struct {
	Variant Variant
	Backend Backend
	Surface Surface
	Layout  Layout

	// Topics is the tech-team form's topic list.
	Topics []string

	// Announcement is the notification panel message.
	// Default: DefaultAnnouncement.
	Announcement string

	// ToastDuration defaults to 3s; MessageDuration to 5s.
	ToastDuration   time.Duration
	MessageDuration time.Duration

	Logger *slog.Logger
}

// Form is the controller of one subscription form. It is not safe for
// concurrent use; all methods run on the event loop.
type Form struct {
	variant         Variant
	backend         Backend
	surface         Surface
	layout          Layout
	logger          *slog.Logger
	toastDuration   time.Duration
	messageDuration time.Duration

	email            string
	lookedUpEmail    string
	techTeamsEnabled bool
	focused          Element
	feedbackOpen     bool

	widgets   map[Element]*autocomplete.Widget
	panel     *NotificationPanel
	dismisser autocomplete.Dismisser

	tasks   []Task
	issued  map[requestKind]uint64
	applied map[requestKind]uint64
}

// New creates a form. The company list or tech-team list is not
// fetched until Init.
func New(options Options) (*Form, error) {
	if !options.Variant.Valid() {
		return nil, fmt.Errorf("unknown form variant %q", options.Variant)
	}
	if options.Backend == nil || options.Surface == nil || options.Layout == nil {
		return nil, errors.New("form requires a Backend, a Surface and a Layout")
	}
	if options.Logger == nil {
		options.Logger = slog.New(slog.DiscardHandler)
	}
	if options.ToastDuration <= 0 {
		options.ToastDuration = defaultToastDuration
	}
	if options.MessageDuration <= 0 {
		options.MessageDuration = defaultMessageDuration
	}
	if options.Announcement == "" {
		options.Announcement = DefaultAnnouncement
	}

	form := &Form{
		variant:         options.Variant,
		backend:         options.Backend,
		surface:         options.Surface,
		layout:          options.Layout,
		logger:          options.Logger.With("form", string(options.Variant)),
		toastDuration:   options.ToastDuration,
		messageDuration: options.MessageDuration,
		widgets:         make(map[Element]*autocomplete.Widget),
		issued:          make(map[requestKind]uint64),
		applied:         make(map[requestKind]uint64),
	}

	switch options.Variant {
	case CompanyForm:
		form.addWidget(ElementCompany, autocomplete.SingleSelect, form.companySelected)
		form.addWidget(ElementCategories, autocomplete.MultiSelect, form.tagAdded(ElementCategories))
	case TechTeamForm:
		form.addWidget(ElementTechTeams, autocomplete.MultiSelect, form.tagAdded(ElementTechTeams))
		topic := form.addWidget(ElementTopic, autocomplete.SingleSelect, nil)
		topic.SetCandidates(options.Topics)
		form.widgets[ElementTechTeams].SetDisabled(true)

		form.panel = newNotificationPanel(options.Layout, options.Announcement)
		form.dismisser.Register(form.panel)
	}
	return form, nil
}

func (form *Form) addWidget(element Element, mode autocomplete.Mode, onSelect func(string)) *autocomplete.Widget {
	widget := autocomplete.New(autocomplete.Options{
		Mode:     mode,
		Renderer: form.layout.Renderer(element),
		Bounds:   func() autocomplete.Rect { return form.layout.Bounds(element) },
		Scroll:   form.layout.Scroll,
		PanelWidth: func(items []autocomplete.Suggestion) int {
			return form.layout.PanelWidth(element, items)
		},
		OnSelect: onSelect,
	})
	form.widgets[element] = widget
	form.dismisser.Register(widget)
	return widget
}

// Variant returns the form variant.
func (form *Form) Variant() Variant { return form.variant }

// Widget returns the autocomplete widget of element, or nil when the
// variant has no such widget.
func (form *Form) Widget(element Element) *autocomplete.Widget {
	return form.widgets[element]
}

// Email returns the email input's text.
func (form *Form) Email() string { return form.email }

// Focused returns the element with keyboard focus.
func (form *Form) Focused() Element { return form.focused }

// TechTeamsEnabled reports whether the tech-teams publisher kind is
// ticked.
func (form *Form) TechTeamsEnabled() bool { return form.techTeamsEnabled }

// Panel returns the notification panel, or nil on the company form.
func (form *Form) Panel() *NotificationPanel { return form.panel }

// FeedbackOpen reports whether the feedback card is shown.
func (form *Form) FeedbackOpen() bool { return form.feedbackOpen }

// Init queues the initial candidate fetch: companies for the company
// form, tech teams for the tech-team form.
func (form *Form) Init() {
	switch form.variant {
	case CompanyForm:
		form.enqueue(requestCompanies, func(ctx context.Context) Completion {
			companies, err := form.backend.Companies(ctx)
			return func() {
				if err != nil {
					form.alert(GenericFailure, err)
					return
				}
				form.widgets[ElementCompany].SetCandidates(companies)
			}
		})
	case TechTeamForm:
		form.enqueue(requestTechTeams, func(ctx context.Context) Completion {
			teams, err := form.backend.TechTeams(ctx)
			return func() {
				if err != nil {
					form.alert(GenericFailure, err)
					return
				}
				form.widgets[ElementTechTeams].SetCandidates(teams)
			}
		})
	}
}

// Type replaces the text of element's input. On the company form an
// email change looks up existing subscriptions.
func (form *Form) Type(element Element, text string) {
	if element == ElementEmail {
		form.email = text
		if form.variant == CompanyForm {
			form.lookUpSubscriptions()
		}
		return
	}
	if widget := form.widgets[element]; widget != nil {
		widget.Type(text)
	}
}

// Focus moves keyboard focus to element. The previously focused
// element is blurred first: its dropdown hides, and leaving the email
// input on the tech-team form looks up existing subscriptions.
func (form *Form) Focus(element Element) {
	if previous := form.focused; previous != element {
		form.blur(previous)
	}
	form.focused = element
	if widget := form.widgets[element]; widget != nil {
		widget.Focus()
	}
}

// Blur removes keyboard focus from the form.
func (form *Form) Blur() {
	form.blur(form.focused)
	form.focused = ElementNone
}

func (form *Form) blur(element Element) {
	if element == ElementEmail && form.variant == TechTeamForm {
		form.lookUpSubscriptions()
		return
	}
	if widget := form.widgets[element]; widget != nil {
		widget.Hide()
	}
}

// Enter handles the commit key on element. Autocomplete widgets get
// the key first; when they do not consume it, the form is submitted.
func (form *Form) Enter(element Element) {
	if widget := form.widgets[element]; widget != nil && widget.Commit() {
		return
	}
	form.Submit()
}

// RemoveTag removes value from a multi-select element.
func (form *Form) RemoveTag(element Element, value string) {
	if widget := form.widgets[element]; widget != nil {
		widget.RemoveTag(value)
	}
}

// Click routes a pointer click at point, in page coordinates, through
// outside-click dismissal. Returns true when a dropdown row consumed
// it.
func (form *Form) Click(point autocomplete.Point) bool {
	return form.dismisser.Click(point)
}

// SetTechTeamsEnabled ticks or unticks the tech-teams publisher kind,
// enabling or disabling the tech-team input.
func (form *Form) SetTechTeamsEnabled(enabled bool) {
	widget := form.widgets[ElementTechTeams]
	if widget == nil {
		return
	}
	form.techTeamsEnabled = enabled
	widget.SetDisabled(!enabled)
}

// ToggleTechTeams flips the tech-teams publisher kind.
func (form *Form) ToggleTechTeams() {
	form.SetTechTeamsEnabled(!form.techTeamsEnabled)
}

// TogglePanel opens or closes the notification panel.
func (form *Form) TogglePanel() {
	if form.panel != nil {
		form.panel.Toggle()
	}
}

// companySelected fetches the chosen company's categories. The
// category input and dropdown are cleared when they arrive; selected
// categories are kept.
func (form *Form) companySelected(company string) {
	form.enqueue(requestCategories, func(ctx context.Context) Completion {
		categories, err := form.backend.Categories(ctx, company)
		return func() {
			if err != nil {
				form.alert(GenericFailure, err)
				return
			}
			widget := form.widgets[ElementCategories]
			widget.SetCandidates(categories)
			widget.SetInput("")
			widget.Hide()
		}
	})
}

// tagAdded returns the selection handler of a multi-select element:
// a free-form value outside the candidate list gets a hint naming the
// closest candidate.
func (form *Form) tagAdded(element Element) func(string) {
	return func(value string) {
		widget := form.widgets[element]
		closest, ok := autocomplete.Closest(value, widget.Candidates())
		if !ok {
			return
		}
		form.logger.Debug("free-form tag added", "element", element.String(), "value", value, "closest", closest)
		form.surface.Hint(fmt.Sprintf("%q is not in the list. Did you mean %q?", value, closest))
	}
}

// lookUpSubscriptions queues the existing-subscription lookup for the
// current email. Blank emails are skipped; on the company form an
// unchanged email is not looked up again unless its last lookup
// failed.
func (form *Form) lookUpSubscriptions() {
	email := strings.TrimSpace(form.email)
	if email == "" {
		return
	}
	if form.variant == CompanyForm && email == form.lookedUpEmail {
		return
	}
	form.lookedUpEmail = email

	form.enqueue(requestSubscriptions, func(ctx context.Context) Completion {
		subscriptions, err := form.backend.SubscriptionsForEmail(ctx, email)
		return func() {
			if err != nil {
				form.logger.Warn("looking up subscriptions", "error", err)
				if form.lookedUpEmail == email {
					form.lookedUpEmail = ""
				}
				return
			}
			form.renderStatus(subscriptions)
		}
	})
}

// renderStatus shows subscriptions under the status heading. No
// subscriptions renders nothing, not even the heading.
func (form *Form) renderStatus(subscriptions subscribeapi.Subscriptions) {
	form.surface.ClearStatus()
	if len(subscriptions) == 0 {
		return
	}
	groups := make([]subscribeapi.SubscriptionGroup, 0, len(subscriptions))
	for _, group := range subscriptions {
		items := slices.Clone(group.Items)
		if form.variant == TechTeamForm {
			for index, item := range items {
				items[index] = subscribeapi.Capitalize(item)
			}
		}
		groups = append(groups, subscribeapi.SubscriptionGroup{Name: group.Name, Items: items})
	}
	form.surface.RenderStatus(StatusHeading, groups)
}

// Submit validates the form and queues the subscribe request. An
// incomplete form is blocked with an alert and nothing is sent.
func (form *Form) Submit() {
	request, err := form.buildRequest()
	if err != nil {
		var validationErr *ValidationError
		if errors.As(err, &validationErr) {
			form.logger.Info("submission blocked", "error", err)
			form.surface.Alert(validationErr.Message)
			return
		}
		form.alert(GenericFailure, err)
		return
	}

	form.enqueue(requestSubscribe, func(ctx context.Context) Completion {
		result, err := form.backend.Subscribe(ctx, request)
		return func() { form.subscribed(result, err) }
	})
}

func (form *Form) buildRequest() (subscribeapi.SubscribeRequest, error) {
	switch form.variant {
	case CompanyForm:
		submission := companySubmission{
			Email:      form.email,
			Company:    form.widgets[ElementCompany].Input(),
			Categories: form.widgets[ElementCategories].Selection(),
		}
		if err := validateSubmission(submission, companyFormIncomplete); err != nil {
			return subscribeapi.SubscribeRequest{}, err
		}
		return subscribeapi.SubscribeRequest{
			Email:      strings.TrimSpace(submission.Email),
			Company:    strings.TrimSpace(submission.Company),
			Categories: submission.Categories,
		}, nil
	default:
		submission := techTeamSubmission{
			Email:     form.email,
			Topic:     form.widgets[ElementTopic].Input(),
			TechTeams: form.widgets[ElementTechTeams].Selection(),
		}
		if err := validateSubmission(submission, techTeamFormIncomplete); err != nil {
			return subscribeapi.SubscribeRequest{}, err
		}
		return subscribeapi.SubscribeRequest{
			Email:     strings.TrimSpace(submission.Email),
			Topic:     strings.TrimSpace(submission.Topic),
			TechTeams: submission.TechTeams,
		}, nil
	}
}

func (form *Form) subscribed(result subscribeapi.Result, err error) {
	if err != nil || !result.OK() {
		message := SubscriptionFailed
		if form.variant == TechTeamForm && result.Message != "" {
			message = result.Message
		}
		form.alert(message, err)
		return
	}

	form.logger.Info("subscribed", "message", result.Message)
	switch form.variant {
	case CompanyForm:
		form.surface.ShowMessage(result.Message, form.messageDuration)
		form.Reset()
	case TechTeamForm:
		form.surface.Toast(SubscriptionUpdated, form.toastDuration)
		form.Reset()
		form.surface.ClearStatus()
	}
}

// Reset returns the form to its initial input state: empty inputs, no
// selected tags, no open dropdowns, and on the tech-team form the
// tech-team input disabled again. Candidate lists are kept.
func (form *Form) Reset() {
	form.email = ""
	form.lookedUpEmail = ""
	for _, widget := range form.widgets {
		widget.Reset()
	}
	if form.variant == TechTeamForm {
		form.SetTechTeamsEnabled(false)
	}
	form.surface.FormReset()
}

// ExpressInterest registers the current email's interest in upcoming
// publisher kinds.
func (form *Form) ExpressInterest() {
	email := strings.TrimSpace(form.email)
	form.enqueue(requestInterest, func(ctx context.Context) Completion {
		err := form.backend.Interested(ctx, email)
		return func() {
			if err != nil {
				form.alert(GenericFailure, err)
				return
			}
			form.surface.Toast(InterestThanks, form.toastDuration)
		}
	})
}

// OpenFeedback shows the feedback card. Only one card is shown at a
// time; returns false when it is already open.
func (form *Form) OpenFeedback() bool {
	if form.feedbackOpen {
		return false
	}
	form.feedbackOpen = true
	return true
}

// CloseFeedback hides the feedback card without sending.
func (form *Form) CloseFeedback() {
	form.feedbackOpen = false
}

// SendFeedback sends text and closes the card. Blank text is blocked
// with an alert and the card stays open.
func (form *Form) SendFeedback(text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		form.surface.Alert(FeedbackEmpty)
		return
	}
	form.feedbackOpen = false

	form.enqueue(requestFeedback, func(ctx context.Context) Completion {
		result, err := form.backend.Feedback(ctx, text)
		return func() {
			if err == nil && result.OK() {
				form.surface.Toast(FeedbackSent, form.toastDuration)
				return
			}
			message := result.Message
			if message == "" {
				message = FeedbackFailed
			}
			form.alert(message, err)
		}
	})
}

// alert logs and shows a failure.
func (form *Form) alert(message string, err error) {
	form.logger.Warn("alert", "message", message, "error", err)
	form.surface.Alert(message)
}
