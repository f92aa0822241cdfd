// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package mockbackend

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/klauspost/compress/gzhttp"

	"github.com/bureau-foundation/techfeed/lib/netutil"
)

// Server serves the subscription API from in-memory state. All methods
// are safe for concurrent use.
type Server struct {
	logger *slog.Logger

	mu            sync.Mutex
	companies     []string
	categories    map[string][]string
	techTeams     []string
	subscriptions []Subscription
	interests     []string
	feedback      []string
	failures      map[string]injectedFailure
}

type injectedFailure struct {
	status  int
	message string
}

// result is the status/message body of the submission endpoints.
type result struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// New returns a server seeded from fixture. A nil logger discards.
func New(fixture Fixture, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	server := &Server{
		logger:     logger,
		companies:  slices.Clone(fixture.Companies),
		categories: make(map[string][]string, len(fixture.Categories)),
		failures:   make(map[string]injectedFailure),
	}
	for company, categories := range fixture.Categories {
		server.categories[company] = slices.Clone(categories)
	}
	for _, team := range fixture.TechTeams {
		server.techTeams = append(server.techTeams, strings.ToLower(team))
	}
	for _, subscription := range fixture.Subscriptions {
		server.addSubscription(subscription)
	}
	return server
}

// Handler returns the HTTP surface: a chi router behind gzip
// compression.
func (server *Server) Handler() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(server.failureInjection)
	router.Use(server.requestLog)

	router.Get("/companies", server.handleCompanies)
	router.Get("/categories", server.handleCategories)
	router.Get("/techteams", server.handleTechTeams)
	router.Get("/subscriptions_for_email", server.handleSubscriptionsForEmail)
	router.Post("/subscribe", server.handleSubscribe)
	router.Post("/interested", server.handleInterested)
	router.Post("/feedback", server.handleFeedback)

	return gzhttp.GzipHandler(router)
}

// FailWith makes every request to path answer with status and an error
// result carrying message. A zero status clears the failure.
func (server *Server) FailWith(path string, status int, message string) {
	server.mu.Lock()
	defer server.mu.Unlock()
	if status == 0 {
		delete(server.failures, path)
		return
	}
	server.failures[path] = injectedFailure{status: status, message: message}
}

// SetCategories replaces the category list of one company.
func (server *Server) SetCategories(company string, categories []string) {
	server.mu.Lock()
	defer server.mu.Unlock()
	server.categories[company] = slices.Clone(categories)
}

// Subscriptions returns the recorded subscriptions of email in
// insertion order.
func (server *Server) Subscriptions(email string) []Subscription {
	server.mu.Lock()
	defer server.mu.Unlock()
	email = normalizeEmail(email)
	var matching []Subscription
	for _, subscription := range server.subscriptions {
		if subscription.Email == email {
			matching = append(matching, subscription)
		}
	}
	return matching
}

// Interests returns the emails that registered interest, in order.
func (server *Server) Interests() []string {
	server.mu.Lock()
	defer server.mu.Unlock()
	return slices.Clone(server.interests)
}

// Feedback returns the feedback texts received, in order.
func (server *Server) Feedback() []string {
	server.mu.Lock()
	defer server.mu.Unlock()
	return slices.Clone(server.feedback)
}

func (server *Server) handleCompanies(writer http.ResponseWriter, request *http.Request) {
	server.mu.Lock()
	entries := make([]map[string]string, 0, len(server.companies))
	for _, company := range server.companies {
		entries = append(entries, map[string]string{"company": company})
	}
	server.mu.Unlock()
	server.writeJSON(writer, http.StatusOK, entries)
}

func (server *Server) handleCategories(writer http.ResponseWriter, request *http.Request) {
	company := request.URL.Query().Get("company")
	server.mu.Lock()
	categories := slices.Clone(server.categories[company])
	server.mu.Unlock()
	if categories == nil {
		categories = []string{}
	}
	server.writeJSON(writer, http.StatusOK, categories)
}

func (server *Server) handleTechTeams(writer http.ResponseWriter, request *http.Request) {
	search := strings.ToLower(request.URL.Query().Get("search"))
	server.mu.Lock()
	teams := make([]string, 0, len(server.techTeams))
	for _, team := range server.techTeams {
		if strings.Contains(team, search) {
			teams = append(teams, team)
		}
	}
	server.mu.Unlock()
	server.writeJSON(writer, http.StatusOK, teams)
}

func (server *Server) handleSubscriptionsForEmail(writer http.ResponseWriter, request *http.Request) {
	email := normalizeEmail(request.URL.Query().Get("email"))
	if email == "" {
		server.writeJSON(writer, http.StatusOK, []string{})
		return
	}

	var groups orderedGroups
	for _, subscription := range server.Subscriptions(email) {
		groups.add(subscription.Group, subscription.Publisher)
	}
	server.writeJSON(writer, http.StatusOK, groups)
}

func (server *Server) handleSubscribe(writer http.ResponseWriter, request *http.Request) {
	if err := request.ParseForm(); err != nil {
		server.writeJSON(writer, http.StatusBadRequest, result{Status: "error", Message: "Malformed form body"})
		return
	}
	email := normalizeEmail(request.PostForm.Get("email"))
	topic := strings.TrimSpace(request.PostForm.Get("topic"))
	company := strings.TrimSpace(request.PostForm.Get("company"))
	techTeams := splitList(request.PostForm.Get("techteams"))
	categories := splitList(request.PostForm.Get("categories"))

	switch {
	case email != "" && topic != "" && len(techTeams) > 0:
		server.subscribeTechTeams(writer, email, topic, techTeams)
	case email != "" && company != "" && len(categories) > 0:
		server.subscribeCategories(writer, email, company, categories)
	default:
		server.writeJSON(writer, http.StatusBadRequest, result{
			Status:  "error",
			Message: "Missing email or topic or publisher",
		})
	}
}

func (server *Server) subscribeTechTeams(writer http.ResponseWriter, email, topic string, teams []string) {
	server.mu.Lock()
	defer server.mu.Unlock()

	normalized := make([]string, 0, len(teams))
	for _, team := range teams {
		team = strings.ToLower(team)
		if !slices.Contains(server.techTeams, team) {
			server.writeJSON(writer, http.StatusNotFound, result{
				Status:  "error",
				Message: fmt.Sprintf("Publisher '%s' not found.", team),
			})
			return
		}
		normalized = append(normalized, team)
	}
	for _, team := range normalized {
		server.addSubscription(Subscription{Email: email, Group: topic, Publisher: team})
	}
	server.writeJSON(writer, http.StatusOK, result{Status: "success", Message: "Subscription updated."})
}

func (server *Server) subscribeCategories(writer http.ResponseWriter, email, company string, categories []string) {
	server.mu.Lock()
	defer server.mu.Unlock()

	if !slices.Contains(server.companies, company) {
		server.writeJSON(writer, http.StatusNotFound, result{
			Status:  "error",
			Message: fmt.Sprintf("Company '%s' not found.", company),
		})
		return
	}
	for _, category := range categories {
		server.addSubscription(Subscription{Email: email, Group: company, Publisher: category})
	}
	server.writeJSON(writer, http.StatusOK, result{
		Status:  "success",
		Message: fmt.Sprintf("Subscribed to %d categories from %s.", len(categories), company),
	})
}

func (server *Server) handleInterested(writer http.ResponseWriter, request *http.Request) {
	var body struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(request.Body).Decode(&body); err != nil {
		server.writeJSON(writer, http.StatusBadRequest, result{Status: "error", Message: "Malformed JSON body"})
		return
	}
	server.mu.Lock()
	server.interests = append(server.interests, normalizeEmail(body.Email))
	server.mu.Unlock()
	server.writeJSON(writer, http.StatusOK, result{Status: "success"})
}

func (server *Server) handleFeedback(writer http.ResponseWriter, request *http.Request) {
	var body struct {
		Feedback string `json:"feedback"`
	}
	if err := json.NewDecoder(request.Body).Decode(&body); err != nil {
		server.writeJSON(writer, http.StatusBadRequest, result{Status: "error", Message: "Malformed JSON body"})
		return
	}
	text := strings.TrimSpace(body.Feedback)
	if text == "" {
		server.writeJSON(writer, http.StatusBadRequest, result{Status: "error", Message: "Feedback is empty."})
		return
	}
	server.mu.Lock()
	server.feedback = append(server.feedback, text)
	server.mu.Unlock()
	server.writeJSON(writer, http.StatusOK, result{Status: "success", Message: "Thanks for the feedback!"})
}

// addSubscription records a subscription unless the same (email,
// group, publisher) row exists. Caller holds mu (or is New).
func (server *Server) addSubscription(subscription Subscription) {
	subscription.Email = normalizeEmail(subscription.Email)
	if slices.Contains(server.subscriptions, subscription) {
		return
	}
	server.subscriptions = append(server.subscriptions, subscription)
}

func (server *Server) failureInjection(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		server.mu.Lock()
		failure, failing := server.failures[request.URL.Path]
		server.mu.Unlock()
		if failing {
			server.writeJSON(writer, failure.status, result{Status: "error", Message: failure.message})
			return
		}
		next.ServeHTTP(writer, request)
	})
}

func (server *Server) requestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		start := time.Now()
		wrapped := middleware.NewWrapResponseWriter(writer, request.ProtoMajor)
		next.ServeHTTP(wrapped, request)
		server.logger.Info("request",
			"method", request.Method,
			"path", request.URL.Path,
			"request_id", request.Header.Get(netutil.RequestIDHeader),
			"user_agent", request.UserAgent(),
			"status", wrapped.Status(),
			"duration", time.Since(start),
		)
	})
}

func (server *Server) writeJSON(writer http.ResponseWriter, status int, v any) {
	if err := netutil.WriteJSON(writer, status, v); err != nil {
		server.logger.Warn("writing response", "error", err)
	}
}

// orderedGroups encodes as a JSON object whose keys keep first-seen
// order. Publishers within a group are unique.
type orderedGroups struct {
	names []string
	items map[string][]string
}

func (groups *orderedGroups) add(name, publisher string) {
	if groups.items == nil {
		groups.items = make(map[string][]string)
	}
	existing, seen := groups.items[name]
	if !seen {
		groups.names = append(groups.names, name)
	}
	if !slices.Contains(existing, publisher) {
		groups.items[name] = append(existing, publisher)
	}
}

func (groups orderedGroups) MarshalJSON() ([]byte, error) {
	var buffer bytes.Buffer
	buffer.WriteByte('{')
	for index, name := range groups.names {
		if index > 0 {
			buffer.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(groups.items[name])
		if err != nil {
			return nil, err
		}
		buffer.Write(key)
		buffer.WriteByte(':')
		buffer.Write(value)
	}
	buffer.WriteByte('}')
	return buffer.Bytes(), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// splitList splits a comma-joined form value, trimming whitespace and
// dropping empty entries.
func splitList(value string) []string {
	var items []string
	for item := range strings.SplitSeq(value, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}
