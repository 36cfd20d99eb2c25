// Package oracle is the offline stand-in for the text-generation backend.
//
// An Oracle holds an ordered table of routes. Each route pairs a predicate
// over the lower-cased prompt with a builder that produces the response. The
// first matching route wins, so routes combining several keywords must come
// before routes on any one of those keywords alone; DefaultRoutes is ordered
// that way and its order is part of the contract.
//
// Every builder is deterministic: identical prompts give identical output.
// List-shaped builders derive their fields from skill and seniority keywords
// found in the prompt instead of returning fixed fixtures.
package oracle

import (
	"encoding/json"
	"strings"
)

// DefaultRouteName is reported by Match when no route applies.
const DefaultRouteName = "default"

// Predicate tests a lower-cased prompt.
type Predicate func(lowerPrompt string) bool

// Builder renders a response for the original prompt.
type Builder func(prompt string) string

// Route is one entry of the dispatch table.
type Route struct {
	Name  string
	Match Predicate
	Build Builder
}

// Oracle implements generation.Synthesizer.
type Oracle struct {
	routes []Route
}

// New returns an Oracle over routes, or over DefaultRoutes when none are given.
func New(routes ...Route) *Oracle {
	if len(routes) == 0 {
		routes = DefaultRoutes()
	}
	table := make([]Route, len(routes))
	copy(table, routes)
	return &Oracle{routes: table}
}

// Synthesize returns the first matching route's output, or the generic
// status payload.
func (o *Oracle) Synthesize(prompt string) string {
	if r, ok := o.route(prompt); ok {
		if out := r.Build(prompt); out != "" {
			return out
		}
	}
	return buildDefault(prompt)
}

// Match returns the name of the route that would answer prompt.
func (o *Oracle) Match(prompt string) string {
	if r, ok := o.route(prompt); ok {
		return r.Name
	}
	return DefaultRouteName
}

func (o *Oracle) route(prompt string) (Route, bool) {
	lower := strings.ToLower(prompt)
	for _, r := range o.routes {
		if r.Match != nil && r.Build != nil && r.Match(lower) {
			return r, true
		}
	}
	return Route{}, false
}

// Contains matches when the prompt contains keyword as a substring.
func Contains(keyword string) Predicate {
	keyword = strings.ToLower(keyword)
	return func(p string) bool { return strings.Contains(p, keyword) }
}

// Word matches when keyword appears as a whole token, so "ats" does not
// fire on "formats".
func Word(keyword string) Predicate {
	keyword = strings.ToLower(keyword)
	return func(p string) bool {
		for _, tok := range tokenize(p) {
			if tok == keyword {
				return true
			}
		}
		return false
	}
}

// All matches when every predicate matches.
func All(ps ...Predicate) Predicate {
	return func(p string) bool {
		for _, pred := range ps {
			if !pred(p) {
				return false
			}
		}
		return len(ps) > 0
	}
}

// Any matches when at least one predicate matches.
func Any(ps ...Predicate) Predicate {
	return func(p string) bool {
		for _, pred := range ps {
			if pred(p) {
				return true
			}
		}
		return false
	}
}

// mustJSON marshals builder output. Builders only marshal plain structs and
// string slices, which cannot fail.
func mustJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return `{"status":"error"}`
	}
	return string(b)
}
