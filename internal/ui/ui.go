// Package ui holds the presentational primitives every page is built from:
// sidebar regions, a state-controlled dialog, form controls and the user badge.
// They render server-side with gomponents and become interactive through htmx
// attributes; none of them hold state of their own.
package ui

import (
	"encoding/json"
	"strings"

	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
)

// cx joins the non-empty class lists.
func cx(classes ...string) string {
	parts := make([]string, 0, len(classes))
	for _, c := range classes {
		if c = strings.TrimSpace(c); c != "" {
			parts = append(parts, c)
		}
	}
	return strings.Join(parts, " ")
}

// Action describes the htmx request an interactive primitive fires.
type Action struct {
	// URL receives the request as a POST.
	URL string
	// Values are sent as form values alongside the request.
	Values map[string]string
	// Target is the element id (without '#') replaced by the response.
	// An empty Target swaps the element itself.
	Target string
}

// Attrs renders the action as htmx attributes.
func (a Action) Attrs() g.Node {
	target := "this"
	if a.Target != "" {
		target = "#" + a.Target
	}
	nodes := g.Group{
		hx.Post(a.URL),
		hx.Target(target),
		hx.Swap("outerHTML"),
	}
	if len(a.Values) > 0 {
		vals, _ := json.Marshal(a.Values)
		nodes = append(nodes, hx.Vals(string(vals)))
	}
	return nodes
}
