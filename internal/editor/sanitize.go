package editor

import (
	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer strips markup that must not reach a preview frame's
// srcdoc: script tags live in Document.JS, not in the HTML source, and
// event handler attributes would bypass the sandbox's script policy.
type Sanitizer struct {
	policy *bluemonday.Policy
}

// NewSanitizer builds the snippet policy. Layout and embedding elements
// stay allowed because math widgets mount into author-provided
// containers; scripts and handlers are dropped.
func NewSanitizer() *Sanitizer {
	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("id", "class", "style").Globally()
	policy.AllowElements("figure", "figcaption", "section", "article", "canvas", "svg")
	policy.AllowAttrs("width", "height").OnElements("canvas", "svg")
	return &Sanitizer{policy: policy}
}

// Sanitize returns the cleaned HTML and whether anything was removed.
func (s *Sanitizer) Sanitize(html string) (clean string, modified bool) {
	clean = s.policy.Sanitize(html)
	return clean, clean != html
}
