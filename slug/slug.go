// Package slug derives URL-safe anchors from heading text the way GitHub
// does for rendered markdown headings.
package slug

import (
	"strconv"
	"strings"
	"unicode"
)

// Slugger remembers the slugs it has handed out and disambiguates repeats
// with a numeric suffix. A Slugger is not safe for concurrent use; give
// each render its own.
type Slugger struct {
	seen map[string]int
}

// New returns an empty Slugger.
func New() *Slugger {
	return &Slugger{seen: map[string]int{}}
}

// Reset forgets every slug handed out so far.
func (s *Slugger) Reset() {
	s.seen = map[string]int{}
}

// Slug returns the slug for text, suffixed "-1", "-2", ... when the same
// slug was already returned since the last Reset.
func (s *Slugger) Slug(text string) string {
	if s.seen == nil {
		s.seen = map[string]int{}
	}
	base := Make(text)
	slug := base
	for {
		if _, ok := s.seen[slug]; !ok {
			break
		}
		s.seen[base]++
		slug = base + "-" + strconv.Itoa(s.seen[base])
	}
	s.seen[slug] = 0
	return slug
}

// Make returns the slug for text without any collision handling: lower
// case, punctuation and symbols dropped, spaces turned into hyphens.
func Make(text string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(text) {
		switch {
		case r == ' ':
			b.WriteByte('-')
		case r == '-', r == '_':
			b.WriteRune(r)
		case unicode.IsLetter(r), unicode.IsNumber(r), unicode.IsMark(r):
			b.WriteRune(r)
		}
	}
	return b.String()
}
