package query

import (
	"net/url"
	"strconv"
	"strings"
)

// All is the sentinel value meaning "no constraint"
const All = "all"

// Criteria names the attributes to filter by. Empty strings, "all" and nil
// pointers impose no constraint. Fields that do not apply to a collection
// are ignored by that collection's filter.
type Criteria struct {
	Category   string
	Event      string
	Style      string
	Type       string
	Flavor     string
	Difficulty string
	Search     string
	Molecular  *bool
	Featured   *bool
}

// Bool is a helper for building boolean criteria literals
func Bool(b bool) *bool { return &b }

// ParseCriteria reads criteria from URL query values. "occasion" is accepted
// as an alias of "event". Unknown keys are ignored and unparsable booleans
// are treated as absent.
func ParseCriteria(v url.Values) Criteria {
	c := Criteria{
		Category:   v.Get("category"),
		Event:      v.Get("event"),
		Style:      v.Get("style"),
		Type:       v.Get("type"),
		Flavor:     v.Get("flavor"),
		Difficulty: v.Get("difficulty"),
		Search:     v.Get("search"),
		Molecular:  parseBool(v.Get("molecular")),
		Featured:   parseBool(v.Get("featured")),
	}
	if c.Event == "" {
		c.Event = v.Get("occasion")
	}
	return c
}

func parseBool(s string) *bool {
	if s == "" {
		return nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return nil
	}
	return &b
}

// value reports the trimmed criterion and whether it constrains anything
func (c Criteria) value(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, All) {
		return "", false
	}
	return s, true
}

func (c Criteria) event() (string, bool) {
	ev, ok := c.value(c.Event)
	if !ok {
		return "", false
	}
	return NormalizeTag(ev), true
}

// search is free text, so "all" is a literal term here rather than the sentinel
func (c Criteria) search() (string, bool) {
	q := strings.TrimSpace(c.Search)
	return strings.ToLower(q), q != ""
}
