package domain

import (
	"fmt"
	"strings"
	"unicode"
)

// Query is a compiled wildcard expression used to filter discovered projects.
// Supported wildcards:
//
//	'?' an optional character
//	'_' a required character
//	'#' a required digit run
//	'*' any string
//
// Fixed text matches case-insensitively. A query matches a project when it
// matches the project's directory name or any component of its path.
type Query struct {
	expr  string
	parts []part
}

type partKind int

const (
	fixedText partKind = iota
	optionalChar
	requiredChar
	anyString
	digitRun
)

type part struct {
	kind partKind
	text string // lowercased, fixedText only
}

// ParseQuery compiles a wildcard expression
func ParseQuery(s string) (Query, error) {
	expr := strings.TrimSpace(s)
	if expr == "" {
		return Query{}, fmt.Errorf("cannot parse empty query")
	}

	var parts []part
	for _, ch := range expr {
		switch ch {
		case '?':
			parts = append(parts, part{kind: optionalChar})
		case '_':
			parts = append(parts, part{kind: requiredChar})
		case '*':
			parts = append(parts, part{kind: anyString})
		case '#':
			parts = append(parts, part{kind: digitRun})
		default:
			lower := strings.ToLower(string(ch))
			if n := len(parts); n > 0 && parts[n-1].kind == fixedText {
				parts[n-1].text += lower
			} else {
				parts = append(parts, part{kind: fixedText, text: lower})
			}
		}
	}

	return Query{expr: expr, parts: parts}, nil
}

func (q Query) String() string {
	return q.expr
}

// IsZero reports whether the query was never parsed
func (q Query) IsZero() bool {
	return q.expr == ""
}

// Matches reports whether the query matches the whole subject string
func (q Query) Matches(subject string) bool {
	rs := []rune(strings.ToLower(subject))
	i, pos := 0, 0
	for i < len(q.parts) {
		ni, npos, ok := matchPart(q.parts, i, rs, pos)
		if !ok {
			return false
		}
		i, pos = ni, npos
	}
	return pos >= len(rs)
}

// MatchesProject reports whether the query matches the project name or any
// path component. Both separator styles are split on, so cached paths match
// the same way on every platform.
func (q Query) MatchesProject(p Project) bool {
	if q.Matches(p.Name()) {
		return true
	}
	components := strings.FieldsFunc(p.Path, func(r rune) bool {
		return r == '/' || r == '\\'
	})
	for _, component := range components {
		if q.Matches(component) {
			return true
		}
	}
	return false
}

// matchPart matches parts[i] at rs[pos] and returns the next part index and
// rune position. '*' commits to the first position where the following part
// matches; there is no further backtracking.
func matchPart(parts []part, i int, rs []rune, pos int) (int, int, bool) {
	switch p := parts[i]; p.kind {
	case optionalChar:
		return i + 1, pos + 1, true

	case requiredChar:
		if pos >= len(rs) {
			return 0, 0, false
		}
		return i + 1, pos + 1, true

	case digitRun:
		start := pos
		for pos < len(rs) && unicode.IsDigit(rs[pos]) {
			pos++
		}
		if pos == start {
			return 0, 0, false
		}
		return i + 1, pos, true

	case fixedText:
		for _, want := range p.text {
			if pos >= len(rs) || rs[pos] != want {
				return 0, 0, false
			}
			pos++
		}
		return i + 1, pos, true

	case anyString:
		if i+1 >= len(parts) {
			return i + 1, len(rs), true
		}
		for ; pos < len(rs); pos++ {
			if ni, npos, ok := matchPart(parts, i+1, rs, pos); ok {
				return ni, npos, true
			}
		}
		return 0, 0, false
	}
	return 0, 0, false
}
