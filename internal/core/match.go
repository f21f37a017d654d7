package core

import "strings"

// Fragment is a free-text search term extracted from user input. It matches
// as a case-insensitive literal substring: the fragment is never interpreted
// as a pattern, so characters like '.' or '*' only match themselves.
type Fragment string

// IsZero reports whether the fragment is empty, i.e. no filter was supplied.
func (f Fragment) IsZero() bool {
	return strings.TrimSpace(string(f)) == ""
}

// Match reports whether the fragment occurs anywhere in field, ignoring case.
func (f Fragment) Match(field string) bool {
	return strings.Contains(strings.ToLower(field), strings.ToLower(string(f)))
}

// likeEscaper neutralizes the characters LIKE/ILIKE treats specially, so the
// fragment matches literally on the SQL side as well.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// LikePattern renders the fragment as a substring pattern for
// ILIKE ... ESCAPE '\' queries.
func (f Fragment) LikePattern() string {
	return "%" + likeEscaper.Replace(string(f)) + "%"
}
