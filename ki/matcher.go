package ki

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Matcher is a pluggable lookahead strategy used by the Scanner. Match
// inspects input at start and returns the end offset of the matched text
// (exclusive, in runes), or -1 if nothing matched. Matchers are stateless.
type Matcher interface {
	Match(input []rune, start int) int
}

// LiteralMatcher matches a fixed literal string. It succeeds iff the
// input at start begins with the literal.
type LiteralMatcher string

// Match returns start + len(literal) on success, -1 otherwise.
func (m LiteralMatcher) Match(input []rune, start int) int {
	lit := []rune(string(m))
	if start+len(lit) > len(input) {
		return -1
	}
	for i, r := range lit {
		if input[start+i] != r {
			return -1
		}
	}
	return start + len(lit)
}

// CharsetMatcher greedily matches a maximal run of runes drawn from a
// fixed allowed set. It reports no match only when zero runes matched.
type CharsetMatcher string

// Match returns the end of the run, or -1 if the rune at start is not in
// the set.
func (m CharsetMatcher) Match(input []rune, start int) int {
	set := string(m)
	end := start
	for end < len(input) && strings.ContainsRune(set, input[end]) {
		end++
	}
	if end == start {
		return -1
	}
	return end
}

// RegexMatcher matches a regular expression anchored at start.
type RegexMatcher struct {
	re *regexp.Regexp
}

// NewRegexMatcher compiles pattern into a matcher.
func NewRegexMatcher(pattern string) (*RegexMatcher, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return &RegexMatcher{re: re}, nil
}

// MustRegexMatcher is like NewRegexMatcher but panics on a bad pattern.
func MustRegexMatcher(pattern string) *RegexMatcher {
	return &RegexMatcher{re: regexp.MustCompile(pattern)}
}

// Match returns the end of the anchored match, or -1. The pattern must
// match at start itself; matches further into the input do not count.
func (m *RegexMatcher) Match(input []rune, start int) int {
	if start > len(input) {
		return -1
	}
	s := string(input[start:])
	loc := m.re.FindStringIndex(s)
	if loc == nil || loc[0] != 0 {
		return -1
	}
	return start + utf8.RuneCountInString(s[:loc[1]])
}

// FirstOfMatcher tries its sub-matchers in declaration order and returns
// the FIRST success. There is no longest-match semantics: an earlier
// matcher wins even when a later one would match more input.
type FirstOfMatcher []Matcher

// Match returns the first sub-matcher's result, or -1 if none matched.
func (m FirstOfMatcher) Match(input []rune, start int) int {
	for _, sub := range m {
		if end := sub.Match(input, start); end >= 0 {
			return end
		}
	}
	return -1
}
