// Package extract recovers JSON values from language-model output.
//
// Model output is often almost valid: wrapped in markdown fences or prose,
// followed by commentary, or cut off after the useful value. Extract tries a
// fixed sequence of strategies and returns the first value that decodes into
// the requested type. It never returns an error and never panics; when
// nothing decodes it hands back the caller's fallback.
package extract

import (
	"encoding/json"
	"regexp"
	"strings"
)

// Outcome is the result of an extraction. When Recovered is false, Value is
// the fallback passed to Extract.
type Outcome[T any] struct {
	Value     T
	Recovered bool
}

var (
	// Fence markers only count at the start of a line, so backticks inside
	// JSON string values survive.
	fencePattern = regexp.MustCompile("(?m)^[ \t]*```[A-Za-z0-9_+-]*")

	arrayGreedy  = regexp.MustCompile(`(?s)\[.*\]`)
	arrayLazy    = regexp.MustCompile(`(?s)\[.*?\]`)
	objectGreedy = regexp.MustCompile(`(?s)\{.*\}`)
	objectLazy   = regexp.MustCompile(`(?s)\{.*?\}`)
)

// Extract returns the first JSON value in text that decodes into T.
//
// Strategies, first success wins:
//  1. strip code fences and surrounding whitespace;
//  2. balanced scan for {...} spans, in order of position;
//  3. balanced scan for [...] spans;
//  4. regex spans (first opener to last closer, then to nearest closer),
//     arrays before objects;
//  5. the whole cleaned string;
//  6. the fallback, with Recovered false.
//
// In step 2 an object that sits inside an earlier complete array which also
// decodes into T yields that array: the first complete value is the
// outermost one.
//
// Steps 2 to 4 only look at text before the first opener that starts a JSON
// value but never closes. Everything after it belongs to the truncated value,
// and a fragment of that value is not a result.
func Extract[T any](text string, fallback T) Outcome[T] {
	cleaned := Clean(text)
	if cleaned == "" {
		return Outcome[T]{Value: fallback}
	}

	complete := cleaned[:truncatedAt(cleaned)]
	if v, ok := scanObjects[T](complete); ok {
		return Outcome[T]{Value: v, Recovered: true}
	}
	if v, ok := scanArrays[T](complete); ok {
		return Outcome[T]{Value: v, Recovered: true}
	}
	for _, re := range []*regexp.Regexp{arrayGreedy, arrayLazy, objectGreedy, objectLazy} {
		if span := re.FindString(complete); span != "" {
			if v, ok := decode[T](span); ok {
				return Outcome[T]{Value: v, Recovered: true}
			}
		}
	}
	if v, ok := decode[T](cleaned); ok {
		return Outcome[T]{Value: v, Recovered: true}
	}

	return Outcome[T]{Value: fallback}
}

// Value is Extract without the Recovered flag.
func Value[T any](text string, fallback T) T {
	return Extract(text, fallback).Value
}

// Clean removes fenced code-block markers (with an optional language tag)
// and trims surrounding whitespace.
func Clean(text string) string {
	return strings.TrimSpace(fencePattern.ReplaceAllString(text, ""))
}

// truncatedAt returns the position of the first top-level opener that starts
// a JSON value and never closes, or len(s). Complete spans are skipped whole.
// An unclosed opener followed by prose, as in "[ draft:", is not a value.
func truncatedAt(s string) int {
	for i := 0; i < len(s); i++ {
		var closer byte
		switch s[i] {
		case '{':
			closer = '}'
		case '[':
			closer = ']'
		default:
			continue
		}
		end := spanEnd(s, i, s[i], closer)
		if end >= 0 {
			i = end - 1
			continue
		}
		if startsValue(s[i+1:], s[i]) {
			return i
		}
	}
	return len(s)
}

// startsValue reports whether rest, the text after an opener, begins the
// way the body of a JSON object or array does. Nothing at all counts too.
func startsValue(rest string, opener byte) bool {
	rest = strings.TrimLeft(rest, " \t\r\n")
	if rest == "" {
		return true
	}
	switch c := rest[0]; {
	case c == '"':
		return true
	case opener == '{':
		return c == '}'
	case c == ']' || c == '{' || c == '[' || c == '-' || (c >= '0' && c <= '9'):
		return true
	}
	for _, lit := range []string{"true", "false", "null"} {
		if strings.HasPrefix(rest, lit) {
			return true
		}
	}
	return false
}

func scanObjects[T any](s string) (T, bool) {
	for start := strings.IndexByte(s, '{'); start >= 0; start = nextIndex(s, start, '{') {
		end := spanEnd(s, start, '{', '}')
		if end < 0 {
			continue
		}
		v, ok := decode[T](s[start:end])
		if !ok {
			// Braces nested in a span that does not decode are part of it.
			start = end - 1
			continue
		}
		if outer, ok := enclosingArray[T](s, start, end); ok {
			return outer, true
		}
		return v, true
	}
	var zero T
	return zero, false
}

// enclosingArray looks for a complete [...] span starting before start and
// ending at or after end that decodes into T. The earliest opener wins.
func enclosingArray[T any](s string, start, end int) (T, bool) {
	for open := strings.IndexByte(s, '['); open >= 0 && open < start; open = nextIndex(s, open, '[') {
		closeAt := spanEnd(s, open, '[', ']')
		if closeAt < end {
			continue
		}
		if v, ok := decode[T](s[open:closeAt]); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

func scanArrays[T any](s string) (T, bool) {
	for start := strings.IndexByte(s, '['); start >= 0; start = nextIndex(s, start, '[') {
		end := spanEnd(s, start, '[', ']')
		if end < 0 {
			continue
		}
		if v, ok := decode[T](s[start:end]); ok {
			return v, true
		}
		start = end - 1
	}
	var zero T
	return zero, false
}

// nextIndex returns the position of the next c after from, or -1.
func nextIndex(s string, from int, c byte) int {
	i := strings.IndexByte(s[from+1:], c)
	if i < 0 {
		return -1
	}
	return from + 1 + i
}

// spanEnd returns the index just past the delimiter that closes the one at
// start, or -1 if it never closes. Delimiters inside JSON string literals do
// not count.
func spanEnd(s string, start int, opener, closer byte) int {
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case opener:
			depth++
		case closer:
			depth--
			if depth == 0 {
				return i + 1
			}
		}
	}
	return -1
}

// decode unmarshals s into a fresh T. A bare null is a miss: it carries no
// value worth preferring over the fallback.
func decode[T any](s string) (v T, ok bool) {
	defer func() {
		if recover() != nil {
			var zero T
			v, ok = zero, false
		}
	}()

	if strings.TrimSpace(s) == "null" {
		return v, false
	}
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		var zero T
		return zero, false
	}
	return v, true
}
