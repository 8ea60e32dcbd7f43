package pipeline

import (
	"strings"
	"unicode"

	"handhelds/internal/util"
)

// rule is one step of a keyword ladder; ladders are evaluated top to bottom
// against the lower-cased cell and the first matching rule wins.
type rule struct {
	when   func(lower string) bool
	result string
}

type ladder []rule

func (l ladder) classify(lower string) (string, bool) {
	for _, r := range l {
		if r.when(lower) {
			return r.result, true
		}
	}
	return "", false
}

// classifyOr returns the matching result, or fallback when the ladder falls through.
func (l ladder) classifyOr(lower, fallback string) string {
	if v, ok := l.classify(lower); ok {
		return v
	}
	return fallback
}

func has(needles ...string) func(string) bool {
	return func(lower string) bool {
		return util.ContainsAny(lower, needles...)
	}
}

func hasAll(needles ...string) func(string) bool {
	return func(lower string) bool {
		for _, n := range needles {
			if !strings.Contains(lower, n) {
				return false
			}
		}
		return true
	}
}

// hasWord matches whole alphanumeric tokens, for short keywords such as "bt" or "no".
func hasWord(words ...string) func(string) bool {
	return func(lower string) bool {
		for _, tok := range wordsOf(lower) {
			for _, w := range words {
				if tok == w {
					return true
				}
			}
		}
		return false
	}
}

func either(preds ...func(string) bool) func(string) bool {
	return func(lower string) bool {
		for _, p := range preds {
			if p(lower) {
				return true
			}
		}
		return false
	}
}

func wordsOf(lower string) []string {
	return strings.FieldsFunc(lower, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// cellText trims a cell and reports whether it carries a value at all.
func cellText(raw string) (text, lower string, ok bool) {
	text = util.NormalizeSpaces(raw)
	if util.IsBlank(text) {
		return "", "", false
	}
	return text, strings.ToLower(text), true
}

var negative = hasWord("no", "none", "false", "n")

func ParseText(raw string) *string {
	text, _, ok := cellText(raw)
	if !ok {
		return nil
	}
	return &text
}

func ParseList(raw string) []string {
	text, _, ok := cellText(raw)
	if !ok {
		return nil
	}
	return util.SplitList(text)
}
