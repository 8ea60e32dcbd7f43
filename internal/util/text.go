package util

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	reSpaces            = regexp.MustCompile(`\s+`)
	reNonSlug           = regexp.MustCompile(`[^a-z0-9]+`)
	reTrailingParenthes = regexp.MustCompile(`\s*\([^()]*\)\s*$`)
)

func NormalizeSpaces(input string) string {
	return strings.TrimSpace(reSpaces.ReplaceAllString(input, " "))
}

// Slugify lowercases, strips accents and joins alphanumeric runs with "-".
func Slugify(input string) string {
	// transformers and casers are stateful and must not be shared across goroutines
	stripAccents := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	s, _, err := transform.String(stripAccents, strings.ToLower(input))
	if err != nil {
		s = strings.ToLower(input)
	}
	s = strings.ReplaceAll(s, "+", " plus ")
	s = reNonSlug.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// DisplayName upper-cases the first letter of every word, keeps the rest of
// each word as written and drops one trailing parenthetical suffix.
func DisplayName(input string) string {
	s := NormalizeSpaces(input)
	s = reTrailingParenthes.ReplaceAllString(s, "")
	return cases.Title(language.Und, cases.NoLower).String(s)
}

// SplitList splits a free-text cell on the separators the sheet uses for
// lists (",", ";", "/", "|", newline and " + "). Separators inside
// parentheses are kept, so "Linux (ArkOS / Batocera)" stays one item.
func SplitList(input string) []string {
	out := []string{}
	flush := func(b *strings.Builder) {
		if p := NormalizeSpaces(b.String()); p != "" {
			out = append(out, p)
		}
		b.Reset()
	}

	var b strings.Builder
	depth := 0
	rs := []rune(input)
	for i, r := range rs {
		switch {
		case r == '(' || r == '[':
			depth++
		case (r == ')' || r == ']') && depth > 0:
			depth--
		case depth == 0 && (r == ',' || r == ';' || r == '/' || r == '|' || r == '\n'):
			flush(&b)
			continue
		case depth == 0 && r == '+' && i > 0 && i < len(rs)-1 && rs[i-1] == ' ' && rs[i+1] == ' ':
			flush(&b)
			continue
		}
		b.WriteRune(r)
	}
	flush(&b)
	return out
}

func ContainsAny(haystack string, needles ...string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}

// IsBlank reports cells the sheet leaves empty or marks as unknown.
func IsBlank(input string) bool {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "", "?", "-", "n/a", "na", "tbd", "unknown":
		return true
	}
	return false
}

func Tokenize(input string) []string {
	parts := strings.Split(Slugify(input), "-")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if len([]rune(p)) >= 2 {
			out = append(out, p)
		}
	}
	return out
}

func DiceCoefficient(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 1
	}

	pairs := func(s string) []string {
		r := []rune(s)
		if len(r) < 2 {
			return nil
		}
		out := make([]string, 0, len(r)-1)
		for i := 0; i < len(r)-1; i++ {
			out = append(out, string(r[i:i+2]))
		}
		return out
	}

	aPairs := pairs(a)
	bPairs := pairs(b)
	if len(aPairs) == 0 || len(bPairs) == 0 {
		return 0
	}

	bCount := map[string]int{}
	for _, p := range bPairs {
		bCount[p]++
	}
	inter := 0
	for _, p := range aPairs {
		if bCount[p] > 0 {
			inter++
			bCount[p]--
		}
	}

	return float64(2*inter) / float64(len(aPairs)+len(bPairs))
}
