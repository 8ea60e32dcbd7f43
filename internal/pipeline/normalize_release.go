package pipeline

import (
	"regexp"
	"strconv"
	"strings"

	"handhelds/internal"
	"handhelds/internal/util"
)

var reYear = regexp.MustCompile(`\b((?:19|20)\d{2})\b`)

var upcoming = has("upcoming", "tba", "tbd", "coming soon", "pre-order", "preorder")

func ParseReleased(raw string) *internal.Released {
	text := util.NormalizeSpaces(raw)
	if text == "" || text == "?" {
		return nil
	}
	lower := strings.ToLower(text)
	r := &internal.Released{Raw: text, Upcoming: upcoming(lower)}
	if m := reYear.FindStringSubmatch(text); m != nil {
		if y, err := strconv.Atoi(m[1]); err == nil {
			r.Year = &y
		}
	}
	if r.Year == nil && !r.Upcoming {
		return nil
	}
	return r
}

func ParseOS(raw string) *internal.OS {
	text, _, ok := cellText(raw)
	if !ok {
		return nil
	}
	return &internal.OS{Raw: text, List: util.SplitList(text)}
}

// ParseRatingMark reads an emulation mark: A..F map to 5..0, "ALL" has no number.
func ParseRatingMark(raw string) (mark string, number *int, ok bool) {
	text := strings.ToUpper(strings.TrimSpace(raw))
	if text == "ALL" {
		return "ALL", nil, true
	}
	text = strings.TrimRight(text, "+-")
	if len(text) != 1 {
		return "", nil, false
	}
	c := text[0]
	switch {
	case c >= 'A' && c <= 'F':
		n := 5 - int(c-'A')
		return text, &n, true
	case c >= '0' && c <= '5':
		n := int(c - '0')
		return string(rune('A' + 5 - n)), &n, true
	}
	return "", nil, false
}
