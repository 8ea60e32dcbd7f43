package pipeline

import (
	"regexp"
	"strings"

	"handhelds/internal"
	"handhelds/internal/util"
)

var reFaceLetters = regexp.MustCompile(`^[A-Za-z]{2,6}$`)

var dpadLadder = ladder{
	{negative, "none"},
	{has("split", "separate", "individual"), "split"},
	{has("disc", "disk", "circular", "round"), "disc"},
	{has("touch"), "touch"},
	{has("cross", "plus", "d-pad", "dpad", "+"), "cross"},
}

// shared by the volume, brightness and power control cells
var controlLadder = ladder{
	{negative, "none"},
	{has("rocker"), "rocker"},
	{has("wheel", "dial", "knob"), "wheel"},
	{has("slider", "switch"), "slider"},
	{has("menu", "software", "hotkey", "combo", "shortcut"), "software"},
	{has("button"), "button"},
}

func ParseDPad(raw string) *internal.DPad {
	text, lower, ok := cellText(raw)
	if !ok {
		return nil
	}
	kind := dpadLadder.classifyOr(lower, "other")
	return &internal.DPad{Raw: text, Type: &kind}
}

func ParseAnalogs(raw string) *internal.Analogs {
	text, lower, ok := cellText(raw)
	if !ok {
		return nil
	}
	if negative(lower) {
		return &internal.Analogs{Raw: text}
	}
	return &internal.Analogs{
		Raw:          text,
		IsDual:       either(has("dual", "twin", "2x", "x2"), hasWord("2", "two"))(lower),
		IsHallSensor: has("hall")(lower),
		IsSlidePad:   has("slide", "circle pad", "nub")(lower),
		HasL3R3:      either(hasWord("l3", "r3"), has("clickable", "click"))(lower),
	}
}

func ParseShoulderButtons(raw string) *internal.ShoulderButtons {
	text, lower, ok := cellText(raw)
	if !ok {
		return nil
	}
	sb := &internal.ShoulderButtons{Raw: text}
	for _, tok := range wordsOf(lower) {
		switch tok {
		case "l", "l1", "lb":
			sb.HasL1 = true
		case "r", "r1", "rb":
			sb.HasR1 = true
		case "l2", "zl", "lt":
			sb.HasL2 = true
		case "r2", "zr", "rt":
			sb.HasR2 = true
		case "l3":
			sb.HasL3 = true
		case "r3":
			sb.HasR3 = true
		case "2", "two":
			sb.HasL1, sb.HasR1 = true, true
		case "4", "four":
			sb.HasL1, sb.HasR1, sb.HasL2, sb.HasR2 = true, true, true, true
		}
	}
	sb.IsAnalogTriggers = has("analog", "analogue", "hall")(lower)
	return sb
}

// ParseFaceButtons accepts either a list ("A, B, X, Y") or a run of letters ("ABXY").
func ParseFaceButtons(raw string) []string {
	text, _, ok := cellText(raw)
	if !ok {
		return nil
	}
	if reFaceLetters.MatchString(text) && strings.ToUpper(text) == text {
		out := make([]string, 0, len(text))
		for _, r := range text {
			out = append(out, string(r))
		}
		return out
	}
	return util.SplitList(text)
}

func ParseControlType(raw string) *string {
	_, lower, ok := cellText(raw)
	if !ok {
		return nil
	}
	kind := controlLadder.classifyOr(lower, "other")
	return &kind
}
