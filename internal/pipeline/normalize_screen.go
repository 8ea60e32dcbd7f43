package pipeline

import (
	"fmt"
	"regexp"
	"strconv"

	"handhelds/internal"
	"handhelds/internal/util"
)

var (
	reResolution  = regexp.MustCompile(`(\d{2,5})\s*[xX×*]\s*(\d{2,5})`)
	reAspectRatio = regexp.MustCompile(`(\d+(?:[.,]\d+)?)\s*:\s*(\d+(?:[.,]\d+)?)`)
)

// amoled and monochrome oled panels both contain "oled", so they are checked first.
var screenTypeLadder = ladder{
	{hasAll("monochrome", "oled"), "MonochromeOLED"},
	{has("amoled"), "AMOLED"},
	{has("hips"), "HIPS"},
	{has("ips"), "IPS"},
	{hasWord("ads"), "ADS"},
	{has("oled"), "OLED"},
	{has("lcd"), "LCD"},
	{has("ltps"), "LTPS"},
	{has("tft"), "TFT"},
}

func ParseScreenType(raw string) *internal.ScreenType {
	_, lower, ok := cellText(raw)
	if !ok {
		return nil
	}
	st := &internal.ScreenType{
		IsTouchscreen: has("touch")(lower),
		IsPenCapable:  either(hasWord("pen"), has("stylus"))(lower),
	}
	if t, ok := screenTypeLadder.classify(lower); ok {
		st.Type = &t
	}
	return st
}

func ParseResolutions(raw string) []internal.Resolution {
	matches := reResolution.FindAllStringSubmatch(raw, -1)
	if len(matches) == 0 {
		return nil
	}
	out := make([]internal.Resolution, 0, len(matches))
	for _, m := range matches {
		w, errW := strconv.Atoi(m[1])
		h, errH := strconv.Atoi(m[2])
		if errW != nil || errH != nil {
			continue
		}
		out = append(out, internal.Resolution{Width: w, Height: h})
	}
	return out
}

func ParseAspectRatio(raw string) *string {
	m := reAspectRatio.FindStringSubmatch(raw)
	if m == nil {
		return nil
	}
	w, okW := util.ParseFloat(m[1])
	h, okH := util.ParseFloat(m[2])
	if !okW || !okH || w == 0 || h == 0 {
		return nil
	}
	s := fmt.Sprintf("%g:%g", w, h)
	return &s
}
