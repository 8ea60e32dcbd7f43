package pipeline

import (
	"regexp"
	"strings"

	"handhelds/internal"
	"handhelds/internal/util"
)

var (
	reClock    = regexp.MustCompile(`(?i)(\d+(?:[.,]\d+)?)\s*(mhz|ghz)`)
	reMemory   = regexp.MustCompile(`(?i)(\d+(?:[.,]\d+)?)\s*(gb|mb|kb)\b`)
	reBattery  = regexp.MustCompile(`(?i)(\d+(?:[.,]\d+)?)\s*(mah|wh)\b`)
	reWeight   = regexp.MustCompile(`(?i)(\d+(?:[.,]\d+)?)\s*(kg|g|oz|lbs?)\b`)
	reDimSplit = regexp.MustCompile(`\s+[xX×]\s+`)
	reDimGlued = regexp.MustCompile(`(\d)\s*[xX×]\s*(\d)`)
	reDimCm    = regexp.MustCompile(`(?i)\d\s*cm\b`)
)

var ddrLadder = ladder{
	{has("lpddr5x"), "LPDDR5X"},
	{has("lpddr5"), "LPDDR5"},
	{has("lpddr4x"), "LPDDR4X"},
	{has("lpddr4"), "LPDDR4"},
	{has("lpddr3"), "LPDDR3"},
	{has("lpddr2"), "LPDDR2"},
	{has("ddr5"), "DDR5"},
	{has("ddr4"), "DDR4"},
	{has("ddr3"), "DDR3"},
	{has("ddr2"), "DDR2"},
	{has("ddr"), "other"},
}

var chargePortLadder = ladder{
	{has("usb-c", "usb c", "type-c", "type c", "usbc"), "USB-C"},
	{has("micro"), "Micro-USB"},
	{has("mini"), "Mini-USB"},
	{has("lightning"), "Lightning"},
	{either(has("barrel"), hasWord("dc")), "DC"},
	{has("proprietary", "pogo", "dock"), "Proprietary"},
}

func ParseClockSpeed(raw string) *internal.ClockSpeed {
	m := reClock.FindStringSubmatch(raw)
	if m == nil {
		return nil
	}
	v, ok := util.ParseFloat(m[1])
	if !ok {
		return nil
	}
	unit := "MHz"
	if strings.EqualFold(m[2], "ghz") {
		unit = "GHz"
	}
	return &internal.ClockSpeed{Min: v, Max: v, Unit: unit}
}

func ParseRAM(raw string) *internal.RAM {
	text, lower, ok := cellText(raw)
	if !ok {
		return nil
	}
	ram := &internal.RAM{Raw: text}
	if m := reMemory.FindStringSubmatch(text); m != nil {
		if v, ok := util.ParseFloat(m[1]); ok {
			ram.Size = &v
			ram.Unit = util.StringPtr(strings.ToUpper(m[2]))
		}
	}
	if t, ok := ddrLadder.classify(lower); ok {
		ram.Type = &t
	}
	if ram.Size == nil && ram.Type == nil {
		return nil
	}
	return ram
}

func ParseCount(raw string) *int {
	if _, _, ok := cellText(raw); !ok {
		return nil
	}
	return util.FirstInt(raw)
}

func ParseNumber(raw string) *float64 {
	if _, _, ok := cellText(raw); !ok {
		return nil
	}
	return util.FirstFloat(raw)
}

func ParseBattery(raw string) *internal.Battery {
	text, _, ok := cellText(raw)
	if !ok {
		return nil
	}
	b := &internal.Battery{Raw: text}
	if m := reBattery.FindStringSubmatch(text); m != nil {
		if v, ok := util.ParseFloat(m[1]); ok {
			b.Capacity = &v
			unit := "mAh"
			if strings.EqualFold(m[2], "wh") {
				unit = "Wh"
			}
			b.Unit = &unit
		}
		return b
	}
	b.Capacity = util.FirstFloat(text)
	return b
}

// ParseWeight returns grams. A number without unit is taken as grams.
func ParseWeight(raw string) *float64 {
	text, _, ok := cellText(raw)
	if !ok {
		return nil
	}
	m := reWeight.FindStringSubmatch(text)
	if m == nil {
		return util.FirstFloat(text)
	}
	v, ok := util.ParseFloat(m[1])
	if !ok {
		return nil
	}
	switch strings.ToLower(m[2]) {
	case "kg":
		v *= 1000
	case "oz":
		v *= 28.3495
	case "lb", "lbs":
		v *= 453.592
	}
	v = util.Round(v, 1)
	return &v
}

// ParseDimensions reads "L x W x H" in millimetres; centimetre cells are scaled.
func ParseDimensions(raw string) *internal.Dimensions {
	text, _, ok := cellText(raw)
	if !ok {
		return nil
	}
	scale := 1.0
	if reDimCm.MatchString(text) {
		scale = 10
	}

	spaced := text
	for i := 0; i < 2; i++ {
		spaced = reDimGlued.ReplaceAllString(spaced, "$1 x $2")
	}
	parts := reDimSplit.Split(spaced, -1)
	axis := func(i int) *float64 {
		if i >= len(parts) {
			return nil
		}
		v := util.FirstFloat(parts[i])
		if v == nil {
			return nil
		}
		scaled := util.Round(*v*scale, 2)
		return &scaled
	}
	return &internal.Dimensions{Raw: text, Length: axis(0), Width: axis(1), Height: axis(2)}
}

func ParseChargePort(raw string) *internal.ChargePort {
	text, lower, ok := cellText(raw)
	if !ok {
		return nil
	}
	kind := chargePortLadder.classifyOr(lower, "other")
	return &internal.ChargePort{Raw: text, Type: &kind}
}
