package pipeline

import (
	"testing"

	"handhelds/internal"
)

func TestParsePrice(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		min, max float64
		currency string
		category internal.PriceCategory
	}{
		{name: "single", input: "$79", min: 79, max: 79, currency: "USD", category: internal.PriceLow},
		{name: "range", input: "$99 - $129", min: 99, max: 129, currency: "USD", category: internal.PriceMid},
		{name: "three groups", input: "US$ 80 / 90 / 120", min: 80, max: 120, currency: "USD", category: internal.PriceLow},
		{name: "thousands", input: "€1,299", min: 1299, max: 1299, currency: "EUR", category: internal.PriceHigh},
		{name: "fraction truncated", input: "£49.99", min: 49, max: 49, currency: "GBP", category: internal.PriceLow},
		{name: "canadian before dollar", input: "CA$150", min: 150, max: 150, currency: "CAD", category: internal.PriceMid},
		{name: "no symbol", input: "200", min: 200, max: 200, currency: "?", category: internal.PriceMid},
		{name: "word containing a code", input: "$79 arcade bundle", min: 79, max: 79, currency: "USD", category: internal.PriceLow},
		{name: "region after symbol", input: "$199 (Europe shipping extra)", min: 199, max: 199, currency: "USD", category: internal.PriceMid},
		{name: "earliest symbol", input: "€129 (approx $140)", min: 129, max: 140, currency: "EUR", category: internal.PriceMid},
		{name: "trailing code", input: "120 EUR", min: 120, max: 120, currency: "EUR", category: internal.PriceMid},
		{name: "code glued to digits", input: "USD120", min: 120, max: 120, currency: "USD", category: internal.PriceMid},
		{name: "zero", input: "$0", min: 0, max: 0, currency: "USD", category: internal.PriceUnknown},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ParsePrice(tc.input)
			if got == nil || got.Min == nil || got.Max == nil {
				t.Fatalf("ParsePrice(%q) = %+v", tc.input, got)
			}
			if *got.Min != tc.min || *got.Max != tc.max {
				t.Fatalf("min/max = %v/%v, want %v/%v", *got.Min, *got.Max, tc.min, tc.max)
			}
			if got.Currency != tc.currency {
				t.Fatalf("currency = %q, want %q", got.Currency, tc.currency)
			}
			if got.Category != tc.category {
				t.Fatalf("category = %q, want %q", got.Category, tc.category)
			}
		})
	}
}

func TestParsePriceDiscontinued(t *testing.T) {
	got := ParsePrice("Discontinued (was $120)")
	if got == nil || !got.Discontinued {
		t.Fatalf("got %+v", got)
	}
	if got.Min != nil || got.Max != nil || got.Category != "" {
		t.Fatalf("numeric fields set: %+v", got)
	}
	if ParsePrice("ask the seller") != nil {
		t.Fatal("expected nil without digits")
	}
	if ParsePrice("") != nil {
		t.Fatal("expected nil for empty cell")
	}
}

func TestPriceCategoryBoundaries(t *testing.T) {
	cases := map[float64]internal.PriceCategory{
		-5:  internal.PriceUnknown,
		0:   internal.PriceUnknown,
		100: internal.PriceLow,
		101: internal.PriceMid,
		300: internal.PriceMid,
		301: internal.PriceHigh,
	}
	for avg, want := range cases {
		if got := PriceCategoryFor(avg); got != want {
			t.Fatalf("PriceCategoryFor(%v) = %q, want %q", avg, got, want)
		}
	}
}

func TestParseClockSpeed(t *testing.T) {
	cases := []struct {
		input string
		want  internal.ClockSpeed
	}{
		{input: "3.5GHz", want: internal.ClockSpeed{Min: 3.5, Max: 3.5, Unit: "GHz"}},
		{input: "1800 MHz", want: internal.ClockSpeed{Min: 1800, Max: 1800, Unit: "MHz"}},
		{input: "up to 2,0 ghz", want: internal.ClockSpeed{Min: 2, Max: 2, Unit: "GHz"}},
	}
	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			got := ParseClockSpeed(tc.input)
			if got == nil || *got != tc.want {
				t.Fatalf("got %+v, want %+v", got, tc.want)
			}
		})
	}
	if ParseClockSpeed("fast") != nil {
		t.Fatal("expected nil")
	}
}

func TestParseRAM(t *testing.T) {
	cases := []struct {
		input string
		size  float64
		unit  string
		kind  string
	}{
		{input: "8GB LPDDR4X", size: 8, unit: "GB", kind: "LPDDR4X"},
		{input: "1 GB LPDDR4", size: 1, unit: "GB", kind: "LPDDR4"},
		{input: "512MB DDR3", size: 512, unit: "MB", kind: "DDR3"},
		{input: "16GB LPDDR5x", size: 16, unit: "GB", kind: "LPDDR5X"},
		{input: "2GB DDR-like", size: 2, unit: "GB", kind: "other"},
	}
	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			got := ParseRAM(tc.input)
			if got == nil || got.Size == nil || got.Unit == nil || got.Type == nil {
				t.Fatalf("got %+v", got)
			}
			if *got.Size != tc.size || *got.Unit != tc.unit || *got.Type != tc.kind {
				t.Fatalf("got %v %s %s", *got.Size, *got.Unit, *got.Type)
			}
		})
	}

	noType := ParseRAM("4GB")
	if noType == nil || noType.Type != nil {
		t.Fatalf("expected nil type, got %+v", noType)
	}
}

func TestParseDimensions(t *testing.T) {
	got := ParseDimensions("150 x 70 X 15 mm")
	if got == nil || got.Length == nil || got.Width == nil || got.Height == nil {
		t.Fatalf("got %+v", got)
	}
	if *got.Length != 150 || *got.Width != 70 || *got.Height != 15 {
		t.Fatalf("got %v %v %v", *got.Length, *got.Width, *got.Height)
	}

	unitPerAxis := ParseDimensions("18cm x 8cm x 2cm")
	if unitPerAxis.Length == nil || unitPerAxis.Width == nil || unitPerAxis.Height == nil {
		t.Fatalf("unitPerAxis = %+v", unitPerAxis)
	}
	if *unitPerAxis.Length != 180 || *unitPerAxis.Width != 80 || *unitPerAxis.Height != 20 {
		t.Fatalf("unitPerAxis = %v %v %v", *unitPerAxis.Length, *unitPerAxis.Width, *unitPerAxis.Height)
	}
	if mm := ParseDimensions("180mm x 80mm x 20mm"); mm.Length == nil || *mm.Length != 180 {
		t.Fatalf("mm = %+v", mm)
	}

	glued := ParseDimensions("12x6.5x2 cm")
	if glued.Length == nil || *glued.Length != 120 || *glued.Width != 65 || *glued.Height != 20 {
		t.Fatalf("glued = %+v", glued)
	}

	partial := ParseDimensions("150 x ?")
	if partial.Length == nil || partial.Width != nil || partial.Height != nil {
		t.Fatalf("partial = %+v", partial)
	}
}

func TestScreenTypeLadder(t *testing.T) {
	cases := map[string]string{
		"IPS":                 "IPS",
		"5.5\" AMOLED touch":  "AMOLED",
		"OLED":                "OLED",
		"Monochrome OLED":     "MonochromeOLED",
		"LTPS LCD":            "LCD",
		"TFT":                 "TFT",
		"HIPS":                "HIPS",
		"ADS panel":           "ADS",
		"Sharp memory LTPS":   "LTPS",
		"IPS (OCA laminated)": "IPS",
	}
	for input, want := range cases {
		got := ParseScreenType(input)
		if got == nil || got.Type == nil || *got.Type != want {
			t.Fatalf("ParseScreenType(%q) = %+v, want %s", input, got, want)
		}
	}

	touch := ParseScreenType("OLED touchscreen, stylus support")
	if !touch.IsTouchscreen || !touch.IsPenCapable {
		t.Fatalf("touch flags = %+v", touch)
	}
	if unknown := ParseScreenType("e-ink"); unknown == nil || unknown.Type != nil {
		t.Fatalf("unknown panel = %+v", unknown)
	}
}

func TestParseResolutionsAndRatio(t *testing.T) {
	res := ParseResolutions("640x480 / 1920×1080")
	if len(res) != 2 || res[0] != (internal.Resolution{Width: 640, Height: 480}) || res[1].Height != 1080 {
		t.Fatalf("res = %+v", res)
	}
	if r := ParseAspectRatio("4:3"); r == nil || *r != "4:3" {
		t.Fatalf("ratio = %v", r)
	}
	if r := ParseAspectRatio("square"); r != nil {
		t.Fatalf("ratio = %v", *r)
	}
}

func TestKeywordBooleans(t *testing.T) {
	conn := ParseConnectivity("Wi-Fi 5, BT 5.0")
	if !conn.HasWifi || !conn.HasBluetooth || conn.HasNFC || conn.HasEthernet {
		t.Fatalf("conn = %+v", conn)
	}
	none := ParseConnectivity("None")
	if none == nil || none.HasWifi || none.HasBluetooth {
		t.Fatalf("none = %+v", none)
	}
	if ParseConnectivity("") != nil {
		t.Fatal("expected nil for empty cell")
	}

	cooling := ParseCooling("Active fan + heatpipe")
	if !cooling.HasFan || !cooling.HasHeatpipe || cooling.HasHeatsink {
		t.Fatalf("cooling = %+v", cooling)
	}
	if ParseCooling("Fanless").HasFan {
		t.Fatal("fanless reported a fan")
	}

	video := ParseVideoOutput("Mini HDMI, USB-C DP alt")
	if !video.HasHDMI || !video.HasUSBC || !video.HasDisplayPort {
		t.Fatalf("video = %+v", video)
	}

	shell := ParseShellMaterial("Aluminium alloy")
	if !shell.IsAluminum || !shell.IsMetal || shell.IsPlastic {
		t.Fatalf("shell = %+v", shell)
	}
}

func TestParseRumble(t *testing.T) {
	cases := []struct {
		input string
		want  *bool
	}{
		{input: "", want: nil},
		{input: "Yes", want: boolp(true)},
		{input: "Vibration motor", want: boolp(true)},
		{input: "No", want: boolp(false)},
		{input: "maybe", want: boolp(false)},
	}
	for _, tc := range cases {
		got := ParseRumble(tc.input)
		if (got == nil) != (tc.want == nil) || (got != nil && *got != *tc.want) {
			t.Fatalf("ParseRumble(%q) = %v", tc.input, got)
		}
	}
}

func TestControlLadders(t *testing.T) {
	if d := ParseDPad("Split d-pad"); *d.Type != "split" {
		t.Fatalf("dpad = %s", *d.Type)
	}
	if d := ParseDPad("Cross"); *d.Type != "cross" {
		t.Fatalf("dpad = %s", *d.Type)
	}
	if d := ParseDPad("weird"); *d.Type != "other" {
		t.Fatalf("dpad = %s", *d.Type)
	}

	sticks := ParseAnalogs("Dual hall effect sticks, clickable")
	if !sticks.IsDual || !sticks.IsHallSensor || !sticks.HasL3R3 || sticks.IsSlidePad {
		t.Fatalf("sticks = %+v", sticks)
	}

	sb := ParseShoulderButtons("L1, R1, L2, R2 (analog)")
	if !sb.HasL1 || !sb.HasR1 || !sb.HasL2 || !sb.HasR2 || sb.HasL3 || !sb.IsAnalogTriggers {
		t.Fatalf("shoulders = %+v", sb)
	}
	zl := ParseShoulderButtons("L/R/ZL/ZR")
	if !zl.HasL2 || !zl.HasR2 || zl.IsAnalogTriggers {
		t.Fatalf("zl = %+v", zl)
	}

	if v := ParseControlType("Volume rocker"); v == nil || *v != "rocker" {
		t.Fatalf("volume = %v", v)
	}
	if v := ParseControlType("Menu + hotkey"); *v != "software" {
		t.Fatalf("brightness = %s", *v)
	}

	face := ParseFaceButtons("ABXY")
	if len(face) != 4 || face[0] != "A" || face[3] != "Y" {
		t.Fatalf("face = %v", face)
	}
}

func TestParseRatingMark(t *testing.T) {
	cases := []struct {
		input  string
		mark   string
		number *int
		ok     bool
	}{
		{input: "A", mark: "A", number: intp(5), ok: true},
		{input: "c", mark: "C", number: intp(3), ok: true},
		{input: "F", mark: "F", number: intp(0), ok: true},
		{input: "B+", mark: "B", number: intp(4), ok: true},
		{input: "ALL", mark: "ALL", number: nil, ok: true},
		{input: "?", ok: false},
		{input: "", ok: false},
		{input: "G", ok: false},
	}
	for _, tc := range cases {
		mark, number, ok := ParseRatingMark(tc.input)
		if ok != tc.ok || mark != tc.mark {
			t.Fatalf("ParseRatingMark(%q) = %q %v", tc.input, mark, ok)
		}
		if (number == nil) != (tc.number == nil) || (number != nil && *number != *tc.number) {
			t.Fatalf("ParseRatingMark(%q) number = %v", tc.input, number)
		}
	}
}

func TestParseReleased(t *testing.T) {
	r := ParseReleased("March 2023")
	if r == nil || r.Year == nil || *r.Year != 2023 || r.Upcoming {
		t.Fatalf("released = %+v", r)
	}
	up := ParseReleased("TBA")
	if up == nil || !up.Upcoming || up.Year != nil {
		t.Fatalf("upcoming = %+v", up)
	}
	if ParseReleased("soon-ish") != nil {
		t.Fatal("expected nil")
	}
}

func TestLadderFirstMatchWins(t *testing.T) {
	l := ladder{
		{has("a"), "first"},
		{has("ab"), "second"},
	}
	if got, _ := l.classify("ab"); got != "first" {
		t.Fatalf("got %s", got)
	}
	if _, ok := l.classify("zzz"); ok {
		t.Fatal("expected fall through")
	}
	if got := l.classifyOr("zzz", "other"); got != "other" {
		t.Fatalf("got %s", got)
	}
}

func boolp(v bool) *bool { return &v }
func intp(v int) *int    { return &v }
