package scoring

import (
	"handhelds/internal"
	"handhelds/internal/util"
)

type Category string

const (
	CategoryPerformance  Category = "performance"
	CategoryMonitor      Category = "monitor"
	CategoryDimensions   Category = "dimensions"
	CategoryConnectivity Category = "connectivity"
	CategoryAudio        Category = "audio"
	CategoryControls     Category = "controls"
	CategoryMisc         Category = "misc"
	CategoryAll          Category = "all"
)

// Categories lists the comparison categories in display order, without "all".
var Categories = []Category{
	CategoryPerformance,
	CategoryMonitor,
	CategoryDimensions,
	CategoryConnectivity,
	CategoryAudio,
	CategoryControls,
	CategoryMisc,
}

type Scores map[Category]float64

type categoryScorer func(d *internal.Device) float64

var scorers = map[Category]categoryScorer{
	CategoryPerformance:  scorePerformance,
	CategoryMonitor:      scoreMonitor,
	CategoryDimensions:   scoreDimensions,
	CategoryConnectivity: scoreConnectivity,
	CategoryAudio:        scoreAudio,
	CategoryControls:     scoreControls,
	CategoryMisc:         scoreMisc,
}

// CategoryScores computes the seven comparison scores of a device. They are
// independent of TotalRating.
func CategoryScores(d *internal.Device) Scores {
	out := make(Scores, len(Categories))
	for _, c := range Categories {
		out[c] = finish(scorers[c](d))
	}
	return out
}

// Score returns one category, "all" being the device's total rating.
func Score(d *internal.Device, c Category) (float64, bool) {
	if c == CategoryAll {
		return d.TotalRating, true
	}
	s, ok := scorers[c]
	if !ok {
		return 0, false
	}
	return finish(s(d)), true
}

func finish(v float64) float64 {
	return util.Round(util.Clamp(v, 0, 10), 2)
}

// ratio scales v linearly so that full reaches 10; values above full are capped.
func ratio(v, full float64) float64 {
	if full <= 0 {
		return 0
	}
	return util.Clamp(v/full, 0, 1) * 10
}

// inverse gives 10 at or below best and 0 at or above worst.
func inverse(v, best, worst float64) float64 {
	if v <= best {
		return 10
	}
	if v >= worst {
		return 0
	}
	return (worst - v) / (worst - best) * 10
}

func points(ok bool, weight float64) float64 {
	if ok {
		return weight
	}
	return 0
}

func scorePerformance(d *internal.Device) float64 {
	emulation := util.DerefFloat(d.Performance.NormalizedRating)

	maxGHz := 0.0
	for _, c := range d.CPUs {
		if c.Frequency == nil {
			continue
		}
		ghz := c.Frequency.Max
		if c.Frequency.Unit == "MHz" {
			ghz /= 1000
		}
		if ghz > maxGHz {
			maxGHz = ghz
		}
	}

	gpu := 0.0
	for _, g := range d.GPUs {
		if g.Name != nil {
			gpu = 10
		}
	}

	cores := ratio(float64(maxCores(d)), 8)
	clock := ratio(maxGHz, 3)
	ram := ratio(util.DerefFloat(RAMGigabytes(d.RAM)), 16)
	return 0.6*emulation + 0.15*cores + 0.1*clock + 0.1*ram + 0.05*gpu
}

func scoreMonitor(d *internal.Device) float64 {
	s := d.Screen
	if s == nil {
		return 0
	}
	panel := 0.0
	switch panelType(d) {
	case "OLED", "AMOLED":
		panel = 10
	case "IPS", "ADS":
		panel = 8
	case "":
	default:
		panel = 5
	}

	pixels := 0.0
	for _, r := range s.Resolution {
		if p := float64(r.Width * r.Height); p > pixels {
			pixels = p
		}
	}

	touch := 0.0
	if s.Type != nil && s.Type.IsTouchscreen {
		touch = 10
	}

	size := ratio(util.DerefFloat(s.Size), 7)
	ppi := ratio(util.DerefFloat(s.PPI), 400)
	res := ratio(pixels, 1920*1080)
	return 0.25*size + 0.25*ppi + 0.2*panel + 0.2*res + 0.1*touch
}

func scoreDimensions(d *internal.Device) float64 {
	parts := []float64{}
	if d.Weight != nil {
		parts = append(parts, inverse(*d.Weight, 150, 650))
	}
	if dim := d.Dimensions; dim != nil && dim.Length != nil && dim.Width != nil && dim.Height != nil {
		volume := *dim.Length * *dim.Width * *dim.Height
		parts = append(parts, inverse(volume, 100_000, 1_000_000))
	}
	if len(parts) == 0 {
		return 0
	}
	sum := 0.0
	for _, p := range parts {
		sum += p
	}
	return sum / float64(len(parts))
}

func scoreConnectivity(d *internal.Device) float64 {
	score := 0.0
	if c := d.Connectivity; c != nil {
		score += points(c.HasWifi, 2) + points(c.HasBluetooth, 2) + points(c.HasNFC, 1) +
			points(c.HasCellular, 1) + points(c.HasEthernet, 1)
	}
	if d.ChargePort != nil {
		score += points(util.DerefString(d.ChargePort.Type) == "USB-C", 1.5)
	}
	if v := d.Outputs.Video; v != nil {
		score += points(v.HasHDMI || v.HasDisplayPort || v.HasUSBC || v.HasWireless, 1.5)
	}
	return score
}

func scoreAudio(d *internal.Device) float64 {
	score := 0.0
	if a := d.Outputs.Audio; a != nil {
		score += points(a.HasHeadphoneJack, 3) + points(a.HasUSBC, 2) + points(a.HasBluetoothAudio, 2)
	}
	if s := d.Outputs.Speaker; s != nil {
		switch util.DerefString(s.Type) {
		case "stereo", "surround":
			score += 3
		case "mono", "other":
			score += 1.5
		}
	}
	return score
}

// RumbleMark grades the rumble flag: A when present, F when explicitly absent
// and C when the sheet does not say.
func RumbleMark(rumble *bool) string {
	switch {
	case rumble == nil:
		return "C"
	case *rumble:
		return "A"
	default:
		return "F"
	}
}

func scoreControls(d *internal.Device) float64 {
	c := d.Controls
	score := 0.0
	if c.DPad != nil {
		score += points(util.DerefString(c.DPad.Type) != "none", 1.5)
	}
	if a := c.Analogs; a != nil {
		score += points(a.IsDual, 2) + points(a.IsHallSensor, 1) + points(a.HasL3R3, 1)
	}
	if sb := c.ShoulderButtons; sb != nil {
		score += points(sb.HasL1 && sb.HasR1, 1) + points(sb.HasL2 && sb.HasR2, 1.5) + points(sb.IsAnalogTriggers, 1)
	}
	switch RumbleMark(d.Rumble) {
	case "A":
		score += 1
	case "C":
		score += 0.5
	}
	return score
}

func scoreMisc(d *internal.Device) float64 {
	score := 0.4 * ratio(util.DerefFloat(BatteryMilliampHours(d.Battery)), 6000)
	if c := d.Cooling; c != nil {
		score += points(c.HasFan, 1.5) + points(c.HasHeatsink || c.HasHeatpipe, 0.5)
	}
	if s := d.Sensors; s != nil {
		score += points(s.HasGyroscope, 1) + points(s.HasAccelerometer || s.HasCamera || s.HasMicrophone, 0.5)
	}
	if m := d.ShellMaterial; m != nil {
		score += points(m.IsMetal || m.IsAluminum || m.IsMagnesium, 1)
	}
	score += points(d.Storage != nil, 1.5)
	return score
}
