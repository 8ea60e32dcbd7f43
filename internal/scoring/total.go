package scoring

import (
	"strings"

	"handhelds/internal"
	"handhelds/internal/util"
)

type featureCheck struct {
	name string
	ok   func(d *internal.Device) bool
}

const featurePoints = 10

var featureChecks = []featureCheck{
	{"ppi", func(d *internal.Device) bool {
		return d.Screen != nil && util.DerefFloat(d.Screen.PPI) >= 200
	}},
	{"screenSize", func(d *internal.Device) bool {
		return d.Screen != nil && util.DerefFloat(d.Screen.Size) >= 5
	}},
	{"panel", func(d *internal.Device) bool {
		switch panelType(d) {
		case "IPS", "OLED", "AMOLED":
			return true
		}
		return false
	}},
	{"cpuCores", func(d *internal.Device) bool {
		return maxCores(d) >= 4
	}},
	{"ram", func(d *internal.Device) bool {
		return util.DerefFloat(RAMGigabytes(d.RAM)) >= 4
	}},
	{"fan", func(d *internal.Device) bool {
		return d.Cooling != nil && d.Cooling.HasFan
	}},
	{"wifi", func(d *internal.Device) bool {
		return d.Connectivity != nil && d.Connectivity.HasWifi
	}},
	{"bluetooth", func(d *internal.Device) bool {
		return d.Connectivity != nil && d.Connectivity.HasBluetooth
	}},
	{"hdmi", func(d *internal.Device) bool {
		return d.Outputs.Video != nil && d.Outputs.Video.HasHDMI
	}},
	{"dualAnalogs", func(d *internal.Device) bool {
		return d.Controls.Analogs != nil && d.Controls.Analogs.IsDual
	}},
	{"l2", func(d *internal.Device) bool {
		return d.Controls.ShoulderButtons != nil && d.Controls.ShoulderButtons.HasL2
	}},
	{"battery", func(d *internal.Device) bool {
		return util.DerefFloat(BatteryMilliampHours(d.Battery)) >= 3000
	}},
	{"metalShell", func(d *internal.Device) bool {
		return d.ShellMaterial != nil && (d.ShellMaterial.IsMetal || d.ShellMaterial.IsAluminum)
	}},
}

// FeatureScore is the share of passed feature checks scaled to 0..10.
func FeatureScore(d *internal.Device) float64 {
	sum := 0
	for _, c := range featureChecks {
		if c.ok(d) {
			sum += featurePoints
		}
	}
	return float64(sum) / float64(len(featureChecks)*featurePoints) * 10
}

// TotalRating blends the normalized emulation rating with the feature checklist.
func TotalRating(d *internal.Device) float64 {
	perf := 1.0
	if d.Performance.NormalizedRating != nil {
		perf = *d.Performance.NormalizedRating
	}
	total := 0.5*perf + 0.5*FeatureScore(d)
	return util.Round(util.Clamp(total, 0, 10), 2)
}

func panelType(d *internal.Device) string {
	if d.Screen == nil || d.Screen.Type == nil {
		return ""
	}
	return strings.ToUpper(util.DerefString(d.Screen.Type.Type))
}

func maxCores(d *internal.Device) int {
	best := 0
	for _, c := range d.CPUs {
		if n := util.DerefInt(c.Cores); n > best {
			best = n
		}
	}
	return best
}

// RAMGigabytes converts a parsed RAM size to GB.
func RAMGigabytes(ram *internal.RAM) *float64 {
	if ram == nil || ram.Size == nil {
		return nil
	}
	v := *ram.Size
	switch util.DerefString(ram.Unit) {
	case "MB":
		v /= 1024
	case "KB":
		v /= 1024 * 1024
	}
	return &v
}

// BatteryMilliampHours assumes a 3.7 V cell for Wh ratings; a bare number is read as mAh.
func BatteryMilliampHours(b *internal.Battery) *float64 {
	if b == nil || b.Capacity == nil {
		return nil
	}
	v := *b.Capacity
	if util.DerefString(b.Unit) == "Wh" {
		v = v * 1000 / 3.7
	}
	return &v
}
