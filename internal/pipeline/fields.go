package pipeline

import (
	"sort"
	"strings"

	"handhelds/internal"
)

// Default labels for anchors without text.
const (
	labelVendor       = "Vendor"
	labelReview       = "Review"
	labelVideoReview  = "Video review"
	labelHackingGuide = "Hacking guide"
)

// rowBuilder accumulates one device while the columns of its row are applied.
type rowBuilder struct {
	dev      *internal.Device
	brandRaw string
	nameRaw  string
	limit    *string
}

func (b *rowBuilder) cpu() *internal.CPU {
	if len(b.dev.CPUs) == 0 {
		b.dev.CPUs = append(b.dev.CPUs, internal.CPU{})
	}
	return &b.dev.CPUs[0]
}

func (b *rowBuilder) gpu() *internal.GPU {
	if len(b.dev.GPUs) == 0 {
		b.dev.GPUs = append(b.dev.GPUs, internal.GPU{})
	}
	return &b.dev.GPUs[0]
}

func (b *rowBuilder) screen() *internal.Screen {
	if b.dev.Screen == nil {
		b.dev.Screen = &internal.Screen{}
	}
	return b.dev.Screen
}

type binding struct {
	// appending fields may be bound to several columns
	appends bool
	apply   func(b *rowBuilder, cell Cell, col Column)
}

func set(apply func(b *rowBuilder, text string)) binding {
	return binding{apply: func(b *rowBuilder, cell Cell, _ Column) { apply(b, cell.Text) }}
}

func links(fallback string, target func(d *internal.Device) *[]internal.Link) binding {
	return binding{appends: true, apply: func(b *rowBuilder, cell Cell, _ Column) {
		dst := target(b.dev)
		*dst = append(*dst, cell.LinksOr(fallback)...)
	}}
}

var fields = map[string]binding{
	"image": {apply: func(b *rowBuilder, cell Cell, _ Column) {
		if ls := cell.LinksOr(""); len(ls) > 0 {
			b.dev.Image = &ls[0].URL
			return
		}
		if strings.HasPrefix(cell.Text, "http") {
			b.dev.Image = ParseText(cell.Text)
		}
	}},
	"brand":      set(func(b *rowBuilder, s string) { b.brandRaw = strings.TrimSpace(s) }),
	"name":       set(func(b *rowBuilder, s string) { b.nameRaw = strings.TrimSpace(s) }),
	"released":   set(func(b *rowBuilder, s string) { b.dev.Released = ParseReleased(s) }),
	"formFactor": set(func(b *rowBuilder, s string) { b.dev.FormFactor = ParseText(s) }),
	"os":         set(func(b *rowBuilder, s string) { b.dev.OS = ParseOS(s) }),

	"systemRating": {appends: true, apply: func(b *rowBuilder, cell Cell, col Column) {
		mark, number, ok := ParseRatingMark(cell.Text)
		if !ok {
			return
		}
		b.dev.SystemRatings = append(b.dev.SystemRatings, internal.SystemRating{
			System:       col.System,
			RatingMark:   mark,
			RatingNumber: number,
		})
	}},
	"emulationLimit": set(func(b *rowBuilder, s string) { b.limit = ParseText(s) }),

	"cpuName": set(func(b *rowBuilder, s string) {
		if v := ParseText(s); v != nil {
			b.cpu().Name = v
		}
	}),
	"cpuCores": set(func(b *rowBuilder, s string) {
		if v := ParseCount(s); v != nil {
			b.cpu().Cores = v
		}
	}),
	"cpuThreads": set(func(b *rowBuilder, s string) {
		if v := ParseCount(s); v != nil {
			b.cpu().Threads = v
		}
	}),
	"cpuFrequency": set(func(b *rowBuilder, s string) {
		if v := ParseClockSpeed(s); v != nil {
			b.cpu().Frequency = v
		}
	}),
	"cpuArchitecture": set(func(b *rowBuilder, s string) {
		if v := ParseText(s); v != nil {
			b.cpu().Architecture = v
		}
	}),
	"gpuName": set(func(b *rowBuilder, s string) {
		if v := ParseText(s); v != nil {
			b.gpu().Name = v
		}
	}),
	"gpuCores": set(func(b *rowBuilder, s string) {
		if v := ParseText(s); v != nil {
			b.gpu().Cores = v
		}
	}),
	"gpuFrequency": set(func(b *rowBuilder, s string) {
		if v := ParseClockSpeed(s); v != nil {
			b.gpu().Frequency = v
		}
	}),
	"ram": set(func(b *rowBuilder, s string) { b.dev.RAM = ParseRAM(s) }),

	"screenSize": set(func(b *rowBuilder, s string) {
		if v := ParseNumber(s); v != nil {
			b.screen().Size = v
		}
	}),
	"screenType": set(func(b *rowBuilder, s string) {
		if v := ParseScreenType(s); v != nil {
			b.screen().Type = v
		}
	}),
	"resolution": set(func(b *rowBuilder, s string) {
		if v := ParseResolutions(s); len(v) > 0 {
			b.screen().Resolution = v
		}
	}),
	"ppi": set(func(b *rowBuilder, s string) {
		if v := ParseNumber(s); v != nil {
			b.screen().PPI = v
		}
	}),
	"aspectRatio": set(func(b *rowBuilder, s string) {
		if v := ParseAspectRatio(s); v != nil {
			b.screen().AspectRatio = v
		}
	}),
	"screenLens": set(func(b *rowBuilder, s string) {
		if v := ParseText(s); v != nil {
			b.screen().Lens = v
		}
	}),

	"battery":      set(func(b *rowBuilder, s string) { b.dev.Battery = ParseBattery(s) }),
	"chargePort":   set(func(b *rowBuilder, s string) { b.dev.ChargePort = ParseChargePort(s) }),
	"storage":      set(func(b *rowBuilder, s string) { b.dev.Storage = ParseText(s) }),
	"connectivity": set(func(b *rowBuilder, s string) { b.dev.Connectivity = ParseConnectivity(s) }),
	"videoOutput":  set(func(b *rowBuilder, s string) { b.dev.Outputs.Video = ParseVideoOutput(s) }),
	"audioOutput":  set(func(b *rowBuilder, s string) { b.dev.Outputs.Audio = ParseAudioOutput(s) }),
	"speaker":      set(func(b *rowBuilder, s string) { b.dev.Outputs.Speaker = ParseSpeaker(s) }),

	"dPad":              set(func(b *rowBuilder, s string) { b.dev.Controls.DPad = ParseDPad(s) }),
	"analogs":           set(func(b *rowBuilder, s string) { b.dev.Controls.Analogs = ParseAnalogs(s) }),
	"faceButtons":       set(func(b *rowBuilder, s string) { b.dev.Controls.FaceButtons = ParseFaceButtons(s) }),
	"shoulderButtons":   set(func(b *rowBuilder, s string) { b.dev.Controls.ShoulderButtons = ParseShoulderButtons(s) }),
	"extraButtons":      set(func(b *rowBuilder, s string) { b.dev.Controls.ExtraButtons = ParseList(s) }),
	"volumeControl":     set(func(b *rowBuilder, s string) { b.dev.Controls.VolumeControl = ParseControlType(s) }),
	"brightnessControl": set(func(b *rowBuilder, s string) { b.dev.Controls.BrightnessControl = ParseControlType(s) }),
	"powerControl":      set(func(b *rowBuilder, s string) { b.dev.Controls.PowerControl = ParseControlType(s) }),
	"rumble":            set(func(b *rowBuilder, s string) { b.dev.Rumble = ParseRumble(s) }),
	"sensors":           set(func(b *rowBuilder, s string) { b.dev.Sensors = ParseSensors(s) }),
	"cooling":           set(func(b *rowBuilder, s string) { b.dev.Cooling = ParseCooling(s) }),

	"dimensions":    set(func(b *rowBuilder, s string) { b.dev.Dimensions = ParseDimensions(s) }),
	"weight":        set(func(b *rowBuilder, s string) { b.dev.Weight = ParseWeight(s) }),
	"shellMaterial": set(func(b *rowBuilder, s string) { b.dev.ShellMaterial = ParseShellMaterial(s) }),
	"colors":        set(func(b *rowBuilder, s string) { b.dev.Colors = ParseList(s) }),
	"price":         set(func(b *rowBuilder, s string) { b.dev.Pricing = ParsePrice(s) }),

	"vendorLinks":    links(labelVendor, func(d *internal.Device) *[]internal.Link { return &d.VendorLinks }),
	"writtenReviews": links(labelReview, func(d *internal.Device) *[]internal.Link { return &d.Reviews.Written }),
	"videoReviews":   links(labelVideoReview, func(d *internal.Device) *[]internal.Link { return &d.Reviews.Video }),
	"hackingGuides":  links(labelHackingGuide, func(d *internal.Device) *[]internal.Link { return &d.HackingGuides }),
}

// FieldNames lists the registered field bindings in sorted order.
func FieldNames() []string {
	out := make([]string, 0, len(fields))
	for name := range fields {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
