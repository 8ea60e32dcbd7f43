package tags

import (
	"regexp"
	"strconv"
	"strings"

	"handhelds/internal"
	"handhelds/internal/util"
)

// DefaultPersonalPicks is the built-in allow-list of sanitized device names.
var DefaultPersonalPicks = []string{
	"anbernic-rg35xx-plus",
	"anbernic-rg405m",
	"ayn-odin-2",
	"miyoo-mini-plus",
	"retroid-pocket-4-pro",
	"valve-steam-deck-oled",
}

// historical brand names mapped to the current one, keyed by slug
var brandAliases = map[string]string{
	"bittboy": "Miyoo",
}

var reLinux = regexp.MustCompile(`(?i)^linux\s*(\(.*\))?$`)

type osRule struct {
	needle string
	name   string
}

var osVocabulary = []osRule{
	{"android", "Android"},
	{"steam", "SteamOS"},
	{"batocera", "Batocera"},
	{"arkos", "ArkOS"},
	{"emuelec", "EmuELEC"},
	{"onion", "OnionOS"},
	{"kinhank", "Kinhank"},
	{"open source proprietary", "Open Source Proprietary"},
}

var priceTags = map[internal.PriceCategory]internal.Tag{
	internal.PriceLow:     {Name: "$", Slug: "price-low", Type: internal.TagPrice},
	internal.PriceMid:     {Name: "$$", Slug: "price-mid", Type: internal.TagPrice},
	internal.PriceHigh:    {Name: "$$$", Slug: "price-high", Type: internal.TagPrice},
	internal.PriceUnknown: {Name: "$??", Slug: "price-unknown", Type: internal.TagPrice},
}

type Deriver struct {
	picks map[string]struct{}
}

func NewDeriver(personalPicks []string) *Deriver {
	picks := make(map[string]struct{}, len(personalPicks))
	for _, p := range personalPicks {
		if p = strings.TrimSpace(p); p != "" {
			picks[util.Slugify(p)] = struct{}{}
		}
	}
	return &Deriver{picks: picks}
}

// Derive classifies a built device. The result never holds a tag with an empty
// slug or the name "?", and (type, slug) pairs are unique.
func (d *Deriver) Derive(dev *internal.Device) []internal.Tag {
	candidates := []*internal.Tag{}
	candidates = append(candidates, osTags(dev)...)
	candidates = append(candidates,
		brandTag(dev),
		priceTag(dev),
		formFactorTag(dev),
		screenTypeTag(dev),
		releaseTag(dev),
		d.personalPickTag(dev),
		deviceTypeTag(dev),
	)
	return filter(candidates)
}

func filter(candidates []*internal.Tag) []internal.Tag {
	out := make([]internal.Tag, 0, len(candidates))
	seen := map[string]struct{}{}
	for _, t := range candidates {
		if t == nil || t.Slug == "" || strings.TrimSpace(t.Name) == "?" {
			continue
		}
		key := string(t.Type) + "|" + t.Slug
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, *t)
	}
	return out
}

func named(name string, kind internal.TagType) *internal.Tag {
	return &internal.Tag{Name: name, Slug: util.Slugify(name), Type: kind}
}

func osTags(dev *internal.Device) []*internal.Tag {
	if dev.OS == nil {
		return nil
	}
	out := make([]*internal.Tag, 0, len(dev.OS.List))
	for _, token := range dev.OS.List {
		out = append(out, osTag(token))
	}
	return out
}

func osTag(token string) *internal.Tag {
	token = util.NormalizeSpaces(token)
	if token == "" {
		return nil
	}
	if reLinux.MatchString(token) {
		return named("Linux", internal.TagOS)
	}
	lower := strings.ToLower(token)
	for _, r := range osVocabulary {
		if strings.Contains(lower, r.needle) {
			return named(r.name, internal.TagOS)
		}
	}
	return named(token, internal.TagOS)
}

func brandTag(dev *internal.Device) *internal.Tag {
	name := dev.Brand.Normalized
	if alias, ok := brandAliases[dev.Brand.Sanitized]; ok {
		name = alias
	}
	if name == "" {
		return nil
	}
	return named(name, internal.TagBrand)
}

func priceTag(dev *internal.Device) *internal.Tag {
	if dev.Pricing == nil || dev.Pricing.Category == "" {
		return nil
	}
	t, ok := priceTags[dev.Pricing.Category]
	if !ok {
		return nil
	}
	return &t
}

func formFactorTag(dev *internal.Device) *internal.Tag {
	if dev.FormFactor == nil {
		return nil
	}
	return named(util.DisplayName(*dev.FormFactor), internal.TagFormFactor)
}

func screenTypeTag(dev *internal.Device) *internal.Tag {
	if dev.Screen == nil || dev.Screen.Type == nil || dev.Screen.Type.Type == nil {
		return nil
	}
	return named(*dev.Screen.Type.Type, internal.TagScreenType)
}

func releaseTag(dev *internal.Device) *internal.Tag {
	r := dev.Released
	switch {
	case r == nil:
		return nil
	case r.Upcoming:
		return &internal.Tag{Name: "Upcoming", Slug: "upcoming", Type: internal.TagReleaseDate}
	case r.Year != nil:
		year := strconv.Itoa(*r.Year)
		return &internal.Tag{Name: year, Slug: "year-" + year, Type: internal.TagReleaseDate}
	}
	return nil
}

func (d *Deriver) personalPickTag(dev *internal.Device) *internal.Tag {
	if _, ok := d.picks[dev.Name.Sanitized]; !ok {
		return nil
	}
	return &internal.Tag{Name: "Personal Pick", Slug: "personal-pick", Type: internal.TagPersonalPick}
}

func deviceTypeTag(dev *internal.Device) *internal.Tag {
	if dev.DeviceType == internal.DeviceOEM {
		return &internal.Tag{Name: "OEM", Slug: "oem", Type: internal.TagDeviceType}
	}
	return &internal.Tag{Name: "Handheld", Slug: "handheld", Type: internal.TagDeviceType}
}
