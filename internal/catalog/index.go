package catalog

import (
	"errors"
	"sort"
	"strings"

	"handhelds/internal"
	"handhelds/internal/util"
)

var ErrDeviceNotFound = errors.New("device not found")

// Index is a read-only lookup structure over a built catalog.
type Index struct {
	devices  []internal.Device
	byID     map[string]int
	byTag    map[string][]int
	tokens   map[string]map[int]struct{}
	names    []string
	minScore float64
}

type Hit struct {
	Device internal.Device `json:"device"`
	Score  float64         `json:"score"`
}

func BuildIndex(devices []internal.Device, minScore float64) *Index {
	idx := &Index{
		devices:  devices,
		byID:     make(map[string]int, len(devices)),
		byTag:    map[string][]int{},
		tokens:   map[string]map[int]struct{}{},
		names:    make([]string, len(devices)),
		minScore: minScore,
	}

	for i, d := range devices {
		idx.byID[d.ID] = i
		for _, t := range d.Tags {
			idx.byTag[t.Slug] = append(idx.byTag[t.Slug], i)
		}

		name := searchable(d.Brand.Raw + " " + d.Name.Raw)
		idx.names[i] = name
		for _, token := range util.Tokenize(name) {
			if _, ok := idx.tokens[token]; !ok {
				idx.tokens[token] = map[int]struct{}{}
			}
			idx.tokens[token][i] = struct{}{}
		}
	}

	return idx
}

func (x *Index) Len() int { return len(x.devices) }

func (x *Index) Devices() []internal.Device {
	return append([]internal.Device(nil), x.devices...)
}

func (x *Index) Get(id string) (internal.Device, error) {
	i, ok := x.byID[id]
	if !ok {
		return internal.Device{}, ErrDeviceNotFound
	}
	return x.devices[i], nil
}

// Filter returns devices in catalog order. Empty arguments match everything;
// tag is compared against tag slugs.
func (x *Index) Filter(deviceType internal.DeviceType, tag string) []internal.Device {
	out := []internal.Device{}
	if tag != "" {
		for _, i := range x.byTag[util.Slugify(tag)] {
			if deviceType == "" || x.devices[i].DeviceType == deviceType {
				out = append(out, x.devices[i])
			}
		}
		return out
	}
	for _, d := range x.devices {
		if deviceType == "" || d.DeviceType == deviceType {
			out = append(out, d)
		}
	}
	return out
}

// Search ranks devices by fuzzy name similarity to query. Hits below the
// index threshold are dropped; ties keep catalog order.
func (x *Index) Search(query string, limit int) []Hit {
	query = searchable(query)
	queryTokens := util.Tokenize(query)
	if query == "" {
		return nil
	}

	candidates := map[int]struct{}{}
	for _, token := range queryTokens {
		for i := range x.tokens[token] {
			candidates[i] = struct{}{}
		}
	}
	if len(candidates) == 0 {
		for i := range x.devices {
			candidates[i] = struct{}{}
		}
	}

	type scored struct {
		pos   int
		score float64
	}
	ranked := make([]scored, 0, len(candidates))
	for i := range candidates {
		score := scoreName(query, x.names[i], queryTokens, util.Tokenize(x.names[i]))
		if score < x.minScore {
			continue
		}
		ranked = append(ranked, scored{pos: i, score: score})
	}

	sort.Slice(ranked, func(a, b int) bool {
		if ranked[a].score != ranked[b].score {
			return ranked[a].score > ranked[b].score
		}
		return ranked[a].pos < ranked[b].pos
	})
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	out := make([]Hit, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, Hit{Device: x.devices[r.pos], Score: util.Round(r.score, 3)})
	}
	return out
}

func searchable(s string) string {
	return strings.ReplaceAll(util.Slugify(s), "-", " ")
}

func scoreName(query, candidate string, queryTokens, candidateTokens []string) float64 {
	dice := util.DiceCoefficient(query, candidate)
	if len(queryTokens) == 0 || len(candidateTokens) == 0 {
		return dice
	}

	set := map[string]struct{}{}
	for _, t := range candidateTokens {
		set[t] = struct{}{}
	}
	overlap := 0
	for _, t := range queryTokens {
		if _, ok := set[t]; ok {
			overlap++
		}
	}
	tokenScore := float64(overlap) / float64(len(queryTokens))
	return 0.65*dice + 0.35*tokenScore
}
