package scoring

import (
	"sort"

	"handhelds/internal"
	"handhelds/internal/util"
)

type System struct {
	Name       string
	Difficulty int
}

// ordered from easiest to hardest to emulate; Difficulty doubles as the performance weight
var systems = []System{
	{"GameBoy", 1},
	{"NES", 2},
	{"Genesis", 3},
	{"GBA", 4},
	{"SNES", 5},
	{"PS1", 6},
	{"NDS", 7},
	{"N64", 8},
	{"Dreamcast", 9},
	{"PSP", 10},
	{"Saturn", 11},
	{"GameCube", 12},
	{"Wii", 13},
	{"3DS", 14},
	{"PS2", 15},
	{"WiiU", 16},
	{"Switch", 17},
	{"PS3", 18},
}

var difficulty = func() map[string]int {
	m := make(map[string]int, len(systems))
	for _, s := range systems {
		m[s.Name] = s.Difficulty
	}
	return m
}()

func Systems() []System {
	out := make([]System, len(systems))
	copy(out, systems)
	return out
}

func Difficulty(system string) (int, bool) {
	d, ok := difficulty[system]
	return d, ok
}

// SortSystemRatings orders by rating number (nil counts as 0) descending, then
// harder systems first, then by name. The input slice is not modified.
func SortSystemRatings(in []internal.SystemRating) []internal.SystemRating {
	out := make([]internal.SystemRating, len(in))
	copy(out, in)
	sort.SliceStable(out, func(i, j int) bool {
		ni, nj := util.DerefInt(out[i].RatingNumber), util.DerefInt(out[j].RatingNumber)
		if ni != nj {
			return ni > nj
		}
		di, dj := difficulty[out[i].System], difficulty[out[j].System]
		if di != dj {
			return di > dj
		}
		return out[i].System < out[j].System
	})
	return out
}

var tiers = []struct {
	min  float64
	tier string
}{
	{8.5, "S"},
	{7, "A"},
	{5.5, "B"},
	{4, "C"},
	{2.5, "D"},
	{1, "E"},
}

func TierFor(normalized float64) string {
	for _, t := range tiers {
		if normalized >= t.min {
			return t.tier
		}
	}
	return "F"
}

const allMark = "ALL"

// DerivePerformance weights each rated system by its difficulty. An "ALL" mark
// counts as full marks.
func DerivePerformance(ratings []internal.SystemRating, emulationLimit *string) internal.Performance {
	perf := internal.Performance{EmulationLimit: emulationLimit}

	rated := false
	sum := 0.0
	hardest := 0
	for _, r := range ratings {
		w, ok := difficulty[r.System]
		if !ok {
			continue
		}
		n := 0
		switch {
		case r.RatingMark == allMark:
			n = 5
		case r.RatingNumber != nil:
			n = *r.RatingNumber
		default:
			continue
		}
		rated = true
		sum += float64(n * w)
		if n >= 4 && w > hardest {
			hardest = w
			perf.MaxEmulation = util.StringPtr(r.System)
		}
	}
	if !rated {
		return perf
	}

	maxSum := 0.0
	for _, s := range systems {
		maxSum += float64(5 * s.Difficulty)
	}
	normalized := util.Round(sum/maxSum*10, 2)
	perf.Rating = util.FloatPtr(sum)
	perf.NormalizedRating = &normalized
	perf.Tier = util.StringPtr(TierFor(normalized))
	return perf
}
