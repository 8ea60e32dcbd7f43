package ranking

import (
	"errors"
	"sort"

	"handhelds/internal"
	"handhelds/internal/scoring"
)

var ErrNotEnoughDevices = errors.New("ranking needs at least two devices")

// Equal opens a ranking in which every device scored the same.
const Equal = "equal"

type Verdict string

const (
	VerdictBetter Verdict = "better"
	VerdictWorse  Verdict = "worse"
	VerdictEqual  Verdict = "equal"
)

type Entry struct {
	ID     string
	Scores scoring.Scores
}

// EntryFor scores a built device in every category plus "all".
func EntryFor(d *internal.Device) Entry {
	scores := scoring.CategoryScores(d)
	scores[scoring.CategoryAll] = d.TotalRating
	return Entry{ID: d.ID, Scores: scores}
}

type Result struct {
	entries  []Entry
	Rankings map[scoring.Category][]string
}

func categories() []scoring.Category {
	return append(append([]scoring.Category{}, scoring.Categories...), scoring.CategoryAll)
}

// Compare orders the entries per category by descending score, keeping input
// order on ties. A category where every score is equal ranks as
// ["equal", ids...].
func Compare(entries []Entry) (Result, error) {
	if len(entries) < 2 {
		return Result{}, ErrNotEnoughDevices
	}

	res := Result{entries: entries, Rankings: map[scoring.Category][]string{}}
	for _, c := range categories() {
		idx := make([]int, len(entries))
		for i := range idx {
			idx[i] = i
		}
		sort.SliceStable(idx, func(a, b int) bool {
			return entries[idx[a]].Scores[c] > entries[idx[b]].Scores[c]
		})

		ids := make([]string, 0, len(entries)+1)
		if allEqual(entries, c) {
			ids = append(ids, Equal)
		}
		for _, i := range idx {
			ids = append(ids, entries[i].ID)
		}
		res.Rankings[c] = ids
	}
	return res, nil
}

func allEqual(entries []Entry, c scoring.Category) bool {
	first := entries[0].Scores[c]
	for _, e := range entries[1:] {
		if e.Scores[c] != first {
			return false
		}
	}
	return true
}

// Winner is the first element of a category ranking: a device id or Equal.
func (r Result) Winner(c scoring.Category) string {
	ids := r.Rankings[c]
	if len(ids) == 0 {
		return ""
	}
	return ids[0]
}

// Verdict reports how one device fares in a category: better when it holds
// the best score, equal when all devices tie, worse otherwise.
func (r Result) Verdict(c scoring.Category, id string) Verdict {
	if r.Winner(c) == Equal {
		return VerdictEqual
	}
	best := 0.0
	var mine *float64
	for i, e := range r.entries {
		s := e.Scores[c]
		if i == 0 || s > best {
			best = s
		}
		if e.ID == id {
			v := s
			mine = &v
		}
	}
	if mine != nil && *mine == best {
		return VerdictBetter
	}
	return VerdictWorse
}
