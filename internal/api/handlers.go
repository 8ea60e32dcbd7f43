package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"handhelds/internal"
	"handhelds/internal/catalog"
	"handhelds/internal/ranking"
	"handhelds/internal/scoring"
)

const defaultSearchLimit = 10

func (s *Server) handleListDevices(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	kind := internal.DeviceType(strings.ToLower(strings.TrimSpace(q.Get("type"))))
	if kind != "" && kind != internal.DeviceHandheld && kind != internal.DeviceOEM {
		respondError(w, http.StatusBadRequest, "type must be handheld or oem")
		return
	}

	devices := s.index.Filter(kind, strings.TrimSpace(q.Get("tag")))
	respondJSON(w, http.StatusOK, map[string]any{
		"items": devices,
		"total": len(devices),
	})
}

func (s *Server) handleGetDevice(w http.ResponseWriter, r *http.Request) {
	d, ok := s.device(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, d)
}

func (s *Server) handleDeviceScores(w http.ResponseWriter, r *http.Request) {
	d, ok := s.device(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"id":          d.ID,
		"totalRating": d.TotalRating,
		"performance": d.Performance,
		"categories":  scoring.CategoryScores(&d),
		"rumble":      scoring.RumbleMark(d.Rumble),
	})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := strings.TrimSpace(q.Get("q"))
	if query == "" {
		respondError(w, http.StatusBadRequest, "q is required")
		return
	}
	limit := defaultSearchLimit
	if v := q.Get("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	hits := s.index.Search(query, limit)
	if hits == nil {
		hits = []catalog.Hit{}
	}
	respondJSON(w, http.StatusOK, map[string]any{"items": hits})
}

type comparedDevice struct {
	ID     string         `json:"id"`
	Name   string         `json:"name"`
	Color  string         `json:"color"`
	Scores scoring.Scores `json:"scores"`
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	ids := []string{}
	for _, id := range strings.Split(r.URL.Query().Get("ids"), ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}

	devices := make([]comparedDevice, 0, len(ids))
	entries := make([]ranking.Entry, 0, len(ids))
	for i, id := range ids {
		d, ok := s.device(w, id)
		if !ok {
			return
		}
		entry := ranking.EntryFor(&d)
		entries = append(entries, entry)
		devices = append(devices, comparedDevice{
			ID:     d.ID,
			Name:   d.Brand.Normalized + " " + d.Name.Normalized,
			Color:  ranking.SeriesColor(i),
			Scores: entry.Scores,
		})
	}

	result, err := ranking.Compare(entries)
	if errors.Is(err, ranking.ErrNotEnoughDevices) {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	verdicts := map[scoring.Category]map[string]ranking.Verdict{}
	for c := range result.Rankings {
		byID := make(map[string]ranking.Verdict, len(entries))
		for _, e := range entries {
			byID[e.ID] = result.Verdict(c, e.ID)
		}
		verdicts[c] = byID
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"devices":  devices,
		"rankings": result.Rankings,
		"verdicts": verdicts,
	})
}

func (s *Server) device(w http.ResponseWriter, id string) (internal.Device, bool) {
	d, err := s.index.Get(id)
	if errors.Is(err, catalog.ErrDeviceNotFound) {
		respondError(w, http.StatusNotFound, "device not found: "+id)
		return internal.Device{}, false
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return internal.Device{}, false
	}
	return d, true
}
