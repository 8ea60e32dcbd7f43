package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"handhelds/internal"
	"handhelds/internal/scoring"
	"handhelds/internal/util"
)

func WriteCatalog(devices []internal.Device, outputPath string) error {
	if devices == nil {
		devices = []internal.Device{}
	}
	blob, err := json.MarshalIndent(devices, "", "  ")
	if err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	return os.WriteFile(outputPath, append(blob, '\n'), 0o644)
}

func ReadCatalog(path string) ([]internal.Device, error) {
	blob, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var devices []internal.Device
	if err := json.Unmarshal(blob, &devices); err != nil {
		return nil, fmt.Errorf("decode catalog %s: %w", path, err)
	}
	return devices, nil
}

// ExportCatalogXLSX writes one summary row per device plus its category scores.
func ExportCatalogXLSX(devices []internal.Device, outputPath string) error {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	headers := []string{
		"id", "brand", "name", "device_type", "total_rating", "tier", "normalized_rating", "max_emulation",
		"released", "os", "cpu", "cores", "ram_gb", "screen_in", "screen_type", "ppi",
		"battery_mah", "weight_g", "price_min", "price_max", "currency", "tags",
	}
	for _, c := range scoring.Categories {
		headers = append(headers, "score_"+string(c))
	}

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for i := range devices {
		d := &devices[i]
		r := i + 2
		col := 0
		set := func(value any) {
			col++
			cell, _ := excelize.CoordinatesToCellName(col, r)
			_ = f.SetCellValue(sheet, cell, value)
		}

		set(d.ID)
		set(d.Brand.Normalized)
		set(d.Name.Normalized)
		set(string(d.DeviceType))
		set(d.TotalRating)
		set(derefString(d.Performance.Tier))
		set(derefFloat(d.Performance.NormalizedRating))
		set(derefString(d.Performance.MaxEmulation))
		if d.Released != nil {
			set(d.Released.Raw)
		} else {
			set("")
		}
		if d.OS != nil {
			set(strings.Join(d.OS.List, ", "))
		} else {
			set("")
		}
		if len(d.CPUs) > 0 {
			set(derefString(d.CPUs[0].Name))
			set(derefInt(d.CPUs[0].Cores))
		} else {
			set("")
			set("")
		}
		set(derefFloat(roundPtr(scoring.RAMGigabytes(d.RAM))))
		if d.Screen != nil {
			set(derefFloat(d.Screen.Size))
			if d.Screen.Type != nil {
				set(derefString(d.Screen.Type.Type))
			} else {
				set("")
			}
			set(derefFloat(d.Screen.PPI))
		} else {
			set("")
			set("")
			set("")
		}
		set(derefFloat(roundPtr(scoring.BatteryMilliampHours(d.Battery))))
		set(derefFloat(d.Weight))
		if d.Pricing != nil {
			set(derefFloat(d.Pricing.Min))
			set(derefFloat(d.Pricing.Max))
			set(d.Pricing.Currency)
		} else {
			set("")
			set("")
			set("")
		}
		names := make([]string, 0, len(d.Tags))
		for _, t := range d.Tags {
			names = append(names, t.Name)
		}
		set(strings.Join(names, ", "))

		scores := scoring.CategoryScores(d)
		for _, c := range scoring.Categories {
			set(scores[c])
		}
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	return f.SaveAs(outputPath)
}

func roundPtr(v *float64) *float64 {
	if v == nil {
		return nil
	}
	r := util.Round(*v, 2)
	return &r
}

func derefString(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func derefFloat(v *float64) any {
	if v == nil {
		return ""
	}
	return *v
}

func derefInt(v *int) any {
	if v == nil {
		return ""
	}
	return *v
}
