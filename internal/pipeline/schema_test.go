package pipeline

import (
	"errors"
	"sort"
	"testing"

	"handhelds/internal"
)

func contract(s *Schema) []string {
	out := make([]string, len(s.Columns))
	for _, c := range s.Columns {
		entry := c.Field
		if c.System != "" {
			entry += ":" + c.System
		}
		out[c.Column] = entry
	}
	return out
}

func TestSchemaContracts(t *testing.T) {
	tests := []struct {
		kind internal.DeviceType
		want []string
	}{
		{
			kind: internal.DeviceHandheld,
			want: []string{
				"image", "brand", "name", "released", "formFactor", "os", "systemRating:GameBoy",
				"systemRating:NES", "systemRating:Genesis", "systemRating:GBA", "systemRating:SNES",
				"systemRating:PS1", "systemRating:NDS", "systemRating:N64", "systemRating:Dreamcast",
				"systemRating:PSP", "systemRating:Saturn", "systemRating:GameCube", "systemRating:Wii",
				"systemRating:3DS", "systemRating:PS2", "systemRating:WiiU", "systemRating:Switch",
				"systemRating:PS3", "emulationLimit", "vendorLinks", "cpuName", "cpuCores", "cpuThreads",
				"cpuFrequency", "cpuArchitecture", "gpuName", "gpuCores", "gpuFrequency", "ram",
				"screenSize", "screenType", "resolution", "ppi", "aspectRatio", "screenLens", "battery",
				"chargePort", "storage", "connectivity", "videoOutput", "audioOutput", "speaker", "dPad",
				"analogs", "faceButtons", "shoulderButtons", "extraButtons", "rumble", "sensors",
				"volumeControl", "brightnessControl", "powerControl", "cooling", "dimensions", "weight",
				"shellMaterial", "colors", "price", "writtenReviews", "videoReviews",
			},
		},
		{
			kind: internal.DeviceOEM,
			want: []string{
				"image", "brand", "name", "released", "formFactor", "os", "systemRating:GameBoy",
				"systemRating:NES", "systemRating:Genesis", "systemRating:GBA", "systemRating:SNES",
				"systemRating:PS1", "systemRating:NDS", "systemRating:N64", "systemRating:Dreamcast",
				"systemRating:PSP", "systemRating:Saturn", "systemRating:GameCube", "systemRating:Wii",
				"systemRating:3DS", "systemRating:PS2", "systemRating:WiiU", "systemRating:Switch",
				"systemRating:PS3", "emulationLimit", "cpuName", "cpuCores", "cpuFrequency", "gpuName",
				"ram", "screenSize", "screenType", "resolution", "ppi", "battery", "chargePort",
				"storage", "connectivity", "videoOutput", "audioOutput", "speaker", "dPad", "analogs",
				"faceButtons", "shoulderButtons", "extraButtons", "rumble", "sensors", "cooling",
				"dimensions", "weight", "shellMaterial", "colors", "price", "vendorLinks", "vendorLinks",
				"hackingGuides", "writtenReviews", "videoReviews",
			},
		},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			s, err := SchemaFor(tt.kind)
			if err != nil {
				t.Fatalf("load schema: %v", err)
			}
			if s.DeviceType != tt.kind || s.Version != 1 {
				t.Fatalf("unexpected schema header %s v%d", s.DeviceType, s.Version)
			}
			got := contract(s)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d columns, got %d", len(tt.want), len(got))
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Fatalf("column %d: expected %s, got %s", i, tt.want[i], got[i])
				}
			}
		})
	}
}

func TestEveryFieldIsBound(t *testing.T) {
	used := map[string]bool{}
	for _, kind := range []internal.DeviceType{internal.DeviceHandheld, internal.DeviceOEM} {
		s, err := SchemaFor(kind)
		if err != nil {
			t.Fatalf("load %s: %v", kind, err)
		}
		for _, c := range s.Columns {
			used[c.Field] = true
		}
	}
	names := FieldNames()
	if !sort.StringsAreSorted(names) {
		t.Fatalf("field names should be sorted: %v", names)
	}
	for _, name := range names {
		if !used[name] {
			t.Errorf("field %s is not bound by any schema", name)
		}
	}
}

func TestParseSchemaRejects(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want error
	}{
		{
			name: "device type",
			yaml: "name: x\ndeviceType: console\ncolumns:\n  - {column: 0, field: brand}\n  - {column: 1, field: name}\n",
			want: ErrUnknownDevice,
		},
		{
			name: "empty",
			yaml: "name: x\ndeviceType: handheld\ncolumns: []\n",
			want: ErrEmptySchema,
		},
		{
			name: "gap",
			yaml: "name: x\ndeviceType: handheld\ncolumns:\n  - {column: 0, field: brand}\n  - {column: 2, field: name}\n",
			want: ErrColumnGap,
		},
		{
			name: "duplicate column",
			yaml: "name: x\ndeviceType: handheld\ncolumns:\n  - {column: 0, field: brand}\n  - {column: 0, field: name}\n",
			want: ErrDuplicateColumn,
		},
		{
			name: "unknown field",
			yaml: "name: x\ndeviceType: oem\ncolumns:\n  - {column: 0, field: brand}\n  - {column: 1, field: name}\n  - {column: 2, field: mood}\n",
			want: ErrUnknownField,
		},
		{
			name: "unknown system",
			yaml: "name: x\ndeviceType: handheld\ncolumns:\n  - {column: 0, field: brand}\n  - {column: 1, field: name}\n  - {column: 2, field: systemRating, system: Jaguar}\n",
			want: ErrUnknownSystem,
		},
		{
			name: "duplicate system",
			yaml: "name: x\ndeviceType: handheld\ncolumns:\n  - {column: 0, field: brand}\n  - {column: 1, field: name}\n  - {column: 2, field: systemRating, system: GBA}\n  - {column: 3, field: systemRating, system: GBA}\n",
			want: ErrDuplicateSystem,
		},
		{
			name: "repeated field",
			yaml: "name: x\ndeviceType: handheld\ncolumns:\n  - {column: 0, field: brand}\n  - {column: 1, field: name}\n  - {column: 2, field: price}\n  - {column: 3, field: price}\n",
			want: ErrRepeatedField,
		},
		{
			name: "missing name",
			yaml: "name: x\ndeviceType: handheld\ncolumns:\n  - {column: 0, field: brand}\n",
			want: ErrMissingNameField,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSchema([]byte(tt.yaml))
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestParseSchemaAllowsAppendingFields(t *testing.T) {
	yaml := "name: x\ndeviceType: oem\ncolumns:\n  - {column: 0, field: brand}\n  - {column: 1, field: name}\n  - {column: 2, field: vendorLinks}\n  - {column: 3, field: vendorLinks}\n"
	s, err := ParseSchema([]byte(yaml))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.Columns) != 4 {
		t.Fatalf("expected 4 columns, got %d", len(s.Columns))
	}
	if _, err := ParseSchema([]byte("columns: [")); err == nil {
		t.Fatalf("expected a parse error for malformed yaml")
	}
}

func TestCheckHeader(t *testing.T) {
	s, err := ParseSchema([]byte("name: x\ndeviceType: handheld\ncolumns:\n  - {column: 0, field: brand, label: Brand}\n  - {column: 1, field: name, label: Device Name}\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if drift := s.CheckHeader(Row{{Text: " brand "}, {Text: "device   name"}}); len(drift) != 0 {
		t.Fatalf("expected matching header, got %+v", drift)
	}

	drift := s.CheckHeader(Row{{Text: "Brand"}, {Text: "Model"}, {Text: "Extra"}})
	if len(drift) != 2 {
		t.Fatalf("expected two drifted columns, got %+v", drift)
	}
	if drift[0].Column != 1 || drift[0].Want != "Device Name" || drift[0].Got != "Model" {
		t.Fatalf("unexpected drift %+v", drift[0])
	}
	if drift[1].Column != 2 || drift[1].Want != "" || drift[1].Got != "Extra" {
		t.Fatalf("unexpected extra column drift %+v", drift[1])
	}
}
