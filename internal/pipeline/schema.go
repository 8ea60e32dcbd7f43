package pipeline

import (
	"embed"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"handhelds/internal"
	"handhelds/internal/scoring"
)

//go:embed schemas/*.yaml
var schemaFS embed.FS

// Schema validation errors.
var (
	ErrEmptySchema      = errors.New("schema has no columns")
	ErrColumnGap        = errors.New("column indices must be contiguous from 0")
	ErrDuplicateColumn  = errors.New("column index declared twice")
	ErrUnknownField     = errors.New("unknown field")
	ErrUnknownSystem    = errors.New("systemRating column names an unknown system")
	ErrDuplicateSystem  = errors.New("system rated by more than one column")
	ErrRepeatedField    = errors.New("non-appending field bound to more than one column")
	ErrUnknownDevice    = errors.New("deviceType must be handheld or oem")
	ErrMissingNameField = errors.New("schema must bind brand and name")
)

type Column struct {
	Column int    `yaml:"column"`
	Field  string `yaml:"field"`
	Label  string `yaml:"label"`
	System string `yaml:"system,omitempty"`
}

// Schema is the positional contract of one source sheet.
type Schema struct {
	Name       string              `yaml:"name"`
	Version    int                 `yaml:"version"`
	DeviceType internal.DeviceType `yaml:"deviceType"`
	Columns    []Column            `yaml:"columns"`
}

type HeaderDrift struct {
	Column int
	Want   string
	Got    string
}

func LoadSchema(name string) (*Schema, error) {
	data, err := schemaFS.ReadFile("schemas/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("read schema %s: %w", name, err)
	}
	return ParseSchema(data)
}

// SchemaFor returns the embedded schema of a device type.
func SchemaFor(deviceType internal.DeviceType) (*Schema, error) {
	return LoadSchema(string(deviceType))
}

func ParseSchema(data []byte) (*Schema, error) {
	var s Schema
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Schema) Validate() error {
	if s.DeviceType != internal.DeviceHandheld && s.DeviceType != internal.DeviceOEM {
		return fmt.Errorf("schema %s: %w", s.Name, ErrUnknownDevice)
	}
	if len(s.Columns) == 0 {
		return fmt.Errorf("schema %s: %w", s.Name, ErrEmptySchema)
	}

	seenColumns := make(map[int]struct{}, len(s.Columns))
	seenFields := map[string]int{}
	seenSystems := map[string]int{}
	for _, c := range s.Columns {
		if _, dup := seenColumns[c.Column]; dup {
			return fmt.Errorf("schema %s column %d: %w", s.Name, c.Column, ErrDuplicateColumn)
		}
		seenColumns[c.Column] = struct{}{}

		b, ok := fields[c.Field]
		if !ok {
			return fmt.Errorf("schema %s column %d %q: %w", s.Name, c.Column, c.Field, ErrUnknownField)
		}
		if prev, dup := seenFields[c.Field]; dup && !b.appends {
			return fmt.Errorf("schema %s field %s at columns %d and %d: %w", s.Name, c.Field, prev, c.Column, ErrRepeatedField)
		}
		seenFields[c.Field] = c.Column

		if c.Field == "systemRating" {
			if _, ok := scoring.Difficulty(c.System); !ok {
				return fmt.Errorf("schema %s column %d system %q: %w", s.Name, c.Column, c.System, ErrUnknownSystem)
			}
			if prev, dup := seenSystems[c.System]; dup {
				return fmt.Errorf("schema %s system %s at columns %d and %d: %w", s.Name, c.System, prev, c.Column, ErrDuplicateSystem)
			}
			seenSystems[c.System] = c.Column
		}
	}
	for i := range s.Columns {
		if _, ok := seenColumns[i]; !ok {
			return fmt.Errorf("schema %s missing column %d: %w", s.Name, i, ErrColumnGap)
		}
	}
	if _, ok := seenFields["brand"]; !ok {
		return fmt.Errorf("schema %s: %w", s.Name, ErrMissingNameField)
	}
	if _, ok := seenFields["name"]; !ok {
		return fmt.Errorf("schema %s: %w", s.Name, ErrMissingNameField)
	}
	return nil
}

// CheckHeader compares the sheet's header row against the declared labels.
func (s *Schema) CheckHeader(header Row) []HeaderDrift {
	var drift []HeaderDrift
	for _, c := range s.Columns {
		got := header.cell(c.Column).Text
		if !strings.EqualFold(normalizeLabel(got), normalizeLabel(c.Label)) {
			drift = append(drift, HeaderDrift{Column: c.Column, Want: c.Label, Got: got})
		}
	}
	if len(header) > len(s.Columns) {
		for i := len(s.Columns); i < len(header); i++ {
			drift = append(drift, HeaderDrift{Column: i, Got: header[i].Text})
		}
	}
	return drift
}

func normalizeLabel(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
