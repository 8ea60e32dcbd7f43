package pipeline

import (
	"handhelds/internal"
	"handhelds/internal/scoring"
	"handhelds/internal/util"
)

// UnknownBrand marks rows whose brand is not filled in; they never reach the catalog.
const UnknownBrand = "Unknown"

type Mapper struct {
	schema *Schema
}

func NewMapper(schema *Schema) *Mapper {
	return &Mapper{schema: schema}
}

func (m *Mapper) Schema() *Schema { return m.schema }

// MapRow applies every schema column to one data row. Cells past the end of a
// short row read as empty.
func (m *Mapper) MapRow(index int, row Row) *internal.Device {
	b := &rowBuilder{dev: &internal.Device{Index: index, DeviceType: m.schema.DeviceType}}
	for _, col := range m.schema.Columns {
		fields[col.Field].apply(b, row.cell(col.Column), col)
	}
	b.finish()
	return b.dev
}

func (b *rowBuilder) finish() {
	brand := b.brandRaw
	if util.IsBlank(brand) {
		brand = UnknownBrand
	}
	d := b.dev
	d.Brand = internal.NameTriple{
		Raw:        brand,
		Sanitized:  util.Slugify(brand),
		Normalized: util.DisplayName(brand),
	}
	d.Name = internal.NameTriple{
		Raw:        b.nameRaw,
		Sanitized:  util.Slugify(brand + " " + b.nameRaw),
		Normalized: util.DisplayName(b.nameRaw),
	}
	if b.nameRaw == "" {
		d.Name.Sanitized = ""
	}
	d.ID = d.Name.Sanitized

	d.SystemRatings = scoring.SortSystemRatings(d.SystemRatings)
	d.Performance = scoring.DerivePerformance(d.SystemRatings, b.limit)
}
