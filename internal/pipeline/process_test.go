package pipeline

import (
	"context"
	"path/filepath"
	"testing"

	"handhelds/internal"
	"handhelds/internal/tags"
)

func handheldSchema(t *testing.T) *Schema {
	t.Helper()
	s, err := SchemaFor(internal.DeviceHandheld)
	if err != nil {
		t.Fatalf("load schema: %v", err)
	}
	return s
}

// sparseRow builds a row wide enough for the schema with the given cells set.
func sparseRow(s *Schema, cells map[int]Cell) Row {
	row := make(Row, len(s.Columns))
	for i, c := range cells {
		row[i] = c
	}
	return row
}

func text(s string) Cell { return Cell{Text: s} }

func TestMapRow(t *testing.T) {
	s := handheldSchema(t)
	row := sparseRow(s, map[int]Cell{
		1:  text("acme"),
		2:  text("pocket one (2023)"),
		3:  text("March 2023"),
		9:  text("A"),
		10: text("A"),
		11: text("B"),
		25: {Text: "Store", Links: []internal.Link{{URL: "https://shop.example/p1"}}},
		63: text("$120-$150"),
	})

	d := NewMapper(s).MapRow(7, row)
	if d.ID != "acme-pocket-one-2023" || d.Index != 7 || d.DeviceType != internal.DeviceHandheld {
		t.Fatalf("unexpected identity %s #%d %s", d.ID, d.Index, d.DeviceType)
	}
	if d.Brand.Normalized != "Acme" || d.Name.Normalized != "Pocket One" {
		t.Fatalf("unexpected display names %q %q", d.Brand.Normalized, d.Name.Normalized)
	}
	if d.Released == nil || d.Released.Year == nil || *d.Released.Year != 2023 {
		t.Fatalf("unexpected release %+v", d.Released)
	}

	order := []string{}
	for _, r := range d.SystemRatings {
		order = append(order, r.System)
	}
	if len(order) != 3 || order[0] != "SNES" || order[1] != "GBA" || order[2] != "PS1" {
		t.Fatalf("unexpected rating order %v", order)
	}
	if d.Performance.MaxEmulation == nil || *d.Performance.MaxEmulation != "PS1" {
		t.Fatalf("unexpected max emulation %v", d.Performance.MaxEmulation)
	}
	if d.Performance.NormalizedRating == nil || *d.Performance.NormalizedRating != 0.81 {
		t.Fatalf("unexpected normalized rating %v", d.Performance.NormalizedRating)
	}

	if len(d.VendorLinks) != 1 || d.VendorLinks[0].Name != labelVendor {
		t.Fatalf("unexpected vendor links %+v", d.VendorLinks)
	}
	if d.Pricing == nil || *d.Pricing.Min != 120 || *d.Pricing.Max != 150 || d.Pricing.Category != internal.PriceMid {
		t.Fatalf("unexpected pricing %+v", d.Pricing)
	}
	if d.Screen != nil || d.CPUs != nil {
		t.Fatalf("empty hardware cells should stay nil")
	}
}

func TestMapRowShortRow(t *testing.T) {
	d := NewMapper(handheldSchema(t)).MapRow(1, Row{text(""), text("")})
	if d.Brand.Raw != UnknownBrand || d.ID != "" {
		t.Fatalf("expected unknown brand and empty id, got %+v %q", d.Brand, d.ID)
	}
}

const twoRowSheet = `<html><body><table><tbody>
<tr><th>Image</th><th>Brand</th><th>Name</th></tr>
<tr><td></td><td>Unknown</td><td>Mystery Box</td></tr>
<tr><td></td><td>Acme</td><td>Pocket One</td></tr>
</tbody></table></body></html>`

func TestBuildEndToEnd(t *testing.T) {
	b := NewBuilder(handheldSchema(t), tags.NewDeriver(nil), 2, nil)
	devices, stats, err := b.Build(context.Background(), ExtractTable(twoRowSheet))
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(devices) != 1 {
		t.Fatalf("expected one device, got %d", len(devices))
	}
	d := devices[0]
	if d.ID != "acme-pocket-one" || d.Index != 2 {
		t.Fatalf("unexpected device %s #%d", d.ID, d.Index)
	}
	if d.TotalRating < 0 || d.TotalRating > 10 {
		t.Fatalf("total rating out of range: %v", d.TotalRating)
	}
	if len(d.Tags) == 0 {
		t.Fatalf("expected derived tags")
	}
	if stats.Rows != 2 || stats.Kept != 1 || stats.UnknownBrand != 1 {
		t.Fatalf("unexpected stats %+v", stats)
	}
	if stats.HeaderDrifted == 0 {
		t.Fatalf("a three column header should drift from the handheld schema")
	}
}

func TestBuildDropsEmptyAndDuplicateIDs(t *testing.T) {
	s := handheldSchema(t)
	table := Table{Rows: []Row{
		{text("Image"), text("Brand"), text("Name")},
		sparseRow(s, map[int]Cell{1: text("Acme"), 2: text("Pocket One"), 63: text("$50")}),
		sparseRow(s, map[int]Cell{1: text("Acme"), 2: text("")}),
		sparseRow(s, map[int]Cell{1: text("ACME"), 2: text("pocket one"), 63: text("$500")}),
		sparseRow(s, map[int]Cell{1: text("Acme"), 2: text("Pocket Two")}),
	}}

	devices, stats, err := NewBuilder(s, nil, 3, nil).Build(context.Background(), table)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(devices) != 2 || devices[0].ID != "acme-pocket-one" || devices[1].ID != "acme-pocket-two" {
		t.Fatalf("unexpected devices %+v", devices)
	}
	if devices[0].Pricing == nil || *devices[0].Pricing.Min != 50 {
		t.Fatalf("the first row with a duplicated id must win, got %+v", devices[0].Pricing)
	}
	if stats.EmptyID != 1 || stats.DuplicateID != 1 || stats.Kept != 2 {
		t.Fatalf("unexpected stats %+v", stats)
	}
}

func TestBuildEmptyTable(t *testing.T) {
	devices, stats, err := NewBuilder(handheldSchema(t), nil, 0, nil).Build(context.Background(), ExtractTable("<p>nothing</p>"))
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(devices) != 0 || stats.Rows != 0 {
		t.Fatalf("expected an empty catalog, got %d devices %+v", len(devices), stats)
	}
}

func TestBuildHonoursCancellation(t *testing.T) {
	s := handheldSchema(t)
	table := Table{Rows: []Row{{text("Image")}, sparseRow(s, map[int]Cell{1: text("Acme"), 2: text("One")})}}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, _, err := NewBuilder(s, nil, 1, nil).Build(ctx, table); err == nil {
		t.Fatalf("expected a cancelled build to fail")
	}
}

func TestCatalogRoundTrip(t *testing.T) {
	dir := t.TempDir()
	b := NewBuilder(handheldSchema(t), nil, 1, nil)
	devices, _, err := b.Build(context.Background(), ExtractTable(twoRowSheet))
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	path := filepath.Join(dir, "out", "devices.json")
	if err := WriteCatalog(devices, path); err != nil {
		t.Fatalf("write: %v", err)
	}
	back, err := ReadCatalog(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(back) != 1 || back[0].ID != "acme-pocket-one" || back[0].TotalRating != devices[0].TotalRating {
		t.Fatalf("unexpected catalog %+v", back)
	}

	empty := filepath.Join(dir, "empty.json")
	if err := WriteCatalog(nil, empty); err != nil {
		t.Fatalf("write empty: %v", err)
	}
	if back, err := ReadCatalog(empty); err != nil || back == nil || len(back) != 0 {
		t.Fatalf("expected an empty array, got %v, %v", back, err)
	}

	xlsx := filepath.Join(dir, "devices.xlsx")
	if err := ExportCatalogXLSX(devices, xlsx); err != nil {
		t.Fatalf("export: %v", err)
	}
}
