package pipeline

import (
	"bytes"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/xuri/excelize/v2"

	"handhelds/internal"
	"handhelds/internal/util"
)

type Cell struct {
	Text  string
	Links []internal.Link
}

type Row []Cell

// Table is the grid of one source document. Rows[0] is the header row.
type Table struct {
	Rows []Row
}

func (t Table) Header() Row {
	if len(t.Rows) == 0 {
		return nil
	}
	return t.Rows[0]
}

func (t Table) Body() []Row {
	if len(t.Rows) < 2 {
		return nil
	}
	return t.Rows[1:]
}

// LinksOr returns the cell's links, naming unnamed ones with fallback.
func (c Cell) LinksOr(fallback string) []internal.Link {
	out := make([]internal.Link, 0, len(c.Links))
	for _, l := range c.Links {
		if l.URL == "" {
			continue
		}
		if l.Name == "" {
			l.Name = fallback
		}
		out = append(out, l)
	}
	return out
}

func (r Row) cell(idx int) Cell {
	if idx >= 0 && idx < len(r) {
		return r[idx]
	}
	return Cell{}
}

// ExtractTable reads the first tbody of an exported sheet. A document without
// one yields an empty table.
func ExtractTable(html string) Table {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return Table{}
	}

	body := doc.Find("tbody").First()
	if body.Length() == 0 {
		return Table{}
	}

	table := Table{}
	body.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		row := Row{}
		tr.Find("th,td").Each(func(_ int, td *goquery.Selection) {
			cell := Cell{Text: strings.TrimSpace(td.Text())}
			td.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
				href, _ := a.Attr("href")
				href = unwrapRedirect(strings.TrimSpace(href))
				if href == "" {
					return
				}
				cell.Links = append(cell.Links, internal.Link{URL: href, Name: util.NormalizeSpaces(a.Text())})
			})
			row = append(row, cell)
		})
		table.Rows = append(table.Rows, row)
	})
	return table
}

// ExtractWorkbook builds the same grid from an xlsx export of the sheet. An
// empty sheet name picks the first sheet.
func ExtractWorkbook(content []byte, sheet string) (Table, error) {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return Table{}, err
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		return Table{}, nil
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return Table{}, nil
	}

	table := Table{}
	for r, values := range rows {
		row := make(Row, 0, len(values))
		for c, v := range values {
			cell := Cell{Text: strings.TrimSpace(v)}
			name, _ := excelize.CoordinatesToCellName(c+1, r+1)
			if ok, target, err := f.GetCellHyperLink(sheet, name); err == nil && ok {
				if target = unwrapRedirect(strings.TrimSpace(target)); target != "" {
					cell.Links = append(cell.Links, internal.Link{URL: target, Name: util.NormalizeSpaces(v)})
				}
			}
			row = append(row, cell)
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}

// unwrapRedirect turns https://www.google.com/url?q=<target>&sa=... into <target>.
func unwrapRedirect(href string) string {
	u, err := url.Parse(href)
	if err != nil {
		return href
	}
	if !strings.HasSuffix(u.Hostname(), "google.com") || u.Path != "/url" {
		return href
	}
	if q := u.Query().Get("q"); q != "" {
		return q
	}
	return href
}
