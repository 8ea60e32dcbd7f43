package ranking

var palette = []string{
	"#4e79a7", "#f28e2b", "#e15759", "#76b7b2", "#59a14f",
	"#edc948", "#b07aa1", "#ff9da7", "#9c755f", "#bab0ac",
}

// SeriesColor picks the chart color of the n-th compared device. The same
// index always yields the same color.
func SeriesColor(n int) string {
	n %= len(palette)
	if n < 0 {
		n += len(palette)
	}
	return palette[n]
}
