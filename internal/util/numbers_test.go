package util

import "testing"

func TestExtractInts(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  []int
	}{
		{name: "single", input: "$79", want: []int{79}},
		{name: "range", input: "$79 - $99", want: []int{79, 99}},
		{name: "thousands comma", input: "US$1,299", want: []int{1299}},
		{name: "cents truncated", input: "$129.99", want: []int{129}},
		{name: "three groups", input: "€89 / €109 / €139", want: []int{89, 109, 139}},
		{name: "none", input: "ask vendor", want: []int{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ExtractInts(tc.input)
			if len(got) != len(tc.want) {
				t.Fatalf("got %v want %v", got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("got %v want %v", got, tc.want)
				}
			}
		})
	}
}

func TestFirstFloat(t *testing.T) {
	cases := []struct {
		input string
		want  float64
	}{
		{input: "3.5 inch", want: 3.5},
		{input: "5,5\"", want: 5.5},
		{input: "1800 MHz", want: 1800},
	}
	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			got := FirstFloat(tc.input)
			if got == nil || *got != tc.want {
				t.Fatalf("got %v want %v", got, tc.want)
			}
		})
	}
	if FirstFloat("none") != nil {
		t.Fatal("expected nil for text without digits")
	}
}

func TestRoundAndClamp(t *testing.T) {
	if got := Round(7.456, 2); got != 7.46 {
		t.Fatalf("round got %v", got)
	}
	if got := Clamp(12, 0, 10); got != 10 {
		t.Fatalf("clamp got %v", got)
	}
	if got := Clamp(-1, 0, 10); got != 0 {
		t.Fatalf("clamp got %v", got)
	}
}
