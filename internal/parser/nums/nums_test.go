package nums

import (
	"reflect"
	"testing"
)

func TestExtractDecimals(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want []float64
	}{
		{"", nil},
		{"no numbers here", nil},
		{"19.99", []float64{19.99}},
		{"from 10 to 25", []float64{10, 25}},
		{"$5.50 - $12.00 USD", []float64{5.50, 12.00}},
		// Only exactly two decimals attach to the integer part; the rest
		// starts a new number.
		{"19.999", []float64{19.99, 9}},
		{"1.5", []float64{1, 5}},
		{"3.14159", []float64{3.14, 159}},
	}
	for _, c := range cases {
		got := ExtractDecimals(c.in)
		if !reflect.DeepEqual(got, c.want) {
			t.Errorf("ExtractDecimals(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestMinMax(t *testing.T) {
	t.Parallel()

	if min, max := MinMax(nil); min != 0 || max != 0 {
		t.Fatalf("MinMax(nil) = %v, %v; want 0, 0", min, max)
	}
	if min, max := MinMax([]float64{7}); min != 7 || max != 7 {
		t.Fatalf("MinMax single = %v, %v; want 7, 7", min, max)
	}
	if min, max := MinMax([]float64{12, 3.5, 9}); min != 3.5 || max != 12 {
		t.Fatalf("MinMax = %v, %v; want 3.5, 12", min, max)
	}
}
