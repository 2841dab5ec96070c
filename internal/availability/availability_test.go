package availability

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{-5, 0},
		{0, 0},
		{42.5, 42.5},
		{100, 100},
		{150, 100},
		{math.Inf(1), 100},
		{math.Inf(-1), 0},
		{math.NaN(), 0},
	}
	for _, c := range cases {
		if got := Clamp(c.in); got != c.want {
			t.Fatalf("Clamp(%v)=%v want %v", c.in, got, c.want)
		}
		if got := Clamp(Clamp(c.in)); got != Clamp(c.in) {
			t.Fatalf("Clamp not stable for %v: %v", c.in, got)
		}
	}
}

func TestColor_Ladder(t *testing.T) {
	cases := []struct {
		in   float64
		want ColorToken
	}{
		{100, ColorUp},
		{99.9, ColorUp},
		{99.5, ColorSuccess},
		{99, ColorSuccess},
		{96, ColorSuccess},
		{95, ColorSuccess},
		{92, ColorPending},
		{90, ColorPending},
		{85, ColorWarning},
		{80, ColorWarning},
		{60, ColorError},
		{50, ColorError},
		{49.99, ColorDown},
		{0, ColorDown},
		{-20, ColorDown},
		{250, ColorUp},
		{math.NaN(), ColorDown},
	}
	for _, c := range cases {
		if got := Color(c.in); got != c.want {
			t.Fatalf("Color(%v)=%q want %q", c.in, got, c.want)
		}
	}
}

func TestBoundaries(t *testing.T) {
	if got := Describe(99.9); got != Excellent {
		t.Fatalf("Describe(99.9)=%q", got)
	}
	if got := Describe(99.89999); got != VeryGood {
		t.Fatalf("Describe(99.89999)=%q", got)
	}
	if got := Describe(49.9999); got != Failed {
		t.Fatalf("Describe(49.9999)=%q", got)
	}
	if got := VariantOf(95); got != VariantSuccess {
		t.Fatalf("VariantOf(95)=%q", got)
	}
	if got := VariantOf(94.9999); got != VariantWarning {
		t.Fatalf("VariantOf(94.9999)=%q", got)
	}
	if got := VariantOf(79.9); got != VariantDanger {
		t.Fatalf("VariantOf(79.9)=%q", got)
	}
}

func TestDescribe_Ladder(t *testing.T) {
	cases := []struct {
		in   float64
		want Description
	}{
		{100, Excellent},
		{99.2, VeryGood},
		{97, Good},
		{91, Fair},
		{81, Poor},
		{55, Critical},
		{10, Failed},
		{-1, Failed},
		{math.NaN(), Failed},
		{1e9, Excellent},
	}
	for _, c := range cases {
		if got := Describe(c.in); got != c.want {
			t.Fatalf("Describe(%v)=%q want %q", c.in, got, c.want)
		}
	}
}

func TestColor_IdempotentUnderClamp(t *testing.T) {
	for p := -50.0; p <= 150; p += 0.25 {
		if Color(p) != Color(Clamp(p)) {
			t.Fatalf("Color(%v) differs from Color(Clamp(%v))", p, p)
		}
		if Describe(p) != Describe(Clamp(p)) {
			t.Fatalf("Describe(%v) differs from Describe(Clamp(%v))", p, p)
		}
	}
}

func TestVariant_Monotonic(t *testing.T) {
	prev := Severity(VariantOf(0))
	for i := 1; i <= 100000; i++ {
		p := float64(i) / 1000
		cur := Severity(VariantOf(p))
		if cur > prev {
			t.Fatalf("severity rose from %d to %d at %v", prev, cur, p)
		}
		prev = cur
	}
}

func TestClassify(t *testing.T) {
	got := Classify(120)
	want := Classification{Percentage: 100, Color: ColorUp, Variant: VariantSuccess, Description: Excellent}
	if got != want {
		t.Fatalf("Classify(120)=%+v want %+v", got, want)
	}
}

func FuzzClassify(f *testing.F) {
	for _, seed := range []float64{-1, 0, 49.9999, 50, 80, 94.9999, 95, 99.9, 100, 1e308} {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, p float64) {
		c := Clamp(p)
		if c < 0 || c > 100 || math.IsNaN(c) {
			t.Fatalf("Clamp(%v)=%v out of range", p, c)
		}
		if Classify(p) != Classify(c) {
			t.Fatalf("classification of %v differs from its clamp", p)
		}
	})
}
