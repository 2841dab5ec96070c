package availability

import "math"

// ColorToken names a theme slot, resolved to a concrete color by the caller's theme.
type ColorToken string

const (
	ColorUp      ColorToken = "up"
	ColorSuccess ColorToken = "success"
	ColorPending ColorToken = "pending"
	ColorWarning ColorToken = "warning"
	ColorError   ColorToken = "error"
	ColorDown    ColorToken = "down"
)

type Variant string

const (
	VariantSuccess Variant = "success"
	VariantWarning Variant = "warning"
	VariantDanger  Variant = "danger"
)

type Description string

const (
	Excellent Description = "Excellent"
	VeryGood  Description = "Very Good"
	Good      Description = "Good"
	Fair      Description = "Fair"
	Poor      Description = "Poor"
	Critical  Description = "Critical"
	Failed    Description = "Failed"
)

// rung is one step of a threshold ladder: values >= min map to val.
type rung[T any] struct {
	min float64
	val T
}

var colorLadder = []rung[ColorToken]{
	{99.9, ColorUp},
	{99, ColorSuccess},
	{95, ColorSuccess},
	{90, ColorPending},
	{80, ColorWarning},
	{50, ColorError},
}

var variantLadder = []rung[Variant]{
	{95, VariantSuccess},
	{80, VariantWarning},
}

var descriptionLadder = []rung[Description]{
	{99.9, Excellent},
	{99, VeryGood},
	{95, Good},
	{90, Fair},
	{80, Poor},
	{50, Critical},
}

// climb walks the ladder top-down; the first rung whose min is reached wins.
func climb[T any](ladder []rung[T], p float64, floor T) T {
	p = Clamp(p)
	for _, r := range ladder {
		if p >= r.min {
			return r.val
		}
	}
	return floor
}

// Clamp constrains p to [0, 100]. NaN is treated as 0.
func Clamp(p float64) float64 {
	if math.IsNaN(p) {
		return 0
	}
	return math.Max(0, math.Min(100, p))
}

func Color(p float64) ColorToken { return climb(colorLadder, p, ColorDown) }

func VariantOf(p float64) Variant { return climb(variantLadder, p, VariantDanger) }

func Describe(p float64) Description { return climb(descriptionLadder, p, Failed) }

// Severity orders variants: 0 is the healthiest bucket.
func Severity(v Variant) int {
	switch v {
	case VariantSuccess:
		return 0
	case VariantWarning:
		return 1
	default:
		return 2
	}
}

// Classification bundles every presentation value for one percentage.
type Classification struct {
	Percentage  float64     `json:"percentage"`
	Color       ColorToken  `json:"color"`
	Variant     Variant     `json:"variant"`
	Description Description `json:"description"`
}

func Classify(p float64) Classification {
	return Classification{
		Percentage:  Clamp(p),
		Color:       Color(p),
		Variant:     VariantOf(p),
		Description: Describe(p),
	}
}
