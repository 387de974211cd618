package flu

import "fmt"

// Category is the location type a grid cell represents.
type Category int

const (
	CategoryDorm Category = iota
	CategoryClass
	CategoryDining
	CategoryOutside
	categoryCount
)

// Categories lists every category in readout order.
var Categories = [categoryCount]Category{
	CategoryDorm,
	CategoryClass,
	CategoryDining,
	CategoryOutside,
}

var categoryNames = [categoryCount]string{
	CategoryDorm:    "dorm",
	CategoryClass:   "class",
	CategoryDining:  "dining",
	CategoryOutside: "outside",
}

// String returns the lower-case label, which is also the cell tag.
func (c Category) String() string {
	if !c.Valid() {
		return "unknown"
	}
	return categoryNames[c]
}

// Valid reports whether c is one of the four known categories.
func (c Category) Valid() bool {
	return c >= 0 && c < categoryCount
}

// ParseCategory maps a cell tag back to its category.
func ParseCategory(s string) (Category, error) {
	for i, name := range categoryNames {
		if name == s {
			return Category(i), nil
		}
	}
	return 0, fmt.Errorf("unknown category %q", s)
}

// Counts holds one non-negative tally per category.
type Counts [categoryCount]int

// Of returns the tally for c.
func (c Counts) Of(cat Category) int {
	if !cat.Valid() {
		return 0
	}
	return c[cat]
}

// Total returns the sum of all tallies.
func (c Counts) Total() int {
	n := 0
	for _, v := range c {
		n += v
	}
	return n
}

// CountOf tallies a sequence of categories.
func CountOf(cats []Category) Counts {
	var out Counts
	for _, c := range cats {
		if c.Valid() {
			out[c]++
		}
	}
	return out
}
