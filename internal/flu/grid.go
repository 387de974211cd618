package flu

const (
	GridRows = 10
	GridCols = 10
)

// Grid is the static campus map, indexed [row][col].
type Grid [GridRows][GridCols]Category

// shorthand for the campus layout below.
const (
	dr = CategoryDorm
	cl = CategoryClass
	dn = CategoryDining
	ou = CategoryOutside
)

// Campus is the simplified campus layout shown by every front-end.
var Campus = Grid{
	{dr, dr, cl, cl, ou, ou, dn, dn, cl, dr},
	{dn, ou, cl, dr, dr, cl, ou, dn, dr, ou},
	{cl, cl, dr, dr, ou, dn, dn, ou, cl, cl},
	{ou, dn, dr, cl, cl, dr, ou, dn, dr, ou},
	{dr, dr, cl, ou, dn, dn, ou, cl, dr, dr},
	{cl, ou, dn, dr, dr, cl, ou, dn, cl, ou},
	{dn, dn, ou, cl, dr, dr, cl, ou, dn, dn},
	{ou, cl, dr, dn, ou, dn, dr, cl, ou, cl},
	{dr, dr, cl, ou, dn, ou, cl, dr, dr, ou},
	{cl, ou, dn, dr, cl, dn, ou, cl, dr, dr},
}

// At returns the category at (row, col). ok is false when the position is
// off the grid.
func (g *Grid) At(row, col int) (Category, bool) {
	if row < 0 || row >= GridRows || col < 0 || col >= GridCols {
		return 0, false
	}
	return g[row][col], true
}

// Census counts how many cells of each category the grid holds.
func (g *Grid) Census() Counts {
	var out Counts
	for row := range g {
		for _, c := range g[row] {
			out[c]++
		}
	}
	return out
}
