package ui

// Point is an integer pixel position or vector.
type Point struct{ X, Y int }

func Pt(x, y int) Point { return Point{X: x, Y: y} }

func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Rect is an axis-aligned integer rectangle anchored at its top-left corner.
type Rect struct{ X, Y, W, H int }

func R(x, y, w, h int) Rect { return Rect{X: x, Y: y, W: w, H: h} }

func (r Rect) Min() Point   { return Point{r.X, r.Y} }
func (r Rect) Right() int   { return r.X + r.W }
func (r Rect) Bottom() int  { return r.Y + r.H }
func (r Rect) Empty() bool  { return r.W <= 0 || r.H <= 0 }
func (r Rect) CenterX() int { return r.X + r.W/2 }

// Contains reports whether p lies inside r. All four edges are inclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.Right() && p.Y >= r.Y && p.Y <= r.Bottom()
}

// Covers reports whether o lies entirely inside r.
func (r Rect) Covers(o Rect) bool {
	return o.X >= r.X && o.Y >= r.Y && o.Right() <= r.Right() && o.Bottom() <= r.Bottom()
}

// Grow extends r to the right and downward so that it also covers o.
// The origin of r never moves.
func (r Rect) Grow(o Rect) Rect {
	if o.Right() > r.Right() {
		r.W = o.Right() - r.X
	}
	if o.Bottom() > r.Bottom() {
		r.H = o.Bottom() - r.Y
	}
	return r
}
