package cg

// PathElementKind identifies the operation a PathElement performs.
type PathElementKind int

const (
	// MoveToElement starts a new subpath at Points[0].
	MoveToElement PathElementKind = iota
	// LineToElement draws a line to Points[0].
	LineToElement
	// QuadCurveToElement draws a quadratic Bézier with control Points[0]
	// ending at Points[1].
	QuadCurveToElement
	// CurveToElement draws a cubic Bézier with controls Points[0] and
	// Points[1] ending at Points[2].
	CurveToElement
	// RectToElement is a closed four-point subpath in counter-clockwise
	// order: bottom-left, bottom-right, top-right, top-left.
	RectToElement
	// CloseSubpathElement closes the current subpath. It has no points.
	CloseSubpathElement
)

func (k PathElementKind) String() string {
	switch k {
	case MoveToElement:
		return "moveTo"
	case LineToElement:
		return "lineTo"
	case QuadCurveToElement:
		return "quadCurveTo"
	case CurveToElement:
		return "curveTo"
	case RectToElement:
		return "rectTo"
	case CloseSubpathElement:
		return "closeSubpath"
	}
	return "unknown"
}

// PathElement is one operation of a path. Points are stored in the path's
// coordinate space; a Context bakes its CTM in at append time.
type PathElement struct {
	Kind   PathElementKind
	Points []Point
}

// Path is an ordered, append-only sequence of path elements. It tracks the
// current point and a bounding box enclosing every element point, curve
// control points included.
//
// Operations that need a current point (lines, curves, closing, tangent
// arcs) are silent no-ops when there is none.
//
// A Path is not safe for concurrent use.
type Path struct {
	elements   []PathElement
	start      Point // start of the current subpath
	current    Point
	hasCurrent bool
	bbox       Rect // RectNull while empty
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
		bbox:     RectNull,
	}
}

// NewPathWithRect creates a path holding a single rectangle.
func NewPathWithRect(r Rect) *Path {
	p := NewPath()
	p.AddRect(r)
	return p
}

// NewPathWithEllipse creates a path holding the ellipse inscribed in r.
func NewPathWithEllipse(r Rect) *Path {
	p := NewPath()
	p.AddEllipse(r)
	return p
}

// NewPathWithRoundedRect creates a path holding a rounded rectangle.
func NewPathWithRoundedRect(r Rect, cornerWidth, cornerHeight float64) *Path {
	p := NewPath()
	p.AddRoundedRect(r, cornerWidth, cornerHeight)
	return p
}

// IsEmpty reports whether the path has no elements.
func (p *Path) IsEmpty() bool {
	return p == nil || len(p.elements) == 0
}

// Len returns the number of elements.
func (p *Path) Len() int {
	if p == nil {
		return 0
	}
	return len(p.elements)
}

// CurrentPoint returns the current point. ok is false for an empty path.
func (p *Path) CurrentPoint() (pt Point, ok bool) {
	if p == nil || !p.hasCurrent {
		return PointNull, false
	}
	return p.current, true
}

// BoundingBox returns the smallest rectangle enclosing every element point,
// including control points. It returns RectNull for an empty path.
func (p *Path) BoundingBox() Rect {
	if p.IsEmpty() {
		return RectNull
	}
	return p.bbox
}

// Elements returns a deep copy of the path's elements.
func (p *Path) Elements() []PathElement {
	if p == nil {
		return nil
	}
	out := make([]PathElement, len(p.elements))
	for i, e := range p.elements {
		out[i] = PathElement{Kind: e.Kind, Points: append([]Point(nil), e.Points...)}
	}
	return out
}

// Points returns every element point, control points included, as one flat
// list in element order.
func (p *Path) Points() []Point {
	if p == nil {
		return nil
	}
	var pts []Point
	for _, e := range p.elements {
		pts = append(pts, e.Points...)
	}
	return pts
}

// SubpathCount returns the number of subpaths. Each move and each rectangle
// starts one, as does drawing after a closed subpath without a move.
func (p *Path) SubpathCount() int {
	if p == nil {
		return 0
	}
	n := 0
	open := false
	for _, e := range p.elements {
		switch e.Kind {
		case MoveToElement:
			n++
			open = true
		case RectToElement:
			n++
			open = false
		case CloseSubpathElement:
			open = false
		default:
			if !open {
				n++
				open = true
			}
		}
	}
	return n
}

// Copy returns a deep copy of the path.
func (p *Path) Copy() *Path {
	if p == nil {
		return nil
	}
	c := *p
	c.elements = p.Elements()
	return &c
}

// Equal reports whether p and o have identical elements.
func (p *Path) Equal(o *Path) bool {
	if p.Len() != o.Len() {
		return false
	}
	for i := 0; i < p.Len(); i++ {
		a, b := p.elements[i], o.elements[i]
		if a.Kind != b.Kind || len(a.Points) != len(b.Points) {
			return false
		}
		for j := range a.Points {
			if a.Points[j] != b.Points[j] {
				return false
			}
		}
	}
	return true
}

// MoveTo starts a new subpath at pt.
func (p *Path) MoveTo(pt Point) { p.moveTo(Identity(), pt) }

// AddLineTo appends a line from the current point to pt.
func (p *Path) AddLineTo(pt Point) { p.lineTo(Identity(), pt) }

// AddLines moves to the first point and appends lines through the rest.
func (p *Path) AddLines(pts []Point) { p.addLines(Identity(), pts) }

// AddRect appends r as a closed rectTo subpath.
func (p *Path) AddRect(r Rect) { p.addRect(Identity(), r) }

// AddRects appends each rectangle in turn.
func (p *Path) AddRects(rs []Rect) {
	for _, r := range rs {
		p.addRect(Identity(), r)
	}
}

// AddQuadCurveTo appends a quadratic Bézier from the current point.
func (p *Path) AddQuadCurveTo(control, end Point) { p.quadCurveTo(Identity(), control, end) }

// AddCurveTo appends a cubic Bézier from the current point.
func (p *Path) AddCurveTo(control1, control2, end Point) {
	p.curveTo(Identity(), control1, control2, end)
}

// AddPath appends every element of o transformed by t. The current point
// becomes o's transformed current point.
func (p *Path) AddPath(o *Path, t Transform) {
	if o.IsEmpty() {
		return
	}
	// Snapshot first so appending a path to itself terminates.
	src := o.Elements()
	for _, e := range src {
		pts := make([]Point, len(e.Points))
		for i, q := range e.Points {
			pts[i] = q.Applying(t)
		}
		p.push(e.Kind, pts...)
		switch e.Kind {
		case MoveToElement, RectToElement:
			p.start, p.current = pts[0], pts[0]
		case CloseSubpathElement:
			p.current = p.start
		default:
			p.current = pts[len(pts)-1]
		}
	}
	p.hasCurrent = true
}

// CloseSubpath appends a closeSubpath element and moves the current point
// back to the subpath start. It is a no-op on an empty or already closed
// path.
func (p *Path) CloseSubpath() {
	if !p.hasCurrent || len(p.elements) == 0 {
		return
	}
	switch p.elements[len(p.elements)-1].Kind {
	case CloseSubpathElement, RectToElement:
		return
	}
	p.push(CloseSubpathElement)
	p.current = p.start
}

func (p *Path) push(kind PathElementKind, pts ...Point) {
	if len(p.elements) == 0 {
		p.bbox = RectNull
	}
	p.elements = append(p.elements, PathElement{Kind: kind, Points: pts})
	for _, q := range pts {
		p.bbox = p.bbox.UnionPoint(q)
	}
}

func (p *Path) moveTo(m Transform, pt Point) {
	q := pt.Applying(m)
	p.push(MoveToElement, q)
	p.start, p.current, p.hasCurrent = q, q, true
}

func (p *Path) lineTo(m Transform, pt Point) {
	if !p.hasCurrent {
		return
	}
	q := pt.Applying(m)
	p.push(LineToElement, q)
	p.current = q
}

func (p *Path) addLines(m Transform, pts []Point) {
	if len(pts) == 0 {
		return
	}
	p.moveTo(m, pts[0])
	for _, pt := range pts[1:] {
		p.lineTo(m, pt)
	}
}

func (p *Path) addRect(m Transform, r Rect) {
	if r.IsNull() {
		return
	}
	c := r.Corners()
	pts := make([]Point, 4)
	for i := range c {
		pts[i] = c[i].Applying(m)
	}
	p.push(RectToElement, pts...)
	p.start, p.current, p.hasCurrent = pts[0], pts[0], true
}

func (p *Path) quadCurveTo(m Transform, control, end Point) {
	if !p.hasCurrent {
		return
	}
	e := end.Applying(m)
	p.push(QuadCurveToElement, control.Applying(m), e)
	p.current = e
}

func (p *Path) curveTo(m Transform, c1, c2, end Point) {
	if !p.hasCurrent {
		return
	}
	e := end.Applying(m)
	p.push(CurveToElement, c1.Applying(m), c2.Applying(m), e)
	p.current = e
}
