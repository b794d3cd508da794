package chaikin

// Join defines the connection between two segments of a stroke.
type Join int

const (
	// A straight line connecting the segments.
	BevelJoin Join = iota
	// The segments are extended to their natural intersection point.
	MiterJoin
	// An arc between the segments.
	RoundJoin
)

func (j Join) String() string {
	switch j {
	case BevelJoin:
		return "bevel"
	case MiterJoin:
		return "miter"
	case RoundJoin:
		return "round"
	default:
		return "invalid"
	}
}

// Cap defines the shape to be drawn at the ends of a stroke.
type Cap int

const (
	// Flat cap.
	ButtCap Cap = iota
	// Square cap with dimensions equal to half the stroke width.
	SquareCap
	// Rounded cap with radius equal to half the stroke width.
	RoundCap
)

func (c Cap) String() string {
	switch c {
	case ButtCap:
		return "butt"
	case SquareCap:
		return "square"
	case RoundCap:
		return "round"
	default:
		return "invalid"
	}
}

// Stroke describes the visual style of a stroke.
type Stroke struct {
	// Width of the stroke.
	Width float64
	// Style for connecting segments of the stroke.
	Join Join
	// Limit for miter joins.
	MiterLimit float64
	// Style for capping the beginning of an open subpath.
	StartCap Cap
	// Style for capping the end of an open subpath.
	EndCap Cap
	// Lengths of dashes in alternating on/off order.
	DashPattern []float64
	// Offset of the first dash.
	DashOffset float64
}

// DefaultStroke is the style of the refined curve: a solid line of width 1
// with round joins and round caps.
var DefaultStroke = Stroke{
	Width:      1.0,
	Join:       RoundJoin,
	MiterLimit: 4.0,
	StartCap:   RoundCap,
	EndCap:     RoundCap,
}

func (s Stroke) WithWidth(width float64) Stroke      { s.Width = width; return s }
func (s Stroke) WithJoin(join Join) Stroke           { s.Join = join; return s }
func (s Stroke) WithMiterLimit(limit float64) Stroke { s.MiterLimit = limit; return s }
func (s Stroke) WithStartCap(cap Cap) Stroke         { s.StartCap = cap; return s }
func (s Stroke) WithEndCap(cap Cap) Stroke           { s.EndCap = cap; return s }
func (s Stroke) WithCaps(cap Cap) Stroke             { s.StartCap, s.EndCap = cap, cap; return s }
func (s Stroke) WithDashes(offset float64, pattern []float64) Stroke {
	s.DashOffset, s.DashPattern = offset, pattern
	return s
}

// IsSolid reports whether the stroke has no dash pattern.
func (s Stroke) IsSolid() bool {
	return len(s.DashPattern) == 0
}
