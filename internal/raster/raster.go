// Package raster paints a [chaikin.Scene] with gogpu/gg, into an image for
// export or into braille text for the terminal canvas.
package raster

import (
	"fmt"
	"io"

	"github.com/gogpu/gg"

	"honnef.co/go/chaikin"
)

// Style holds the colours of a frame. A transparent background leaves the
// context uncleared.
type Style struct {
	Background gg.RGBA
	Marker     gg.RGBA
	Curve      gg.RGBA
}

var DefaultStyle = Style{
	Background: gg.Transparent,
	Marker:     gg.Black,
	Curve:      gg.Black,
}

// Draw paints s onto dc: a filled circle for every marker, then the curve
// as a single open stroke. dc's path is consumed.
func Draw(dc *gg.Context, s chaikin.Scene, style Style) error {
	if style.Background.A > 0 {
		dc.ClearWithColor(style.Background)
	}

	dc.SetColor(style.Marker.Color())
	for _, m := range s.Markers {
		dc.DrawCircle(m.Center.X, m.Center.Y, m.Radius)
		if err := dc.Fill(); err != nil {
			return fmt.Errorf("fill marker at %s: %w", m.Center, err)
		}
	}

	if !s.HasCurve() {
		return nil
	}
	applyStroke(dc, s.Stroke)
	dc.SetColor(style.Curve.Color())
	for el := range s.CurveElements() {
		switch el.Kind {
		case chaikin.MoveToKind:
			dc.MoveTo(el.P0.X, el.P0.Y)
		case chaikin.LineToKind:
			dc.LineTo(el.P0.X, el.P0.Y)
		}
	}
	if err := dc.Stroke(); err != nil {
		return fmt.Errorf("stroke curve of %d points: %w", len(s.Curve), err)
	}
	return nil
}

// Render paints s onto a new width×height context.
func Render(s chaikin.Scene, width, height int, style Style) (*gg.Context, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid canvas size %dx%d", width, height)
	}
	dc := gg.NewContext(width, height)
	if err := Draw(dc, s, style); err != nil {
		dc.Close()
		return nil, err
	}
	return dc, nil
}

// WritePNG renders s and encodes the result as PNG.
func WritePNG(w io.Writer, s chaikin.Scene, width, height int, style Style) error {
	dc, err := Render(s, width, height, style)
	if err != nil {
		return err
	}
	defer dc.Close()
	gg.Logger().Debug("encoding frame", "width", width, "height", height, "markers", len(s.Markers))
	return dc.EncodePNG(w)
}

func applyStroke(dc *gg.Context, st chaikin.Stroke) {
	dc.SetLineWidth(st.Width)
	// gg has a single cap for both ends of a subpath.
	dc.SetLineCap(lineCap(st.StartCap))
	dc.SetLineJoin(lineJoin(st.Join))
	if st.MiterLimit > 0 {
		dc.SetMiterLimit(st.MiterLimit)
	}
	if st.IsSolid() {
		dc.ClearDash()
		return
	}
	dc.SetDash(st.DashPattern...)
	dc.SetDashOffset(st.DashOffset)
}

func lineCap(c chaikin.Cap) gg.LineCap {
	switch c {
	case chaikin.RoundCap:
		return gg.LineCapRound
	case chaikin.SquareCap:
		return gg.LineCapSquare
	default:
		return gg.LineCapButt
	}
}

func lineJoin(j chaikin.Join) gg.LineJoin {
	switch j {
	case chaikin.RoundJoin:
		return gg.LineJoinRound
	case chaikin.BevelJoin:
		return gg.LineJoinBevel
	default:
		return gg.LineJoinMiter
	}
}
