// Package outline flattens SVG icons into line segments for previewing.
package outline

import (
	"fmt"
	"math"

	"github.com/kpango/glg"
	"github.com/rustyoz/svg"
)

// CurveSteps is how many segments a single curve is split into.
const CurveSteps = 10

// Segment is a straight line.
type Segment struct {
	From, To Point
}

// Outline is a flattened icon.
type Outline struct {
	Name     string
	Segments []Segment
}

// Parse flattens SVG data into an Outline.
func Parse(name string, data []byte) (*Outline, error) {
	// 1.0: unmarshal xml
	doc, err := svg.ParseSvg(string(data), name, 1)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", name, err)
	}

	result := &Outline{Name: name}

	// 2.0: walk drawing instructions
	instructions, errs := doc.ParseDrawingInstructions()

	var current, start Point
	for {
		select {
		case ins, ok := <-instructions:
			if !ok || ins == nil {
				return result, nil
			}

			switch ins.Kind {
			case svg.MoveInstruction:
				current = Pt(ins.M[0], ins.M[1])
				start = current
			case svg.LineInstruction:
				next := Pt(ins.M[0], ins.M[1])
				result.line(current, next)
				current = next
			case svg.CurveInstruction:
				points := []Point{
					current,
					Pt(ins.CurvePoints.C1[0], ins.CurvePoints.C1[1]),
					Pt(ins.CurvePoints.C2[0], ins.CurvePoints.C2[1]),
					Pt(ins.CurvePoints.T[0], ins.CurvePoints.T[1]),
				}

				prev := current
				for i := 1; i <= CurveSteps; i++ {
					p := bezier(float64(i)/CurveSteps, points)
					result.line(prev, p)
					prev = p
				}

				current = points[3]
			case svg.CloseInstruction:
				result.line(current, start)
				current = start
			case svg.CircleInstruction:
				glg.Debugf("outline: %s: circles are not previewed", name)
			case svg.PaintInstruction:
				// fill/stroke only
			}
		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}

			if err != nil {
				return nil, fmt.Errorf("drawing %s: %w", name, err)
			}
		}
	}
}

func (o *Outline) line(from, to Point) {
	if from == to {
		return
	}

	o.Segments = append(o.Segments, Segment{from, to})
}

// Bounds returns the top-left and bottom-right corners of all segments.
func (o *Outline) Bounds() (minP, maxP Point) {
	if len(o.Segments) == 0 {
		return Point{}, Point{}
	}

	minP = Pt(math.Inf(1), math.Inf(1))
	maxP = Pt(math.Inf(-1), math.Inf(-1))

	for _, s := range o.Segments {
		for _, p := range []Point{s.From, s.To} {
			minP = Pt(math.Min(minP.X, p.X), math.Min(minP.Y, p.Y))
			maxP = Pt(math.Max(maxP.X, p.X), math.Max(maxP.Y, p.Y))
		}
	}

	return minP, maxP
}
