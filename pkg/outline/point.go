package outline

import "math"

// Point is image.Point but with float coordinates.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point {
	return Point{x, y}
}

func (p Point) Add(other Point) Point {
	return Point{p.X + other.X, p.Y + other.Y}
}

func (p Point) Mul(scalar float64) Point {
	return Point{p.X * scalar, p.Y * scalar}
}

func factorial(n int) int {
	if n == 0 {
		return 1
	}

	return n * factorial(n-1)
}

// bezier evaluates a bezier curve of any degree at t ∈ [0, 1].
// refer: http://zobaczycmatematyke.krk.pl/025-Zolkos-Krakow/bezier.html
func bezier(t float64, points []Point) Point {
	var result Point

	n := len(points) - 1
	for i, p := range points {
		d := float64(factorial(n)) /
			float64(factorial(i)*factorial(n-i)) *
			math.Pow(t, float64(i)) *
			math.Pow(1-t, float64(n-i))
		result = result.Add(p.Mul(d))
	}

	return result
}
