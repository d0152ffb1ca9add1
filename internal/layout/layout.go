// Package layout places suit icons on numbered cards.
//
// Layouts are built from a handful of primitives (a center point, a center
// column and a two column grid) and composed for the larger ranks so that
// every card reads the same way up or down.
package layout

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Point is the pixel position of an icon center
type Point struct {
	X, Y float64
}

// Margin is the inset of the outer icons from the canvas edge
func Margin(width, height int) int {
	return max(width/6, height/6)
}

// SymmetricPoints returns the icon centers for a numeric rank on a
// width x height canvas. The result has exactly rank points. ok is false for
// any rank outside 1-10.
func SymmetricPoints(rank, width, height int) (points []Point, ok bool) {
	w, h := float64(width), float64(height)
	m := float64(Margin(width, height))

	switch rank {
	case 1:
		return []Point{{w / 2, h / 2}}, true
	case 2:
		return grid([]float64{w / 2}, []float64{2 * m, h - 2*m}), true
	case 3:
		return grid([]float64{w / 2}, rows(m, h-m, 3)), true
	case 4, 6:
		return grid([]float64{m, w - m}, rows(m, h-m, rank/2)), true
	case 5:
		one, _ := SymmetricPoints(1, width, height)
		four, _ := SymmetricPoints(4, width, height)
		return append(one, four...), true
	case 7:
		two, _ := SymmetricPoints(2, width, height)
		six, _ := SymmetricPoints(6, width, height)
		return append(two[:1], six...), true
	case 8:
		two, _ := SymmetricPoints(2, width, height)
		six, _ := SymmetricPoints(6, width, height)
		return append(two, six...), true
	case 9:
		one, _ := SymmetricPoints(1, width, height)
		return append(eightGrid(w, h, m), one...), true
	case 10:
		two, _ := SymmetricPoints(2, width, height)
		return append(two, eightGrid(w, h, m)...), true
	}
	return nil, false
}

// eightGrid is the 2 column x 4 row grid shared by nine and ten
func eightGrid(w, h, m float64) []Point {
	return grid([]float64{m, w - m}, rows(m, h-m, 4))
}

// rows spaces n values evenly over [lo, hi] and rounds them up
func rows(lo, hi float64, n int) []float64 {
	ys := floats.Span(make([]float64, n), lo, hi)
	for i := range ys {
		ys[i] = math.Ceil(ys[i])
	}
	return ys
}

// grid crosses xs with ys row by row
func grid(xs, ys []float64) []Point {
	points := make([]Point, 0, len(xs)*len(ys))
	for _, y := range ys {
		for _, x := range xs {
			points = append(points, Point{x, y})
		}
	}
	return points
}
