package entity

import (
	"image"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// UndefinedAngle значение угла, когда один из лучей имеет нулевую длину.
var UndefinedAngle = math.NaN()

// Point2D точка в пиксельных координатах кадра
type Point2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Midpoint возвращает середину отрезка между двумя точками.
func Midpoint(a, b Point2D) Point2D {
	return Point2D{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

// Image переводит точку в image.Point для отрисовки.
func (p Point2D) Image() image.Point {
	return image.Pt(int(p.X), int(p.Y))
}

func (p Point2D) vec() r2.Vec {
	return r2.Vec{X: p.X, Y: p.Y}
}

// Angle возвращает угол в вершине b между лучами b→a и b→c в градусах, [0, 180].
// Если a или c совпадает с b, возвращается UndefinedAngle.
func Angle(a, b, c Point2D) float64 {
	ba := r2.Sub(a.vec(), b.vec())
	bc := r2.Sub(c.vec(), b.vec())

	norms := r2.Norm(ba) * r2.Norm(bc)
	if norms == 0 {
		return UndefinedAngle
	}

	cos := r2.Dot(ba, bc) / norms
	// Погрешность float может вывести косинус за пределы [-1, 1].
	cos = math.Max(-1, math.Min(1, cos))

	return math.Acos(cos) * 180 / math.Pi
}

// IsUndefinedAngle сообщает, что угол не удалось вычислить.
func IsUndefinedAngle(angle float64) bool {
	return math.IsNaN(angle)
}
