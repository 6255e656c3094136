package geom

import (
	"math"
	"testing"
)

func TestRotation(t *testing.T) {
	x := 1
	y := 2
	rad := Radians(90)

	rot := Rotation(rad)
	tx, ty := rot.Transform(float64(x), float64(y))

	if math.Round(tx) != -2 {
		t.Errorf("unexpected value for transformed x: %v", tx)
	}
	if math.Round(ty) != 1 {
		t.Errorf("unexpected value for transformed y: %v", ty)
	}

	// translating around the center should result in the same point
	t0 := Translation(float64(-x), float64(-y))
	tx, ty = t0.Transform(float64(x), float64(y))
	tx, ty = rot.Transform(tx, ty)

	if math.Round(tx) != 0 {
		t.Errorf("unexpected value for transformed x: %v", tx)
	}
	if math.Round(ty) != 0 {
		t.Errorf("unexpected value for transformed y: %v", ty)
	}
}

func TestMultiplyOrder(t *testing.T) {
	// scale first, then move
	m := Multiply(Translation(10, 20), Scaling(2, 3))
	x, y := m.Transform(1, 1)
	if x != 12 || y != 23 {
		t.Errorf("unexpected point %v,%v", x, y)
	}
}

func TestTransformRect(t *testing.T) {
	r := R(-10, -5, 20, 10)
	b := Rotation(Radians(90)).TransformRect(r)

	if math.Abs(b.W-10) > 1e-9 || math.Abs(b.H-20) > 1e-9 {
		t.Errorf("unexpected bounds after rotation: %v", b)
	}
	if math.Abs(b.X+5) > 1e-9 || math.Abs(b.Y+10) > 1e-9 {
		t.Errorf("unexpected origin after rotation: %v", b)
	}
}

func TestRectRelations(t *testing.T) {
	a := R(0, 0, 100, 50)
	if !a.Contains(R(10, 10, 20, 20)) {
		t.Errorf("inner rect not contained")
	}
	if a.Contains(R(90, 10, 20, 20)) {
		t.Errorf("overlapping rect reported as contained")
	}
	if !a.Intersects(R(90, 10, 20, 20)) {
		t.Errorf("overlap not detected")
	}
	if a.Intersects(R(100, 0, 10, 10)) {
		t.Errorf("touching rects must not intersect")
	}
}
