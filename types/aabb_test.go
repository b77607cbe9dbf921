package types

import "testing"

func TestAABBDerived(t *testing.T) {
	a := NewAABB(XYZ(-1, -2, -3), XYZ(3, 4, 5))

	if got := a.Center(); got != XYZ(1, 1, 1) {
		t.Fatalf("Center() = %v, want (1,1,1)", got)
	}
	if got := a.Extents(); got != XYZ(2, 3, 4) {
		t.Fatalf("Extents() = %v, want (2,3,4)", got)
	}
	if got := a.Volume(); got != 4*6*8 {
		t.Fatalf("Volume() = %v, want %v", got, 4*6*8)
	}
	wantSA := float32(2 * (4*6 + 6*8 + 4*8))
	if got := a.SurfaceArea(); got != wantSA {
		t.Fatalf("SurfaceArea() = %v, want %v", got, wantSA)
	}
	if got := a.LongestAxis(); got != 2 {
		t.Fatalf("LongestAxis() = %d, want 2 (z spans 8)", got)
	}
}

func TestAABBUnion(t *testing.T) {
	a := NewAABB(XYZ(0, 0, 0), XYZ(1, 1, 1))
	b := NewAABB(XYZ(-1, 2, 0.5), XYZ(0.5, 3, 4))

	got := a.Union(b)
	want := NewAABB(XYZ(-1, 0, 0), XYZ(1, 3, 4))
	if got != want {
		t.Fatalf("Union() = %+v, want %+v", got, want)
	}
}

func TestAABBContains(t *testing.T) {
	outer := NewAABB(XYZ(0, 0, 0), XYZ(10, 10, 10))
	inner := NewAABB(XYZ(1, 1, 1), XYZ(9, 9, 9))

	if !outer.Contains(inner) {
		t.Fatalf("expected outer to contain inner")
	}
	if outer.Contains(NewAABB(XYZ(-1, 1, 1), XYZ(9, 9, 9))) {
		t.Fatalf("expected outer to not contain a box extending past its min")
	}
}

func TestAABBTransformTranslate(t *testing.T) {
	box := NewAABB(XYZ(0, 0, 0), XYZ(1, 1, 1))
	m := Translate4(XYZ(2, 3, 4))

	got := box.Transform(m)
	want := NewAABB(XYZ(2, 3, 4), XYZ(3, 4, 5))
	if got != want {
		t.Fatalf("Transform() = %+v, want %+v", got, want)
	}
}

func TestAABBTransformScale(t *testing.T) {
	box := NewAABB(XYZ(-1, -1, -1), XYZ(1, 1, 1))
	m := Scale4(XYZ(2, 3, 4))

	got := box.Transform(m)
	want := NewAABB(XYZ(-2, -3, -4), XYZ(2, 3, 4))
	if got != want {
		t.Fatalf("Transform() = %+v, want %+v", got, want)
	}
}
