package sparse

import "testing"

func TestMatrixSetAndGet(t *testing.T) {
	M := NewIntMatrix(10, 10, DefaultNullValue)
	M.Set(2, 3, 4711, 12)
	M.Set(0, 9, 1, 2)
	M.Set(2, 1, 7, 8)
	if a, b := M.Values(2, 3); a != 4711 || b != 12 {
		t.Errorf("expected (4711,12) at (2,3), got (%d,%d)", a, b)
	}
	if v := M.Value(5, 5); v != M.NullValue() {
		t.Errorf("expected null value at (5,5), got %d", v)
	}
	if M.ValueCount() != 3 {
		t.Errorf("expected 3 values, have %d", M.ValueCount())
	}
	M.Set(2, 3, 1, 1)
	if M.ValueCount() != 3 || M.Value(2, 3) != 1 {
		t.Errorf("expected overwrite at (2,3)")
	}
}

func TestMatrixRowMajorOrder(t *testing.T) {
	M := NewIntMatrix(3, 3, -1)
	M.Set(2, 2, 9, 9)
	M.Set(0, 1, 1, 1)
	M.Set(1, 0, 3, 3)
	M.Set(0, 0, 0, 0)
	var last = -1
	M.Each(func(i, j int, a, b int32) {
		pos := i*3 + j
		if pos <= last {
			t.Errorf("triplets out of order at (%d,%d)", i, j)
		}
		last = pos
	})
}

func TestMatrixEquals(t *testing.T) {
	A := NewIntMatrix(2, 2, -1)
	B := NewIntMatrix(2, 2, -1)
	A.Set(1, 1, 5, 6)
	B.Set(1, 1, 5, 6)
	if !A.Equals(B) {
		t.Errorf("expected matrices to be equal")
	}
	B.Set(0, 0, 1, 1)
	if A.Equals(B) {
		t.Errorf("expected matrices to differ")
	}
}
