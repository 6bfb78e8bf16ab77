package iteratable

import "testing"

func TestSetAddContains(t *testing.T) {
	S := NewSet(0)
	if !S.Add(1) || !S.Add(2) {
		t.Errorf("expected new items to change the set")
	}
	if S.Add(1) {
		t.Errorf("expected duplicate item to leave the set unchanged")
	}
	if !S.Contains(2) || S.Contains(3) {
		t.Errorf("membership is broken: %v", S)
	}
	if S.Size() != 2 {
		t.Errorf("expected size 2, is %d", S.Size())
	}
}

func TestSetIterateWhileGrowing(t *testing.T) {
	S := NewSet(0)
	S.Add(1)
	S.IterateOnce()
	visited := 0
	for S.Next() {
		n := S.Item().(int)
		visited++
		if n < 5 {
			S.Add(n + 1)
		}
	}
	if visited != 5 {
		t.Errorf("expected iteration to visit 5 items, visited %d", visited)
	}
}

func TestSetCopyAndEquals(t *testing.T) {
	A := NewSet(0)
	for _, x := range []string{"a", "b", "c"} {
		A.Add(x)
	}
	B := A.Copy()
	B.Add("d")
	if A.Contains("d") || A.Size() != 3 {
		t.Errorf("expected copy to be independent of %v", A)
	}
	C := NewSet(0)
	C.Add("c")
	C.Add("b")
	C.Add("a")
	if !A.Equals(C) {
		t.Errorf("expected %v to equal %v regardless of order", A, C)
	}
	if A.Equals(B) {
		t.Errorf("did not expect %v to equal %v", A, B)
	}
	if vals := C.Values(); vals[0] != "c" || vals[2] != "a" {
		t.Errorf("expected values in insertion order, have %v", vals)
	}
}
