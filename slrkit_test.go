package slrkit

import "testing"

func TestSpanExtend(t *testing.T) {
	s := Span{3, 5}
	if e := s.Extend(Span{1, 4}); e != (Span{1, 5}) {
		t.Errorf("expected (1…5), got %v", e)
	}
	if e := s.Extend(Span{}); e != s {
		t.Errorf("expected null span to be neutral, got %v", e)
	}
	if e := (Span{}).Extend(s); e != s {
		t.Errorf("expected extending a null span to yield %v, got %v", s, e)
	}
	if s.Len() != 2 {
		t.Errorf("expected length 2, got %d", s.Len())
	}
}
