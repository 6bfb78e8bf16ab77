package iteratable

import (
	"bytes"
	"fmt"
)

// Set is an insertion-ordered set of comparable values. Values are iterated
// in the order they were first added. Iteration tolerates growth: items added
// while an iteration is under way will be visited by the same iteration, which
// makes Set suitable for worklist algorithms like closure construction.
//
//    S := NewSet(0)
//    S.Add(x)
//    S.IterateOnce()
//    for S.Next() {
//        y := S.Item()
//        …
//        S.Add(z)   // z will be visited by this loop, too
//    }
//
type Set struct {
	items  []interface{}
	index  map[interface{}]int
	cursor int
}

// NewSet creates an empty set with room for n items.
func NewSet(n int) *Set {
	if n < 0 {
		n = 0
	}
	return &Set{
		items:  make([]interface{}, 0, n),
		index:  make(map[interface{}]int, n),
		cursor: -1,
	}
}

// Add adds an item, if not already present. It returns true if the set changed.
func (s *Set) Add(item interface{}) bool {
	if _, ok := s.index[item]; ok {
		return false
	}
	s.index[item] = len(s.items)
	s.items = append(s.items, item)
	return true
}

// Contains is a predicate for set membership.
func (s *Set) Contains(item interface{}) bool {
	if s == nil {
		return false
	}
	_, ok := s.index[item]
	return ok
}

// Size returns the number of items in the set.
func (s *Set) Size() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// Empty is true for a set without items.
func (s *Set) Empty() bool {
	return s.Size() == 0
}

// Values returns the items of the set in insertion order.
func (s *Set) Values() []interface{} {
	if s == nil {
		return nil
	}
	vals := make([]interface{}, len(s.items))
	copy(vals, s.items)
	return vals
}

// Copy creates a shallow copy of the set.
func (s *Set) Copy() *Set {
	c := NewSet(s.Size())
	for _, item := range s.items {
		c.Add(item)
	}
	return c
}

// Equals compares two sets, disregarding order.
func (s *Set) Equals(other *Set) bool {
	if s.Size() != other.Size() {
		return false
	}
	for _, item := range s.items {
		if !other.Contains(item) {
			return false
		}
	}
	return true
}

// IterateOnce starts an iteration over the set. Use it together with Next()
// and Item().
func (s *Set) IterateOnce() {
	s.cursor = -1
}

// Next advances the iteration and returns false if there are no more items.
func (s *Set) Next() bool {
	if s.cursor+1 >= len(s.items) {
		s.cursor = len(s.items)
		return false
	}
	s.cursor++
	return true
}

// Item returns the current item of an iteration.
func (s *Set) Item() interface{} {
	if s.cursor < 0 || s.cursor >= len(s.items) {
		return nil
	}
	return s.items[s.cursor]
}

func (s *Set) String() string {
	var b bytes.Buffer
	b.WriteString("{")
	for i, item := range s.items {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(fmt.Sprintf("%v", item))
	}
	b.WriteString("}")
	return b.String()
}
