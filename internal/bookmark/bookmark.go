package bookmark

import (
	"github.com/emirpasic/gods/trees/redblacktree"
)

// Set is an ordered set of bookmarked item indexes. The zero value is an empty set
type Set struct {
	indexes *redblacktree.Tree
}

func (s *Set) init() {
	if s.indexes == nil {
		s.indexes = redblacktree.NewWithIntComparator()
	}
}

// Toggle bookmarks idx if it isn't bookmarked, and removes the bookmark otherwise. Returns whether idx is now
// bookmarked
func (s *Set) Toggle(idx int) bool {
	s.init()
	if _, found := s.indexes.Get(idx); found {
		s.indexes.Remove(idx)
		return false
	}
	s.indexes.Put(idx, struct{}{})
	return true
}

func (s *Set) Has(idx int) bool {
	if s.indexes == nil {
		return false
	}
	_, found := s.indexes.Get(idx)
	return found
}

// Next returns the first bookmark after idx, wrapping around to the first bookmark
func (s *Set) Next(idx int) (int, bool) {
	if s.Len() == 0 {
		return 0, false
	}
	if node, found := s.indexes.Ceiling(idx + 1); found {
		return node.Key.(int), true
	}
	return s.indexes.Left().Key.(int), true
}

// Prev returns the last bookmark before idx, wrapping around to the last bookmark
func (s *Set) Prev(idx int) (int, bool) {
	if s.Len() == 0 {
		return 0, false
	}
	if node, found := s.indexes.Floor(idx - 1); found {
		return node.Key.(int), true
	}
	return s.indexes.Right().Key.(int), true
}

// Prune removes bookmarks at or past n, e.g. after the list shrinks to n items
func (s *Set) Prune(n int) {
	if s.indexes == nil {
		return
	}
	for node := s.indexes.Right(); node != nil && node.Key.(int) >= n; node = s.indexes.Right() {
		s.indexes.Remove(node.Key)
	}
}

func (s *Set) Len() int {
	if s.indexes == nil {
		return 0
	}
	return s.indexes.Size()
}

// Indexes returns the bookmarked indexes in ascending order
func (s *Set) Indexes() []int {
	if s.indexes == nil {
		return nil
	}
	var idxs []int
	for _, k := range s.indexes.Keys() {
		idxs = append(idxs, k.(int))
	}
	return idxs
}
