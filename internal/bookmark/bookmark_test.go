package bookmark

import (
	"github.com/google/go-cmp/cmp"
	"testing"
)

func TestSet_Empty(t *testing.T) {
	var s Set
	if s.Len() != 0 || s.Has(3) || s.Indexes() != nil {
		t.Errorf("expected empty set")
	}
	if _, ok := s.Next(0); ok {
		t.Errorf("expected no next bookmark")
	}
	if _, ok := s.Prev(0); ok {
		t.Errorf("expected no prev bookmark")
	}
	s.Prune(0)
}

func TestSet_Toggle(t *testing.T) {
	var s Set
	if !s.Toggle(5) {
		t.Errorf("expected 5 to be bookmarked")
	}
	s.Toggle(1)
	s.Toggle(9)
	if diff := cmp.Diff([]int{1, 5, 9}, s.Indexes()); diff != "" {
		t.Errorf("Diff (-expected +actual):\n%s", diff)
	}
	if s.Toggle(5) {
		t.Errorf("expected 5 to be unbookmarked")
	}
	if s.Has(5) || !s.Has(1) || s.Len() != 2 {
		t.Errorf("unexpected set %v", s.Indexes())
	}
}

func TestSet_NextPrev(t *testing.T) {
	var s Set
	for _, idx := range []int{10, 20, 30} {
		s.Toggle(idx)
	}
	tests := []struct {
		name             string
		from             int
		expectedNext     int
		expectedPrevious int
	}{
		{name: "Before first", from: 0, expectedNext: 10, expectedPrevious: 30},
		{name: "On first", from: 10, expectedNext: 20, expectedPrevious: 30},
		{name: "Between", from: 15, expectedNext: 20, expectedPrevious: 10},
		{name: "On last", from: 30, expectedNext: 10, expectedPrevious: 20},
		{name: "After last", from: 99, expectedNext: 10, expectedPrevious: 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if next, ok := s.Next(tt.from); !ok || next != tt.expectedNext {
				t.Errorf("Next(%d): expected %d, got %d", tt.from, tt.expectedNext, next)
			}
			if prev, ok := s.Prev(tt.from); !ok || prev != tt.expectedPrevious {
				t.Errorf("Prev(%d): expected %d, got %d", tt.from, tt.expectedPrevious, prev)
			}
		})
	}
}

func TestSet_Prune(t *testing.T) {
	var s Set
	for _, idx := range []int{0, 4, 5, 8} {
		s.Toggle(idx)
	}
	s.Prune(5)
	if diff := cmp.Diff([]int{0, 4}, s.Indexes()); diff != "" {
		t.Errorf("Diff (-expected +actual):\n%s", diff)
	}
	s.Prune(0)
	if s.Len() != 0 {
		t.Errorf("expected empty set, got %v", s.Indexes())
	}
}
