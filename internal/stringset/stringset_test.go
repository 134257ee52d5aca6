package stringset

import (
	"reflect"
	"testing"
)

func TestNewAndContains(t *testing.T) {
	s := New("alice", "bob", "alice")

	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2 (duplicates collapse)", s.Len())
	}
	if !s.Contains("alice") {
		t.Error("expected set to contain alice")
	}
	if s.Contains("Alice") {
		t.Error("membership must be case-sensitive; Alice should not match alice")
	}
}

func TestUnion(t *testing.T) {
	s := New("a", "b")
	s.Union(New("b", "c"))

	want := []string{"a", "b", "c"}
	if got := s.Sorted(); !reflect.DeepEqual(got, want) {
		t.Errorf("Sorted() after Union = %v, want %v", got, want)
	}
}

func TestSubtract(t *testing.T) {
	tests := []struct {
		name  string
		left  Set
		right Set
		want  []string
	}{
		{
			name:  "partial overlap",
			left:  New("a", "b", "c"),
			right: New("b", "c", "d"),
			want:  []string{"a"},
		},
		{
			name:  "equal sets",
			left:  New("a", "b"),
			right: New("a", "b"),
			want:  []string{},
		},
		{
			name:  "disjoint sets",
			left:  New("a", "b"),
			right: New("x", "y"),
			want:  []string{"a", "b"},
		},
		{
			name:  "empty left",
			left:  New(),
			right: New("a"),
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.left.Subtract(tt.right).Sorted()
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Subtract() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSubtractDoesNotMutate(t *testing.T) {
	left := New("a", "b")
	right := New("b")

	_ = left.Subtract(right)

	if left.Len() != 2 {
		t.Errorf("Subtract mutated receiver: Len() = %d, want 2", left.Len())
	}
}

func TestSortedIsAscending(t *testing.T) {
	s := New("zeta", "alpha", "mike")

	want := []string{"alpha", "mike", "zeta"}
	if got := s.Sorted(); !reflect.DeepEqual(got, want) {
		t.Errorf("Sorted() = %v, want %v", got, want)
	}
}
