package wary

import "testing"

func TestSpan(t *testing.T) {
	t.Run("len and empty", func(t *testing.T) {
		s := Span{Start: 3, End: 7}
		if got := s.Len(); got != 4 {
			t.Errorf("Len() = %d, want 4", got)
		}
		if s.IsEmpty() {
			t.Error("expected non-empty span")
		}
		if !(Span{Start: 5, End: 5}).IsEmpty() {
			t.Error("expected empty span")
		}
	})

	t.Run("contains", func(t *testing.T) {
		outer := Span{Start: 2, End: 10}
		cases := []struct {
			name  string
			inner Span
			want  bool
		}{
			{"proper subset", Span{Start: 4, End: 6}, true},
			{"equal", Span{Start: 2, End: 10}, true},
			{"empty inside", Span{Start: 5, End: 5}, true},
			{"overlaps start", Span{Start: 1, End: 4}, false},
			{"overlaps end", Span{Start: 8, End: 11}, false},
			{"disjoint", Span{Start: 12, End: 14}, false},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				if got := outer.Contains(tc.inner); got != tc.want {
					t.Errorf("Contains(%v) = %v, want %v", tc.inner, got, tc.want)
				}
			})
		}
	})

	t.Run("contains offset", func(t *testing.T) {
		s := Span{Start: 2, End: 5}
		if !s.ContainsOffset(2) || !s.ContainsOffset(4) {
			t.Error("expected offsets 2 and 4 to be contained")
		}
		if s.ContainsOffset(5) {
			t.Error("half-open span must exclude End")
		}
	})

	t.Run("union", func(t *testing.T) {
		got := Span{Start: 2, End: 5}.Union(Span{Start: 4, End: 9})
		want := Span{Start: 2, End: 9}
		if got != want {
			t.Errorf("Union = %v, want %v", got, want)
		}
	})

	t.Run("string", func(t *testing.T) {
		if got := (Span{Start: 1, End: 4}).String(); got != "[1..4)" {
			t.Errorf("String() = %q, want %q", got, "[1..4)")
		}
	})
}
