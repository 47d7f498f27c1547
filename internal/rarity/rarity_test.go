package rarity

import "testing"

type stringer struct{ s string }

func (s stringer) String() string { return s.s }

func TestItemGradientClass(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{"0", "item-gradient-3"},
		{"1", "item-gradient-2"},
		{"2", "item-gradient-1"},
		{"gray", "item-gradient-gray"},
		{0, "item-gradient-3"},
		{1, "item-gradient-2"},
		{uint8(2), "item-gradient-1"},
		{int64(1), "item-gradient-2"},
		{stringer{"0"}, "item-gradient-3"},
		{"3", "item-gradient-gray"},
		{"", "item-gradient-gray"},
		{"GRAY", "item-gradient-gray"},
		{" 0", "item-gradient-gray"},
		{-1, "item-gradient-gray"},
		{nil, "item-gradient-gray"},
		{true, "item-gradient-gray"},
	}
	for _, tt := range tests {
		if got := ItemGradientClass(tt.in); got != tt.want {
			t.Errorf("ItemGradientClass(%#v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTextColorClass(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{"0", "text-gold"},
		{"1", "text-purple"},
		{"2", "text-blue"},
		{0, "text-gold"},
		{1, "text-purple"},
		{2, "text-blue"},
		{"gray", "text-blue"},
		{"9", "text-blue"},
		{nil, "text-blue"},
		{1.5, "text-blue"},
	}
	for _, tt := range tests {
		if got := TextColorClass(tt.in); got != tt.want {
			t.Errorf("TextColorClass(%#v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNumericAndStringFormsAgree(t *testing.T) {
	for i := range 5 {
		s := Normalize(i)
		if ItemGradientClass(i) != ItemGradientClass(s) {
			t.Errorf("ItemGradientClass(%d) != ItemGradientClass(%q)", i, s)
		}
		if TextColorClass(i) != TextColorClass(s) {
			t.Errorf("TextColorClass(%d) != TextColorClass(%q)", i, s)
		}
	}
}

func TestLookupsAreIdempotent(t *testing.T) {
	for _, in := range []any{"0", "1", "2", "gray", "unknown", 7} {
		first := Styles(in)
		for range 3 {
			if got := Styles(in); got != first {
				t.Errorf("Styles(%#v) = %+v, then %+v", in, first, got)
			}
		}
	}
}

func TestStyles(t *testing.T) {
	got := Styles(1)
	want := Style{Rarity: "1", Gradient: GradientRare, Text: TextPurple}
	if got != want {
		t.Errorf("Styles(1) = %+v, want %+v", got, want)
	}
}
