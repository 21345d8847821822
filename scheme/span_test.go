package scheme

import "testing"

func TestSpanZeroValueAbsent(t *testing.T) {
	var sp Span
	if sp.Present() {
		t.Error("zero Span reports Present() = true")
	}
	if sp.Left() != -1 || sp.Right() != -1 {
		t.Errorf("zero Span bounds = (%d, %d), want (-1, -1)", sp.Left(), sp.Right())
	}
	if sp.Len() != 0 {
		t.Errorf("zero Span Len() = %d, want 0", sp.Len())
	}
	if got, ok := sp.Slice("anything"); ok || got != "" {
		t.Errorf("zero Span Slice() = (%q, %v), want (\"\", false)", got, ok)
	}
}

func TestSpanSlice(t *testing.T) {
	const text = "http://example.com/a?q#f"

	tests := []struct {
		name   string
		span   Span
		want   string
		wantOK bool
	}{
		{
			name:   "interior range",
			span:   NewSpan(7, 18),
			want:   "example.com",
			wantOK: true,
		},
		{
			name:   "empty range is present",
			span:   NewSpan(5, 5),
			want:   "",
			wantOK: true,
		},
		{
			name:   "full range",
			span:   NewSpan(0, len(text)),
			want:   text,
			wantOK: true,
		},
		{
			name: "absent",
			span: Span{},
		},
		{
			name: "right past end fails soft",
			span: NewSpan(0, len(text)+1),
		},
		{
			name: "negative left fails soft",
			span: NewSpan(-2, 4),
		},
		{
			name: "inverted fails soft",
			span: NewSpan(9, 4),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.span.Slice(text)
			if ok != tt.wantOK {
				t.Errorf("Slice() ok = %v, want %v", ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("Slice() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSpanEmpty(t *testing.T) {
	if !NewSpan(3, 3).Empty() {
		t.Error("NewSpan(3,3).Empty() = false, want true")
	}
	if NewSpan(3, 4).Empty() {
		t.Error("NewSpan(3,4).Empty() = true, want false")
	}
	// An absent span is not "empty", it is absent.
	if (Span{}).Empty() {
		t.Error("zero Span Empty() = true, want false")
	}
}

func TestSpanLen(t *testing.T) {
	if got := NewSpan(2, 9).Len(); got != 7 {
		t.Errorf("Len() = %d, want 7", got)
	}
}

func TestSpanShift(t *testing.T) {
	tests := []struct {
		name string
		span Span
		by   int
		want Span
	}{
		{
			name: "right",
			span: NewSpan(2, 5),
			by:   3,
			want: NewSpan(5, 8),
		},
		{
			name: "left within bounds",
			span: NewSpan(4, 9),
			by:   -4,
			want: NewSpan(0, 5),
		},
		{
			name: "zero is identity",
			span: NewSpan(2, 5),
			by:   0,
			want: NewSpan(2, 5),
		},
		{
			name: "absent stays absent",
			span: Span{},
			by:   7,
			want: Span{},
		},
		{
			name: "past start of text fails soft",
			span: NewSpan(2, 5),
			by:   -3,
			want: Span{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.span.Shift(tt.by); got != tt.want {
				t.Errorf("Shift(%d) = %+v, want %+v", tt.by, got, tt.want)
			}
		})
	}
}

func TestPartRangesDecomposed(t *testing.T) {
	tests := []struct {
		name   string
		ranges PartRanges
		want   bool
	}{
		{
			name: "all absent",
		},
		{
			name:   "path only",
			ranges: PartRanges{Path: NewSpan(5, 8)},
			want:   true,
		},
		{
			name:   "fragment only",
			ranges: PartRanges{Fragment: NewSpan(10, 12)},
			want:   true,
		},
		{
			name: "everything",
			ranges: PartRanges{
				Authority: NewSpan(7, 18),
				Path:      NewSpan(18, 20),
				Query:     NewSpan(21, 22),
				Fragment:  NewSpan(23, 24),
			},
			want: true,
		},
		{
			name:   "content metadata only",
			ranges: PartRanges{ContentMetadata: NewSpan(5, 15)},
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ranges.Decomposed(); got != tt.want {
				t.Errorf("Decomposed() = %v, want %v", got, tt.want)
			}
		})
	}
}
