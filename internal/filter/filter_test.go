package filter

import (
	"testing"

	"github.com/raphi011/consolemenu/internal/menu"
)

func smartphones() []menu.Option[int] {
	return []menu.Option[int]{
		{Key: 1, Label: "iPhone_5"},
		{Key: 2, Label: "iPhone_4S"},
		{Key: 3, Label: "iPhone_4"},
		{Key: 4, Label: "Samsung_Galaxy_S4"},
		{Key: 5, Label: "Samsung_Galaxy_S3"},
	}
}

func keys(opts []menu.Option[int]) []int {
	out := make([]int, len(opts))
	for i, o := range opts {
		out[i] = o.Key
	}
	return out
}

func TestOptions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		query string
		want  []int
	}{
		{"empty query keeps all", "", []int{1, 2, 3, 4, 5}},
		{"prefix", "Samsung", []int{4, 5}},
		{"subsequence", "glxS3", []int{5}},
		{"keeps original order", "iPhone", []int{1, 2, 3}},
		{"no match", "Nokia", []int{}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := keys(Options(smartphones(), tt.query, '_'))
			if len(got) != len(tt.want) {
				t.Fatalf("Options(%q) keys = %v, want %v", tt.query, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Options(%q) keys = %v, want %v", tt.query, got, tt.want)
					break
				}
			}
		})
	}
}

func TestOptions_DoesNotAliasInput(t *testing.T) {
	t.Parallel()

	in := smartphones()
	out := Options(in, "", '_')
	out[0].Label = "changed"
	if in[0].Label != "iPhone_5" {
		t.Error("Options should return a copy")
	}
}

func TestOptions_MatchesDisplayedLabel(t *testing.T) {
	t.Parallel()

	got := keys(Options(smartphones(), "galaxy s4", '_'))
	if len(got) != 1 || got[0] != 4 {
		t.Errorf("Options(%q) keys = %v, want [4]", "galaxy s4", got)
	}

	if raw := Options(smartphones(), "galaxy s4", 0); len(raw) != 0 {
		t.Errorf("Options(%q) on raw labels = %v, want none", "galaxy s4", keys(raw))
	}
}
