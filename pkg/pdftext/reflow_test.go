package pdftext

import (
	"strings"
	"testing"
)

func TestReflowRecommendations(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "bullets become separate blocks",
			in:   "- Install bollards at vehicle approaches\n- Upgrade lighting to 5 lux minimum",
			want: "Install bollards at vehicle approaches\nUpgrade lighting to 5 lux minimum",
		},
		{
			name: "numbered enumerators stripped",
			in:   "1. Harden the lobby entrance.\n2. Post signage at the perimeter.",
			want: "Harden the lobby entrance.\nPost signage at the perimeter.",
		},
		{
			name: "wrap continuation joined with single space",
			in:   "Install additional cameras along the\nnorth fence line.",
			want: "Install additional cameras along the north fence line.",
		},
		{
			name: "sentence boundary not joined",
			in:   "Install additional cameras.\nReview lighting levels.",
			want: "Install additional cameras.\nReview lighting levels.",
		},
		{
			name: "blank line separates blocks",
			in:   "First recommendation text\n\nSecond recommendation text",
			want: "First recommendation text\nSecond recommendation text",
		},
		{
			name: "inner spaces collapse",
			in:   "- Install   bollards\tat  approaches",
			want: "Install bollards at approaches",
		},
		{
			name: "carriage returns removed",
			in:   "- Install bollards\r\n- Upgrade lighting",
			want: "Install bollards\nUpgrade lighting",
		},
		{
			name: "unicode bullets",
			in:   "• Secure the mailroom\n▪ Screen deliveries",
			want: "Secure the mailroom\nScreen deliveries",
		},
		{
			name: "wrap after comma",
			in:   "Coordinate with local law enforcement,\nfire, and EMS partners.",
			want: "Coordinate with local law enforcement, fire, and EMS partners.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ReflowRecommendations(tt.in)
			if got != tt.want {
				t.Errorf("ReflowRecommendations() =\n%q\nwant\n%q", got, tt.want)
			}
		})
	}
}

// Bulleted options must survive as distinct lines, never merged into
// one option.
func TestReflowKeepsBulletsSeparate(t *testing.T) {
	in := "- Install bollards at vehicle approaches\n- Upgrade lighting to 5 lux minimum"
	out := ReflowRecommendations(in)

	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("blocks = %d, want 2: %q", len(lines), out)
	}
	if strings.Contains(lines[0], "lighting") {
		t.Errorf("bullets were merged: %q", lines[0])
	}
}

func TestReflowPagesPreservesPageNumbers(t *testing.T) {
	pages := []Page{
		{PageNumber: 1, Text: "- item one"},
		{PageNumber: 2, Text: ""},
	}
	out := ReflowPages(pages)
	if out[0].PageNumber != 1 || out[1].PageNumber != 2 {
		t.Errorf("page numbers changed: %+v", out)
	}
	if out[0].Text != "item one" {
		t.Errorf("Text = %q, want %q", out[0].Text, "item one")
	}
}
