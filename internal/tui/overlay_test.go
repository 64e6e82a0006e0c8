package tui

import "testing"

func TestOverlayAtReplacesCells(t *testing.T) {
	cases := []struct {
		name    string
		base    string
		overlay string
		x, y    int
		want    string
	}{
		{"middle", "aaaaaa\nbbbbbb", "XY", 2, 1, "aaaaaa\nbbXYbb"},
		{"short base line is padded", "aaaaaa\nab", "XY", 3, 1, "aaaaaa\nab XY "},
		{"rows past height are dropped", "aaaaaa\nbbbbbb", "XY\nZW", 0, 1, "aaaaaa\nXYbbbb"},
		{"ragged overlay is padded to its widest line", "aaaaaa", "XYZ\nW", 1, 0, "aXYZaa"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := overlayAt(tc.base, tc.overlay, tc.x, tc.y, 6, 2); got != tc.want {
				t.Fatalf("overlayAt = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestFitTruncatesAndPads(t *testing.T) {
	if got := fit("Bartholomew", 6); got != "Barth…" {
		t.Fatalf("fit long = %q", got)
	}
	if got := fit("Ann", 6); got != "Ann   " {
		t.Fatalf("fit short = %q", got)
	}
}
