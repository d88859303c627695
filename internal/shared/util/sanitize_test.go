package util

import "testing"

func TestSanitizeFileName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"steuer.pdf", "steuer.pdf"},
		{"steuerrechnung 2024.pdf", "steuerrechnung_2024.pdf"},
		{"prämien-übersicht.jpg", "pr_mien-_bersicht.jpg"},
		{"a/b\\c.png", "a_b_c.png"},
	}
	for _, tc := range cases {
		got, err := SanitizeFileName(tc.in)
		if err != nil {
			t.Fatalf("SanitizeFileName(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("SanitizeFileName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSanitizeFileNameRejectsTraversal(t *testing.T) {
	for _, in := range []string{"..", "../etc/passwd", "a..b.pdf", "", "   "} {
		if _, err := SanitizeFileName(in); err == nil {
			t.Fatalf("expected rejection for %q", in)
		}
	}
}
