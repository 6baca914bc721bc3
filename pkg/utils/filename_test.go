package utils

import "testing"

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"My Great Page", "My_Great_Page"},
		{"a/b: c?", "a_b_c"},
		{`report <2024> "final"`, "report_2024_final"},
		{"  spaced   out  ", "spaced_out"},
		{"///", "untitled"},
		{"", "untitled"},
		{"already_fine", "already_fine"},
	}
	for _, tt := range tests {
		if got := SanitizeFilename(tt.in); got != tt.want {
			t.Errorf("SanitizeFilename(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
