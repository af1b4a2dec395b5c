package utils

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"lowercase", "Films", "films"},
		{"spaces to dashes", "Science Fiction", "science-fiction"},
		{"slash to dash", "Sci-Fi/Fantasy", "sci-fi-fantasy"},
		{"special chars stripped", "Rock & Roll", "rock-roll"},
		{"trim whitespace", "  Drama  ", "drama"},
		{"collapse dashes", "Talk --- Show", "talk-show"},
		{"underscores kept", "ball_room", "ball_room"},
		{"empty input", "", ""},
		{"only special chars", "&!@", ""},
		{"cyrillic stripped", "Фильм", ""},
		{
			"capped at fifty chars",
			"a very long category name that keeps going well past the slug limit",
			"a-very-long-category-name-that-keeps-going-well-pa",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Slugify(tt.input)
			if result != tt.expected {
				t.Errorf("Slugify(%q) = %q, want %q", tt.input, result, tt.expected)
			}
			if len(result) > 50 {
				t.Errorf("Slugify(%q) produced %d chars, limit is 50", tt.input, len(result))
			}
		})
	}
}

func TestUsernamePattern(t *testing.T) {
	valid := []string{"capt.nemo", "user@host", "first+last", "under_score", "dash-ed", "u123"}
	for _, v := range valid {
		if !usernameRe.MatchString(v) {
			t.Errorf("expected %q to be a valid username", v)
		}
	}

	invalid := []string{"", "with space", "semi;colon", "слово", "tab\tchar"}
	for _, v := range invalid {
		if usernameRe.MatchString(v) {
			t.Errorf("expected %q to be rejected", v)
		}
	}
}

func TestSlugPattern(t *testing.T) {
	valid := []string{"films", "sci-fi", "top_10", "A-Z"}
	for _, v := range valid {
		if !slugRe.MatchString(v) {
			t.Errorf("expected %q to be a valid slug", v)
		}
	}

	invalid := []string{"", "with space", "dot.ted", "slash/ed"}
	for _, v := range invalid {
		if slugRe.MatchString(v) {
			t.Errorf("expected %q to be rejected", v)
		}
	}
}
