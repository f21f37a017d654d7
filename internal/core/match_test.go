package core_test

import (
	"testing"

	"chainex-assistant/internal/core"
)

func TestFragment_Match(t *testing.T) {
	tests := []struct {
		name     string
		fragment core.Fragment
		field    string
		want     bool
	}{
		{"case-insensitive", "war", "Warehouse A", true},
		{"uppercase fragment", "WAREHOUSE", "Main warehouse", true},
		{"anchored nowhere", "house A", "Warehouse A", true},
		{"no occurrence", "depot", "Warehouse A", false},
		{"dot matches itself only", "a.b", "axb", false},
		{"dot literal present", "a.b", "item a.b special", true},
		{"star is literal", "wid*", "widget", false},
		{"percent is literal", "100%", "100% cotton tee", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fragment.Match(tt.field); got != tt.want {
				t.Errorf("Fragment(%q).Match(%q) = %v, want %v", tt.fragment, tt.field, got, tt.want)
			}
		})
	}
}

func TestFragment_LikePattern(t *testing.T) {
	tests := []struct {
		fragment core.Fragment
		want     string
	}{
		{"widget", "%widget%"},
		{"100%", `%100\%%`},
		{"a_b", `%a\_b%`},
		{`c:\tmp`, `%c:\\tmp%`},
	}

	for _, tt := range tests {
		if got := tt.fragment.LikePattern(); got != tt.want {
			t.Errorf("Fragment(%q).LikePattern() = %q, want %q", tt.fragment, got, tt.want)
		}
	}
}

func TestFragment_IsZero(t *testing.T) {
	if !core.Fragment("").IsZero() {
		t.Error("empty fragment should be zero")
	}
	if !core.Fragment("   ").IsZero() {
		t.Error("whitespace fragment should be zero")
	}
	if core.Fragment("a").IsZero() {
		t.Error("non-empty fragment should not be zero")
	}
}
