package normalization

import (
	"strings"
	"testing"
)

type testEnum string

const (
	testAlpha testEnum = "alpha"
	testBeta  testEnum = "beta"
)

func TestNormalizer_Normalize(t *testing.T) {
	n := NewNormalizer(map[string]testEnum{"alpha": testAlpha, "beta": testBeta}, testAlpha)

	tests := []struct {
		name     string
		input    string
		expected testEnum
	}{
		{"exact match", "beta", testBeta},
		{"case insensitive", "BETA", testBeta},
		{"with spaces", "  beta  ", testBeta},
		{"empty uses default", "", testAlpha},
		{"invalid uses default", "gamma", testAlpha},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := n.Normalize(tt.input); got != tt.expected {
				t.Errorf("Normalize(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNormalizer_NormalizeWithError(t *testing.T) {
	n := NewNormalizer(map[string]testEnum{"alpha": testAlpha, "beta": testBeta}, testAlpha)

	if v, err := n.NormalizeWithError(" Beta "); err != nil || v != testBeta {
		t.Fatalf("expected beta, got %v (%v)", v, err)
	}
	if v, err := n.NormalizeWithError(""); err != nil || v != testAlpha {
		t.Fatalf("expected default for empty input, got %v (%v)", v, err)
	}
	_, err := n.NormalizeWithError("gamma")
	if err == nil {
		t.Fatal("expected error for unknown value")
	}
	if !strings.Contains(err.Error(), "[alpha beta]") {
		t.Fatalf("expected sorted valid options in %q", err.Error())
	}
}
