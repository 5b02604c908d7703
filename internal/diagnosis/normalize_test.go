package diagnosis_test

import (
	"testing"

	"github.com/farmassist/farmassist/server/internal/diagnosis"
)

func TestNormalizeCrop(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"tomato", "tomato"},
		{"Tomato (Solanum lycopersicum)", "tomato"},
		{"RICE", "rice"},
		{"paddy field rice", "rice"},
		{"Paddy", "rice"},
		{"Zea mays (corn)", "corn"},
		{"maize", "corn"},
		{"Maize crop", "corn"},
		{"winter wheat", "wheat"},
		{"potato", "potato"},
		{"Cotton plant", "cotton"},
		{"sugarcane", "sugarcane"},
		{"banana", "Unknown"},
		{"", "Unknown"},
		{"   ", "Unknown"},
	}

	for _, tt := range tests {
		if got := diagnosis.NormalizeCrop(tt.raw); got != tt.want {
			t.Errorf("NormalizeCrop(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestNormalizeDisease(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"Late Blight", "late blight"},
		{"severe late blight infection", "late blight"},
		{"Early Blight", "early blight"},
		{"Bacterial Wilt", "bacterial wilt"},
		{"Wheat Rust (stem)", "wheat rust"},
		{"Corn Smut", "corn smut"},
		{"Ear Rot", "ear rot"},
		{"Leaf Curl", "leaf curl virus"},
		{"Tomato Leaf Curl Virus", "leaf curl virus"},
		// Unrecognized diseases pass through case-folded; the disease
		// vocabulary is open-ended.
		{"Powdery Mildew", "powdery mildew"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := diagnosis.NormalizeDisease(tt.raw); got != tt.want {
			t.Errorf("NormalizeDisease(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestNormalizeDisease_Idempotent(t *testing.T) {
	inputs := []string{"Late Blight", "Powdery Mildew", "something odd", "Leaf Curl"}
	for _, raw := range inputs {
		once := diagnosis.NormalizeDisease(raw)
		twice := diagnosis.NormalizeDisease(once)
		if once != twice {
			t.Errorf("NormalizeDisease not idempotent for %q: first %q, second %q", raw, once, twice)
		}
	}
}

func TestNormalizeRisk(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"High", "High"},
		{"high", "High"},
		{"Medium", "Medium"},
		{"moderate", "Medium"},
		{"LOW", "Low"},
		{"critical", "Unknown"},
		{"", "Unknown"},
	}

	for _, tt := range tests {
		if got := diagnosis.NormalizeRisk(tt.raw); got != tt.want {
			t.Errorf("NormalizeRisk(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}
