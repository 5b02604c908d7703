package diagnosis

import (
	"strings"

	"github.com/farmassist/farmassist/server/pkg/models"
)

// rule maps a substring of the case-folded input to a canonical value.
// Rules are evaluated in order; first match wins.
type rule struct {
	substr    string
	canonical string
}

// Crop names arrive as free text ("Zea mays (corn)", "paddy field
// rice"), so matching is deliberately substring-based, not exact.
var cropRules = []rule{
	{"maize", models.CropCorn},
	{"corn", models.CropCorn},
	{"rice", models.CropRice},
	{"paddy", models.CropRice},
	{"wheat", models.CropWheat},
	{"tomato", models.CropTomato},
	{"potato", models.CropPotato},
	{"cotton", models.CropCotton},
	{"sugarcane", models.CropSugarcane},
}

var diseaseRules = []rule{
	{"ear rot", "ear rot"},
	{"corn smut", "corn smut"},
	{"late blight", "late blight"},
	{"early blight", "early blight"},
	{"bacterial wilt", "bacterial wilt"},
	{"wheat rust", "wheat rust"},
	{"leaf curl", "leaf curl virus"},
}

// NormalizeCrop maps free crop text onto the canonical crop vocabulary.
// Unrecognized or empty input yields CropUnknown; the crop vocabulary is
// closed.
func NormalizeCrop(raw string) string {
	lowered := strings.ToLower(strings.TrimSpace(raw))
	if lowered == "" {
		return models.CropUnknown
	}
	for _, r := range cropRules {
		if strings.Contains(lowered, r.substr) {
			return r.canonical
		}
	}
	return models.CropUnknown
}

// NormalizeDisease maps free disease text onto the canonical disease
// phrases. Unlike crops, the disease vocabulary is open-ended:
// unrecognized input passes through case-folded, so normalizing twice
// yields the same string. Empty input yields empty.
func NormalizeDisease(raw string) string {
	lowered := strings.ToLower(strings.TrimSpace(raw))
	if lowered == "" {
		return ""
	}
	for _, r := range diseaseRules {
		if strings.Contains(lowered, r.substr) {
			return r.canonical
		}
	}
	return lowered
}

// NormalizeRisk clamps the model's risk text onto the known ratings.
func NormalizeRisk(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "low":
		return models.RiskLow
	case "medium", "moderate":
		return models.RiskMedium
	case "high":
		return models.RiskHigh
	default:
		return models.RiskUnknown
	}
}
