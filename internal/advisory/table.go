// Package advisory holds the static crop-disease knowledge base used to
// enrich diagnoses: the government-advisory table, the high-risk disease
// set, and per-disease warning texts.
//
// The table is loaded once at startup and never mutated afterwards, so
// it is safe for concurrent reads without locking. It is injected into
// the enricher rather than referenced as package-global state, which
// keeps tests deterministic with substituted tables.
//
// Data is aligned with common ICAR / KVK disease guidelines. Pesticide
// info is indicative, not prescriptive.
package advisory

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/farmassist/farmassist/server/pkg/models"
)

// Entry is the guidance attached to one (crop, disease) pair.
type Entry struct {
	Risk      string            `json:"risk"`
	Advisory  string            `json:"advisory"`
	Pesticide *models.Pesticide `json:"pesticide,omitempty"`
}

// Table maps canonical crop name to disease name to guidance.
type Table struct {
	entries map[string]map[string]Entry
}

// Load builds the advisory table from the built-in data, optionally
// merging entries from a JSON file on top. The file uses the same nested
// crop→disease→entry shape as the built-in data; file entries win.
func Load(file string) (*Table, error) {
	entries := make(map[string]map[string]Entry, len(builtinEntries))
	for crop, diseases := range builtinEntries {
		entries[crop] = make(map[string]Entry, len(diseases))
		for disease, e := range diseases {
			entries[crop][disease] = e
		}
	}

	if file != "" {
		raw, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read advisory file: %w", err)
		}
		var overrides map[string]map[string]Entry
		if err := json.Unmarshal(raw, &overrides); err != nil {
			return nil, fmt.Errorf("parse advisory file: %w", err)
		}
		for crop, diseases := range overrides {
			if entries[crop] == nil {
				entries[crop] = make(map[string]Entry, len(diseases))
			}
			for disease, e := range diseases {
				entries[crop][disease] = e
			}
		}
	}

	return &Table{entries: entries}, nil
}

// NewTable wraps explicit entries, mainly for tests.
func NewTable(entries map[string]map[string]Entry) *Table {
	return &Table{entries: entries}
}

// Lookup returns the entry for a (crop, disease) pair.
func (t *Table) Lookup(crop, disease string) (Entry, bool) {
	diseases, ok := t.entries[crop]
	if !ok {
		return Entry{}, false
	}
	e, ok := diseases[disease]
	return e, ok
}

// Crops returns the number of crops with at least one entry.
func (t *Table) Crops() int { return len(t.entries) }

// Entries returns the total number of (crop, disease) entries.
func (t *Table) Entries() int {
	n := 0
	for _, diseases := range t.entries {
		n += len(diseases)
	}
	return n
}

// highRisk lists diseases that force risk escalation regardless of what
// the model reported.
var highRisk = map[string]struct{}{
	"late blight":           {},
	"bacterial wilt":        {},
	"septoria leaf spot":    {},
	"blast disease":         {},
	"bacterial leaf blight": {},
	"wheat rust":            {},
	"karnal bunt":           {},
	"gray leaf spot":        {},
	"corn smut":             {},
	"ear rot":               {},
	"bollworm":              {},
	"leaf curl virus":       {},
	"red rot":               {},
	"smut":                  {},
}

// IsHighRisk reports whether the normalized disease is in the fixed
// high-risk set.
func IsHighRisk(disease string) bool {
	_, ok := highRisk[disease]
	return ok
}

// diseaseWarnings backfills a warning when the model supplied none.
var diseaseWarnings = map[string]string{
	"late blight":     "Late blight can wipe out a field within days in cool, wet weather. Act immediately.",
	"early blight":    "Early blight weakens plants progressively. Remove affected leaves early.",
	"bacterial wilt":  "Bacterial wilt kills plants suddenly. Do not replant solanaceous crops in the same soil.",
	"wheat rust":      "Wheat rust spores travel on wind across fields. Inspect neighbouring plots.",
	"corn smut":       "Corn smut galls release spores when they burst. Remove galls before they mature.",
	"ear rot":         "Ear rot can produce mycotoxins. Do not feed infected grain to livestock.",
	"leaf curl virus": "Leaf curl virus spreads through whiteflies. Control the vector, not just the plant.",
}

// WarningFor returns the canned warning for a disease, if one exists.
func WarningFor(disease string) (string, bool) {
	w, ok := diseaseWarnings[disease]
	return w, ok
}

// AttributionWarning is the default warning attached when an advisory
// table entry matched but the model supplied no warning of its own.
const AttributionWarning = "Advisory based on ICAR / KVK disease guidelines. Confirm dosage with your local agriculture office."

// UnsupportedCropWarning is set when the crop is outside the canonical
// vocabulary and no other warning applies.
const UnsupportedCropWarning = "Limited advisory support for this crop. Consult your local agriculture office for guidance."

var supportedCrops = map[string]struct{}{
	models.CropTomato:    {},
	models.CropRice:      {},
	models.CropWheat:     {},
	models.CropCorn:      {},
	models.CropPotato:    {},
	models.CropCotton:    {},
	models.CropSugarcane: {},
}

// IsSupportedCrop reports whether the crop is in the canonical
// vocabulary (excluding Unknown).
func IsSupportedCrop(crop string) bool {
	_, ok := supportedCrops[crop]
	return ok
}
