// Package diagnosis implements the analyze pipeline: extracting the
// model's JSON reply, normalizing crop and disease names onto the
// canonical vocabulary, and enriching the result with the advisory
// table.
package diagnosis

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// Reply is the partial diagnosis record parsed from the model's text,
// before normalization and enrichment.
type Reply struct {
	IsPlant bool     `json:"isPlant"`
	Crop    string   `json:"crop"`
	Disease string   `json:"disease"`
	Risk    string   `json:"risk"`
	Actions []string `json:"actions"`
	Warning string   `json:"warning"`
}

// Models wrap JSON in markdown fences more often than not, regardless of
// how strictly the prompt forbids it.
var fenceOpen = regexp.MustCompile("(?i)```json")

// Extract strips markdown code fences from the model's text and parses
// the remainder as strict JSON. A parse failure is returned as an error,
// never as a silently-defaulted record, so the caller can distinguish
// "model said something uninterpretable" from "model said nothing".
func Extract(text string) (*Reply, error) {
	cleaned := fenceOpen.ReplaceAllString(text, "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	cleaned = strings.TrimSpace(cleaned)

	var reply Reply
	if err := json.Unmarshal([]byte(cleaned), &reply); err != nil {
		return nil, fmt.Errorf("model output is not valid JSON: %w", err)
	}
	return &reply, nil
}
