package diagnosis

import (
	"github.com/farmassist/farmassist/server/internal/advisory"
	"github.com/farmassist/farmassist/server/pkg/models"
)

// Enricher merges a normalized diagnosis with the advisory table. The
// table is injected so tests can substitute their own.
type Enricher struct {
	table *advisory.Table
}

// NewEnricher creates an enricher over the given advisory table.
func NewEnricher(table *advisory.Table) *Enricher {
	return &Enricher{table: table}
}

// noWarning is the literal placeholder some model replies use instead of
// omitting the field.
const noWarning = "None"

// Apply enriches a diagnosis in a fixed step order. It is a pure, total
// transform: it never fails, never clears a previously set field, and
// each step only fills gaps or escalates risk, so applying it twice
// yields the same record.
func (e *Enricher) Apply(d models.Diagnosis) models.Diagnosis {
	// 1. Risk escalation: the fixed high-risk set wins over the model's
	// own rating.
	if advisory.IsHighRisk(d.Disease) {
		d.Risk = models.RiskHigh
	}

	// 2. Warning backfill from the per-disease table.
	if d.Warning == "" || d.Warning == noWarning {
		if w, ok := advisory.WarningFor(d.Disease); ok {
			d.Warning = w
		}
	}

	// 3. Advisory merge. The table is authoritative domain knowledge:
	// its risk rating overrides both the model's and step 1's.
	if entry, ok := e.table.Lookup(d.Crop, d.Disease); ok {
		d.GovtAdvisory = entry.Advisory
		if entry.Pesticide != nil {
			p := *entry.Pesticide
			d.Pesticide = &p
		}
		if entry.Risk != "" {
			d.Risk = entry.Risk
		}
		if d.Warning == "" || d.Warning == noWarning {
			d.Warning = advisory.AttributionWarning
		}
	}

	// 4. Support-check fallback for crops outside the vocabulary.
	if !advisory.IsSupportedCrop(d.Crop) && (d.Warning == "" || d.Warning == noWarning) {
		d.Warning = advisory.UnsupportedCropWarning
	}

	return d
}
