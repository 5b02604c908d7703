package diagnosis_test

import (
	"reflect"
	"testing"

	"github.com/farmassist/farmassist/server/internal/advisory"
	"github.com/farmassist/farmassist/server/internal/diagnosis"
	"github.com/farmassist/farmassist/server/pkg/models"
)

func newTestEnricher(t *testing.T) *diagnosis.Enricher {
	t.Helper()
	table, err := advisory.Load("")
	if err != nil {
		t.Fatalf("advisory.Load() error = %v", err)
	}
	return diagnosis.NewEnricher(table)
}

func TestEnrich_AdvisoryTableHit(t *testing.T) {
	e := newTestEnricher(t)

	got := e.Apply(models.Diagnosis{
		IsPlant: true,
		Crop:    models.CropTomato,
		Disease: "late blight",
		Risk:    models.RiskMedium,
	})

	if got.Risk != models.RiskHigh {
		t.Errorf("Risk = %q, want %q", got.Risk, models.RiskHigh)
	}
	if got.GovtAdvisory == "" {
		t.Error("GovtAdvisory is empty, want advisory text")
	}
	if got.Pesticide == nil {
		t.Fatal("Pesticide is nil, want a recommendation")
	}
	if got.Pesticide.Name != "Mancozeb 75% WP" {
		t.Errorf("Pesticide.Name = %q, want %q", got.Pesticide.Name, "Mancozeb 75% WP")
	}
	if got.Warning == "" {
		t.Error("Warning is empty, want a backfilled warning")
	}
}

func TestEnrich_HighRiskEscalationWithoutTableHit(t *testing.T) {
	e := newTestEnricher(t)

	// Rice has no late-blight entry, so only the escalation step applies.
	got := e.Apply(models.Diagnosis{
		IsPlant: true,
		Crop:    models.CropRice,
		Disease: "late blight",
		Risk:    models.RiskLow,
	})

	if got.Risk != models.RiskHigh {
		t.Errorf("Risk = %q, want %q (escalation alone must force High)", got.Risk, models.RiskHigh)
	}
	if got.GovtAdvisory != "" {
		t.Errorf("GovtAdvisory = %q, want empty (no table entry)", got.GovtAdvisory)
	}
	if got.Pesticide != nil {
		t.Errorf("Pesticide = %+v, want nil", got.Pesticide)
	}
}

func TestEnrich_Idempotent(t *testing.T) {
	e := newTestEnricher(t)

	inputs := []models.Diagnosis{
		{IsPlant: true, Crop: models.CropTomato, Disease: "late blight", Risk: models.RiskMedium},
		{IsPlant: true, Crop: models.CropRice, Disease: "brown spot", Risk: models.RiskLow, Warning: "model warning"},
		{IsPlant: true, Crop: models.CropUnknown, Disease: "odd disease", Risk: models.RiskUnknown},
	}

	for _, in := range inputs {
		once := e.Apply(in)
		twice := e.Apply(once)
		if !reflect.DeepEqual(once, twice) {
			t.Errorf("Apply not idempotent for %+v:\n first %+v\nsecond %+v", in, once, twice)
		}
	}
}

func TestEnrich_WarningPlaceholderBackfilled(t *testing.T) {
	e := newTestEnricher(t)

	got := e.Apply(models.Diagnosis{
		IsPlant: true,
		Crop:    models.CropCotton,
		Disease: "leaf curl virus",
		Risk:    models.RiskMedium,
		Warning: "None",
	})

	if got.Warning == "" || got.Warning == "None" {
		t.Errorf("Warning = %q, want placeholder replaced with disease warning", got.Warning)
	}
}

func TestEnrich_ModelWarningPreserved(t *testing.T) {
	e := newTestEnricher(t)

	const modelWarning = "Severe infection visible on lower leaves"
	got := e.Apply(models.Diagnosis{
		IsPlant: true,
		Crop:    models.CropTomato,
		Disease: "late blight",
		Risk:    models.RiskHigh,
		Warning: modelWarning,
	})

	if got.Warning != modelWarning {
		t.Errorf("Warning = %q, want model warning %q preserved", got.Warning, modelWarning)
	}
}

func TestEnrich_UnsupportedCropFallbackWarning(t *testing.T) {
	e := newTestEnricher(t)

	got := e.Apply(models.Diagnosis{
		IsPlant: true,
		Crop:    models.CropUnknown,
		Disease: "some fungal spot",
		Risk:    models.RiskLow,
	})

	if got.Warning != advisory.UnsupportedCropWarning {
		t.Errorf("Warning = %q, want %q", got.Warning, advisory.UnsupportedCropWarning)
	}
	if got.Risk != models.RiskLow {
		t.Errorf("Risk = %q, want %q (no escalation for unknown disease)", got.Risk, models.RiskLow)
	}
}
