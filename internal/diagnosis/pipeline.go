package diagnosis

import (
	"context"

	"github.com/farmassist/farmassist/server/internal/advisory"
	"github.com/farmassist/farmassist/server/internal/vision"
	"github.com/farmassist/farmassist/server/pkg/models"

	"github.com/rs/zerolog/log"
)

// Classifier is the vision-model boundary the pipeline depends on.
// *vision.Client satisfies it; tests substitute fakes.
type Classifier interface {
	Classify(ctx context.Context, image []byte, mimeType string) vision.Outcome
}

// Code is the closed set of pipeline outcomes. The analyze handler is
// the single place that maps these to HTTP status codes.
type Code int

const (
	// CodeOK means a diagnosis was produced.
	CodeOK Code = iota
	// CodeNotAPlant means the model determined the image is not a plant.
	// This is a defined negative outcome, not an error.
	CodeNotAPlant
	// CodeRateLimited means the vision upstream signaled quota exhaustion.
	CodeRateLimited
	// CodeUpstreamError covers vision transport failures, non-success
	// statuses, and unparseable response envelopes.
	CodeUpstreamError
	// CodeInvalidResponse means the vision call succeeded but returned
	// no usable text.
	CodeInvalidResponse
	// CodeUnparseable means the model's text was not valid JSON after
	// fence stripping.
	CodeUnparseable
)

// Result is the outcome of one pipeline run. Diagnosis is set only for
// CodeOK; Err carries detail for CodeUpstreamError and CodeUnparseable.
type Result struct {
	Code      Code
	Diagnosis *models.Diagnosis
	Err       error
}

// Pipeline chains the four analyze stages: vision call, extraction,
// normalization, and enrichment.
type Pipeline struct {
	classifier Classifier
	enricher   *Enricher
}

// NewPipeline builds a pipeline over a classifier and an advisory table.
func NewPipeline(c Classifier, table *advisory.Table) *Pipeline {
	return &Pipeline{
		classifier: c,
		enricher:   NewEnricher(table),
	}
}

// Analyze runs the full pipeline on one image. It performs exactly one
// outbound network call and never retries it; the rate-limit and error
// signals are surfaced to the caller as distinct codes instead.
func (p *Pipeline) Analyze(ctx context.Context, image []byte, mimeType string) Result {
	outcome := p.classifier.Classify(ctx, image, mimeType)
	switch outcome.Status {
	case vision.StatusRateLimited:
		return Result{Code: CodeRateLimited}
	case vision.StatusError:
		return Result{Code: CodeUpstreamError, Err: outcome.Err}
	case vision.StatusInvalidResponse:
		return Result{Code: CodeInvalidResponse}
	case vision.StatusOK:
		// fall through to extraction
	default:
		return Result{Code: CodeUpstreamError, Err: outcome.Err}
	}

	reply, err := Extract(outcome.Text)
	if err != nil {
		log.Warn().Err(err).Msg("Model output unparseable")
		return Result{Code: CodeUnparseable, Err: err}
	}

	if !reply.IsPlant {
		return Result{Code: CodeNotAPlant}
	}

	d := models.Diagnosis{
		IsPlant: true,
		Crop:    NormalizeCrop(reply.Crop),
		Disease: NormalizeDisease(reply.Disease),
		Risk:    NormalizeRisk(reply.Risk),
		Actions: reply.Actions,
		Warning: reply.Warning,
	}
	if d.Actions == nil {
		d.Actions = []string{}
	}

	d = p.enricher.Apply(d)

	log.Info().
		Str("crop", d.Crop).
		Str("disease", d.Disease).
		Str("risk", d.Risk).
		Bool("advisory_hit", d.GovtAdvisory != "").
		Msg("Diagnosis produced")

	return Result{Code: CodeOK, Diagnosis: &d}
}
