// Package baseline supplies the "expected rating" used to compute each
// record's residual (§4.2). The residual source is pluggable: anything
// satisfying Predictor qualifies, including the trivial corpus-mean
// fallback.
package baseline

import (
	"log/slog"

	"localfare/pkg/model"
)

// Predictor produces an expected rating per record, trained only on
// structural features — never on name, guide membership, or downstream
// scoring signals (§4.2 contract).
type Predictor interface {
	// Fit trains the predictor on the full corpus. Called once per corpus.
	Fit(records []*model.Restaurant) error
	// PredictBatch returns one expected rating per input record, in order.
	PredictBatch(records []*model.Restaurant) []float64
}

// ApplyResiduals fits p on records and writes PredictedRating/Residual back
// onto each record. If Fit fails, residuals fall back to zero across the
// corpus and a warning is logged (§7 "Baseline-predictor-unavailable") —
// the pipeline never fails because a predictor misbehaves.
func ApplyResiduals(p Predictor, records []*model.Restaurant) {
	if len(records) == 0 {
		return
	}
	if err := p.Fit(records); err != nil {
		slog.Warn("baseline predictor unavailable, residuals default to zero", "error", err)
		for _, r := range records {
			r.PredictedRating = 0
			r.Residual = 0
		}
		return
	}

	preds := p.PredictBatch(records)
	for i, r := range records {
		if i >= len(preds) {
			break
		}
		r.PredictedRating = preds[i]
		r.Residual = r.Rating - preds[i]
	}
}
