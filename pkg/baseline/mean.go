package baseline

import (
	"gonum.org/v1/gonum/stat"

	"localfare/pkg/model"
)

// MeanPredictor is the trivial fallback predictor explicitly sanctioned by
// §9: it predicts the corpus-mean rating for every record, satisfying the
// "residuals mean near zero" contract by construction.
type MeanPredictor struct {
	mean float64
}

func NewMeanPredictor() *MeanPredictor {
	return &MeanPredictor{}
}

func (p *MeanPredictor) Fit(records []*model.Restaurant) error {
	if len(records) == 0 {
		p.mean = 0
		return nil
	}
	ratings := make([]float64, len(records))
	for i, r := range records {
		ratings[i] = r.Rating
	}
	p.mean = stat.Mean(ratings, nil)
	return nil
}

func (p *MeanPredictor) PredictBatch(records []*model.Restaurant) []float64 {
	out := make([]float64, len(records))
	for i := range records {
		out[i] = p.mean
	}
	return out
}
