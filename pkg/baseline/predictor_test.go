package baseline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"localfare/pkg/model"
)

func TestMeanPredictorPredictsCorpusMean(t *testing.T) {
	records := []*model.Restaurant{
		{Rating: 4.0}, {Rating: 4.5}, {Rating: 3.5},
	}
	p := NewMeanPredictor()
	require := assert.New(t)
	require.NoError(p.Fit(records))
	preds := p.PredictBatch(records)
	for _, v := range preds {
		assert.InDelta(t, 4.0, v, 0.001)
	}
}

func TestApplyResidualsZeroesOutOnFitFailure(t *testing.T) {
	records := []*model.Restaurant{
		{Rating: 4.0, ReviewCount: 10}, {Rating: 4.5, ReviewCount: 20},
	}
	ApplyResiduals(NewTreeEnsemble(), records)
	for _, r := range records {
		assert.Equal(t, 0.0, r.PredictedRating)
		assert.Equal(t, 0.0, r.Residual)
	}
}

func TestApplyResidualsWithMeanPredictorSetsResidual(t *testing.T) {
	records := []*model.Restaurant{
		{Rating: 4.0}, {Rating: 5.0},
	}
	ApplyResiduals(NewMeanPredictor(), records)
	assert.InDelta(t, -0.5, records[0].Residual, 0.001)
	assert.InDelta(t, 0.5, records[1].Residual, 0.001)
}
