package baseline

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/stat"

	"localfare/pkg/model"
)

// ErrTooFewRecords is returned by Fit when the corpus is too small to fit a
// stable ensemble (§4.2 failure mode: "corpus too small").
var ErrTooFewRecords = errors.New("baseline: corpus too small to fit")

// TreeEnsemble is an additive ensemble of shallow regression trees over
// structural features only (log-review-count, price, chain flag, one-hot
// cuisine/venue; hex-cell aggregates are not among the features), fit by
// gradient boosting against
// squared-error loss. Depth and leaf size are capped per §4.2's design
// intent of capturing non-linearities without overfitting a modest corpus.
type TreeEnsemble struct {
	NumTrees     int
	MaxDepth     int
	MinLeafSize  int
	LearningRate float64

	baseValue float64
	trees     []*treeNode
	features  func(*model.Restaurant) []float64
	cv        float64 // cross-validated R², logged for operator inspection.
}

// NewTreeEnsemble returns a TreeEnsemble with the stated structural-feature
// extractor and conservative defaults.
func NewTreeEnsemble() *TreeEnsemble {
	return &TreeEnsemble{
		NumTrees:     40,
		MaxDepth:     3,
		MinLeafSize:  5,
		LearningRate: 0.1,
		features:     structuralFeatures,
	}
}

// CVR2 returns the cross-validated R² logged after the most recent Fit.
func (e *TreeEnsemble) CVR2() float64 { return e.cv }

func (e *TreeEnsemble) Fit(records []*model.Restaurant) error {
	if len(records) < e.MinLeafSize*2 {
		return ErrTooFewRecords
	}

	X := make([][]float64, len(records))
	y := make([]float64, len(records))
	for i, r := range records {
		X[i] = e.features(r)
		y[i] = r.Rating
	}

	e.cv = crossValidatedR2(X, y, e)

	ratings := make([]float64, len(records))
	copy(ratings, y)
	e.baseValue = stat.Mean(ratings, nil)

	residual := make([]float64, len(y))
	for i := range y {
		residual[i] = y[i] - e.baseValue
	}

	e.trees = e.trees[:0]
	for t := 0; t < e.NumTrees; t++ {
		tree := fitTree(X, residual, e.MaxDepth, e.MinLeafSize)
		e.trees = append(e.trees, tree)
		for i, x := range X {
			residual[i] -= e.LearningRate * tree.predict(x)
		}
	}
	return nil
}

func (e *TreeEnsemble) PredictBatch(records []*model.Restaurant) []float64 {
	out := make([]float64, len(records))
	for i, r := range records {
		out[i] = e.predictOne(e.features(r))
	}
	return out
}

func (e *TreeEnsemble) predictOne(x []float64) float64 {
	v := e.baseValue
	for _, tree := range e.trees {
		v += e.LearningRate * tree.predict(x)
	}
	return v
}

// structuralFeatures extracts the closed feature vector permitted by §4.2:
// log-review-count, price numeric, chain flag, and a fixed-width one-hot
// encoding of cuisine and venue type over the curated closed sets.
func structuralFeatures(r *model.Restaurant) []float64 {
	feats := make([]float64, 0, 3+len(cuisineVocabulary)+len(venueVocabulary))
	feats = append(feats, r.LogReviewCount, float64(r.PriceNumeric), boolFloat(r.IsChain))
	for _, c := range cuisineVocabulary {
		feats = append(feats, boolFloat(r.Cuisine == c))
	}
	for _, v := range venueVocabulary {
		feats = append(feats, boolFloat(r.VenueType == v))
	}
	return feats
}

var cuisineVocabulary = []string{
	"French", "Belgian", "Moroccan", "Congolese", "Turkish", "Japanese",
	"Vietnamese", "Portuguese", "Brazilian", "Hawaiian", "Other",
}

var venueVocabulary = []string{
	"Restaurant", "Cafe", "Bar", "Bakery", "Seafood", "Fast_food", "Sandwich_shop",
}

func boolFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// treeNode is a binary regression-tree node. Leaves carry a constant value;
// internal nodes split on one feature index at one threshold.
type treeNode struct {
	isLeaf    bool
	value     float64
	feature   int
	threshold float64
	left      *treeNode
	right     *treeNode
}

func (n *treeNode) predict(x []float64) float64 {
	if n.isLeaf {
		return n.value
	}
	if x[n.feature] <= n.threshold {
		return n.left.predict(x)
	}
	return n.right.predict(x)
}

// fitTree grows a regression tree by greedy variance-reduction splitting,
// capped at maxDepth and refusing splits that would leave a child smaller
// than minLeaf.
func fitTree(X [][]float64, y []float64, maxDepth, minLeaf int) *treeNode {
	idx := make([]int, len(y))
	for i := range idx {
		idx[i] = i
	}
	return growNode(X, y, idx, maxDepth, minLeaf)
}

func growNode(X [][]float64, y []float64, idx []int, depth, minLeaf int) *treeNode {
	if depth <= 0 || len(idx) < minLeaf*2 {
		return &treeNode{isLeaf: true, value: meanAt(y, idx)}
	}

	bestFeature, bestThreshold, bestGain := -1, 0.0, 0.0
	baseVar := varianceAt(y, idx) * float64(len(idx))

	numFeatures := len(X[idx[0]])
	for f := 0; f < numFeatures; f++ {
		thresholds := candidateThresholds(X, idx, f)
		for _, th := range thresholds {
			var left, right []int
			for _, i := range idx {
				if X[i][f] <= th {
					left = append(left, i)
				} else {
					right = append(right, i)
				}
			}
			if len(left) < minLeaf || len(right) < minLeaf {
				continue
			}
			gain := baseVar - varianceAt(y, left)*float64(len(left)) - varianceAt(y, right)*float64(len(right))
			if gain > bestGain {
				bestGain = gain
				bestFeature = f
				bestThreshold = th
			}
		}
	}

	if bestFeature < 0 {
		return &treeNode{isLeaf: true, value: meanAt(y, idx)}
	}

	var left, right []int
	for _, i := range idx {
		if X[i][bestFeature] <= bestThreshold {
			left = append(left, i)
		} else {
			right = append(right, i)
		}
	}

	return &treeNode{
		isLeaf:    false,
		feature:   bestFeature,
		threshold: bestThreshold,
		left:      growNode(X, y, left, depth-1, minLeaf),
		right:     growNode(X, y, right, depth-1, minLeaf),
	}
}

// candidateThresholds returns the distinct values of feature f present
// among idx, used as split candidates.
func candidateThresholds(X [][]float64, idx []int, f int) []float64 {
	seen := make(map[float64]bool)
	var vals []float64
	for _, i := range idx {
		v := X[i][f]
		if !seen[v] {
			seen[v] = true
			vals = append(vals, v)
		}
	}
	return vals
}

func meanAt(y []float64, idx []int) float64 {
	if len(idx) == 0 {
		return 0
	}
	var sum float64
	for _, i := range idx {
		sum += y[i]
	}
	return sum / float64(len(idx))
}

func varianceAt(y []float64, idx []int) float64 {
	if len(idx) < 2 {
		return 0
	}
	vals := make([]float64, len(idx))
	for j, i := range idx {
		vals[j] = y[i]
	}
	return stat.Variance(vals, nil)
}

// crossValidatedR2 runs a coarse k-fold cross-validation of a
// freshly-trained ensemble to give the operator a logged fit-quality
// signal (§4.2 "cross-validated R² is logged").
func crossValidatedR2(X [][]float64, y []float64, proto *TreeEnsemble) float64 {
	const folds = 5
	n := len(y)
	if n < folds*2 {
		return math.NaN()
	}

	var sumSqResid, sumSqTotal float64
	meanY := stat.Mean(y, nil)

	foldSize := n / folds
	for f := 0; f < folds; f++ {
		start := f * foldSize
		end := start + foldSize
		if f == folds-1 {
			end = n
		}

		var trainX [][]float64
		var trainY []float64
		var testIdx []int
		for i := 0; i < n; i++ {
			if i >= start && i < end {
				testIdx = append(testIdx, i)
			} else {
				trainX = append(trainX, X[i])
				trainY = append(trainY, y[i])
			}
		}
		if len(trainY) < proto.MinLeafSize*2 || len(testIdx) == 0 {
			continue
		}

		fold := &TreeEnsemble{
			NumTrees: proto.NumTrees, MaxDepth: proto.MaxDepth,
			MinLeafSize: proto.MinLeafSize, LearningRate: proto.LearningRate,
			features: proto.features,
		}
		fold.baseValue = stat.Mean(trainY, nil)
		residual := make([]float64, len(trainY))
		for i := range trainY {
			residual[i] = trainY[i] - fold.baseValue
		}
		for t := 0; t < fold.NumTrees; t++ {
			tree := fitTree(trainX, residual, fold.MaxDepth, fold.MinLeafSize)
			fold.trees = append(fold.trees, tree)
			for i, x := range trainX {
				residual[i] -= fold.LearningRate * tree.predict(x)
			}
		}

		for _, i := range testIdx {
			pred := fold.predictOne(X[i])
			sumSqResid += (y[i] - pred) * (y[i] - pred)
			sumSqTotal += (y[i] - meanY) * (y[i] - meanY)
		}
	}

	if sumSqTotal == 0 {
		return math.NaN()
	}
	return 1 - sumSqResid/sumSqTotal
}
