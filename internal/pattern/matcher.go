package pattern

import (
	"fmt"
	"math"
	"sort"

	"StockScope/internal/model"
)

// Matching parameters. The acceptance threshold and forward horizon are
// documented defaults, deliberately not exposed as knobs.
const (
	MinPatternDays = 5
	MaxPatternDays = 60

	// DefaultLookback is the history depth the outcome analysis scans.
	DefaultLookback = 200

	matchThreshold = 50.0 // keep candidates with similarity > 50
	forwardHorizon = 10   // bars after the window end for the outcome
	statsSampleCap = 20   // matches feeding the outcome statistics
	topMatchCap    = 5    // matches reported in detail

	// historyMargin is the extra history required beyond the pattern
	// itself before matching is attempted.
	historyMargin = 30
)

const insufficientDataMsg = "未找到足够的相似形态"

// Similarity scores two price sequences on a 0-100 scale: 100 at identical
// shape, 0 at or beyond the maximum normalized Euclidean distance. Unequal
// lengths are resampled onto the shorter one first.
func Similarity(a, b []float64) float64 {
	a, b = Resample(a, b)
	if len(a) == 0 {
		return 0
	}
	na := Normalize(a)
	nb := Normalize(b)

	var sum float64
	for i := range na {
		diff := na[i] - nb[i]
		sum += diff * diff
	}
	distance := math.Sqrt(sum)
	maxDistance := math.Sqrt(float64(len(na)))

	similarity := 100 * (1 - distance/maxDistance)
	if similarity < 0 {
		return 0
	}
	return similarity
}

// FindSimilar slides a patternDays-long window across the history, keeping
// candidates whose similarity to the final patternDays closes exceeds the
// threshold. Each candidate reserves a full pattern length plus the forward
// horizon after its end so its outcome can be measured. Results are sorted
// by similarity descending, earlier windows first on ties, and truncated to
// topN when topN > 0.
func FindSimilar(closes []float64, patternDays, topN int) []model.Match {
	if len(closes) < patternDays+historyMargin {
		return nil
	}

	current := closes[len(closes)-patternDays:]
	limit := len(closes) - patternDays - forwardHorizon - patternDays

	var matches []model.Match
	for i := 0; i < limit; i++ {
		candidate := closes[i : i+patternDays]
		similarity := Similarity(current, candidate)
		if similarity <= matchThreshold {
			continue
		}

		endIdx := i + patternDays
		endPrice := closes[endIdx-1]
		futureEnd := endIdx + forwardHorizon
		if futureEnd > len(closes) {
			futureEnd = len(closes)
		}
		futureReturn := 0.0
		if futureEnd > endIdx {
			futureReturn = (closes[futureEnd-1] - endPrice) / endPrice * 100
		}

		matches = append(matches, model.Match{
			StartIdx:     i,
			EndIdx:       endIdx,
			Similarity:   similarity,
			FutureReturn: futureReturn,
			StartPrice:   candidate[0],
			EndPrice:     endPrice,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Similarity > matches[j].Similarity
	})
	if topN > 0 && len(matches) > topN {
		matches = matches[:topN]
	}
	return matches
}

// AnalyzeOutcome estimates win rate and average forward return for the
// current pattern from up to 20 of its best historical matches. Too little
// history or zero accepted matches yields a result with nil statistics and
// a message, never zero-filled numbers.
func AnalyzeOutcome(ticker string, closes []float64, patternDays int) (*model.PatternAnalysis, error) {
	if patternDays < MinPatternDays || patternDays > MaxPatternDays {
		return nil, fmt.Errorf("pattern days %d outside [%d, %d]: %w",
			patternDays, MinPatternDays, MaxPatternDays, model.ErrInvalidInput)
	}

	matches := FindSimilar(closes, patternDays, statsSampleCap)
	if len(matches) == 0 {
		return &model.PatternAnalysis{
			Ticker:      ticker,
			PatternDays: patternDays,
			Message:     insufficientDataMsg,
		}, nil
	}

	winCount := 0
	var sumReturn, sumSimilarity float64
	for _, m := range matches {
		if m.FutureReturn > 0 {
			winCount++
		}
		sumReturn += m.FutureReturn
		sumSimilarity += m.Similarity
	}

	n := float64(len(matches))
	winRate := float64(winCount) / n * 100
	avgReturn := sumReturn / n
	avgSimilarity := sumSimilarity / n

	top := matches
	if len(top) > topMatchCap {
		top = top[:topMatchCap]
	}

	best := matches[0]
	return &model.PatternAnalysis{
		Ticker:        ticker,
		PatternDays:   patternDays,
		SimilarCount:  len(matches),
		WinRate:       &winRate,
		AvgReturn:     &avgReturn,
		AvgSimilarity: &avgSimilarity,
		BestMatch:     &best,
		Matches:       top,
	}, nil
}
