package pattern

import (
	"errors"
	"math"
	"testing"

	"StockScope/internal/model"
)

func TestNormalize(t *testing.T) {
	got := Normalize([]float64{10, 20, 30})
	want := []float64{0, 0.5, 1}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Errorf("normalize[%d] = %.4f, want %.4f", i, got[i], want[i])
		}
	}
}

func TestNormalize_FlatToZeros(t *testing.T) {
	got := Normalize([]float64{5, 5, 5, 5})
	for i, v := range got {
		if v != 0 {
			t.Errorf("flat normalize[%d] = %.4f, want 0", i, v)
		}
	}
}

func TestNormalize_ShortAndImmutable(t *testing.T) {
	single := Normalize([]float64{7})
	if len(single) != 1 || single[0] != 7 {
		t.Errorf("single-element sequence should pass through, got %v", single)
	}

	in := []float64{10, 20, 30}
	Normalize(in)
	if in[0] != 10 || in[2] != 30 {
		t.Errorf("input mutated: %v", in)
	}
}

func TestResample_ToShorterLength(t *testing.T) {
	a := []float64{0, 1, 2}
	b := []float64{0, 1, 2, 3, 4}
	ra, rb := Resample(a, b)
	if len(ra) != 3 || len(rb) != 3 {
		t.Fatalf("lengths = %d/%d, want 3/3", len(ra), len(rb))
	}
	want := []float64{0, 2, 4}
	for i := range want {
		if math.Abs(rb[i]-want[i]) > 1e-9 {
			t.Errorf("resampled b[%d] = %.4f, want %.4f", i, rb[i], want[i])
		}
	}
}

func TestSimilarity_IdenticalShape(t *testing.T) {
	a := []float64{1, 2, 3, 4}
	b := []float64{100, 200, 300, 400}
	if sim := Similarity(a, b); math.Abs(sim-100) > 1e-6 {
		t.Errorf("scaled copies should score 100, got %.4f", sim)
	}
}

func TestSimilarity_SymmetricAndBounded(t *testing.T) {
	a := []float64{1, 2, 3, 4, 5}
	b := []float64{5, 4, 3, 2, 1}
	ab := Similarity(a, b)
	ba := Similarity(b, a)
	if math.Abs(ab-ba) > 1e-9 {
		t.Errorf("similarity not symmetric: %.4f vs %.4f", ab, ba)
	}
	if ab < 0 || ab > 100 {
		t.Errorf("similarity %.4f outside [0,100]", ab)
	}
	if ab >= 50 {
		t.Errorf("opposite trends scored %.4f, want below the match threshold", ab)
	}
}

func TestSimilarity_UnequalLengths(t *testing.T) {
	a := []float64{1, 2, 3, 4, 5, 6}
	b := []float64{1, 3, 5}
	if sim := Similarity(a, b); math.Abs(sim-100) > 1e-6 {
		t.Errorf("same line at different sampling should score 100, got %.4f", sim)
	}
}

// sineCloses builds a price series whose shape repeats every `period` bars,
// so windows one full period apart match the current window exactly.
func sineCloses(n, period int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 100 + 10*math.Sin(2*math.Pi*float64(i)/float64(period))
	}
	return out
}

func TestFindSimilar_RepeatingShape(t *testing.T) {
	closes := sineCloses(160, 20)
	matches := FindSimilar(closes, 20, 0)
	if len(matches) == 0 {
		t.Fatal("expected matches in a perfectly repeating series")
	}

	if matches[0].Similarity < 99.9 {
		t.Errorf("best similarity = %.4f, want near 100", matches[0].Similarity)
	}
	for i, m := range matches {
		if m.Similarity <= 50 {
			t.Errorf("match %d similarity %.4f at or below threshold", i, m.Similarity)
		}
		if m.EndIdx != m.StartIdx+20 {
			t.Errorf("match %d: EndIdx %d != StartIdx %d + 20", i, m.EndIdx, m.StartIdx)
		}
		if i > 0 && matches[i-1].Similarity < m.Similarity {
			t.Errorf("matches not sorted by similarity at %d", i)
		}
	}

	best := matches[0]
	endPrice := closes[best.EndIdx-1]
	wantReturn := (closes[best.EndIdx+9] - endPrice) / endPrice * 100
	if math.Abs(best.FutureReturn-wantReturn) > 1e-9 {
		t.Errorf("future return = %.4f, want %.4f", best.FutureReturn, wantReturn)
	}
}

func TestFindSimilar_PlantedCopyRanksFirst(t *testing.T) {
	// Quasi-periodic base series with an exact copy of the final window
	// planted at index 50.
	closes := make([]float64, 200)
	for i := range closes {
		x := float64(i)
		closes[i] = 100 + 5*math.Sin(0.7*x) + 3*math.Sin(1.3*x)
	}
	copy(closes[50:70], closes[180:200])

	matches := FindSimilar(closes, 20, 0)
	if len(matches) == 0 {
		t.Fatal("expected at least the planted copy to match")
	}
	if matches[0].StartIdx != 50 {
		t.Errorf("top match starts at %d, want the planted copy at 50", matches[0].StartIdx)
	}
	if matches[0].Similarity < 99.9 {
		t.Errorf("planted copy similarity = %.4f, want near 100", matches[0].Similarity)
	}
}

func TestFindSimilar_TopNTruncation(t *testing.T) {
	closes := sineCloses(160, 20)
	matches := FindSimilar(closes, 20, 3)
	if len(matches) > 3 {
		t.Errorf("got %d matches, want at most 3", len(matches))
	}
}

func TestFindSimilar_TooLittleHistory(t *testing.T) {
	closes := sineCloses(40, 20)
	if matches := FindSimilar(closes, 20, 0); matches != nil {
		t.Errorf("expected nil for 40 bars with a 20-day pattern, got %d matches", len(matches))
	}
}

func TestAnalyzeOutcome_PatternDaysBounds(t *testing.T) {
	closes := sineCloses(160, 20)
	for _, days := range []int{4, 61, 0, -1} {
		_, err := AnalyzeOutcome("TEST", closes, days)
		if !errors.Is(err, model.ErrInvalidInput) {
			t.Errorf("patternDays %d: expected ErrInvalidInput, got %v", days, err)
		}
	}
	for _, days := range []int{5, 60} {
		if _, err := AnalyzeOutcome("TEST", sineCloses(300, days), days); err != nil {
			t.Errorf("patternDays %d should be accepted, got %v", days, err)
		}
	}
}

func TestAnalyzeOutcome_InsufficientHistory(t *testing.T) {
	analysis, err := AnalyzeOutcome("TEST", sineCloses(40, 20), 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if analysis.Message != "未找到足够的相似形态" {
		t.Errorf("message = %q, want the insufficient-data message", analysis.Message)
	}
	if analysis.SimilarCount != 0 {
		t.Errorf("SimilarCount = %d, want 0", analysis.SimilarCount)
	}
	if analysis.WinRate != nil || analysis.AvgReturn != nil || analysis.BestMatch != nil {
		t.Error("statistics must stay nil when no matches were found, not zero-filled")
	}
}

func TestAnalyzeOutcome_Statistics(t *testing.T) {
	analysis, err := AnalyzeOutcome("TEST", sineCloses(300, 20), 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if analysis.SimilarCount == 0 || analysis.SimilarCount > 20 {
		t.Fatalf("SimilarCount = %d, want 1..20", analysis.SimilarCount)
	}
	if analysis.WinRate == nil || analysis.AvgReturn == nil || analysis.AvgSimilarity == nil {
		t.Fatal("expected statistics to be present")
	}
	if *analysis.WinRate < 0 || *analysis.WinRate > 100 {
		t.Errorf("win rate %.2f outside [0,100]", *analysis.WinRate)
	}
	if len(analysis.Matches) > 5 {
		t.Errorf("reported %d matches, want at most 5", len(analysis.Matches))
	}
	if analysis.BestMatch == nil || analysis.BestMatch.Similarity != analysis.Matches[0].Similarity {
		t.Error("best match should be the top sorted match")
	}
	if analysis.Ticker != "TEST" || analysis.PatternDays != 20 {
		t.Errorf("ticker/days = %s/%d, want TEST/20", analysis.Ticker, analysis.PatternDays)
	}

	// Recompute the win rate from the same sample the analysis used.
	sample := FindSimilar(sineCloses(300, 20), 20, 20)
	wins := 0
	for _, m := range sample {
		if m.FutureReturn > 0 {
			wins++
		}
	}
	want := float64(wins) / float64(len(sample)) * 100
	if math.Abs(*analysis.WinRate-want) > 1e-9 {
		t.Errorf("win rate = %.4f, want exactly %.4f", *analysis.WinRate, want)
	}
}
