package label

import (
	"fmt"
	"testing"

	"StockScope/internal/model"
)

func TestAnalyzeCandle(t *testing.T) {
	tests := []struct {
		name string
		bar  model.Bar
		want CandlePattern
	}{
		{"flat board", model.Bar{Open: 10, High: 10, Low: 10, Close: 10}, CandleFlatBoard},
		{"big yang", model.Bar{Open: 10, High: 19.5, Low: 9.5, Close: 19}, CandleBigYang},
		{"big yin", model.Bar{Open: 19, High: 19.5, Low: 9.5, Close: 10}, CandleBigYin},
		{"doji", model.Bar{Open: 10, High: 11, Low: 9, Close: 10.05}, CandleDoji},
		{"upper shadow yang", model.Bar{Open: 10, High: 11.5, Low: 9.9, Close: 10.4}, CandleUpperShadowYang},
		{"lower shadow yin", model.Bar{Open: 10.4, High: 10.5, Low: 9, Close: 10.2}, CandleLowerShadowYin},
		{"small yang", model.Bar{Open: 10, High: 10.5, Low: 9.5, Close: 10.2}, CandleSmallYang},
		{"mid yin", model.Bar{Open: 10.5, High: 10.7, Low: 9.7, Close: 10}, CandleMidYin},
	}
	for _, tt := range tests {
		got, _ := AnalyzeCandle(tt.bar)
		if got != tt.want {
			t.Errorf("%s: got %s, want %s", tt.name, got, tt.want)
		}
	}
}

func TestAnalyzeCandle_Metrics(t *testing.T) {
	_, m := AnalyzeCandle(model.Bar{Open: 10, High: 12, Low: 10, Close: 11})
	if m.BodyRatio != 0.5 {
		t.Errorf("body ratio = %.4f, want 0.5", m.BodyRatio)
	}
	if m.UpperShadowRatio != 0.5 || m.LowerShadowRatio != 0 {
		t.Errorf("shadows = %.4f/%.4f, want 0.5/0", m.UpperShadowRatio, m.LowerShadowRatio)
	}
	if !m.IsYang {
		t.Error("close above open should be yang")
	}
}

func TestPosition(t *testing.T) {
	tests := []struct {
		d5, d10, cur float64
		want         PositionLabel
	}{
		{0, 25, -4, PositionHighPullback},
		{0, 25, 0, PositionHighStrong},
		{0, -25, 4, PositionLowRebound},
		{0, -25, 0, PositionLowWeak},
		{12, 0, 0, PositionRecentStrong},
		{-12, 0, 0, PositionRecentWeak},
		{0, 0, 0, PositionRangebound},
	}
	for _, tt := range tests {
		if got := Position(tt.d5, tt.d10, tt.cur); got != tt.want {
			t.Errorf("Position(%.0f, %.0f, %.0f) = %s, want %s", tt.d5, tt.d10, tt.cur, got, tt.want)
		}
	}
}

func TestVolumeTrendOf(t *testing.T) {
	tests := []struct {
		current, avg5, avg10 float64
		want                 VolumeTrend
	}{
		{160, 100, 100, VolumeSurge},
		{60, 100, 100, VolumeShrink},
		{130, 100, 100, VolumeMildSurge},
		{75, 100, 100, VolumeMildShrink},
		{100, 100, 100, VolumeFlat},
		{100, 0, 0, VolumeFlat}, // missing averages fall back to neutral ratios
	}
	for _, tt := range tests {
		got, _ := VolumeTrendOf(tt.current, tt.avg5, tt.avg10)
		if got != tt.want {
			t.Errorf("VolumeTrendOf(%.0f, %.0f, %.0f) = %s, want %s", tt.current, tt.avg5, tt.avg10, got, tt.want)
		}
	}
}

func TestPriceVolumeOf(t *testing.T) {
	tests := []struct {
		ratio, change float64
		want          PriceVolume
	}{
		{1.6, 1, PriceVolumeHealthyRise},
		{0.5, 1, PriceVolumeThinRise},
		{1.0, 1, PriceVolumeNeutralRise},
		{1.6, -1, PriceVolumePanicFall},
		{0.5, -1, PriceVolumeResistFall},
		{1.0, -1, PriceVolumePlainFall},
		{1.6, 0, PriceVolumeChurn},
		{0.5, 0, PriceVolumeQuietFlat},
		{1.0, 0, PriceVolumeFlatRange},
	}
	for _, tt := range tests {
		if got := PriceVolumeOf(tt.ratio, tt.change); got != tt.want {
			t.Errorf("PriceVolumeOf(%.1f, %.0f) = %s, want %s", tt.ratio, tt.change, got, tt.want)
		}
	}
}

func TestCalculateSentiment(t *testing.T) {
	tests := []struct {
		name        string
		up, down    int
		limitUp     int
		volumeRatio float64
		want        Sentiment
		wantScore   int
	}{
		{"strong breadth", 2000, 1000, 90, 1.5, SentimentStrong, 5},
		{"weak breadth", 700, 1000, 10, 0.5, SentimentWeak, -4},
		{"rangebound", 1000, 1000, 30, 1.0, SentimentRangebound, 0},
		{"mild bull", 1200, 1000, 30, 1.0, SentimentMildBull, 1},
		{"mild bear", 850, 1000, 30, 1.0, SentimentMildBear, -1},
		{"no decliners", 100, 0, 60, 1.0, SentimentStrong, 3},
	}
	for _, tt := range tests {
		got, score := CalculateSentiment(tt.up, tt.down, tt.limitUp, tt.volumeRatio)
		if got != tt.want || score != tt.wantScore {
			t.Errorf("%s: got %s/%d, want %s/%d", tt.name, got, score, tt.want, tt.wantScore)
		}
	}
}

func TestAnalyzeLimitBoards(t *testing.T) {
	blazing := AnalyzeLimitBoards(120, 5, 9, 10)
	if blazing.Heat != BoardHeatBlazing {
		t.Errorf("heat = %s, want 火爆", blazing.Heat)
	}
	if blazing.Mood != BoardMoodEuphoric {
		t.Errorf("mood = %s, want 做多情绪高涨", blazing.Mood)
	}
	if blazing.SealRate != 0.9 {
		t.Errorf("seal rate = %.2f, want 0.9", blazing.SealRate)
	}

	active := AnalyzeLimitBoards(70, 30, 7, 10)
	if active.Heat != BoardHeatActive || active.Mood != BoardMoodNeutral {
		t.Errorf("got %s/%s, want 活跃/情绪中性", active.Heat, active.Mood)
	}

	normal := AnalyzeLimitBoards(40, 10, 0, 0)
	if normal.Heat != BoardHeatNormal || normal.SealRate != 0 {
		t.Errorf("zero first boards: got %s seal %.2f, want 一般 / 0", normal.Heat, normal.SealRate)
	}

	panicky := AnalyzeLimitBoards(10, 40, 2, 10)
	if panicky.Heat != BoardHeatLow || panicky.Mood != BoardMoodPanic {
		t.Errorf("got %s/%s, want 低迷/恐慌情绪蔓延", panicky.Heat, panicky.Mood)
	}
}

func TestMoneyFlow(t *testing.T) {
	tests := []struct {
		netInflow float64
		want      FlowLabel
	}{
		{15, FlowBigIn},
		{10, FlowMainIn}, // boundary belongs to the lower band
		{5, FlowMainIn},
		{1, FlowSmallIn},
		{0, FlowSmallOut},
		{-1, FlowSmallOut},
		{-3, FlowMainOut},
		{-5, FlowMainOut},
		{-15, FlowBigOut},
	}
	for _, tt := range tests {
		if got := MoneyFlow(tt.netInflow); got != tt.want {
			t.Errorf("MoneyFlow(%.0f) = %s, want %s", tt.netInflow, got, tt.want)
		}
	}
}

func TestFlowStrengthScore(t *testing.T) {
	if got := FlowStrengthScore(15, 70, 100); got != 4 {
		t.Errorf("score = %d, want 4", got)
	}
	if got := FlowStrengthScore(15, 70, 50); got != 5 {
		t.Errorf("score = %d, want 5 (clamped)", got)
	}
	if got := FlowStrengthScore(-15, 10, 50); got != -5 {
		t.Errorf("score = %d, want -5", got)
	}
	if got := FlowStrengthScore(1, 0, 0); got != 1 {
		t.Errorf("zero turnover: score = %d, want 1", got)
	}
}

func TestSectorStrengthOf(t *testing.T) {
	tests := []struct {
		up, down  int
		changePct float64
		want      SectorStrength
	}{
		{90, 10, 3, SectorStrong},
		{70, 30, 1, SectorMildStrong},
		{20, 80, -3, SectorWeak},
		{35, 65, -1, SectorMildWeak},
		{50, 50, 0, SectorRangebound},
		{0, 0, 5, SectorRangebound}, // empty sector defaults to neutral ratio
	}
	for _, tt := range tests {
		got, _ := SectorStrengthOf(tt.up, tt.down, tt.changePct)
		if got != tt.want {
			t.Errorf("SectorStrengthOf(%d, %d, %.0f) = %s, want %s", tt.up, tt.down, tt.changePct, got, tt.want)
		}
	}
}

func TestAnalyzeRotation(t *testing.T) {
	prev := []SectorSnapshot{
		{Code: "BK01", Name: "半导体", ChangePct: 0, NetInflow: 0},
		{Code: "BK02", Name: "白酒", ChangePct: 2, NetInflow: 5},
		{Code: "BK03", Name: "券商", ChangePct: 1, NetInflow: 1},
	}
	cur := []SectorSnapshot{
		{Code: "BK01", Name: "半导体", ChangePct: 3, NetInflow: 4},   // in: +3 strength, +4 flow
		{Code: "BK02", Name: "白酒", ChangePct: -1, NetInflow: 1},   // out: -3 strength, -4 flow
		{Code: "BK03", Name: "券商", ChangePct: 1.5, NetInflow: 2},  // no decisive move
		{Code: "BK99", Name: "新板块", ChangePct: 10, NetInflow: 20}, // no previous period
	}

	report := AnalyzeRotation(cur, prev)
	if len(report.Hot) != 1 || report.Hot[0].Name != "半导体" {
		t.Errorf("hot = %+v, want only 半导体", report.Hot)
	}
	if len(report.Cold) != 1 || report.Cold[0].Name != "白酒" {
		t.Errorf("cold = %+v, want only 白酒", report.Cold)
	}
	if report.Intensity != RotationWeak {
		t.Errorf("intensity = %s, want 弱 for 2 movers", report.Intensity)
	}
}

func TestAnalyzeRotation_StrongIntensity(t *testing.T) {
	var prev, cur []SectorSnapshot
	for i := 0; i < 11; i++ {
		code := fmt.Sprintf("BK%02d", i)
		prev = append(prev, SectorSnapshot{Code: code, Name: code})
		cur = append(cur, SectorSnapshot{Code: code, Name: code, ChangePct: 3, NetInflow: 4})
	}
	report := AnalyzeRotation(cur, prev)
	if report.Intensity != RotationStrong {
		t.Errorf("intensity = %s, want 强 for %d movers", report.Intensity, len(report.Hot)+len(report.Cold))
	}
	if len(report.Hot) != 5 {
		t.Errorf("hot capped at %d, want 5", len(report.Hot))
	}
}

func TestClassifyStockRole(t *testing.T) {
	tests := []struct {
		name      string
		ticker    string
		changePct float64
		d5        float64
		rank      int
		leader    string
		sectorAvg float64
		want      StockRole
	}{
		{"leader", "SH600519", 1, 2, 1, "SH600519", 0.5, RoleLeader},
		{"high core", "SZ000858", 1, 12, 2, "SH600519", 0.5, RoleHighCore},
		{"catch up", "SZ002304", 2, 3, 8, "SH600519", 0.5, RoleCatchUp},
		{"constituent", "SH603369", 0.1, 1, 8, "SH600519", 0.5, RoleConstituent},
	}
	for _, tt := range tests {
		got := ClassifyStockRole(tt.ticker, tt.changePct, tt.d5, tt.rank, tt.leader, tt.sectorAvg)
		if got != tt.want {
			t.Errorf("%s: got %s, want %s", tt.name, got, tt.want)
		}
	}
}
