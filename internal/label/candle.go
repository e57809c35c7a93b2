// Package label converts already-computed ratios into fixed categorical
// labels. Every label family is a closed type so consumers switch
// exhaustively instead of comparing strings; the String form keeps the
// original report wording. All functions are pure.
package label

import "StockScope/internal/model"

// CandlePattern classifies a single bar by body/shadow proportions.
type CandlePattern int

const (
	CandleFlatBoard    CandlePattern = iota // 一字板: no range at all
	CandleBigYang                           // 大阳线
	CandleBigYin                            // 大阴线
	CandleDoji                              // 十字星
	CandleUpperShadowYang                   // 上影阳线
	CandleUpperShadowYin                    // 上影阴线
	CandleLowerShadowYang                   // 下影阳线
	CandleLowerShadowYin                    // 下影阴线
	CandleSmallYang                         // 小阳线
	CandleSmallYin                          // 小阴线
	CandleMidYang                           // 中阳线
	CandleMidYin                            // 中阴线
)

func (p CandlePattern) String() string {
	switch p {
	case CandleFlatBoard:
		return "一字板"
	case CandleBigYang:
		return "大阳线"
	case CandleBigYin:
		return "大阴线"
	case CandleDoji:
		return "十字星"
	case CandleUpperShadowYang:
		return "上影阳线"
	case CandleUpperShadowYin:
		return "上影阴线"
	case CandleLowerShadowYang:
		return "下影阳线"
	case CandleLowerShadowYin:
		return "下影阴线"
	case CandleSmallYang:
		return "小阳线"
	case CandleSmallYin:
		return "小阴线"
	case CandleMidYang:
		return "中阳线"
	default:
		return "中阴线"
	}
}

// CandleMetrics carries the ratios behind a pattern decision.
type CandleMetrics struct {
	BodyRatio        float64
	UpperShadowRatio float64
	LowerShadowRatio float64
	IsYang           bool
}

// AnalyzeCandle labels one bar from its body and shadow proportions.
func AnalyzeCandle(bar model.Bar) (CandlePattern, CandleMetrics) {
	totalRange := bar.High - bar.Low
	if totalRange == 0 {
		return CandleFlatBoard, CandleMetrics{IsYang: bar.Close >= bar.Open}
	}

	body := bar.Close - bar.Open
	if body < 0 {
		body = -body
	}
	bodyTop := bar.Open
	bodyBottom := bar.Close
	if bar.Close > bar.Open {
		bodyTop, bodyBottom = bar.Close, bar.Open
	}

	m := CandleMetrics{
		BodyRatio:        body / totalRange,
		UpperShadowRatio: (bar.High - bodyTop) / totalRange,
		LowerShadowRatio: (bodyBottom - bar.Low) / totalRange,
		IsYang:           bar.Close > bar.Open,
	}

	var pattern CandlePattern
	switch {
	case m.BodyRatio > 0.7:
		pattern = pick(m.IsYang, CandleBigYang, CandleBigYin)
	case m.BodyRatio < 0.1:
		pattern = CandleDoji
	case m.UpperShadowRatio > 0.5:
		pattern = pick(m.IsYang, CandleUpperShadowYang, CandleUpperShadowYin)
	case m.LowerShadowRatio > 0.5:
		pattern = pick(m.IsYang, CandleLowerShadowYang, CandleLowerShadowYin)
	case m.BodyRatio < 0.3:
		pattern = pick(m.IsYang, CandleSmallYang, CandleSmallYin)
	default:
		pattern = pick(m.IsYang, CandleMidYang, CandleMidYin)
	}
	return pattern, m
}

func pick(yang bool, ifYang, ifYin CandlePattern) CandlePattern {
	if yang {
		return ifYang
	}
	return ifYin
}

// PositionLabel classifies where a stock sits after its recent run.
type PositionLabel int

const (
	PositionRangebound   PositionLabel = iota // 震荡整理
	PositionHighPullback                      // 高位回调
	PositionHighStrong                        // 高位强势
	PositionLowRebound                        // 低位反弹
	PositionLowWeak                           // 低位弱势
	PositionRecentStrong                      // 近期走强
	PositionRecentWeak                        // 近期走弱
)

func (p PositionLabel) String() string {
	switch p {
	case PositionHighPullback:
		return "高位回调"
	case PositionHighStrong:
		return "高位强势"
	case PositionLowRebound:
		return "低位反弹"
	case PositionLowWeak:
		return "低位弱势"
	case PositionRecentStrong:
		return "近期走强"
	case PositionRecentWeak:
		return "近期走弱"
	default:
		return "震荡整理"
	}
}

// Position labels a stock from its 5-day, 10-day and current-day changes.
func Position(days5Change, days10Change, currentChange float64) PositionLabel {
	switch {
	case days10Change > 20:
		if currentChange < -3 {
			return PositionHighPullback
		}
		return PositionHighStrong
	case days10Change < -20:
		if currentChange > 3 {
			return PositionLowRebound
		}
		return PositionLowWeak
	case days5Change > 10:
		return PositionRecentStrong
	case days5Change < -10:
		return PositionRecentWeak
	default:
		return PositionRangebound
	}
}
