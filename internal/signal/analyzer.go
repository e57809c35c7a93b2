// Package signal turns the latest indicator rows into discrete trading
// signals and an aggregate 1-5 score.
package signal

import (
	"fmt"
	"math"
	"strings"

	"StockScope/internal/indicator"
	"StockScope/internal/model"
)

// Keyword buckets used to classify emitted signal texts. A description can
// fall into both buckets (e.g. 突破布林上轨，超买) and then counts on both
// sides, matching the documented aggregation.
var (
	buyKeywords  = []string{"上涨", "反弹", "金叉", "超卖", "突破"}
	sellKeywords = []string{"下跌", "回调", "死叉", "超买", "跌破"}
)

// Analyze computes indicators for the series and evaluates the signal rules
// on its latest two rows. A series with fewer than two bars yields a neutral
// report rather than an error.
func Analyze(s *model.Series) (*model.TradeReport, error) {
	set, err := indicator.Compute(s)
	if err != nil {
		return nil, fmt.Errorf("signal analysis: %w", err)
	}
	if set.Length < 2 {
		return &model.TradeReport{
			Score:   2,
			Trend:   model.TrendNeutral,
			Signals: []model.Signal{{Description: "数据不足", Direction: model.DirectionCaution}},
		}, nil
	}
	return Evaluate(set, s.Bars), nil
}

// Evaluate applies the five signal rules to the last two rows of an
// indicator set. Rules whose inputs are undefined are skipped, not guessed.
func Evaluate(set *model.IndicatorSet, bars []model.Bar) *model.TradeReport {
	cur := set.Length - 1
	prev := cur - 1

	var signals []model.Signal
	appendIf := func(sig model.Signal, ok bool) {
		if ok {
			signals = append(signals, sig)
		}
	}

	appendIf(macdRule(set, cur, prev))
	appendIf(kdjRule(set, cur))
	appendIf(rsiRule(set, cur))
	appendIf(bollRule(set, bars, cur))
	appendIf(maCrossRule(set, cur, prev))

	report := aggregate(signals)
	if len(report.Signals) == 0 {
		report.Signals = []model.Signal{{Description: "无明显信号", Direction: model.DirectionCaution}}
	}
	return report
}

func macdRule(set *model.IndicatorSet, cur, prev int) (model.Signal, bool) {
	c, p := set.MACD[cur], set.MACD[prev]
	if !model.Defined(c) || !model.Defined(p) {
		return model.Signal{}, false
	}
	switch {
	case c > 0 && p <= 0:
		return model.Signal{Description: "MACD金叉，可能上涨", Direction: model.DirectionBullish}, true
	case c < 0 && p >= 0:
		return model.Signal{Description: "MACD死叉，可能下跌", Direction: model.DirectionBearish}, true
	}
	return model.Signal{}, false
}

func kdjRule(set *model.IndicatorSet, cur int) (model.Signal, bool) {
	k, d := set.K[cur], set.D[cur]
	if !model.Defined(k) || !model.Defined(d) {
		return model.Signal{}, false
	}
	switch {
	case k < 20 && d < 20:
		return model.Signal{Description: "KDJ超卖，可能反弹", Direction: model.DirectionBullish}, true
	case k > 80 && d > 80:
		return model.Signal{Description: "KDJ超买，注意回调", Direction: model.DirectionCaution}, true
	}
	return model.Signal{}, false
}

func rsiRule(set *model.IndicatorSet, cur int) (model.Signal, bool) {
	rsi := set.RSI[cur]
	if !model.Defined(rsi) {
		return model.Signal{}, false
	}
	switch {
	case rsi < 20:
		return model.Signal{Description: "RSI超卖，可能反弹", Direction: model.DirectionBullish}, true
	case rsi > 80:
		return model.Signal{Description: "RSI超买，注意回调", Direction: model.DirectionCaution}, true
	}
	return model.Signal{}, false
}

func bollRule(set *model.IndicatorSet, bars []model.Bar, cur int) (model.Signal, bool) {
	upper, lower := set.BollUpper[cur], set.BollLower[cur]
	if !model.Defined(upper) || !model.Defined(lower) {
		return model.Signal{}, false
	}
	close := bars[cur].Close
	switch {
	case close > upper:
		return model.Signal{Description: "突破布林上轨，超买", Direction: model.DirectionCaution}, true
	case close < lower:
		return model.Signal{Description: "跌破布林下轨，超卖", Direction: model.DirectionBullish}, true
	}
	return model.Signal{}, false
}

func maCrossRule(set *model.IndicatorSet, cur, prev int) (model.Signal, bool) {
	ma5, ma20 := set.MA5[cur], set.MA20[cur]
	ma5p, ma20p := set.MA5[prev], set.MA20[prev]
	if !model.Defined(ma5) || !model.Defined(ma20) || !model.Defined(ma5p) || !model.Defined(ma20p) {
		return model.Signal{}, false
	}
	switch {
	case ma5 > ma20 && ma5p <= ma20p:
		return model.Signal{Description: "MA5上穿MA20，金叉", Direction: model.DirectionBullish}, true
	case ma5 < ma20 && ma5p >= ma20p:
		return model.Signal{Description: "MA5下穿MA20，死叉", Direction: model.DirectionBearish}, true
	}
	return model.Signal{}, false
}

func aggregate(signals []model.Signal) *model.TradeReport {
	var buyCount, sellCount int
	for _, s := range signals {
		if containsAny(s.Description, buyKeywords) {
			buyCount++
		}
		if containsAny(s.Description, sellKeywords) {
			sellCount++
		}
	}

	report := &model.TradeReport{
		Signals:   signals,
		BuyCount:  buyCount,
		SellCount: sellCount,
	}

	total := buyCount + sellCount
	switch {
	case total == 0 || buyCount == sellCount:
		report.Score = 2
		report.Trend = model.TrendNeutral
	case buyCount > sellCount:
		ratio := float64(buyCount) / float64(total)
		report.Score = int(math.Min(5, math.Round(3+ratio*2)))
		if report.Score >= 4 {
			report.Trend = model.TrendStrongBullish
		} else {
			report.Trend = model.TrendMildBullish
		}
	default:
		ratio := float64(sellCount) / float64(total)
		report.Score = int(math.Max(1, math.Round(3-ratio*2)))
		if report.Score <= 1 {
			report.Trend = model.TrendStrongBearish
		} else {
			report.Trend = model.TrendMildBearish
		}
	}
	return report
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
