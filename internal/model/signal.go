package model

// Direction classifies a discrete signal event.
type Direction string

const (
	DirectionBullish Direction = "BULLISH"
	DirectionBearish Direction = "BEARISH"
	// DirectionCaution marks overbought/oversold observations that warn
	// rather than predict.
	DirectionCaution Direction = "CAUTION"
)

// Signal is one discrete textual signal event.
type Signal struct {
	Description string
	Direction   Direction
}

// TrendLabel is the closed set of aggregate signal labels.
type TrendLabel int

const (
	TrendNeutral TrendLabel = iota // 中性
	TrendMildBullish               // 偏多
	TrendStrongBullish             // 看涨
	TrendMildBearish               // 偏空
	TrendStrongBearish             // 看跌
)

func (t TrendLabel) String() string {
	switch t {
	case TrendStrongBullish:
		return "看涨"
	case TrendMildBullish:
		return "偏多"
	case TrendMildBearish:
		return "偏空"
	case TrendStrongBearish:
		return "看跌"
	default:
		return "中性"
	}
}

// TradeReport is the aggregate output of the signal analyzer.
type TradeReport struct {
	Score     int // 1-5
	Trend     TrendLabel
	Signals   []Signal
	BuyCount  int
	SellCount int
}

// Descriptions returns the signal texts in emission order.
func (r *TradeReport) Descriptions() []string {
	out := make([]string, len(r.Signals))
	for i, s := range r.Signals {
		out[i] = s.Description
	}
	return out
}
