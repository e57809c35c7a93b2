package label

// FlowLabel classifies net capital inflow, measured in 亿元.
type FlowLabel int

const (
	FlowSmallOut FlowLabel = iota // 小幅流出
	FlowBigIn                     // 大幅流入
	FlowMainIn                    // 主力流入
	FlowSmallIn                   // 小幅流入
	FlowMainOut                   // 主力流出
	FlowBigOut                    // 大幅流出
)

func (f FlowLabel) String() string {
	switch f {
	case FlowBigIn:
		return "大幅流入"
	case FlowMainIn:
		return "主力流入"
	case FlowSmallIn:
		return "小幅流入"
	case FlowMainOut:
		return "主力流出"
	case FlowBigOut:
		return "大幅流出"
	default:
		return "小幅流出"
	}
}

// MoneyFlow labels a net inflow amount.
func MoneyFlow(netInflow float64) FlowLabel {
	switch {
	case netInflow > 10:
		return FlowBigIn
	case netInflow > 3:
		return FlowMainIn
	case netInflow > 0:
		return FlowSmallIn
	case netInflow > -3:
		return FlowSmallOut
	case netInflow > -10:
		return FlowMainOut
	default:
		return FlowBigOut
	}
}

// FlowStrengthScore grades flow intensity on -5..+5 from the net inflow,
// the buy-side share of turnover and the inflow-to-turnover ratio.
func FlowStrengthScore(netInflow, netBuyAmount, totalAmount float64) int {
	score := 0

	switch {
	case netInflow > 10:
		score += 3
	case netInflow > 3:
		score += 2
	case netInflow > 0:
		score++
	case netInflow > -3:
		score--
	case netInflow > -10:
		score -= 2
	default:
		score -= 3
	}

	if totalAmount > 0 {
		buyRatio := netBuyAmount / totalAmount
		if buyRatio > 0.6 {
			score++
		} else if buyRatio < 0.4 {
			score--
		}

		intensity := netInflow / totalAmount
		if intensity < 0 {
			intensity = -intensity
		}
		if intensity > 0.15 {
			if netInflow > 0 {
				score++
			} else {
				score--
			}
		}
	}

	if score > 5 {
		return 5
	}
	if score < -5 {
		return -5
	}
	return score
}
