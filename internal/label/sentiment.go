package label

// Sentiment is the market-wide mood derived from breadth indicators.
type Sentiment int

const (
	SentimentRangebound Sentiment = iota // 震荡
	SentimentStrong                      // 强势
	SentimentMildBull                    // 偏多
	SentimentMildBear                    // 偏空
	SentimentWeak                        // 弱势
)

func (s Sentiment) String() string {
	switch s {
	case SentimentStrong:
		return "强势"
	case SentimentMildBull:
		return "偏多"
	case SentimentMildBear:
		return "偏空"
	case SentimentWeak:
		return "弱势"
	default:
		return "震荡"
	}
}

// CalculateSentiment scores market breadth on a -5..+5 scale from the
// advance/decline ratio, the limit-up count and the volume ratio, and maps
// the score to a sentiment label.
func CalculateSentiment(upCount, downCount, limitUp int, volumeRatio float64) (Sentiment, int) {
	score := 0

	upDownRatio := 5.0
	if downCount > 0 {
		upDownRatio = float64(upCount) / float64(downCount)
	}
	switch {
	case upDownRatio > 1.3:
		score += 2
	case upDownRatio > 1.1:
		score++
	case upDownRatio < 0.8:
		score -= 2
	case upDownRatio < 0.9:
		score--
	}

	switch {
	case limitUp > 80:
		score += 2
	case limitUp > 50:
		score++
	case limitUp < 20:
		score--
	}

	if volumeRatio > 1.2 {
		score++
	} else if volumeRatio < 0.8 {
		score--
	}

	switch {
	case score >= 3:
		return SentimentStrong, score
	case score >= 1:
		return SentimentMildBull, score
	case score <= -3:
		return SentimentWeak, score
	case score <= -1:
		return SentimentMildBear, score
	default:
		return SentimentRangebound, score
	}
}

// BoardHeat classifies limit-board activity.
type BoardHeat int

const (
	BoardHeatLow    BoardHeat = iota // 低迷
	BoardHeatBlazing                 // 火爆
	BoardHeatActive                  // 活跃
	BoardHeatNormal                  // 一般
)

func (h BoardHeat) String() string {
	switch h {
	case BoardHeatBlazing:
		return "火爆"
	case BoardHeatActive:
		return "活跃"
	case BoardHeatNormal:
		return "一般"
	default:
		return "低迷"
	}
}

// BoardMood classifies crowd mood from the limit-up/limit-down balance.
type BoardMood int

const (
	BoardMoodNeutral BoardMood = iota // 情绪中性
	BoardMoodEuphoric                 // 做多情绪高涨
	BoardMoodPanic                    // 恐慌情绪蔓延
)

func (m BoardMood) String() string {
	switch m {
	case BoardMoodEuphoric:
		return "做多情绪高涨"
	case BoardMoodPanic:
		return "恐慌情绪蔓延"
	default:
		return "情绪中性"
	}
}

// LimitBoardStats is the heat analysis of one day's limit boards.
type LimitBoardStats struct {
	Heat      BoardHeat
	SealRate  float64
	Mood      BoardMood
	LimitUp   int
	LimitDown int
}

// AnalyzeLimitBoards grades market heat from limit-board counts and the
// first-board seal rate.
func AnalyzeLimitBoards(limitUp, limitDown, firstBoardSealed, firstBoardTotal int) LimitBoardStats {
	sealRate := 0.0
	if firstBoardTotal > 0 {
		sealRate = float64(firstBoardSealed) / float64(firstBoardTotal)
	}

	heat := BoardHeatLow
	switch {
	case limitUp > 100 && sealRate > 0.8:
		heat = BoardHeatBlazing
	case limitUp > 60 && sealRate > 0.6:
		heat = BoardHeatActive
	case limitUp > 30:
		heat = BoardHeatNormal
	}

	mood := BoardMoodNeutral
	if limitUp > limitDown*3 {
		mood = BoardMoodEuphoric
	} else if limitDown > limitUp*2 {
		mood = BoardMoodPanic
	}

	return LimitBoardStats{
		Heat:      heat,
		SealRate:  sealRate,
		Mood:      mood,
		LimitUp:   limitUp,
		LimitDown: limitDown,
	}
}
