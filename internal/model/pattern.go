package model

// Match is one historical window scored against the current pattern.
type Match struct {
	StartIdx     int
	EndIdx       int
	Similarity   float64 // 0-100
	FutureReturn float64 // pct change over the forward horizon
	StartPrice   float64
	EndPrice     float64
}

// PatternAnalysis summarizes the outcome statistics of matched windows.
// The statistic fields are nil, not zero, when no sample exists; Message is
// set only when the data was insufficient to produce statistics.
type PatternAnalysis struct {
	Ticker        string
	PatternDays   int
	SimilarCount  int
	WinRate       *float64 // 0-100
	AvgReturn     *float64
	AvgSimilarity *float64
	BestMatch     *Match
	Matches       []Match // at most 5
	Message       string
}
