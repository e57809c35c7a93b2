package label

import "sort"

// SectorStrength classifies a sector from its up-ratio and average change.
type SectorStrength int

const (
	SectorRangebound SectorStrength = iota // 震荡
	SectorStrong                           // 强势
	SectorMildStrong                       // 偏强
	SectorWeak                             // 弱势
	SectorMildWeak                         // 偏弱
)

func (s SectorStrength) String() string {
	switch s {
	case SectorStrong:
		return "强势"
	case SectorMildStrong:
		return "偏强"
	case SectorWeak:
		return "弱势"
	case SectorMildWeak:
		return "偏弱"
	default:
		return "震荡"
	}
}

// SectorStats carries the ratios behind a strength decision.
type SectorStats struct {
	UpRatio    float64
	TotalCount int
}

// SectorStrengthOf labels a sector from advancing/declining member counts
// and the sector's average change percentage.
func SectorStrengthOf(upCount, downCount int, changePct float64) (SectorStrength, SectorStats) {
	total := upCount + downCount
	upRatio := 0.5
	if total > 0 {
		upRatio = float64(upCount) / float64(total)
	}
	stats := SectorStats{UpRatio: upRatio, TotalCount: total}

	switch {
	case upRatio > 0.8 && changePct > 2:
		return SectorStrong, stats
	case upRatio > 0.6 && changePct > 0:
		return SectorMildStrong, stats
	case upRatio < 0.3 && changePct < -2:
		return SectorWeak, stats
	case upRatio < 0.4 && changePct < 0:
		return SectorMildWeak, stats
	default:
		return SectorRangebound, stats
	}
}

// SectorSnapshot is one sector's state in a period.
type SectorSnapshot struct {
	Code      string
	Name      string
	ChangePct float64
	NetInflow float64
}

// RotationShift is one sector's move between two periods.
type RotationShift struct {
	Name           string
	StrengthChange float64
	FlowChange     float64
}

// RotationIntensity classifies how actively money is rotating.
type RotationIntensity int

const (
	RotationWeak   RotationIntensity = iota // 弱
	RotationStrong                          // 强
)

func (r RotationIntensity) String() string {
	if r == RotationStrong {
		return "强"
	}
	return "弱"
}

// RotationReport summarizes sector rotation between two periods.
type RotationReport struct {
	Hot       []RotationShift // top gainers, strongest first
	Cold      []RotationShift // top losers, weakest first
	Intensity RotationIntensity
}

// AnalyzeRotation compares current sector snapshots against the previous
// period. A sector qualifies as rotating in (out) when both its strength and
// its flow moved decisively in the same direction.
func AnalyzeRotation(sectors, prevSectors []SectorSnapshot) RotationReport {
	prev := make(map[string]SectorSnapshot, len(prevSectors))
	for _, s := range prevSectors {
		prev[s.Code] = s
	}

	var gainers, losers []RotationShift
	for _, sector := range sectors {
		p, ok := prev[sector.Code]
		if !ok {
			continue
		}
		shift := RotationShift{
			Name:           sector.Name,
			StrengthChange: sector.ChangePct - p.ChangePct,
			FlowChange:     sector.NetInflow - p.NetInflow,
		}
		switch {
		case shift.StrengthChange > 2 && shift.FlowChange > 3:
			gainers = append(gainers, shift)
		case shift.StrengthChange < -2 && shift.FlowChange < -3:
			losers = append(losers, shift)
		}
	}

	sort.SliceStable(gainers, func(i, j int) bool {
		return gainers[i].StrengthChange > gainers[j].StrengthChange
	})
	sort.SliceStable(losers, func(i, j int) bool {
		return losers[i].StrengthChange < losers[j].StrengthChange
	})

	intensity := RotationWeak
	if len(gainers)+len(losers) > 10 {
		intensity = RotationStrong
	}

	return RotationReport{
		Hot:       capShifts(gainers, 5),
		Cold:      capShifts(losers, 5),
		Intensity: intensity,
	}
}

func capShifts(shifts []RotationShift, n int) []RotationShift {
	if len(shifts) > n {
		return shifts[:n]
	}
	return shifts
}
