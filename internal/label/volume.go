package label

// VolumeTrend classifies current volume against its 5- and 10-day averages.
type VolumeTrend int

const (
	VolumeFlat       VolumeTrend = iota // 持平
	VolumeSurge                         // 放量
	VolumeShrink                        // 缩量
	VolumeMildSurge                     // 温和放量
	VolumeMildShrink                    // 温和缩量
)

func (v VolumeTrend) String() string {
	switch v {
	case VolumeSurge:
		return "放量"
	case VolumeShrink:
		return "缩量"
	case VolumeMildSurge:
		return "温和放量"
	case VolumeMildShrink:
		return "温和缩量"
	default:
		return "持平"
	}
}

// VolumeRatios carries the ratios behind a volume trend decision.
type VolumeRatios struct {
	Vs5d  float64
	Vs10d float64
}

// VolumeTrendOf labels current volume relative to the two averages. A
// non-positive average contributes a neutral ratio of 1.
func VolumeTrendOf(current, avg5d, avg10d float64) (VolumeTrend, VolumeRatios) {
	r := VolumeRatios{Vs5d: 1, Vs10d: 1}
	if avg5d > 0 {
		r.Vs5d = current / avg5d
	}
	if avg10d > 0 {
		r.Vs10d = current / avg10d
	}

	switch {
	case r.Vs5d > 1.5:
		return VolumeSurge, r
	case r.Vs5d < 0.7:
		return VolumeShrink, r
	case r.Vs10d > 1.2:
		return VolumeMildSurge, r
	case r.Vs10d < 0.8:
		return VolumeMildShrink, r
	default:
		return VolumeFlat, r
	}
}

// PriceVolume classifies the price-volume relationship of one bar.
type PriceVolume int

const (
	PriceVolumeNeutralRise  PriceVolume = iota // 温和上涨
	PriceVolumeHealthyRise                     // 放量上涨(健康)
	PriceVolumeThinRise                        // 缩量上涨(需观察)
	PriceVolumePanicFall                       // 放量下跌(杀跌)
	PriceVolumeResistFall                      // 缩量下跌(抵抗)
	PriceVolumePlainFall                       // 一般下跌
	PriceVolumeChurn                           // 放量横盘(变盘)
	PriceVolumeQuietFlat                       // 缩量横盘
	PriceVolumeFlatRange                       // 横盘整理
)

func (p PriceVolume) String() string {
	switch p {
	case PriceVolumeHealthyRise:
		return "放量上涨(健康)"
	case PriceVolumeThinRise:
		return "缩量上涨(需观察)"
	case PriceVolumePanicFall:
		return "放量下跌(杀跌)"
	case PriceVolumeResistFall:
		return "缩量下跌(抵抗)"
	case PriceVolumePlainFall:
		return "一般下跌"
	case PriceVolumeChurn:
		return "放量横盘(变盘)"
	case PriceVolumeQuietFlat:
		return "缩量横盘"
	case PriceVolumeFlatRange:
		return "横盘整理"
	default:
		return "温和上涨"
	}
}

// PriceVolumeOf labels the significance of a volume ratio given the price
// move that accompanied it.
func PriceVolumeOf(volumeRatio, priceChange float64) PriceVolume {
	switch {
	case priceChange > 0:
		if volumeRatio > 1.5 {
			return PriceVolumeHealthyRise
		}
		if volumeRatio < 0.7 {
			return PriceVolumeThinRise
		}
		return PriceVolumeNeutralRise
	case priceChange < 0:
		if volumeRatio > 1.5 {
			return PriceVolumePanicFall
		}
		if volumeRatio < 0.7 {
			return PriceVolumeResistFall
		}
		return PriceVolumePlainFall
	default:
		if volumeRatio > 1.5 {
			return PriceVolumeChurn
		}
		if volumeRatio < 0.7 {
			return PriceVolumeQuietFlat
		}
		return PriceVolumeFlatRange
	}
}
