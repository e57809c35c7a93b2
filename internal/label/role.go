package label

// StockRole classifies a stock's position within its sector move.
type StockRole int

const (
	RoleConstituent StockRole = iota // 成分股
	RoleLeader                       // 龙头
	RoleHighCore                     // 高位核心
	RoleCatchUp                      // 补涨
)

func (r StockRole) String() string {
	switch r {
	case RoleLeader:
		return "龙头"
	case RoleHighCore:
		return "高位核心"
	case RoleCatchUp:
		return "补涨"
	default:
		return "成分股"
	}
}

// ClassifyStockRole decides a stock's role from its rank, the sector's
// leader, and its performance relative to the sector average.
func ClassifyStockRole(ticker string, changePct, days5Change float64, marketCapRank int, leaderSymbol string, sectorAvgChange float64) StockRole {
	if ticker == leaderSymbol {
		return RoleLeader
	}
	if days5Change > 10 && marketCapRank <= 3 {
		return RoleHighCore
	}
	if changePct > sectorAvgChange && marketCapRank > 3 {
		return RoleCatchUp
	}
	return RoleConstituent
}
