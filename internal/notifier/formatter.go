package notifier

import (
	"fmt"
	"strings"
	"time"

	"StockScope/internal/label"
	"StockScope/internal/model"
	"StockScope/internal/watchlist"
)

// FormatStockReview formats one symbol's full analysis into a Telegram message.
func FormatStockReview(code, name string, series *model.Series, report *model.TradeReport, analysis *model.PatternAnalysis) string {
	var b strings.Builder

	title := code
	if name != "" {
		title = fmt.Sprintf("%s (%s)", name, code)
	}
	b.WriteString(fmt.Sprintf("📊 <b>%s</b> | %s\n\n", title, time.Now().Format("2006-01-02")))

	if n := series.Len(); n > 0 {
		latest := series.Bars[n-1]
		b.WriteString(fmt.Sprintf("收盘: %.2f", latest.Close))
		if pct, err := latest.ChangePct(); err == nil {
			b.WriteString(fmt.Sprintf(" (%+.2f%%)", pct))
		}
		pattern, _ := label.AnalyzeCandle(latest)
		b.WriteString(fmt.Sprintf(" | %s\n", pattern))
	}

	b.WriteString(fmt.Sprintf("信号评分: %d/5 (%s)\n", report.Score, report.Trend))
	if len(report.Signals) > 0 {
		b.WriteString("📈 <b>技术信号:</b>\n")
		for _, s := range report.Signals {
			b.WriteString(fmt.Sprintf("  • %s\n", s.Description))
		}
	}
	b.WriteString(fmt.Sprintf("  (多方 %d / 空方 %d)\n", report.BuyCount, report.SellCount))

	b.WriteString("\n🔍 <b>形态匹配:</b>\n")
	b.WriteString(FormatPatternAnalysis(analysis))

	return b.String()
}

// FormatPatternAnalysis formats the pattern outcome block.
func FormatPatternAnalysis(a *model.PatternAnalysis) string {
	if a == nil {
		return "  形态分析不可用\n"
	}
	if a.Message != "" {
		return fmt.Sprintf("  %s (形态%d天)\n", a.Message, a.PatternDays)
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("  相似形态: %d个 (近%d天形态)\n", a.SimilarCount, a.PatternDays))
	if a.WinRate != nil {
		b.WriteString(fmt.Sprintf("  历史胜率: %.0f%%\n", *a.WinRate))
	}
	if a.AvgReturn != nil {
		b.WriteString(fmt.Sprintf("  平均后续收益: %+.2f%%\n", *a.AvgReturn))
	}
	if a.AvgSimilarity != nil {
		b.WriteString(fmt.Sprintf("  平均相似度: %.1f\n", *a.AvgSimilarity))
	}
	if a.BestMatch != nil {
		b.WriteString(fmt.Sprintf("  最佳匹配: 相似度%.1f, 后续%+.2f%%\n",
			a.BestMatch.Similarity, a.BestMatch.FutureReturn))
	}
	return b.String()
}

// FormatReviewSummary reports how many instruments a review run processed.
func FormatReviewSummary(processed, attempted int, failed []string) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("📋 <b>复盘完成</b> | %s\n", time.Now().Format("2006-01-02 15:04")))
	b.WriteString(fmt.Sprintf("处理 %d/%d 只标的\n", processed, attempted))
	if len(failed) > 0 {
		b.WriteString(fmt.Sprintf("失败: %s\n", strings.Join(failed, ", ")))
	}
	return b.String()
}

// FormatWatchlist formats the current watchlist for display.
func FormatWatchlist(entries []watchlist.Entry) string {
	if len(entries) == 0 {
		return "自选股列表为空，使用 /watch add 代码 名称 添加"
	}
	var b strings.Builder
	b.WriteString(fmt.Sprintf("👀 <b>自选股</b> (%d只)\n\n", len(entries)))
	for _, e := range entries {
		b.WriteString(fmt.Sprintf("  • %s %s\n", e.Code, e.Name))
	}
	return b.String()
}
