package scheduler

import (
	"context"
	"fmt"
	"log"
	"strings"

	"StockScope/internal/collector"
	"StockScope/internal/notifier"
	"StockScope/internal/pattern"
	"StockScope/internal/signal"
	"StockScope/internal/store"
	"StockScope/internal/watchlist"

	"github.com/robfig/cron/v3"
)

// Options carries the analysis parameters the scheduler runs with.
type Options struct {
	Timeframe   string
	PatternDays int
	Lookback    int
}

// Scheduler manages the cron-driven daily review and telegram commands.
type Scheduler struct {
	Cron      *cron.Cron
	Collector *collector.Collector
	Store     store.Store
	Watchlist *watchlist.Manager
	Notifier  *notifier.TelegramNotifier
	Opts      Options
	Ctx       context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, col *collector.Collector, st store.Store, wl *watchlist.Manager, tn *notifier.TelegramNotifier, opts Options) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Collector: col,
		Store:     st,
		Watchlist: wl,
		Notifier:  tn,
		Opts:      opts,
		Ctx:       ctx,
	}
}

// RegisterAll registers the daily review task.
func (s *Scheduler) RegisterAll(reviewCron string) error {
	if _, err := s.Cron.AddFunc(reviewCron, s.reviewTask); err != nil {
		return fmt.Errorf("register review task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunReviewNow executes the review task immediately (manual trigger / RUN_ON_START).
func (s *Scheduler) RunReviewNow() {
	s.reviewTask()
}

// reviewTask analyzes every watched instrument. One failing instrument is
// logged and skipped; the summary reports processed vs attempted counts.
func (s *Scheduler) reviewTask() {
	entries := s.Watchlist.List()
	log.Printf("[INFO] running daily review for %d instruments", len(entries))
	if len(entries) == 0 {
		return
	}

	var failed []string
	for _, e := range entries {
		report, err := s.analyzeOne(e.Code, e.Name)
		if err != nil {
			log.Printf("[ERROR] review %s: %v", e.Code, err)
			failed = append(failed, e.Code)
			continue
		}
		s.trySend(report)
	}

	s.trySend(notifier.FormatReviewSummary(len(entries)-len(failed), len(entries), failed))
}

// analyzeOne runs the full signal + pattern analysis for one instrument and
// records a snapshot.
func (s *Scheduler) analyzeOne(code, name string) (string, error) {
	limit := s.Opts.Lookback + s.Opts.PatternDays + 50
	series, err := s.Collector.Sync(code, s.Opts.Timeframe, limit)
	if err != nil {
		return "", err
	}

	report, err := signal.Analyze(series)
	if err != nil {
		return "", err
	}

	analysis, err := pattern.AnalyzeOutcome(code, series.Closes(), s.Opts.PatternDays)
	if err != nil {
		return "", err
	}

	snap := &store.ReviewSnapshot{
		Symbol:       code,
		Score:        report.Score,
		Trend:        report.Trend.String(),
		BuyCount:     report.BuyCount,
		SellCount:    report.SellCount,
		PatternDays:  analysis.PatternDays,
		SimilarCount: analysis.SimilarCount,
		WinRate:      analysis.WinRate,
		AvgReturn:    analysis.AvgReturn,
	}
	if n := series.Len(); n > 0 {
		snap.Price = series.Bars[n-1].Close
	}
	if err := s.Store.RecordReview(snap); err != nil {
		log.Printf("[ERROR] record review %s: %v", code, err)
	}

	return notifier.FormatStockReview(code, name, series, report, analysis), nil
}

// storeHistory adapts the bar store to the pattern matcher's history boundary.
type storeHistory struct {
	store     store.Store
	timeframe string
}

func (h storeHistory) Closes(symbol string, limit int) ([]float64, error) {
	return h.store.Closes(symbol, h.timeframe, limit)
}

// HandleCommand processes a user command and returns a reply.
func (s *Scheduler) HandleCommand(command string) string {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return ""
	}

	switch fields[0] {
	case "/review", "复盘":
		go s.reviewTask()
		return "复盘已开始，结果稍后推送"

	case "/watch":
		return s.handleWatch(fields[1:])

	case "/analyze":
		if len(fields) < 2 {
			return "用法: /analyze 代码"
		}
		report, err := s.analyzeOne(fields[1], "")
		if err != nil {
			return fmt.Sprintf("分析失败: %v", err)
		}
		return report

	case "/pattern":
		if len(fields) < 2 {
			return "用法: /pattern 代码1,代码2,..."
		}
		return s.handlePattern(fields[1])

	default:
		return "可用命令:\n• /review 立即复盘\n• /watch list|add|del\n• /analyze 代码\n• /pattern 代码1,代码2"
	}
}

func (s *Scheduler) handleWatch(args []string) string {
	if len(args) == 0 || args[0] == "list" {
		return notifier.FormatWatchlist(s.Watchlist.List())
	}
	switch args[0] {
	case "add":
		if len(args) < 2 {
			return "用法: /watch add 代码 [名称]"
		}
		name := ""
		if len(args) > 2 {
			name = args[2]
		}
		if err := s.Watchlist.Add(args[1], name); err != nil {
			return fmt.Sprintf("添加失败: %v", err)
		}
		return fmt.Sprintf("已添加 %s", args[1])
	case "del":
		if len(args) < 2 {
			return "用法: /watch del 代码"
		}
		removed, err := s.Watchlist.Remove(args[1])
		if err != nil {
			return fmt.Sprintf("移除失败: %v", err)
		}
		if !removed {
			return fmt.Sprintf("%s 不在自选股中", args[1])
		}
		return fmt.Sprintf("已移除 %s", args[1])
	default:
		return "用法: /watch list|add|del"
	}
}

// handlePattern runs the batch pattern analysis over a comma-separated
// ticker list (capped at 10 inside the matcher).
func (s *Scheduler) handlePattern(arg string) string {
	tickers := strings.Split(arg, ",")
	for i := range tickers {
		tickers[i] = strings.TrimSpace(tickers[i])
	}

	// Make sure history is present before matching against the store.
	limit := s.Opts.Lookback + s.Opts.PatternDays + 50
	for _, t := range tickers {
		if _, err := s.Collector.Sync(t, s.Opts.Timeframe, limit); err != nil {
			log.Printf("[WARN] pattern sync %s: %v", t, err)
		}
	}

	provider := storeHistory{store: s.Store, timeframe: s.Opts.Timeframe}
	results := pattern.AnalyzeBatch(provider, tickers, s.Opts.PatternDays)

	var b strings.Builder
	processed := 0
	for _, r := range results {
		if r.Err != nil {
			b.WriteString(fmt.Sprintf("❌ %s: %v\n", r.Ticker, r.Err))
			continue
		}
		processed++
		b.WriteString(fmt.Sprintf("🔍 <b>%s</b>\n%s\n", r.Ticker, notifier.FormatPatternAnalysis(r.Analysis)))
	}
	b.WriteString(fmt.Sprintf("完成 %d/%d", processed, len(results)))
	return b.String()
}

// trySend delivers a message with retry; delivery failure is logged, never fatal.
func (s *Scheduler) trySend(text string) {
	if err := s.Notifier.SendWithRetry(s.Ctx, text, 3); err != nil {
		log.Printf("[ERROR] send notification: %v", err)
	}
}

var _ pattern.HistoryProvider = storeHistory{}
