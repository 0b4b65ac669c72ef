package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/slipscope/internal/adapters/cachedoc"
	"github.com/emiliopalmerini/slipscope/internal/adapters/history"
	"github.com/emiliopalmerini/slipscope/internal/adapters/logging"
	otelx "github.com/emiliopalmerini/slipscope/internal/adapters/otel"
	"github.com/emiliopalmerini/slipscope/internal/adapters/slpjson"
	"github.com/emiliopalmerini/slipscope/internal/domain"
	"github.com/emiliopalmerini/slipscope/internal/engine"
	"github.com/emiliopalmerini/slipscope/internal/infrastructure/config"
	"github.com/emiliopalmerini/slipscope/internal/ports"
	"github.com/emiliopalmerini/slipscope/internal/tui"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <folder>",
	Short: "Analyze a folder of replay documents",
	Long: `Analyze every replay document under <folder> (recursive) from the
perspective of the player matched by the --self tags.

Examples:
  slipscope analyze ~/replays --self ryan --self "ryan#123"
  slipscope analyze ~/replays --self ryan --opponent mango
  slipscope analyze ~/replays --self ryan --character Fox --ranked
  slipscope analyze ~/replays --self ryan --watch`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

// Flags
var (
	analyzeSelf         []string
	analyzeOpponent     []string
	analyzeIgnore       []string
	analyzeCharacter    string
	analyzeOppCharacter string
	analyzeRanked       bool
	analyzeGlob         string
	analyzeJSON         bool
	analyzeWatch        bool
	analyzeVerbose      bool
)

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringArrayVarP(&analyzeSelf, "self", "s", nil, "Tag identifying you (repeatable, substring match)")
	analyzeCmd.Flags().StringArrayVarP(&analyzeOpponent, "opponent", "o", nil, "Tag identifying the opponent (repeatable)")
	analyzeCmd.Flags().StringArrayVar(&analyzeIgnore, "ignore", nil, "Opponent tag to exclude (repeatable)")
	analyzeCmd.Flags().StringVarP(&analyzeCharacter, "character", "c", "", "Only count games where you played this character")
	analyzeCmd.Flags().StringVar(&analyzeOppCharacter, "opponent-character", "", "Only count games against this character")
	analyzeCmd.Flags().BoolVar(&analyzeRanked, "ranked", false, "Only count ranked matches")
	analyzeCmd.Flags().StringVar(&analyzeGlob, "glob", "", "Replay document glob (default "+engine.DefaultGlob+")")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Print the report as JSON")
	analyzeCmd.Flags().BoolVar(&analyzeWatch, "watch", false, "Show a live progress view while analyzing")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Log per-file details to stderr")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	folder := args[0]

	cfg, err := config.LoadAnalyzer()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	logger := logging.NewStderrLogger(analyzeVerbose)
	criteria := domain.Criteria{
		SelfTags:          analyzeSelf,
		OpponentTags:      analyzeOpponent,
		IgnoredTags:       analyzeIgnore,
		SelfCharacter:     analyzeCharacter,
		OpponentCharacter: analyzeOppCharacter,
		RankedOnly:        analyzeRanked,
	}

	glob := analyzeGlob
	if glob == "" {
		glob = cfg.ReplayGlob
	}
	decoder := slpjson.New()
	cacheStore := cachedoc.NewStore(cfg.CacheFileName, logger)

	// Ctrl-C cancels the in-flight run cooperatively: the loop stops
	// before the next file and the partial report is still produced.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	startedAt := time.Now()
	var report *engine.Report
	if analyzeWatch {
		report, err = runWithWatch(ctx, folder, criteria, decoder, cacheStore, logger, glob)
	} else {
		svc := engine.NewService(decoder, cacheStore, ports.NoopSink{}, logger, glob)
		report, err = svc.Analyze(ctx, folder, criteria)
	}
	if err != nil {
		return err
	}
	finishedAt := time.Now()

	runID := uuid.New().String()
	persistRun(cfg, logger, report, runID, startedAt, finishedAt)
	exportRunMetrics(logger, report, runID, finishedAt.Sub(startedAt))

	if analyzeJSON {
		out, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal report: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}
	printReport(report)
	return nil
}

func runWithWatch(ctx context.Context, folder string, criteria domain.Criteria, decoder ports.ReplayDecoder, cacheStore ports.CacheStore, logger ports.Logger, glob string) (*engine.Report, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	model := tui.NewWatch(folder, cancel)
	program := tea.NewProgram(model)
	svc := engine.NewService(decoder, cacheStore, tui.NewProgramSink(program), logger, glob)

	var (
		report *engine.Report
		runErr error
	)
	go func() {
		report, runErr = svc.Analyze(ctx, folder, criteria)
		program.Send(tui.DoneMsg{Err: runErr})
	}()

	if _, err := program.Run(); err != nil {
		cancel()
		return nil, fmt.Errorf("run live view: %w", err)
	}
	return report, runErr
}

// persistRun records the run summary in the local history database. The
// report already went to the user, so history failures only log.
func persistRun(cfg *config.Analyzer, logger ports.Logger, report *engine.Report, runID string, startedAt, finishedAt time.Time) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	db, err := history.NewDB(ctx, cfg.HistoryDBPath)
	if err != nil {
		logger.Error(fmt.Sprintf("open run history: %v", err))
		return
	}
	defer db.Close()

	run := &domain.RunRecord{
		ID:           runID,
		Folder:       report.Folder,
		StartedAt:    startedAt,
		FinishedAt:   finishedAt,
		TotalGames:   report.TotalGames,
		TotalWins:    report.TotalWins,
		WinRate:      report.WinRate,
		TotalFiles:   report.TotalFiles,
		SkippedFiles: report.SkippedFiles,
		CacheHits:    report.CacheHits,
		NewlyCached:  report.NewlyCached,
		Cancelled:    report.Cancelled,
		Criteria:     report.Criteria,
	}
	if err := history.NewRepository(db).Save(ctx, run); err != nil {
		logger.Error(fmt.Sprintf("save run history: %v", err))
	}
}

// exportRunMetrics ships run counters to the OTEL collector when one is
// configured; otherwise it is a no-op.
func exportRunMetrics(logger ports.Logger, report *engine.Report, runID string, elapsed time.Duration) {
	otelCfg := otelx.LoadConfig()
	if !otelCfg.Enabled {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exporter, err := otelx.NewExporter(ctx, otelCfg)
	if err != nil {
		logger.Error(fmt.Sprintf("create metrics exporter: %v", err))
		return
	}
	defer func() {
		if err := exporter.Close(ctx); err != nil {
			logger.Error(fmt.Sprintf("close metrics exporter: %v", err))
		}
	}()

	metrics := &ports.RunMetrics{
		RunID:           runID,
		Folder:          report.Folder,
		TotalGames:      int64(report.TotalGames),
		TotalWins:       int64(report.TotalWins),
		SkippedFiles:    int64(report.SkippedFiles),
		CacheHits:       int64(report.CacheHits),
		NewlyCached:     int64(report.NewlyCached),
		DurationSeconds: elapsed.Seconds(),
		Cancelled:       report.Cancelled,
	}
	if err := exporter.ExportRunMetrics(ctx, metrics); err != nil {
		logger.Error(fmt.Sprintf("export run metrics: %v", err))
	}
}
