package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/anu6598/otp-breach/internal/config"
	"github.com/anu6598/otp-breach/internal/domain"
	"github.com/anu6598/otp-breach/internal/export"
	"github.com/anu6598/otp-breach/internal/report"
	"github.com/anu6598/otp-breach/internal/store"
	"github.com/anu6598/otp-breach/internal/ui"
	"github.com/anu6598/otp-breach/internal/watcher"
)

// version is set by goreleaser via ldflags.
var version = "dev"

func main() {
	var (
		configPath  = flag.String("config", config.DefaultPath(), "config file path")
		dataPath    = flag.String("data", "", "OTP request CSV path (overrides config)")
		noTUI       = flag.Bool("no-tui", false, "write the analysis to stdout instead of the TUI")
		view        = flag.String("view", "metrics", "output for --no-tui: metrics, trends, summary, export")
		timezone    = flag.String("timezone", "", "override timezone (e.g., Asia/Kolkata)")
		since       = flag.String("since", "", "filter records from this date (YYYY-MM-DD)")
		until       = flag.String("until", "", "filter records until this date (YYYY-MM-DD)")
		showVersion = flag.Bool("version", false, "print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Println("otp-smi", version)
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Apply CLI overrides
	if *timezone != "" {
		if _, err := time.LoadLocation(*timezone); err != nil {
			fmt.Fprintf(os.Stderr, "Invalid timezone: %s\n", *timezone)
			os.Exit(1)
		}
		cfg.General.Timezone = *timezone
	}
	if *dataPath != "" {
		cfg.General.DataPath = *dataPath
	}

	// Validate date filters
	for _, df := range []struct{ name, val string }{{"--since", *since}, {"--until", *until}} {
		if df.val != "" {
			if _, err := time.Parse("2006-01-02", df.val); err != nil {
				fmt.Fprintf(os.Stderr, "Invalid %s date (use YYYY-MM-DD): %s\n", df.name, df.val)
				os.Exit(1)
			}
		}
	}

	st := store.New(cfg.General.DataPath)

	if *noTUI {
		runNoTUI(st, *view, *since, *until)
		return
	}

	app := ui.NewApp(cfg, st)
	app.SinceFilter = *since
	app.UntilFilter = *until
	p := tea.NewProgram(app, tea.WithAltScreen())

	// The watcher only notifies; reloading stays behind the r key.
	w := watcher.New(cfg.General.DataPath,
		time.Duration(cfg.General.Interval)*time.Second,
		func() { p.Send(ui.DataChangedMsg{}) })
	w.Mark()
	if err := w.Start(); err == nil {
		defer w.Stop()
	}

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runNoTUI(st *store.Store, view, since, until string) {
	ds, err := st.Dataset()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading data: %v\n", err)
		os.Exit(1)
	}

	var start, end time.Time
	if since != "" {
		start, _ = time.Parse("2006-01-02", since)
	}
	if until != "" {
		end, _ = time.Parse("2006-01-02", until)
	}
	records := domain.FilterByDateRange(ds.Records, start, end)

	minDate, maxDate, _ := domain.Bounds(records)
	if start.IsZero() {
		start = minDate
	}
	if end.IsZero() {
		end = maxDate
	}

	var data interface{}
	switch view {
	case "metrics":
		data = domain.ComputeMetrics(records)
	case "trends":
		type monthTrend struct {
			Month   string          `json:"month"`
			Buckets []domain.Bucket `json:"buckets"`
			Stat    string          `json:"stat"`
		}
		var trends []monthTrend
		for _, m := range domain.MonthsInRange(records) {
			buckets := domain.GroupByOTPCount(domain.FilterByMonth(records, m))
			trends = append(trends, monthTrend{
				Month:   m.String(),
				Buckets: buckets,
				Stat:    report.AssessMonth(records, m).String(),
			})
		}
		data = trends
	case "summary":
		assessment := report.Assess(domain.ComputeMetrics(records), start, end)
		data = struct {
			Narrative string          `json:"narrative"`
			Banner    string          `json:"banner"`
			Shares    []domain.Bucket `json:"shares"`
		}{
			Narrative: assessment.Narrative(),
			Banner:    assessment.Banner(),
			Shares:    domain.SummaryShares(domain.GroupByOTPCount(records)),
		}
	case "export":
		if err := export.Write(os.Stdout, records, ds.ExtraColumns); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing export: %v\n", err)
			os.Exit(1)
		}
		return
	default:
		fmt.Fprintf(os.Stderr, "Unknown view: %s (use metrics, trends, summary or export)\n", view)
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		os.Exit(1)
	}
}
