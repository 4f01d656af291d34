package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/anu6598/otp-breach/internal/config"
	"github.com/anu6598/otp-breach/internal/domain"
	"github.com/anu6598/otp-breach/internal/i18n"
	"github.com/anu6598/otp-breach/internal/store"
	"github.com/anu6598/otp-breach/internal/ui/overlays"
	"github.com/anu6598/otp-breach/internal/ui/views"
)

type ViewType int

const (
	ViewMetrics ViewType = iota
	ViewTrends
	ViewSummary
	ViewCount // sentinel: number of views
)

type OverlayType int

const (
	OverlayNone OverlayType = iota
	OverlayHelp
	OverlaySettings
	OverlayDateRange
)

// TickMsg triggers the periodic staleness check.
type TickMsg time.Time

// BlinkMsg triggers UI-only refresh for smooth animation (250ms).
type BlinkMsg time.Time

// DataChangedMsg is sent by the file watcher when the source CSV
// changes on disk. The dataset is not reloaded until the user asks.
type DataChangedMsg struct{}

// dataLoadedMsg carries the freshly parsed dataset, or the load error.
type dataLoadedMsg struct {
	records []domain.Record
	extra   []string
	minDate time.Time
	maxDate time.Time
	err     error
}

// noticeMsg carries a transient banner message from an async command.
type noticeMsg string

type App struct {
	activeView ViewType
	overlay    OverlayType

	// Views
	metricsView *views.MetricsView
	trendsView  *views.TrendsView
	summaryView *views.SummaryView

	// Overlays
	helpOverlay     *overlays.HelpOverlay
	settingsOverlay *overlays.SettingsOverlay
	datePicker      *overlays.DatePickerOverlay

	// Shared data
	records      []domain.Record
	filtered     []domain.Record
	extraColumns []string
	minDate      time.Time
	maxDate      time.Time
	Config       config.Config
	Store        *store.Store
	tz           *time.Location

	// Applied date range filter; zero means dataset bound.
	startDate time.Time
	endDate   time.Time

	// Initial date filter from the command line (YYYY-MM-DD); empty = none.
	SinceFilter string
	UntilFilter string
	cliApplied  bool

	// Animation state
	animTick uint

	// Notifications
	notifications *NotificationManager

	// Terminal
	width  int
	height int

	// State
	loadErr error
	loading bool
	ready   bool
}

func NewApp(cfg config.Config, st *store.Store) App {
	i18n.SetLanguage(cfg.General.Language)

	tz, err := time.LoadLocation(cfg.General.Timezone)
	if err != nil {
		tz = time.UTC
	}

	return App{
		activeView:    ViewMetrics,
		overlay:       OverlayNone,
		Config:        cfg,
		Store:         st,
		tz:            tz,
		metricsView:   views.NewMetricsView(),
		trendsView:    views.NewTrendsView(),
		summaryView:   views.NewSummaryView(),
		helpOverlay:   overlays.NewHelpOverlay(),
		notifications: NewNotificationManager(cfg.Notifications.Bell),
	}
}

func (a App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("otp-smi"),
		a.loadData(false),
		doBlink(),
	)
}

func doBlink() tea.Cmd {
	return tea.Tick(250*time.Millisecond, func(t time.Time) tea.Msg {
		return BlinkMsg(t)
	})
}

func doTick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
