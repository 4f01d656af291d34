package i18n

var en = map[string]string{
	// App chrome
	"initializing":       "Initializing...",
	"terminal_too_small": "Terminal too small (min 80x24)",
	"current_size":       "Current: %dx%d",
	"load_error":         "Failed to load dataset",
	"load_error_hint":    "Fix the source file and press r to retry.",

	// Tabs
	"tab_metrics": "Key Metrics",
	"tab_trends":  "Monthly Trends",
	"tab_summary": "Threshold Analysis",

	// Status bar
	"status_help":    "help",
	"status_range":   "date range",
	"status_refresh": "refresh",
	"status_export":  "export csv",
	"status_quit":    "quit",

	// Metrics view
	"key_metrics":      "Key Metrics",
	"data_preview":     "Data Preview",
	"total_users":      "Total Users",
	"users_over":       "Users > %d OTPs",
	"percent_over":     "% Over Threshold",
	"max_otps":         "Max OTPs Requested",
	"share_over":       "Share Over Threshold",
	"col_event_date":   "Event Date",
	"col_otp_count":    "OTP Count",
	"col_user_count":   "User Count",
	"col_month":        "Month",
	"col_year":         "Year",
	"preview_rows":     "first %d of %d filtered rows",
	"no_data":          "No data in the selected date range",
	"no_data_short":    "no data",

	// Trends view
	"monthly_trends":  "OTP Request Trends - %s",
	"threshold_label": "Current Threshold: %d OTPs",
	"axis_x":          "OTP Count",
	"axis_y":          "User Count (log scale)",
	"month_over":      "%s - Users Over Threshold: %s (%s)",
	"no_months":       "No April-August data in the selected range",
	"trends_help":     "h/l switch month · x export chart PNG",
	"chart_saved":     "Chart saved: %s",
	"chart_failed":    "Chart export failed: %s",

	// Summary view
	"threshold_analysis": "Threshold Analysis",
	"otp_summary":        "Data Summary by OTP Count",
	"share_of_users":     "Share",
	"users":              "Users",
	"share_pie":          "Top Buckets by Share",

	// Export
	"export_saved":  "Filtered data saved: %s",
	"export_failed": "Export failed: %s",

	// Date range picker
	"date_range":        "Date Range",
	"range_start":       "Start date",
	"range_end":         "End date",
	"range_help":        "j/k field · h/l ±day · H/L ±week · 0 reset · esc apply",
	"active_range":      "%s → %s",
	"data_changed":      "Source file changed on disk; press r to reload",

	// Settings
	"settings":         "Settings",
	"setting_timezone": "Timezone",
	"setting_refresh":  "Poll (sec)",
	"setting_language": "Language",
	"settings_help":    "j/k move · h/l change · esc save & close",

	// Help overlay
	"keyboard_shortcuts": "Keyboard Shortcuts",
	"help_switch_views":  "Switch views",
	"help_cycle_views":   "Cycle views",
	"help_months":        "Previous / next month tab",
	"help_date_range":    "Open date range picker",
	"help_export":        "Export filtered data as CSV",
	"help_export_chart":  "Export current month chart as PNG",
	"help_refresh":       "Reload the source file",
	"help_settings":      "Open settings",
	"help_toggle_help":   "Toggle this help",
	"help_quit":          "Quit",
	"help_close":         "Press esc or ? to close",
}
