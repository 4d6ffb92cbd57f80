package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"syscall"

	"golang.org/x/term"

	"amlsentinel/internal/domain/entity"
	"amlsentinel/internal/pagination"
	"amlsentinel/internal/service/alerts"
)

func (a *app) runLogin(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	username := fs.String("username", "", "Analyst username")
	password := fs.String("password", "", "Password (omit to be prompted, or set AML_PASSWORD)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *username == "" {
		return fmt.Errorf("--username is required")
	}

	pw := *password
	if pw == "" {
		pw = os.Getenv("AML_PASSWORD")
	}
	if pw == "" {
		fmt.Fprint(os.Stderr, "Password: ")
		raw, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return fmt.Errorf("read password: %w", err)
		}
		pw = string(raw)
	}

	analyst, err := a.auth.Login(ctx, *username, pw)
	if err != nil {
		return err
	}
	fmt.Printf("Logged in as %s (%s, %s)\n", analyst.Username, analyst.FullName, analyst.Role)
	return nil
}

func (a *app) runLogout(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("logout", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := a.auth.Logout(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: server-side logout failed: %v\n", err)
		fmt.Println("Local session cleared.")
		return nil
	}
	fmt.Println("Logged out.")
	return nil
}

func (a *app) runMe(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("me", flag.ExitOnError)
	output := fs.String("output", "text", "Output format: text or json")
	if err := fs.Parse(args); err != nil {
		return err
	}

	analyst, err := a.auth.Me(ctx)
	if err != nil {
		return err
	}
	if *output == "json" {
		return printJSON(analyst)
	}
	fmt.Printf("%s (%s)\nRole: %s\n", analyst.Username, analyst.FullName, analyst.Role)
	return nil
}

func (a *app) runAlerts(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("alerts", flag.ExitOnError)
	var (
		typology   = fs.String("typology", "", "Filter by typology")
		status     = fs.String("status", "", "Filter by workflow status")
		search     = fs.String("search", "", "Free-text search over title and customer")
		resolution = fs.String("resolution", "", "Filter by resolution")
		analyst    = fs.String("analyst", "", "Filter by assigned analyst")
		riskMin    = fs.Int("risk-min", -1, "Minimum risk score (0-100)")
		riskMax    = fs.Int("risk-max", -1, "Maximum risk score (0-100)")
		sortBy     = fs.String("sort-by", "", "Sort field (default triggered_date)")
		sortOrder  = fs.String("sort-order", "", "Sort order: asc or desc")
		offset     = fs.Int("offset", 0, "Zero-based offset of the first alert")
		limit      = fs.Int("limit", 0, "Page size")
		output     = fs.String("output", "text", "Output format: text or json")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	filters := alerts.ListFilters{
		Typology:        *typology,
		Status:          *status,
		Search:          *search,
		Resolution:      *resolution,
		AssignedAnalyst: *analyst,
		SortBy:          *sortBy,
		SortOrder:       *sortOrder,
	}
	if *riskMin >= 0 {
		filters.RiskMin = riskMin
	}
	if *riskMax >= 0 {
		filters.RiskMax = riskMax
	}

	pageCfg := pagination.LoadFromEnv()
	params := pagination.Params{Offset: *offset, Limit: *limit}.WithDefaults(pageCfg)
	if err := params.Validate(pageCfg); err != nil {
		return err
	}

	result, err := a.alerts.List(ctx, filters, params)
	if err != nil {
		return err
	}

	state := pagination.NewState(params.Offset, params.Limit, result.Total)
	pagination.RecordPageView(state.CurrentPage)

	if *output == "json" {
		return printJSON(map[string]any{
			"alerts":     result.Alerts,
			"total":      result.Total,
			"pagination": state,
		})
	}
	renderAlertTable(result.Alerts)
	renderPagination(state)
	return nil
}

func (a *app) runStats(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	output := fs.String("output", "text", "Output format: text or json")
	if err := fs.Parse(args); err != nil {
		return err
	}

	stats, err := a.alerts.Stats(ctx)
	if err != nil {
		return err
	}
	if *output == "json" {
		return printJSON(stats)
	}
	fmt.Printf("Total alerts:  %d\n", stats.TotalAlerts)
	fmt.Printf("Open:          %d\n", stats.OpenAlerts)
	fmt.Printf("High risk:     %d\n", stats.HighRiskCount)
	fmt.Printf("Closed:        %d\n", stats.ClosedCount)
	fmt.Printf("Unassigned:    %d\n", stats.UnassignedCount)
	return nil
}

func (a *app) runShow(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("show", flag.ExitOnError)
	byShortID := fs.Bool("short", false, "Look up by short alert ID (e.g. S1) instead of UUID")
	output := fs.String("output", "text", "Output format: text or json")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: amlctl show [--short] <id>")
	}

	id := fs.Arg(0)
	var alert *entity.Alert
	var err error
	if *byShortID {
		alert, err = a.alerts.GetByShortID(ctx, id)
	} else {
		alert, err = a.alerts.Get(ctx, id)
	}
	if err != nil {
		return err
	}
	if *output == "json" {
		return printJSON(alert)
	}
	renderAlertDetail(alert)
	return nil
}

func (a *app) runSetStatus(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("set-status", flag.ExitOnError)
	var (
		status     = fs.String("status", "", "New status (New, In Progress, Review, Escalated, Closed)")
		rationale  = fs.String("rationale", "", "Why the status is changing")
		resolution = fs.String("resolution", "", "Resolution, required when closing")
		analyst    = fs.String("analyst", "", "Acting analyst username (or AML_ANALYST)")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: amlctl set-status <uuid> --status S --rationale R [--resolution X]")
	}

	who, err := analystOrEnv(*analyst)
	if err != nil {
		return err
	}

	updated, err := a.alerts.UpdateStatus(ctx, fs.Arg(0), who, alerts.StatusUpdate{
		Status:     *status,
		Rationale:  *rationale,
		Resolution: *resolution,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Alert %s is now %q\n", updated.AlertID, updated.Status)
	return nil
}

func (a *app) runBulkClose(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("bulk-close", flag.ExitOnError)
	var (
		ids        = fs.String("ids", "", "Comma-separated alert UUIDs")
		resolution = fs.String("resolution", "", "Resolution applied to every alert")
		rationale  = fs.String("rationale", "", "Why the alerts are being closed")
		analyst    = fs.String("analyst", "", "Acting analyst username (or AML_ANALYST)")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	who, err := analystOrEnv(*analyst)
	if err != nil {
		return err
	}

	result, err := a.alerts.BulkClose(ctx, who, alerts.BulkCloseRequest{
		AlertIDs:   splitIDs(*ids),
		Resolution: *resolution,
		Rationale:  *rationale,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Closed %d alerts\n", result.ClosedCount)
	if len(result.FailedIDs) > 0 {
		fmt.Printf("Failed: %s\n", strings.Join(result.FailedIDs, ", "))
	}
	return nil
}

func (a *app) runDetectFP(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("detect-fp", flag.ExitOnError)
	ids := fs.String("ids", "", "Comma-separated alert UUIDs")
	output := fs.String("output", "text", "Output format: text or json")
	if err := fs.Parse(args); err != nil {
		return err
	}

	report, err := a.alerts.DetectFalsePositives(ctx, splitIDs(*ids))
	if err != nil {
		return err
	}
	if *output == "json" {
		return printJSON(report)
	}

	fmt.Printf("Analyzed %d alerts, %d likely false positives\n\n", report.TotalAnalyzed, len(report.Results))
	for _, r := range report.Results {
		fmt.Printf("[%s] %s\n", r.AlertShortID, r.Title)
		fmt.Printf("  Confidence: %.0f%%\n", r.Confidence*100)
		fmt.Printf("  Suggested resolution: %s\n", r.SuggestedResolution)
		fmt.Printf("  %s\n\n", r.Reasoning)
	}
	return nil
}

func (a *app) runNotes(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("notes", flag.ExitOnError)
	output := fs.String("output", "text", "Output format: text or json")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: amlctl notes <uuid>")
	}

	notes, err := a.investigation.Notes(ctx, fs.Arg(0))
	if err != nil {
		return err
	}
	if *output == "json" {
		return printJSON(notes)
	}
	if len(notes) == 0 {
		fmt.Println("No notes.")
		return nil
	}
	for _, note := range notes {
		fmt.Printf("%s  %s\n  %s\n\n", note.CreatedAt.Format("2006-01-02 15:04"), note.AnalystUsername, note.Content)
	}
	return nil
}

func (a *app) runNoteAdd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("note-add", flag.ExitOnError)
	content := fs.String("content", "", "Note text")
	analyst := fs.String("analyst", "", "Acting analyst username (or AML_ANALYST)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: amlctl note-add <uuid> --content TEXT")
	}

	who, err := analystOrEnv(*analyst)
	if err != nil {
		return err
	}

	note, err := a.investigation.AddNote(ctx, fs.Arg(0), who, *content)
	if err != nil {
		return err
	}
	fmt.Printf("Note %s added.\n", note.ID)
	return nil
}

func (a *app) runAudit(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("audit", flag.ExitOnError)
	output := fs.String("output", "text", "Output format: text or json")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: amlctl audit <uuid>")
	}

	entries, err := a.investigation.AuditTrail(ctx, fs.Arg(0))
	if err != nil {
		return err
	}
	if *output == "json" {
		return printJSON(entries)
	}
	for _, e := range entries {
		fmt.Printf("%s  %-20s %s", e.CreatedAt.Format("2006-01-02 15:04"), e.Action, e.PerformedBy)
		if e.Details != "" {
			fmt.Printf("  (%s)", e.Details)
		}
		fmt.Println()
	}
	return nil
}

func (a *app) runSimilar(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("similar", flag.ExitOnError)
	output := fs.String("output", "text", "Output format: text or json")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: amlctl similar <uuid>")
	}

	cases, err := a.investigation.SimilarCases(ctx, fs.Arg(0))
	if err != nil {
		return err
	}
	if *output == "json" {
		return printJSON(cases)
	}
	if len(cases) == 0 {
		fmt.Println("No similar cases.")
		return nil
	}
	for _, c := range cases {
		fmt.Printf("[%s] %s\n", c.AlertID, c.Title)
		fmt.Printf("  Similarity: %d%%, risk %d, %s", c.SimilarityScore, c.RiskScore, c.Status)
		if c.Resolution != "" {
			fmt.Printf(", resolved as %s", c.Resolution)
		}
		fmt.Println()
		if len(c.MatchingFactors) > 0 {
			fmt.Printf("  Matches on: %s\n", strings.Join(c.MatchingFactors, ", "))
		}
		fmt.Println()
	}
	return nil
}

func (a *app) runCasePDF(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("case-pdf", flag.ExitOnError)
	out := fs.String("out", "case-file.pdf", "Output file path")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: amlctl case-pdf <uuid> [--out FILE]")
	}

	data, err := a.investigation.CaseFilePDF(ctx, fs.Arg(0))
	if err != nil {
		return err
	}
	return writeFile(*out, data)
}

func (a *app) runSTRPDF(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("str-pdf", flag.ExitOnError)
	out := fs.String("out", "", "Output file (single alert) or directory (several)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("usage: amlctl str-pdf <uuid>... [--out PATH]")
	}

	if fs.NArg() == 1 {
		data, err := a.export.STRPDF(ctx, fs.Arg(0))
		if err != nil {
			return err
		}
		path := *out
		if path == "" {
			path = fs.Arg(0) + "-str.pdf"
		}
		return writeFile(path, data)
	}

	results, err := a.export.STRPDFs(ctx, fs.Args())
	if err != nil {
		return err
	}
	dir := *out
	if dir == "" {
		dir = "."
	}
	for id, data := range results {
		if err := writeFile(dir+string(os.PathSeparator)+id+"-str.pdf", data); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) runBulkExport(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("bulk-export", flag.ExitOnError)
	ids := fs.String("ids", "", "Comma-separated alert UUIDs")
	out := fs.String("out", "sar-export.zip", "Output file path")
	if err := fs.Parse(args); err != nil {
		return err
	}

	data, err := a.export.BulkSARZip(ctx, splitIDs(*ids))
	if err != nil {
		return err
	}
	return writeFile(*out, data)
}

func (a *app) runExportCSV(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("export-csv", flag.ExitOnError)
	out := fs.String("out", "analytics.csv", "Output file path")
	if err := fs.Parse(args); err != nil {
		return err
	}

	data, err := a.export.AnalyticsCSV(ctx)
	if err != nil {
		return err
	}
	return writeFile(*out, data)
}

// splitIDs parses a comma-separated ID list, trimming whitespace and dropping
// empty entries.
func splitIDs(raw string) []string {
	var ids []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			ids = append(ids, trimmed)
		}
	}
	return ids
}
