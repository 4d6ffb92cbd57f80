// Package main provides the amlctl CLI for working an AML alert queue from
// the terminal: login, queue listing with pagination, status transitions,
// investigation notes and document exports.
//
// Usage: amlctl <command> [flags]
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"amlsentinel/internal/apiclient"
	"amlsentinel/internal/infra/tokenstore"
	"amlsentinel/internal/observability/logging"
	"amlsentinel/internal/service/alerts"
	"amlsentinel/internal/service/auth"
	"amlsentinel/internal/service/export"
	"amlsentinel/internal/service/investigation"
)

const commandTimeout = 60 * time.Second

// app bundles the wired services every subcommand works against.
type app struct {
	alerts        *alerts.Service
	auth          *auth.Service
	export        *export.Service
	investigation *investigation.Service
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: amlctl <command> [flags]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Session:")
	fmt.Fprintln(os.Stderr, "  login        Authenticate and store the session token")
	fmt.Fprintln(os.Stderr, "  logout       Revoke the session token")
	fmt.Fprintln(os.Stderr, "  me           Show the current analyst")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Alert queue:")
	fmt.Fprintln(os.Stderr, "  alerts       List the alert queue with filters and pagination")
	fmt.Fprintln(os.Stderr, "  stats        Show queue statistics")
	fmt.Fprintln(os.Stderr, "  show         Show one alert by UUID or short ID")
	fmt.Fprintln(os.Stderr, "  set-status   Transition an alert's workflow status")
	fmt.Fprintln(os.Stderr, "  bulk-close   Close several alerts at once")
	fmt.Fprintln(os.Stderr, "  detect-fp    Run false positive detection on alerts")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Investigation:")
	fmt.Fprintln(os.Stderr, "  notes        List investigation notes for an alert")
	fmt.Fprintln(os.Stderr, "  note-add     Add an investigation note")
	fmt.Fprintln(os.Stderr, "  audit        Show the audit trail for an alert")
	fmt.Fprintln(os.Stderr, "  similar      Show similar past cases for an alert")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Exports:")
	fmt.Fprintln(os.Stderr, "  case-pdf     Download the case file PDF for an alert")
	fmt.Fprintln(os.Stderr, "  str-pdf      Download the STR PDF for one or more alerts")
	fmt.Fprintln(os.Stderr, "  bulk-export  Download a ZIP of SAR documents")
	fmt.Fprintln(os.Stderr, "  export-csv   Download the analytics CSV")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Environment:")
	fmt.Fprintln(os.Stderr, "  AML_API_BASE_URL   Backend base URL (default http://localhost:8000/api)")
	fmt.Fprintln(os.Stderr, "  AML_TOKEN_FILE     Session token path (default ~/.config/amlsentinel/token.json)")
	fmt.Fprintln(os.Stderr, "  AML_ANALYST        Default analyst username for write operations")
}

func main() {
	logger := logging.NewTextLogger()
	slog.SetDefault(logger)

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}
	command := os.Args[1]
	args := os.Args[2:]

	cfg := apiclient.LoadConfig()

	tokenPath, err := tokenstore.DefaultPath()
	if err != nil {
		fatalf("Resolve token path: %v", err)
	}
	store := tokenstore.New(tokenPath)

	client, err := apiclient.New(cfg, store)
	if err != nil {
		fatalf("Create API client: %v", err)
	}

	a := &app{
		alerts:        alerts.NewService(client),
		auth:          auth.NewService(client, store),
		export:        export.NewService(client),
		investigation: investigation.NewService(client),
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	switch command {
	case "login":
		err = a.runLogin(ctx, args)
	case "logout":
		err = a.runLogout(ctx, args)
	case "me":
		err = a.runMe(ctx, args)
	case "alerts":
		err = a.runAlerts(ctx, args)
	case "stats":
		err = a.runStats(ctx, args)
	case "show":
		err = a.runShow(ctx, args)
	case "set-status":
		err = a.runSetStatus(ctx, args)
	case "bulk-close":
		err = a.runBulkClose(ctx, args)
	case "detect-fp":
		err = a.runDetectFP(ctx, args)
	case "notes":
		err = a.runNotes(ctx, args)
	case "note-add":
		err = a.runNoteAdd(ctx, args)
	case "audit":
		err = a.runAudit(ctx, args)
	case "similar":
		err = a.runSimilar(ctx, args)
	case "case-pdf":
		err = a.runCasePDF(ctx, args)
	case "str-pdf":
		err = a.runSTRPDF(ctx, args)
	case "bulk-export":
		err = a.runBulkExport(ctx, args)
	case "export-csv":
		err = a.runExportCSV(ctx, args)
	case "help", "-h", "--help":
		usage()
		return
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		usage()
		os.Exit(1)
	}

	if err != nil {
		fatalf("%v", err)
	}
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// analystOrEnv resolves the analyst username for write operations: the flag
// wins, then AML_ANALYST.
func analystOrEnv(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if env := os.Getenv("AML_ANALYST"); env != "" {
		return env, nil
	}
	return "", fmt.Errorf("analyst username required, pass --analyst or set AML_ANALYST")
}

// writeFile writes downloaded bytes to path and reports where they went.
func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	fmt.Printf("Wrote %s (%d bytes)\n", path, len(data))
	return nil
}
