package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"amlsentinel/internal/domain/entity"
	"amlsentinel/internal/pagination"
)

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func renderAlertTable(list []entity.Alert) {
	if len(list) == 0 {
		fmt.Println("No alerts match the current filters.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tRISK\tSTATUS\tTYPOLOGY\tANALYST\tTITLE")
	for _, a := range list {
		analyst := a.AssignedAnalyst
		if analyst == "" {
			analyst = "-"
		}
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\t%s\n",
			a.AlertID, a.RiskScore, a.Status, a.Typology, analyst, a.Title)
	}
	w.Flush()
}

func renderAlertDetail(a *entity.Alert) {
	fmt.Printf("[%s] %s\n", a.AlertID, a.Title)
	fmt.Printf("UUID:        %s\n", a.ID)
	fmt.Printf("Customer:    %s\n", a.CustomerID)
	fmt.Printf("Typology:    %s\n", a.Typology)
	fmt.Printf("Risk score:  %d\n", a.RiskScore)
	fmt.Printf("Status:      %s\n", a.Status)
	fmt.Printf("Triggered:   %s\n", a.TriggeredDate)
	if a.AssignedAnalyst != "" {
		fmt.Printf("Analyst:     %s\n", a.AssignedAnalyst)
	}
	if a.Resolution != "" {
		fmt.Printf("Resolution:  %s\n", a.Resolution)
	}
	if a.ClosedAt != "" {
		fmt.Printf("Closed at:   %s\n", a.ClosedAt)
	}
	fmt.Printf("Flagged:     $%.2f across %d transactions\n", a.TotalFlaggedAmount, a.FlaggedTransactionCount)
	if a.Description != "" {
		fmt.Printf("\n%s\n", a.Description)
	}
}

// renderPagination prints the footer line for a queue page, e.g.
//
//	Showing 41-60 of 390 alerts
//	Pages: 1 … 2 [3] 4 … 20
func renderPagination(state pagination.State) {
	fmt.Println()
	if state.Total == 0 {
		fmt.Println("Showing 0 alerts")
		return
	}
	fmt.Printf("Showing %d-%d of %d alerts\n", state.RangeStart, state.RangeEnd, state.Total)
	fmt.Printf("Pages: %s\n", formatWindow(state.Window, state.CurrentPage))
}

// formatWindow renders the page window with the current page bracketed and
// collapsed gaps shown as an ellipsis.
func formatWindow(window []int, current int) string {
	parts := make([]string, 0, len(window))
	for _, page := range window {
		switch {
		case page == pagination.Ellipsis:
			parts = append(parts, "…")
		case page == current:
			parts = append(parts, "["+strconv.Itoa(page)+"]")
		default:
			parts = append(parts, strconv.Itoa(page))
		}
	}
	return strings.Join(parts, " ")
}
