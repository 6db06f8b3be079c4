package main

import (
	"strconv"

	"filmbox/internal/catalog"
)

const placeholder = "N/A"

var recordHeaders = []string{"ID", "Film Name", "Director", "Year", "Category", "Runtime"}

var recordAligns = []columnAlignment{alignRight, alignLeft, alignLeft, alignRight, alignLeft, alignRight}

func recordRows(records []catalog.Record) [][]string {
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		rows = append(rows, []string{
			strconv.FormatInt(rec.ID, 10),
			displayOr(rec.Name, placeholder),
			displayOr(rec.Director, placeholder),
			displayOr(rec.Year, placeholder),
			displayOr(rec.Category, placeholder),
			runtimeDisplay(rec.Runtime),
		})
	}
	return rows
}

// displayOr falls back to a placeholder for absent values. Alias keys
// were already folded into the canonical fields during decoding.
func displayOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func runtimeDisplay(minutes int) string {
	if minutes <= 0 {
		return ""
	}
	return strconv.Itoa(minutes) + " min"
}
