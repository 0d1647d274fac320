// internal/report/report.go

// Package report renders the post-run trimming summary.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/fatih/color"

	"adaptrim/internal/pipeline"
	"adaptrim/pkg/api"
)

// Print writes a human-readable summary of one trimming run to w.
func Print(w io.Writer, totals pipeline.Totals, elapsed time.Duration) {
	fmt.Fprintf(w, "\nTotal reads: %s\n", Comma(totals.Reads))
	if totals.Pairs > 0 {
		fmt.Fprintf(w, "Read pairs: %s\n", Comma(totals.Pairs))
	}
	fmt.Fprintf(w, "Reads with adapters: %s\n", Comma(totals.WithAdapter))

	pct := 0.0
	if totals.Reads > 0 {
		pct = 100 * float64(totals.WithAdapter) / float64(totals.Reads)
	}
	green := color.New(color.FgHiGreen)
	green.Fprintf(w, "Percentage of reads with adapters: %.2f%%\n", pct)

	magenta := color.New(color.FgHiMagenta)
	magenta.Fprintf(w, "\nTotal basepairs processed: %s\n", Comma(totals.BasesIn))
	magenta.Fprintf(w, "Total basepairs written: %s\n", Comma(totals.BasesOut))
	fmt.Fprintf(w, "Elapsed time: %.2fs\n", elapsed.Seconds())
}

// PrintJSON writes the summary as one api.ReportV1 JSON object.
func PrintJSON(w io.Writer, totals pipeline.Totals, elapsed time.Duration) error {
	rep := api.ReportV1{
		Reads:              totals.Reads,
		Pairs:              totals.Pairs,
		ReadsWithAdapters:  totals.WithAdapter,
		BasepairsProcessed: totals.BasesIn,
		BasepairsWritten:   totals.BasesOut,
		ElapsedSeconds:     elapsed.Seconds(),
	}
	enc := json.NewEncoder(w)
	return enc.Encode(rep)
}

// Comma formats an integer with thousands separators.
func Comma(value int64) string {
	str := strconv.FormatInt(value, 10)
	if value < 0 {
		return "-" + Comma(-value)
	}
	result := ""
	count := 0
	for i := len(str) - 1; i >= 0; i-- {
		if count > 0 && count%3 == 0 {
			result = "," + result
		}
		result = string(str[i]) + result
		count++
	}
	return result
}
