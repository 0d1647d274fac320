// pkg/api/report_v1.go
package api

// ReportV1 is the stable JSON schema for run summaries.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type ReportV1 struct {
	Reads              int64   `json:"reads"`
	Pairs              int64   `json:"pairs,omitempty"`
	ReadsWithAdapters  int64   `json:"reads_with_adapters"`
	BasepairsProcessed int64   `json:"bp_processed"`
	BasepairsWritten   int64   `json:"bp_written"`
	ElapsedSeconds     float64 `json:"elapsed_seconds"`
}
