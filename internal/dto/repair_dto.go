package dto

// RepairOptions controls a snapshot corruption scan.
type RepairOptions struct {
	// DryRun reports what would change without persisting anything.
	// This is the default mode; writes require explicitly disabling it.
	DryRun bool
	// CurrencyCode limits the scan to one currency when non-empty.
	CurrencyCode string
}

// RepairReport summarizes a snapshot corruption scan.
type RepairReport struct {
	Scanned int      `json:"scanned"`
	Flagged int      `json:"flagged"`
	Fixed   int      `json:"fixed"`
	Skipped int      `json:"skipped"`
	Lines   []string `json:"lines"`
}
