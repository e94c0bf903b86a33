package dto

// SyncOptions controls a rate sync run.
type SyncOptions struct {
	// Admin bypasses the resync cooldown and trigger quota.
	Admin bool
	// ClientKey identifies the caller for trigger rate limiting.
	ClientKey string
}

// SyncResult summarizes a completed sync run.
type SyncResult struct {
	SyncedCount  int    `json:"syncedCount"`
	SkippedCount int    `json:"skippedCount"`
	FeedUpdated  string `json:"feedUpdatedAt,omitempty"`
}
