package social

// Page size ceilings for a single sync pass. A pass fetches exactly one page.
const (
	ReviewSyncPageSize = 20
	PostSyncPageSize   = 12
)

// Outcome reports the result of one sync pass. It is returned to the caller
// and never persisted.
type Outcome struct {
	// Success is false only for configuration problems or an unexpected
	// failure before the fetch; a fetch that yields nothing is still a
	// successful pass
	Success bool `json:"success"`
	// Synced counts the items that upserted cleanly
	Synced int `json:"synced"`
	// Message carries the failure reason, or an advisory note such as
	// "no items found" on an empty pass
	Message string `json:"error,omitempty"`
}

// Failure builds a failed outcome with the given reason
func Failure(message string) Outcome {
	return Outcome{Success: false, Synced: 0, Message: message}
}
