// Package models defines the server-side records of the streaming ledger.
package models

// Principal is an opaque caller identity supplied by the identity
// collaborator. Only equality is meaningful.
type Principal string

type StreamStatus string

const (
	StreamActive    StreamStatus = "active"
	StreamCancelled StreamStatus = "cancelled"
	StreamCompleted StreamStatus = "completed"
)

// Terminal reports whether no further transition may leave s.
func (s StreamStatus) Terminal() bool {
	return s == StreamCancelled || s == StreamCompleted
}

// Stream is a time-bounded, rate-based transfer commitment from Sender to
// Recipient. Amounts are in sats, times in seconds since the epoch.
//
// Invariants: TotalReleased <= TotalLocked and Buffer <= TotalReleased.
type Stream struct {
	ID         uint64       `json:"id"`
	Sender     Principal    `json:"sender"`
	Recipient  Principal    `json:"recipient"`
	SatsPerSec uint64       `json:"sats_per_sec"`
	StartTime  uint64       `json:"start_time"`
	EndTime    uint64       `json:"end_time"`
	Status     StreamStatus `json:"status"`

	// TotalLocked grows only through top-ups.
	TotalLocked uint64 `json:"total_locked"`
	// TotalReleased grows only through the accrual sweep.
	TotalReleased   uint64 `json:"total_released"`
	LastReleaseTime uint64 `json:"last_release_time"`

	// Buffer is released value not yet claimed or reclaimed.
	Buffer uint64 `json:"buffer"`
	// LastClaimTime anchors the sender's reclaim timeout.
	LastClaimTime uint64 `json:"last_claim_time"`
}

// Unused is the locked value that has not been released yet.
func (s *Stream) Unused() uint64 {
	return SatSub(s.TotalLocked, s.TotalReleased)
}

// CancelResult is what a cancellation owes. Nothing is moved by the ledger;
// a custody collaborator performs the transfer.
type CancelResult struct {
	Refund uint64 `json:"refund"`
	Fee    uint64 `json:"fee"`
}
