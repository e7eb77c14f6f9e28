package models

// Snapshot is a consistent copy of the whole ledger state.
type Snapshot struct {
	Streams        []Stream
	Templates      []StreamTemplate
	NextStreamID   uint64
	NextTemplateID uint64
}

// UserStats summarises the streams a principal takes part in.
type UserStats struct {
	StreamsSent           uint64 `json:"streams_sent"`
	StreamsReceived       uint64 `json:"streams_received"`
	ActiveSent            uint64 `json:"active_sent"`
	ActiveReceived        uint64 `json:"active_received"`
	TotalLockedOutgoing   uint64 `json:"total_locked_outgoing"`
	TotalReleasedOutgoing uint64 `json:"total_released_outgoing"`
	ClaimableIncoming     uint64 `json:"claimable_incoming"`
}

// GlobalStats summarises the whole ledger.
type GlobalStats struct {
	TotalStreams   uint64 `json:"total_streams"`
	Active         uint64 `json:"active"`
	Completed      uint64 `json:"completed"`
	Cancelled      uint64 `json:"cancelled"`
	TotalLocked    uint64 `json:"total_locked"`
	TotalReleased  uint64 `json:"total_released"`
	TotalBuffered  uint64 `json:"total_buffered"`
	TotalTemplates uint64 `json:"total_templates"`
}
