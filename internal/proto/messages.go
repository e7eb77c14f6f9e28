// Package proto defines the wire messages and service descriptor of
// satstream.v1.StreamService. Messages travel as JSON through the codec
// registered in codec.go.
package proto

type Stream struct {
	Id              uint64 `json:"id"`
	Sender          string `json:"sender"`
	Recipient       string `json:"recipient"`
	SatsPerSec      uint64 `json:"sats_per_sec"`
	StartTime       uint64 `json:"start_time"`
	EndTime         uint64 `json:"end_time"`
	Status          string `json:"status"`
	TotalLocked     uint64 `json:"total_locked"`
	TotalReleased   uint64 `json:"total_released"`
	LastReleaseTime uint64 `json:"last_release_time"`
	Buffer          uint64 `json:"buffer"`
	LastClaimTime   uint64 `json:"last_claim_time"`
}

type StreamTemplate struct {
	Id           uint64 `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	DurationSecs uint64 `json:"duration_secs"`
	SatsPerSec   uint64 `json:"sats_per_sec"`
	Creator      string `json:"creator"`
	CreatedAt    uint64 `json:"created_at"`
	UsageCount   uint64 `json:"usage_count"`
}

type UserStats struct {
	StreamsSent           uint64 `json:"streams_sent"`
	StreamsReceived       uint64 `json:"streams_received"`
	ActiveSent            uint64 `json:"active_sent"`
	ActiveReceived        uint64 `json:"active_received"`
	TotalLockedOutgoing   uint64 `json:"total_locked_outgoing"`
	TotalReleasedOutgoing uint64 `json:"total_released_outgoing"`
	ClaimableIncoming     uint64 `json:"claimable_incoming"`
}

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

type PingRequest struct{}

type PingResponse struct {
	Status string `json:"status"`
}

func (x *PingResponse) GetStatus() string {
	if x == nil {
		return ""
	}
	return x.Status
}

type CreateStreamRequest struct {
	Recipient    string `json:"recipient"`
	SatsPerSec   uint64 `json:"sats_per_sec"`
	DurationSecs uint64 `json:"duration_secs"`
	TotalLocked  uint64 `json:"total_locked"`
}

type CreateStreamResponse struct {
	StreamId uint64 `json:"stream_id"`
}

type ClaimStreamRequest struct {
	StreamId uint64 `json:"stream_id"`
}

type ClaimStreamResponse struct {
	Amount uint64 `json:"amount"`
}

type TopUpStreamRequest struct {
	StreamId uint64 `json:"stream_id"`
	Amount   uint64 `json:"amount"`
}

type TopUpStreamResponse struct{}

type CancelStreamRequest struct {
	StreamId uint64 `json:"stream_id"`
}

type CancelStreamResponse struct {
	Refund uint64 `json:"refund"`
	Fee    uint64 `json:"fee"`
}

type ReclaimUnclaimedRequest struct {
	StreamId uint64 `json:"stream_id"`
}

type ReclaimUnclaimedResponse struct {
	Amount uint64 `json:"amount"`
}

type GetStreamRequest struct {
	StreamId uint64 `json:"stream_id"`
}

// GetStreamResponse carries a nil Stream when the id is unknown.
type GetStreamResponse struct {
	Stream *Stream `json:"stream,omitempty"`
}

func (x *GetStreamResponse) GetStream() *Stream {
	if x == nil {
		return nil
	}
	return x.Stream
}

type ListStreamsForUserRequest struct{}

type ListStreamsForUserResponse struct {
	Streams []*Stream `json:"streams"`
}

type CreateTemplateRequest struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	DurationSecs uint64 `json:"duration_secs"`
	SatsPerSec   uint64 `json:"sats_per_sec"`
}

type CreateTemplateResponse struct {
	TemplateId uint64 `json:"template_id"`
}

type CreateStreamFromTemplateRequest struct {
	TemplateId  uint64 `json:"template_id"`
	Recipient   string `json:"recipient"`
	TotalLocked uint64 `json:"total_locked"`
}

type CreateStreamFromTemplateResponse struct {
	StreamId uint64 `json:"stream_id"`
}

type ListTemplatesRequest struct{}

type ListTemplatesResponse struct {
	Templates []*StreamTemplate `json:"templates"`
}

type GetUserStatsRequest struct{}

type GetUserStatsResponse struct {
	Stats *UserStats `json:"stats"`
}

type GetGlobalStatsRequest struct{}

type GetGlobalStatsResponse struct {
	Stats *GlobalStats `json:"stats"`
}

type ExportStatementRequest struct{}

type ExportStatementResponse struct {
	Key string `json:"key"`
	Url string `json:"url"`
}
