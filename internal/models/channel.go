package models

// ChannelStatistics holds the public aggregate counters of a channel.
type ChannelStatistics struct {
	Subscribers uint64
	Views       uint64
	Videos      uint64
}

// Channel is the per-request view of a resolved channel: its public
// counters plus the identifier of the uploads playlist used for the
// video history fetch.
type Channel struct {
	ID                string
	Statistics        ChannelStatistics
	UploadsPlaylistID string
}

// GuidelinesStatus is the (approximated) community guidelines standing
// of a channel. The public API exposes no strike data, so IsGood only
// reflects whether the channel record is reachable at all.
type GuidelinesStatus struct {
	IsGood  bool   `json:"isGood"`
	Message string `json:"message"`
}
