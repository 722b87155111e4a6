package models

import "time"

// VideoRecord is one video's contribution to the watch-hours estimate.
// Duration stays in the API's ISO-8601 form until estimation.
type VideoRecord struct {
	ID          string
	Views       uint64
	Duration    string
	PublishedAt time.Time
}

// PlaylistItem is one entry of an uploads playlist page.
type PlaylistItem struct {
	VideoID     string
	PublishedAt time.Time
}

// PlaylistPage is a single page of an uploads playlist listing.
// NextPageToken is empty on the last page.
type PlaylistPage struct {
	Items         []PlaylistItem
	NextPageToken string
}

// VideoHistory is the outcome of the bounded history fetch. Degraded
// distinguishes "no data because a fetch failed" from "legitimately no
// uploads in the window" so callers can tell a degraded estimate from a
// genuinely inactive channel.
type VideoHistory struct {
	Videos   []VideoRecord
	Degraded bool
}
