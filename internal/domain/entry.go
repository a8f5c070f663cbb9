package domain

import "time"

// DefaultIcon is used when a visitor submits no icon choice.
const DefaultIcon = "ico1.png"

type EntryId = int64

// Entry is one guestbook message.
// Email is unique across all entries; the store enforces it.
type Entry struct {
	Id      EntryId
	Name    string
	Email   string
	Message string
	Icon    string
	Created time.Time // UTC, set at insert
}
