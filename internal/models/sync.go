package models

// SyncState tracks whether the cached document matches durable storage.
type SyncState string

const (
	SyncClean   SyncState = "clean"
	SyncPending SyncState = "pending"
	SyncFailed  SyncState = "failed"
)

// Direction is the way an adjacent-swap reorder moves an entry.
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

func (d Direction) Valid() bool {
	return d == DirectionUp || d == DirectionDown
}
