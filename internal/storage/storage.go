package storage

// Storage combines persistence for all three record kinds.
// The implementation exclusively owns the underlying database file:
// no other component opens it directly.
type Storage interface {
	CardStorage
	SpreadsheetStorage
	MediaStorage
}
