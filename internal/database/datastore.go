package database

// DataStore is the unified interface for all data operations.
// Consumers that only need to-do items can depend on TodoRepository instead.
type DataStore interface {
	TodoRepository
}
