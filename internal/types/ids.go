package types

// ID types give semantic meaning to the integers passed between layers.

// TodoID identifies a stored to-do item
type TodoID int

// MigrationNumber identifies a schema migration, ordered ascending
type MigrationNumber int

// ToInt converts back to int for database/sql arguments
func (id TodoID) ToInt() int {
	return int(id)
}

// Valid reports whether the ID could refer to a stored row
func (id TodoID) Valid() bool {
	return id > 0
}

func (n MigrationNumber) ToInt() int {
	return int(n)
}

// TodoIDFromInt creates a TodoID from an int value
func TodoIDFromInt(i int) TodoID {
	return TodoID(i)
}
