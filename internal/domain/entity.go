package domain

// Entity is implemented by every record kept in a collection. WithID returns a
// copy of the record carrying the given identifier.
type Entity[T any] interface {
	RecordID() int
	WithID(id int) T
}
