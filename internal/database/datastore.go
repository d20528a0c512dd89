package database

// DataStore is the data access surface the services depend on.
// It is kept as its own interface so the table service can be tested against fakes.
type DataStore interface {
	TableRepository
}
