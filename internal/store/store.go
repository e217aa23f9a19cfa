// Package store provides an interface for inventory storage operations.
package store

// Shoe represents one inventory record.
type Shoe struct {
	Country  string
	Code     string
	Product  string
	Cost     int
	Quantity int
}

// ShoeValue pairs a shoe code with its total stock value (cost * quantity).
type ShoeValue struct {
	Code  string
	Value int
}

// InventoryStore is an interface for inventory storage operations.
// It abstracts the underlying data store, allowing for different implementations (e.g., in-memory, file-backed).
type InventoryStore interface {
	// Load populates the collection from persisted storage, replacing any
	// in-memory state. A missing backing file leaves the collection empty
	// and is not an error.
	Load() error

	// FindAll returns every shoe in insertion order.
	// Returns an empty slice if no shoes exist.
	FindAll() []Shoe

	// FindByCode retrieves the first shoe whose code matches, case-insensitively.
	// Returns ErrShoeNotFound if no shoe exists with the given code.
	FindByCode(code string) (*Shoe, error)

	// MinByQuantity returns the shoe with the smallest quantity; the first such
	// shoe wins on ties. Returns ErrEmptyInventory on an empty collection.
	MinByQuantity() (*Shoe, error)

	// MaxByQuantity returns the shoe with the largest quantity; the first such
	// shoe wins on ties. Returns ErrEmptyInventory on an empty collection.
	MaxByQuantity() (*Shoe, error)

	// Append persists one new shoe and reloads the collection from storage,
	// so memory always reflects exactly what the file holds.
	Append(shoe Shoe) error

	// RestockLowest adds delta to the quantity of the lowest-stock shoe and
	// rewrites persisted storage from the in-memory collection. Returns the
	// updated shoe, or ErrEmptyInventory on an empty collection.
	RestockLowest(delta int) (*Shoe, error)

	// TotalValues computes cost * quantity per shoe, in collection order.
	TotalValues() []ShoeValue
}
