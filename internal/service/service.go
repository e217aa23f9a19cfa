// Package service provides the implementation of inventory business logic.
package service

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	serrors "github.com/jdmaguire/shoestore/internal/errors"
	"github.com/jdmaguire/shoestore/internal/store"
)

// InventoryService defines the methods for managing the shoe inventory.
// It abstracts the underlying business logic and data access.
type InventoryService interface {
	// ViewAll returns every shoe in collection order.
	ViewAll() []store.Shoe

	// Search retrieves the first shoe matching the code, case-insensitively.
	// Returns ErrShoeNotFound if no shoe exists with the given code.
	Search(code string) (*store.Shoe, error)

	// LowestQuantity returns the shoe with the least stock.
	// Returns ErrEmptyInventory on an empty collection.
	LowestQuantity() (*store.Shoe, error)

	// HighestQuantity returns the shoe with the most stock.
	// Returns ErrEmptyInventory on an empty collection.
	HighestQuantity() (*store.Shoe, error)

	// ValuePerItem computes cost * quantity per shoe, in collection order.
	ValuePerItem() []store.ShoeValue

	// Capture validates and persists a new shoe.
	// Returns ErrDuplicateCode if a shoe with the same code already exists.
	Capture(dto ShoeCreateDto) (*store.Shoe, error)

	// Restock adds a non-negative delta to the quantity of the lowest-stock
	// shoe and persists the result.
	Restock(delta int) (*store.Shoe, error)
}

// ShoeCreateDto carries the user-supplied fields for a new shoe.
type ShoeCreateDto struct {
	Country  string `validate:"required"`
	Code     string `validate:"required"`
	Product  string `validate:"required"`
	Cost     int    `validate:"min=0"`
	Quantity int    `validate:"min=0"`
}

// RestockDto carries the user-supplied restock amount.
type RestockDto struct {
	Amount int `validate:"min=0"`
}

type inventoryService struct {
	store    store.InventoryStore
	validate *validator.Validate
}

var _ InventoryService = (*inventoryService)(nil)

// NewService creates a new InventoryService backed by the given store.
func NewService(s store.InventoryStore) InventoryService {
	return &inventoryService{
		store:    s,
		validate: validator.New(),
	}
}

func (s *inventoryService) ViewAll() []store.Shoe {
	return s.store.FindAll()
}

func (s *inventoryService) Search(code string) (*store.Shoe, error) {
	return s.store.FindByCode(code)
}

func (s *inventoryService) LowestQuantity() (*store.Shoe, error) {
	return s.store.MinByQuantity()
}

func (s *inventoryService) HighestQuantity() (*store.Shoe, error) {
	return s.store.MaxByQuantity()
}

func (s *inventoryService) ValuePerItem() []store.ShoeValue {
	return s.store.TotalValues()
}

// Capture validates the DTO, rejects duplicate codes and appends the shoe to
// the store. Code uniqueness is checked here, case-sensitively; the store
// itself never enforces it.
func (s *inventoryService) Capture(dto ShoeCreateDto) (*store.Shoe, error) {
	if err := s.validate.Struct(dto); err != nil {
		return nil, fmt.Errorf("invalid shoe: %w", err)
	}
	for _, existing := range s.store.FindAll() {
		if existing.Code == dto.Code {
			return nil, serrors.ErrDuplicateCode
		}
	}
	shoe := store.Shoe{
		Country:  dto.Country,
		Code:     dto.Code,
		Product:  dto.Product,
		Cost:     dto.Cost,
		Quantity: dto.Quantity,
	}
	if err := s.store.Append(shoe); err != nil {
		return nil, fmt.Errorf("failed to capture shoe: %w", err)
	}
	return &shoe, nil
}

func (s *inventoryService) Restock(delta int) (*store.Shoe, error) {
	if err := s.validate.Struct(RestockDto{Amount: delta}); err != nil {
		return nil, fmt.Errorf("invalid restock amount: %w", err)
	}
	return s.store.RestockLowest(delta)
}
