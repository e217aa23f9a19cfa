package service

import (
	"errors"
	"testing"

	serrors "github.com/jdmaguire/shoestore/internal/errors"
	"github.com/jdmaguire/shoestore/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockInventoryStore is a mock implementation of the InventoryStore interface
type mockInventoryStore struct {
	shoes    []store.Shoe
	shoe     store.Shoe
	values   []store.ShoeValue
	error    error
	appended []store.Shoe
}

// Simulate loading from storage
func (m *mockInventoryStore) Load() error {
	return m.error
}

// Simulate listing all shoes
func (m *mockInventoryStore) FindAll() []store.Shoe {
	return m.shoes
}

// Simulate searching by code
func (m *mockInventoryStore) FindByCode(_ string) (*store.Shoe, error) {
	if m.error != nil {
		return nil, m.error
	}
	return &m.shoe, nil
}

// Simulate finding the lowest-stock shoe
func (m *mockInventoryStore) MinByQuantity() (*store.Shoe, error) {
	if m.error != nil {
		return nil, m.error
	}
	return &m.shoe, nil
}

// Simulate finding the highest-stock shoe
func (m *mockInventoryStore) MaxByQuantity() (*store.Shoe, error) {
	if m.error != nil {
		return nil, m.error
	}
	return &m.shoe, nil
}

// Simulate appending a new shoe
func (m *mockInventoryStore) Append(shoe store.Shoe) error {
	if m.error != nil {
		return m.error
	}
	m.appended = append(m.appended, shoe)
	return nil
}

// Simulate restocking the lowest-stock shoe
func (m *mockInventoryStore) RestockLowest(delta int) (*store.Shoe, error) {
	if m.error != nil {
		return nil, m.error
	}
	restocked := m.shoe
	restocked.Quantity += delta
	return &restocked, nil
}

// Simulate computing stock values
func (m *mockInventoryStore) TotalValues() []store.ShoeValue {
	return m.values
}

func Test_InventoryService_Capture(t *testing.T) {
	existing := store.Shoe{Country: "UK", Code: "SC001", Product: "Boot", Cost: 50, Quantity: 3}

	testCases := []struct {
		name        string
		mockStore   *mockInventoryStore
		dto         ShoeCreateDto
		expected    *store.Shoe
		expectError bool
		errorIs     error
	}{
		{
			name:      "Success - shoe captured",
			mockStore: &mockInventoryStore{shoes: []store.Shoe{existing}},
			dto:       ShoeCreateDto{Country: "DE", Code: "SC002", Product: "Sneaker", Cost: 70, Quantity: 8},
			expected:  &store.Shoe{Country: "DE", Code: "SC002", Product: "Sneaker", Cost: 70, Quantity: 8},
		},
		{
			name:        "Error - duplicate code",
			mockStore:   &mockInventoryStore{shoes: []store.Shoe{existing}},
			dto:         ShoeCreateDto{Country: "DE", Code: "SC001", Product: "Sneaker", Cost: 70, Quantity: 8},
			expectError: true,
			errorIs:     serrors.ErrDuplicateCode,
		},
		{
			name:        "Error - store append fails",
			mockStore:   &mockInventoryStore{error: errors.New("disk full")},
			dto:         ShoeCreateDto{Country: "DE", Code: "SC002", Product: "Sneaker", Cost: 70, Quantity: 8},
			expectError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			service := NewService(tc.mockStore)
			// when
			captured, err := service.Capture(tc.dto)
			// then
			if tc.expectError {
				require.Error(t, err)
				if tc.errorIs != nil {
					assert.ErrorIs(t, err, tc.errorIs)
					assert.Empty(t, tc.mockStore.appended)
				}
				assert.Nil(t, captured)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, captured)
			assert.Equal(t, []store.Shoe{*tc.expected}, tc.mockStore.appended)
		})
	}
}

func Test_InventoryService_Capture_Validation(t *testing.T) {
	testCases := []struct {
		name string
		dto  ShoeCreateDto
	}{
		{
			name: "Error - negative cost",
			dto:  ShoeCreateDto{Country: "UK", Code: "SC001", Product: "Boot", Cost: -1, Quantity: 3},
		},
		{
			name: "Error - negative quantity",
			dto:  ShoeCreateDto{Country: "UK", Code: "SC001", Product: "Boot", Cost: 50, Quantity: -3},
		},
		{
			name: "Error - missing code",
			dto:  ShoeCreateDto{Country: "UK", Product: "Boot", Cost: 50, Quantity: 3},
		},
		{
			name: "Error - missing country",
			dto:  ShoeCreateDto{Code: "SC001", Product: "Boot", Cost: 50, Quantity: 3},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			mockStore := &mockInventoryStore{}
			service := NewService(mockStore)
			// when
			captured, err := service.Capture(tc.dto)
			// then
			require.Error(t, err)
			assert.Nil(t, captured)
			assert.Empty(t, mockStore.appended)
		})
	}
}

func Test_InventoryService_Restock(t *testing.T) {
	lowest := store.Shoe{Country: "UK", Code: "SC001", Product: "Boot", Cost: 50, Quantity: 3}

	testCases := []struct {
		name        string
		mockStore   *mockInventoryStore
		delta       int
		expectedQty int
		expectError bool
		errorIs     error
	}{
		{
			name:        "Success - quantity increased by delta",
			mockStore:   &mockInventoryStore{shoe: lowest},
			delta:       7,
			expectedQty: 10,
		},
		{
			name:        "Success - zero delta is allowed",
			mockStore:   &mockInventoryStore{shoe: lowest},
			delta:       0,
			expectedQty: 3,
		},
		{
			name:        "Error - negative delta rejected before the store is touched",
			mockStore:   &mockInventoryStore{shoe: lowest},
			delta:       -5,
			expectError: true,
		},
		{
			name:        "Error - empty inventory",
			mockStore:   &mockInventoryStore{error: serrors.ErrEmptyInventory},
			delta:       7,
			expectError: true,
			errorIs:     serrors.ErrEmptyInventory,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			service := NewService(tc.mockStore)
			// when
			restocked, err := service.Restock(tc.delta)
			// then
			if tc.expectError {
				require.Error(t, err)
				if tc.errorIs != nil {
					assert.ErrorIs(t, err, tc.errorIs)
				}
				assert.Nil(t, restocked)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectedQty, restocked.Quantity)
		})
	}
}

func Test_InventoryService_Queries(t *testing.T) {
	shoes := []store.Shoe{
		{Country: "UK", Code: "SC001", Product: "Boot", Cost: 50, Quantity: 3},
		{Country: "UK", Code: "SC002", Product: "Shoe", Cost: 30, Quantity: 10},
	}
	values := []store.ShoeValue{{Code: "SC001", Value: 150}, {Code: "SC002", Value: 300}}

	// given
	service := NewService(&mockInventoryStore{shoes: shoes, shoe: shoes[0], values: values})
	// when / then
	assert.Equal(t, shoes, service.ViewAll())
	assert.Equal(t, values, service.ValuePerItem())

	found, err := service.Search("sc001")
	require.NoError(t, err)
	assert.Equal(t, &shoes[0], found)
}

func Test_InventoryService_Search_NotFound(t *testing.T) {
	// given
	service := NewService(&mockInventoryStore{error: serrors.ErrShoeNotFound})
	// when
	found, err := service.Search("SC999")
	// then
	assert.ErrorIs(t, err, serrors.ErrShoeNotFound)
	assert.Nil(t, found)
}
