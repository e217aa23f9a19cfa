package store

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	serrors "github.com/jdmaguire/shoestore/internal/errors"
	"github.com/kjk/common/atomicfile"
)

// Header is the first line of the backing file. It is written on file
// creation and skipped on every load.
const Header = "Country,Code,Product,Cost,Quantity"

const fieldCount = 5

var _ InventoryStore = (*FileStore)(nil)

// FileStore implements InventoryStore backed by a flat comma-delimited file.
type FileStore struct {
	path   string
	logger *slog.Logger
	shoes  []Shoe
}

// NewFileStore creates a new instance of InventoryStore backed by the file at path.
// Call Load before using it.
func NewFileStore(path string, logger *slog.Logger) *FileStore {
	return &FileStore{
		path:   path,
		logger: logger.With("component", "store"),
	}
}

// Load parses the backing file into memory. The header line is always
// skipped. Lines that do not split into exactly 5 fields, or whose cost or
// quantity is not an integer, are logged with their line number and skipped;
// loading continues. A missing file yields an empty collection, not an error.
func (s *FileStore) Load() error {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Warn("inventory file not found, starting with empty inventory", "path", s.path)
			s.shoes = nil
			return nil
		}
		return fmt.Errorf("failed to open inventory file: %w", err)
	}
	defer f.Close()

	shoes := make([]Shoe, 0)
	scanner := bufio.NewScanner(f)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		if lineNum == 1 {
			// header
			continue
		}
		line := strings.TrimRight(scanner.Text(), "\r\n")
		shoe, ok := s.parseLine(lineNum, line)
		if !ok {
			continue
		}
		shoes = append(shoes, shoe)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read inventory file: %w", err)
	}

	s.shoes = shoes
	s.logger.Debug("inventory loaded", "path", s.path, "count", len(shoes))
	return nil
}

// parseLine turns one data line into a Shoe. Invalid lines are reported and
// rejected without stopping the load.
func (s *FileStore) parseLine(lineNum int, line string) (Shoe, bool) {
	parts := strings.Split(line, ",")
	if len(parts) != fieldCount {
		s.logger.Warn("skipped malformed line", "line", lineNum, "content", line)
		return Shoe{}, false
	}
	cost, err := strconv.Atoi(strings.TrimSpace(parts[3]))
	if err != nil {
		s.logger.Warn("invalid number format in line", "line", lineNum, "content", line)
		return Shoe{}, false
	}
	quantity, err := strconv.Atoi(strings.TrimSpace(parts[4]))
	if err != nil {
		s.logger.Warn("invalid number format in line", "line", lineNum, "content", line)
		return Shoe{}, false
	}
	return Shoe{
		Country:  parts[0],
		Code:     parts[1],
		Product:  parts[2],
		Cost:     cost,
		Quantity: quantity,
	}, true
}

// FindAll returns every shoe in insertion order.
func (s *FileStore) FindAll() []Shoe {
	list := make([]Shoe, len(s.shoes))
	copy(list, s.shoes)
	return list
}

// FindByCode retrieves the first shoe whose code matches, case-insensitively.
// Returns ErrShoeNotFound if no shoe exists with the given code.
func (s *FileStore) FindByCode(code string) (*Shoe, error) {
	for _, shoe := range s.shoes {
		if strings.EqualFold(shoe.Code, code) {
			found := shoe
			return &found, nil
		}
	}
	return nil, serrors.ErrShoeNotFound
}

// MinByQuantity returns the shoe with the smallest quantity, first match on ties.
func (s *FileStore) MinByQuantity() (*Shoe, error) {
	idx, err := s.minIndex()
	if err != nil {
		return nil, err
	}
	found := s.shoes[idx]
	return &found, nil
}

// MaxByQuantity returns the shoe with the largest quantity, first match on ties.
func (s *FileStore) MaxByQuantity() (*Shoe, error) {
	if len(s.shoes) == 0 {
		return nil, serrors.ErrEmptyInventory
	}
	idx := 0
	for i, shoe := range s.shoes {
		if shoe.Quantity > s.shoes[idx].Quantity {
			idx = i
		}
	}
	found := s.shoes[idx]
	return &found, nil
}

// Append persists one new shoe and reloads the collection from storage.
// The file is created with a header line if it does not exist yet.
func (s *FileStore) Append(shoe Shoe) error {
	_, statErr := os.Stat(s.path)
	newFile := os.IsNotExist(statErr)

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open inventory file for append: %w", err)
	}
	defer f.Close()

	var b strings.Builder
	if newFile {
		b.WriteString(Header)
		b.WriteString("\n")
	}
	b.WriteString(serializeShoe(shoe))
	b.WriteString("\n")
	if _, err := f.WriteString(b.String()); err != nil {
		return fmt.Errorf("failed to append shoe: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close inventory file: %w", err)
	}

	// The file is authoritative: reload rather than mutate memory directly.
	return s.Load()
}

// RestockLowest adds delta to the quantity of the lowest-stock shoe and
// rewrites the whole file from memory. The rewrite is atomic (temp file +
// rename), so an interrupted write cannot leave a partial file behind.
func (s *FileStore) RestockLowest(delta int) (*Shoe, error) {
	idx, err := s.minIndex()
	if err != nil {
		return nil, err
	}
	s.shoes[idx].Quantity += delta

	if err := s.rewrite(); err != nil {
		// roll back the in-memory change so memory and file stay in step
		s.shoes[idx].Quantity -= delta
		return nil, err
	}

	updated := s.shoes[idx]
	s.logger.Info("restocked shoe", "code", updated.Code, "quantity", updated.Quantity)
	return &updated, nil
}

// TotalValues computes cost * quantity per shoe, in collection order.
func (s *FileStore) TotalValues() []ShoeValue {
	values := make([]ShoeValue, 0, len(s.shoes))
	for _, shoe := range s.shoes {
		values = append(values, ShoeValue{Code: shoe.Code, Value: shoe.Cost * shoe.Quantity})
	}
	return values
}

func (s *FileStore) minIndex() (int, error) {
	if len(s.shoes) == 0 {
		return 0, serrors.ErrEmptyInventory
	}
	idx := 0
	for i, shoe := range s.shoes {
		if shoe.Quantity < s.shoes[idx].Quantity {
			idx = i
		}
	}
	return idx, nil
}

// rewrite replaces the backing file with header + every shoe in memory order.
func (s *FileStore) rewrite() error {
	w, err := atomicfile.New(s.path)
	if err != nil {
		return fmt.Errorf("failed to open inventory file for rewrite: %w", err)
	}
	defer w.Close()

	var b strings.Builder
	b.WriteString(Header)
	b.WriteString("\n")
	for _, shoe := range s.shoes {
		b.WriteString(serializeShoe(shoe))
		b.WriteString("\n")
	}
	if _, err := w.Write([]byte(b.String())); err != nil {
		return fmt.Errorf("failed to rewrite inventory file: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to finalize inventory file rewrite: %w", err)
	}
	return nil
}

func serializeShoe(shoe Shoe) string {
	return fmt.Sprintf("%s,%s,%s,%d,%d", shoe.Country, shoe.Code, shoe.Product, shoe.Cost, shoe.Quantity)
}
