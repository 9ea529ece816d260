// Package textfile persists the inventory as a flat comma-delimited file,
// one item per line: id,name,quantity,price.
package textfile

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"stockroom/pkg/inventory"
	"stockroom/pkg/logging"
)

const fieldCount = 4

// Repository reads and writes the inventory file at a fixed path.
type Repository struct {
	path   string
	logger *zap.Logger
}

// NewRepository binds the repository to path. A nil logger disables diagnostics.
func NewRepository(path string, logger *zap.Logger) *Repository {
	return &Repository{path: path, logger: logging.For(logger, "textfile")}
}

// Path returns the file the repository works on.
func (r *Repository) Path() string {
	return r.path
}

// Load reads every well-formed record. found is false when the file does not
// exist, which is not an error. Lines with the wrong number of fields are
// skipped; lines whose numbers do not parse are skipped with a warning.
func (r *Repository) Load() (items []inventory.Item, found bool, err error) {
	file, err := os.Open(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to open inventory file: %w", err)
	}
	defer file.Close()

	items, err = r.decode(file)
	if err != nil {
		return nil, true, fmt.Errorf("failed to read inventory file %s: %w", r.path, err)
	}
	r.logger.Debug("inventory loaded", zap.String("path", r.path), zap.Int("items", len(items)))
	return items, true, nil
}

// maxLineSize bounds a single record line.
const maxLineSize = 1 << 20

// decode parses one physical line at a time so a quoting error in one record
// can never swallow the lines after it.
func (r *Repository) decode(src io.Reader) ([]inventory.Item, error) {
	scanner := bufio.NewScanner(src)
	scanner.Buffer(make([]byte, 0, 4096), maxLineSize)

	var items []inventory.Item
	for line := 1; scanner.Scan(); line++ {
		text := scanner.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}

		record, err := splitLine(text)
		if err != nil {
			r.logger.Warn("skipping unreadable line", zap.Int("line", line), zap.Error(err))
			continue
		}
		if len(record) != fieldCount {
			r.logger.Debug("skipping line with wrong field count", zap.Int("line", line), zap.Int("fields", len(record)))
			continue
		}

		item, err := parseRecord(record)
		if err != nil {
			r.logger.Warn("skipping malformed line", zap.Int("line", line), zap.Error(err))
			continue
		}
		items = append(items, item)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// splitLine decodes a single line. Quotes must be balanced within the line.
func splitLine(line string) ([]string, error) {
	reader := csv.NewReader(strings.NewReader(line))
	reader.FieldsPerRecord = -1
	// Older files were written with ", " between fields.
	reader.TrimLeadingSpace = true

	record, err := reader.Read()
	if err != nil {
		return nil, err
	}
	if _, err := reader.Read(); err != io.EOF {
		return nil, errors.New("unterminated quoted field")
	}
	return record, nil
}

func parseRecord(record []string) (inventory.Item, error) {
	quantity, err := strconv.Atoi(strings.TrimSpace(record[2]))
	if err != nil {
		return inventory.Item{}, fmt.Errorf("invalid quantity %q: %w", record[2], err)
	}
	price, err := strconv.ParseFloat(strings.TrimSpace(record[3]), 64)
	if err != nil {
		return inventory.Item{}, fmt.Errorf("invalid price %q: %w", record[3], err)
	}
	return inventory.Item{
		ID:       strings.TrimSpace(record[0]),
		Name:     strings.TrimSpace(record[1]),
		Quantity: quantity,
		Price:    price,
	}, nil
}

// Export overwrites the file with items, price fixed to two decimals. The
// content is written to a temp file first and renamed into place.
func (r *Repository) Export(items []inventory.Item) error {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	for _, item := range items {
		record := []string{
			item.ID,
			item.Name,
			strconv.Itoa(item.Quantity),
			strconv.FormatFloat(item.Price, 'f', 2, 64),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to encode item %s: %w", item.ID, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to encode inventory: %w", err)
	}

	temp := r.path + ".tmp"
	if err := os.WriteFile(temp, buf.Bytes(), 0o644); err != nil {
		return err
	}
	if err := os.Rename(temp, r.path); err != nil {
		os.Remove(temp)
		return err
	}
	r.logger.Info("inventory exported", zap.String("path", r.path), zap.Int("items", len(items)))
	return nil
}
