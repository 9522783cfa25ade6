package filesource

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Record is one data row keyed by trimmed header name
type Record map[string]string

// Get returns the trimmed cell for column, or "" when the column is absent
func (r Record) Get(column string) string {
	return r[column]
}

// ParseCSV reads a semicolon-separated file whose first row is the header.
// Cells are trimmed, decimal commas become dots and missing trailing cells
// read as empty.
func ParseCSV(r io.Reader) ([]Record, error) {
	reader := csv.NewReader(r)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	for i, h := range header {
		header[i] = strings.TrimSpace(h)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	var records []Record
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}

		record := make(Record, len(header))
		for i, column := range header {
			value := ""
			if i < len(row) {
				value = normalizeCell(row[i])
			}
			record[column] = value
		}
		records = append(records, record)
	}
	return records, nil
}

func normalizeCell(cell string) string {
	return strings.ReplaceAll(strings.TrimSpace(cell), ",", ".")
}
