package ingest

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

var _ Extractor = CSVExtractor{}

// CSVExtractor extracts plain text from CSV documents. The first row is
// treated as headers and each data row becomes one labeled line:
// "Header1: Value1, Header2: Value2". Labeled lines keep column names in
// the text so the keyword and title heuristics have something to work with.
type CSVExtractor struct{}

func (CSVExtractor) Extract(content []byte) (string, error) {
	content = bytes.TrimPrefix(content, []byte("\xef\xbb\xbf"))
	if len(bytes.TrimSpace(content)) == 0 {
		return "", nil
	}

	r := csv.NewReader(bytes.NewReader(content))
	r.LazyQuotes = true
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1

	headers, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return "", nil
		}
		return "", fmt.Errorf("read csv headers: %w", err)
	}

	var lines []string
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("read csv row: %w", err)
		}
		var fields []string
		for i, val := range record {
			if i >= len(headers) {
				break
			}
			val = strings.TrimSpace(val)
			if val == "" {
				continue
			}
			fields = append(fields, headers[i]+": "+val)
		}
		if len(fields) > 0 {
			lines = append(lines, strings.Join(fields, ", "))
		}
	}
	return strings.Join(lines, "\n"), nil
}
