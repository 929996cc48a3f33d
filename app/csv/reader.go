package csv

import (
	"bufio"
	stdcsv "encoding/csv"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// decode wraps r so a UTF-8 byte order mark never reaches the CSV reader.
// Excel and some ECAD exporters prefix one, which would otherwise end up
// glued to the first header name.
func decode(r io.Reader) io.Reader {
	return transform.NewReader(r, unicode.UTF8BOM.NewDecoder())
}

// Read parses r into a header and one Record per data row. Rows may be ragged:
// extra cells beyond the header are dropped, short rows simply leave the
// trailing columns absent.
func Read(r io.Reader, comma rune) ([]string, []Record, error) {
	reader := stdcsv.NewReader(decode(r))
	reader.Comma = comma
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read header: %w", err)
	}
	for i := range header {
		header[i] = Clean(header[i])
	}

	var rows []Record
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read row %d: %w", len(rows)+2, err)
		}

		rec := make(Record, len(header))
		for i, name := range header {
			if i < len(row) {
				rec[name] = row[i]
			}
		}
		rows = append(rows, rec)
	}

	return header, rows, nil
}

// ReadHeaderLine returns the raw first line of r, used for dialect detection
// before committing to a delimiter.
func ReadHeaderLine(r io.Reader) (string, error) {
	scanner := bufio.NewScanner(decode(r))
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read header line: %w", err)
		}
		return "", nil
	}
	return strings.TrimSpace(scanner.Text()), nil
}
