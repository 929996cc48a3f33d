package csv

import (
	stdcsv "encoding/csv"
	"fmt"
	"io"
)

// Write serializes the header and rows to w in the vendor's expected form.
func Write(w io.Writer, header []string, rows [][]string) error {
	writer := stdcsv.NewWriter(w)

	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
