package spreadsheet

import (
	"context"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/civiai/planning-analyzer/internal/core/domain"
	"github.com/civiai/planning-analyzer/internal/core/ports"
)

// Extractor flattens stored .xlsx workbooks into line-oriented text so that
// field patterns can match cell contents. Each row becomes one line with
// cells joined by a single space; empty rows are skipped.
type Extractor struct {
	storage ports.ObjectStorage
}

func New(storage ports.ObjectStorage) *Extractor {
	return &Extractor{storage: storage}
}

func (e *Extractor) Extract(ctx context.Context, storageKey string) (string, error) {
	r, err := e.storage.Open(ctx, storageKey)
	if err != nil {
		return "", err
	}
	defer r.Close()

	f, err := excelize.OpenReader(r)
	if err != nil {
		return "", domain.WrapError(domain.ErrUnsupportedFormat, "open spreadsheet",
			fmt.Errorf("document %s: %w", storageKey, err))
	}
	defer f.Close()

	var lines []string
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return "", fmt.Errorf("read sheet %s: %w", sheet, err)
		}
		for _, row := range rows {
			line := strings.TrimSpace(strings.Join(row, " "))
			if line != "" {
				lines = append(lines, line)
			}
		}
	}
	return strings.Join(lines, "\n"), nil
}
