package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Creator is the store operation rows are fed into.
type Creator[T any] interface {
	Create(ctx context.Context, payload map[string]any) (*T, error)
}

// CSVImporter reads a CSV whose header row names record fields and creates
// one record per data row. Values stay strings; the store's schema converts
// numbers and dates.
type CSVImporter[T any] struct {
	reader *csv.Reader
	store  Creator[T]
}

func NewCSVImporter[T any](r io.Reader, store Creator[T]) *CSVImporter[T] {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	csvr.TrimLeadingSpace = true
	return &CSVImporter[T]{reader: csvr, store: store}
}

// Run creates records until the input ends or a row fails. It returns the
// number of records created before the failure.
func (i *CSVImporter[T]) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if errors.Is(err, io.EOF) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	for idx := range headers {
		headers[idx] = strings.TrimSpace(headers[idx])
	}

	imported := 0
	for {
		if err := ctx.Err(); err != nil {
			return imported, err
		}
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("read row: %w", err)
		}
		line, _ := i.reader.FieldPos(0)

		payload := rowPayload(headers, record)
		if len(payload) == 0 {
			continue
		}
		if _, err := i.store.Create(ctx, payload); err != nil {
			return imported, fmt.Errorf("line %d: %w", line, err)
		}
		imported++
	}
	return imported, nil
}

// ImportFile runs a CSVImporter over the file at path.
func ImportFile[T any](ctx context.Context, path string, store Creator[T]) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	return NewCSVImporter[T](f, store).Run(ctx)
}

func rowPayload(headers, record []string) map[string]any {
	payload := make(map[string]any, len(headers))
	for idx, h := range headers {
		if h == "" || idx >= len(record) {
			continue
		}
		v := strings.TrimSpace(record[idx])
		if v == "" {
			continue
		}
		payload[h] = v
	}
	return payload
}
