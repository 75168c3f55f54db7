package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"time"

	"vin-online-shopping/internal/importer"
)

// importCSV loads <dir>/<name>.csv into store when the file exists.
func importCSV[T any](ctx context.Context, dir, name string, store importer.Creator[T], logger *log.Logger) error {
	path := filepath.Join(dir, name+".csv")
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	start := time.Now()
	count, err := importer.ImportFile[T](ctx, path, store)
	if err != nil {
		return fmt.Errorf("%s after %d rows: %w", path, count, err)
	}
	logger.Printf("imported %d %s from %s in %s", count, name, path, time.Since(start).Truncate(time.Millisecond))
	return nil
}
