package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"vin-online-shopping/internal/importer"
)

func main() {
	var (
		filePath string
		resource string
		apiURL   string
	)
	flag.StringVar(&filePath, "file", "", "Path to a CSV file whose header row names record fields")
	flag.StringVar(&resource, "resource", "", "Resource to import into (customers, products, categories, orders, orderedItems, payments)")
	flag.StringVar(&apiURL, "api", "http://localhost:3000", "Base URL of a running API")
	flag.Parse()

	if filePath == "" || resource == "" {
		flag.Usage()
		os.Exit(2)
	}

	f, err := os.Open(filePath)
	if err != nil {
		log.Fatalf("open file: %v", err)
	}
	defer f.Close()

	creator := importer.NewHTTPCreator(apiURL, resource, &http.Client{Timeout: 10 * time.Second})
	imp := importer.NewCSVImporter[importer.Record](f, creator)

	start := time.Now()
	count, err := imp.Run(context.Background())
	if err != nil {
		log.Fatalf("import failed after %d rows: %v", count, err)
	}

	fmt.Printf("Imported %d %s into %s in %s\n", count, resource, apiURL, time.Since(start).Truncate(time.Millisecond))
}
