package seed

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
	"vin-online-shopping/internal/domain"
	"vin-online-shopping/internal/schema"
)

// Fixtures is the initial content of every collection.
type Fixtures struct {
	Customers    []domain.Customer    `yaml:"customers"`
	Products     []domain.Product     `yaml:"products"`
	Categories   []domain.Category    `yaml:"categories"`
	Orders       []domain.Order       `yaml:"orders"`
	OrderedItems []domain.OrderedItem `yaml:"orderedItems"`
	Payments     []domain.Payment     `yaml:"payments"`
}

// Default returns the built-in demo data. Order and payment dates are set to now.
func Default(now time.Time) Fixtures {
	now = now.UTC()
	return Fixtures{
		Customers: []domain.Customer{
			{
				ID:         1,
				FirstName:  "Bongani",
				LastName:   "Dlamini",
				Email:      "BonganiD@yahoo.com",
				Password:   "Bongani@123",
				Address:    "123 John Doe Street",
				City:       "Johannesburg",
				Province:   "Gauteng",
				PostalCode: 2001,
				Country:    "South Africa",
			},
			{
				ID:         2,
				FirstName:  "Tebogo",
				LastName:   "Zondo",
				Email:      "TZ@yahoo.com",
				Password:   "TZ@123",
				Address:    "123 John Doe Street",
				City:       "Liverpool",
				Province:   "London",
				PostalCode: 56358,
				Country:    "England",
			},
		},
		Products: []domain.Product{
			{ID: 1, ProductName: "Honor Band 9", ProductDescription: "Black Band", Price: 19.55, QuantityOnHand: 120, CategoryID: 302},
			{ID: 2, ProductName: "Lenovo Ideapad", ProductDescription: "Core i3 500GB", Price: 5149.12, QuantityOnHand: 10, CategoryID: 301},
		},
		Categories: []domain.Category{
			{ID: 1, CategoryName: "Games"},
			{ID: 2, CategoryName: "Laptops"},
			{ID: 3, CategoryName: "Watches"},
			{ID: 4, CategoryName: "Internet Routers"},
		},
		Orders: []domain.Order{
			{ID: 1, CustomerID: 100, OrderDate: now, TotalCost: 100.28},
		},
		OrderedItems: []domain.OrderedItem{
			{ID: 1, OrderID: 400, ProductID: 200, Quantity: 2, UnitPrice: 300.22},
		},
		Payments: []domain.Payment{
			{ID: 1, OrderID: 400, PaymentMethod: "Credit Card", PaymentDate: now, Amount: 415.24},
		},
	}
}

// LoadFile reads fixtures from a YAML document. Collections missing from the
// file start empty.
func LoadFile(path string) (Fixtures, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Fixtures{}, fmt.Errorf("read seed file: %w", err)
	}
	var f Fixtures
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return Fixtures{}, fmt.Errorf("parse seed file %s: %w", path, err)
	}
	if err := f.validate(); err != nil {
		return Fixtures{}, fmt.Errorf("seed file %s: %w", path, err)
	}
	return f, nil
}

// validate applies the same rules as the HTTP create path to every record,
// and requires ids to be positive and unique per collection.
func (f Fixtures) validate() error {
	if err := checkRecords("customers", f.Customers, domain.CustomerSchema); err != nil {
		return err
	}
	if err := checkRecords("products", f.Products, domain.ProductSchema); err != nil {
		return err
	}
	if err := checkRecords("categories", f.Categories, domain.CategorySchema); err != nil {
		return err
	}
	if err := checkRecords("orders", f.Orders, domain.OrderSchema); err != nil {
		return err
	}
	if err := checkRecords("orderedItems", f.OrderedItems, domain.OrderedItemSchema); err != nil {
		return err
	}
	return checkRecords("payments", f.Payments, domain.PaymentSchema)
}

func checkRecords[T domain.Entity[T]](name string, records []T, sch *schema.Schema) error {
	if err := uniqueIDs(name, records); err != nil {
		return err
	}
	for _, r := range records {
		payload, err := fieldsOf(r)
		if err != nil {
			return fmt.Errorf("%s: id %d: %w", name, r.RecordID(), err)
		}
		if _, err := sch.Validate(payload); err != nil {
			return fmt.Errorf("%s: id %d: %w", name, r.RecordID(), err)
		}
	}
	return nil
}

// fieldsOf returns the record as a JSON object without its id, the shape a
// create request carries.
func fieldsOf(rec any) (map[string]any, error) {
	raw, err := json.Marshal(rec)
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var out map[string]any
	if err := dec.Decode(&out); err != nil {
		return nil, err
	}
	delete(out, "id")
	return out, nil
}

func uniqueIDs[T domain.Entity[T]](name string, records []T) error {
	seen := make(map[int]bool, len(records))
	for _, r := range records {
		id := r.RecordID()
		if id <= 0 {
			return fmt.Errorf("%s: id must be positive, got %d", name, id)
		}
		if seen[id] {
			return fmt.Errorf("%s: duplicate id %d", name, id)
		}
		seen[id] = true
	}
	return nil
}
