package domain

import (
	"time"

	"vin-online-shopping/internal/schema"
)

// Order references its customer by id only; the customer is not required to exist.
type Order struct {
	ID         int       `json:"id" yaml:"id"`
	CustomerID int       `json:"customerId" yaml:"customerId"`
	OrderDate  time.Time `json:"orderDate" yaml:"orderDate"`
	TotalCost  float64   `json:"totalCost" yaml:"totalCost"`
}

var OrderSchema = schema.New("order",
	schema.Integer("customerId"),
	schema.Date("orderDate"),
	schema.Number("totalCost"),
)

func (o Order) RecordID() int { return o.ID }

func (o Order) WithID(id int) Order {
	o.ID = id
	return o
}

// OrderedItem is one product line of an order.
type OrderedItem struct {
	ID        int     `json:"id" yaml:"id"`
	OrderID   int     `json:"orderId" yaml:"orderId"`
	ProductID int     `json:"productId" yaml:"productId"`
	Quantity  int     `json:"quantity" yaml:"quantity"`
	UnitPrice float64 `json:"unitPrice" yaml:"unitPrice"`
}

var OrderedItemSchema = schema.New("orderedItem",
	schema.Integer("orderId"),
	schema.Integer("productId"),
	schema.Integer("quantity"),
	schema.Number("unitPrice"),
)

func (i OrderedItem) RecordID() int { return i.ID }

func (i OrderedItem) WithID(id int) OrderedItem {
	i.ID = id
	return i
}
