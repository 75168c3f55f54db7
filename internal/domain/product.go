package domain

import "vin-online-shopping/internal/schema"

type Product struct {
	ID                 int     `json:"id" yaml:"id"`
	ProductName        string  `json:"productName" yaml:"productName"`
	ProductDescription string  `json:"productDescription" yaml:"productDescription"`
	Price              float64 `json:"price" yaml:"price"`
	QuantityOnHand     int     `json:"quantityOnHand" yaml:"quantityOnHand"`
	CategoryID         int     `json:"categoryId" yaml:"categoryId"`
}

var ProductSchema = schema.New("product",
	schema.String("productName"),
	schema.String("productDescription"),
	schema.Number("price"),
	schema.Integer("quantityOnHand"),
	schema.Integer("categoryId"),
)

func (p Product) RecordID() int { return p.ID }

func (p Product) WithID(id int) Product {
	p.ID = id
	return p
}
