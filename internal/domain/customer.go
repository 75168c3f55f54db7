package domain

import "vin-online-shopping/internal/schema"

// Customer is a registered shopper. The password is stored as submitted.
type Customer struct {
	ID         int    `json:"id" yaml:"id"`
	FirstName  string `json:"firstName" yaml:"firstName"`
	LastName   string `json:"lastName" yaml:"lastName"`
	Email      string `json:"email" yaml:"email"`
	Password   string `json:"password" yaml:"password"`
	Address    string `json:"address" yaml:"address"`
	City       string `json:"city" yaml:"city"`
	Province   string `json:"province" yaml:"province"`
	PostalCode int    `json:"postalCode" yaml:"postalCode"`
	Country    string `json:"country" yaml:"country"`
}

var CustomerSchema = schema.New("customer",
	schema.String("firstName"),
	schema.String("lastName"),
	schema.Email("email"),
	schema.String("password"),
	schema.String("address"),
	schema.String("city"),
	schema.String("province"),
	schema.Integer("postalCode"),
	schema.String("country"),
)

func (c Customer) RecordID() int { return c.ID }

func (c Customer) WithID(id int) Customer {
	c.ID = id
	return c
}
