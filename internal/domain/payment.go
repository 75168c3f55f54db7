package domain

import (
	"time"

	"vin-online-shopping/internal/schema"
)

type Payment struct {
	ID            int       `json:"id" yaml:"id"`
	OrderID       int       `json:"orderId" yaml:"orderId"`
	PaymentMethod string    `json:"paymentMethod" yaml:"paymentMethod"`
	PaymentDate   time.Time `json:"paymentDate" yaml:"paymentDate"`
	Amount        float64   `json:"amount" yaml:"amount"`
}

var PaymentSchema = schema.New("payment",
	schema.Integer("orderId"),
	schema.String("paymentMethod"),
	schema.Date("paymentDate"),
	schema.Number("amount"),
)

func (p Payment) RecordID() int { return p.ID }

func (p Payment) WithID(id int) Payment {
	p.ID = id
	return p
}
