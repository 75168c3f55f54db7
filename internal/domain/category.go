package domain

import "vin-online-shopping/internal/schema"

type Category struct {
	ID           int    `json:"id" yaml:"id"`
	CategoryName string `json:"categoryName" yaml:"categoryName"`
}

var CategorySchema = schema.New("category",
	schema.String("categoryName"),
)

func (c Category) RecordID() int { return c.ID }

func (c Category) WithID(id int) Category {
	c.ID = id
	return c
}
