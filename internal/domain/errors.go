package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrEmptyBody indicates an update carried no fields at all.
	ErrEmptyBody = errors.New("request body is empty")
)
