package memory

import (
	"context"
	"io"
	"log"
	"sync"

	"vin-online-shopping/internal/domain"
)

// Collection is an ordered, mutex-guarded slice of records. Identifiers come
// from a counter that only moves forward, so an id is never handed out twice
// within the life of the process.
type Collection[T domain.Entity[T]] struct {
	name   string
	logger *log.Logger

	mu      sync.RWMutex
	records []T
	lastID  int
}

// NewCollection returns a collection holding seed in the given order. The id
// counter starts after the highest seeded id.
func NewCollection[T domain.Entity[T]](name string, seed []T, logger *log.Logger) *Collection[T] {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	c := &Collection[T]{
		name:    name,
		logger:  logger,
		records: make([]T, 0, len(seed)),
	}
	for _, rec := range seed {
		c.records = append(c.records, rec)
		if id := rec.RecordID(); id > c.lastID {
			c.lastID = id
		}
	}
	return c
}

func (c *Collection[T]) Name() string { return c.name }

// List returns a snapshot of every record in insertion order.
func (c *Collection[T]) List(_ context.Context) ([]T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, len(c.records))
	copy(out, c.records)
	return out, nil
}

// Len reports how many records are currently held.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.records)
}

// GetByID returns the first record with the given id.
func (c *Collection[T]) GetByID(_ context.Context, id int) (*T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	idx := c.indexOf(id)
	if idx < 0 {
		return nil, domain.ErrNotFound
	}
	rec := c.records[idx]
	return &rec, nil
}

// Insert assigns the next id to rec and appends it.
func (c *Collection[T]) Insert(_ context.Context, rec T) (*T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lastID++
	rec = rec.WithID(c.lastID)
	c.records = append(c.records, rec)
	c.logger.Printf("%s collection: inserted id=%d count=%d", c.name, c.lastID, len(c.records))
	return &rec, nil
}

// Update replaces the record with the given id by the result of mutate. mutate
// runs under the write lock; if it fails the stored record is left untouched.
// The id of the returned record is forced back to id.
func (c *Collection[T]) Update(_ context.Context, id int, mutate func(current T) (T, error)) (*T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.indexOf(id)
	if idx < 0 {
		return nil, domain.ErrNotFound
	}
	next, err := mutate(c.records[idx])
	if err != nil {
		return nil, err
	}
	next = next.WithID(id)
	c.records[idx] = next
	c.logger.Printf("%s collection: updated id=%d", c.name, id)
	return &next, nil
}

// Delete removes the first record with the given id and returns it.
func (c *Collection[T]) Delete(_ context.Context, id int) (*T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.indexOf(id)
	if idx < 0 {
		return nil, domain.ErrNotFound
	}
	removed := c.records[idx]
	c.records = append(c.records[:idx], c.records[idx+1:]...)
	c.logger.Printf("%s collection: deleted id=%d count=%d", c.name, id, len(c.records))
	return &removed, nil
}

func (c *Collection[T]) indexOf(id int) int {
	for i, rec := range c.records {
		if rec.RecordID() == id {
			return i
		}
	}
	return -1
}
