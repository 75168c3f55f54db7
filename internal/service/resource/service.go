package resource

import (
	"context"
	"fmt"
	"io"
	"log"

	"vin-online-shopping/internal/domain"
	"vin-online-shopping/internal/schema"
)

type repository[T any] interface {
	List(ctx context.Context) ([]T, error)
	GetByID(ctx context.Context, id int) (*T, error)
	Insert(ctx context.Context, rec T) (*T, error)
	Update(ctx context.Context, id int, mutate func(current T) (T, error)) (*T, error)
	Delete(ctx context.Context, id int) (*T, error)
}

// Service validates payloads against a schema and applies them to one
// collection. The same type serves every resource kind.
type Service[T any] struct {
	repo   repository[T]
	schema *schema.Schema
	logger *log.Logger
}

func New[T any](repo repository[T], s *schema.Schema, logger *log.Logger) *Service[T] {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service[T]{repo: repo, schema: s, logger: logger}
}

func (s *Service[T]) List(ctx context.Context) ([]T, error) {
	return s.repo.List(ctx)
}

func (s *Service[T]) Get(ctx context.Context, id int) (*T, error) {
	return s.repo.GetByID(ctx, id)
}

// Create validates payload and stores it under a fresh id.
func (s *Service[T]) Create(ctx context.Context, payload map[string]any) (*T, error) {
	values, err := s.schema.Validate(payload)
	if err != nil {
		s.logger.Printf("%s service: create rejected error=%v", s.schema.Name(), err)
		return nil, err
	}
	var rec T
	if err := schema.Merge(&rec, values); err != nil {
		return nil, fmt.Errorf("%s service: build record: %w", s.schema.Name(), err)
	}
	return s.repo.Insert(ctx, rec)
}

// Update requires a non-empty payload that passes the whole schema, then
// overwrites the fields it carries on the stored record.
func (s *Service[T]) Update(ctx context.Context, id int, payload map[string]any) (*T, error) {
	if len(payload) == 0 {
		return nil, domain.ErrEmptyBody
	}
	updated, err := s.repo.Update(ctx, id, func(current T) (T, error) {
		values, err := s.schema.Validate(payload)
		if err != nil {
			return current, err
		}
		next := current
		if err := schema.Merge(&next, values); err != nil {
			return current, fmt.Errorf("%s service: merge record: %w", s.schema.Name(), err)
		}
		return next, nil
	})
	if err != nil {
		s.logger.Printf("%s service: update id=%d error=%v", s.schema.Name(), id, err)
		return nil, err
	}
	return updated, nil
}

func (s *Service[T]) Delete(ctx context.Context, id int) (*T, error) {
	return s.repo.Delete(ctx, id)
}
