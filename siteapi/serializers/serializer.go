package serializers

import (
	"context"
	"fmt"
)

// Serializer converts one record type between its wire payload and the
// persisted model.
type Serializer[M any] interface {
	// Validate decodes and checks a payload. Failures are *ValidationError.
	Validate(ctx context.Context, data []byte) (*M, error)
	// Represent returns the value to encode as the record's payload.
	Represent(ctx context.Context, m *M) (any, error)
	// Create persists a record previously returned by Validate.
	Create(ctx context.Context, m *M) error
}

// checkRef records an error on field when id does not resolve through lookup.
// Lookup failures are returned as errors rather than recorded.
func checkRef(ctx context.Context, verrs *ValidationError, field string, id int64, lookup KeyLookup) error {
	ok, err := lookup.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to resolve %s %d: %w", field, id, err)
	}
	if !ok {
		verrs.Add(field, fmt.Sprintf(msgInvalidPK, id))
	}
	return nil
}

// simpleSerializer covers record types whose payload is their model: no
// references, no rules beyond struct tags.
type simpleSerializer[M any, P any] struct {
	writer    Writer[M]
	toModel   func(*P) *M
	represent func(*M) any
}

func (s *simpleSerializer[M, P]) Validate(_ context.Context, data []byte) (*M, error) {
	payload := new(P)
	if verrs := decode(data, payload); !verrs.Empty() {
		return nil, verrs
	}
	if verrs := checkStruct(payload); !verrs.Empty() {
		return nil, verrs
	}
	return s.toModel(payload), nil
}

func (s *simpleSerializer[M, P]) Represent(_ context.Context, m *M) (any, error) {
	return s.represent(m), nil
}

func (s *simpleSerializer[M, P]) Create(ctx context.Context, m *M) error {
	return s.writer.Create(ctx, m)
}
