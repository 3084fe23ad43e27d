package repository

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var errNotArray = errors.New("document is not a JSON array")

// decodeRecords parses data as a JSON array of T and validates each record.
func decodeRecords[T any](data []byte, validate *validator.Validate) ([]T, error) {
	var records []T

	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	// "null" unmarshals into a nil slice without error.
	if records == nil {
		return nil, errNotArray
	}

	for idx := range records {
		if err := validate.Struct(records[idx]); err != nil {
			return nil, fmt.Errorf("%w at index %d: %w", ErrInvalidRecord, idx, err)
		}
	}

	return records, nil
}

// load reads the named document and decodes it into records.
func load[T any](r *Repository, name string) ([]T, error) {
	data, err := r.source.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrRead, name, err)
	}

	records, err := decodeRecords[T](data, r.validate)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrParse, name, err)
	}

	return records, nil
}
