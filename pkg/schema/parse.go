package schema

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/goccy/go-json"
)

// ErrorKind identifies what is wrong with an introspection response.
type ErrorKind string

const (
	NotObject ErrorKind = "not_object"
	NoData    ErrorKind = "no_data"
	NoSchema  ErrorKind = "no_schema"
)

// SchemaError reports an introspection response with the wrong shape.
type SchemaError struct {
	Kind    ErrorKind
	Message string
}

func (e *SchemaError) Error() string {
	return e.Message
}

// Is matches any SchemaError of the same kind.
func (e *SchemaError) Is(target error) bool {
	t, ok := target.(*SchemaError)
	return ok && t.Kind == e.Kind
}

var (
	ErrNotObject = &SchemaError{Kind: NotObject, Message: "response format not an object"}
	ErrNoData    = &SchemaError{Kind: NoData, Message: "data not in response"}
	ErrNoSchema  = &SchemaError{Kind: NoSchema, Message: "schema not in response"}

	errNullSchema = errors.New("__schema is null")
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Parse decodes an introspection response of the form
// {"data": {"__schema": {...}}} into a Schema.
func Parse(data []byte) (*Schema, error) {
	data = bytes.TrimSpace(bytes.TrimPrefix(data, utf8BOM))

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(data, &envelope); err != nil {
		if json.Valid(data) {
			return nil, ErrNotObject
		}
		return nil, fmt.Errorf("failed to decode schema: %w", err)
	}
	// A bare null decodes into a nil map.
	if envelope == nil {
		return nil, ErrNotObject
	}

	rawData, ok := envelope["data"]
	if !ok {
		return nil, ErrNoData
	}

	// A data member that is not an object cannot hold __schema.
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(rawData, &payload); err != nil {
		return nil, ErrNoSchema
	}
	rawSchema, ok := payload["__schema"]
	if !ok {
		return nil, ErrNoSchema
	}

	// Unmarshalling null into a struct is a no-op; it must not pass for an
	// empty schema.
	if bytes.Equal(bytes.TrimSpace(rawSchema), []byte("null")) {
		return nil, fmt.Errorf("failed to decode schema: %w", errNullSchema)
	}

	var s Schema
	if err := json.Unmarshal(rawSchema, &s); err != nil {
		return nil, fmt.Errorf("failed to decode schema: %w", err)
	}
	return &s, nil
}
