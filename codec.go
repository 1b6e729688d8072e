package spur

import (
	"encoding/json"
	"errors"
	"fmt"
)

// DecodeError is the single error kind the codec surfaces. It is raised only
// for structurally invalid input: malformed JSON, a non-object top-level
// value, or a field whose wire shape is incompatible with its target type.
// Absent fields, unknown keys and unknown enum tokens never produce one.
type DecodeError struct {
	// Entity names the record type that failed to decode.
	Entity string
	// Err is the underlying cause.
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("spur: decode %s: %v", e.Entity, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// DecodeContext parses one IP context object from wire bytes.
func DecodeContext(data []byte) (*IPContext, error) {
	var record IPContext
	if err := decodeObject("ip context", data, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// EncodeContext serializes an IP context object to wire bytes. Absent fields
// are omitted; present-but-empty lists encode as [].
func EncodeContext(record *IPContext) ([]byte, error) {
	return json.Marshal(record)
}

// DecodeTagMetadata parses one tag metadata object from wire bytes.
func DecodeTagMetadata(data []byte) (*TagMetadata, error) {
	var record TagMetadata
	if err := decodeObject("tag metadata", data, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// EncodeTagMetadata serializes a tag metadata object to wire bytes.
func EncodeTagMetadata(record *TagMetadata) ([]byte, error) {
	return json.Marshal(record)
}

// DecodeStatus parses one API status object from wire bytes.
func DecodeStatus(data []byte) (*APIStatus, error) {
	var record APIStatus
	if err := decodeObject("api status", data, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// EncodeStatus serializes an API status object to wire bytes.
func EncodeStatus(record *APIStatus) ([]byte, error) {
	return json.Marshal(record)
}

// DecodeAssessment parses one Monocle assessment from wire bytes.
func DecodeAssessment(data []byte) (*Assessment, error) {
	var record Assessment
	if err := decodeObject("assessment", data, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// EncodeAssessment serializes a Monocle assessment to wire bytes.
func EncodeAssessment(record *Assessment) ([]byte, error) {
	return json.Marshal(record)
}

// decodeObject unmarshals data into target, requiring a JSON object at the
// top level. encoding/json silently accepts a bare null there, which would
// hide truncated or empty responses, so the shape is checked up front.
func decodeObject(entity string, data []byte, target any) error {
	if kind := jsonKind(data); kind != '{' {
		return &DecodeError{
			Entity: entity,
			Err:    fmt.Errorf("expected object, got %s", jsonKindName(kind)),
		}
	}
	if err := json.Unmarshal(data, target); err != nil {
		var syntax *json.SyntaxError
		if errors.As(err, &syntax) {
			err = fmt.Errorf("malformed JSON at offset %d: %w", syntax.Offset, err)
		}
		return &DecodeError{Entity: entity, Err: err}
	}
	return nil
}
