package internal

import "fmt"

// SchemaError reports an input row missing a required field. It aborts
// archive construction; per-row date problems are handled by dropping the
// row instead.
type SchemaError struct {
	Field string
	ID    string // Message-ID when known
}

func (e *SchemaError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("schema error: missing required field %s", e.Field)
	}
	return fmt.Sprintf("schema error: missing required field %s on message %s", e.Field, e.ID)
}

// DataIntegrityError reports a dataset-level invariant violation, such as
// normalization yielding zero usable messages.
type DataIntegrityError struct {
	Reason string
}

func (e *DataIntegrityError) Error() string {
	return fmt.Sprintf("data integrity error: %s", e.Reason)
}

// MalformedReferenceError reports a record whose In-Reply-To points at
// itself. The record is excluded from the thread forest.
type MalformedReferenceError struct {
	ID string
}

func (e *MalformedReferenceError) Error() string {
	return fmt.Sprintf("malformed reference: message %s replies to itself", e.ID)
}

// SourceError represents errors reading producer input files.
type SourceError struct {
	Path string
	Op   string // "open", "read", "parse"
	Err  error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("source error: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// StoreError represents errors accessing the archive database.
type StoreError struct {
	Path string
	Op   string
	Err  error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store error: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
