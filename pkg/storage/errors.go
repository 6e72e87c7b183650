package storage

import (
	"errors"
	"fmt"
)

// Sentinel errors, grounded on the teacher's pkg/storage/errors.go pattern.
var (
	ErrVertexNotFound          = errors.New("vertex not found")
	ErrEdgeNotFound            = errors.New("edge not found")
	ErrStorageClosed           = errors.New("storage is closed")
	ErrStaticPropertyOverwrite = errors.New("static property already set to a different value")
	ErrTypeMismatch            = errors.New("property type mismatch")
	ErrIdAssignmentConflict    = errors.New("outbound and inbound edge id assignment disagree")
	ErrInvalidWindow           = errors.New("invalid window: t_start >= t_end")
)

// GraphError provides structured error information for graph operations,
// grounded on the teacher's StorageError/ErrorBuilder.
type GraphError struct {
	Op      string // operation that failed, e.g. "AddVertex", "EdgeProp"
	Entity  string // "vertex", "edge", "property", ...
	ID      uint64 // entity id, if applicable
	Field   string // property name, if applicable
	Context string // additional context, e.g. a (src, dst) pair for a cross-shard lookup
	Cause   error
}

func (e *GraphError) Error() string {
	switch {
	case e.ID != 0 && e.Field != "":
		return fmt.Sprintf("%s %s %d (field %s): %v", e.Op, e.Entity, e.ID, e.Field, e.Cause)
	case e.ID != 0:
		return fmt.Sprintf("%s %s %d: %v", e.Op, e.Entity, e.ID, e.Cause)
	case e.Field != "":
		return fmt.Sprintf("%s %s (field %s): %v", e.Op, e.Entity, e.Field, e.Cause)
	case e.Context != "":
		return fmt.Sprintf("%s %s (%s): %v", e.Op, e.Entity, e.Context, e.Cause)
	default:
		return fmt.Sprintf("%s %s: %v", e.Op, e.Entity, e.Cause)
	}
}

func (e *GraphError) Unwrap() error { return e.Cause }

func (e *GraphError) Is(target error) bool {
	if target == nil {
		return false
	}
	return errors.Is(e.Cause, target)
}

// ErrorBuilder provides a fluent interface for building GraphErrors,
// grounded on the teacher's ErrorBuilder (NewError(op).Node(id).Cause(err).Err()).
type ErrorBuilder struct {
	err GraphError
}

// NewError starts a builder for an error raised by op.
func NewError(op string) *ErrorBuilder {
	return &ErrorBuilder{err: GraphError{Op: op}}
}

// Vertex sets the entity to "vertex" with the given gid.
func (b *ErrorBuilder) Vertex(gid uint64) *ErrorBuilder {
	b.err.Entity = "vertex"
	b.err.ID = gid
	return b
}

// Edge sets the entity to "edge" with the given edge id.
func (b *ErrorBuilder) Edge(id uint64) *ErrorBuilder {
	b.err.Entity = "edge"
	b.err.ID = id
	return b
}

// Property sets the entity to "property" with the given field name.
func (b *ErrorBuilder) Property(field string) *ErrorBuilder {
	b.err.Entity = "property"
	b.err.Field = field
	return b
}

// ID sets the entity id, for entities (like a property on a known vertex)
// that carry both a field name and an id.
func (b *ErrorBuilder) ID(id uint64) *ErrorBuilder {
	b.err.ID = id
	return b
}

// Context sets additional free-form context, e.g. a (src, dst) pair that
// has no single entity id of its own.
func (b *ErrorBuilder) Context(ctx string) *ErrorBuilder {
	b.err.Context = ctx
	return b
}

// EdgePair sets the entity to "edge" identified by a (src, dst) gid pair
// rather than a shard-local edge id, for lookups that fail before an id
// is known (e.g. a cross-shard edge that was never linked).
func (b *ErrorBuilder) EdgePair(src, dst uint64) *ErrorBuilder {
	b.err.Entity = "edge"
	b.err.Context = fmt.Sprintf("%d->%d", src, dst)
	return b
}

// Cause sets the underlying sentinel error.
func (b *ErrorBuilder) Cause(err error) *ErrorBuilder {
	b.err.Cause = err
	return b
}

// Build returns the constructed GraphError.
func (b *ErrorBuilder) Build() *GraphError { return &b.err }

// Err returns the built GraphError as an error.
func (b *ErrorBuilder) Err() error { return &b.err }

func vertexNotFound(op string, gid uint64) error {
	return NewError(op).Vertex(gid).Cause(ErrVertexNotFound).Err()
}

func edgeNotFound(op string, edgeID uint64) error {
	return NewError(op).Edge(edgeID).Cause(ErrEdgeNotFound).Err()
}

func staticOverwrite(op, field string, id uint64) error {
	return NewError(op).Property(field).ID(id).Cause(ErrStaticPropertyOverwrite).Err()
}

func typeMismatch(op, field string) error {
	return NewError(op).Property(field).Cause(ErrTypeMismatch).Err()
}

// IsNotFound reports whether err indicates a missing vertex or edge.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrVertexNotFound) || errors.Is(err, ErrEdgeNotFound)
}
