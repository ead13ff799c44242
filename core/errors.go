package core

import "fmt"

// VertexNotFoundError reports the endpoint that made AddEdge fail.
// It matches ErrVertexNotFound under errors.Is.
type VertexNotFoundError struct {
	ID string
}

func (e *VertexNotFoundError) Error() string {
	return fmt.Sprintf("%v: %q", ErrVertexNotFound, e.ID)
}

// Unwrap exposes the sentinel.
func (e *VertexNotFoundError) Unwrap() error { return ErrVertexNotFound }

// PathNotFoundError reports the pair FindPath could not connect.
// It matches ErrPathNotFound under errors.Is.
type PathNotFoundError struct {
	Source string
	Target string
}

func (e *PathNotFoundError) Error() string {
	return fmt.Sprintf("%v: %q → %q", ErrPathNotFound, e.Source, e.Target)
}

// Unwrap exposes the sentinel.
func (e *PathNotFoundError) Unwrap() error { return ErrPathNotFound }
