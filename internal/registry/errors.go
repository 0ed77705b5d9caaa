package registry

import (
	"errors"
	"fmt"
)

var (
	// ErrPrerequisite matches every *PrerequisiteError.
	ErrPrerequisite = errors.New("prerequisite missing")
	// ErrInvalidSelection matches every *SelectionError.
	ErrInvalidSelection = errors.New("invalid selection")
)

// Collection names one of the registry's top-level collections.
type Collection string

const (
	Students Collection = "students"
	Teachers Collection = "teachers"
	Subjects Collection = "subjects"
	Sections Collection = "sections"
)

// Singular returns the collection name for a single record, e.g. "teacher".
func (c Collection) Singular() string {
	switch c {
	case Students:
		return "student"
	case Teachers:
		return "teacher"
	case Subjects:
		return "subject"
	case Sections:
		return "section"
	}
	return string(c)
}

// Op names a registry operation in errors and logs.
type Op string

const (
	OpAddSubject    Op = "add subject"
	OpAddSection    Op = "add section"
	OpAddActivity   Op = "add activity"
	OpEnrollStudent Op = "enroll student"
	OpDeleteStudent Op = "delete student"
	OpDeleteTeacher Op = "delete teacher"
	OpEditStudent   Op = "edit student"
	OpEditTeacher   Op = "edit teacher"
)

// PrerequisiteError is returned when an operation needs a collection that is
// still empty.
type PrerequisiteError struct {
	Op      Op
	Missing Collection
}

// Error implements the error interface for PrerequisiteError.
func (e *PrerequisiteError) Error() string {
	return fmt.Sprintf("%s: no %s registered", e.Op, e.Missing)
}

// Is makes errors.Is(err, ErrPrerequisite) succeed.
func (e *PrerequisiteError) Is(target error) bool {
	return target == ErrPrerequisite
}

// SelectionError is returned when a position does not address a record.
type SelectionError struct {
	Collection Collection
	Index      int
	Len        int
}

// Error implements the error interface for SelectionError.
func (e *SelectionError) Error() string {
	return fmt.Sprintf("invalid %s selection %d: %d registered", e.Collection.Singular(), e.Index+1, e.Len)
}

// Is makes errors.Is(err, ErrInvalidSelection) succeed.
func (e *SelectionError) Is(target error) bool {
	return target == ErrInvalidSelection
}

// checkIndex returns a *SelectionError unless index addresses one of n records.
func checkIndex(c Collection, index, n int) error {
	if index < 0 || index >= n {
		return &SelectionError{Collection: c, Index: index, Len: n}
	}
	return nil
}

// at returns items[index] or a *SelectionError.
func at[T any](items []*T, c Collection, index int) (*T, error) {
	if err := checkIndex(c, index, len(items)); err != nil {
		return nil, err
	}
	return items[index], nil
}
