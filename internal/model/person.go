// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package model

import (
	"fmt"

	"github.com/google/uuid"
)

// Role tells which top-level collection a Person belongs to.
type Role string

const (
	RoleStudent Role = "Student"
	RoleTeacher Role = "Teacher"
)

// String implements fmt.Stringer.
func (r Role) String() string { return string(r) }

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleTeacher
}

// Person is a student or a teacher. Both roles share the same shape; the
// role only decides which collection holds the record and how it is tagged
// on export.
type Person struct {
	Key  uuid.UUID
	Role Role
	Name string
	// ID is the institution-issued identifier (a national ID number in
	// practice). Its format is never checked.
	ID string
}

// NewPerson creates a Person with a fresh handle.
func NewPerson(role Role, name, id string) Person {
	return Person{
		Key:  uuid.New(),
		Role: role,
		Name: name,
		ID:   id,
	}
}

// Update applies a partial edit: an empty value keeps the current field.
func (p *Person) Update(name, id string) {
	if name != "" {
		p.Name = name
	}
	if id != "" {
		p.ID = id
	}
}

// Format renders the person for console listings.
func (p Person) Format(showID bool) string {
	if showID {
		return fmt.Sprintf("Name: %s, ID: %s", p.Name, p.ID)
	}
	return fmt.Sprintf("Name: %s", p.Name)
}
