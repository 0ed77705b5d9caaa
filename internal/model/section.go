// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package model

import (
	"slices"

	"github.com/google/uuid"
)

// Activity is a task or assignment logged in a section.
type Activity struct {
	Description string
}

// Section is a scheduled instance of a subject with enrolled students and
// logged activities. The subject is fixed at creation.
type Section struct {
	Key        uuid.UUID
	Name       string
	Subject    uuid.UUID
	Students   []uuid.UUID
	Activities []Activity
}

// NewSection creates an empty Section for the given subject handle.
func NewSection(name string, subject uuid.UUID) Section {
	return Section{
		Key:     uuid.New(),
		Name:    name,
		Subject: subject,
	}
}

// Enroll appends a student handle. Duplicates are not rejected.
func (s *Section) Enroll(student uuid.UUID) {
	s.Students = append(s.Students, student)
}

// Withdraw drops every occurrence of student, keeping the order of the rest.
// It reports whether anything was removed.
func (s *Section) Withdraw(student uuid.UUID) bool {
	before := len(s.Students)
	s.Students = slices.DeleteFunc(s.Students, func(k uuid.UUID) bool {
		return k == student
	})
	return len(s.Students) != before
}

// AddActivity appends an activity to the section log.
func (s *Section) AddActivity(a Activity) {
	s.Activities = append(s.Activities, a)
}

// Clone returns a copy that shares no slices with s.
func (s Section) Clone() Section {
	s.Students = slices.Clone(s.Students)
	s.Activities = slices.Clone(s.Activities)
	return s
}
