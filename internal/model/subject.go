// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package model

import "github.com/google/uuid"

// Subject is a course definition with an optional responsible teacher.
type Subject struct {
	Key  uuid.UUID
	Name string
	// Teacher is invalid when no teacher is responsible for the subject,
	// either because none was bound or because the bound one was deleted.
	Teacher uuid.NullUUID
}

// NewSubject creates a Subject bound to the given teacher handle.
func NewSubject(name string, teacher uuid.UUID) Subject {
	return Subject{
		Key:     uuid.New(),
		Name:    name,
		Teacher: uuid.NullUUID{UUID: teacher, Valid: true},
	}
}

// HasTeacher reports whether a teacher is bound to the subject.
func (s Subject) HasTeacher() bool { return s.Teacher.Valid }

// TaughtBy reports whether teacher is the subject's responsible teacher.
func (s Subject) TaughtBy(teacher uuid.UUID) bool {
	return s.Teacher.Valid && s.Teacher.UUID == teacher
}

// ClearTeacher removes the teacher binding. The subject itself survives.
func (s *Subject) ClearTeacher() {
	s.Teacher = uuid.NullUUID{}
}
