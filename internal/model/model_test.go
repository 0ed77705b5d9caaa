// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPerson_Update(t *testing.T) {
	testCases := []struct {
		name     string
		newName  string
		newID    string
		wantName string
		wantID   string
	}{
		{"both empty keeps everything", "", "", "Ana", "111"},
		{"only id", "", "999", "Ana", "999"},
		{"only name", "Ana Maria", "", "Ana Maria", "111"},
		{"both", "Bia", "222", "Bia", "222"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPerson(RoleTeacher, "Ana", "111")
			key := p.Key

			p.Update(tc.newName, tc.newID)

			assert.Equal(t, tc.wantName, p.Name)
			assert.Equal(t, tc.wantID, p.ID)
			assert.Equal(t, key, p.Key, "the handle must never change on edit")
		})
	}
}

func TestPerson_Format(t *testing.T) {
	p := NewPerson(RoleStudent, "Bob", "222")
	assert.Equal(t, "Name: Bob, ID: 222", p.Format(true))
	assert.Equal(t, "Name: Bob", p.Format(false))
}

func TestRole_Valid(t *testing.T) {
	assert.True(t, RoleStudent.Valid())
	assert.True(t, RoleTeacher.Valid())
	assert.False(t, Role("Janitor").Valid())
}

func TestSubject_TeacherBinding(t *testing.T) {
	teacher := uuid.New()
	s := NewSubject("Math", teacher)

	require.True(t, s.HasTeacher())
	assert.True(t, s.TaughtBy(teacher))
	assert.False(t, s.TaughtBy(uuid.New()))

	s.ClearTeacher()
	assert.False(t, s.HasTeacher())
	assert.False(t, s.TaughtBy(teacher))
	assert.Equal(t, "Math", s.Name)
}

func TestSection_EnrollAndWithdraw(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	s := NewSection("A1", uuid.New())

	s.Enroll(a)
	s.Enroll(b)
	s.Enroll(a) // duplicates are accepted
	s.Enroll(c)
	require.Equal(t, []uuid.UUID{a, b, a, c}, s.Students)

	assert.True(t, s.Withdraw(a))
	assert.Equal(t, []uuid.UUID{b, c}, s.Students, "every occurrence goes, order of the rest stays")

	assert.False(t, s.Withdraw(uuid.New()))
	assert.Equal(t, []uuid.UUID{b, c}, s.Students)
}

func TestSection_CloneDoesNotAlias(t *testing.T) {
	s := NewSection("A1", uuid.New())
	s.Enroll(uuid.New())
	s.AddActivity(Activity{Description: "Homework 1"})

	c := s.Clone()
	c.Students[0] = uuid.Nil
	c.Activities[0].Description = "changed"
	c.Enroll(uuid.New())

	assert.NotEqual(t, uuid.Nil, s.Students[0])
	assert.Equal(t, "Homework 1", s.Activities[0].Description)
	assert.Len(t, s.Students, 1)
}
