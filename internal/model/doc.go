// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package model holds the plain records the registry is built from: people
// (students and teachers), subjects, sections and the activities logged in a
// section.
//
// # Handles instead of pointers
//
// Every association that does not own its target is stored as a uuid.UUID
// handle rather than a pointer:
//
//   - Subject.Teacher points at a Person with RoleTeacher, or is invalid when
//     the subject has no teacher.
//   - Section.Subject points at the Subject the section was opened for.
//   - Section.Students lists the enrolled Person handles in enrollment order.
//
// Records never reach back into the registry. Clearing or filtering a handle
// after its target is deleted is an explicit registry operation, which keeps
// the cascade rules visible and testable.
//
// Activities are the only owned children: a Section holds them by value.
package model
