package registry

import (
	"context"

	"github.com/vk/schoolregistry/internal/ctxlog"
	"github.com/vk/schoolregistry/internal/model"
)

// AddSubject registers a subject taught by the teacher at teacherIndex.
func (r *Registry) AddSubject(ctx context.Context, name string, teacherIndex int) (model.Subject, error) {
	if err := r.Require(OpAddSubject, Teachers); err != nil {
		return model.Subject{}, err
	}
	teacher, err := at(r.teachers, Teachers, teacherIndex)
	if err != nil {
		return model.Subject{}, err
	}

	s := model.NewSubject(name, teacher.Key)
	r.subjects = append(r.subjects, &s)

	ctxlog.FromContext(ctx).Info("Subject registered.", "key", s.Key, "teacher", teacher.Key)
	return s, nil
}

// AddSection opens a section of the subject at subjectIndex.
func (r *Registry) AddSection(ctx context.Context, name string, subjectIndex int) (model.Section, error) {
	if err := r.Require(OpAddSection, Subjects); err != nil {
		return model.Section{}, err
	}
	subject, err := at(r.subjects, Subjects, subjectIndex)
	if err != nil {
		return model.Section{}, err
	}

	s := model.NewSection(name, subject.Key)
	r.sections = append(r.sections, &s)

	ctxlog.FromContext(ctx).Info("Section registered.", "key", s.Key, "subject", subject.Key)
	return s.Clone(), nil
}

// AddActivity logs an activity in the section at sectionIndex.
func (r *Registry) AddActivity(ctx context.Context, description string, sectionIndex int) (model.Activity, error) {
	if err := r.Require(OpAddActivity, Sections); err != nil {
		return model.Activity{}, err
	}
	section, err := at(r.sections, Sections, sectionIndex)
	if err != nil {
		return model.Activity{}, err
	}

	a := model.Activity{Description: description}
	section.AddActivity(a)

	ctxlog.FromContext(ctx).Info("Activity added.", "section", section.Key, "activities", len(section.Activities))
	return a, nil
}

// EnrollStudent appends the student at studentIndex to the section at
// sectionIndex. Enrolling the same student twice is not rejected.
func (r *Registry) EnrollStudent(ctx context.Context, studentIndex, sectionIndex int) error {
	if err := r.Require(OpEnrollStudent, Students, Sections); err != nil {
		return err
	}
	student, err := at(r.students, Students, studentIndex)
	if err != nil {
		return err
	}
	section, err := at(r.sections, Sections, sectionIndex)
	if err != nil {
		return err
	}

	section.Enroll(student.Key)

	ctxlog.FromContext(ctx).Info("Student enrolled.", "student", student.Key, "section", section.Key, "enrolled", len(section.Students))
	return nil
}
