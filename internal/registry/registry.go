package registry

import (
	"github.com/google/uuid"
	"github.com/vk/schoolregistry/internal/model"
)

// Registry holds every record of a single session.
type Registry struct {
	students []*model.Person
	teachers []*model.Person
	subjects []*model.Subject
	sections []*model.Section
}

// New creates and initializes a new, empty Registry.
func New() *Registry {
	return &Registry{}
}

// Len returns the number of records in collection c.
func (r *Registry) Len(c Collection) int {
	switch c {
	case Students:
		return len(r.students)
	case Teachers:
		return len(r.teachers)
	case Subjects:
		return len(r.subjects)
	case Sections:
		return len(r.sections)
	}
	return 0
}

// Require returns a *PrerequisiteError for the first collection in needs
// that is empty, or nil when all of them hold records.
func (r *Registry) Require(op Op, needs ...Collection) error {
	for _, c := range needs {
		if r.Len(c) == 0 {
			return &PrerequisiteError{Op: op, Missing: c}
		}
	}
	return nil
}

// Check returns a *SelectionError unless index addresses a record of
// collection c. Callers use it to reject a selection before asking for
// anything else.
func (r *Registry) Check(c Collection, index int) error {
	return checkIndex(c, index, r.Len(c))
}

// Students returns a copy of the students in registration order.
func (r *Registry) Students() []model.Person {
	return copyPeople(r.students)
}

// Teachers returns a copy of the teachers in registration order.
func (r *Registry) Teachers() []model.Person {
	return copyPeople(r.teachers)
}

// Subjects returns a copy of the subjects in registration order.
func (r *Registry) Subjects() []model.Subject {
	out := make([]model.Subject, 0, len(r.subjects))
	for _, s := range r.subjects {
		out = append(out, *s)
	}
	return out
}

// Sections returns a deep copy of the sections in registration order.
func (r *Registry) Sections() []model.Section {
	out := make([]model.Section, 0, len(r.sections))
	for _, s := range r.sections {
		out = append(out, s.Clone())
	}
	return out
}

// Person looks a student or teacher up by handle.
func (r *Registry) Person(key uuid.UUID) (model.Person, bool) {
	for _, list := range [][]*model.Person{r.students, r.teachers} {
		for _, p := range list {
			if p.Key == key {
				return *p, true
			}
		}
	}
	return model.Person{}, false
}

// Subject looks a subject up by handle.
func (r *Registry) Subject(key uuid.UUID) (model.Subject, bool) {
	for _, s := range r.subjects {
		if s.Key == key {
			return *s, true
		}
	}
	return model.Subject{}, false
}

func copyPeople(in []*model.Person) []model.Person {
	out := make([]model.Person, 0, len(in))
	for _, p := range in {
		out = append(out, *p)
	}
	return out
}
