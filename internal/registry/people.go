package registry

import (
	"context"
	"fmt"
	"slices"

	"github.com/vk/schoolregistry/internal/ctxlog"
	"github.com/vk/schoolregistry/internal/model"
)

// AddStudent registers a new student at the end of the student list.
func (r *Registry) AddStudent(ctx context.Context, name, id string) model.Person {
	return r.addPerson(ctx, model.RoleStudent, name, id)
}

// AddTeacher registers a new teacher at the end of the teacher list.
func (r *Registry) AddTeacher(ctx context.Context, name, id string) model.Person {
	return r.addPerson(ctx, model.RoleTeacher, name, id)
}

func (r *Registry) addPerson(ctx context.Context, role model.Role, name, id string) model.Person {
	p := model.NewPerson(role, name, id)
	list, _ := r.people(role)
	*list = append(*list, &p)

	ctxlog.FromContext(ctx).Info("Person registered.", "role", role, "key", p.Key, "count", len(*list))
	return p
}

// DeleteStudent removes the student at index and withdraws them from every
// section. It returns the removed record.
func (r *Registry) DeleteStudent(ctx context.Context, index int) (model.Person, error) {
	removed, err := r.deletePerson(model.RoleStudent, index)
	if err != nil {
		return model.Person{}, err
	}

	withdrawn := 0
	for _, s := range r.sections {
		if s.Withdraw(removed.Key) {
			withdrawn++
		}
	}

	ctxlog.FromContext(ctx).Info("Student deleted.", "key", removed.Key, "sections_affected", withdrawn)
	return removed, nil
}

// DeleteTeacher removes the teacher at index and unbinds them from every
// subject they were responsible for. It returns the removed record.
func (r *Registry) DeleteTeacher(ctx context.Context, index int) (model.Person, error) {
	removed, err := r.deletePerson(model.RoleTeacher, index)
	if err != nil {
		return model.Person{}, err
	}

	cleared := 0
	for _, s := range r.subjects {
		if s.TaughtBy(removed.Key) {
			s.ClearTeacher()
			cleared++
		}
	}

	ctxlog.FromContext(ctx).Info("Teacher deleted.", "key", removed.Key, "subjects_unbound", cleared)
	return removed, nil
}

func (r *Registry) deletePerson(role model.Role, index int) (model.Person, error) {
	list, c := r.people(role)
	if err := r.Require(DeleteOp(role), c); err != nil {
		return model.Person{}, err
	}
	p, err := at(*list, c, index)
	if err != nil {
		return model.Person{}, err
	}
	*list = slices.Delete(*list, index, index+1)
	return *p, nil
}

// EditPerson applies a partial update to the person at index in the
// collection of the given role. Empty values keep the current fields.
func (r *Registry) EditPerson(ctx context.Context, role model.Role, index int, name, id string) (model.Person, error) {
	if !role.Valid() {
		return model.Person{}, fmt.Errorf("edit person: unknown role %q", role)
	}
	list, c := r.people(role)
	if err := r.Require(EditOp(role), c); err != nil {
		return model.Person{}, err
	}
	p, err := at(*list, c, index)
	if err != nil {
		return model.Person{}, err
	}
	p.Update(name, id)

	ctxlog.FromContext(ctx).Info("Person updated.", "role", role, "key", p.Key, "name_changed", name != "", "id_changed", id != "")
	return *p, nil
}

// EditOp returns the edit operation for the given role.
func EditOp(role model.Role) Op {
	if role == model.RoleTeacher {
		return OpEditTeacher
	}
	return OpEditStudent
}

// DeleteOp returns the delete operation for the given role.
func DeleteOp(role model.Role) Op {
	if role == model.RoleTeacher {
		return OpDeleteTeacher
	}
	return OpDeleteStudent
}

// CollectionOf returns the collection holding people of the given role.
func CollectionOf(role model.Role) Collection {
	if role == model.RoleTeacher {
		return Teachers
	}
	return Students
}

// people returns the collection holding the given role.
func (r *Registry) people(role model.Role) (*[]*model.Person, Collection) {
	if role == model.RoleTeacher {
		return &r.teachers, Teachers
	}
	return &r.students, Students
}
