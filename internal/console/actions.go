package console

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/vk/schoolregistry/internal/ctxlog"
	"github.com/vk/schoolregistry/internal/export"
	"github.com/vk/schoolregistry/internal/model"
	"github.com/vk/schoolregistry/internal/registry"
)

var errInvalidRole = errors.New("invalid person type")

// exportError marks a failed export so the loop can report it and go on.
type exportError struct {
	err error
}

func (e *exportError) Error() string { return "export failed: " + e.err.Error() }

func (e *exportError) Unwrap() error { return e.err }

func label(role model.Role) string {
	return strings.ToLower(role.String())
}

func (c *Console) registerPerson(ctx context.Context, role model.Role) error {
	name, err := c.ask(ctx, fmt.Sprintf("Name of the %s: ", label(role)))
	if err != nil {
		return err
	}
	id, err := c.ask(ctx, fmt.Sprintf("ID of the %s: ", label(role)))
	if err != nil {
		return err
	}
	if err := c.validate.Struct(personForm{Name: name, ID: id}); err != nil {
		return err
	}

	if role == model.RoleTeacher {
		c.reg.AddTeacher(ctx, name, id)
	} else {
		c.reg.AddStudent(ctx, name, id)
	}
	fmt.Fprintf(c.out, "%s registered successfully!\n\n", role)
	return nil
}

func (c *Console) registerSubject(ctx context.Context) error {
	if err := c.reg.Require(registry.OpAddSubject, registry.Teachers); err != nil {
		return err
	}
	name, err := c.askName(ctx, "Subject name: ")
	if err != nil {
		return err
	}
	idx, err := c.choose(ctx, "Choose the teacher by number:", peopleOptions(c.reg.Teachers(), true))
	if err != nil {
		return err
	}
	if _, err := c.reg.AddSubject(ctx, name, idx); err != nil {
		return err
	}
	fmt.Fprintln(c.out, "Subject registered successfully!")
	fmt.Fprintln(c.out)
	return nil
}

func (c *Console) registerSection(ctx context.Context) error {
	if err := c.reg.Require(registry.OpAddSection, registry.Subjects); err != nil {
		return err
	}
	name, err := c.askName(ctx, "Section name: ")
	if err != nil {
		return err
	}
	idx, err := c.choose(ctx, "Choose the subject by number:", subjectOptions(c.reg.Subjects()))
	if err != nil {
		return err
	}
	if _, err := c.reg.AddSection(ctx, name, idx); err != nil {
		return err
	}
	fmt.Fprintln(c.out, "Section registered successfully!")
	fmt.Fprintln(c.out)
	return nil
}

func (c *Console) addActivity(ctx context.Context) error {
	if err := c.reg.Require(registry.OpAddActivity, registry.Sections); err != nil {
		return err
	}
	description, err := c.askRequired(ctx, "Activity description: ", func(v string) any {
		return activityForm{Description: v}
	})
	if err != nil {
		return err
	}
	idx, err := c.choose(ctx, "Choose the section by number:", sectionOptions(c.reg.Sections()))
	if err != nil {
		return err
	}
	if _, err := c.reg.AddActivity(ctx, description, idx); err != nil {
		return err
	}
	fmt.Fprintln(c.out, "Activity added successfully!")
	fmt.Fprintln(c.out)
	return nil
}

func (c *Console) enrollStudent(ctx context.Context) error {
	if err := c.reg.Require(registry.OpEnrollStudent, registry.Students, registry.Sections); err != nil {
		return err
	}
	student, err := c.choose(ctx, "Choose the student by number:", peopleOptions(c.reg.Students(), false))
	if err != nil {
		return err
	}
	section, err := c.choose(ctx, "Choose the section by number:", sectionOptions(c.reg.Sections()))
	if err != nil {
		return err
	}
	if err := c.reg.EnrollStudent(ctx, student, section); err != nil {
		return err
	}
	fmt.Fprintln(c.out, "Student enrolled in section successfully!")
	fmt.Fprintln(c.out)
	return nil
}

func (c *Console) list(ctx context.Context) error {
	sections := c.reg.Sections()
	if len(sections) == 0 {
		fmt.Fprintln(c.out, "No sections registered.")
		fmt.Fprintln(c.out)
		return nil
	}
	for _, s := range sections {
		c.printSection(s)
	}

	fmt.Fprintln(c.out, "=== Registered people ===")
	for _, p := range c.reg.Students() {
		c.printPerson(p, true)
	}
	for _, p := range c.reg.Teachers() {
		c.printPerson(p, true)
	}
	fmt.Fprintln(c.out)
	return nil
}

func (c *Console) deletePerson(ctx context.Context, role model.Role) error {
	if err := c.reg.Require(registry.DeleteOp(role), registry.CollectionOf(role)); err != nil {
		return err
	}

	var (
		idx     int
		err     error
		removed model.Person
	)
	title := fmt.Sprintf("Choose the %s to delete:", label(role))
	if role == model.RoleTeacher {
		if idx, err = c.choose(ctx, title, peopleOptions(c.reg.Teachers(), true)); err != nil {
			return err
		}
		removed, err = c.reg.DeleteTeacher(ctx, idx)
	} else {
		if idx, err = c.choose(ctx, title, peopleOptions(c.reg.Students(), false)); err != nil {
			return err
		}
		removed, err = c.reg.DeleteStudent(ctx, idx)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(c.out, "%s deleted:\n", role)
	c.printPerson(removed, true)
	fmt.Fprintln(c.out)
	return nil
}

func (c *Console) editPerson(ctx context.Context) error {
	fmt.Fprintln(c.out, "Edit: 1 - Student | 2 - Teacher")
	kind, err := c.ask(ctx, "Choose the person type: ")
	if err != nil {
		return err
	}

	var (
		role   model.Role
		people []model.Person
		showID bool
	)
	switch kind {
	case "1":
		role, people = model.RoleStudent, c.reg.Students()
	case "2":
		role, people, showID = model.RoleTeacher, c.reg.Teachers(), true
	default:
		return errInvalidRole
	}
	if err := c.reg.Require(registry.EditOp(role), registry.CollectionOf(role)); err != nil {
		return err
	}

	idx, err := c.choose(ctx, fmt.Sprintf("Choose the %s:", label(role)), peopleOptions(people, showID))
	if err != nil {
		return err
	}
	if err := c.reg.Check(registry.CollectionOf(role), idx); err != nil {
		return err
	}
	current := people[idx]

	name, err := c.ask(ctx, fmt.Sprintf("New name for %s (press Enter to keep): ", current.Name))
	if err != nil {
		return err
	}
	id, err := c.ask(ctx, fmt.Sprintf("New ID for %s (press Enter to keep): ", current.Name))
	if err != nil {
		return err
	}

	updated, err := c.reg.EditPerson(ctx, role, idx, name, id)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, "Data updated successfully!")
	c.printPerson(updated, true)
	return nil
}

func (c *Console) saveSections(ctx context.Context) error {
	views := export.Project(c.reg)
	if err := export.WriteFile(c.exportPath, views); err != nil {
		return &exportError{err: err}
	}
	ctxlog.FromContext(ctx).Info("Sections exported.", "path", c.exportPath, "sections", len(views))
	fmt.Fprintf(c.out, "Sections saved to '%s'\n\n", c.exportPath)
	return nil
}

// askName reads a required name.
func (c *Console) askName(ctx context.Context, prompt string) (string, error) {
	return c.askRequired(ctx, prompt, func(v string) any { return nameForm{Name: v} })
}

// askRequired reads one value and validates it through the form built by wrap.
func (c *Console) askRequired(ctx context.Context, prompt string, wrap func(string) any) (string, error) {
	v, err := c.ask(ctx, prompt)
	if err != nil {
		return "", err
	}
	if err := c.validate.Struct(wrap(v)); err != nil {
		return "", err
	}
	return v, nil
}
