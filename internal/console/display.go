package console

import (
	"fmt"

	"github.com/vk/schoolregistry/internal/model"
)

func (c *Console) printPerson(p model.Person, showID bool) {
	fmt.Fprintln(c.out, p.Format(showID))
}

func (c *Console) printSubject(s model.Subject) {
	fmt.Fprintf(c.out, "Subject: %s\n", s.Name)
	if s.HasTeacher() {
		if teacher, ok := c.reg.Person(s.Teacher.UUID); ok {
			fmt.Fprintln(c.out, "Responsible teacher:")
			c.printPerson(teacher, true)
			return
		}
	}
	fmt.Fprintln(c.out, "Responsible teacher: [no teacher]")
}

func (c *Console) printSection(s model.Section) {
	fmt.Fprintf(c.out, "\nSection: %s\n", s.Name)
	if subject, ok := c.reg.Subject(s.Subject); ok {
		c.printSubject(subject)
	}
	fmt.Fprintln(c.out, "Students:")
	for _, key := range s.Students {
		if p, ok := c.reg.Person(key); ok {
			c.printPerson(p, false)
		}
	}
	fmt.Fprintln(c.out, "Activities:")
	for _, a := range s.Activities {
		fmt.Fprintf(c.out, " - %s\n", a.Description)
	}
	fmt.Fprintln(c.out)
}

// printOptions writes a 1-based numbered list.
func (c *Console) printOptions(options []string) {
	for i, o := range options {
		fmt.Fprintf(c.out, "%d - %s\n", i+1, o)
	}
}

func peopleOptions(people []model.Person, showID bool) []string {
	out := make([]string, 0, len(people))
	for _, p := range people {
		out = append(out, p.Format(showID))
	}
	return out
}

func subjectOptions(subjects []model.Subject) []string {
	out := make([]string, 0, len(subjects))
	for _, s := range subjects {
		out = append(out, s.Name)
	}
	return out
}

func sectionOptions(sections []model.Section) []string {
	out := make([]string, 0, len(sections))
	for _, s := range sections {
		out = append(out, s.Name)
	}
	return out
}
