package export

import (
	"github.com/google/uuid"
	"github.com/vk/schoolregistry/internal/model"
)

// Source is the read-only part of the registry the projection needs.
type Source interface {
	Sections() []model.Section
	Person(key uuid.UUID) (model.Person, bool)
	Subject(key uuid.UUID) (model.Subject, bool)
}

// PersonView is the exported shape of a student or teacher.
type PersonView struct {
	Type string `json:"type"`
	Name string `json:"name"`
	ID   string `json:"id"`
}

// SubjectView is the exported shape of a subject. Teacher is nil, and
// therefore encoded as null, when the subject has no teacher.
type SubjectView struct {
	Name    string      `json:"name"`
	Teacher *PersonView `json:"teacher"`
}

// ActivityView is the exported shape of an activity.
type ActivityView struct {
	Description string `json:"description"`
}

// SectionView is the exported shape of a section.
type SectionView struct {
	Name       string         `json:"name"`
	Subject    SubjectView    `json:"subject"`
	Students   []PersonView   `json:"students"`
	Activities []ActivityView `json:"activities"`
}

// Project builds one SectionView per section, in registration order.
// Collections are never nil so they encode as [] rather than null.
func Project(src Source) []SectionView {
	sections := src.Sections()
	out := make([]SectionView, 0, len(sections))
	for _, s := range sections {
		out = append(out, projectSection(src, s))
	}
	return out
}

func projectSection(src Source, s model.Section) SectionView {
	v := SectionView{
		Name:       s.Name,
		Students:   make([]PersonView, 0, len(s.Students)),
		Activities: make([]ActivityView, 0, len(s.Activities)),
	}

	if subject, ok := src.Subject(s.Subject); ok {
		v.Subject = projectSubject(src, subject)
	}
	for _, key := range s.Students {
		if p, ok := src.Person(key); ok {
			v.Students = append(v.Students, projectPerson(p))
		}
	}
	for _, a := range s.Activities {
		v.Activities = append(v.Activities, ActivityView{Description: a.Description})
	}
	return v
}

func projectSubject(src Source, s model.Subject) SubjectView {
	v := SubjectView{Name: s.Name}
	if !s.HasTeacher() {
		return v
	}
	if teacher, ok := src.Person(s.Teacher.UUID); ok {
		pv := projectPerson(teacher)
		v.Teacher = &pv
	}
	return v
}

func projectPerson(p model.Person) PersonView {
	return PersonView{Type: p.Role.String(), Name: p.Name, ID: p.ID}
}
