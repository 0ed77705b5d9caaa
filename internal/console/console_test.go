package console_test

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/schoolregistry/internal/console"
	"github.com/vk/schoolregistry/internal/export"
	"github.com/vk/schoolregistry/internal/registry"
	"github.com/vk/schoolregistry/internal/testutil"
)

// Menu choices, as typed by the user.
const (
	optExit          = "0"
	optAddStudent    = "1"
	optAddTeacher    = "2"
	optAddSubject    = "3"
	optAddSection    = "4"
	optAddActivity   = "5"
	optEnroll        = "6"
	optList          = "7"
	optDeleteStudent = "8"
	optDeleteTeacher = "9"
	optEdit          = "10"
	optExport        = "11"
)

// anaMath is the input that registers teacher Ana, subject Math, section A1
// and student Bob enrolled in A1.
var anaMath = []string{
	optAddTeacher, "Ana", "111",
	optAddSubject, "Math", "1",
	optAddSection, "A1", "1",
	optAddStudent, "Bob", "222",
	optEnroll, "1", "1",
}

func script(parts ...[]string) []string {
	var out []string
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func TestConsole_FullScenarioExport(t *testing.T) {
	// --- Arrange ---
	path := filepath.Join(t.TempDir(), "sections.json")
	reg := registry.New()

	// --- Act ---
	res := testutil.RunConsole(t, reg, path, script(anaMath, []string{optExport, optExit})...)

	// --- Assert ---
	require.NoError(t, res.Err)
	assert.Contains(t, res.Output, "Teacher registered successfully!")
	assert.Contains(t, res.Output, "Subject registered successfully!")
	assert.Contains(t, res.Output, "Section registered successfully!")
	assert.Contains(t, res.Output, "Student registered successfully!")
	assert.Contains(t, res.Output, "Student enrolled in section successfully!")
	assert.Contains(t, res.Output, "Sections saved to '"+path+"'")
	assert.Contains(t, res.Output, "Exiting...")

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `[{
		"name": "A1",
		"subject": {"name": "Math", "teacher": {"type": "Teacher", "name": "Ana", "id": "111"}},
		"students": [{"type": "Student", "name": "Bob", "id": "222"}],
		"activities": []
	}]`, string(b))
	assert.Contains(t, res.LogOutput, "Sections exported.")
}

func TestConsole_InvalidMenuInputKeepsLooping(t *testing.T) {
	res := testutil.RunConsole(t, registry.New(), "", "abc", "-1", "+1", "12", "", optExit)

	require.NoError(t, res.Err)
	assert.Equal(t, 5, strings.Count(res.Output, "Invalid option!"))
	assert.Equal(t, 6, strings.Count(res.Output, "--- Menu ---"))
}

func TestConsole_EndOfInputExits(t *testing.T) {
	reg := registry.New()

	res := testutil.RunConsole(t, reg, "", optAddStudent, "Bob")

	require.NoError(t, res.Err)
	assert.Contains(t, res.Output, "Exiting...")
	assert.Empty(t, reg.Students(), "a half-typed record must not be registered")
}

func TestConsole_Prerequisites(t *testing.T) {
	testCases := []struct {
		name   string
		input  []string
		expect string
	}{
		{"subject without teachers", []string{optAddSubject}, "Register a teacher first."},
		{"section without subjects", []string{optAddSection}, "Register a subject first."},
		{"activity without sections", []string{optAddActivity}, "Register a section first."},
		{"enroll without students", []string{optEnroll}, "Register a student first."},
		{"delete without students", []string{optDeleteStudent}, "No students registered."},
		{"delete without teachers", []string{optDeleteTeacher}, "No teachers registered."},
		{"edit without students", []string{optEdit, "1"}, "No students registered."},
		{"edit without teachers", []string{optEdit, "2"}, "No teachers registered."},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			reg := registry.New()

			res := testutil.RunConsole(t, reg, "", append(tc.input, optExit)...)

			require.NoError(t, res.Err)
			assert.Contains(t, res.Output, tc.expect)
			assert.NotContains(t, res.Output, "name:", "nothing may be asked once a prerequisite is missing")
			assert.Empty(t, reg.Subjects())
			assert.Empty(t, reg.Sections())
		})
	}
}

func TestConsole_EnrollWithoutSections(t *testing.T) {
	reg := registry.New()

	res := testutil.RunConsole(t, reg, "", optAddStudent, "Bob", "222", optEnroll, optExit)

	require.NoError(t, res.Err)
	assert.Contains(t, res.Output, "Register a section first.")
}

func TestConsole_InvalidSelections(t *testing.T) {
	reg := registry.New()

	res := testutil.RunConsole(t, reg, "",
		optAddTeacher, "Ana", "111",
		optAddSubject, "Math", "2", // out of range
		optAddSubject, "Math", "x", // not a number
		optAddSubject, "Math", "0", // numbering starts at 1
		optDeleteTeacher, "7",
		optExit,
	)

	require.NoError(t, res.Err)
	assert.Equal(t, 4, strings.Count(res.Output, "Invalid selection."))
	assert.Contains(t, res.Output, "1 - Name: Ana, ID: 111")
	assert.Empty(t, reg.Subjects())
	assert.Len(t, reg.Teachers(), 1)
}

func TestConsole_RejectsEmptyValues(t *testing.T) {
	reg := registry.New()

	res := testutil.RunConsole(t, reg, "",
		optAddStudent, "", "222",
		optAddTeacher, "  ", "",
		optAddTeacher, "Ana", "111",
		optAddSubject, "",
		optExit,
	)

	require.NoError(t, res.Err)
	assert.Contains(t, res.Output, "Invalid input: name must not be empty.")
	assert.Contains(t, res.Output, "Invalid input: name and id must not be empty.")
	assert.Empty(t, reg.Students())
	assert.Len(t, reg.Teachers(), 1)
	assert.Empty(t, reg.Subjects())
}

func TestConsole_ActivitiesAndListing(t *testing.T) {
	reg := registry.New()

	res := testutil.RunConsole(t, reg, "", script(anaMath, []string{
		optAddActivity, "Homework 1", "1",
		optAddActivity, "", // rejected
		optList,
		optExit,
	})...)

	require.NoError(t, res.Err)
	assert.Contains(t, res.Output, "Activity added successfully!")
	assert.Contains(t, res.Output, "Invalid input: description must not be empty.")
	assert.Contains(t, res.Output, "Section: A1\nSubject: Math\nResponsible teacher:\nName: Ana, ID: 111\nStudents:\nName: Bob\nActivities:\n - Homework 1\n")
	assert.Contains(t, res.Output, "=== Registered people ===\nName: Bob, ID: 222\nName: Ana, ID: 111\n")
}

func TestConsole_ListWithoutSections(t *testing.T) {
	res := testutil.RunConsole(t, registry.New(), "", optList, optExit)

	require.NoError(t, res.Err)
	assert.Contains(t, res.Output, "No sections registered.")
}

func TestConsole_DeleteTeacherCascades(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	reg := registry.New()

	res := testutil.RunConsole(t, reg, path, script(anaMath, []string{
		optDeleteTeacher, "1",
		optList,
		optExport,
		optExit,
	})...)

	require.NoError(t, res.Err)
	assert.Contains(t, res.Output, "Teacher deleted:\nName: Ana, ID: 111\n")
	assert.Contains(t, res.Output, "Responsible teacher: [no teacher]")

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	var views []export.SectionView
	require.NoError(t, json.Unmarshal(b, &views))
	require.Len(t, views, 1)
	assert.Nil(t, views[0].Subject.Teacher)
	assert.Equal(t, "Math", views[0].Subject.Name)
}

func TestConsole_DeleteStudentCascades(t *testing.T) {
	reg := registry.New()

	res := testutil.RunConsole(t, reg, "", script(anaMath, []string{
		optDeleteStudent, "1",
		optExit,
	})...)

	require.NoError(t, res.Err)
	assert.Contains(t, res.Output, "Student deleted:\nName: Bob, ID: 222\n")
	assert.Empty(t, reg.Students())
	assert.Empty(t, reg.Sections()[0].Students)
}

func TestConsole_EditPerson(t *testing.T) {
	reg := registry.New()

	res := testutil.RunConsole(t, reg, "",
		optAddStudent, "Bob", "222",
		optEdit, "1", "1", "", "999",
		optEdit, "3",
		optEdit, "1", "1", "", "",
		optExit,
	)

	require.NoError(t, res.Err)
	assert.Contains(t, res.Output, "New name for Bob (press Enter to keep): ")
	assert.Contains(t, res.Output, "Data updated successfully!\nName: Bob, ID: 999\n")
	assert.Contains(t, res.Output, "Invalid option.")
	students := reg.Students()
	require.Len(t, students, 1)
	assert.Equal(t, "Bob", students[0].Name)
	assert.Equal(t, "999", students[0].ID)
}

func TestConsole_EditOutOfRangeAsksNothingMore(t *testing.T) {
	reg := registry.New()

	res := testutil.RunConsole(t, reg, "",
		optAddTeacher, "Ana", "111",
		optEdit, "2", "4",
		optExit,
	)

	require.NoError(t, res.Err)
	assert.Contains(t, res.Output, "Invalid selection.")
	assert.NotContains(t, res.Output, "New name for")
}

func TestConsole_NormalizesInput(t *testing.T) {
	reg := registry.New()

	res := testutil.RunConsole(t, reg, "", optAddStudent, "  Jose\u0301  ", "123", optExit)

	require.NoError(t, res.Err)
	require.Len(t, reg.Students(), 1)
	assert.Equal(t, "Jos\u00e9", reg.Students()[0].Name, "combining accents are composed")
}

func TestConsole_ExportFailureIsReported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "out.json")

	res := testutil.RunConsole(t, registry.New(), path, optExport, optList, optExit)

	require.NoError(t, res.Err)
	assert.Contains(t, res.Output, "Could not save sections:")
	assert.Contains(t, res.Output, "No sections registered.", "the loop must go on after a failed export")
}

func TestConsole_OverlongLineIsRejected(t *testing.T) {
	reg := registry.New()
	long := strings.Repeat("x", 70000)

	res := testutil.RunConsole(t, reg, "",
		optAddStudent, long,
		long,
		optAddStudent, "Bob", "222",
		optExit,
	)

	require.NoError(t, res.Err)
	assert.Contains(t, res.Output, "Invalid input: lines are limited to")
	assert.Contains(t, res.Output, "Invalid option!")
	students := reg.Students()
	require.Len(t, students, 1)
	assert.Equal(t, "Bob", students[0].Name)
}

func TestConsole_CancelInterruptsPendingRead(t *testing.T) {
	// --- Arrange ---
	pr, pw := io.Pipe()
	t.Cleanup(func() { pw.Close() })
	out := &testutil.SafeBuffer{}
	reg := registry.New()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- console.New(pr, out, reg, "").Run(ctx) }()

	_, err := io.WriteString(pw, optAddTeacher+"\nAna\n")
	require.NoError(t, err)
	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "ID of the teacher: ")
	}, time.Second, 10*time.Millisecond)

	// --- Act ---
	cancel()

	// --- Assert ---
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("console did not stop after cancellation")
	}
	assert.Contains(t, out.String(), "Exiting...")
	assert.Empty(t, reg.Teachers(), "an interrupted record must not be registered")
}
