package console

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"
	"github.com/vk/schoolregistry/internal/ctxlog"
	"github.com/vk/schoolregistry/internal/export"
	"github.com/vk/schoolregistry/internal/model"
	"github.com/vk/schoolregistry/internal/registry"
)

// Console drives a registry from a line-oriented input stream.
type Console struct {
	in         *lineReader
	out        io.Writer
	reg        *registry.Registry
	exportPath string
	validate   *validator.Validate
}

// menuItem is one numbered entry of the main menu.
type menuItem struct {
	label string
	run   func(ctx context.Context) error
}

// New creates a Console. An empty exportPath means export.DefaultPath.
func New(in io.Reader, out io.Writer, reg *registry.Registry, exportPath string) *Console {
	if exportPath == "" {
		exportPath = export.DefaultPath
	}
	return &Console{
		in:         newLineReader(in),
		out:        out,
		reg:        reg,
		exportPath: exportPath,
		validate:   validator.New(validator.WithRequiredStructEnabled()),
	}
}

// menu lists the entries in display order; entry i is chosen with i+1.
func (c *Console) menu() []menuItem {
	return []menuItem{
		{"Register Student", func(ctx context.Context) error { return c.registerPerson(ctx, model.RoleStudent) }},
		{"Register Teacher", func(ctx context.Context) error { return c.registerPerson(ctx, model.RoleTeacher) }},
		{"Register Subject", c.registerSubject},
		{"Register Section", c.registerSection},
		{"Add Activity to Section", c.addActivity},
		{"Enroll Student in Section", c.enrollStudent},
		{"List Sections and Registrations", c.list},
		{"Delete Student", func(ctx context.Context) error { return c.deletePerson(ctx, model.RoleStudent) }},
		{"Delete Teacher", func(ctx context.Context) error { return c.deletePerson(ctx, model.RoleTeacher) }},
		{"Edit Person", c.editPerson},
		{"Save Sections to JSON", c.saveSections},
	}
}

// Run shows the menu and executes choices until the exit command or the end
// of input. Cancelling ctx interrupts a pending read and ends the loop
// cleanly.
func (c *Console) Run(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Console loop started.", "export_path", c.exportPath)
	items := c.menu()

	for {
		if ctx.Err() != nil {
			return c.stop(ctx)
		}

		c.printMenu(items)
		choice, err := c.ask(ctx, "Choose an option: ")
		switch {
		case err == nil:
		case errors.Is(err, io.EOF), ctx.Err() != nil:
			return c.stop(ctx)
		case errors.Is(err, errLineTooLong):
			choice = ""
		default:
			return fmt.Errorf("failed to read menu choice: %w", err)
		}
		fmt.Fprintln(c.out)

		n, ok := parseNumber(choice)
		if !ok || n > len(items) {
			logger.Debug("Rejected menu input.", "input", choice)
			fmt.Fprintln(c.out, "Invalid option!")
			continue
		}
		if n == 0 {
			fmt.Fprintln(c.out, "Exiting...")
			return nil
		}

		item := items[n-1]
		err = item.run(ctxlog.With(ctx, "menu", item.label))
		switch {
		case err == nil:
		case errors.Is(err, io.EOF), ctx.Err() != nil:
			return c.stop(ctx)
		default:
			if !c.report(err) {
				return err
			}
			logger.Debug("Menu action failed.", "menu", item.label, "error", err)
		}
	}
}

// stop ends the loop when the input is exhausted or ctx is cancelled.
func (c *Console) stop(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		ctxlog.FromContext(ctx).Info("Console interrupted.", "reason", err)
	}
	fmt.Fprintln(c.out, "\nExiting...")
	return nil
}

func (c *Console) printMenu(items []menuItem) {
	fmt.Fprintln(c.out, "\n--- Menu ---")
	for i, item := range items {
		fmt.Fprintf(c.out, "%d. %s\n", i+1, item.label)
	}
	fmt.Fprintln(c.out, "0. Exit")
	fmt.Fprintln(c.out)
}

// ask prints a prompt and reads the answer.
func (c *Console) ask(ctx context.Context, prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	return c.in.next(ctx)
}

// choose prints a numbered list under title and reads a 0-based position.
// The range is checked by the registry operation the position is passed to.
func (c *Console) choose(ctx context.Context, title string, options []string) (int, error) {
	fmt.Fprintln(c.out, title)
	c.printOptions(options)
	answer, err := c.in.next(ctx)
	if err != nil {
		return 0, err
	}
	return parseChoice(answer)
}

// report prints a user-facing message for a recoverable error and reports
// whether err was recoverable.
func (c *Console) report(err error) bool {
	var (
		pe *registry.PrerequisiteError
		ve validator.ValidationErrors
		xe *exportError
	)
	switch {
	case errors.As(err, &pe):
		switch pe.Op {
		case registry.OpDeleteStudent, registry.OpDeleteTeacher, registry.OpEditStudent, registry.OpEditTeacher:
			fmt.Fprintf(c.out, "No %s registered.\n\n", pe.Missing)
		default:
			fmt.Fprintf(c.out, "Register a %s first.\n\n", pe.Missing.Singular())
		}
	case errors.Is(err, registry.ErrInvalidSelection):
		fmt.Fprintln(c.out, "Invalid selection.")
		fmt.Fprintln(c.out)
	case errors.As(err, &ve):
		fmt.Fprintln(c.out, describeValidation(ve))
		fmt.Fprintln(c.out)
	case errors.Is(err, errLineTooLong):
		fmt.Fprintf(c.out, "Invalid input: lines are limited to %d bytes.\n\n", maxLineBytes)
	case errors.Is(err, errInvalidRole):
		fmt.Fprintln(c.out, "Invalid option.")
		fmt.Fprintln(c.out)
	case errors.As(err, &xe):
		fmt.Fprintf(c.out, "Could not save sections: %v\n\n", xe.err)
	default:
		return false
	}
	return true
}
