// Package console is the interactive, menu-driven front end of the school
// registry. It reads choices and record data line by line, prints numbered
// candidate lists for every selection and reports precondition failures as
// plain messages. The loop only ends on the exit command or end of input.
//
// The console holds the only reference to its registry and never mutates
// records itself; every change goes through a registry operation.
package console
