// Package registry is the aggregate root of the school registry.
//
// A Registry owns the four top-level collections (students, teachers,
// subjects and sections) and is the only thing allowed to mutate them. Every
// record reachable from the outside is a copy; callers select records by
// their 0-based position in the current collection order, the same order the
// console shows them in (1-based).
//
// Deleting a person cascades explicitly:
//
//   - a deleted student is withdrawn from every section;
//   - a deleted teacher is unbound from every subject they were responsible
//     for, and the subjects stay.
//
// Subjects and sections have no delete operation and sections cannot be
// edited. Operations that need a dependency which does not exist yet return a
// *PrerequisiteError, and out-of-range positions return a *SelectionError.
// In both cases nothing is changed.
package registry
