// Package export turns the registry's sections into the JSON document users
// save with the "export" menu entry.
//
// Project is a pure, order-preserving projection of the section graph
// (section -> subject -> teacher, section -> students, section -> activities)
// into plain view structs. Encode and WriteFile serialise those views as
// indented UTF-8 JSON with non-ASCII and HTML characters kept literally.
//
// An exported document is never read back by the program.
package export
