// Package hcl provides the concrete HCL implementation of the config.Loader
// interface. It parses settings files, evaluates their expressions against a
// small cty evaluation context and translates the result into the
// format-agnostic config.Model.
//
// A settings file looks like:
//
//	export_path = "sections-${today}.json"
//
//	log {
//	  level  = "debug"
//	  format = "json"
//	}
//
// Expressions may use the variables `today` (YYYY-MM-DD) and `workdir`, and
// the functions `upper`, `lower` and `format`.
package hcl
