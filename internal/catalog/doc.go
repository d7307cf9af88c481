// Package catalog stores named opening-hours schedules durably.
//
// A catalog entry pairs a unique name (a shop, a desk, a help line) with
// an opening-hours expression. Expressions are validated on the way in,
// so everything read back from the catalog is parseable.
//
// Storage is a single SQLite database. Entries can be added one at a
// time, imported in bulk from a YAML document, or loaded from a directory
// of CUE definition files.
package catalog
