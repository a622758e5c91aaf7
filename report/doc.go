// Package report keeps a processing run alive when a single record fails.
//
// Wrap takes a process-shaped target (a category-bearing value and an entity
// ID) and returns a target with the same name and kind that never fails:
//   - a function that errors or panics returns the zero result,
//   - a generator that errors or panics ends early, after everything it
//     already produced has been delivered.
//
// Every absorbed failure prints exactly one line to standard output:
//
//	WARN: Error caught while profiling {category}.process for entity ID {id}: {error}
//
// The line goes to standard output whatever the logging setup is, and its
// wording and field order are fixed: log scrapers match on it.
//
// Example:
//
//	proc := callable.MustProcessOf[*Transform, string, Row]((*Transform).Process)
//	safe := report.Wrap(proc)
//	for row := range safe.Iter(txf, "entity-1") {
//	    ...
//	}
package report
