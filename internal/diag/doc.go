// Package diag defines the diagnostic model shared by the fixity collector
// and parser. The lexer and layout engine do not report diagnostics.
//
// Diagnostic is the central record: a Severity, a closed Code, a message,
// a primary span, and optional Notes for secondary context. Producers
// emit through a Reporter (typically a BagReporter writing into a Bag)
// so they stay decoupled from how diagnostics are stored or rendered —
// rendering itself is out of scope here, same as spec.md §1 excludes it
// from the core.
//
// Bag accumulates diagnostics for one parse, with an optional capacity
// cap, stable sorting, and span+code deduplication.
package diag
