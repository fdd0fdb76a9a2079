// Package diag defines the diagnostic model shared by rewrite rules and the
// driver.
//
// Diagnostic is the central record: severity, a stable numeric code, a short
// human message, and the syntax node the finding is anchored to. Bag is the
// per-run sink rules emit into; it keeps arrival order and applies no
// deduplication or gating. Rendering lives in internal/treefmt, and
// severity configuration lives in internal/config — this package stays free
// of formatting, IO and CLI concerns.
package diag
