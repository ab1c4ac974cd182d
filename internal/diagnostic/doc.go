// Package diagnostic collects structured errors, warnings and notes.
//
// Schema validation reports problems in a mapping definition through it,
// and the check command reports rows that fail to convert. Each entry
// carries a stable code, a scope (schema name or row) and the property
// involved, plus optional "did you mean" suggestions.
package diagnostic
