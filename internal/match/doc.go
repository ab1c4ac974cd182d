// Package match compares and derives identifiers.
//
// It backs the "did you mean" suggestions of mapping lookups and schema
// validation, and derives Go names for generated accessor views.
//
// Key functions:
//   - NormalizeIdent: folds case and separators for fuzzy comparison
//   - Levenshtein: rune-wise edit distance
//   - Rank, Suggest: order known names by similarity to an unknown one
//   - ExportedName, UnexportedName: Go identifiers from property names
package match
