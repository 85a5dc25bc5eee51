// Package clean implements the index key normalization filter shared by the
// catalog hierarchy matcher and the per-entity index key.
//
// An element's clean name discards everything but letters and digits and
// folds case, so that "Legal Person", "legal-person", and "LEGAL_PERSON"
// all normalize to the same lookup key. Unicode input is first normalized
// to NFC, then case-folded, before the alphanumeric filter runs, so
// accented and composed characters compare consistently across locales.
//
// Capitalize turns a clean name back into the display name Expand assigns
// a synthesized entity: since Name's output is a single lowercase run with
// no separators, capitalizing it only ever touches the leading rune.
package clean
