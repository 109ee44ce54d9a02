// Package politext converts raw HTML documents into a linearized,
// semantically-labeled plain-text representation suited for downstream
// natural-language analysis. Navigation, ads, scripts and other
// non-content scaffolding are removed; what remains is re-rendered as a
// sequence of labeled blocks (headings, paragraphs, lists, tables,
// quotes) that preserve document order and structural context a plain
// innerText extraction would discard.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., goquery/,
// sqlite/, gemini/).
package politext
