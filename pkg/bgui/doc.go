// Package bgui decodes, models, edits and re-encodes BGUI layout container
// files, the binary UI description format used by the Madness-engine racing
// titles.
//
// The format is undocumented and carries no record-length framing that can be
// trusted, so parsing is anchor-based: the trailing register index is located
// first, its id set then gates a marker scan over the element body, and record
// extents come from neighboring records rather than declared lengths. The
// usual entry points are Parse and ParseFile:
//
//	f, err := bgui.ParseFile("hud.bgui")
//	if err != nil { ... }
//	tree := f.Tree()
//
// Untouched files round-trip byte-identically through Serialize. Edits are
// scoped: changing one element re-encodes only the element body block, and
// edited records are normalized to a canonical resource sub-block layout.
package bgui
