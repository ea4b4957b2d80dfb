// Package domain defines the core business entities for radarchunk.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - RawDocument: Extracted PDF text plus provenance
//   - Document: The normalised text of one radar report
//   - Quadrant, Ring: The fixed radar taxonomy
//   - StructuralTag, StructureMap: Per-entry classification
//   - DocumentMetadata, Chunk: What the indexing layer receives
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
