// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - DocumentSource: Lists radar PDFs to ingest
//   - TextExtractor: Converts a PDF into text plus provenance
//   - Normaliser: Strips boilerplate from extracted text
//   - PostProcessorPipeline: Segments and tags the normalised text
//   - ChunkStore: Chunk persistence for the indexing layer
//   - ConfigStore: Key-value settings persistence
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, connector, or normaliser package
package driven
