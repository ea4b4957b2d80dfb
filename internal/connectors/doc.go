// Package connectors provides implementations of the DocumentSource
// interface. Each connector knows how to discover radar PDFs in a specific
// kind of location.
package connectors
