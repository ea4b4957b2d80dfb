// Package normalisers provides implementations of the Normaliser interface.
// A normaliser turns extracted PDF text into a Document ready for the
// post-processing pipeline.
package normalisers
