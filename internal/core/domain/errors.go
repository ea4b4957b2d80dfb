package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// Loader Errors.

	// ErrNoDocuments indicates a folder contains no PDF files.
	ErrNoDocuments = errors.New("no PDF files found")

	// ErrNotRadarFile indicates a file is not a Technology Radar PDF.
	ErrNotRadarFile = errors.New("not a technology radar PDF")

	// ErrEmptyFile indicates a zero-length input file.
	ErrEmptyFile = errors.New("empty file")

	// ErrNothingLoaded indicates every candidate file failed to load.
	ErrNothingLoaded = errors.New("no documents loaded")
)
