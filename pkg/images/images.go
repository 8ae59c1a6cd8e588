// Package images defines how herbdb finds pictures of plants in an
// external service.
package images

import "context"

// Candidate is a plant record of the image service.
type Candidate struct {
	// Ref is the identifier of the record in the service.
	Ref            string
	ScientificName string
	CommonName     string
	ImageURL       string
}

// Lookup searches an image service for a plant.
type Lookup interface {
	// Find searches by scientific name first and falls back to common
	// name when nothing is found. It returns nil if no record with an
	// image exists. Errors mean the service could not be asked and the
	// lookup should be retried later.
	Find(ctx context.Context, scientificName, commonName string) (*Candidate, error)
}
