package llm

import (
	"context"
)

// Client defines the interface to the external classification service.
type Client interface {
	Classify(ctx context.Context, prompt string) (ClassificationResponse, error)
}

// ClassificationResponse contains the service's raw classification result.
type ClassificationResponse struct {
	// Answer is the verbatim model reply, kept for audit before any
	// normalization happens.
	Answer string
}
