// Package image orchestrates prompt-to-image generation: generate via the
// upstream API, then persist to object storage.
package image

import "context"

// Generator produces the base64 PNG payload for a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Store persists a base64 PNG payload and returns its public URL.
type Store interface {
	Save(ctx context.Context, imageData string) (string, error)
}

// Service runs the two steps of a generation request in order. The store
// is never invoked unless generation succeeded, so a failed request leaves
// no partial object behind.
type Service struct {
	gen   Generator
	store Store
}

// NewService creates a new image Service.
func NewService(gen Generator, store Store) *Service {
	return &Service{gen: gen, store: store}
}

// Generate turns prompt into a publicly reachable image URL.
func (s *Service) Generate(ctx context.Context, prompt string) (string, error) {
	imageData, err := s.gen.Generate(ctx, prompt)
	if err != nil {
		return "", err
	}

	return s.store.Save(ctx, imageData)
}
