package domain

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// InMemoryProfileDirectory stores requester profiles in memory.
type InMemoryProfileDirectory struct {
	mu       sync.RWMutex
	profiles map[string]RequesterProfile
}

// NewInMemoryProfileDirectory creates a new in-memory profile directory.
func NewInMemoryProfileDirectory() *InMemoryProfileDirectory {
	return &InMemoryProfileDirectory{
		mu:       sync.RWMutex{},
		profiles: make(map[string]RequesterProfile),
	}
}

// GetProfile retrieves the profile of a requester.
func (d *InMemoryProfileDirectory) GetProfile(
	_ context.Context,
	requesterID string,
) (RequesterProfile, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	profile, exists := d.profiles[requesterID]
	if !exists {
		return RequesterProfile{}, fmt.Errorf("%w: %s", ErrProfileNotFound, requesterID)
	}

	return profile, nil
}

// PutProfile creates or replaces the profile of a requester.
func (d *InMemoryProfileDirectory) PutProfile(
	_ context.Context,
	requesterID string,
	profile RequesterProfile,
) error {
	if requesterID == "" {
		return errors.New("requester id cannot be empty")
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.profiles[requesterID] = profile
	return nil
}
