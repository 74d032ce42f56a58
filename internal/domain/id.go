package domain

import "github.com/google/uuid"

// generateID returns a random identifier used to tell countdowns apart in
// logs and in tick routing.
func generateID() string {
	return uuid.NewString()
}
