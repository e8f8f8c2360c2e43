// Package users implements the user directory: creating users with a
// time-derived id and saving/fetching them through a Repository.
//
// The default Repository is StubRepository, which performs no I/O. Ids are
// demo quality: currentTimeMillis mod 10000, so collisions are expected and
// ids are neither unique nor monotonic.
package users

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/userdir/internal/timex"
)

// idSpace bounds generated ids to [0, idSpace).
const idSpace = 10000

type Service struct {
	repo  Repository
	clock timex.Clock
}

func NewService(repo Repository, clock timex.Clock) *Service {
	return &Service{repo: repo, clock: clock}
}

// Create builds a new User. Name and email are stored exactly as given,
// empty strings included. It never fails.
func (s *Service) Create(name, email string) User {
	now := s.clock.Now()
	return User{
		ID:        generateID(now.UnixMilli()),
		Name:      name,
		Email:     email,
		CreatedAt: now,
	}
}

// Save hands the user to the repository.
func (s *Service) Save(ctx context.Context, user User) error {
	if err := s.repo.Save(ctx, user); err != nil {
		return fmt.Errorf("error saving user: %w", err)
	}
	return nil
}

// FetchByID returns the user stored under id. Negative ids are rejected with
// a *ValidationError before the repository is consulted.
func (s *Service) FetchByID(ctx context.Context, id int) (User, error) {
	if id < 0 {
		return User{}, &ValidationError{ID: id}
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return User{}, fmt.Errorf("error fetching user: %w", err)
	}

	return user, nil
}

func generateID(millis int64) int {
	id := millis % idSpace
	if id < 0 {
		id += idSpace
	}
	return int(id)
}
