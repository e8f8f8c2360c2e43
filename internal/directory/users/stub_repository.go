package users

import (
	"context"

	"github.com/dmitrijs2005/userdir/internal/logging"
	"github.com/dmitrijs2005/userdir/internal/timex"
)

// Placeholder values returned by StubRepository lookups.
const (
	PlaceholderName  = "Example User"
	PlaceholderEmail = "user@example.com"
)

// StubRepository simulates a database round trip without storing anything.
// Save only logs; FindByID synthesizes a placeholder user for the requested id.
type StubRepository struct {
	clock  timex.Clock
	logger logging.Logger
}

func NewStubRepository(clock timex.Clock, logger logging.Logger) *StubRepository {
	return &StubRepository{
		clock:  clock,
		logger: logger.With("module", "stub_repository"),
	}
}

func (r *StubRepository) Save(ctx context.Context, user User) error {
	r.logger.Info(ctx, "saving user", "name", user.Name, "id", user.ID, "email", user.Email)
	return nil
}

// FindByID does not consult any store: the result carries the requested id,
// fixed placeholder name and email, and the current time as CreatedAt.
func (r *StubRepository) FindByID(ctx context.Context, id int) (User, error) {
	r.logger.Debug(ctx, "looking up user", "id", id)

	return User{
		ID:        id,
		Name:      PlaceholderName,
		Email:     PlaceholderEmail,
		CreatedAt: r.clock.Now(),
	}, nil
}
