package services

import (
	"context"

	"github.com/JuanDPAffi/redelex-api/internal/repositories"
	"github.com/JuanDPAffi/redelex-api/internal/session"
)

// profileSource adapts the user repository to the session store's
// refresh hook.
type profileSource struct {
	userRepo repositories.UserRepositoryInterface
}

func NewProfileSource(userRepo repositories.UserRepositoryInterface) session.ProfileSource {
	return &profileSource{userRepo: userRepo}
}

func (p *profileSource) LoadProfile(ctx context.Context, userID uint64) (session.RawProfile, error) {
	user, err := p.userRepo.FindByID(ctx, userID)
	if err != nil {
		return session.RawProfile{}, err
	}
	var inmoID uint64
	if user.InmobiliariaID != nil {
		inmoID = *user.InmobiliariaID
	}
	return session.RawProfile{
		ID:             user.ID,
		Name:           user.Name,
		Email:          user.Email,
		Role:           user.Role,
		Permissions:    user.Permissions,
		InmobiliariaID: inmoID,
	}, nil
}
