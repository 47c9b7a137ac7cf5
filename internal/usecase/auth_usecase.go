package usecase

import (
	"context"
	"errors"

	"lifemate-backend/internal/domain"
	"lifemate-backend/pkg/apperror"
)

type authUsecase struct {
	userRepo domain.UserRepository
}

func NewAuthUsecase(userRepo domain.UserRepository) domain.AuthUsecase {
	return &authUsecase{userRepo: userRepo}
}

// GetCurrentUser loads the account behind a verified token. The stored role is
// authoritative; the token claim is only a hint.
func (u *authUsecase) GetCurrentUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.Unauthorized("User not found")
		}
		return nil, apperror.Internal(err)
	}
	return user, nil
}
