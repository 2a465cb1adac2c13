package usecase

import (
	"context"
	"fmt"

	"profiles_backend/internal/feature/identity/domain/entity"

	"golang.org/x/crypto/bcrypt"
)

// ProfileUpdate describes a profile change. Nil fields are left untouched,
// which lets PUT and PATCH share one code path.
type ProfileUpdate struct {
	Email    *string
	Name     *string
	Password *string
}

// GetProfile retrieves a single profile by ID.
func (u *identityUsecase) GetProfile(ctx context.Context, id uint) (*entity.User, error) {
	return u.users.FindByID(ctx, id)
}

// ListProfiles returns profiles matching the search query, or all profiles
// when the query is empty. Matching is a case-insensitive substring test
// against name or email.
func (u *identityUsecase) ListProfiles(ctx context.Context, search string) ([]*entity.User, error) {
	return u.users.Search(ctx, search)
}

// UpdateProfile applies the given changes to an existing profile.
// A password change always goes through the hashing path; the plaintext
// never reaches the repository.
func (u *identityUsecase) UpdateProfile(ctx context.Context, id uint, in ProfileUpdate) (*entity.User, error) {
	user, err := u.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Email != nil {
		normalized, err := normalizeEmail(*in.Email)
		if err != nil {
			return nil, err
		}
		user.Email = normalized
	}
	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Password != nil {
		if err := validatePassword(*in.Password); err != nil {
			return nil, err
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.Password = string(hashed)
	}

	if err := u.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteProfile removes a profile by ID.
func (u *identityUsecase) DeleteProfile(ctx context.Context, id uint) error {
	return u.users.Delete(ctx, id)
}
