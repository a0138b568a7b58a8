package identity

import (
	"context"
	"errors"
	"strings"

	"github.com/ariebrainware/healthghar/apperror"
	"github.com/ariebrainware/healthghar/model"
	"github.com/ariebrainware/healthghar/store"
)

// ErrNotAuthenticated is returned by caller-scoped operations without an identity.
var ErrNotAuthenticated = apperror.Unauthenticated("Not authenticated")

type ProfileInput struct {
	Age         int
	CountryCode string
	Phone       string
	Address     string
	Gender      string
}

// UpdateProfile creates or updates the caller's profile row.
func (p *Provider) UpdateProfile(ctx context.Context, in ProfileInput) (model.Profile, error) {
	id, ok := FromContext(ctx)
	if !ok {
		return model.Profile{}, ErrNotAuthenticated
	}
	if in.Age < 0 {
		return model.Profile{}, apperror.Validation("Age must not be negative")
	}

	profile := model.Profile{
		UserID:    id.UserID,
		Age:       in.Age,
		Phone:     joinPhone(in.CountryCode, in.Phone),
		Address:   strings.TrimSpace(in.Address),
		Gender:    strings.TrimSpace(in.Gender),
		UpdatedAt: p.now().UTC(),
	}

	var existing model.Profile
	err := p.backend.First(ctx, store.Where(store.Eq("user_id", id.UserID)), &existing)
	switch {
	case errors.Is(err, store.ErrNotFound):
		if err := p.backend.Insert(ctx, &profile); err != nil {
			return model.Profile{}, apperror.Persistence("Failed to update profile", err)
		}
	case err != nil:
		return model.Profile{}, apperror.Persistence("Failed to update profile", err)
	default:
		_, err := p.backend.Update(ctx, &model.Profile{}, store.Where(store.Eq("user_id", id.UserID)), map[string]interface{}{
			"age":        profile.Age,
			"phone":      profile.Phone,
			"address":    profile.Address,
			"gender":     profile.Gender,
			"updated_at": profile.UpdatedAt,
		})
		if err != nil {
			return model.Profile{}, apperror.Persistence("Failed to update profile", err)
		}
	}
	return profile, nil
}

// GetProfile returns the caller's profile, or an empty one when none exists yet.
func (p *Provider) GetProfile(ctx context.Context) (model.Profile, error) {
	id, ok := FromContext(ctx)
	if !ok {
		return model.Profile{}, ErrNotAuthenticated
	}
	var profile model.Profile
	err := p.backend.First(ctx, store.Where(store.Eq("user_id", id.UserID)), &profile)
	if errors.Is(err, store.ErrNotFound) {
		return model.Profile{UserID: id.UserID}, nil
	}
	if err != nil {
		return model.Profile{}, apperror.Persistence("Failed to load profile", err)
	}
	return profile, nil
}

func joinPhone(countryCode, local string) string {
	countryCode = strings.TrimSpace(countryCode)
	local = strings.TrimSpace(local)
	switch {
	case local == "":
		return ""
	case countryCode == "":
		return local
	default:
		return countryCode + " " + local
	}
}
