package identity

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/ariebrainware/healthghar/apperror"
	"github.com/ariebrainware/healthghar/model"
	"github.com/ariebrainware/healthghar/store"
	"github.com/ariebrainware/healthghar/util"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = apperror.Validation("Invalid email or password")
	ErrEmailTaken         = apperror.Conflict("Email already exists")
	ErrDoctorEmail        = apperror.Conflict("Email belongs to a doctor, ask an administrator for the account")
)

type LoginInput struct {
	Email    string
	Password string
}

// LoginResult is returned to the client after a successful sign in.
type LoginResult struct {
	Token     string    `json:"token"`
	Role      string    `json:"role"`
	UserID    string    `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

type SignupInput struct {
	Name     string
	Email    string
	Password string
}

// Login verifies the credentials, records a session and returns its token.
func (p *Provider) Login(ctx context.Context, in LoginInput, client ClientInfo) (LoginResult, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" || in.Password == "" {
		return LoginResult{}, apperror.Validation("Email and password are required")
	}

	var user model.User
	err := p.backend.First(ctx, store.Where(store.Eq("email", email)), &user)
	if errors.Is(err, store.ErrNotFound) {
		util.LogLoginFailure(email, client.IP, client.Agent, "user not found")
		return LoginResult{}, ErrInvalidCredentials
	}
	if err != nil {
		util.LogLoginFailure(email, client.IP, client.Agent, "database error")
		return LoginResult{}, apperror.Persistence("Failed to load user", err)
	}

	match, err := util.VerifyPassword(in.Password, user.Password, user.PasswordSalt)
	if err != nil || !match {
		util.LogLoginFailure(email, client.IP, client.Agent, "invalid password")
		return LoginResult{}, ErrInvalidCredentials
	}

	expires := p.now().Add(p.sessionTTL)
	token, err := signSessionToken(user, expires)
	if err != nil {
		return LoginResult{}, apperror.Wrap(apperror.KindPersistence, "Could not generate token", err)
	}

	session := model.Session{
		ID:           uuid.NewString(),
		UserID:       user.ID,
		SessionToken: token,
		ExpiresAt:    expires,
		ClientIP:     client.IP,
		Browser:      client.Agent,
		CreatedAt:    p.now().UTC(),
	}
	if err := p.backend.Insert(ctx, &session); err != nil {
		util.LogLoginFailure(email, client.IP, client.Agent, "session creation failed")
		return LoginResult{}, apperror.Persistence("Failed to record session", err)
	}
	if err := util.CacheSession(ctx, token, user.ID, time.Until(expires)); err != nil {
		l := util.Component("identity")
		l.Warn().Err(err).Msg("failed to cache session")
	}

	util.LogLoginSuccess(user.ID, user.Email, client.IP, client.Agent)
	return LoginResult{Token: token, Role: model.RoleName(user.RoleID), UserID: user.ID, ExpiresAt: expires}, nil
}

// NewAccount validates in and returns an unsaved User role account with a
// hashed password.
func NewAccount(in SignupInput, now time.Time) (model.User, error) {
	name := util.NormalizeName(in.Name)
	email := strings.TrimSpace(in.Email)
	if name == "" || email == "" || in.Password == "" {
		return model.User{}, apperror.Validation("Name, email and password are required")
	}
	if len(in.Password) < 8 {
		return model.User{}, apperror.Validation("Password must be at least 8 characters")
	}

	salt, err := util.GenerateSalt()
	if err != nil {
		return model.User{}, apperror.Persistence("Failed to generate password salt", err)
	}
	hashed, err := util.HashPasswordArgon2(in.Password, salt)
	if err != nil {
		return model.User{}, apperror.Persistence("Failed to hash password", err)
	}
	return model.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		Password:     hashed,
		PasswordSalt: salt,
		RoleID:       model.RoleUserID,
		CreatedAt:    now.UTC(),
	}, nil
}

// Signup creates a plain user account. Emails on a doctor row are refused:
// doctor ownership follows the account email, so doctor accounts are
// provisioned by an admin.
func (p *Provider) Signup(ctx context.Context, in SignupInput, client ClientInfo) (model.User, error) {
	user, err := NewAccount(in, p.now())
	if err != nil {
		return model.User{}, err
	}

	var existing model.User
	err = p.backend.First(ctx, store.Where(store.Eq("email", user.Email)), &existing)
	if err == nil {
		return model.User{}, ErrEmailTaken
	}
	if !errors.Is(err, store.ErrNotFound) {
		return model.User{}, apperror.Persistence("Failed to check email", err)
	}

	var doctor model.Doctor
	err = p.backend.First(ctx, store.Where(store.Eq("email", user.Email)), &doctor)
	if err == nil {
		util.LogUnauthorizedAccess("", user.Email, client.IP, "signup", "email belongs to a doctor")
		return model.User{}, ErrDoctorEmail
	}
	if !errors.Is(err, store.ErrNotFound) {
		return model.User{}, apperror.Persistence("Failed to check email", err)
	}

	if err := p.backend.Insert(ctx, &user); err != nil {
		return model.User{}, apperror.Persistence("Failed to create new user", err)
	}

	util.LogSignupSuccess(user.ID, user.Email, client.IP, client.Agent)
	return user, nil
}

func signSessionToken(user model.User, expires time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   user.ID,
		ID:        uuid.NewString(),
		ExpiresAt: jwt.NewNumericDate(expires),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	})
	return token.SignedString(util.GetJWTSecretByte())
}
