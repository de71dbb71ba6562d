package commands

import (
	"context"
	"errors"

	"samhotel-api/internal/domain/user"
	"samhotel-api/internal/infra"
	"samhotel-api/internal/pkg/clock"
	"samhotel-api/internal/pkg/errs"
	"samhotel-api/internal/pkg/jwt"
	"samhotel-api/internal/pkg/password"
	"samhotel-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountDisabled    = errors.New("account is disabled")
	ErrInvalidRefresh     = errors.New("invalid refresh token")
)

type RegisterInput struct {
	Email       string
	Password    string
	SecondName  string
	PhoneNumber string
}

type LoginInput struct {
	Email    string
	Password string
}

type AuthCommands interface {
	Register(ctx context.Context, in RegisterInput) (jwt.TokenPair, error)
	Login(ctx context.Context, in LoginInput) (jwt.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (jwt.TokenPair, error)
}

type authCommandsImpl struct {
	uow    shared.UnitOfWork
	tokens *jwt.Service
	clock  clock.Clock
}

func NewAuthCommands(uow shared.UnitOfWork, tokens *jwt.Service, clk clock.Clock) AuthCommands {
	return &authCommandsImpl{uow: uow, tokens: tokens, clock: clk}
}

// Register creates a regular user account. Admin accounts are provisioned out
// of band; the public endpoint never grants the admin role.
func (c *authCommandsImpl) Register(ctx context.Context, in RegisterInput) (jwt.TokenPair, error) {
	email, err := user.NewEmail(in.Email)
	if err != nil {
		return jwt.TokenPair{}, errs.Mark(err, ErrValidation)
	}
	pw, err := user.NewPassword(in.Password)
	if err != nil {
		return jwt.TokenPair{}, errs.Mark(err, ErrValidation)
	}

	hash, err := password.HashPassword(pw.Value())
	if err != nil {
		return jwt.TokenPair{}, errs.Wrap(err, "failed to hash password")
	}

	u := user.NewUser(email, hash, user.RoleUser, in.SecondName, in.PhoneNumber)
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Users().Create(ctx, u); err != nil {
			if infra.IsKind(err, infra.DuplicateKeyError) {
				return ErrEmailTaken
			}
			return err
		}
		return nil
	})
	if err != nil {
		return jwt.TokenPair{}, err
	}

	return c.tokens.GeneratePair(u.ID(), u.Role())
}

func (c *authCommandsImpl) Login(ctx context.Context, in LoginInput) (jwt.TokenPair, error) {
	snap, err := c.uow.Reads().UserByEmail(ctx, in.Email)
	if err != nil {
		if infra.IsKind(err, infra.NotFoundError) {
			return jwt.TokenPair{}, ErrInvalidCredentials
		}
		return jwt.TokenPair{}, err
	}

	if err := password.ComparePassword(snap.PasswordHash, in.Password); err != nil {
		return jwt.TokenPair{}, ErrInvalidCredentials
	}
	if !snap.IsActive {
		return jwt.TokenPair{}, ErrAccountDisabled
	}

	role, err := user.NewRole(snap.Role)
	if err != nil {
		return jwt.TokenPair{}, errs.Wrap(err, "stored role is invalid")
	}

	now := c.clock.Now()
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, snap.ID, now)
	})
	if err != nil {
		return jwt.TokenPair{}, err
	}

	return c.tokens.GeneratePair(snap.ID, role)
}

// Refresh rotates the pair off a valid refresh token. The role is re-read from
// the store so a role change takes effect on the next rotation.
func (c *authCommandsImpl) Refresh(ctx context.Context, refreshToken string) (jwt.TokenPair, error) {
	claims, err := c.tokens.ValidateRefreshToken(refreshToken)
	if err != nil {
		return jwt.TokenPair{}, errs.Mark(err, ErrInvalidRefresh)
	}

	snap, err := c.uow.Reads().UserByID(ctx, claims.UserID)
	if err != nil {
		if infra.IsKind(err, infra.NotFoundError) {
			return jwt.TokenPair{}, ErrInvalidRefresh
		}
		return jwt.TokenPair{}, err
	}
	if !snap.IsActive {
		return jwt.TokenPair{}, ErrAccountDisabled
	}

	role, err := user.NewRole(snap.Role)
	if err != nil {
		return jwt.TokenPair{}, errs.Wrap(err, "stored role is invalid")
	}

	return c.tokens.GeneratePair(snap.ID, role)
}

// TokenValidator is the authentication port the HTTP middleware depends on.
type TokenValidator interface {
	Validate(token string) (uuid.UUID, user.Role, error)
}

type jwtTokenValidator struct {
	tokens *jwt.Service
}

func NewTokenValidator(tokens *jwt.Service) TokenValidator {
	return &jwtTokenValidator{tokens: tokens}
}

func (v *jwtTokenValidator) Validate(token string) (uuid.UUID, user.Role, error) {
	claims, err := v.tokens.ValidateAccessToken(token)
	if err != nil {
		return uuid.Nil, "", err
	}
	role, err := user.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", err
	}
	return claims.UserID, role, nil
}
