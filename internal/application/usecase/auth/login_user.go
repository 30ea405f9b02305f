// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ops-tracker/backend/internal/application/adapter"
	"github.com/ops-tracker/backend/internal/domain/entity"
	domainerror "github.com/ops-tracker/backend/internal/domain/error"
)

// Login attempt limits per email within the window.
const (
	loginAttemptLimit  = 5
	loginAttemptWindow = 15 * time.Minute
)

// LoginUserInput represents the input for user login.
type LoginUserInput struct {
	Email    string
	Password string
}

// LoginUserOutput represents the output of user login.
type LoginUserOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// LoginUserUseCase handles user login logic.
type LoginUserUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
	rateLimiter     adapter.RateLimiter
}

// NewLoginUserUseCase creates a new LoginUserUseCase instance.
func NewLoginUserUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
	rateLimiter adapter.RateLimiter,
) *LoginUserUseCase {
	return &LoginUserUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
		rateLimiter:     rateLimiter,
	}
}

// Execute performs the user login.
func (uc *LoginUserUseCase) Execute(ctx context.Context, input LoginUserInput) (*LoginUserOutput, error) {
	limiterKey := "login:" + strings.ToLower(input.Email)
	allowed, err := uc.rateLimiter.Allow(ctx, limiterKey, loginAttemptLimit, loginAttemptWindow)
	if err != nil {
		return nil, fmt.Errorf("failed to check login rate limit: %w", err)
	}
	if !allowed {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeTooManyAttempts,
			"too many login attempts, try again later",
			domainerror.ErrTooManyAttempts,
		)
	}

	// A generic error for both unknown email and wrong password
	// prevents email enumeration.
	user, err := uc.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if user == nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidCredentials,
			"invalid email or password",
			domainerror.ErrInvalidCredentials,
		)
	}

	if err := uc.passwordService.VerifyPassword(user.PasswordHash, input.Password); err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidCredentials,
			"invalid email or password",
			domainerror.ErrInvalidCredentials,
		)
	}

	if err := uc.rateLimiter.Reset(ctx, limiterKey); err != nil {
		return nil, fmt.Errorf("failed to reset login rate limit: %w", err)
	}

	tokenPair, err := uc.tokenService.GenerateTokenPair(ctx, user.ID, user.BusinessID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	return &LoginUserOutput{
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		User:         user,
	}, nil
}
