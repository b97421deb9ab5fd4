// Copyright (c) 2026 DevConnect. All rights reserved.
// Author: anh.nguyenduc.vn@gmail.com

package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/anhnguyenduc/devconnect/internal/platform/apperr"
	"github.com/anhnguyenduc/devconnect/internal/platform/constants"
	"github.com/anhnguyenduc/devconnect/internal/platform/sec"
	"github.com/anhnguyenduc/devconnect/pkg/uuid"
)

// # Contracts & Types

// TokenIssuer defines the contract for minting access tokens.
type TokenIssuer interface {
	// Issue creates a signed bearer token for the given subject.
	//
	// # Parameters
	//   - subjectID: The ID of the account.
	//   - timeToLive: The duration before the token expires.
	//
	// # Returns
	//   - A signed token string, or an error if signing fails.
	Issue(subjectID string, timeToLive time.Duration) (string, error)
}

// Service implements user authentication use cases.
//
// # Review Process
//
// This service is critical for security. Any changes to hashing, registration,
// or login logic must be reviewed carefully.
type Service struct {
	userRepository UserRepository
	tokenIssuer    TokenIssuer
}

// NewService constructs a new [Service] with necessary dependencies.
func NewService(userRepo UserRepository, issuer TokenIssuer) *Service {
	return &Service{
		userRepository: userRepo,
		tokenIssuer:    issuer,
	}
}

// # Registration Flow

// RegisterInput holds the data required to enroll a new member.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

/*
Register validates, hashes, and persists a brand new user account, then
issues an access token for the new subject.

Description: Derives the avatar deterministically from the email (Gravatar),
hashes the password, and persists the identity.

Parameters:
  - context: context.Context
  - input: RegisterInput

Returns:
  - string: Signed access token for the new account
  - error: BadRequest (if the email is taken) or storage errors
*/
func (service *Service) Register(context context.Context, input RegisterInput) (string, error) {

	// Verify email uniqueness. Return a client-safe error.
	_, err := service.userRepository.FindByEmail(context, input.Email)
	if err == nil {
		return "", apperr.BadRequest("User already exists")
	}

	// Prevent storing plain-text passwords. Default cost is used for balance
	// between security and CPU utilization during registration spikes.
	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return "", fmt.Errorf("auth_service_hash_failed: %w", err)
	}

	// Construct the new User entity. Time-sortable ID to prevent PG index fragmentation.
	user := &User{
		ID:           uuid.New(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		AvatarURL:    sec.GravatarURL(input.Email),
	}

	// Persist the user to the database. A unique violation here is the
	// register-twice race and surfaces as the same BadRequest.
	if err := service.userRepository.Create(context, user); err != nil {
		return "", err
	}

	// Issue the bearer token for the newly created subject.
	token, err := service.tokenIssuer.Issue(user.ID, constants.AccessTokenTTL)
	if err != nil {
		return "", fmt.Errorf("auth_service_token_issue_failed: %w", err)
	}

	return token, nil
}

// # Authentication Flow

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	Email    string
	Password string
}

/*
Login validates user credentials and issues an access token.

Description: Verifies identity with a constant-time password comparison.
Unknown email and wrong password produce the identical generic error, so the
endpoint cannot be used to enumerate registered addresses.

Parameters:
  - context: context.Context
  - input: LoginInput

Returns:
  - string: Signed access token
  - error: BadRequest with a generic message, or internal failures
*/
func (service *Service) Login(context context.Context, input LoginInput) (string, error) {
	user, err := service.userRepository.FindByEmail(context, input.Email)
	if err != nil {
		// The user does not exist. Generic message to prevent enumeration.
		if appError := apperr.As(err); appError != nil && appError.Code == apperr.CodeNotFound {
			return "", apperr.BadRequest("Invalid Credentials!")
		}
		// Anything else is a storage failure, not a credential mismatch.
		return "", err
	}

	// Verify password hash using constant-time comparison in bcrypt.
	if !sec.CheckPasswordHash(input.Password, user.PasswordHash) {
		return "", apperr.BadRequest("Invalid Credentials!")
	}

	token, err := service.tokenIssuer.Issue(user.ID, constants.AccessTokenTTL)
	if err != nil {
		return "", fmt.Errorf("auth_service_token_issue_failed: %w", err)
	}

	return token, nil
}

// # Identity Resolution

/*
CurrentUser resolves the full account record for an authenticated subject.

Parameters:
  - context: context.Context
  - userID: string (from verified token claims)

Returns:
  - *User: Hydrated account (password hash never serialized)
  - error: NotFound or storage failures
*/
func (service *Service) CurrentUser(context context.Context, userID string) (*User, error) {
	user, err := service.userRepository.FindByID(context, userID)
	if err != nil {
		return nil, err
	}
	return user, nil
}
