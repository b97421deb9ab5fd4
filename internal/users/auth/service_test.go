// Copyright (c) 2026 DevConnect. All rights reserved.
// Author: anh.nguyenduc.vn@gmail.com

package auth

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anhnguyenduc/devconnect/internal/platform/apperr"
	"github.com/anhnguyenduc/devconnect/internal/platform/constants"
	"github.com/anhnguyenduc/devconnect/internal/platform/sec"
)

// memoryUserRepository is an in-memory UserRepository for service tests.
type memoryUserRepository struct {
	byEmail map[string]*User
	byID    map[string]*User
}

func newMemoryUserRepository() *memoryUserRepository {
	return &memoryUserRepository{
		byEmail: map[string]*User{},
		byID:    map[string]*User{},
	}
}

func (repo *memoryUserRepository) FindByID(_ context.Context, id string) (*User, error) {
	if user, ok := repo.byID[id]; ok {
		return user, nil
	}
	return nil, apperr.NotFound("User not found")
}

func (repo *memoryUserRepository) FindByEmail(_ context.Context, email string) (*User, error) {
	if user, ok := repo.byEmail[email]; ok {
		return user, nil
	}
	return nil, apperr.NotFound("User not found with this email")
}

func (repo *memoryUserRepository) Create(_ context.Context, user *User) error {
	if _, exists := repo.byEmail[user.Email]; exists {
		return apperr.BadRequest("User already exists")
	}
	repo.byEmail[user.Email] = user
	repo.byID[user.ID] = user
	return nil
}

func (repo *memoryUserRepository) Delete(_ context.Context, id string) error {
	if user, ok := repo.byID[id]; ok {
		delete(repo.byEmail, user.Email)
		delete(repo.byID, id)
	}
	return nil
}

// outageUserRepository simulates a storage backend that is unreachable.
type outageUserRepository struct {
	err error
}

func (repo *outageUserRepository) FindByID(_ context.Context, _ string) (*User, error) {
	return nil, repo.err
}

func (repo *outageUserRepository) FindByEmail(_ context.Context, _ string) (*User, error) {
	return nil, repo.err
}

func (repo *outageUserRepository) Create(_ context.Context, _ *User) error {
	return repo.err
}

func (repo *outageUserRepository) Delete(_ context.Context, _ string) error {
	return repo.err
}

// stubIssuer records the last issue call and returns a fixed token.
type stubIssuer struct {
	subject string
	ttl     time.Duration
}

func (issuer *stubIssuer) Issue(subjectID string, timeToLive time.Duration) (string, error) {
	issuer.subject = subjectID
	issuer.ttl = timeToLive
	return "issued-token", nil
}

func TestRegister_CreatesUserAndIssuesToken(t *testing.T) {
	repo := newMemoryUserRepository()
	issuer := &stubIssuer{}
	service := NewService(repo, issuer)

	token, err := service.Register(context.Background(), RegisterInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)
	assert.Equal(t, "issued-token", token)
	assert.Equal(t, constants.AccessTokenTTL, issuer.ttl)

	stored, err := repo.FindByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, stored.ID, issuer.subject)
	assert.NotEqual(t, "hunter22", stored.PasswordHash, "password must be hashed")
	assert.True(t, sec.CheckPasswordHash("hunter22", stored.PasswordHash))
	assert.Contains(t, stored.AvatarURL, "gravatar.com/avatar/")
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := newMemoryUserRepository()
	service := NewService(repo, &stubIssuer{})

	input := RegisterInput{Name: "Alice", Email: "alice@example.com", Password: "hunter22"}
	_, err := service.Register(context.Background(), input)
	require.NoError(t, err)

	_, err = service.Register(context.Background(), input)
	require.Error(t, err)

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, http.StatusBadRequest, appError.HTTPStatus)
	assert.Equal(t, "User already exists", appError.Message)
}

func TestLogin_Success(t *testing.T) {
	repo := newMemoryUserRepository()
	issuer := &stubIssuer{}
	service := NewService(repo, issuer)

	_, err := service.Register(context.Background(), RegisterInput{
		Name: "Alice", Email: "alice@example.com", Password: "hunter22",
	})
	require.NoError(t, err)

	token, err := service.Login(context.Background(), LoginInput{
		Email:    "alice@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)
	assert.Equal(t, "issued-token", token)
}

func TestLogin_FailuresAreIndistinguishable(t *testing.T) {
	// Unknown email and wrong password must yield byte-identical errors so
	// the endpoint cannot be used to enumerate registered addresses.
	repo := newMemoryUserRepository()
	service := NewService(repo, &stubIssuer{})

	_, err := service.Register(context.Background(), RegisterInput{
		Name: "Alice", Email: "alice@example.com", Password: "hunter22",
	})
	require.NoError(t, err)

	_, unknownEmailErr := service.Login(context.Background(), LoginInput{
		Email: "nobody@example.com", Password: "hunter22",
	})
	_, wrongPasswordErr := service.Login(context.Background(), LoginInput{
		Email: "alice@example.com", Password: "wrong-password",
	})

	require.Error(t, unknownEmailErr)
	require.Error(t, wrongPasswordErr)

	first := apperr.As(unknownEmailErr)
	second := apperr.As(wrongPasswordErr)
	require.NotNil(t, first)
	require.NotNil(t, second)

	assert.Equal(t, first.HTTPStatus, second.HTTPStatus)
	assert.Equal(t, first.Message, second.Message)
	assert.Equal(t, "Invalid Credentials!", first.Message)
}

func TestLogin_StorageOutageIsNotACredentialFailure(t *testing.T) {
	// A broken backend must surface as an internal failure. Reporting it as
	// "Invalid Credentials!" would hide the outage from operators and lie to
	// the caller about their password.
	outage := errors.New("dial tcp 127.0.0.1:5432: connect: connection refused")
	service := NewService(&outageUserRepository{err: outage}, &stubIssuer{})

	_, err := service.Login(context.Background(), LoginInput{
		Email:    "alice@example.com",
		Password: "hunter22",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, outage)
	assert.Nil(t, apperr.As(err), "storage failures must not be pre-mapped to a client error")
}

func TestCurrentUser(t *testing.T) {
	repo := newMemoryUserRepository()
	issuer := &stubIssuer{}
	service := NewService(repo, issuer)

	_, err := service.Register(context.Background(), RegisterInput{
		Name: "Alice", Email: "alice@example.com", Password: "hunter22",
	})
	require.NoError(t, err)

	user, err := service.CurrentUser(context.Background(), issuer.subject)
	require.NoError(t, err)
	assert.Equal(t, "Alice", user.Name)

	_, err = service.CurrentUser(context.Background(), "missing-id")
	assert.Error(t, err)
}
