// Copyright (c) 2026 DevConnect. All rights reserved.
// Author: anh.nguyenduc.vn@gmail.com

package profile

import (
	"context"
	"errors"
	"time"

	guuid "github.com/google/uuid"

	"github.com/anhnguyenduc/devconnect/internal/platform/apperr"
	"github.com/anhnguyenduc/devconnect/internal/platform/github"
	"github.com/anhnguyenduc/devconnect/internal/platform/validate"
	"github.com/anhnguyenduc/devconnect/pkg/pagination"
	"github.com/anhnguyenduc/devconnect/pkg/query"
	"github.com/anhnguyenduc/devconnect/pkg/uuid"
)

// # Collaborator Contracts

// AccountRemover removes a user account. Dependent rows (profile, histories,
// posts, comments, likes) go with it via cascading constraints.
type AccountRemover interface {
	Delete(context context.Context, id string) error
}

// RepoLister fetches public repositories for a GitHub username.
type RepoLister interface {
	ListRepos(context context.Context, username string) ([]github.Repo, error)
}

// # Service

// Service orchestrates profile business flows on top of the repository.
type Service struct {
	profileRepository ProfileRepository
	accounts          AccountRemover
	githubRepos       RepoLister
}

// NewService constructs a profile [Service] with its collaborators.
func NewService(repo ProfileRepository, accounts AccountRemover, githubRepos RepoLister) *Service {
	return &Service{
		profileRepository: repo,
		accounts:          accounts,
		githubRepos:       githubRepos,
	}
}

// # Inputs

// UpsertInput carries the profile fields a client may set. Nil pointer fields
// were absent from the request and leave the stored value untouched.
type UpsertInput struct {
	Status         string
	Skills         string
	Company        *string
	Website        *string
	Location       *string
	Bio            *string
	GithubUsername *string
	Youtube        *string
	Twitter        *string
	Facebook       *string
	Linkedin       *string
	Instagram      *string
}

// ExperienceInput carries a validated work history entry.
type ExperienceInput struct {
	Title       string
	Company     string
	Location    *string
	From        string
	To          *string
	Current     bool
	Description *string
}

// EducationInput carries a validated schooling history entry.
type EducationInput struct {
	School       string
	Degree       string
	FieldOfStudy string
	From         string
	To           *string
	Description  *string
}

// # Operations

/*
Me returns the caller's own profile.

Parameters:
  - context: context.Context
  - userID: string (Authenticated subject)

Returns:
  - *Profile: Hydrated aggregate
  - error: apperr.BadRequest ("There is no profile for this user.") when absent
*/
func (service *Service) Me(context context.Context, userID string) (*Profile, error) {
	profile, err := service.profileRepository.FindByUserID(context, userID)
	if err != nil {
		var appError *apperr.AppError
		if errors.As(err, &appError) && appError.Code == apperr.CodeNotFound {
			return nil, apperr.BadRequest("There is no profile for this user.")
		}
		return nil, err
	}
	return profile, nil
}

/*
Upsert creates or updates the caller's profile.

Description: Loads the current row when one exists and overlays only the
provided fields on top of it, so a partial update never blanks stored values.
Skills arrive as a comma-separated string and are stored trimmed.

Parameters:
  - context: context.Context
  - userID: string (Authenticated subject, profile owner)
  - input: UpsertInput

Returns:
  - *Profile: Refreshed aggregate after the write
  - error: Persistence failures
*/
func (service *Service) Upsert(context context.Context, userID string, input UpsertInput) (*Profile, error) {
	// ── 1. Start from the stored row when present ──
	current, err := service.profileRepository.FindByUserID(context, userID)
	if err != nil {
		var appError *apperr.AppError
		if !errors.As(err, &appError) || appError.Code != apperr.CodeNotFound {
			return nil, err
		}
		current = &Profile{UserID: userID}
	}

	// ── 2. Overlay provided fields ──
	current.Status = input.Status
	current.Skills = query.StringSlice(input.Skills)

	applyString(&current.Company, input.Company)
	applyString(&current.Website, input.Website)
	applyString(&current.Location, input.Location)
	applyString(&current.Bio, input.Bio)
	applyString(&current.GithubUsername, input.GithubUsername)

	applyString(&current.Social.Youtube, input.Youtube)
	applyString(&current.Social.Twitter, input.Twitter)
	applyString(&current.Social.Facebook, input.Facebook)
	applyString(&current.Social.Linkedin, input.Linkedin)
	applyString(&current.Social.Instagram, input.Instagram)

	// ── 3. Persist and re-read the aggregate ──
	if err := service.profileRepository.Upsert(context, current); err != nil {
		return nil, err
	}

	return service.profileRepository.FindByUserID(context, userID)
}

/*
ListProfiles returns a page of all profiles with owner snapshots.
*/
func (service *Service) ListProfiles(context context.Context, params pagination.Params) ([]Profile, error) {
	return service.profileRepository.List(context, params)
}

/*
ByUser returns the profile owned by the given account.

Returns:
  - *Profile: Hydrated aggregate
  - error: apperr.NotFound ("Profile not found") when absent
*/
func (service *Service) ByUser(context context.Context, userID string) (*Profile, error) {
	// Malformed ids look like a missing profile, not a database type error.
	if guuid.Validate(userID) != nil {
		return nil, apperr.NotFound("Profile not found")
	}
	return service.profileRepository.FindByUserID(context, userID)
}

/*
DeleteAccount permanently removes the caller's account with everything it owns.

Description: A single account delete; the profile, histories, posts, comments
and likes are removed by the database's cascading constraints.

Parameters:
  - context: context.Context
  - userID: string (Authenticated subject)

Returns:
  - error: Persistence failures
*/
func (service *Service) DeleteAccount(context context.Context, userID string) error {
	return service.accounts.Delete(context, userID)
}

/*
AddExperience appends a work history entry and returns the refreshed profile.

Returns:
  - *Profile: Aggregate including the new entry
  - error: apperr.BadRequest when the caller has no profile yet
*/
func (service *Service) AddExperience(context context.Context, userID string, input ExperienceInput) (*Profile, error) {
	if _, err := service.Me(context, userID); err != nil {
		return nil, err
	}

	from, to, err := parseDateRange(input.From, input.To)
	if err != nil {
		return nil, err
	}

	entry := &Experience{
		ID:          uuid.New(),
		Title:       input.Title,
		Company:     input.Company,
		Location:    input.Location,
		From:        from,
		To:          to,
		Current:     input.Current,
		Description: input.Description,
	}

	if err := service.profileRepository.AddExperience(context, userID, entry); err != nil {
		return nil, err
	}

	return service.profileRepository.FindByUserID(context, userID)
}

/*
RemoveExperience deletes a work history entry by id, scoped to the caller, and
returns the refreshed profile. Unknown ids are a no-op.
*/
func (service *Service) RemoveExperience(context context.Context, userID, experienceID string) (*Profile, error) {
	// A malformed id cannot match any stored row; skip the delete so it is
	// the same no-op as an unknown id instead of a database type error.
	if guuid.Validate(experienceID) == nil {
		if err := service.profileRepository.DeleteExperience(context, userID, experienceID); err != nil {
			return nil, err
		}
	}
	return service.Me(context, userID)
}

/*
AddEducation appends a schooling history entry and returns the refreshed profile.
*/
func (service *Service) AddEducation(context context.Context, userID string, input EducationInput) (*Profile, error) {
	if _, err := service.Me(context, userID); err != nil {
		return nil, err
	}

	from, to, err := parseDateRange(input.From, input.To)
	if err != nil {
		return nil, err
	}

	entry := &Education{
		ID:           uuid.New(),
		School:       input.School,
		Degree:       input.Degree,
		FieldOfStudy: input.FieldOfStudy,
		From:         from,
		To:           to,
		Description:  input.Description,
	}

	if err := service.profileRepository.AddEducation(context, userID, entry); err != nil {
		return nil, err
	}

	return service.profileRepository.FindByUserID(context, userID)
}

/*
RemoveEducation deletes a schooling history entry by id, scoped to the caller,
and returns the refreshed profile. Unknown ids are a no-op.
*/
func (service *Service) RemoveEducation(context context.Context, userID, educationID string) (*Profile, error) {
	if guuid.Validate(educationID) == nil {
		if err := service.profileRepository.DeleteEducation(context, userID, educationID); err != nil {
			return nil, err
		}
	}
	return service.Me(context, userID)
}

/*
GithubRepos returns the five most recently created public repositories for the
given GitHub username.

Returns:
  - []github.Repo: Repository summaries
  - error: apperr.NotFound ("No GitHub profile found!") for unknown users
*/
func (service *Service) GithubRepos(context context.Context, username string) ([]github.Repo, error) {
	return service.githubRepos.ListRepos(context, username)
}

// applyString overlays an optional input field onto the stored value.
func applyString(target **string, value *string) {
	if value != nil {
		*target = value
	}
}

// dateLayouts are the accepted wire formats for history dates.
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// parseDateRange parses the required from date and the optional to date.
func parseDateRange(fromValue string, toValue *string) (time.Time, *time.Time, error) {
	from, err := parseDate(fromValue)
	if err != nil {
		return time.Time{}, nil, validate.RequiredError(FieldFrom, "Must be a valid date")
	}

	if toValue == nil || *toValue == "" {
		return from, nil, nil
	}

	to, err := parseDate(*toValue)
	if err != nil {
		return time.Time{}, nil, validate.RequiredError("to", "Must be a valid date")
	}

	return from, &to, nil
}

func parseDate(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range dateLayouts {
		parsed, err := time.Parse(layout, value)
		if err == nil {
			return parsed, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
