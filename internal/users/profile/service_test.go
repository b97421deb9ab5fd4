// Copyright (c) 2026 DevConnect. All rights reserved.
// Author: anh.nguyenduc.vn@gmail.com

package profile

import (
	"context"
	"errors"
	"net/http"
	"testing"

	guuid "github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anhnguyenduc/devconnect/internal/platform/apperr"
	"github.com/anhnguyenduc/devconnect/internal/platform/github"
	"github.com/anhnguyenduc/devconnect/pkg/pagination"
	"github.com/anhnguyenduc/devconnect/pkg/pointer"
)

// memoryProfileRepository is an in-memory ProfileRepository for service tests.
type memoryProfileRepository struct {
	profiles map[string]*Profile
}

func newMemoryProfileRepository() *memoryProfileRepository {
	return &memoryProfileRepository{profiles: map[string]*Profile{}}
}

func (repo *memoryProfileRepository) FindByUserID(_ context.Context, userID string) (*Profile, error) {
	if stored, ok := repo.profiles[userID]; ok {
		clone := *stored
		return &clone, nil
	}
	return nil, apperr.NotFound("Profile not found")
}

func (repo *memoryProfileRepository) List(_ context.Context, _ pagination.Params) ([]Profile, error) {
	all := []Profile{}
	for _, stored := range repo.profiles {
		all = append(all, *stored)
	}
	return all, nil
}

func (repo *memoryProfileRepository) Upsert(_ context.Context, profile *Profile) error {
	if existing, ok := repo.profiles[profile.UserID]; ok {
		// Histories survive scalar updates, matching the SQL layout.
		profile.Experience = existing.Experience
		profile.Education = existing.Education
	}
	clone := *profile
	repo.profiles[profile.UserID] = &clone
	return nil
}

func (repo *memoryProfileRepository) AddExperience(_ context.Context, userID string, experience *Experience) error {
	stored := repo.profiles[userID]
	stored.Experience = append([]Experience{*experience}, stored.Experience...)
	return nil
}

func (repo *memoryProfileRepository) DeleteExperience(_ context.Context, userID, experienceID string) error {
	stored, ok := repo.profiles[userID]
	if !ok {
		return nil
	}
	kept := []Experience{}
	for _, entry := range stored.Experience {
		if entry.ID != experienceID {
			kept = append(kept, entry)
		}
	}
	stored.Experience = kept
	return nil
}

func (repo *memoryProfileRepository) AddEducation(_ context.Context, userID string, education *Education) error {
	stored := repo.profiles[userID]
	stored.Education = append([]Education{*education}, stored.Education...)
	return nil
}

func (repo *memoryProfileRepository) DeleteEducation(_ context.Context, userID, educationID string) error {
	stored, ok := repo.profiles[userID]
	if !ok {
		return nil
	}
	kept := []Education{}
	for _, entry := range stored.Education {
		if entry.ID != educationID {
			kept = append(kept, entry)
		}
	}
	stored.Education = kept
	return nil
}

// typeStrictProfileRepository fails the way a uuid column does when handed an
// id that cannot be parsed, so tests catch queries that would reach the
// database with malformed ids.
type typeStrictProfileRepository struct {
	*memoryProfileRepository
}

func (repo *typeStrictProfileRepository) FindByUserID(ctx context.Context, userID string) (*Profile, error) {
	if guuid.Validate(userID) != nil {
		return nil, apperr.Internal(errors.New(`invalid input syntax for type uuid: "` + userID + `"`))
	}
	return repo.memoryProfileRepository.FindByUserID(ctx, userID)
}

func (repo *typeStrictProfileRepository) DeleteExperience(ctx context.Context, userID, experienceID string) error {
	if guuid.Validate(experienceID) != nil {
		return apperr.Internal(errors.New(`invalid input syntax for type uuid: "` + experienceID + `"`))
	}
	return repo.memoryProfileRepository.DeleteExperience(ctx, userID, experienceID)
}

func (repo *typeStrictProfileRepository) DeleteEducation(ctx context.Context, userID, educationID string) error {
	if guuid.Validate(educationID) != nil {
		return apperr.Internal(errors.New(`invalid input syntax for type uuid: "` + educationID + `"`))
	}
	return repo.memoryProfileRepository.DeleteEducation(ctx, userID, educationID)
}

// recordingRemover records account deletions.
type recordingRemover struct {
	deleted []string
}

func (remover *recordingRemover) Delete(_ context.Context, id string) error {
	remover.deleted = append(remover.deleted, id)
	return nil
}

// staticRepoLister returns a canned repository list.
type staticRepoLister struct {
	repos []github.Repo
}

func (lister staticRepoLister) ListRepos(_ context.Context, username string) ([]github.Repo, error) {
	if username == "ghost" {
		return nil, apperr.NotFound("No GitHub profile found!")
	}
	return lister.repos, nil
}

func newProfileTestService() (*Service, *memoryProfileRepository, *recordingRemover) {
	repo := newMemoryProfileRepository()
	remover := &recordingRemover{}
	lister := staticRepoLister{repos: []github.Repo{{Name: "dotfiles"}}}
	return NewService(repo, remover, lister), repo, remover
}

func TestMe_MissingProfile(t *testing.T) {
	service, _, _ := newProfileTestService()

	_, err := service.Me(context.Background(), "user-1")
	require.Error(t, err)

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, http.StatusBadRequest, appError.HTTPStatus)
	assert.Equal(t, "There is no profile for this user.", appError.Message)
}

func TestByUser_MissingProfileIs404(t *testing.T) {
	service, _, _ := newProfileTestService()

	_, err := service.ByUser(context.Background(), "user-1")
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperr.As(err).HTTPStatus)
}

func TestByUser_MalformedIDIs404(t *testing.T) {
	// "abc" in a path param must read as a missing profile, never as a
	// storage-level type error.
	repo := &typeStrictProfileRepository{newMemoryProfileRepository()}
	service := NewService(repo, &recordingRemover{}, staticRepoLister{})

	_, err := service.ByUser(context.Background(), "abc")
	require.Error(t, err)

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, http.StatusNotFound, appError.HTTPStatus)
	assert.Equal(t, "Profile not found", appError.Message)
}

func TestRemoveHistory_MalformedIDIsNoOp(t *testing.T) {
	repo := &typeStrictProfileRepository{newMemoryProfileRepository()}
	service := NewService(repo, &recordingRemover{}, staticRepoLister{})
	owner := "0190bbbb-0000-7000-8000-000000000001"

	_, err := service.Upsert(context.Background(), owner, UpsertInput{Status: "Dev", Skills: "Go"})
	require.NoError(t, err)
	_, err = service.AddExperience(context.Background(), owner, ExperienceInput{
		Title: "Engineer", Company: "Acme", From: "2020-01-02",
	})
	require.NoError(t, err)
	_, err = service.AddEducation(context.Background(), owner, EducationInput{
		School: "MIT", Degree: "BSc", FieldOfStudy: "CS", From: "2014-09-01",
	})
	require.NoError(t, err)

	// Same contract as an unknown entry id: nothing deleted, no error.
	afterExperience, err := service.RemoveExperience(context.Background(), owner, "abc")
	require.NoError(t, err)
	assert.Len(t, afterExperience.Experience, 1)

	afterEducation, err := service.RemoveEducation(context.Background(), owner, "abc")
	require.NoError(t, err)
	assert.Len(t, afterEducation.Education, 1)
}

func TestUpsert_CreatesAndParsesSkills(t *testing.T) {
	service, _, _ := newProfileTestService()

	created, err := service.Upsert(context.Background(), "user-1", UpsertInput{
		Status:  "Developer",
		Skills:  "Go, SQL ,HTML",
		Company: pointer.To("Acme"),
		Youtube: pointer.To("https://youtube.com/@alice"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Developer", created.Status)
	assert.Equal(t, []string{"Go", "SQL", "HTML"}, created.Skills)
	assert.Equal(t, "Acme", pointer.Val(created.Company))
	assert.Equal(t, "https://youtube.com/@alice", pointer.Val(created.Social.Youtube))
}

func TestUpsert_PartialUpdateKeepsStoredFields(t *testing.T) {
	service, _, _ := newProfileTestService()

	_, err := service.Upsert(context.Background(), "user-1", UpsertInput{
		Status:   "Developer",
		Skills:   "Go",
		Company:  pointer.To("Acme"),
		Location: pointer.To("Hanoi"),
	})
	require.NoError(t, err)

	// A later update that omits company/location must not blank them.
	updated, err := service.Upsert(context.Background(), "user-1", UpsertInput{
		Status: "Senior Developer",
		Skills: "Go, SQL",
	})
	require.NoError(t, err)

	assert.Equal(t, "Senior Developer", updated.Status)
	assert.Equal(t, []string{"Go", "SQL"}, updated.Skills)
	assert.Equal(t, "Acme", pointer.Val(updated.Company))
	assert.Equal(t, "Hanoi", pointer.Val(updated.Location))
}

func TestAddExperience_RequiresProfile(t *testing.T) {
	service, _, _ := newProfileTestService()

	_, err := service.AddExperience(context.Background(), "user-1", ExperienceInput{
		Title: "Engineer", Company: "Acme", From: "2020-01-02",
	})
	require.Error(t, err)
	assert.Equal(t, "There is no profile for this user.", apperr.As(err).Message)
}

func TestExperience_Lifecycle(t *testing.T) {
	service, _, _ := newProfileTestService()

	_, err := service.Upsert(context.Background(), "user-1", UpsertInput{Status: "Dev", Skills: "Go"})
	require.NoError(t, err)

	withEntry, err := service.AddExperience(context.Background(), "user-1", ExperienceInput{
		Title:   "Engineer",
		Company: "Acme",
		From:    "2020-01-02",
		Current: true,
	})
	require.NoError(t, err)
	require.Len(t, withEntry.Experience, 1)
	assert.Equal(t, "Engineer", withEntry.Experience[0].Title)
	assert.True(t, withEntry.Experience[0].Current)
	assert.Nil(t, withEntry.Experience[0].To)

	removed, err := service.RemoveExperience(context.Background(), "user-1", withEntry.Experience[0].ID)
	require.NoError(t, err)
	assert.Empty(t, removed.Experience)
}

func TestAddExperience_InvalidDate(t *testing.T) {
	service, _, _ := newProfileTestService()

	_, err := service.Upsert(context.Background(), "user-1", UpsertInput{Status: "Dev", Skills: "Go"})
	require.NoError(t, err)

	_, err = service.AddExperience(context.Background(), "user-1", ExperienceInput{
		Title: "Engineer", Company: "Acme", From: "yesterday",
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperr.As(err).HTTPStatus)
}

func TestEducation_Lifecycle(t *testing.T) {
	service, _, _ := newProfileTestService()

	_, err := service.Upsert(context.Background(), "user-1", UpsertInput{Status: "Dev", Skills: "Go"})
	require.NoError(t, err)

	withEntry, err := service.AddEducation(context.Background(), "user-1", EducationInput{
		School:       "MIT",
		Degree:       "BSc",
		FieldOfStudy: "CS",
		From:         "2014-09-01",
		To:           pointer.To("2018-06-01"),
	})
	require.NoError(t, err)
	require.Len(t, withEntry.Education, 1)
	assert.Equal(t, "MIT", withEntry.Education[0].School)
	require.NotNil(t, withEntry.Education[0].To)

	removed, err := service.RemoveEducation(context.Background(), "user-1", withEntry.Education[0].ID)
	require.NoError(t, err)
	assert.Empty(t, removed.Education)
}

func TestDeleteAccount_Delegates(t *testing.T) {
	service, _, remover := newProfileTestService()

	require.NoError(t, service.DeleteAccount(context.Background(), "user-1"))
	assert.Equal(t, []string{"user-1"}, remover.deleted)
}

func TestGithubRepos(t *testing.T) {
	service, _, _ := newProfileTestService()

	repos, err := service.GithubRepos(context.Background(), "octocat")
	require.NoError(t, err)
	require.Len(t, repos, 1)
	assert.Equal(t, "dotfiles", repos[0].Name)

	_, err = service.GithubRepos(context.Background(), "ghost")
	require.Error(t, err)
	assert.Equal(t, "No GitHub profile found!", apperr.As(err).Message)
}
