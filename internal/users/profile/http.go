// Copyright (c) 2026 DevConnect. All rights reserved.
// Author: anh.nguyenduc.vn@gmail.com

package profile

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/anhnguyenduc/devconnect/internal/platform/request"
	"github.com/anhnguyenduc/devconnect/internal/platform/respond"
	"github.com/anhnguyenduc/devconnect/internal/platform/validate"
	"github.com/anhnguyenduc/devconnect/pkg/pagination"
)

// # Definitions & Constructors

// Handler implements profile-related HTTP endpoints.
type Handler struct {
	profileService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{profileService: service}
}

// Routes returns a [chi.Router] for the /api/profile mount.
//
// # Endpoints
//
// Public:
//   - GET /                   : List all profiles (paginated).
//   - GET /user/{user_id}     : Profile by owner.
//   - GET /github/{username}  : Recent public GitHub repositories.
//
// Protected (x-auth-token required):
//   - GET    /me                        : Own profile.
//   - POST   /                          : Create or update own profile.
//   - DELETE /                          : Remove account, profile, and posts.
//   - PUT    /experience                : Add a work history entry.
//   - DELETE /experience/{exp_id}       : Remove a work history entry.
//   - PUT    /education                 : Add a schooling history entry.
//   - DELETE /education/{edu_id}        : Remove a schooling history entry.
func (handler *Handler) Routes(authenticate func(http.Handler) http.Handler) chi.Router {
	router := chi.NewRouter()

	// Public endpoints
	router.Get("/", handler.list)
	router.Get("/user/{user_id}", handler.byUser)
	router.Get("/github/{username}", handler.githubRepos)

	// Protected endpoints
	router.Group(func(r chi.Router) {
		r.Use(authenticate)
		r.Get("/me", handler.me)
		r.Post("/", handler.upsert)
		r.Delete("/", handler.deleteAccount)
		r.Put("/experience", handler.addExperience)
		r.Delete("/experience/{exp_id}", handler.removeExperience)
		r.Put("/education", handler.addEducation)
		r.Delete("/education/{edu_id}", handler.removeEducation)
	})

	return router
}

// # Request Payloads

type upsertRequest struct {
	Status         string  `json:"status"`
	Skills         string  `json:"skills"`
	Company        *string `json:"company"`
	Website        *string `json:"website"`
	Location       *string `json:"location"`
	Bio            *string `json:"bio"`
	GithubUsername *string `json:"githubusername"`
	Youtube        *string `json:"youtube"`
	Twitter        *string `json:"twitter"`
	Facebook       *string `json:"facebook"`
	Linkedin       *string `json:"linkedin"`
	Instagram      *string `json:"instagram"`
}

type experienceRequest struct {
	Title       string  `json:"title"`
	Company     string  `json:"company"`
	Location    *string `json:"location"`
	From        string  `json:"from"`
	To          *string `json:"to"`
	Current     bool    `json:"current"`
	Description *string `json:"description"`
}

type educationRequest struct {
	School       string  `json:"school"`
	Degree       string  `json:"degree"`
	FieldOfStudy string  `json:"fieldofstudy"`
	From         string  `json:"from"`
	To           *string `json:"to"`
	Description  *string `json:"description"`
}

/*
Me returns the caller's own profile.

GET /api/profile/me

Response:
  - 200: Profile: Own aggregate with histories
  - 400: No profile exists yet for this account
*/
func (handler *Handler) me(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	profile, err := handler.profileService.Me(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, profile)
}

/*
Upsert creates or updates the caller's profile.

POST /api/profile

Description: Status and skills are mandatory; every other field is optional
and, when omitted, keeps its stored value.

Response:
  - 200: Profile: Refreshed aggregate
  - 400: Validation failure
*/
func (handler *Handler) upsert(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input upsertRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldStatus, input.Status).
		Required(FieldSkills, input.Skills)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	profile, err := handler.profileService.Upsert(request.Context(), userID, UpsertInput{
		Status:         input.Status,
		Skills:         input.Skills,
		Company:        input.Company,
		Website:        input.Website,
		Location:       input.Location,
		Bio:            input.Bio,
		GithubUsername: input.GithubUsername,
		Youtube:        input.Youtube,
		Twitter:        input.Twitter,
		Facebook:       input.Facebook,
		Linkedin:       input.Linkedin,
		Instagram:      input.Instagram,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, profile)
}

/*
List returns all profiles with owner snapshots, newest-updated first.

GET /api/profile?page=&limit=

Response:
  - 200: []Profile
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	profiles, err := handler.profileService.ListProfiles(request.Context(), pagination.FromRequest(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, profiles)
}

/*
ByUser returns the profile owned by the given account.

GET /api/profile/user/{user_id}

Response:
  - 200: Profile
  - 404: No profile for that account
*/
func (handler *Handler) byUser(writer http.ResponseWriter, request *http.Request) {
	profile, err := handler.profileService.ByUser(request.Context(), requestutil.Param(request, "user_id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, profile)
}

/*
DeleteAccount removes the caller's account together with the profile,
histories, posts, comments, and likes it owns.

DELETE /api/profile

Response:
  - 200: {msg: "User deleted"}
*/
func (handler *Handler) deleteAccount(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.profileService.DeleteAccount(request.Context(), userID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Msg(writer, "User deleted")
}

/*
AddExperience appends a validated work history entry.

PUT /api/profile/experience

Response:
  - 200: Profile: Refreshed aggregate
  - 400: Validation failure or missing profile
*/
func (handler *Handler) addExperience(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input experienceRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldTitle, input.Title).
		Required(FieldCompany, input.Company).
		Required(FieldFrom, input.From)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	profile, err := handler.profileService.AddExperience(request.Context(), userID, ExperienceInput{
		Title:       input.Title,
		Company:     input.Company,
		Location:    input.Location,
		From:        input.From,
		To:          input.To,
		Current:     input.Current,
		Description: input.Description,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, profile)
}

/*
RemoveExperience deletes one work history entry by id.

DELETE /api/profile/experience/{exp_id}

Response:
  - 200: Profile: Refreshed aggregate
*/
func (handler *Handler) removeExperience(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	profile, err := handler.profileService.RemoveExperience(
		request.Context(), userID, requestutil.Param(request, "exp_id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, profile)
}

/*
AddEducation appends a validated schooling history entry.

PUT /api/profile/education

Response:
  - 200: Profile: Refreshed aggregate
  - 400: Validation failure or missing profile
*/
func (handler *Handler) addEducation(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input educationRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldSchool, input.School).
		Required(FieldDegree, input.Degree).
		Required(FieldFieldOfStudy, input.FieldOfStudy).
		Required(FieldFrom, input.From)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	profile, err := handler.profileService.AddEducation(request.Context(), userID, EducationInput{
		School:       input.School,
		Degree:       input.Degree,
		FieldOfStudy: input.FieldOfStudy,
		From:         input.From,
		To:           input.To,
		Description:  input.Description,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, profile)
}

/*
RemoveEducation deletes one schooling history entry by id.

DELETE /api/profile/education/{edu_id}

Response:
  - 200: Profile: Refreshed aggregate
*/
func (handler *Handler) removeEducation(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	profile, err := handler.profileService.RemoveEducation(
		request.Context(), userID, requestutil.Param(request, "edu_id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, profile)
}

/*
GithubRepos returns the five most recently created public repositories for a
GitHub username.

GET /api/profile/github/{username}

Response:
  - 200: []github.Repo
  - 404: {msg: "No GitHub profile found!"}
*/
func (handler *Handler) githubRepos(writer http.ResponseWriter, request *http.Request) {
	repos, err := handler.profileService.GithubRepos(
		request.Context(), requestutil.Param(request, "username"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, repos)
}
