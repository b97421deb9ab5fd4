// Copyright (c) 2026 DevConnect. All rights reserved.
// Author: anh.nguyenduc.vn@gmail.com

package auth

import (
	"net/http"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/anhnguyenduc/devconnect/internal/platform/request"
	"github.com/anhnguyenduc/devconnect/internal/platform/respond"
	"github.com/anhnguyenduc/devconnect/internal/platform/validate"
)

// # Definitions & Constructors

// Handler implements authentication-related HTTP endpoints.
type Handler struct {
	authService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{authService: service}
}

// UserRoutes returns a [chi.Router] for the /api/users mount.
//
// # Endpoints
//   - POST / : Creates a new account and returns a token.
func (handler *Handler) UserRoutes() chi.Router {
	router := chi.NewRouter()
	router.Post("/", handler.register)
	return router
}

// AuthRoutes returns a [chi.Router] for the /api/auth mount.
//
// # Endpoints
//   - POST / : Authenticates and returns a token.
//   - GET  / : Returns the authenticated user (protected).
func (handler *Handler) AuthRoutes(authenticate func(http.Handler) http.Handler) chi.Router {
	router := chi.NewRouter()

	// Public endpoint
	router.Post("/", handler.login)

	// Protected endpoint
	router.Group(func(r chi.Router) {
		r.Use(authenticate)
		r.Get("/", handler.currentUser)
	})

	return router
}

// # Request Payloads

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

/*
Register handles the creation of a new user account.

POST /api/users

Description: Validates input, checks for identity conflicts, persists the new
account, and returns a freshly issued bearer token.

Request:
  - Body: registerRequest (Name, Email, Password)

Response:
  - 200: {token}: Signed access token
  - 400: Validation failure or "User already exists"
*/
func (handler *Handler) register(writer http.ResponseWriter, request *http.Request) {
	var input registerRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldName, input.Name).
		Email(FieldEmail, input.Email).
		Custom(FieldPassword, utf8.RuneCountInString(input.Password) < 6,
			"Please enter a password with 6 or more characters")

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	token, err := handler.authService.Register(request.Context(), RegisterInput{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
	})

	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]string{FieldToken: token})
}

/*
Login authenticates a user and returns a bearer token.

POST /api/auth

Description: Verifies credentials and issues a signed access token. The
failure message is identical for unknown emails and wrong passwords.

Request:
  - Body: loginRequest (Email, Password)

Response:
  - 200: {token}: Signed access token
  - 400: Generic "Invalid Credentials!" failure
*/
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input loginRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Email(FieldEmail, input.Email).
		Required(FieldPassword, input.Password)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	token, err := handler.authService.Login(request.Context(), LoginInput{
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]string{FieldToken: token})
}

/*
CurrentUser resolves the account behind the presented token.

GET /api/auth

Response:
  - 200: User: Account record (password hash omitted)
  - 401: Missing or invalid token
*/
func (handler *Handler) currentUser(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.authService.CurrentUser(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, user)
}
