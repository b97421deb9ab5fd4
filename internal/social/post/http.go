package post

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/anhnguyenduc/devconnect/internal/platform/request"
	"github.com/anhnguyenduc/devconnect/internal/platform/respond"
	"github.com/anhnguyenduc/devconnect/internal/platform/validate"
	"github.com/anhnguyenduc/devconnect/pkg/pagination"
)

// Handler implements feed HTTP endpoints. Every route requires a token.
type Handler struct {
	postService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{postService: service}
}

// Routes returns a [chi.Router] for the /api/posts mount.
//
// # Endpoints
//   - POST   /                             : Create a post.
//   - GET    /                             : List posts, newest first.
//   - GET    /{id}                         : One post with likes and comments.
//   - DELETE /{id}                         : Owner-only delete.
//   - PUT    /like/{id}                    : Like; returns likes.
//   - PUT    /unlike/{id}                  : Unlike; returns likes.
//   - POST   /comment/{id}                 : Add comment; returns comments.
//   - DELETE /comment/{id}/{comment_id}    : Author-only delete; returns comments.
func (handler *Handler) Routes(authenticate func(http.Handler) http.Handler) chi.Router {
	router := chi.NewRouter()
	router.Use(authenticate)

	router.Post("/", handler.create)
	router.Get("/", handler.list)
	router.Get("/{id}", handler.get)
	router.Delete("/{id}", handler.delete)
	router.Put("/like/{id}", handler.like)
	router.Put("/unlike/{id}", handler.unlike)
	router.Post("/comment/{id}", handler.addComment)
	router.Delete("/comment/{id}/{comment_id}", handler.deleteComment)

	return router
}

type textRequest struct {
	Text string `json:"text"`
}

func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input textRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	if err := validator.Required(FieldText, input.Text).Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.postService.Create(request.Context(), userID, input.Text)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, created)
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	posts, err := handler.postService.List(request.Context(), pagination.FromRequest(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, posts)
}

func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	found, err := handler.postService.Get(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, found)
}

func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	err = handler.postService.Delete(request.Context(), userID, requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Msg(writer, "Post removed successfully")
}

func (handler *Handler) like(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	likes, err := handler.postService.Like(request.Context(), userID, requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, likes)
}

func (handler *Handler) unlike(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	likes, err := handler.postService.Unlike(request.Context(), userID, requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, likes)
}

func (handler *Handler) addComment(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input textRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	if err := validator.Required(FieldText, input.Text).Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	comments, err := handler.postService.AddComment(
		request.Context(), userID, requestutil.Param(request, "id"), input.Text)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, comments)
}

func (handler *Handler) deleteComment(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	comments, err := handler.postService.DeleteComment(
		request.Context(), userID,
		requestutil.Param(request, "id"),
		requestutil.Param(request, "comment_id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, comments)
}
