package post

import (
	"context"

	guuid "github.com/google/uuid"

	"github.com/anhnguyenduc/devconnect/internal/platform/apperr"
	"github.com/anhnguyenduc/devconnect/internal/platform/sec"
	"github.com/anhnguyenduc/devconnect/internal/users/auth"
	"github.com/anhnguyenduc/devconnect/pkg/pagination"
	"github.com/anhnguyenduc/devconnect/pkg/uuid"
)

// AuthorProvider resolves the authenticated account for author snapshots.
type AuthorProvider interface {
	FindByID(context context.Context, id string) (*auth.User, error)
}

// Service orchestrates feed business flows.
//
// Every mutation on an existing post runs the existence check first and the
// ownership check second, so callers probing foreign posts learn "not found"
// before "not yours".
type Service struct {
	postRepository PostRepository
	authors        AuthorProvider
}

// NewService constructs a feed [Service].
func NewService(repo PostRepository, authors AuthorProvider) *Service {
	return &Service{postRepository: repo, authors: authors}
}

// Create persists a new post authored by userID, snapshotting the author's
// current name and avatar onto the row.
func (service *Service) Create(context context.Context, userID, text string) (*Post, error) {
	author, err := service.authors.FindByID(context, userID)
	if err != nil {
		return nil, err
	}

	created := &Post{
		ID:        uuid.New(),
		UserID:    userID,
		Text:      text,
		Name:      author.Name,
		AvatarURL: author.AvatarURL,
		Likes:     []Like{},
		Comments:  []Comment{},
	}

	if err := service.postRepository.Create(context, created); err != nil {
		return nil, err
	}
	return created, nil
}

// List returns a page of posts, newest first.
func (service *Service) List(context context.Context, params pagination.Params) ([]Post, error) {
	return service.postRepository.List(context, params)
}

// Get returns one post by id. Malformed ids are indistinguishable from
// missing posts.
func (service *Service) Get(context context.Context, postID string) (*Post, error) {
	if err := requireValidID(postID); err != nil {
		return nil, err
	}
	return service.postRepository.FindByID(context, postID)
}

// Delete removes a post. Only its owner may delete it.
func (service *Service) Delete(context context.Context, actorID, postID string) error {
	found, err := service.Get(context, postID)
	if err != nil {
		return err
	}

	if err := sec.Authorize(actorID, found.UserID); err != nil {
		return err
	}

	return service.postRepository.Delete(context, postID)
}

// Like records the actor's like and returns the refreshed likes.
func (service *Service) Like(context context.Context, actorID, postID string) ([]Like, error) {
	found, err := service.Get(context, postID)
	if err != nil {
		return nil, err
	}

	if found.LikedBy(actorID) {
		return nil, apperr.BadRequest("Post has already been liked")
	}

	if err := service.postRepository.AddLike(context, postID, actorID); err != nil {
		return nil, err
	}

	refreshed, err := service.postRepository.FindByID(context, postID)
	if err != nil {
		return nil, err
	}
	return refreshed.Likes, nil
}

// Unlike removes the actor's like and returns the refreshed likes.
func (service *Service) Unlike(context context.Context, actorID, postID string) ([]Like, error) {
	found, err := service.Get(context, postID)
	if err != nil {
		return nil, err
	}

	if !found.LikedBy(actorID) {
		return nil, apperr.BadRequest("Post has not yet been liked")
	}

	if err := service.postRepository.RemoveLike(context, postID, actorID); err != nil {
		return nil, err
	}

	refreshed, err := service.postRepository.FindByID(context, postID)
	if err != nil {
		return nil, err
	}
	return refreshed.Likes, nil
}

// AddComment appends the actor's comment with an author snapshot and returns
// the refreshed comments.
func (service *Service) AddComment(context context.Context, actorID, postID, text string) ([]Comment, error) {
	if _, err := service.Get(context, postID); err != nil {
		return nil, err
	}

	author, err := service.authors.FindByID(context, actorID)
	if err != nil {
		return nil, err
	}

	comment := &Comment{
		ID:        uuid.New(),
		UserID:    actorID,
		Text:      text,
		Name:      author.Name,
		AvatarURL: author.AvatarURL,
	}

	if err := service.postRepository.AddComment(context, postID, comment); err != nil {
		return nil, err
	}

	refreshed, err := service.postRepository.FindByID(context, postID)
	if err != nil {
		return nil, err
	}
	return refreshed.Comments, nil
}

// DeleteComment removes one comment; only its author may remove it. Returns
// the remaining comments.
func (service *Service) DeleteComment(context context.Context, actorID, postID, commentID string) ([]Comment, error) {
	found, err := service.Get(context, postID)
	if err != nil {
		return nil, err
	}

	comment := found.CommentByID(commentID)
	if comment == nil {
		return nil, apperr.NotFound("No comment found!")
	}

	if err := sec.Authorize(actorID, comment.UserID); err != nil {
		return nil, err
	}

	if err := service.postRepository.DeleteComment(context, commentID); err != nil {
		return nil, err
	}

	refreshed, err := service.postRepository.FindByID(context, postID)
	if err != nil {
		return nil, err
	}
	return refreshed.Comments, nil
}

// requireValidID rejects ids that cannot be a stored post id before they
// reach the database as a type error.
func requireValidID(id string) error {
	if guuid.Validate(id) != nil {
		return apperr.NotFound("Post not found!")
	}
	return nil
}
