package post

import (
	"context"

	"github.com/anhnguyenduc/devconnect/pkg/pagination"
)

// PostRepository defines the data access contract for the feed.
//
// FindByID and List return posts with likes and comments attached.
type PostRepository interface {
	// Create persists a new post row.
	Create(context context.Context, post *Post) error

	// FindByID returns the hydrated post or apperr.NotFound ("Post not found!").
	FindByID(context context.Context, id string) (*Post, error)

	// List returns a page of hydrated posts, newest first.
	List(context context.Context, params pagination.Params) ([]Post, error)

	// Delete removes the post row; likes and comments cascade.
	Delete(context context.Context, id string) error

	// AddLike records one user's like. Duplicate likes violate the primary
	// key and surface as apperr.BadRequest ("Post has already been liked").
	AddLike(context context.Context, postID, userID string) error

	// RemoveLike deletes one user's like if present.
	RemoveLike(context context.Context, postID, userID string) error

	// AddComment persists a comment row on the post.
	AddComment(context context.Context, postID string, comment *Comment) error

	// DeleteComment removes one comment row by id.
	DeleteComment(context context.Context, commentID string) error
}
