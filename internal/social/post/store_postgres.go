package post

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/anhnguyenduc/devconnect/internal/platform/apperr"
	"github.com/anhnguyenduc/devconnect/internal/platform/database/schema"
	"github.com/anhnguyenduc/devconnect/internal/platform/dberr"
	"github.com/anhnguyenduc/devconnect/pkg/pagination"
	"github.com/anhnguyenduc/devconnect/pkg/slice"
)

// PostgresPostRepository implements PostRepository using pgx.
//
// Likes and comments live in their own tables and are stitched onto posts in
// batched follow-up queries, one per table, regardless of page size.
type PostgresPostRepository struct {
	pool *pgxpool.Pool
}

// NewPostRepository creates a new PostgreSQL implementation of the PostRepository.
func NewPostRepository(pool *pgxpool.Pool) *PostgresPostRepository {
	return &PostgresPostRepository{pool: pool}
}

func (repository *PostgresPostRepository) Create(context context.Context, post *Post) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, userid, body, authorname, avatarurl, createdat)
		VALUES ($1, $2, $3, $4, $5, $6)`, schema.SocialPost.Table)

	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now()
	}

	_, err := repository.pool.Exec(context, query,
		post.ID, post.UserID, post.Text, post.Name, post.AvatarURL, post.CreatedAt)
	if err != nil {
		return fmt.Errorf("postgres_post_repo_create_failed: %w", err)
	}
	return nil
}

func (repository *PostgresPostRepository) FindByID(context context.Context, id string) (*Post, error) {
	query := fmt.Sprintf(`
		SELECT id, userid, body, authorname, avatarurl, createdat
		FROM %s WHERE id = $1`, schema.SocialPost.Table)

	var post Post
	err := repository.pool.QueryRow(context, query, id).Scan(
		&post.ID, &post.UserID, &post.Text, &post.Name, &post.AvatarURL, &post.CreatedAt)
	if err != nil {
		return nil, dberr.Wrap(err, "Post not found!", "")
	}

	if err := repository.attachReactions(context, []*Post{&post}); err != nil {
		return nil, err
	}
	return &post, nil
}

func (repository *PostgresPostRepository) List(context context.Context, params pagination.Params) ([]Post, error) {
	query := fmt.Sprintf(`
		SELECT id, userid, body, authorname, avatarurl, createdat
		FROM %s
		ORDER BY createdat DESC
		LIMIT $1 OFFSET $2`, schema.SocialPost.Table)

	rows, err := repository.pool.Query(context, query, params.Limit, params.Offset())
	if err != nil {
		return nil, fmt.Errorf("postgres_post_repo_list_failed: %w", err)
	}
	defer rows.Close()

	hydrated := []*Post{}
	for rows.Next() {
		var post Post
		err := rows.Scan(
			&post.ID, &post.UserID, &post.Text, &post.Name, &post.AvatarURL, &post.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("postgres_post_repo_scan_failed: %w", err)
		}
		hydrated = append(hydrated, &post)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := repository.attachReactions(context, hydrated); err != nil {
		return nil, err
	}

	return slice.Map(hydrated, func(post *Post) Post { return *post }), nil
}

func (repository *PostgresPostRepository) Delete(context context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, schema.SocialPost.Table)

	if _, err := repository.pool.Exec(context, query, id); err != nil {
		return fmt.Errorf("postgres_post_repo_delete_failed: %w", err)
	}
	return nil
}

func (repository *PostgresPostRepository) AddLike(context context.Context, postID, userID string) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (postid, userid, createdat) VALUES ($1, $2, $3)`,
		schema.SocialPostLike.Table)

	_, err := repository.pool.Exec(context, query, postID, userID, time.Now())
	if err != nil {
		// The (postid, userid) primary key is the concurrent double-like guard.
		if dberr.IsUniqueViolation(err) {
			return apperr.BadRequest("Post has already been liked")
		}
		return fmt.Errorf("postgres_post_repo_add_like_failed: %w", err)
	}
	return nil
}

func (repository *PostgresPostRepository) RemoveLike(context context.Context, postID, userID string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE postid = $1 AND userid = $2`,
		schema.SocialPostLike.Table)

	if _, err := repository.pool.Exec(context, query, postID, userID); err != nil {
		return fmt.Errorf("postgres_post_repo_remove_like_failed: %w", err)
	}
	return nil
}

func (repository *PostgresPostRepository) AddComment(context context.Context, postID string, comment *Comment) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, postid, userid, body, authorname, avatarurl, createdat)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`, schema.SocialComment.Table)

	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now()
	}

	_, err := repository.pool.Exec(context, query,
		comment.ID, postID, comment.UserID, comment.Text,
		comment.Name, comment.AvatarURL, comment.CreatedAt)
	if err != nil {
		return fmt.Errorf("postgres_post_repo_add_comment_failed: %w", err)
	}
	return nil
}

func (repository *PostgresPostRepository) DeleteComment(context context.Context, commentID string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, schema.SocialComment.Table)

	if _, err := repository.pool.Exec(context, query, commentID); err != nil {
		return fmt.Errorf("postgres_post_repo_delete_comment_failed: %w", err)
	}
	return nil
}

// attachReactions loads likes and comments for the given posts in two queries.
func (repository *PostgresPostRepository) attachReactions(context context.Context, posts []*Post) error {
	if len(posts) == 0 {
		return nil
	}

	byID := make(map[string]*Post, len(posts))
	postIDs := make([]string, 0, len(posts))
	for _, post := range posts {
		post.Likes = []Like{}
		post.Comments = []Comment{}
		byID[post.ID] = post
		postIDs = append(postIDs, post.ID)
	}

	likeQuery := fmt.Sprintf(`
		SELECT postid, userid FROM %s
		WHERE postid = ANY($1)
		ORDER BY createdat DESC`, schema.SocialPostLike.Table)

	rows, err := repository.pool.Query(context, likeQuery, postIDs)
	if err != nil {
		return fmt.Errorf("postgres_post_repo_likes_load_failed: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var postID string
		var like Like
		if err := rows.Scan(&postID, &like.UserID); err != nil {
			return fmt.Errorf("postgres_post_repo_likes_scan_failed: %w", err)
		}
		if post, ok := byID[postID]; ok {
			post.Likes = append(post.Likes, like)
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	commentQuery := fmt.Sprintf(`
		SELECT id, postid, userid, body, authorname, avatarurl, createdat
		FROM %s
		WHERE postid = ANY($1)
		ORDER BY createdat DESC`, schema.SocialComment.Table)

	rows, err = repository.pool.Query(context, commentQuery, postIDs)
	if err != nil {
		return fmt.Errorf("postgres_post_repo_comments_load_failed: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var postID string
		var comment Comment
		err := rows.Scan(
			&comment.ID, &postID, &comment.UserID, &comment.Text,
			&comment.Name, &comment.AvatarURL, &comment.CreatedAt)
		if err != nil {
			return fmt.Errorf("postgres_post_repo_comments_scan_failed: %w", err)
		}
		if post, ok := byID[postID]; ok {
			post.Comments = append(post.Comments, comment)
		}
	}
	return rows.Err()
}
