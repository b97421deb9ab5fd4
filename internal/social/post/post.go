// Package post implements the social feed: posts, likes, and comments.
//
// Author identity (name, avatar) is denormalized onto posts and comments at
// write time so the feed renders without joining the account table per item.
package post

import "time"

// Like marks one user's like on a post. At most one per user per post.
type Like struct {
	UserID string `json:"user_id"`
}

// Comment is a single comment on a post with its author snapshot.
type Comment struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Text      string    `json:"text"`
	Name      string    `json:"name"`
	AvatarURL string    `json:"avatar"`
	CreatedAt time.Time `json:"created_at"`
}

// Post is a feed entry with its likes and comments, newest comments first.
type Post struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Text      string    `json:"text"`
	Name      string    `json:"name"`
	AvatarURL string    `json:"avatar"`
	Likes     []Like    `json:"likes"`
	Comments  []Comment `json:"comments"`
	CreatedAt time.Time `json:"created_at"`
}

// LikedBy reports whether the given user already liked the post.
func (p *Post) LikedBy(userID string) bool {
	for _, like := range p.Likes {
		if like.UserID == userID {
			return true
		}
	}
	return false
}

// CommentByID returns the comment with the given id, or nil.
func (p *Post) CommentByID(commentID string) *Comment {
	for i := range p.Comments {
		if p.Comments[i].ID == commentID {
			return &p.Comments[i]
		}
	}
	return nil
}

// FieldText is the only client-writable field on posts and comments.
const FieldText = "text"
