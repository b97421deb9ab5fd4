package schema

// SocialPostTable represents the 'social.post' table
type SocialPostTable struct {
	Table      string
	ID         string
	UserID     string
	Text       string
	AuthorName string
	AvatarURL  string
	CreatedAt  string
}

// SocialPost is the schema definition for social.post
var SocialPost = SocialPostTable{
	Table:      "social.post",
	ID:         "id",
	UserID:     "userid",
	Text:       "body",
	AuthorName: "authorname",
	AvatarURL:  "avatarurl",
	CreatedAt:  "createdat",
}

// SocialCommentTable represents the 'social.comment' table
type SocialCommentTable struct {
	Table      string
	ID         string
	PostID     string
	UserID     string
	Text       string
	AuthorName string
	AvatarURL  string
	CreatedAt  string
}

// SocialComment is the schema definition for social.comment
var SocialComment = SocialCommentTable{
	Table:      "social.comment",
	ID:         "id",
	PostID:     "postid",
	UserID:     "userid",
	Text:       "body",
	AuthorName: "authorname",
	AvatarURL:  "avatarurl",
	CreatedAt:  "createdat",
}

// SocialPostLikeTable represents the 'social.post_like' table
type SocialPostLikeTable struct {
	Table     string
	PostID    string
	UserID    string
	CreatedAt string
}

// SocialPostLike is the schema definition for social.post_like
var SocialPostLike = SocialPostLikeTable{
	Table:     "social.post_like",
	PostID:    "postid",
	UserID:    "userid",
	CreatedAt: "createdat",
}
