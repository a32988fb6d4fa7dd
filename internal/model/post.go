package model

import "time"

type PostID string
type CommentID string

type CreatePostParams struct {
	Title    string `json:"title"`
	Body     string `json:"body"`
	Category string `json:"category"`
}

type CreateCommentParams struct {
	Body string `json:"body"`
}

type Post struct {
	ID        PostID    `db:"ID" json:"id"`
	OwnerID   AccountID `db:"OwnerID" json:"ownerId"`
	CreatedAt time.Time `db:"CreatedAt" json:"createdAt"`
	Title     string    `db:"Title" json:"title"`
	Body      string    `db:"Body" json:"body"`
	Category  string    `db:"Category" json:"category"`

	// IsOwner is derived per request for authenticated callers and never
	// persisted.
	IsOwner bool `db:"-" json:"isOwner"`
}

type Comment struct {
	ID        CommentID `db:"ID" json:"id"`
	PostID    PostID    `db:"PostID" json:"postId"`
	OwnerID   AccountID `db:"OwnerID" json:"ownerId"`
	CreatedAt time.Time `db:"CreatedAt" json:"createdAt"`
	Body      string    `db:"Body" json:"body"`
}
