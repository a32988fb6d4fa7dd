package community

import (
	"strings"
	"time"

	"in.co.kisanmitra/internal/model"
)

type Database interface {
	CreatePost(post *model.Post) error
	ListPosts() ([]model.Post, error)
	FetchPost(id model.PostID) (*model.Post, error)
	DeletePost(id model.PostID) error
	CreateComment(comment *model.Comment) error
	ListComments(postID model.PostID) ([]model.Comment, error)
	FetchComment(id model.CommentID) (*model.Comment, error)
	DeleteComment(id model.CommentID) error
}

type service struct {
	db Database
}

func New(db Database) *service {
	return &service{db}
}

func (s *service) CreatePost(owner model.AccountID, params *model.CreatePostParams) (*model.Post, error) {
	title := strings.TrimSpace(params.Title)
	if title == "" {
		return nil, &model.ValidationError{Field: "title", Message: "must not be empty"}
	}
	body := strings.TrimSpace(params.Body)
	if body == "" {
		return nil, &model.ValidationError{Field: "body", Message: "must not be empty"}
	}

	post := &model.Post{
		ID:        model.PostID(model.CreateID()),
		OwnerID:   owner,
		CreatedAt: time.Now().UTC(),
		Title:     title,
		Body:      body,
		Category:  strings.TrimSpace(params.Category),
	}
	if err := s.db.CreatePost(post); err != nil {
		return nil, err
	}
	post.IsOwner = true
	return post, nil
}

// ListPosts returns newest first. viewer may be empty for anonymous callers;
// when set, each post carries an ownership flag.
func (s *service) ListPosts(viewer model.AccountID) ([]model.Post, error) {
	posts, err := s.db.ListPosts()
	if err != nil {
		return nil, err
	}
	if viewer != "" {
		for i := range posts {
			posts[i].IsOwner = posts[i].OwnerID == viewer
		}
	}
	return posts, nil
}

func (s *service) FetchPost(viewer model.AccountID, id model.PostID) (*model.Post, error) {
	post, err := s.db.FetchPost(id)
	if err != nil {
		return nil, err
	}
	if viewer != "" {
		post.IsOwner = post.OwnerID == viewer
	}
	return post, nil
}

// DeletePost removes the post and, through the store's cascade, every
// comment under it.
func (s *service) DeletePost(owner model.AccountID, id model.PostID) error {
	post, err := s.db.FetchPost(id)
	if err != nil {
		return err
	}
	if post.OwnerID != owner {
		return model.ErrForbidden
	}
	return s.db.DeletePost(id)
}

func (s *service) AddComment(owner model.AccountID, postID model.PostID, params *model.CreateCommentParams) (*model.Comment, error) {
	body := strings.TrimSpace(params.Body)
	if body == "" {
		return nil, &model.ValidationError{Field: "body", Message: "must not be empty"}
	}

	if _, err := s.db.FetchPost(postID); err != nil {
		return nil, err
	}

	comment := &model.Comment{
		ID:        model.CommentID(model.CreateID()),
		PostID:    postID,
		OwnerID:   owner,
		CreatedAt: time.Now().UTC(),
		Body:      body,
	}
	if err := s.db.CreateComment(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *service) ListComments(postID model.PostID) ([]model.Comment, error) {
	if _, err := s.db.FetchPost(postID); err != nil {
		return nil, err
	}
	return s.db.ListComments(postID)
}

func (s *service) DeleteComment(owner model.AccountID, id model.CommentID) error {
	comment, err := s.db.FetchComment(id)
	if err != nil {
		return err
	}
	if comment.OwnerID != owner {
		return model.ErrForbidden
	}
	return s.db.DeleteComment(id)
}
