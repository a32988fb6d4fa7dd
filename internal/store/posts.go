package store

import (
	"database/sql"
	"errors"
	"fmt"

	"in.co.kisanmitra/internal/model"
)

func (s *Store) CreatePost(post *model.Post) error {
	res, err := s.db.NamedExec(`insert into post
		(ID, OwnerID, CreatedAt, Title, Body, Category)
		values(:ID, :OwnerID, :CreatedAt, :Title, :Body, :Category)`,
		post)
	if err != nil {
		return fmt.Errorf("inserting post: %w", err)
	}
	if rows, err := res.RowsAffected(); rows != 1 {
		return fmt.Errorf("expected 1 row to be affected, got %d", rows)
	} else if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	return nil
}

func (s *Store) ListPosts() ([]model.Post, error) {
	posts := []model.Post{}
	err := s.db.Select(&posts, `select * from post order by CreatedAt desc`)
	if err != nil {
		return nil, fmt.Errorf("listing posts: %w", err)
	}
	return posts, nil
}

func (s *Store) FetchPost(id model.PostID) (*model.Post, error) {
	post := &model.Post{}
	err := s.db.Get(post, `select * from post where ID = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("fetching post: %w", err)
	}
	return post, nil
}

// DeletePost removes a post; dependent comments go with it via the cascade
// declared on the comment table.
func (s *Store) DeletePost(id model.PostID) error {
	res, err := s.db.Exec(`delete from post where ID = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting post: %w", err)
	}
	if rows, err := res.RowsAffected(); rows != 1 {
		return model.ErrNotFound
	} else if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	return nil
}

func (s *Store) CreateComment(comment *model.Comment) error {
	res, err := s.db.NamedExec(`insert into comment
		(ID, PostID, OwnerID, CreatedAt, Body)
		values(:ID, :PostID, :OwnerID, :CreatedAt, :Body)`,
		comment)
	if err != nil {
		return fmt.Errorf("inserting comment: %w", err)
	}
	if rows, err := res.RowsAffected(); rows != 1 {
		return fmt.Errorf("expected 1 row to be affected, got %d", rows)
	} else if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	return nil
}

func (s *Store) ListComments(postID model.PostID) ([]model.Comment, error) {
	comments := []model.Comment{}
	err := s.db.Select(&comments, `select * from comment
		where PostID = ?
		order by CreatedAt desc`, postID)
	if err != nil {
		return nil, fmt.Errorf("listing comments: %w", err)
	}
	return comments, nil
}

func (s *Store) FetchComment(id model.CommentID) (*model.Comment, error) {
	comment := &model.Comment{}
	err := s.db.Get(comment, `select * from comment where ID = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("fetching comment: %w", err)
	}
	return comment, nil
}

func (s *Store) DeleteComment(id model.CommentID) error {
	res, err := s.db.Exec(`delete from comment where ID = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting comment: %w", err)
	}
	if rows, err := res.RowsAffected(); rows != 1 {
		return model.ErrNotFound
	} else if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	return nil
}
