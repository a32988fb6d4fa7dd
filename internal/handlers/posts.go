package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"in.co.kisanmitra/internal/model"
)

type CommunityService interface {
	CreatePost(owner model.AccountID, params *model.CreatePostParams) (*model.Post, error)
	ListPosts(viewer model.AccountID) ([]model.Post, error)
	FetchPost(viewer model.AccountID, id model.PostID) (*model.Post, error)
	DeletePost(owner model.AccountID, id model.PostID) error
	AddComment(owner model.AccountID, postID model.PostID, params *model.CreateCommentParams) (*model.Comment, error)
	ListComments(postID model.PostID) ([]model.Comment, error)
	DeleteComment(owner model.AccountID, id model.CommentID) error
}

func CreatePost(communityService CommunityService) echo.HandlerFunc {
	return func(c echo.Context) error {
		params := &model.CreatePostParams{}
		if err := c.Bind(params); err != nil {
			return badRequest(c, "invalid request body")
		}
		post, err := communityService.CreatePost(AccountFrom(c).ID, params)
		if err != nil {
			return fail(c, err)
		}
		return ok(c, http.StatusCreated, post)
	}
}

func ListPosts(communityService CommunityService) echo.HandlerFunc {
	return func(c echo.Context) error {
		posts, err := communityService.ListPosts(ViewerFrom(c))
		if err != nil {
			return fail(c, err)
		}
		return ok(c, http.StatusOK, posts)
	}
}

func GetPost(communityService CommunityService) echo.HandlerFunc {
	return func(c echo.Context) error {
		post, err := communityService.FetchPost(ViewerFrom(c), model.PostID(c.Param("id")))
		if err != nil {
			return fail(c, err)
		}
		return ok(c, http.StatusOK, post)
	}
}

func DeletePost(communityService CommunityService) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := communityService.DeletePost(AccountFrom(c).ID, model.PostID(c.Param("id"))); err != nil {
			return fail(c, err)
		}
		return okMessage(c, http.StatusOK, "post deleted", nil)
	}
}

func AddComment(communityService CommunityService) echo.HandlerFunc {
	return func(c echo.Context) error {
		params := &model.CreateCommentParams{}
		if err := c.Bind(params); err != nil {
			return badRequest(c, "invalid request body")
		}
		comment, err := communityService.AddComment(AccountFrom(c).ID, model.PostID(c.Param("id")), params)
		if err != nil {
			return fail(c, err)
		}
		return ok(c, http.StatusCreated, comment)
	}
}

func ListComments(communityService CommunityService) echo.HandlerFunc {
	return func(c echo.Context) error {
		comments, err := communityService.ListComments(model.PostID(c.Param("id")))
		if err != nil {
			return fail(c, err)
		}
		return ok(c, http.StatusOK, comments)
	}
}

func DeleteComment(communityService CommunityService) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := communityService.DeleteComment(AccountFrom(c).ID, model.CommentID(c.Param("id"))); err != nil {
			return fail(c, err)
		}
		return okMessage(c, http.StatusOK, "comment deleted", nil)
	}
}
