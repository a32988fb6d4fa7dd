package community

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"in.co.kisanmitra/internal/boot"
	"in.co.kisanmitra/internal/model"
	"in.co.kisanmitra/internal/store"
)

func testService(t *testing.T) (*service, model.AccountID, model.AccountID) {
	t.Helper()
	config := &boot.Config{DatabasePath: filepath.Join(t.TempDir(), "test.db")}
	db, err := store.Open(config)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	author := createAccount(t, db, "9876543210", "123456789012")
	other := createAccount(t, db, "9876543211", "123456789013")
	return New(db), author, other
}

func createAccount(t *testing.T, db *store.Store, mobile string, aadhaar string) model.AccountID {
	t.Helper()
	account := &model.Account{
		ID:        model.AccountID(model.CreateID()),
		CreatedAt: time.Now().UTC(),
		Active:    true,
		Mobile:    mobile,
		Aadhaar:   aadhaar,
		PIN:       "unused",
	}
	require.NoError(t, db.CreateAccount(account))
	return account.ID
}

func TestPostOwnership(t *testing.T) {
	assert := assert.New(t)
	service, author, other := testService(t)

	post, err := service.CreatePost(author, &model.CreatePostParams{
		Title: "leaf curl on my tomatoes",
		Body:  "any idea what this is?",
	})
	require.NoError(t, err)
	assert.True(post.IsOwner)

	t.Run("only the author may delete", func(t *testing.T) {
		assert.ErrorIs(service.DeletePost(other, post.ID), model.ErrForbidden)
		assert.Nil(service.DeletePost(author, post.ID))
	})
}

func TestCommentOwnership(t *testing.T) {
	assert := assert.New(t)
	service, author, other := testService(t)

	post, err := service.CreatePost(author, &model.CreatePostParams{Title: "t", Body: "b"})
	require.NoError(t, err)

	comment, err := service.AddComment(other, post.ID, &model.CreateCommentParams{Body: "try neem oil"})
	require.NoError(t, err)

	t.Run("only the commenter may delete", func(t *testing.T) {
		assert.ErrorIs(service.DeleteComment(author, comment.ID), model.ErrForbidden)
		assert.Nil(service.DeleteComment(other, comment.ID))
	})

	t.Run("commenting on a missing post fails", func(t *testing.T) {
		_, err := service.AddComment(other, model.PostID("missing"), &model.CreateCommentParams{Body: "x"})
		assert.ErrorIs(err, model.ErrNotFound)
	})
}

func TestViewerFlags(t *testing.T) {
	assert := assert.New(t)
	service, author, other := testService(t)

	_, err := service.CreatePost(author, &model.CreatePostParams{Title: "t", Body: "b"})
	require.NoError(t, err)

	t.Run("anonymous viewer gets no flags", func(t *testing.T) {
		posts, err := service.ListPosts("")
		assert.Nil(err)
		require.Len(t, posts, 1)
		assert.False(posts[0].IsOwner)
	})

	t.Run("author sees ownership", func(t *testing.T) {
		posts, err := service.ListPosts(author)
		assert.Nil(err)
		require.Len(t, posts, 1)
		assert.True(posts[0].IsOwner)
	})

	t.Run("other viewers do not", func(t *testing.T) {
		posts, err := service.ListPosts(other)
		assert.Nil(err)
		require.Len(t, posts, 1)
		assert.False(posts[0].IsOwner)
	})
}
