package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Artur-creator-1/blogapp/models"
	"github.com/Artur-creator-1/blogapp/repos/memory"
)

func newCommentService(t *testing.T) (*CommentService, *memory.Store) {
	t.Helper()
	store := memory.New()
	r := store.Repos()
	return NewCommentService(r.Comments, r.Posts, testLogger()), store
}

func seedPost(t *testing.T, store *memory.Store) int64 {
	t.Helper()
	id, err := store.Repos().Posts.Create(context.Background(), &models.Post{
		UserID:      1,
		Title:       "Seed post",
		Content:     "Content long enough to exist.",
		IsPublished: true,
	})
	require.NoError(t, err)
	return id
}

func TestCommentService_Create(t *testing.T) {
	ctx := context.Background()
	svc, store := newCommentService(t)
	postID := seedPost(t, store)

	resp := svc.Create(ctx, postID, 2, CreateCommentRequest{Content: "Nice write-up."})
	require.True(t, resp.Success)
	assert.Equal(t, "Comment created successfully", resp.Message)
	assert.Equal(t, postID, resp.Data.PostID)
	assert.Equal(t, int64(2), resp.Data.UserID)
	assert.False(t, resp.Data.IsEdited)
}

func TestCommentService_CreateMissingPost(t *testing.T) {
	ctx := context.Background()
	svc, store := newCommentService(t)

	resp := svc.Create(ctx, 999999, 2, CreateCommentRequest{Content: "Orphan comment."})
	require.False(t, resp.Success)
	assert.Equal(t, KindNotFound, resp.Kind)
	assert.Equal(t, "Post not found", resp.Message)

	// Nothing was written.
	comments, err := store.Repos().Comments.GetByPostID(ctx, 999999)
	require.NoError(t, err)
	assert.Empty(t, comments)
}

func TestCommentService_CreateParentUnchecked(t *testing.T) {
	ctx := context.Background()
	svc, store := newCommentService(t)
	postID := seedPost(t, store)

	// The parent id is stored as sent; it is not resolved against existing
	// comments.
	parent := int64(424242)
	resp := svc.Create(ctx, postID, 2, CreateCommentRequest{Content: "Reply.", ParentCommentID: &parent})
	require.True(t, resp.Success)
	require.NotNil(t, resp.Data.ParentCommentID)
	assert.Equal(t, parent, *resp.Data.ParentCommentID)
}

func TestCommentService_CreateValidation(t *testing.T) {
	ctx := context.Background()
	svc, store := newCommentService(t)
	postID := seedPost(t, store)

	resp := svc.Create(ctx, postID, 2, CreateCommentRequest{Content: "   "})
	require.False(t, resp.Success)
	assert.Equal(t, KindValidation, resp.Kind)
	assert.Contains(t, resp.Errors, "Content is required")

	invalid := svc.Create(ctx, 0, 2, CreateCommentRequest{Content: "hello"})
	require.False(t, invalid.Success)
	assert.Equal(t, KindValidation, invalid.Kind)
}

func TestCommentService_GetByPostID(t *testing.T) {
	ctx := context.Background()
	svc, store := newCommentService(t)
	postID := seedPost(t, store)

	// A post with no comments succeeds with an empty list.
	empty := svc.GetByPostID(ctx, postID)
	require.True(t, empty.Success)
	assert.Empty(t, empty.Data)
	assert.Equal(t, "No comments found", empty.Message)

	// A missing post is not found, not empty.
	missing := svc.GetByPostID(ctx, 999999)
	require.False(t, missing.Success)
	assert.Equal(t, KindNotFound, missing.Kind)

	require.True(t, svc.Create(ctx, postID, 2, CreateCommentRequest{Content: "First."}).Success)
	require.True(t, svc.Create(ctx, postID, 3, CreateCommentRequest{Content: "Second."}).Success)

	resp := svc.GetByPostID(ctx, postID)
	require.True(t, resp.Success)
	require.Len(t, resp.Data, 2)
}

func TestCommentService_UpdateMarksEdited(t *testing.T) {
	ctx := context.Background()
	svc, store := newCommentService(t)
	postID := seedPost(t, store)

	created := svc.Create(ctx, postID, 2, CreateCommentRequest{Content: "Original."})
	require.True(t, created.Success)

	resp := svc.Update(ctx, created.Data.ID, UpdateCommentRequest{Content: "Original."})
	require.True(t, resp.Success)
	assert.Equal(t, "Comment updated successfully", resp.Message)
	// Edited even when the content is unchanged.
	assert.True(t, resp.Data.IsEdited)
}

func TestCommentService_Delete(t *testing.T) {
	ctx := context.Background()
	svc, store := newCommentService(t)
	postID := seedPost(t, store)

	created := svc.Create(ctx, postID, 2, CreateCommentRequest{Content: "Fleeting."})
	require.True(t, created.Success)
	id := created.Data.ID

	resp := svc.Delete(ctx, id)
	require.True(t, resp.Success)

	gone := svc.GetByID(ctx, id)
	require.False(t, gone.Success)
	assert.Equal(t, KindNotFound, gone.Kind)

	again := svc.Delete(ctx, id)
	require.False(t, again.Success)
	assert.Equal(t, KindNotFound, again.Kind)
}

func TestCommentService_GetByUserID(t *testing.T) {
	ctx := context.Background()
	svc, store := newCommentService(t)
	postID := seedPost(t, store)

	require.True(t, svc.Create(ctx, postID, 2, CreateCommentRequest{Content: "Mine."}).Success)
	require.True(t, svc.Create(ctx, postID, 3, CreateCommentRequest{Content: "Theirs."}).Success)

	resp := svc.GetByUserID(ctx, 2)
	require.True(t, resp.Success)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "Mine.", resp.Data[0].Content)
}
