package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Artur-creator-1/blogapp/repos/memory"
)

func newPostService(t *testing.T) (*PostService, *memory.Store) {
	t.Helper()
	store := memory.New()
	return NewPostService(store.Repos().Posts, testLogger()), store
}

func validPost() CreatePostRequest {
	return CreatePostRequest{
		Title:       "Go concurrency patterns",
		Content:     "Channels and goroutines compose into pipelines.",
		Summary:     "A short tour of pipelines.",
		IsPublished: true,
	}
}

func TestPostService_Create(t *testing.T) {
	ctx := context.Background()
	svc, _ := newPostService(t)

	resp := svc.Create(ctx, 1, validPost())
	require.True(t, resp.Success)
	assert.Equal(t, "Post created successfully", resp.Message)
	assert.Equal(t, int64(1), resp.Data.UserID)
	assert.True(t, resp.Data.IsPublished)
	require.NotNil(t, resp.Data.PublishedAt)
}

func TestPostService_CreateDraft(t *testing.T) {
	ctx := context.Background()
	svc, _ := newPostService(t)

	req := validPost()
	req.IsPublished = false
	resp := svc.Create(ctx, 1, req)
	require.True(t, resp.Success)
	assert.False(t, resp.Data.IsPublished)
	assert.Nil(t, resp.Data.PublishedAt)
}

func TestPostService_CreateValidation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newPostService(t)

	req := CreatePostRequest{Title: "ab", Content: "short"}
	resp := svc.Create(ctx, 1, req)
	require.False(t, resp.Success)
	assert.Equal(t, KindValidation, resp.Kind)
	assert.Contains(t, resp.Errors, "Title must be at least 3 characters")
	assert.Contains(t, resp.Errors, "Content must be at least 10 characters")

	invalid := svc.Create(ctx, 0, validPost())
	require.False(t, invalid.Success)
	assert.Equal(t, KindValidation, invalid.Kind)
}

func TestPostService_UpdatePartial(t *testing.T) {
	ctx := context.Background()
	svc, _ := newPostService(t)

	created := svc.Create(ctx, 1, validPost())
	require.True(t, created.Success)
	id := created.Data.ID

	// Blank title and content keep the stored values.
	resp := svc.Update(ctx, id, UpdatePostRequest{Summary: "Updated summary.", IsPublished: true})
	require.True(t, resp.Success)
	assert.Equal(t, "Go concurrency patterns", resp.Data.Title)
	assert.Equal(t, "Updated summary.", resp.Data.Summary)
}

func TestPostService_UpdatePublishStampSticks(t *testing.T) {
	ctx := context.Background()
	svc, _ := newPostService(t)

	draft := validPost()
	draft.IsPublished = false
	created := svc.Create(ctx, 1, draft)
	require.True(t, created.Success)
	id := created.Data.ID

	published := svc.Update(ctx, id, UpdatePostRequest{IsPublished: true})
	require.True(t, published.Success)
	require.NotNil(t, published.Data.PublishedAt)
	stamp := *published.Data.PublishedAt

	// Unpublishing flips the flag but keeps the original publish time.
	unpublished := svc.Update(ctx, id, UpdatePostRequest{IsPublished: false})
	require.True(t, unpublished.Success)
	assert.False(t, unpublished.Data.IsPublished)
	require.NotNil(t, unpublished.Data.PublishedAt)

	again := svc.Update(ctx, id, UpdatePostRequest{IsPublished: true})
	require.True(t, again.Success)
	require.NotNil(t, again.Data.PublishedAt)
	assert.Equal(t, stamp, *again.Data.PublishedAt)
}

func TestPostService_Delete(t *testing.T) {
	ctx := context.Background()
	svc, store := newPostService(t)

	created := svc.Create(ctx, 1, validPost())
	require.True(t, created.Success)
	id := created.Data.ID

	resp := svc.Delete(ctx, id)
	require.True(t, resp.Success)
	assert.Equal(t, "Post deleted successfully", resp.Data)

	gone := svc.GetByID(ctx, id)
	require.False(t, gone.Success)
	assert.Equal(t, KindNotFound, gone.Kind)

	// The row is retained with the delete flag set.
	raw := store.Raw(id)
	require.NotNil(t, raw)
	assert.True(t, raw.IsDeleted)

	again := svc.Delete(ctx, id)
	require.False(t, again.Success)
	assert.Equal(t, KindNotFound, again.Kind)
}

func TestPostService_GetAll(t *testing.T) {
	ctx := context.Background()
	svc, _ := newPostService(t)

	empty := svc.GetAll(ctx)
	require.True(t, empty.Success)
	assert.Empty(t, empty.Data)
	assert.Equal(t, "No posts found", empty.Message)

	first := svc.Create(ctx, 1, validPost())
	require.True(t, first.Success)
	second := svc.Create(ctx, 2, validPost())
	require.True(t, second.Success)
	require.True(t, svc.Delete(ctx, first.Data.ID).Success)

	resp := svc.GetAll(ctx)
	require.True(t, resp.Success)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, second.Data.ID, resp.Data[0].ID)
}

func TestPostService_GetByUserID(t *testing.T) {
	ctx := context.Background()
	svc, _ := newPostService(t)

	require.True(t, svc.Create(ctx, 1, validPost()).Success)
	require.True(t, svc.Create(ctx, 2, validPost()).Success)

	resp := svc.GetByUserID(ctx, 1)
	require.True(t, resp.Success)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, int64(1), resp.Data[0].UserID)

	none := svc.GetByUserID(ctx, 42)
	require.True(t, none.Success)
	assert.Empty(t, none.Data)
	assert.Equal(t, "No posts found", none.Message)
}
