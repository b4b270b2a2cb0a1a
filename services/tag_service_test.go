package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Artur-creator-1/blogapp/repos/memory"
)

func newTagService(t *testing.T) (*TagService, *memory.Store) {
	t.Helper()
	store := memory.New()
	r := store.Repos()
	return NewTagService(r.Tags, r.Posts, testLogger()), store
}

func TestTagService_Create(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTagService(t)

	resp := svc.Create(ctx, CreateTagRequest{Name: "Go", Slug: "  GoLang  ", Color: "#00ADD8"})
	require.True(t, resp.Success)
	assert.Equal(t, "Tag created successfully", resp.Message)
	assert.Equal(t, "golang", resp.Data.Slug)
	assert.True(t, resp.Data.IsActive)

	missing := svc.Create(ctx, CreateTagRequest{Name: "   "})
	require.False(t, missing.Success)
	assert.Equal(t, KindValidation, missing.Kind)
	assert.Contains(t, missing.Errors, "Tag name is required")
}

func TestTagService_CreateSlugFromName(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTagService(t)

	resp := svc.Create(ctx, CreateTagRequest{Name: "Distributed Systems"})
	require.True(t, resp.Success)
	assert.Equal(t, "distributed-systems", resp.Data.Slug)
}

func TestTagService_CreateDuplicateSlug(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTagService(t)

	require.True(t, svc.Create(ctx, CreateTagRequest{Name: "Go", Slug: "go"}).Success)

	resp := svc.Create(ctx, CreateTagRequest{Name: "Golang", Slug: "go"})
	require.False(t, resp.Success)
	assert.Equal(t, KindConflict, resp.Kind)
	assert.Equal(t, "Tag with this slug already exists", resp.Message)
}

func TestTagService_DeletedSlugStaysTaken(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTagService(t)

	created := svc.Create(ctx, CreateTagRequest{Name: "Go", Slug: "go"})
	require.True(t, created.Success)
	require.True(t, svc.Delete(ctx, created.Data.ID).Success)

	// Deactivation keeps the row, so the slug cannot be reused.
	resp := svc.Create(ctx, CreateTagRequest{Name: "Go again", Slug: "go"})
	require.False(t, resp.Success)
	assert.Equal(t, KindConflict, resp.Kind)
}

func TestTagService_GetAfterDelete(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTagService(t)

	created := svc.Create(ctx, CreateTagRequest{Name: "Go", Slug: "go"})
	require.True(t, created.Success)
	require.True(t, svc.Delete(ctx, created.Data.ID).Success)

	byID := svc.GetByID(ctx, created.Data.ID)
	require.False(t, byID.Success)
	assert.Equal(t, KindNotFound, byID.Kind)

	bySlug := svc.GetBySlug(ctx, "go")
	require.False(t, bySlug.Success)
	assert.Equal(t, KindNotFound, bySlug.Kind)
}

func TestTagService_GetAllByPopularity(t *testing.T) {
	ctx := context.Background()
	svc, store := newTagService(t)

	rare := svc.Create(ctx, CreateTagRequest{Name: "Rare", Slug: "rare"})
	require.True(t, rare.Success)
	popular := svc.Create(ctx, CreateTagRequest{Name: "Popular", Slug: "popular"})
	require.True(t, popular.Success)

	postID := seedPost(t, store)
	otherID := seedPost(t, store)
	require.True(t, svc.AttachToPost(ctx, postID, popular.Data.ID).Success)
	require.True(t, svc.AttachToPost(ctx, otherID, popular.Data.ID).Success)
	require.True(t, svc.AttachToPost(ctx, postID, rare.Data.ID).Success)

	resp := svc.GetAll(ctx)
	require.True(t, resp.Success)
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "popular", resp.Data[0].Slug)
	assert.Equal(t, 2, resp.Data[0].PostsCount)
	assert.Equal(t, "rare", resp.Data[1].Slug)
}

func TestTagService_AttachIdempotent(t *testing.T) {
	ctx := context.Background()
	svc, store := newTagService(t)

	tag := svc.Create(ctx, CreateTagRequest{Name: "Go", Slug: "go"})
	require.True(t, tag.Success)
	postID := seedPost(t, store)

	require.True(t, svc.AttachToPost(ctx, postID, tag.Data.ID).Success)
	require.True(t, svc.AttachToPost(ctx, postID, tag.Data.ID).Success)

	got := svc.GetByID(ctx, tag.Data.ID)
	require.True(t, got.Success)
	assert.Equal(t, 1, got.Data.PostsCount)

	tags := svc.GetByPostID(ctx, postID)
	require.True(t, tags.Success)
	require.Len(t, tags.Data, 1)
}

func TestTagService_Detach(t *testing.T) {
	ctx := context.Background()
	svc, store := newTagService(t)

	tag := svc.Create(ctx, CreateTagRequest{Name: "Go", Slug: "go"})
	require.True(t, tag.Success)
	postID := seedPost(t, store)

	require.True(t, svc.AttachToPost(ctx, postID, tag.Data.ID).Success)
	require.True(t, svc.DetachFromPost(ctx, postID, tag.Data.ID).Success)

	got := svc.GetByID(ctx, tag.Data.ID)
	require.True(t, got.Success)
	assert.Equal(t, 0, got.Data.PostsCount)

	// Detaching an absent link succeeds without touching the counter.
	require.True(t, svc.DetachFromPost(ctx, postID, tag.Data.ID).Success)
	got = svc.GetByID(ctx, tag.Data.ID)
	require.True(t, got.Success)
	assert.Equal(t, 0, got.Data.PostsCount)
}

func TestTagService_Update(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTagService(t)

	created := svc.Create(ctx, CreateTagRequest{Name: "Go", Slug: "go", Color: "#00ADD8"})
	require.True(t, created.Success)

	resp := svc.Update(ctx, created.Data.ID, UpdateTagRequest{Description: "The Go language."})
	require.True(t, resp.Success)
	assert.Equal(t, "Go", resp.Data.Name)
	assert.Equal(t, "The Go language.", resp.Data.Description)
	assert.Equal(t, "#00ADD8", resp.Data.Color)
}
