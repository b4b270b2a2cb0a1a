package repos

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Artur-creator-1/blogapp/models"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Comment{},
		&models.Tag{},
		&models.PostTag{},
		&models.PostLike{},
		&models.CommentLike{},
	))
	return db
}

func TestGormUserRepo_LookupsSeeInactive(t *testing.T) {
	ctx := context.Background()
	db := testDB(t)
	r := NewGormUserRepo(db)

	id, err := r.Create(ctx, &models.User{
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "x",
		IsActive:     true,
	})
	require.NoError(t, err)

	ok, err := r.Deactivate(ctx, id)
	require.NoError(t, err)
	require.True(t, ok)

	// Username and email lookups keep returning the deactivated row so
	// uniqueness checks still catch it.
	byName, err := r.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, byName.IsActive)

	byEmail, err := r.GetByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.False(t, byEmail.IsActive)

	// GetAll filters inactive rows.
	all, err := r.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestGormUserRepo_NotFound(t *testing.T) {
	ctx := context.Background()
	r := NewGormUserRepo(testDB(t))

	_, err := r.GetByID(ctx, 42)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = r.GetByUsername(ctx, "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGormPostRepo_SoftDelete(t *testing.T) {
	ctx := context.Background()
	db := testDB(t)
	r := NewGormPostRepo(db)

	id, err := r.Create(ctx, &models.Post{UserID: 1, Title: "T", Content: "C", IsPublished: true})
	require.NoError(t, err)

	ok, err := r.Delete(ctx, id)
	require.NoError(t, err)
	require.True(t, ok)

	// Reads exclude the row...
	_, err = r.GetByID(ctx, id)
	assert.ErrorIs(t, err, ErrNotFound)

	all, err := r.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	// ...but the row itself is retained with the flag set.
	var raw models.Post
	require.NoError(t, db.Unscoped().First(&raw, id).Error)
	assert.True(t, raw.IsDeleted)

	// Deleting again affects nothing.
	ok, err = r.Delete(ctx, id)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestGormPostRepo_UpdateSkipsDeleted(t *testing.T) {
	ctx := context.Background()
	db := testDB(t)
	r := NewGormPostRepo(db)

	id, err := r.Create(ctx, &models.Post{UserID: 1, Title: "Before", Content: "C"})
	require.NoError(t, err)
	_, err = r.Delete(ctx, id)
	require.NoError(t, err)

	require.NoError(t, r.Update(ctx, &models.Post{ID: id, Title: "After", Content: "C"}))

	var raw models.Post
	require.NoError(t, db.Unscoped().First(&raw, id).Error)
	assert.Equal(t, "Before", raw.Title)
}

func TestGormCommentRepo_UpdateSetsEdited(t *testing.T) {
	ctx := context.Background()
	r := NewGormCommentRepo(testDB(t))

	id, err := r.Create(ctx, &models.Comment{PostID: 1, UserID: 2, Content: "hi"})
	require.NoError(t, err)

	comment, err := r.GetByID(ctx, id)
	require.NoError(t, err)
	require.False(t, comment.IsEdited)

	require.NoError(t, r.Update(ctx, comment))

	updated, err := r.GetByID(ctx, id)
	require.NoError(t, err)
	assert.True(t, updated.IsEdited)
}

func TestGormPostLikeRepo_Idempotent(t *testing.T) {
	ctx := context.Background()
	r := NewGormPostLikeRepo(testDB(t))

	created, err := r.Like(ctx, 1, 7)
	require.NoError(t, err)
	assert.True(t, created)

	// The conflicting insert is a no-op, not an error.
	created, err = r.Like(ctx, 1, 7)
	require.NoError(t, err)
	assert.False(t, created)

	count, err := r.Count(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	removed, err := r.Unlike(ctx, 1, 7)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = r.Unlike(ctx, 1, 7)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestGormTagRepo_SlugAndOrdering(t *testing.T) {
	ctx := context.Background()
	r := NewGormTagRepo(testDB(t))

	goID, err := r.Create(ctx, &models.Tag{Name: "Go", Slug: "go", IsActive: true, PostsCount: 5})
	require.NoError(t, err)
	_, err = r.Create(ctx, &models.Tag{Name: "Rust", Slug: "rust", IsActive: true, PostsCount: 9})
	require.NoError(t, err)

	ok, err := r.Deactivate(ctx, goID)
	require.NoError(t, err)
	require.True(t, ok)

	// Slug lookup still sees the deactivated tag.
	tag, err := r.GetBySlug(ctx, "go")
	require.NoError(t, err)
	assert.False(t, tag.IsActive)

	// GetAll lists only active tags, most used first.
	all, err := r.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "rust", all[0].Slug)
}

func TestGormTagRepo_AttachDetach(t *testing.T) {
	ctx := context.Background()
	r := NewGormTagRepo(testDB(t))

	tagID, err := r.Create(ctx, &models.Tag{Name: "Go", Slug: "go", IsActive: true})
	require.NoError(t, err)

	attached, err := r.AttachToPost(ctx, 1, tagID)
	require.NoError(t, err)
	assert.True(t, attached)

	attached, err = r.AttachToPost(ctx, 1, tagID)
	require.NoError(t, err)
	assert.False(t, attached)

	tags, err := r.GetByPostID(ctx, 1)
	require.NoError(t, err)
	require.Len(t, tags, 1)
	assert.Equal(t, "go", tags[0].Slug)

	detached, err := r.DetachFromPost(ctx, 1, tagID)
	require.NoError(t, err)
	assert.True(t, detached)

	tags, err = r.GetByPostID(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, tags)
}
