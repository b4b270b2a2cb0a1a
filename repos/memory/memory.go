// Package memory provides in-memory repository implementations backed by
// maps and a mutex. They mirror the SQL repositories' visibility rules
// (soft-delete filters, slug/username lookups that see inactive rows) and
// back the service tests.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/Artur-creator-1/blogapp/models"
	"github.com/Artur-creator-1/blogapp/repos"
)

// Store holds every entity table and implements all repository interfaces
// through small per-entity views.
type Store struct {
	mu           sync.RWMutex
	nextID       int64
	users        map[int64]*models.User
	posts        map[int64]*models.Post
	comments     map[int64]*models.Comment
	tags         map[int64]*models.Tag
	postTags     map[[2]int64]time.Time
	postLikes    map[[2]int64]time.Time
	commentLikes map[[2]int64]time.Time
}

// New creates an empty store.
func New() *Store {
	return &Store{
		users:        make(map[int64]*models.User),
		posts:        make(map[int64]*models.Post),
		comments:     make(map[int64]*models.Comment),
		tags:         make(map[int64]*models.Tag),
		postTags:     make(map[[2]int64]time.Time),
		postLikes:    make(map[[2]int64]time.Time),
		commentLikes: make(map[[2]int64]time.Time),
	}
}

// Repos returns the store wrapped as the repository aggregate.
func (s *Store) Repos() repos.Repos {
	return repos.Repos{
		Users:        &userView{s},
		Posts:        &postView{s},
		Comments:     &commentView{s},
		Tags:         &tagView{s},
		PostLikes:    &likeView{s: s, table: s.postLikes},
		CommentLikes: &likeView{s: s, table: s.commentLikes},
	}
}

func (s *Store) allocID() int64 {
	s.nextID++
	return s.nextID
}

// === users ===

type userView struct{ s *Store }

func (v *userView) GetByID(ctx context.Context, id int64) (*models.User, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	u, ok := v.s.users[id]
	if !ok {
		return nil, repos.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (v *userView) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	for _, u := range v.s.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repos.ErrNotFound
}

func (v *userView) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	for _, u := range v.s.users {
		if strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repos.ErrNotFound
}

func (v *userView) GetAll(ctx context.Context) ([]models.User, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	var users []models.User
	for _, u := range v.s.users {
		if u.IsActive {
			users = append(users, *u)
		}
	}
	sort.Slice(users, func(i, j int) bool { return newerFirst(users[i].CreatedAt, users[i].ID, users[j].CreatedAt, users[j].ID) })
	return users, nil
}

func (v *userView) Create(ctx context.Context, user *models.User) (int64, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	user.ID = v.s.allocID()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	cp := *user
	v.s.users[user.ID] = &cp
	return user.ID, nil
}

func (v *userView) Update(ctx context.Context, user *models.User) error {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	stored, ok := v.s.users[user.ID]
	if !ok {
		return nil
	}
	stored.DisplayName = user.DisplayName
	stored.Bio = user.Bio
	stored.PasswordHash = user.PasswordHash
	stored.Role = user.Role
	stored.IsActive = user.IsActive
	stored.LastLoginAt = user.LastLoginAt
	stored.UpdatedAt = time.Now()
	return nil
}

func (v *userView) Deactivate(ctx context.Context, id int64) (bool, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	u, ok := v.s.users[id]
	if !ok {
		return false, nil
	}
	u.IsActive = false
	u.UpdatedAt = time.Now()
	return true, nil
}

// === posts ===

type postView struct{ s *Store }

func (v *postView) GetByID(ctx context.Context, id int64) (*models.Post, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	p, ok := v.s.posts[id]
	if !ok || p.IsDeleted {
		return nil, repos.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (v *postView) GetAll(ctx context.Context) ([]models.Post, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	var posts []models.Post
	for _, p := range v.s.posts {
		if !p.IsDeleted {
			posts = append(posts, *p)
		}
	}
	sort.Slice(posts, func(i, j int) bool { return newerFirst(posts[i].CreatedAt, posts[i].ID, posts[j].CreatedAt, posts[j].ID) })
	return posts, nil
}

func (v *postView) GetByUserID(ctx context.Context, userID int64) ([]models.Post, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	var posts []models.Post
	for _, p := range v.s.posts {
		if p.UserID == userID && !p.IsDeleted {
			posts = append(posts, *p)
		}
	}
	sort.Slice(posts, func(i, j int) bool { return newerFirst(posts[i].CreatedAt, posts[i].ID, posts[j].CreatedAt, posts[j].ID) })
	return posts, nil
}

func (v *postView) Create(ctx context.Context, post *models.Post) (int64, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	post.ID = v.s.allocID()
	post.CreatedAt = time.Now()
	post.UpdatedAt = post.CreatedAt
	cp := *post
	v.s.posts[post.ID] = &cp
	return post.ID, nil
}

func (v *postView) Update(ctx context.Context, post *models.Post) error {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	stored, ok := v.s.posts[post.ID]
	if !ok || stored.IsDeleted {
		return nil
	}
	stored.Title = post.Title
	stored.Content = post.Content
	stored.Summary = post.Summary
	stored.ImageURL = post.ImageURL
	stored.IsPublished = post.IsPublished
	stored.PublishedAt = post.PublishedAt
	stored.UpdatedAt = time.Now()
	return nil
}

func (v *postView) Delete(ctx context.Context, id int64) (bool, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	p, ok := v.s.posts[id]
	if !ok || p.IsDeleted {
		return false, nil
	}
	p.IsDeleted = true
	p.UpdatedAt = time.Now()
	return true, nil
}

// Raw returns a post row bypassing the soft-delete filter. Test helper.
func (s *Store) Raw(id int64) *models.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if p, ok := s.posts[id]; ok {
		cp := *p
		return &cp
	}
	return nil
}

// === comments ===

type commentView struct{ s *Store }

func (v *commentView) GetByID(ctx context.Context, id int64) (*models.Comment, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	c, ok := v.s.comments[id]
	if !ok || c.IsDeleted {
		return nil, repos.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (v *commentView) GetByPostID(ctx context.Context, postID int64) ([]models.Comment, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	var comments []models.Comment
	for _, c := range v.s.comments {
		if c.PostID == postID && !c.IsDeleted {
			comments = append(comments, *c)
		}
	}
	sort.Slice(comments, func(i, j int) bool {
		return newerFirst(comments[i].CreatedAt, comments[i].ID, comments[j].CreatedAt, comments[j].ID)
	})
	return comments, nil
}

func (v *commentView) GetByUserID(ctx context.Context, userID int64) ([]models.Comment, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	var comments []models.Comment
	for _, c := range v.s.comments {
		if c.UserID == userID && !c.IsDeleted {
			comments = append(comments, *c)
		}
	}
	sort.Slice(comments, func(i, j int) bool {
		return newerFirst(comments[i].CreatedAt, comments[i].ID, comments[j].CreatedAt, comments[j].ID)
	})
	return comments, nil
}

func (v *commentView) Create(ctx context.Context, comment *models.Comment) (int64, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	comment.ID = v.s.allocID()
	comment.CreatedAt = time.Now()
	comment.UpdatedAt = comment.CreatedAt
	cp := *comment
	v.s.comments[comment.ID] = &cp
	return comment.ID, nil
}

func (v *commentView) Update(ctx context.Context, comment *models.Comment) error {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	stored, ok := v.s.comments[comment.ID]
	if !ok || stored.IsDeleted {
		return nil
	}
	stored.Content = comment.Content
	stored.IsEdited = true
	stored.UpdatedAt = time.Now()
	return nil
}

func (v *commentView) Delete(ctx context.Context, id int64) (bool, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	c, ok := v.s.comments[id]
	if !ok || c.IsDeleted {
		return false, nil
	}
	c.IsDeleted = true
	c.UpdatedAt = time.Now()
	return true, nil
}

// === tags ===

type tagView struct{ s *Store }

func (v *tagView) GetByID(ctx context.Context, id int64) (*models.Tag, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	t, ok := v.s.tags[id]
	if !ok {
		return nil, repos.ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (v *tagView) GetBySlug(ctx context.Context, slug string) (*models.Tag, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	for _, t := range v.s.tags {
		if t.Slug == slug {
			cp := *t
			return &cp, nil
		}
	}
	return nil, repos.ErrNotFound
}

func (v *tagView) GetAll(ctx context.Context) ([]models.Tag, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	var tags []models.Tag
	for _, t := range v.s.tags {
		if t.IsActive {
			tags = append(tags, *t)
		}
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i].PostsCount > tags[j].PostsCount })
	return tags, nil
}

func (v *tagView) GetByPostID(ctx context.Context, postID int64) ([]models.Tag, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	var tags []models.Tag
	for key := range v.s.postTags {
		if key[0] != postID {
			continue
		}
		if t, ok := v.s.tags[key[1]]; ok {
			tags = append(tags, *t)
		}
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i].ID < tags[j].ID })
	return tags, nil
}

func (v *tagView) Create(ctx context.Context, tag *models.Tag) (int64, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	tag.ID = v.s.allocID()
	tag.CreatedAt = time.Now()
	tag.UpdatedAt = tag.CreatedAt
	cp := *tag
	v.s.tags[tag.ID] = &cp
	return tag.ID, nil
}

func (v *tagView) Update(ctx context.Context, tag *models.Tag) error {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	stored, ok := v.s.tags[tag.ID]
	if !ok {
		return nil
	}
	stored.Name = tag.Name
	stored.Slug = tag.Slug
	stored.Description = tag.Description
	stored.Color = tag.Color
	stored.PostsCount = tag.PostsCount
	stored.IsActive = tag.IsActive
	stored.UpdatedAt = time.Now()
	return nil
}

func (v *tagView) Deactivate(ctx context.Context, id int64) (bool, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	t, ok := v.s.tags[id]
	if !ok || !t.IsActive {
		return false, nil
	}
	t.IsActive = false
	t.UpdatedAt = time.Now()
	return true, nil
}

func (v *tagView) AttachToPost(ctx context.Context, postID, tagID int64) (bool, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	key := [2]int64{postID, tagID}
	if _, ok := v.s.postTags[key]; ok {
		return false, nil
	}
	v.s.postTags[key] = time.Now()
	return true, nil
}

func (v *tagView) DetachFromPost(ctx context.Context, postID, tagID int64) (bool, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	key := [2]int64{postID, tagID}
	if _, ok := v.s.postTags[key]; !ok {
		return false, nil
	}
	delete(v.s.postTags, key)
	return true, nil
}

// === likes ===

// likeView serves both post and comment likes; table selects which pair set
// it operates on.
type likeView struct {
	s     *Store
	table map[[2]int64]time.Time
}

func (v *likeView) Like(ctx context.Context, targetID, userID int64) (bool, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	key := [2]int64{targetID, userID}
	if _, ok := v.table[key]; ok {
		return false, nil
	}
	v.table[key] = time.Now()
	return true, nil
}

func (v *likeView) Unlike(ctx context.Context, targetID, userID int64) (bool, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	key := [2]int64{targetID, userID}
	if _, ok := v.table[key]; !ok {
		return false, nil
	}
	delete(v.table, key)
	return true, nil
}

func (v *likeView) IsLiked(ctx context.Context, targetID, userID int64) (bool, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	_, ok := v.table[[2]int64{targetID, userID}]
	return ok, nil
}

func (v *likeView) Count(ctx context.Context, targetID int64) (int64, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	var count int64
	for key := range v.table {
		if key[0] == targetID {
			count++
		}
	}
	return count, nil
}

// newerFirst orders rows by creation time descending, falling back to the
// id when timestamps collide within clock resolution.
func newerFirst(ti time.Time, idi int64, tj time.Time, idj int64) bool {
	if ti.Equal(tj) {
		return idi > idj
	}
	return ti.After(tj)
}
