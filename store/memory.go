package store

import (
	"context"
	"strings"
	"sync"

	"sportsbuddy/models"
)

// Memory is an in-process Store with the same observable behavior as
// Mongo, used by tests. Insertion order is preserved, matching what an
// unordered Mongo find returns in practice for small collections.
type Memory struct {
	mu       sync.RWMutex
	accounts []models.Account
	posts    []models.Post
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) InsertAccount(_ context.Context, acc models.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts = append(m.accounts, acc)
	return nil
}

func (m *Memory) FindAccountByEmailFold(_ context.Context, email string) (*models.Account, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, acc := range m.accounts {
		if strings.EqualFold(acc.Email, email) {
			found := acc
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) FindAccountByEmail(_ context.Context, email string) (*models.Account, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, acc := range m.accounts {
		if acc.Email == email {
			found := acc
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) FindAccountsByEmail(_ context.Context, email string) ([]models.Account, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	matches := make([]models.Account, 0)
	for _, acc := range m.accounts {
		if acc.Email == email {
			matches = append(matches, acc)
		}
	}
	return matches, nil
}

func (m *Memory) ListAccounts(_ context.Context) ([]models.Account, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Account, len(m.accounts))
	copy(out, m.accounts)
	return out, nil
}

func (m *Memory) InsertPost(_ context.Context, post models.Post) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.posts = append(m.posts, post)
	return nil
}

func (m *Memory) FindPostByEmail(_ context.Context, email string) (*models.Post, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, post := range m.posts {
		if post.Email == email {
			found := post
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) UpdatePostByEmail(_ context.Context, email string, post models.Post) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.posts {
		if m.posts[i].Email != email {
			continue
		}
		// Mongo's ModifiedCount is zero when $set changes nothing;
		// callers depend on that distinction.
		if m.posts[i].SameFields(post) {
			return 0, nil
		}
		post.ID = m.posts[i].ID
		m.posts[i] = post
		return 1, nil
	}
	return 0, nil
}

func (m *Memory) ListPosts(_ context.Context) ([]models.Post, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Post, len(m.posts))
	copy(out, m.posts)
	return out, nil
}

func (m *Memory) ListPostsByLocation(_ context.Context, location string) ([]models.Post, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	needle := strings.ToLower(location)
	matches := make([]models.Post, 0)
	for _, post := range m.posts {
		if strings.Contains(strings.ToLower(post.Location), needle) {
			matches = append(matches, post)
		}
	}
	return matches, nil
}

func (m *Memory) ListPostsFiltered(_ context.Context, sport, location string) ([]models.Post, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	matches := make([]models.Post, 0)
	for _, post := range m.posts {
		if sport != "" && post.Sport != sport {
			continue
		}
		if location != "" && post.Location != location {
			continue
		}
		matches = append(matches, post)
	}
	return matches, nil
}
