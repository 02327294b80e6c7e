// Package store holds every read and write against the backing
// document store behind one interface, so handlers never touch a
// collection directly and tests can run against the in-memory
// implementation.
package store

import (
	"context"
	"errors"

	"sportsbuddy/models"
)

// ErrNotFound is returned by single-document lookups when no document
// matches. Callers map it to a 404 or treat it as a negative predicate.
var ErrNotFound = errors.New("store: not found")

type Store interface {
	// Accounts.
	InsertAccount(ctx context.Context, acc models.Account) error
	// FindAccountByEmailFold matches the email case-insensitively.
	// This is the registration uniqueness predicate and must stay
	// separate from the exact-match lookups below.
	FindAccountByEmailFold(ctx context.Context, email string) (*models.Account, error)
	// FindAccountByEmail matches the email exactly (login lookup).
	FindAccountByEmail(ctx context.Context, email string) (*models.Account, error)
	// FindAccountsByEmail returns every account whose email exactly
	// equals the given value (the existence-check predicate).
	FindAccountsByEmail(ctx context.Context, email string) ([]models.Account, error)
	ListAccounts(ctx context.Context) ([]models.Account, error)

	// Posts.
	InsertPost(ctx context.Context, post models.Post) error
	FindPostByEmail(ctx context.Context, email string) (*models.Post, error)
	// UpdatePostByEmail replaces the stored fields of the post keyed
	// by email with the given values and returns the store's modified
	// count. An update that changes no field reports zero.
	UpdatePostByEmail(ctx context.Context, email string, post models.Post) (int64, error)
	ListPosts(ctx context.Context) ([]models.Post, error)
	// ListPostsByLocation matches posts whose location contains the
	// given substring, case-insensitively.
	ListPostsByLocation(ctx context.Context, location string) ([]models.Post, error)
	// ListPostsFiltered applies exact-equality constraints for each
	// non-empty parameter, ANDed together. Empty parameters impose
	// nothing; with both empty every post is returned.
	ListPostsFiltered(ctx context.Context, sport, location string) ([]models.Post, error)
}
