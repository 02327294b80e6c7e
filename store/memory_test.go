package store

import (
	"context"
	"errors"
	"testing"

	"sportsbuddy/models"
)

var (
	_ Store = (*Mongo)(nil)
	_ Store = (*Memory)(nil)
)

func TestAccountLookupPredicates(t *testing.T) {
	ctx := context.Background()
	mem := NewMemory()

	if err := mem.InsertAccount(ctx, models.Account{UserName: "N", Email: "Mixed@Case.com", Password: "secret"}); err != nil {
		t.Fatal(err)
	}

	// Fold lookup matches regardless of case.
	if _, err := mem.FindAccountByEmailFold(ctx, "mixed@case.COM"); err != nil {
		t.Errorf("fold lookup failed: %v", err)
	}

	// Exact lookup does not.
	if _, err := mem.FindAccountByEmail(ctx, "mixed@case.com"); !errors.Is(err, ErrNotFound) {
		t.Errorf("exact lookup with wrong case: err = %v, want ErrNotFound", err)
	}
	if _, err := mem.FindAccountByEmail(ctx, "Mixed@Case.com"); err != nil {
		t.Errorf("exact lookup failed: %v", err)
	}

	accs, err := mem.FindAccountsByEmail(ctx, "mixed@case.com")
	if err != nil {
		t.Fatal(err)
	}
	if len(accs) != 0 {
		t.Errorf("exact set lookup with wrong case: %d matches, want 0", len(accs))
	}
}

func TestListAccountsCopies(t *testing.T) {
	ctx := context.Background()
	mem := NewMemory()
	if err := mem.InsertAccount(ctx, models.Account{UserName: "N", Email: "a@b.co"}); err != nil {
		t.Fatal(err)
	}

	accs, err := mem.ListAccounts(ctx)
	if err != nil {
		t.Fatal(err)
	}
	accs[0].UserName = "mutated"

	again, _ := mem.ListAccounts(ctx)
	if again[0].UserName != "N" {
		t.Error("ListAccounts returned a view into internal state")
	}
}

func TestUpdatePostModifiedCount(t *testing.T) {
	ctx := context.Background()
	mem := NewMemory()

	post := models.Post{
		Email:    "p@q.com",
		UserName: "N",
		Sport:    "Cricket",
		Location: "Delhi",
	}
	if err := mem.InsertPost(ctx, post); err != nil {
		t.Fatal(err)
	}

	// Unknown key modifies nothing.
	n, err := mem.UpdatePostByEmail(ctx, "nobody@q.com", post)
	if err != nil || n != 0 {
		t.Errorf("unknown key: modified = %d, err = %v, want 0, nil", n, err)
	}

	// Identical values modify nothing, matching Mongo's ModifiedCount.
	n, err = mem.UpdatePostByEmail(ctx, "p@q.com", post)
	if err != nil || n != 0 {
		t.Errorf("identical update: modified = %d, err = %v, want 0, nil", n, err)
	}

	changed := post
	changed.Location = "Mumbai"
	n, err = mem.UpdatePostByEmail(ctx, "p@q.com", changed)
	if err != nil || n != 1 {
		t.Fatalf("changed update: modified = %d, err = %v, want 1, nil", n, err)
	}

	got, err := mem.FindPostByEmail(ctx, "p@q.com")
	if err != nil {
		t.Fatal(err)
	}
	if got.Location != "Mumbai" {
		t.Errorf("location = %q, want Mumbai", got.Location)
	}
}

func TestUpdatePostRewritesEmail(t *testing.T) {
	ctx := context.Background()
	mem := NewMemory()
	if err := mem.InsertPost(ctx, models.Post{Email: "old@q.com", Sport: "Cricket"}); err != nil {
		t.Fatal(err)
	}

	n, err := mem.UpdatePostByEmail(ctx, "old@q.com", models.Post{Email: "new@q.com", Sport: "Cricket"})
	if err != nil || n != 1 {
		t.Fatalf("modified = %d, err = %v", n, err)
	}

	if _, err := mem.FindPostByEmail(ctx, "old@q.com"); !errors.Is(err, ErrNotFound) {
		t.Errorf("old key: err = %v, want ErrNotFound", err)
	}
	if _, err := mem.FindPostByEmail(ctx, "new@q.com"); err != nil {
		t.Errorf("new key: %v", err)
	}
}

func TestListPostsByLocationContainment(t *testing.T) {
	ctx := context.Background()
	mem := NewMemory()
	seed := []models.Post{
		{Email: "a@b.co", Location: "New Delhi"},
		{Email: "c@d.co", Location: "Mumbai"},
		{Email: "e@f.co", Location: "delhi cantonment"},
	}
	for _, p := range seed {
		if err := mem.InsertPost(ctx, p); err != nil {
			t.Fatal(err)
		}
	}

	posts, err := mem.ListPostsByLocation(ctx, "DEL")
	if err != nil {
		t.Fatal(err)
	}
	if len(posts) != 2 {
		t.Errorf("substring DEL: %d matches, want 2", len(posts))
	}

	posts, err = mem.ListPostsFiltered(ctx, "", "New Delhi")
	if err != nil {
		t.Fatal(err)
	}
	if len(posts) != 1 {
		t.Errorf("exact New Delhi: %d matches, want 1", len(posts))
	}
}

func TestListPostsFilteredOptionalParams(t *testing.T) {
	ctx := context.Background()
	mem := NewMemory()
	seed := []models.Post{
		{Email: "a@b.co", Sport: "Cricket", Location: "Mumbai"},
		{Email: "c@d.co", Sport: "Cricket", Location: "Delhi"},
		{Email: "e@f.co", Sport: "Football", Location: "Mumbai"},
	}
	for _, p := range seed {
		if err := mem.InsertPost(ctx, p); err != nil {
			t.Fatal(err)
		}
	}

	all, err := mem.ListPostsFiltered(ctx, "", "")
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 3 {
		t.Errorf("no constraints: %d, want 3", len(all))
	}

	both, err := mem.ListPostsFiltered(ctx, "Cricket", "Mumbai")
	if err != nil {
		t.Fatal(err)
	}
	if len(both) != 1 || both[0].Email != "a@b.co" {
		t.Errorf("ANDed constraints: %v", both)
	}
}
