package store

import (
	"context"
	"errors"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"sportsbuddy/models"
)

// Mongo is the production Store over the sportsBuddy database.
type Mongo struct {
	users *mongo.Collection
	posts *mongo.Collection
}

func NewMongo(db *mongo.Database) *Mongo {
	return &Mongo{
		users: db.Collection("users"),
		posts: db.Collection("sportsInfo"),
	}
}

func (m *Mongo) InsertAccount(ctx context.Context, acc models.Account) error {
	_, err := m.users.InsertOne(ctx, acc)
	return err
}

func (m *Mongo) FindAccountByEmailFold(ctx context.Context, email string) (*models.Account, error) {
	// Anchored case-insensitive regex; the email is quoted so it is
	// compared as a literal, not a pattern.
	filter := bson.M{"email": primitive.Regex{
		Pattern: "^" + regexp.QuoteMeta(email) + "$",
		Options: "i",
	}}
	return m.findAccount(ctx, filter)
}

func (m *Mongo) FindAccountByEmail(ctx context.Context, email string) (*models.Account, error) {
	return m.findAccount(ctx, bson.M{"email": email})
}

func (m *Mongo) findAccount(ctx context.Context, filter bson.M) (*models.Account, error) {
	var acc models.Account
	err := m.users.FindOne(ctx, filter).Decode(&acc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &acc, nil
}

func (m *Mongo) FindAccountsByEmail(ctx context.Context, email string) ([]models.Account, error) {
	return m.listAccounts(ctx, bson.M{"email": email})
}

func (m *Mongo) ListAccounts(ctx context.Context) ([]models.Account, error) {
	return m.listAccounts(ctx, bson.M{})
}

func (m *Mongo) listAccounts(ctx context.Context, filter bson.M) ([]models.Account, error) {
	cursor, err := m.users.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	accounts := make([]models.Account, 0)
	if err := cursor.All(ctx, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

func (m *Mongo) InsertPost(ctx context.Context, post models.Post) error {
	_, err := m.posts.InsertOne(ctx, post)
	return err
}

func (m *Mongo) FindPostByEmail(ctx context.Context, email string) (*models.Post, error) {
	var post models.Post
	err := m.posts.FindOne(ctx, bson.M{"email": email}).Decode(&post)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (m *Mongo) UpdatePostByEmail(ctx context.Context, email string, post models.Post) (int64, error) {
	update := bson.M{"$set": bson.M{
		"email":        post.Email,
		"userName":     post.UserName,
		"mobileNumber": post.MobileNumber,
		"sport":        post.Sport,
		"location":     post.Location,
		"date":         post.Date,
	}}
	result, err := m.posts.UpdateOne(ctx, bson.M{"email": email}, update)
	if err != nil {
		return 0, err
	}
	return result.ModifiedCount, nil
}

func (m *Mongo) ListPosts(ctx context.Context) ([]models.Post, error) {
	return m.listPosts(ctx, bson.M{})
}

func (m *Mongo) ListPostsByLocation(ctx context.Context, location string) ([]models.Post, error) {
	filter := bson.M{"location": primitive.Regex{
		Pattern: regexp.QuoteMeta(location),
		Options: "i",
	}}
	return m.listPosts(ctx, filter)
}

func (m *Mongo) ListPostsFiltered(ctx context.Context, sport, location string) ([]models.Post, error) {
	filter := bson.M{}
	if sport != "" {
		filter["sport"] = sport
	}
	if location != "" {
		filter["location"] = location
	}
	return m.listPosts(ctx, filter)
}

func (m *Mongo) listPosts(ctx context.Context, filter bson.M) ([]models.Post, error) {
	cursor, err := m.posts.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	posts := make([]models.Post, 0)
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}
