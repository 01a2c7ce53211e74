package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/repomarket/repomarket/internal/core/domain"
)

const userCollection = "users"

// UserRepository persists user accounts in MongoDB, for dev environments
// that want logins to survive a backend restart.
type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection(userCollection)}
}

type mongoUser struct {
	ID           string `bson:"_id"`
	Email        string `bson:"email"`
	Name         string `bson:"name"`
	PasswordHash string `bson:"password_hash"`
	Role         string `bson:"role"`
	Organization string `bson:"organization,omitempty"`
	PhoneNumber  string `bson:"phone_number,omitempty"`
	Active       bool   `bson:"active"`
	CreatedAt    int64  `bson:"created_at"`
	UpdatedAt    int64  `bson:"updated_at"`
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if _, err := r.coll.InsertOne(ctx, toMongo(user)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return r.FindByID(ctx, user.ID)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *UserRepository) Update(ctx context.Context, user *domain.User) (*domain.User, error) {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": user.ID}, toMongo(user))
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrUserNotFound
	}
	return r.FindByID(ctx, user.ID)
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	var mu mongoUser
	if err := r.coll.FindOne(ctx, filter).Decode(&mu); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return fromMongo(mu), nil
}

func toMongo(u *domain.User) mongoUser {
	return mongoUser{
		ID:           u.ID,
		Email:        u.Email,
		Name:         u.Name,
		PasswordHash: u.PasswordHash,
		Role:         u.Role.String(),
		Organization: u.Organization,
		PhoneNumber:  u.PhoneNumber,
		Active:       u.Active,
		CreatedAt:    u.CreatedAt.Unix(),
		UpdatedAt:    u.UpdatedAt.Unix(),
	}
}

func fromMongo(mu mongoUser) *domain.User {
	role, _ := domain.ParseRole(mu.Role)
	return &domain.User{
		ID:           mu.ID,
		Email:        mu.Email,
		Name:         mu.Name,
		PasswordHash: mu.PasswordHash,
		Role:         role,
		Organization: mu.Organization,
		PhoneNumber:  mu.PhoneNumber,
		Active:       mu.Active,
		CreatedAt:    unixToTime(mu.CreatedAt),
		UpdatedAt:    unixToTime(mu.UpdatedAt),
	}
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}

func (r *UserRepository) List(ctx context.Context) ([]*domain.User, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer cur.Close(ctx)

	var users []*domain.User
	for cur.Next(ctx) {
		var mu mongoUser
		if err := cur.Decode(&mu); err != nil {
			return nil, fmt.Errorf("decode user: %w", err)
		}
		users = append(users, fromMongo(mu))
	}
	return users, cur.Err()
}
