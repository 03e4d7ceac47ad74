package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"internlink/app/model"
)

// ErrNotFound is returned by every repository when a referenced document is
// absent. Services translate it into their own error taxonomy.
var ErrNotFound = errors.New("document not found")

// UserRepository reads account records for profile joins. Accounts are
// created by the identity service (or the seed tool), never through the API.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.User, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
}

type userRepo struct {
	collection *mongo.Collection
}

func NewUserRepository(coll *mongo.Collection) UserRepository {
	return &userRepo{collection: coll}
}

func (r *userRepo) Create(ctx context.Context, user *model.User) (primitive.ObjectID, error) {
	result, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("mongo insert user failed: %w", err)
	}
	return result.InsertedID.(primitive.ObjectID), nil
}

func (r *userRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	var user model.User
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("mongo find user failed: %w", err)
	}
	return &user, nil
}

func (r *userRepo) FindByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]model.User, error) {
	users := make(map[primitive.ObjectID]model.User, len(ids))
	if len(ids) == 0 {
		return users, nil
	}

	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("mongo find users failed: %w", err)
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var user model.User
		if err := cursor.Decode(&user); err != nil {
			return nil, fmt.Errorf("mongo decode user failed: %w", err)
		}
		users[user.ID] = user
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("mongo cursor failed: %w", err)
	}
	return users, nil
}

func (r *userRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("mongo find user failed: %w", err)
	}
	return &user, nil
}
