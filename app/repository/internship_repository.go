package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"internlink/app/model"
)

type InternshipRepository interface {
	Create(ctx context.Context, internship *model.Internship) (primitive.ObjectID, error)
	FindAll(ctx context.Context) ([]model.Internship, error)
	FindByPoster(ctx context.Context, posterID primitive.ObjectID) ([]model.Internship, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Internship, error)
	Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*model.Internship, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	CountByPoster(ctx context.Context, posterID primitive.ObjectID) (int64, error)
	CountActiveByPoster(ctx context.Context, posterID primitive.ObjectID) (int64, error)
}

type internshipRepo struct {
	collection *mongo.Collection
}

func NewInternshipRepository(coll *mongo.Collection) InternshipRepository {
	return &internshipRepo{collection: coll}
}

// newestFirst matches the listing order everywhere: most recent posting on top.
var newestFirst = options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

func (r *internshipRepo) Create(ctx context.Context, internship *model.Internship) (primitive.ObjectID, error) {
	result, err := r.collection.InsertOne(ctx, internship)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("mongo insert internship failed: %w", err)
	}
	return result.InsertedID.(primitive.ObjectID), nil
}

func (r *internshipRepo) FindAll(ctx context.Context) ([]model.Internship, error) {
	return r.find(ctx, bson.M{})
}

func (r *internshipRepo) FindByPoster(ctx context.Context, posterID primitive.ObjectID) ([]model.Internship, error) {
	return r.find(ctx, bson.M{"postedBy": posterID})
}

func (r *internshipRepo) find(ctx context.Context, filter bson.M) ([]model.Internship, error) {
	cursor, err := r.collection.Find(ctx, filter, newestFirst)
	if err != nil {
		return nil, fmt.Errorf("mongo find internships failed: %w", err)
	}
	defer cursor.Close(ctx)

	internships := []model.Internship{}
	if err := cursor.All(ctx, &internships); err != nil {
		return nil, fmt.Errorf("mongo decode internships failed: %w", err)
	}
	return internships, nil
}

func (r *internshipRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Internship, error) {
	var internship model.Internship
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&internship)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("mongo find internship failed: %w", err)
	}
	return &internship, nil
}

func (r *internshipRepo) Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*model.Internship, error) {
	var updated model.Internship
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("mongo update internship failed: %w", err)
	}
	return &updated, nil
}

func (r *internshipRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("mongo delete internship failed: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *internshipRepo) CountByPoster(ctx context.Context, posterID primitive.ObjectID) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"postedBy": posterID})
	if err != nil {
		return 0, fmt.Errorf("mongo count internships failed: %w", err)
	}
	return count, nil
}

func (r *internshipRepo) CountActiveByPoster(ctx context.Context, posterID primitive.ObjectID) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{
		"postedBy": posterID,
		"status":   model.InternshipActive,
	})
	if err != nil {
		return 0, fmt.Errorf("mongo count active internships failed: %w", err)
	}
	return count, nil
}
