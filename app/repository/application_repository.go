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

type ApplicationRepository interface {
	Create(ctx context.Context, application *model.Application) (primitive.ObjectID, error)
	FindAll(ctx context.Context) ([]model.Application, error)
	FindByApplicant(ctx context.Context, applicantID primitive.ObjectID) ([]model.Application, error)
	FindByInternship(ctx context.Context, internshipID primitive.ObjectID) ([]model.Application, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Application, error)
	FindByInternshipAndApplicant(ctx context.Context, internshipID, applicantID primitive.ObjectID) (*model.Application, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status model.ApplicationStatus) (*model.Application, error)
	DeleteByInternship(ctx context.Context, internshipID primitive.ObjectID) (int64, error)
}

type applicationRepo struct {
	collection *mongo.Collection
}

func NewApplicationRepository(coll *mongo.Collection) ApplicationRepository {
	return &applicationRepo{collection: coll}
}

var latestApplied = options.Find().SetSort(bson.D{{Key: "appliedAt", Value: -1}})

func (r *applicationRepo) Create(ctx context.Context, application *model.Application) (primitive.ObjectID, error) {
	result, err := r.collection.InsertOne(ctx, application)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("mongo insert application failed: %w", err)
	}
	return result.InsertedID.(primitive.ObjectID), nil
}

func (r *applicationRepo) FindAll(ctx context.Context) ([]model.Application, error) {
	return r.find(ctx, bson.M{})
}

func (r *applicationRepo) FindByApplicant(ctx context.Context, applicantID primitive.ObjectID) ([]model.Application, error) {
	return r.find(ctx, bson.M{"applicant": applicantID})
}

func (r *applicationRepo) FindByInternship(ctx context.Context, internshipID primitive.ObjectID) ([]model.Application, error) {
	return r.find(ctx, bson.M{"internship": internshipID})
}

func (r *applicationRepo) find(ctx context.Context, filter bson.M) ([]model.Application, error) {
	cursor, err := r.collection.Find(ctx, filter, latestApplied)
	if err != nil {
		return nil, fmt.Errorf("mongo find applications failed: %w", err)
	}
	defer cursor.Close(ctx)

	applications := []model.Application{}
	if err := cursor.All(ctx, &applications); err != nil {
		return nil, fmt.Errorf("mongo decode applications failed: %w", err)
	}
	return applications, nil
}

func (r *applicationRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Application, error) {
	var application model.Application
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&application)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("mongo find application failed: %w", err)
	}
	return &application, nil
}

func (r *applicationRepo) FindByInternshipAndApplicant(ctx context.Context, internshipID, applicantID primitive.ObjectID) (*model.Application, error) {
	var application model.Application
	err := r.collection.FindOne(ctx, bson.M{
		"internship": internshipID,
		"applicant":  applicantID,
	}).Decode(&application)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("mongo find application failed: %w", err)
	}
	return &application, nil
}

func (r *applicationRepo) UpdateStatus(ctx context.Context, id primitive.ObjectID, status model.ApplicationStatus) (*model.Application, error) {
	var updated model.Application
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("mongo update application status failed: %w", err)
	}
	return &updated, nil
}

func (r *applicationRepo) DeleteByInternship(ctx context.Context, internshipID primitive.ObjectID) (int64, error) {
	result, err := r.collection.DeleteMany(ctx, bson.M{"internship": internshipID})
	if err != nil {
		return 0, fmt.Errorf("mongo delete applications failed: %w", err)
	}
	return result.DeletedCount, nil
}
