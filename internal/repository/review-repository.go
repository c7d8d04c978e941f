package repository

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"scholarstream/server/internal/domain"
	"scholarstream/server/internal/dto"
)

type ReviewRepository interface {
	Find(filter dto.ReviewFilter) ([]domain.Review, error)
	Insert(rv *domain.Review) (primitive.ObjectID, error)
	Update(id primitive.ObjectID, comment string, rating float64, date time.Time) (matched int64, err error)
	Delete(id primitive.ObjectID) (int64, error)
}

type reviewRepository struct {
	coll *mongo.Collection
}

func NewReviewRepository(db *mongo.Database) ReviewRepository {
	return &reviewRepository{coll: db.Collection("reviews")}
}

func (r *reviewRepository) Find(filter dto.ReviewFilter) ([]domain.Review, error) {
	query := bson.M{}
	if filter.ScholarshipID != "" {
		query["scholarshipId"] = filter.ScholarshipID
	}
	if filter.AuthorEmail != "" {
		query["userEmail"] = filter.AuthorEmail
	}
	if filter.ModeratorEmail != "" {
		query["postByEmail"] = filter.ModeratorEmail
	}

	cursor, err := r.coll.Find(context.TODO(), query)
	if err != nil {
		log.Printf("find reviews error: %v", err)
		return nil, domain.ErrStore
	}
	defer cursor.Close(context.TODO())

	results := []domain.Review{}
	if err := cursor.All(context.TODO(), &results); err != nil {
		log.Printf("decode reviews error: %v", err)
		return nil, domain.ErrStore
	}
	return results, nil
}

func (r *reviewRepository) Insert(rv *domain.Review) (primitive.ObjectID, error) {
	res, err := r.coll.InsertOne(context.TODO(), rv)
	if err != nil {
		log.Printf("insert review error: %v", err)
		return primitive.NilObjectID, domain.ErrStore
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (r *reviewRepository) Update(id primitive.ObjectID, comment string, rating float64, date time.Time) (int64, error) {
	patch := bson.M{
		"reviewComment": comment,
		"ratingPoint":   rating,
		"reviewDate":    date,
	}
	res, err := r.coll.UpdateOne(context.TODO(), bson.M{"_id": id}, bson.M{"$set": patch})
	if err != nil {
		log.Printf("update review error: %v", err)
		return 0, domain.ErrStore
	}
	return res.MatchedCount, nil
}

func (r *reviewRepository) Delete(id primitive.ObjectID) (int64, error) {
	res, err := r.coll.DeleteOne(context.TODO(), bson.M{"_id": id})
	if err != nil {
		log.Printf("delete review error: %v", err)
		return 0, domain.ErrStore
	}
	return res.DeletedCount, nil
}
