package repository

import (
	"context"
	"errors"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"scholarstream/server/internal/domain"
)

// ScholarshipListQuery carries the catalog filter already validated by
// the service layer. Zero values mean "not filtered".
type ScholarshipListQuery struct {
	Search   string
	Category string
	SortBy   string // applicationFees | postedDate
	Order    string // asc | desc
	Skip     int64
	Limit    int64
}

type ScholarshipRepository interface {
	List(q ScholarshipListQuery) ([]domain.Scholarship, int64, error)
	FindByOwner(ownerEmail string) ([]domain.Scholarship, error)
	FindRecommended(category string, exclude primitive.ObjectID, limit int64) ([]domain.Scholarship, error)
	FindFeatured(limit int64) ([]domain.Scholarship, error)
	FindByID(id primitive.ObjectID) (*domain.Scholarship, error)
	Insert(s *domain.Scholarship) (primitive.ObjectID, error)
	Update(id primitive.ObjectID, patch map[string]interface{}) (matched int64, modified int64, err error)
	Delete(id primitive.ObjectID) (int64, error)
	Count() (int64, error)
}

type scholarshipRepository struct {
	coll *mongo.Collection
}

func NewScholarshipRepository(db *mongo.Database) ScholarshipRepository {
	return &scholarshipRepository{coll: db.Collection("scholarships")}
}

var scholarshipSortWhitelist = map[string]string{
	"applicationFees": "applicationFees",
	"fees":            "applicationFees",
	"postedDate":      "postedDate",
}

func (r *scholarshipRepository) buildFilter(q ScholarshipListQuery) bson.M {
	filter := bson.M{}
	if q.Search != "" {
		regex := bson.M{"$regex": q.Search, "$options": "i"}
		filter["$or"] = bson.A{
			bson.M{"scholarshipName": regex},
			bson.M{"universityName": regex},
			bson.M{"universityCountry": regex},
		}
	}
	if q.Category != "" {
		filter["scholarshipCategory"] = q.Category
	}
	return filter
}

func (r *scholarshipRepository) List(q ScholarshipListQuery) ([]domain.Scholarship, int64, error) {
	filter := r.buildFilter(q)

	total, err := r.coll.CountDocuments(context.TODO(), filter)
	if err != nil {
		log.Printf("count scholarships error: %v", err)
		return nil, 0, domain.ErrStore
	}

	opts := options.Find().SetSkip(q.Skip).SetLimit(q.Limit)
	if field, ok := scholarshipSortWhitelist[q.SortBy]; ok {
		dir := 1
		if q.Order == "desc" {
			dir = -1
		}
		opts.SetSort(bson.D{{Key: field, Value: dir}})
	}

	cursor, err := r.coll.Find(context.TODO(), filter, opts)
	if err != nil {
		log.Printf("find scholarships error: %v", err)
		return nil, 0, domain.ErrStore
	}
	defer cursor.Close(context.TODO())

	results := []domain.Scholarship{}
	if err := cursor.All(context.TODO(), &results); err != nil {
		log.Printf("decode scholarships error: %v", err)
		return nil, 0, domain.ErrStore
	}

	return results, total, nil
}

func (r *scholarshipRepository) FindByOwner(ownerEmail string) ([]domain.Scholarship, error) {
	return r.findAll(bson.M{"postedUserEmail": ownerEmail}, nil)
}

func (r *scholarshipRepository) FindRecommended(category string, exclude primitive.ObjectID, limit int64) ([]domain.Scholarship, error) {
	filter := bson.M{
		"scholarshipCategory": category,
		"_id":                 bson.M{"$ne": exclude},
	}
	return r.findAll(filter, options.Find().SetLimit(limit))
}

func (r *scholarshipRepository) FindFeatured(limit int64) ([]domain.Scholarship, error) {
	return r.findAll(bson.M{}, options.Find().SetLimit(limit))
}

func (r *scholarshipRepository) findAll(filter bson.M, opts *options.FindOptions) ([]domain.Scholarship, error) {
	var cursor *mongo.Cursor
	var err error
	if opts != nil {
		cursor, err = r.coll.Find(context.TODO(), filter, opts)
	} else {
		cursor, err = r.coll.Find(context.TODO(), filter)
	}
	if err != nil {
		log.Printf("find scholarships error: %v", err)
		return nil, domain.ErrStore
	}
	defer cursor.Close(context.TODO())

	results := []domain.Scholarship{}
	if err := cursor.All(context.TODO(), &results); err != nil {
		log.Printf("decode scholarships error: %v", err)
		return nil, domain.ErrStore
	}
	return results, nil
}

func (r *scholarshipRepository) FindByID(id primitive.ObjectID) (*domain.Scholarship, error) {
	var s domain.Scholarship
	err := r.coll.FindOne(context.TODO(), bson.M{"_id": id}).Decode(&s)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		log.Printf("find scholarship error: %v", err)
		return nil, domain.ErrStore
	}
	return &s, nil
}

func (r *scholarshipRepository) Insert(s *domain.Scholarship) (primitive.ObjectID, error) {
	res, err := r.coll.InsertOne(context.TODO(), s)
	if err != nil {
		log.Printf("insert scholarship error: %v", err)
		return primitive.NilObjectID, domain.ErrStore
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (r *scholarshipRepository) Update(id primitive.ObjectID, patch map[string]interface{}) (int64, int64, error) {
	res, err := r.coll.UpdateOne(context.TODO(), bson.M{"_id": id}, bson.M{"$set": bson.M(patch)})
	if err != nil {
		log.Printf("update scholarship error: %v", err)
		return 0, 0, domain.ErrStore
	}
	return res.MatchedCount, res.ModifiedCount, nil
}

func (r *scholarshipRepository) Delete(id primitive.ObjectID) (int64, error) {
	res, err := r.coll.DeleteOne(context.TODO(), bson.M{"_id": id})
	if err != nil {
		log.Printf("delete scholarship error: %v", err)
		return 0, domain.ErrStore
	}
	return res.DeletedCount, nil
}

func (r *scholarshipRepository) Count() (int64, error) {
	total, err := r.coll.CountDocuments(context.TODO(), bson.M{})
	if err != nil {
		log.Printf("count scholarships error: %v", err)
		return 0, domain.ErrStore
	}
	return total, nil
}
