package repository

import (
	"context"
	"errors"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"scholarstream/server/internal/domain"
)

type ApplicationRepository interface {
	Insert(a *domain.Application) (primitive.ObjectID, error)
	FindByApplicant(email string) ([]domain.Application, error)
	FindByIssuer(issuerEmail string) ([]domain.Application, error)
	FindByID(id primitive.ObjectID) (*domain.Application, error)
	FindAll() ([]domain.Application, error)
	UpdateFields(id primitive.ObjectID, patch map[string]interface{}) (matched int64, err error)
	Delete(id primitive.ObjectID) (int64, error)
	Count() (int64, error)
}

type applicationRepository struct {
	coll *mongo.Collection
}

func NewApplicationRepository(db *mongo.Database) ApplicationRepository {
	return &applicationRepository{coll: db.Collection("applications")}
}

func (r *applicationRepository) Insert(a *domain.Application) (primitive.ObjectID, error) {
	res, err := r.coll.InsertOne(context.TODO(), a)
	if err != nil {
		log.Printf("insert application error: %v", err)
		return primitive.NilObjectID, domain.ErrStore
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (r *applicationRepository) FindByApplicant(email string) ([]domain.Application, error) {
	return r.find(bson.M{"applicant": email})
}

// FindByIssuer matches against the embedded scholarship snapshot, so
// the queue keeps following the issuer recorded at apply time.
func (r *applicationRepository) FindByIssuer(issuerEmail string) ([]domain.Application, error) {
	return r.find(bson.M{"scholar.postedUserEmail": issuerEmail})
}

func (r *applicationRepository) FindAll() ([]domain.Application, error) {
	return r.find(bson.M{})
}

func (r *applicationRepository) find(filter bson.M) ([]domain.Application, error) {
	cursor, err := r.coll.Find(context.TODO(), filter)
	if err != nil {
		log.Printf("find applications error: %v", err)
		return nil, domain.ErrStore
	}
	defer cursor.Close(context.TODO())

	results := []domain.Application{}
	if err := cursor.All(context.TODO(), &results); err != nil {
		log.Printf("decode applications error: %v", err)
		return nil, domain.ErrStore
	}
	return results, nil
}

func (r *applicationRepository) FindByID(id primitive.ObjectID) (*domain.Application, error) {
	var a domain.Application
	err := r.coll.FindOne(context.TODO(), bson.M{"_id": id}).Decode(&a)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		log.Printf("find application error: %v", err)
		return nil, domain.ErrStore
	}
	return &a, nil
}

func (r *applicationRepository) UpdateFields(id primitive.ObjectID, patch map[string]interface{}) (int64, error) {
	res, err := r.coll.UpdateOne(context.TODO(), bson.M{"_id": id}, bson.M{"$set": bson.M(patch)})
	if err != nil {
		log.Printf("update application error: %v", err)
		return 0, domain.ErrStore
	}
	return res.MatchedCount, nil
}

func (r *applicationRepository) Delete(id primitive.ObjectID) (int64, error) {
	res, err := r.coll.DeleteOne(context.TODO(), bson.M{"_id": id})
	if err != nil {
		log.Printf("delete application error: %v", err)
		return 0, domain.ErrStore
	}
	return res.DeletedCount, nil
}

func (r *applicationRepository) Count() (int64, error) {
	total, err := r.coll.CountDocuments(context.TODO(), bson.M{})
	if err != nil {
		log.Printf("count applications error: %v", err)
		return 0, domain.ErrStore
	}
	return total, nil
}
