package repository

import (
	"context"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"scholarstream/server/internal/domain"
)

type PaymentRepository interface {
	Insert(p *domain.Payment) (primitive.ObjectID, error)
	FindByEmail(email string) ([]domain.Payment, error)
	SumAmounts() (float64, error)
}

type paymentRepository struct {
	coll *mongo.Collection
}

func NewPaymentRepository(db *mongo.Database) PaymentRepository {
	return &paymentRepository{coll: db.Collection("payments")}
}

func (r *paymentRepository) Insert(p *domain.Payment) (primitive.ObjectID, error) {
	res, err := r.coll.InsertOne(context.TODO(), p)
	if err != nil {
		log.Printf("insert payment error: %v", err)
		return primitive.NilObjectID, domain.ErrStore
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (r *paymentRepository) FindByEmail(email string) ([]domain.Payment, error) {
	cursor, err := r.coll.Find(context.TODO(), bson.M{"email": email})
	if err != nil {
		log.Printf("find payments error: %v", err)
		return nil, domain.ErrStore
	}
	defer cursor.Close(context.TODO())

	results := []domain.Payment{}
	if err := cursor.All(context.TODO(), &results); err != nil {
		log.Printf("decode payments error: %v", err)
		return nil, domain.ErrStore
	}
	return results, nil
}

func (r *paymentRepository) SumAmounts() (float64, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: "$amount"}}},
		}}},
	}

	cursor, err := r.coll.Aggregate(context.TODO(), pipeline)
	if err != nil {
		log.Printf("sum payments error: %v", err)
		return 0, domain.ErrStore
	}
	defer cursor.Close(context.TODO())

	var out []struct {
		Total float64 `bson:"total"`
	}
	if err := cursor.All(context.TODO(), &out); err != nil {
		log.Printf("decode payment sum error: %v", err)
		return 0, domain.ErrStore
	}
	if len(out) == 0 {
		return 0, nil
	}
	return out[0].Total, nil
}
