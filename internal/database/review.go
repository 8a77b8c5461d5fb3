package database

import (
	"context"
	"errors"
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"main/internal/model"
)

type reviewDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Rating    int                `bson:"rating"`
	Comment   string             `bson:"comment"`
	Avatar    *string            `bson:"avatar"`
	UserID    *string            `bson:"user_id"`
	CreatedAt time.Time          `bson:"createdAt"`
}

func (d *reviewDoc) toModel() model.Review {
	return model.Review{
		ID:        d.ID.Hex(),
		Name:      d.Name,
		Rating:    d.Rating,
		Comment:   d.Comment,
		Avatar:    d.Avatar,
		UserID:    d.UserID,
		CreatedAt: d.CreatedAt,
	}
}

type MongoReviewStore struct {
	col *mongo.Collection
}

func NewReviewStore(db *mongo.Database) *MongoReviewStore {
	return &MongoReviewStore{col: db.Collection("reviews")}
}

func (s *MongoReviewStore) List(ctx context.Context, page, limit int) ([]model.Review, int64, error) {
	total, err := s.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, err
	}

	skip := int64(page-1) * int64(limit)
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(skip).
		SetLimit(int64(limit))

	cur, err := s.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	var docs []reviewDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, 0, err
	}

	reviews := make([]model.Review, 0, len(docs))
	for i := range docs {
		reviews = append(reviews, docs[i].toModel())
	}
	return reviews, total, nil
}

func (s *MongoReviewStore) Stats(ctx context.Context) (float64, int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "averageRating", Value: bson.D{{Key: "$avg", Value: "$rating"}}},
			{Key: "totalReviews", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}

	cur, err := s.col.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, 0, err
	}
	defer cur.Close(ctx)

	var results []struct {
		AverageRating float64 `bson:"averageRating"`
		TotalReviews  int64   `bson:"totalReviews"`
	}
	if err := cur.All(ctx, &results); err != nil {
		return 0, 0, err
	}
	if len(results) == 0 {
		return 0, 0, nil
	}
	return roundRating(results[0].AverageRating), results[0].TotalReviews, nil
}

func (s *MongoReviewStore) Create(ctx context.Context, review *model.Review) (*model.Review, error) {
	doc := reviewDoc{
		Name:      review.Name,
		Rating:    review.Rating,
		Comment:   review.Comment,
		Avatar:    review.Avatar,
		UserID:    review.UserID,
		CreatedAt: time.Now().UTC(),
	}

	res, err := s.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	created := doc.toModel()
	return &created, nil
}

func (s *MongoReviewStore) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	res, err := s.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoReviewStore) UpdateByUser(ctx context.Context, userID string, upd ReviewUpdate) (*model.Review, error) {
	set := bson.M{
		"name":    upd.Name,
		"rating":  upd.Rating,
		"comment": upd.Comment,
		"avatar":  upd.Avatar,
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc reviewDoc
	err := s.col.FindOneAndUpdate(ctx, bson.M{"user_id": userID}, bson.M{"$set": set}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	updated := doc.toModel()
	return &updated, nil
}

func roundRating(avg float64) float64 {
	return math.Round(avg*10) / 10
}
