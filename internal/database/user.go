package database

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"main/internal/model"
)

// userDoc is the stored shape; field names match the documents written by
// earlier deployments of this API.
type userDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Email     string             `bson:"email"`
	Name      string             `bson:"name"`
	Avatar    *string            `bson:"avatar"`
	Provider  string             `bson:"provider"`
	GoogleID  string             `bson:"google_id,omitempty"`
	Password  string             `bson:"password,omitempty"`
	CreatedAt time.Time          `bson:"createdAt"`
}

func (d *userDoc) toModel() *model.User {
	return &model.User{
		ID:           d.ID.Hex(),
		Email:        d.Email,
		Name:         d.Name,
		Avatar:       d.Avatar,
		Provider:     d.Provider,
		GoogleID:     d.GoogleID,
		PasswordHash: d.Password,
		CreatedAt:    d.CreatedAt,
	}
}

type MongoUserStore struct {
	col *mongo.Collection
}

func NewUserStore(db *mongo.Database) *MongoUserStore {
	return &MongoUserStore{col: db.Collection("users")}
}

func (s *MongoUserStore) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var doc userDoc
	err := s.col.FindOne(ctx, bson.M{"email": email}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil // no user is not an error
		}
		return nil, err
	}
	return doc.toModel(), nil
}

func (s *MongoUserStore) FindByID(ctx context.Context, id string) (*model.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	var doc userDoc
	err = s.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return doc.toModel(), nil
}

func (s *MongoUserStore) Create(ctx context.Context, user *model.User) (*model.User, error) {
	doc := userDoc{
		Email:     user.Email,
		Name:      user.Name,
		Avatar:    user.Avatar,
		Provider:  user.Provider,
		GoogleID:  user.GoogleID,
		Password:  user.PasswordHash,
		CreatedAt: time.Now().UTC(),
	}

	res, err := s.col.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toModel(), nil
}
