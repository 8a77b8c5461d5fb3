package database

import (
	"context"

	"main/internal/model"
)

// UserStore is the persistence contract handlers are written against.
type UserStore interface {
	// FindByEmail returns (nil, nil) when no user has the given email.
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, id string) (*model.User, error)
	Create(ctx context.Context, user *model.User) (*model.User, error)
}

// ReviewUpdate carries the mutable review fields for an update-by-user.
type ReviewUpdate struct {
	Name    string
	Rating  int
	Comment string
	Avatar  *string
}

type ReviewStore interface {
	// List returns one page of reviews, newest first, plus the total count.
	List(ctx context.Context, page, limit int) ([]model.Review, int64, error)
	// Stats returns the mean rating rounded to one decimal and the total
	// review count; (0, 0) when there are no reviews.
	Stats(ctx context.Context) (float64, int64, error)
	Create(ctx context.Context, review *model.Review) (*model.Review, error)
	Delete(ctx context.Context, id string) error
	UpdateByUser(ctx context.Context, userID string, upd ReviewUpdate) (*model.Review, error)
}
