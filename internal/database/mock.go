package database

import (
	"context"
	"time"

	"main/internal/model"
)

// MockReviews is served when the database is unreachable so the reviews page
// stays usable during demos and outages. Authored newest-first.
var MockReviews = []model.Review{
	{
		ID:        "1",
		Name:      "Ahmed Khan",
		Rating:    5,
		Comment:   "Excellent service and quality glasses! The staff was very helpful in choosing the right frame for my face. Highly recommended!",
		CreatedAt: time.Date(2026, 1, 10, 10, 0, 0, 0, time.UTC),
	},
	{
		ID:        "2",
		Name:      "Sara Ali",
		Rating:    5,
		Comment:   "Best optical shop in the area. They have a wide variety of frames and lenses. Very professional eye testing.",
		CreatedAt: time.Date(2026, 1, 8, 14, 30, 0, 0, time.UTC),
	},
	{
		ID:        "3",
		Name:      "Muhammad Usman",
		Rating:    4,
		Comment:   "Good experience overall. The glasses are comfortable and stylish. Delivery was a bit delayed but quality is great.",
		CreatedAt: time.Date(2026, 1, 5, 9, 15, 0, 0, time.UTC),
	},
	{
		ID:        "4",
		Name:      "Fatima Zahra",
		Rating:    5,
		Comment:   "Amazing collection of designer frames! Got my progressive lenses here and they are perfect. Great customer service.",
		CreatedAt: time.Date(2026, 1, 3, 16, 45, 0, 0, time.UTC),
	},
	{
		ID:        "5",
		Name:      "Hassan Raza",
		Rating:    4,
		Comment:   "Very satisfied with my purchase. The anti-glare coating is excellent for computer work. Will visit again!",
		CreatedAt: time.Date(2025, 12, 28, 11, 20, 0, 0, time.UTC),
	},
	{
		ID:        "6",
		Name:      "Ayesha Malik",
		Rating:    5,
		Comment:   "Owais Optics has the best prices in town with premium quality. The eye check-up was thorough and professional.",
		CreatedAt: time.Date(2025, 12, 25, 13, 0, 0, 0, time.UTC),
	},
}

// MockReviewStore serves the static list for reads; writes have no fallback.
type MockReviewStore struct{}

func (MockReviewStore) List(_ context.Context, page, limit int) ([]model.Review, int64, error) {
	start := (page - 1) * limit
	end := start + limit
	if start > len(MockReviews) {
		start = len(MockReviews)
	}
	if end > len(MockReviews) {
		end = len(MockReviews)
	}
	out := make([]model.Review, end-start)
	copy(out, MockReviews[start:end])
	return out, int64(len(MockReviews)), nil
}

func (MockReviewStore) Stats(_ context.Context) (float64, int64, error) {
	if len(MockReviews) == 0 {
		return 0, 0, nil
	}
	var sum int
	for _, r := range MockReviews {
		sum += r.Rating
	}
	avg := float64(sum) / float64(len(MockReviews))
	return roundRating(avg), int64(len(MockReviews)), nil
}

func (MockReviewStore) Create(context.Context, *model.Review) (*model.Review, error) {
	return nil, ErrUnavailable
}

func (MockReviewStore) Delete(context.Context, string) error {
	return ErrUnavailable
}

func (MockReviewStore) UpdateByUser(context.Context, string, ReviewUpdate) (*model.Review, error) {
	return nil, ErrUnavailable
}

// MockUserStore refuses everything: accounts cannot be read or written
// without the database.
type MockUserStore struct{}

func (MockUserStore) FindByEmail(context.Context, string) (*model.User, error) {
	return nil, ErrUnavailable
}

func (MockUserStore) FindByID(context.Context, string) (*model.User, error) {
	return nil, ErrUnavailable
}

func (MockUserStore) Create(context.Context, *model.User) (*model.User, error) {
	return nil, ErrUnavailable
}
