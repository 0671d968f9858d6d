// Package seed generates plausible fake reviews for local development.
package seed

import (
	"math/rand"
	"strings"
	"time"
	"unicode/utf8"

	"review-listing/internal/data/entity"

	"github.com/jaswdr/faker"
)

// ReviewFactory builds reviews posted within the last Days days of Now.
type ReviewFactory struct {
	fake      faker.Faker
	MaxRating int
	Days      int
	Now       func() time.Time
}

func NewReviewFactory(seed int64, maxRating, days int) *ReviewFactory {
	if maxRating < 1 {
		maxRating = 5
	}
	if days < 1 {
		days = 1
	}

	return &ReviewFactory{
		fake:      faker.NewWithSeed(rand.NewSource(seed)),
		MaxRating: maxRating,
		Days:      days,
		Now:       func() time.Time { return time.Now().UTC() },
	}
}

func (f *ReviewFactory) CreateReview() *entity.Review {
	now := f.Now()
	from := now.Add(-time.Duration(f.Days) * 24 * time.Hour)

	return &entity.Review{
		PostedOn: f.fake.Time().TimeBetween(from, now).UTC().Truncate(time.Second),
		Rating:   f.rating(),
		Username: truncate(f.fake.Internet().User(), 64),
		Title:    truncate(strings.TrimSuffix(f.fake.Lorem().Sentence(f.fake.IntBetween(3, 8)), "."), 255),
		Comments: f.fake.Lorem().Paragraph(f.fake.IntBetween(1, 4)),
	}
}

func (f *ReviewFactory) CreateReviews(n int) []*entity.Review {
	reviews := make([]*entity.Review, 0, n)
	for i := 0; i < n; i++ {
		reviews = append(reviews, f.CreateReview())
	}
	return reviews
}

// rating leans towards the upper half, like real review sites
func (f *ReviewFactory) rating() int {
	if f.MaxRating == 1 {
		return 1
	}
	r := f.fake.IntBetween(1, f.MaxRating)
	if r < f.MaxRating && f.fake.IntBetween(0, 2) == 0 {
		r++
	}
	return r
}

// truncate keeps at most n runes
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
