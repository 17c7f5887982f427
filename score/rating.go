package score

import (
	"github.com/streetlist/places-api/schema"
)

// AverageRating computes the arithmetic mean of the review ratings. An
// empty review set yields 0, the sentinel a location starts with before the
// first review arrives.
func AverageRating(reviews []schema.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}

	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}

	return float64(sum) / float64(len(reviews))
}
