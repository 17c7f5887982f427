package score

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/streetlist/places-api/schema"
)

func TestAverageRatingEmpty(t *testing.T) {
	assert.Equal(t, float64(0), AverageRating(nil))
	assert.Equal(t, float64(0), AverageRating([]schema.Review{}))
}

func TestAverageRatingSingle(t *testing.T) {
	reviews := []schema.Review{
		{Author: "a", Rating: 4},
	}
	assert.Equal(t, float64(4), AverageRating(reviews))
}

func TestAverageRatingMean(t *testing.T) {
	reviews := []schema.Review{
		{Author: "a", Rating: 4},
		{Author: "b", Rating: 2},
	}
	assert.Equal(t, float64(3), AverageRating(reviews))
}

func TestAverageRatingUnrounded(t *testing.T) {
	reviews := []schema.Review{
		{Rating: 5},
		{Rating: 4},
		{Rating: 4},
	}
	assert.Equal(t, float64(13)/float64(3), AverageRating(reviews))
}
