package planner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/planner"
)

func TestMatchActivities(t *testing.T) {
	acts := []domain.Activity{
		{Label: "Sushi making class", Keywords: []string{"food", "cooking"}},
		{Label: "Mt. Takao day hike", Keywords: []string{"hiking", "nature"}},
	}

	boost, matches := planner.MatchActivities(acts, []string{"sushi", "hiking", "food", "cars"})

	assert.Equal(t, 9, boost)
	assert.Equal(t, map[string][]string{
		"sushi":  {"Sushi making class"},
		"food":   {"Sushi making class"},
		"hiking": {"Mt. Takao day hike"},
	}, matches)
}

func TestMatchActivities_Capped(t *testing.T) {
	var acts []domain.Activity
	for range 10 {
		acts = append(acts, domain.Activity{Label: "Wine tasting", Keywords: []string{"wine"}})
	}

	boost, matches := planner.MatchActivities(acts, []string{"wine"})

	assert.Equal(t, planner.ActivityBoostCap, boost)
	assert.Len(t, matches["wine"], 10)
}

func TestMatchActivities_NoActivities(t *testing.T) {
	boost, matches := planner.MatchActivities(nil, []string{"wine"})

	assert.Zero(t, boost)
	assert.NotNil(t, matches)
	assert.Empty(t, matches)
}
