package discussions

import (
	"testing"

	"discussions-app-api/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestRankByComments_OrderAndStability(t *testing.T) {
	items := []domain.DiscussionResult{
		{Title: "a", CommentCount: domain.Int(3)},
		{Title: "b"},
		{Title: "c", CommentCount: domain.Int(10)},
		{Title: "d", CommentCount: domain.Int(3)},
		{Title: "e", CommentCount: domain.Int(0)},
	}

	ranked := RankByComments(items, 10)

	titles := make([]string, len(ranked))
	for i, r := range ranked {
		titles[i] = r.Title
	}
	assert.Equal(t, []string{"c", "a", "d", "b", "e"}, titles)

	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].Comments(), ranked[i].Comments())
	}

	// input untouched
	assert.Equal(t, "a", items[0].Title)
}

func TestRankByComments_Limit(t *testing.T) {
	items := make([]domain.DiscussionResult, 8)
	for i := range items {
		items[i] = domain.DiscussionResult{CommentCount: domain.Int(i)}
	}

	ranked := RankByComments(items, DefaultMaxResults)

	assert.Len(t, ranked, 5)
	assert.Equal(t, 7, ranked[0].Comments())
	assert.Equal(t, 3, ranked[4].Comments())
}

func TestRankByComments_Empty(t *testing.T) {
	assert.Empty(t, RankByComments(nil, 5))
}
