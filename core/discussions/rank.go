package discussions

import (
	"sort"

	"discussions-app-api/core/domain"
)

// DefaultMaxResults is how many results a region shows per source
const DefaultMaxResults = 5

// RankByComments returns at most limit results ordered by comment count,
// highest first. Missing counts rank as zero and ties keep input order.
// The input slice is not modified.
func RankByComments(items []domain.DiscussionResult, limit int) []domain.DiscussionResult {
	ranked := make([]domain.DiscussionResult, len(items))
	copy(ranked, items)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Comments() > ranked[j].Comments()
	})

	if limit >= 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
