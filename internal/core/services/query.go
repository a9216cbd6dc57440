package services

import (
	"sort"
	"strings"

	"metahub/internal/core/domain"
	"metahub/pkg/utils"
)

// sortBuildsByVotes returns a new slice ordered by vote count descending.
// Builds with equal votes keep their stored order, so recent submissions
// stay ahead of older ones at the same score.
func sortBuildsByVotes(builds []*domain.Build) []*domain.Build {
	sorted := make([]*domain.Build, len(builds))
	copy(sorted, builds)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Votes > sorted[j].Votes
	})
	return sorted
}

func topBuilds(builds []*domain.Build, limit int) []*domain.Build {
	sorted := sortBuildsByVotes(builds)
	if limit > 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}

// searchBuilds matches the query against build name, author and hero id,
// case-insensitively. An empty query matches everything.
func searchBuilds(builds []*domain.Build, query string) []*domain.Build {
	query = strings.TrimSpace(query)
	if query == "" {
		return builds
	}

	matched := make([]*domain.Build, 0, len(builds))
	for _, build := range builds {
		if utils.ContainsFold(build.Name, query) ||
			utils.ContainsFold(build.Author, query) ||
			utils.ContainsFold(string(build.HeroID), query) {
			matched = append(matched, build)
		}
	}
	return matched
}

func sortTierListsByVotes(lists []*domain.TierList) []*domain.TierList {
	sorted := make([]*domain.TierList, len(lists))
	copy(sorted, lists)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Votes > sorted[j].Votes
	})
	return sorted
}

func publicTierLists(lists []*domain.TierList) []*domain.TierList {
	public := make([]*domain.TierList, 0, len(lists))
	for _, list := range lists {
		if list.IsPublic {
			public = append(public, list)
		}
	}
	return sortTierListsByVotes(public)
}

func unreadCount(notifications []*domain.Notification) int {
	count := 0
	for _, n := range notifications {
		if !n.Read {
			count++
		}
	}
	return count
}
