// Package directory provides the in-memory player directory. The dataset is
// the small demonstration catalogue the product ships until the external
// football API integration lands.
package directory

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"scout/internal/domain/entity"
	domainerrors "scout/internal/domain/errors"
	"scout/internal/domain/service"
)

const maxSuggestions = 5

// memoryDirectory serves directory queries from a fixed dataset. The data
// is read-only after construction, so no locking is needed.
type memoryDirectory struct {
	players []entity.Player
	teams   map[int]entity.Team
	stats   map[int][]entity.PlayerStatistics
}

// NewMemoryDirectory builds the directory with the demonstration dataset.
func NewMemoryDirectory() service.PlayerDirectory {
	d := &memoryDirectory{
		teams: make(map[int]entity.Team),
		stats: make(map[int][]entity.PlayerStatistics),
	}
	d.seed()

	return d
}

// SearchPlayers returns players matching the filters. Name and nationality
// match case-insensitively on substrings; a team filter matches players
// whose current statistics carry that team.
func (d *memoryDirectory) SearchPlayers(_ context.Context, filters entity.SearchFilters) ([]entity.Player, error) {
	results := make([]entity.Player, 0, len(d.players))
	for _, player := range d.players {
		if filters.Name != "" && !containsFold(player.Name, filters.Name) {
			continue
		}
		if filters.Nationality != "" && !containsFold(player.Nationality, filters.Nationality) {
			continue
		}
		if filters.TeamID != 0 && !d.playsFor(player.ID, filters.TeamID) {
			continue
		}
		results = append(results, player)
	}

	return results, nil
}

// GetPlayer returns one player by id.
func (d *memoryDirectory) GetPlayer(_ context.Context, id int) (*entity.Player, error) {
	for _, player := range d.players {
		if player.ID == id {
			p := player

			return &p, nil
		}
	}

	return nil, domainerrors.ErrPlayerNotFound
}

// GetPlayerStatistics returns the player's season records. An empty slice
// means the directory has no statistics for a known player.
func (d *memoryDirectory) GetPlayerStatistics(ctx context.Context, id int) ([]entity.PlayerStatistics, error) {
	if _, err := d.GetPlayer(ctx, id); err != nil {
		return nil, err
	}

	records := d.stats[id]
	out := make([]entity.PlayerStatistics, len(records))
	copy(out, records)

	return out, nil
}

// GetTopPlayers returns the directory's featured players.
func (d *memoryDirectory) GetTopPlayers(_ context.Context) ([]entity.Player, error) {
	limit := 10
	if len(d.players) < limit {
		limit = len(d.players)
	}
	out := make([]entity.Player, limit)
	copy(out, d.players[:limit])

	return out, nil
}

// GetRankings returns the ranking board for the given metric, ordered by
// value descending.
func (d *memoryDirectory) GetRankings(_ context.Context, rankingType entity.RankingType) (*entity.Ranking, error) {
	switch rankingType {
	case entity.RankingGoals, entity.RankingAssists, entity.RankingRating:
	default:
		return nil, domainerrors.ErrRankingNotFound
	}

	entries := make([]entity.RankingEntry, 0, len(d.players))
	for _, player := range d.players {
		entries = append(entries, entity.RankingEntry{
			Player: player,
			Value:  d.rankingValue(player.ID, rankingType),
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Value > entries[j].Value
	})
	for i := range entries {
		entries[i].Position = i + 1
	}

	return &entity.Ranking{Type: rankingType, Entries: entries}, nil
}

// GetPlayerSuggestions returns autocomplete candidates. Queries shorter
// than two characters yield nothing, matching the search box behaviour.
func (d *memoryDirectory) GetPlayerSuggestions(_ context.Context, query string) ([]entity.Suggestion, error) {
	if len(query) < 2 {
		return []entity.Suggestion{}, nil
	}

	suggestions := make([]entity.Suggestion, 0, maxSuggestions)
	for _, player := range d.players {
		if !containsFold(player.Name, query) {
			continue
		}
		suggestions = append(suggestions, entity.Suggestion{ID: player.ID, Name: player.Name})
		if len(suggestions) == maxSuggestions {
			break
		}
	}

	return suggestions, nil
}

func (d *memoryDirectory) playsFor(playerID, teamID int) bool {
	for _, record := range d.stats[playerID] {
		if record.Team.ID == teamID {
			return true
		}
	}

	return false
}

func (d *memoryDirectory) rankingValue(playerID int, rankingType entity.RankingType) float64 {
	records := d.stats[playerID]
	if len(records) == 0 {
		return 0
	}
	current := records[0]

	switch rankingType {
	case entity.RankingGoals:
		return float64(current.Goals.Total)
	case entity.RankingAssists:
		return float64(current.Goals.Assists)
	case entity.RankingRating:
		rating, err := strconv.ParseFloat(current.Games.Rating, 64)
		if err != nil {
			return 0
		}

		return rating
	default:
		return 0
	}
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
