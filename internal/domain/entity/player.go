// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// Birth holds a player's birth record.
type Birth struct {
	Date    string `json:"date"`
	Place   string `json:"place"`
	Country string `json:"country"`
}

// Player is a directory entry for a football player.
type Player struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	FirstName   string `json:"firstname"`
	LastName    string `json:"lastname"`
	Age         int    `json:"age"`
	Birth       Birth  `json:"birth"`
	Nationality string `json:"nationality"`
	Height      string `json:"height"`
	Weight      string `json:"weight"`
	Injured     bool   `json:"injured"`
	Photo       string `json:"photo"`
}

// Team is a directory entry for a football club.
type Team struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Logo    string `json:"logo"`
	Founded int    `json:"founded"`
	Country string `json:"country"`
}

// League identifies the competition a statistics record belongs to.
type League struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
	Logo    string `json:"logo"`
	Flag    string `json:"flag"`
	Season  int    `json:"season"`
}

// GameStats aggregates appearance figures for one season.
type GameStats struct {
	Appearances int    `json:"appearences"`
	Lineups     int    `json:"lineups"`
	Minutes     int    `json:"minutes"`
	Number      int    `json:"number"`
	Position    string `json:"position"`
	Rating      string `json:"rating"`
	Captain     bool   `json:"captain"`
}

// GoalStats aggregates scoring figures for one season.
type GoalStats struct {
	Total    int `json:"total"`
	Conceded int `json:"conceded"`
	Assists  int `json:"assists"`
	Saves    int `json:"saves"`
}

// PassStats aggregates passing figures for one season.
type PassStats struct {
	Total    int `json:"total"`
	Key      int `json:"key"`
	Accuracy int `json:"accuracy"`
}

// PlayerStatistics is one season record for a player with a team.
type PlayerStatistics struct {
	Team   Team      `json:"team"`
	League League    `json:"league"`
	Games  GameStats `json:"games"`
	Goals  GoalStats `json:"goals"`
	Passes PassStats `json:"passes"`
}

// SearchFilters narrows a directory search. Empty fields match everything.
type SearchFilters struct {
	Name        string `json:"name,omitempty" query:"name"`
	Nationality string `json:"nationality,omitempty" query:"nationality"`
	TeamID      int    `json:"teamId,omitempty" query:"teamId"`
}

// RankingType selects a ranking board.
type RankingType string

const (
	RankingGoals   RankingType = "goals"
	RankingAssists RankingType = "assists"
	RankingRating  RankingType = "rating"
)

// RankingEntry is one row of a ranking board.
type RankingEntry struct {
	Position int     `json:"position"`
	Player   Player  `json:"player"`
	Value    float64 `json:"value"`
}

// Ranking is an ordered board of players for one metric.
type Ranking struct {
	Type    RankingType    `json:"type"`
	Entries []RankingEntry `json:"entries"`
}

// Suggestion is an autocomplete candidate for the search box.
type Suggestion struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
