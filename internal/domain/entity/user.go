// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"slices"
	"time"
)

// Theme is the UI theme stored in user preferences.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

const defaultLanguage = "pt"

// Preferences holds per-user presentation settings.
type Preferences struct {
	Theme    Theme  `json:"theme"`
	Language string `json:"language"`
}

// DefaultPreferences returns the preferences assigned to every new account.
func DefaultPreferences() Preferences {
	return Preferences{Theme: ThemeLight, Language: defaultLanguage}
}

// UserProfile is the account document persisted in the profile store.
// FavoriteTeams and FavoritePlayers are sets: they never contain duplicates.
type UserProfile struct {
	UID   string `json:"uid"`
	ID    string `json:"id"` // mirrored to UID for storage compatibility
	Email string `json:"email"`
	Name  string `json:"name"`

	FavoriteTeams   []int `json:"favoriteTeams"`
	FavoritePlayers []int `json:"favoritePlayers"`

	Preferences Preferences `json:"preferences"`

	CreatedAt time.Time `json:"createdAt"` // set once, never mutated
	UpdatedAt time.Time `json:"updatedAt"` // advanced on every persisted mutation
}

// NewUserProfile constructs a fresh profile with empty favorite sets and
// default preferences, as created on first registration or first login.
func NewUserProfile(uid, email, name string, now time.Time) *UserProfile {
	return &UserProfile{
		UID:             uid,
		ID:              uid,
		Email:           email,
		Name:            name,
		FavoriteTeams:   []int{},
		FavoritePlayers: []int{},
		Preferences:     DefaultPreferences(),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// Clone returns a deep copy. Callers holding a snapshot must never observe
// later mutations through shared slices.
func (p *UserProfile) Clone() *UserProfile {
	if p == nil {
		return nil
	}
	clone := *p
	clone.FavoriteTeams = slices.Clone(p.FavoriteTeams)
	clone.FavoritePlayers = slices.Clone(p.FavoritePlayers)

	return &clone
}

// HasFavoritePlayer reports membership in the favorite player set.
func (p *UserProfile) HasFavoritePlayer(playerID int) bool {
	return p != nil && slices.Contains(p.FavoritePlayers, playerID)
}

// HasFavoriteTeam reports membership in the favorite team set.
func (p *UserProfile) HasFavoriteTeam(teamID int) bool {
	return p != nil && slices.Contains(p.FavoriteTeams, teamID)
}

// ToggleID removes every instance of id when present, otherwise appends it.
// The input slice is not modified. The result is always duplicate-free with
// respect to id, even if the input ever contained duplicates.
func ToggleID(ids []int, id int) []int {
	if slices.Contains(ids, id) {
		out := make([]int, 0, len(ids))
		for _, v := range ids {
			if v != id {
				out = append(out, v)
			}
		}

		return out
	}

	out := make([]int, 0, len(ids)+1)
	out = append(out, ids...)

	return append(out, id)
}

// ProfilePatch is a typed partial update. Only the listed fields can be
// patched; identity fields (UID, Email, CreatedAt) are not reachable, so a
// careless caller cannot overwrite them.
type ProfilePatch struct {
	Name            *string      `json:"name,omitempty"`
	FavoriteTeams   *[]int       `json:"favoriteTeams,omitempty"`
	FavoritePlayers *[]int       `json:"favoritePlayers,omitempty"`
	Preferences     *Preferences `json:"preferences,omitempty"`
}

// IsZero reports whether the patch carries no changes.
func (patch *ProfilePatch) IsZero() bool {
	return patch == nil ||
		(patch.Name == nil && patch.FavoriteTeams == nil && patch.FavoritePlayers == nil && patch.Preferences == nil)
}

// Apply merges the patch into profile as a shallow merge: only keys present
// in the patch replace the corresponding profile fields. Favorite sets are
// deduplicated on the way in. Applying the same patch twice yields the same
// profile content. UpdatedAt is advanced to now.
func (patch *ProfilePatch) Apply(profile *UserProfile, now time.Time) {
	if patch == nil || profile == nil {
		return
	}

	if patch.Name != nil {
		profile.Name = *patch.Name
	}
	if patch.FavoriteTeams != nil {
		profile.FavoriteTeams = dedupIDs(*patch.FavoriteTeams)
	}
	if patch.FavoritePlayers != nil {
		profile.FavoritePlayers = dedupIDs(*patch.FavoritePlayers)
	}
	if patch.Preferences != nil {
		profile.Preferences = *patch.Preferences
	}
	profile.UpdatedAt = now
}

// dedupIDs copies ids preserving first-occurrence order and dropping duplicates.
func dedupIDs(ids []int) []int {
	seen := make(map[int]struct{}, len(ids))
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	return out
}
