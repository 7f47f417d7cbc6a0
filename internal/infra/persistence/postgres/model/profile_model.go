// Package model holds the GORM persistence models, kept separate from the
// pure domain entities.
package model

import (
	"time"

	"scout/internal/domain/entity"
)

// ProfileModel mirrors the 'user_profiles' table. The favorite sets are
// stored as JSON columns; they are small per-user lists, never queried by
// element, so a join table would buy nothing.
type ProfileModel struct {
	UID             string `gorm:"type:varchar(128);primaryKey"`
	Email           string `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name            string `gorm:"type:varchar(100)"`
	FavoriteTeams   []int  `gorm:"serializer:json;type:jsonb"`
	FavoritePlayers []int  `gorm:"serializer:json;type:jsonb"`
	Theme           string `gorm:"type:varchar(16)"`
	Language        string `gorm:"type:varchar(8)"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "user_profiles"
}

// FromProfile maps a pure domain entity to the persistence model.
func FromProfile(profile *entity.UserProfile) *ProfileModel {
	if profile == nil {
		return nil
	}

	return &ProfileModel{
		UID:             profile.UID,
		Email:           profile.Email,
		Name:            profile.Name,
		FavoriteTeams:   profile.FavoriteTeams,
		FavoritePlayers: profile.FavoritePlayers,
		Theme:           string(profile.Preferences.Theme),
		Language:        profile.Preferences.Language,
		CreatedAt:       profile.CreatedAt,
		UpdatedAt:       profile.UpdatedAt,
	}
}

// ToProfile maps the persistence model back to a pure domain entity.
func (m *ProfileModel) ToProfile() *entity.UserProfile {
	if m == nil {
		return nil
	}

	teams := m.FavoriteTeams
	if teams == nil {
		teams = []int{}
	}
	players := m.FavoritePlayers
	if players == nil {
		players = []int{}
	}

	return &entity.UserProfile{
		UID:             m.UID,
		ID:              m.UID,
		Email:           m.Email,
		Name:            m.Name,
		FavoriteTeams:   teams,
		FavoritePlayers: players,
		Preferences: entity.Preferences{
			Theme:    entity.Theme(m.Theme),
			Language: m.Language,
		},
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
