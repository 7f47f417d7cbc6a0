package directory

import "scout/internal/domain/entity"

// seed loads the demonstration catalogue.
func (d *memoryDirectory) seed() {
	psg := entity.Team{
		ID:      1,
		Name:    "Paris Saint-Germain",
		Logo:    "/placeholder.svg?height=50&width=50",
		Founded: 1970,
		Country: "France",
	}
	alNassr := entity.Team{
		ID:      2,
		Name:    "Al Nassr",
		Logo:    "/placeholder.svg?height=50&width=50",
		Founded: 1955,
		Country: "Saudi Arabia",
	}
	d.teams[psg.ID] = psg
	d.teams[alNassr.ID] = alNassr

	ligue1 := entity.League{
		ID:      1,
		Name:    "Ligue 1",
		Country: "France",
		Logo:    "/placeholder.svg?height=30&width=30",
		Flag:    "/placeholder.svg?height=20&width=30",
		Season:  2023,
	}
	saudiLeague := entity.League{
		ID:      2,
		Name:    "Saudi Pro League",
		Country: "Saudi Arabia",
		Logo:    "/placeholder.svg?height=30&width=30",
		Flag:    "/placeholder.svg?height=20&width=30",
		Season:  2023,
	}

	d.players = []entity.Player{
		{
			ID:        1,
			Name:      "Lionel Messi",
			FirstName: "Lionel",
			LastName:  "Messi",
			Age:       36,
			Birth: entity.Birth{
				Date:    "1987-06-24",
				Place:   "Rosario",
				Country: "Argentina",
			},
			Nationality: "Argentina",
			Height:      "170 cm",
			Weight:      "72 kg",
			Injured:     false,
			Photo:       "/placeholder.svg?height=200&width=200",
		},
		{
			ID:        2,
			Name:      "Cristiano Ronaldo",
			FirstName: "Cristiano",
			LastName:  "Ronaldo",
			Age:       39,
			Birth: entity.Birth{
				Date:    "1985-02-05",
				Place:   "Funchal",
				Country: "Portugal",
			},
			Nationality: "Portugal",
			Height:      "187 cm",
			Weight:      "83 kg",
			Injured:     false,
			Photo:       "/placeholder.svg?height=200&width=200",
		},
		{
			ID:        3,
			Name:      "Neymar Jr",
			FirstName: "Neymar",
			LastName:  "da Silva Santos Júnior",
			Age:       32,
			Birth: entity.Birth{
				Date:    "1992-02-05",
				Place:   "Mogi das Cruzes",
				Country: "Brazil",
			},
			Nationality: "Brazil",
			Height:      "175 cm",
			Weight:      "68 kg",
			Injured:     false,
			Photo:       "/placeholder.svg?height=200&width=200",
		},
	}

	d.stats[1] = []entity.PlayerStatistics{
		{
			Team:   psg,
			League: ligue1,
			Games: entity.GameStats{
				Appearances: 25,
				Lineups:     23,
				Minutes:     2100,
				Number:      10,
				Position:    "Attacker",
				Rating:      "8.5",
				Captain:     true,
			},
			Goals: entity.GoalStats{
				Total:   18,
				Assists: 12,
			},
			Passes: entity.PassStats{
				Total:    1250,
				Key:      65,
				Accuracy: 88,
			},
		},
	}
	d.stats[2] = []entity.PlayerStatistics{
		{
			Team:   alNassr,
			League: saudiLeague,
			Games: entity.GameStats{
				Appearances: 28,
				Lineups:     28,
				Minutes:     2490,
				Number:      7,
				Position:    "Attacker",
				Rating:      "7.9",
				Captain:     true,
			},
			Goals: entity.GoalStats{
				Total:   24,
				Assists: 9,
			},
			Passes: entity.PassStats{
				Total:    860,
				Key:      48,
				Accuracy: 81,
			},
		},
	}
	// Player 3 intentionally carries no statistics; the favorites team
	// toggle must treat the team as unknown for them.
}
