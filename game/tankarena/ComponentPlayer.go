package tankarena

type Stats struct {
	ShotsFired        uint `json:"shotsfired"`
	HitsGiven         uint `json:"hitsgiven"`
	HitsTaken         uint `json:"hitstaken"`
	TargetsDestroyed  uint `json:"targetsdestroyed"`
	PowerUpsCollected uint `json:"powerupscollected"`

	// Contacts with another tank
	Bumps uint `json:"bumps"`

	// Distance travelled by the tank since the beginning of the game
	DistanceTravelled float64 `json:"distancetravelled"`
}

type Player struct {
	Idx    int
	Name   string
	Period int

	Score int
	Stats Stats
}

func (game TankArenaGame) CastPlayer(data interface{}) *Player {
	return data.(*Player)
}

func (p *Player) AddPoints(points int) {
	p.Score += points
}

// Score is a read-only copy of a player's standing.
type Score struct {
	PlayerIdx int    `json:"player"`
	Name      string `json:"name"`
	Period    int    `json:"period"`
	Score     int    `json:"score"`
	Stats     Stats  `json:"stats"`
}
