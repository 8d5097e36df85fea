package model

// Player is one of the two seats at a game
type Player struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
	Frame *Frame `json:"frame"`
}

// NewPlayer creates a player with an empty frame drawing from pool
func NewPlayer(name string, pool *Pool) *Player {
	return &Player{
		Name:  name,
		Frame: NewFrame(pool),
	}
}

// AddScore credits points to the player
func (p *Player) AddScore(points int) {
	p.Score += points
}

// DecreaseScore removes points from the player
func (p *Player) DecreaseScore(points int) {
	p.Score -= points
}
