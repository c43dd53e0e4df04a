package types

import (
	"github.com/bytearena/tankarena/common/utils/vector"
)

type VizMessage struct {
	GameID  string             `json:"gameid"`
	Tick    int                `json:"tick"`
	Objects []VizMessageObject `json:"objects"`
	Scores  []VizMessageScore  `json:"scores"`
}

// VizMessageObject carries only what a renderer needs to draw one entity.
type VizMessageObject struct {
	Id       string         `json:"id"`
	Kind     string         `json:"kind"`
	Position vector.Vector2 `json:"position"`
	Heading  vector.Vector2 `json:"heading"`
	Radius   float64        `json:"radius"`
	Scale    float64        `json:"scale"`
	Height   float64        `json:"height"`
	Player   int            `json:"player"`
}

type VizMessageScore struct {
	Player int    `json:"player"`
	Name   string `json:"name"`
	Score  int    `json:"score"`
}
