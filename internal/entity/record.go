package entity

import "time"

// GameRecord - archived summary of a finished game.
type GameRecord struct {
	ID         string    `json:"id"`
	PlayerX    string    `json:"player_x"`
	PlayerO    string    `json:"player_o"`
	Status     string    `json:"status"`
	Winner     Mark      `json:"winner,omitempty"`
	History    string    `json:"history"`
	Turns      int       `json:"turns"`
	FinishedAt time.Time `json:"finished_at"`
}
