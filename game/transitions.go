package game

import "github.com/scimas/judgment/deck"

// Transition is an input that attempts to advance the game. The exact set
// of transitions is Deal, PredictScore and Play; Game.Update handles every
// (stage, transition) combination explicitly.
type Transition interface {
	isTransition()
}

// Deal shuffles a fresh deck with Seed as the only source of randomness
// and deals the round's hands
type Deal struct {
	Seed int64
}

// PredictScore records Player's trick prediction for the round
type PredictScore struct {
	Player int
	Score  int
}

// Play plays Card from Player's hand into the open trick
type Play struct {
	Player int
	Card   deck.Card
}

func (Deal) isTransition()         {}
func (PredictScore) isTransition() {}
func (Play) isTransition()         {}

// Change identifies an externally observable piece of state that an
// accepted transition modified, in the order the engine applied them
type Change int

const (
	// HandsDealt means every seat received a fresh hand
	HandsDealt Change = iota
	// PredictionsUpdated means a score prediction was recorded
	PredictionsUpdated
	// TrickUpdated means the open trick changed
	TrickUpdated
	// RoundScoresUpdated means a round completed and per-seat trick
	// counts were finalised
	RoundScoresUpdated
	// GameScoresUpdated means cumulative scores changed
	GameScoresUpdated
)
