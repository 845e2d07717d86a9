// Package room wraps a single game of Judgment with seat assignment and
// per facet change notification, making the engine's transitions safely
// reachable from many independent request handlers.
package room

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/scimas/judgment/deck"
	"github.com/scimas/judgment/game"
	"github.com/scimas/judgment/watch"
)

var (
	ErrRoomFull      = errors.New("room is full")
	ErrTooEarly      = errors.New("cannot play cards or predict scores yet")
	ErrUnknownSeat   = errors.New("not a valid player id")
	ErrInvalidAction = errors.New("action must be either a play or a score prediction")
)

// randomSeed draws a deal seed from the process wide generator. The engine
// itself stays deterministic; only the orchestrator produces randomness.
var randomSeed = rand.Int63

// Action is a player's requested move as it arrives off the wire: exactly
// one of the fields must be set. Deals are never client initiated; the
// room issues them itself, so the schema cannot express one.
type Action struct {
	Play         *deck.Card `json:"play,omitempty"`
	PredictScore *int       `json:"predict_score,omitempty"`
}

// Room owns one game and the broadcast channel for every externally
// observable facet of its state. It performs no locking of its own; the
// caller must keep mutating calls (Join, Play) exclusive of each other and
// of the direct state reads (HandOfPlayer, GameOver, LastMove). Only the
// receiver methods are safe to use concurrently with mutation, since they
// observe published snapshots.
type Room struct {
	joinedPlayers int
	maxPlayers    int
	game          *game.Game
	lastMove      *Action

	trick       *watch.Value[game.Trick]
	predictions *watch.Value[[]*int]
	roundScores *watch.Value[[]int]
	gameScores  *watch.Value[[]int64]
	trumpSuit   *watch.Value[*deck.Suit]
}

// NewRoom creates a room for the given number of players, starting hand
// size and card decks. Errors propagate from game construction; the HTTP
// boundary is expected to pre-validate client supplied sizes.
func NewRoom(players, startingHandSize, decks int) (*Room, error) {
	g, err := game.New(players, startingHandSize, decks)
	if err != nil {
		return nil, err
	}
	return &Room{
		maxPlayers:  players,
		game:        g,
		trick:       watch.NewValue(g.Trick()),
		predictions: watch.NewValue(g.PredictedScores()),
		roundScores: watch.NewValue(g.RoundScores()),
		gameScores:  watch.NewValue(g.Scores()),
		trumpSuit:   watch.NewValue(g.TrumpSuit()),
	}, nil
}

// Join assigns the next free seat. When the last seat fills, the game is
// started and the first hands are dealt immediately so the room is
// playable the moment everyone is in.
func (r *Room) Join() (seat int, err error) {
	if r.IsFull() {
		return 0, ErrRoomFull
	}
	seat = r.joinedPlayers
	r.joinedPlayers++
	if r.IsFull() {
		if err := r.game.Start(); err != nil {
			return 0, fmt.Errorf("starting game on final join: %w", err)
		}
		r.trumpSuit.Set(r.game.TrumpSuit())
		changes, err := r.game.Update(game.Deal{Seed: randomSeed()})
		if err != nil {
			return 0, fmt.Errorf("dealing on final join: %w", err)
		}
		r.publish(changes)
	}
	return seat, nil
}

// IsFull checks whether the room's player capacity is full
func (r *Room) IsFull() bool {
	return r.joinedPlayers == r.maxPlayers
}

// MaxPlayers returns the room's seat capacity
func (r *Room) MaxPlayers() int {
	return r.maxPlayers
}

// Play maps the action onto an engine transition for the seat and applies
// it, republishing every resulting change. When the action completes a
// round and the game continues, the room deals the next round itself with
// a fresh random seed.
func (r *Room) Play(action Action, seat int) error {
	if !r.IsFull() {
		return ErrTooEarly
	}

	var transition game.Transition
	switch {
	case action.Play != nil && action.PredictScore == nil:
		transition = game.Play{Player: seat, Card: *action.Play}
	case action.PredictScore != nil && action.Play == nil:
		transition = game.PredictScore{Player: seat, Score: *action.PredictScore}
	default:
		return ErrInvalidAction
	}

	changes, err := r.game.Update(transition)
	if err != nil {
		return err
	}
	r.publish(changes)
	r.lastMove = &action

	if roundCompleted(changes) && !r.game.IsOver() {
		changes, err := r.game.Update(game.Deal{Seed: randomSeed()})
		if err != nil {
			return fmt.Errorf("dealing on round rollover: %w", err)
		}
		r.publish(changes)
	}
	return nil
}

func roundCompleted(changes []game.Change) bool {
	for _, change := range changes {
		if change == game.GameScoresUpdated {
			return true
		}
	}
	return false
}

// publish pushes the new value of every changed facet into its channel, in
// the order the engine reported the changes. The trump suit piggybacks on
// game score changes since it only moves at round rollover.
func (r *Room) publish(changes []game.Change) {
	for _, change := range changes {
		switch change {
		case game.HandsDealt:
			r.predictions.Set(r.game.PredictedScores())
		case game.PredictionsUpdated:
			r.predictions.Set(r.game.PredictedScores())
		case game.TrickUpdated:
			r.trick.Set(r.game.Trick())
		case game.RoundScoresUpdated:
			r.roundScores.Set(r.game.RoundScores())
		case game.GameScoresUpdated:
			r.gameScores.Set(r.game.Scores())
			r.trumpSuit.Set(r.game.TrumpSuit())
		}
	}
}

// HandOfPlayer returns the hand of the seat
func (r *Room) HandOfPlayer(seat int) ([]deck.Card, error) {
	hand, ok := r.game.HandOfPlayer(seat)
	if !ok {
		return nil, ErrUnknownSeat
	}
	return hand, nil
}

// GameOver checks whether the room's game has finished
func (r *Room) GameOver() bool {
	return r.game.IsOver()
}

// LastMove returns the last accepted action, if any
func (r *Room) LastMove() *Action {
	return r.lastMove
}

// TrickReceiver subscribes to changes of the open trick
func (r *Room) TrickReceiver() *watch.Receiver[game.Trick] {
	return r.trick.Subscribe()
}

// PredictionsReceiver subscribes to changes of the round's predictions
func (r *Room) PredictionsReceiver() *watch.Receiver[[]*int] {
	return r.predictions.Subscribe()
}

// RoundScoresReceiver subscribes to changes of the per round trick counts
func (r *Room) RoundScoresReceiver() *watch.Receiver[[]int] {
	return r.roundScores.Subscribe()
}

// GameScoresReceiver subscribes to changes of the cumulative scores
func (r *Room) GameScoresReceiver() *watch.Receiver[[]int64] {
	return r.gameScores.Subscribe()
}

// TrumpSuitReceiver subscribes to changes of the trump suit
func (r *Room) TrumpSuitReceiver() *watch.Receiver[*deck.Suit] {
	return r.trumpSuit.Subscribe()
}
