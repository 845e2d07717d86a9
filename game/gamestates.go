package game

import "github.com/scimas/judgment/deck"

// Stage represents the main stages in the game
type Stage int

const (
	// PrePlay is the stage before the game has been started
	PrePlay Stage = iota
	// Dealing means the round is waiting for cards to be dealt
	Dealing
	// Predicting means the round is collecting score predictions
	Predicting
	// Playing means tricks are being played
	Playing
	// Over is terminal; no transition is accepted afterwards
	Over
)

// round holds the state for one hand of play at a given hand size. Trick
// counts live on the Game so they stay readable between a round settling
// and the next deal.
type round struct {
	playerToAct     int
	potentialWinner int
	handSize        int
	trumpSuit       *deck.Suit
	predictedScores []*int
	startingPlayer  int
}

func newRound(playerCount, handSize, startingPlayer int, trumpSuit *deck.Suit) *round {
	return &round{
		playerToAct:     startingPlayer,
		potentialWinner: startingPlayer,
		handSize:        handSize,
		trumpSuit:       trumpSuit,
		predictedScores: make([]*int, playerCount),
		startingPlayer:  startingPlayer,
	}
}

// nextTrumpSuit advances the trump one step in the fixed rotation
// Spades → Hearts → Clubs → Diamonds → no trump → Spades
func nextTrumpSuit(current *deck.Suit) *deck.Suit {
	if current == nil {
		return suitPtr(deck.Spades)
	}
	switch *current {
	case deck.Spades:
		return suitPtr(deck.Hearts)
	case deck.Hearts:
		return suitPtr(deck.Clubs)
	case deck.Clubs:
		return suitPtr(deck.Diamonds)
	case deck.Diamonds:
		return nil
	}
	panic("no such suit")
}

func suitPtr(s deck.Suit) *deck.Suit {
	return &s
}
