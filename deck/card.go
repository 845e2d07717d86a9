package deck

import (
	"encoding/json"
	"fmt"
)

// Rank represents a rank in a deck of cards. Two is the lowest rank and
// Ace is the highest.
type Rank int

var rankNames = []string{"Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine", "Ten", "Jack", "Queen", "King", "Ace"}

const (
	Two Rank = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

func (r Rank) String() string {
	return rankNames[r]
}

// Suit represents a suit in a deck of cards
type Suit int

var suitNames = []string{"Clubs", "Diamonds", "Hearts", "Spades"}

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

func (s Suit) String() string {
	return suitNames[s]
}

// MarshalJSON encodes a suit as its name
func (s Suit) MarshalJSON() ([]byte, error) {
	if s < Clubs || s > Spades {
		return nil, fmt.Errorf("cannot encode unknown suit %d", int(s))
	}
	return json.Marshal(suitNames[s])
}

// UnmarshalJSON decodes a suit from its name
func (s *Suit) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	for i, n := range suitNames {
		if n == name {
			*s = Suit(i)
			return nil
		}
	}
	return fmt.Errorf("unknown suit %q", name)
}

// MarshalJSON encodes a rank as its name
func (r Rank) MarshalJSON() ([]byte, error) {
	if r < Two || r > Ace {
		return nil, fmt.Errorf("cannot encode unknown rank %d", int(r))
	}
	return json.Marshal(rankNames[r])
}

// UnmarshalJSON decodes a rank from its name
func (r *Rank) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	for i, n := range rankNames {
		if n == name {
			*r = Rank(i)
			return nil
		}
	}
	return fmt.Errorf("unknown rank %q", name)
}

// Card represents a playing card
type Card struct {
	Rank Rank `json:"rank"`
	Suit Suit `json:"suit"`
}

// NewCard constructs a card. Panics if the rank or suit is out of range.
func NewCard(rank Rank, suit Suit) Card {
	if rank < Two || rank > Ace || suit < Clubs || suit > Spades {
		panic(fmt.Sprintf("no such card: rank %d, suit %d", int(rank), int(suit)))
	}
	return Card{Rank: rank, Suit: suit}
}

func (c Card) String() string {
	return fmt.Sprintf("%s of %s", rankNames[c.Rank], suitNames[c.Suit])
}
