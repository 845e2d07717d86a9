package deck

import (
	"math/rand"
)

// Deck represents a deck of cards
type Deck []Card

// New creates a deck made of `subdecks` standard 52 card decks
func New(subdecks int) Deck {
	cards := make([]Card, 0, subdecks*52)
	for i := 0; i < subdecks; i++ {
		for suit := Clubs; suit <= Spades; suit++ {
			for rank := Two; rank <= Ace; rank++ {
				cards = append(cards, NewCard(rank, suit))
			}
		}
	}
	return cards
}

// Shuffle shuffles the deck of cards. The supplied generator is the only
// source of randomness, so two decks shuffled with identically seeded
// generators end up in the same order.
func (d *Deck) Shuffle(r *rand.Rand) {
	actualDeck := *d
	for i := len(actualDeck) - 1; i > 0; i-- {
		randomNumber := r.Intn(i + 1)
		actualDeck[i], actualDeck[randomNumber] = actualDeck[randomNumber], actualDeck[i]
	}
}

// Deal deals n number of cards from the deck, until it is empty
func (d *Deck) Deal(n int) []Card {
	numCardsInDeck := len(*d)
	if n < 0 || n > numCardsInDeck {
		return []Card{}
	}
	startingIndex := numCardsInDeck - n
	subSlice := (*d)[startingIndex:numCardsInDeck]
	*d = (*d)[:startingIndex]
	return subSlice
}
