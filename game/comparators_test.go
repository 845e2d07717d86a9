package game

import (
	"testing"

	"github.com/scimas/judgment/deck"
)

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}

func TestTrickCardComparisonWithoutTrump(t *testing.T) {
	cases := []struct {
		first, second deck.Card
		expected      int
	}{
		{deck.NewCard(deck.Jack, deck.Clubs), deck.NewCard(deck.Ten, deck.Clubs), 1},
		{deck.NewCard(deck.Ten, deck.Clubs), deck.NewCard(deck.Jack, deck.Clubs), -1},
		{deck.NewCard(deck.Jack, deck.Clubs), deck.NewCard(deck.Jack, deck.Clubs), 0},
		{deck.NewCard(deck.Jack, deck.Clubs), deck.NewCard(deck.Jack, deck.Diamonds), 1},
		{deck.NewCard(deck.Jack, deck.Clubs), deck.NewCard(deck.Ten, deck.Diamonds), 1},
		{deck.NewCard(deck.Jack, deck.Clubs), deck.NewCard(deck.Queen, deck.Diamonds), 1},
	}

	for _, c := range cases {
		got := sign(trickCardComparator(c.first, c.second, nil))
		if got != c.expected {
			t.Errorf("comparison failed for %s and %s: got %d, want %d", c.first, c.second, got, c.expected)
		}
	}
}

func TestTrickCardComparisonWithTrump(t *testing.T) {
	cases := []struct {
		first, second deck.Card
		trump         deck.Suit
		expected      int
	}{
		// trump same as cards
		{deck.NewCard(deck.Jack, deck.Clubs), deck.NewCard(deck.Ten, deck.Clubs), deck.Clubs, 1},
		{deck.NewCard(deck.Ten, deck.Clubs), deck.NewCard(deck.Jack, deck.Clubs), deck.Clubs, -1},
		{deck.NewCard(deck.Jack, deck.Clubs), deck.NewCard(deck.Jack, deck.Clubs), deck.Clubs, 0},
		// trump distinct from cards
		{deck.NewCard(deck.Jack, deck.Clubs), deck.NewCard(deck.Ten, deck.Clubs), deck.Diamonds, 1},
		{deck.NewCard(deck.Ten, deck.Clubs), deck.NewCard(deck.Jack, deck.Clubs), deck.Diamonds, -1},
		{deck.NewCard(deck.Jack, deck.Clubs), deck.NewCard(deck.Jack, deck.Clubs), deck.Diamonds, 0},
		// trump same as one of the cards
		{deck.NewCard(deck.Jack, deck.Clubs), deck.NewCard(deck.Jack, deck.Diamonds), deck.Diamonds, -1},
		{deck.NewCard(deck.Jack, deck.Clubs), deck.NewCard(deck.Ten, deck.Diamonds), deck.Diamonds, -1},
		{deck.NewCard(deck.Jack, deck.Clubs), deck.NewCard(deck.Queen, deck.Diamonds), deck.Diamonds, -1},
		{deck.NewCard(deck.Jack, deck.Clubs), deck.NewCard(deck.Jack, deck.Diamonds), deck.Clubs, 1},
		{deck.NewCard(deck.Jack, deck.Clubs), deck.NewCard(deck.Ten, deck.Diamonds), deck.Clubs, 1},
		{deck.NewCard(deck.Jack, deck.Clubs), deck.NewCard(deck.Queen, deck.Diamonds), deck.Clubs, 1},
		// trump distinct from both cards
		{deck.NewCard(deck.Jack, deck.Clubs), deck.NewCard(deck.Jack, deck.Diamonds), deck.Hearts, 1},
		{deck.NewCard(deck.Jack, deck.Clubs), deck.NewCard(deck.Ten, deck.Diamonds), deck.Hearts, 1},
		{deck.NewCard(deck.Jack, deck.Clubs), deck.NewCard(deck.Queen, deck.Diamonds), deck.Hearts, 1},
	}

	for _, c := range cases {
		trump := c.trump
		got := sign(trickCardComparator(c.first, c.second, &trump))
		if got != c.expected {
			t.Errorf("comparison failed for %s, %s and trump %s: got %d, want %d", c.first, c.second, c.trump, got, c.expected)
		}
	}
}

func TestCardComparatorOrdersHands(t *testing.T) {
	cases := []struct {
		name   string
		c1, c2 deck.Card
		less   bool
	}{
		{"rank decides within a suit", deck.NewCard(deck.Two, deck.Hearts), deck.NewCard(deck.Ace, deck.Hearts), true},
		{"ten below jack", deck.NewCard(deck.Ten, deck.Spades), deck.NewCard(deck.Jack, deck.Spades), true},
		{"clubs before diamonds", deck.NewCard(deck.Ace, deck.Clubs), deck.NewCard(deck.Two, deck.Diamonds), true},
		{"hearts before spades", deck.NewCard(deck.King, deck.Hearts), deck.NewCard(deck.Two, deck.Spades), true},
		{"spades last", deck.NewCard(deck.Two, deck.Spades), deck.NewCard(deck.Ace, deck.Hearts), false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := cardComparator(c.c1, c.c2) < 0; got != c.less {
				t.Errorf("cardComparator(%s, %s) < 0 = %v, want %v", c.c1, c.c2, got, c.less)
			}
		})
	}
}
