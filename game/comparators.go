package game

import "github.com/scimas/judgment/deck"

// cardComparator orders cards for hand sorting. Two is the lowest rank and
// Ace is the highest. Suit ordering has no gameplay significance; it only
// arbitrarily orders suits in alternating reds and blacks.
func cardComparator(c1, c2 deck.Card) int {
	if c1.Suit != c2.Suit {
		return int(c1.Suit) - int(c2.Suit)
	}
	return int(c1.Rank) - int(c2.Rank)
}

// trickCardComparator orders cards for trick resolution. Within the same
// suit ranks decide. Across suits only the trump suit matters: the second
// card wins over the first only if it alone is trump. In every other
// cross-suit case the first played card stands.
func trickCardComparator(first, second deck.Card, trumpSuit *deck.Suit) int {
	if first.Suit == second.Suit {
		return int(first.Rank) - int(second.Rank)
	}
	if trumpSuit != nil && second.Suit == *trumpSuit {
		return -1
	}
	return 1
}
