package deck

import (
	"encoding/json"
	"math/rand"
	"testing"

	utils "github.com/scimas/judgment/internal"
)

func TestCard(t *testing.T) {
	cases := []struct {
		name     string
		card     Card
		expected string
	}{
		{"Lowest value card", NewCard(Two, Clubs), "Two of Clubs"},
		{"Specific card", NewCard(Queen, Hearts), "Queen of Hearts"},
		{"Highest value card", NewCard(Ace, Spades), "Ace of Spades"},
	}

	for _, c := range cases {
		utils.AssertEqual(t, c.card.String(), c.expected)
	}

	t.Run("Out of range (should panic)", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("Expected to panic, but it didn't")
			}
		}()
		NewCard(Ace+1, Hearts)
	})

	t.Run("get rank", func(t *testing.T) {
		six := NewCard(Six, Suit(rand.Intn(4)))
		utils.AssertEqual(t, six.Rank.String(), "Six")
	})

	t.Run("get suit", func(t *testing.T) {
		spade := NewCard(Rank(rand.Intn(13)), Spades)
		utils.AssertEqual(t, spade.Suit.String(), "Spades")
	})
}

func TestCardJSON(t *testing.T) {
	card := NewCard(Ten, Diamonds)

	bytes, err := json.Marshal(card)
	utils.AssertNoError(t, err)
	utils.AssertEqual(t, string(bytes), `{"rank":"Ten","suit":"Diamonds"}`)

	var decoded Card
	utils.AssertNoError(t, json.Unmarshal(bytes, &decoded))
	utils.AssertEqual(t, decoded, card)

	t.Run("rejects unknown names", func(t *testing.T) {
		var c Card
		utils.AssertErrored(t, json.Unmarshal([]byte(`{"rank":"Eleven","suit":"Hearts"}`), &c))
		utils.AssertErrored(t, json.Unmarshal([]byte(`{"rank":"Ten","suit":"Roses"}`), &c))
	})
}
