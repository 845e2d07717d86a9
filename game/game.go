package game

import (
	"math/rand"
	"sort"

	"github.com/scimas/judgment/deck"
)

// Trick is the set of cards currently laid down, one optional slot per
// seat; a nil slot means that seat has not played into the open trick yet
type Trick []*deck.Card

// Game is a single game of Judgment: a deterministic state machine over
// dealing, score prediction, card play, trick resolution and scoring.
// It performs no I/O and is not safe for concurrent use; callers serialize
// access.
type Game struct {
	stage            Stage
	round            *round
	hands            [][]deck.Card
	trick            Trick
	roundScores      []int
	scores           []int64
	decks            int
	playerCount      int
	startingHandSize int
	history          []Transition
}

// New creates a game of Judgment for `players` seats with the first round
// having `startingHandSize` cards per seat. `decks` is the number of 52
// card subdecks to play with; pass 0 to use the minimum that can cover the
// first deal.
func New(players, startingHandSize, decks int) (*Game, error) {
	if players < 2 {
		return nil, ErrTooFewPlayers
	}
	if startingHandSize < 1 {
		return nil, ErrHandSizeTooSmall
	}
	if startingHandSize > 13 {
		return nil, ErrHandSizeTooLarge
	}
	estimatedDecks := (players*startingHandSize + 51) / 52
	if decks == 0 {
		decks = estimatedDecks
	} else if decks < estimatedDecks {
		return nil, ErrInsufficientDecks
	}
	return &Game{
		stage:            PrePlay,
		hands:            make([][]deck.Card, players),
		trick:            make(Trick, players),
		roundScores:      make([]int, players),
		scores:           make([]int64, players),
		decks:            decks,
		playerCount:      players,
		startingHandSize: startingHandSize,
	}, nil
}

// Start begins the first round. Errors if the game is already in progress
// or finished.
func (g *Game) Start() error {
	if g.stage != PrePlay {
		return ErrRestart
	}
	g.round = newRound(g.playerCount, g.startingHandSize, 0, suitPtr(deck.Spades))
	g.stage = Dealing
	return nil
}

// Update tries to advance the game with the transition. On success it
// returns the observable state changes in the order they were applied; on
// failure the game state is untouched. Every (stage, transition)
// combination is handled explicitly.
func (g *Game) Update(transition Transition) ([]Change, error) {
	var changes []Change
	var err error
	switch g.stage {
	case PrePlay:
		switch transition.(type) {
		case Deal:
			err = ErrDealBeforeGameStart
		case PredictScore:
			err = ErrPredictBeforeDeal
		case Play:
			err = ErrPlayBeforeScorePrediction
		}
	case Dealing:
		switch tr := transition.(type) {
		case Deal:
			changes, err = g.applyDeal(tr)
		case PredictScore:
			err = ErrPredictBeforeDeal
		case Play:
			err = ErrPlayBeforeScorePrediction
		}
	case Predicting:
		switch tr := transition.(type) {
		case Deal:
			err = ErrReDeal
		case PredictScore:
			changes, err = g.applyPredictScore(tr)
		case Play:
			err = ErrPlayBeforeScorePrediction
		}
	case Playing:
		switch tr := transition.(type) {
		case Deal:
			err = ErrReDeal
		case PredictScore:
			err = ErrRePredict
		case Play:
			changes, err = g.applyPlay(tr)
		}
	case Over:
		err = ErrGameOver
	}
	if err != nil {
		return nil, err
	}
	g.history = append(g.history, transition)
	return changes, nil
}

func (g *Game) applyDeal(tr Deal) ([]Change, error) {
	d := deck.New(g.decks)
	d.Shuffle(rand.New(rand.NewSource(tr.Seed)))
	for player := range g.hands {
		hand := d.Deal(g.round.handSize)
		sort.Slice(hand, func(i, j int) bool {
			return cardComparator(hand[i], hand[j]) < 0
		})
		g.hands[player] = hand
	}
	for i := range g.roundScores {
		g.roundScores[i] = 0
	}
	g.stage = Predicting
	return []Change{HandsDealt}, nil
}

func (g *Game) applyPredictScore(tr PredictScore) ([]Change, error) {
	rd := g.round
	if tr.Player != rd.playerToAct {
		return nil, ErrOutOfTurnPlay
	}
	if tr.Score < 0 || tr.Score > rd.handSize {
		return nil, ErrPredictionOutOfRange
	}
	predicted := 0
	sum := 0
	for _, score := range rd.predictedScores {
		if score != nil {
			predicted++
			sum += *score
		}
	}
	// the hook rule: the last predictor may not make the total come out
	// exactly equal to the hand size
	if predicted == g.playerCount-1 && sum+tr.Score == rd.handSize {
		return nil, ErrLastPlayerPrediction
	}
	score := tr.Score
	rd.predictedScores[tr.Player] = &score
	rd.playerToAct = (rd.playerToAct + 1) % g.playerCount
	if predicted+1 == g.playerCount {
		g.stage = Playing
	}
	return []Change{PredictionsUpdated}, nil
}

func (g *Game) applyPlay(tr Play) ([]Change, error) {
	rd := g.round
	if tr.Player != rd.playerToAct {
		return nil, ErrOutOfTurnPlay
	}
	if !g.removeFromHand(tr.Player, tr.Card) {
		return nil, ErrNoSuchPlayerCard
	}
	card := tr.Card
	g.trick[tr.Player] = &card
	rd.playerToAct = (rd.playerToAct + 1) % g.playerCount
	// the play itself ends here; the rest resolves its consequences
	if trickCardComparator(*g.trick[rd.potentialWinner], card, rd.trumpSuit) < 0 {
		rd.potentialWinner = tr.Player
	}
	changes := []Change{TrickUpdated}
	if !g.trickComplete() {
		return changes, nil
	}
	g.roundScores[rd.potentialWinner]++
	rd.playerToAct = rd.potentialWinner
	for i := range g.trick {
		g.trick[i] = nil
	}
	if len(g.hands[rd.potentialWinner]) != 0 {
		return changes, nil
	}
	// round is over; settle scores
	for player, tricks := range g.roundScores {
		prediction := rd.predictedScores[player]
		if prediction != nil && *prediction == tricks {
			g.scores[player] += int64(tricks)
		} else {
			g.scores[player] -= int64(tricks)
		}
	}
	changes = append(changes, RoundScoresUpdated, GameScoresUpdated)
	if rd.handSize == 1 {
		g.stage = Over
		g.round = nil
	} else {
		leader := (rd.startingPlayer + 1) % g.playerCount
		g.round = newRound(g.playerCount, rd.handSize-1, leader, nextTrumpSuit(rd.trumpSuit))
		g.stage = Dealing
	}
	return changes, nil
}

func (g *Game) trickComplete() bool {
	for _, card := range g.trick {
		if card == nil {
			return false
		}
	}
	return true
}

func (g *Game) removeFromHand(player int, card deck.Card) bool {
	hand := g.hands[player]
	for i, held := range hand {
		if held == card {
			g.hands[player] = append(hand[:i], hand[i+1:]...)
			return true
		}
	}
	return false
}

// Stage reports the game's current stage
func (g *Game) Stage() Stage {
	return g.stage
}

// IsOver reports whether the game has finished
func (g *Game) IsOver() bool {
	return g.stage == Over
}

// Scores returns the cumulative score of every seat
func (g *Game) Scores() []int64 {
	scores := make([]int64, len(g.scores))
	copy(scores, g.scores)
	return scores
}

// Trick returns the cards laid down in the open trick
func (g *Game) Trick() Trick {
	trick := make(Trick, len(g.trick))
	for i, card := range g.trick {
		if card != nil {
			c := *card
			trick[i] = &c
		}
	}
	return trick
}

// HandOfPlayer returns the hand of the seat, or false if no such seat
// exists
func (g *Game) HandOfPlayer(player int) ([]deck.Card, bool) {
	if player < 0 || player >= g.playerCount {
		return nil, false
	}
	hand := make([]deck.Card, len(g.hands[player]))
	copy(hand, g.hands[player])
	return hand, true
}

// PredictedScores returns every seat's prediction for the current round; a
// nil slot means that seat has not predicted yet
func (g *Game) PredictedScores() []*int {
	predictions := make([]*int, g.playerCount)
	if g.round == nil {
		return predictions
	}
	for i, prediction := range g.round.predictedScores {
		if prediction != nil {
			p := *prediction
			predictions[i] = &p
		}
	}
	return predictions
}

// RoundScores returns the tricks won by every seat in the current round.
// After a round settles the counts remain readable until the next deal.
func (g *Game) RoundScores() []int {
	scores := make([]int, g.playerCount)
	copy(scores, g.roundScores)
	return scores
}

// TrumpSuit returns the current round's trump suit; nil means either no
// trump this round or no round in progress
func (g *Game) TrumpSuit() *deck.Suit {
	if g.round == nil || g.round.trumpSuit == nil {
		return nil
	}
	return suitPtr(*g.round.trumpSuit)
}

// PlayerToAct returns the seat that is expected to act next; false when no
// round is in progress
func (g *Game) PlayerToAct() (int, bool) {
	if g.round == nil {
		return 0, false
	}
	return g.round.playerToAct, true
}

// History returns every accepted transition in order
func (g *Game) History() []Transition {
	history := make([]Transition, len(g.history))
	copy(history, g.history)
	return history
}
