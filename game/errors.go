package game

import "errors"

var (
	ErrTooFewPlayers     = errors.New("minimum of 2 players required")
	ErrHandSizeTooSmall  = errors.New("must start with at least 1 card per player")
	ErrHandSizeTooLarge  = errors.New("cannot start with more than 13 cards per player")
	ErrInsufficientDecks = errors.New("not enough decks for the number of players and starting hand size")

	ErrDealBeforeGameStart       = errors.New("cannot deal cards before the game has started")
	ErrReDeal                    = errors.New("cannot deal cards more than once in a round")
	ErrPlayBeforeScorePrediction = errors.New("cannot play before the scores have been predicted")
	ErrPredictBeforeDeal         = errors.New("cannot predict score before the cards have been dealt")
	ErrRePredict                 = errors.New("cannot predict scores more than once in a round")
	ErrGameOver                  = errors.New("cannot take any action after game is over")
	ErrRestart                   = errors.New("game is already in play")
	ErrOutOfTurnPlay             = errors.New("not this player's turn")
	ErrPredictionOutOfRange      = errors.New("predicted score is impossible to achieve")
	ErrLastPlayerPrediction      = errors.New("last player to predict score in the round; score not allowed")
	ErrNoSuchPlayerCard          = errors.New("the player does not have the played card")
	// ErrSuitMismatch is part of the rule taxonomy but is not currently
	// returned: following the led suit is not enforced.
	ErrSuitMismatch = errors.New("must match the suit of the first card when possible")
)
