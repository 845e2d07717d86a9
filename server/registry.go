package server

import (
	"crypto/ed25519"
	"errors"
	"sync"

	"github.com/scimas/judgment/deck"
	"github.com/scimas/judgment/room"
	uuid "github.com/satori/go.uuid"
)

var (
	ErrServerFull   = errors.New("no space left in server for another room")
	ErrUnknownRoom  = errors.New("no such room exists")
	ErrInvalidToken = errors.New("invalid token")
)

// Registry is a bounded collection of rooms. Room mutating operations
// (create, join, play) serialize on the write side of a single lock,
// across the whole server; read only lookups for subscriptions share the
// read side. Session credentials are stateless ed25519 signed tokens, so
// the registry keeps no session table.
type Registry struct {
	mu         sync.RWMutex
	signingKey ed25519.PrivateKey
	verifyKey  ed25519.PublicKey
	rooms      map[uuid.UUID]*room.Room
	finished   []uuid.UUID
	maxRooms   int
}

// NewRegistry creates a registry that can support maxRooms concurrent
// games and signs player tokens with the ed25519 key
func NewRegistry(signingKey ed25519.PrivateKey, maxRooms int) *Registry {
	return &Registry{
		signingKey: signingKey,
		verifyKey:  signingKey.Public().(ed25519.PublicKey),
		rooms:      map[uuid.UUID]*room.Room{},
		maxRooms:   maxRooms,
	}
}

// CreateRoom creates a room and registers it under a fresh unpredictable
// identifier. Client supplied sizes must be validated before this call;
// construction errors from invalid sizes propagate as is.
func (reg *Registry) CreateRoom(players, startingHandSize, decks int) (uuid.UUID, error) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	if len(reg.rooms) == reg.maxRooms {
		return uuid.Nil, ErrServerFull
	}
	rm, err := room.NewRoom(players, startingHandSize, decks)
	if err != nil {
		return uuid.Nil, err
	}
	roomID := uuid.NewV4()
	reg.rooms[roomID] = rm
	return roomID, nil
}

// Join joins the room as the next free seat and mints a signed credential
// binding (seat, room id)
func (reg *Registry) Join(roomID uuid.UUID) (string, error) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	rm, ok := reg.rooms[roomID]
	if !ok {
		return "", ErrUnknownRoom
	}
	seat, err := rm.Join()
	if err != nil {
		return "", err
	}
	return reg.mintToken(seat, roomID)
}

// Play applies the action for the seat in the room. Rooms whose game
// finishes are queued for reclamation.
func (reg *Registry) Play(action room.Action, seat int, roomID uuid.UUID) error {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	rm, ok := reg.rooms[roomID]
	if !ok {
		return ErrUnknownRoom
	}
	if err := rm.Play(action, seat); err != nil {
		return err
	}
	if rm.GameOver() {
		reg.finished = append(reg.finished, roomID)
	}
	return nil
}

// HandOfPlayer reads the seat's current hand in the room. The copy is
// taken while the lock is held so a concurrent play cannot tear it.
func (reg *Registry) HandOfPlayer(seat int, roomID uuid.UUID) ([]deck.Card, error) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	rm, ok := reg.rooms[roomID]
	if !ok {
		return nil, ErrUnknownRoom
	}
	return rm.HandOfPlayer(seat)
}

// Room looks up a room for read only use (facet subscriptions)
func (reg *Registry) Room(roomID uuid.UUID) (*room.Room, error) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	rm, ok := reg.rooms[roomID]
	if !ok {
		return nil, ErrUnknownRoom
	}
	return rm, nil
}

// RemoveFinishedRooms reclaims every room whose game has reached the end
func (reg *Registry) RemoveFinishedRooms() {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	for _, roomID := range reg.finished {
		delete(reg.rooms, roomID)
	}
	reg.finished = reg.finished[:0]
}
