package server

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/scimas/judgment/room"
	uuid "github.com/satori/go.uuid"
)

// Long poll budgets per facet; on timeout the client simply receives the
// current value again.
const (
	trickTimeout       = 10 * time.Second
	predictionsTimeout = 30 * time.Second
	roundScoresTimeout = 60 * time.Second
	gameScoresTimeout  = 120 * time.Second
	trumpSuitTimeout   = 120 * time.Second
)

type NewRoomReq struct {
	Players          int `json:"players"`
	StartingHandSize int `json:"starting_hand_size"`
	Decks            int `json:"decks"`
}

type RoomRes struct {
	RoomID string `json:"room_id"`
}

type JoinReq struct {
	RoomID string `json:"room_id"`
}

type JoinRes struct {
	TokenType string `json:"token_type"`
	Token     string `json:"token"`
}

type ErrorRes struct {
	Error string `json:"error"`
}

// GameServer exposes a Registry over HTTP
type GameServer struct {
	registry *Registry
	http.Server
}

// NewGameServer creates a GameServer for the registry
func NewGameServer(registry *Registry) *GameServer {
	s := &GameServer{registry: registry}

	router := http.NewServeMux()
	router.Handle("/api/create_room", http.HandlerFunc(s.handleCreateRoom))
	router.Handle("/api/join", http.HandlerFunc(s.handleJoin))
	router.Handle("/api/play", http.HandlerFunc(s.handlePlay))
	router.Handle("/api/trick", http.HandlerFunc(s.handleTrick))
	router.Handle("/api/predictions", http.HandlerFunc(s.handlePredictions))
	router.Handle("/api/round_scores", http.HandlerFunc(s.handleRoundScores))
	router.Handle("/api/scores", http.HandlerFunc(s.handleScores))
	router.Handle("/api/trump_suit", http.HandlerFunc(s.handleTrumpSuit))
	router.Handle("/api/my_hand", http.HandlerFunc(s.handleMyHand))
	router.Handle("/ws", http.HandlerFunc(s.handleWS))

	s.Handler = router

	return s
}

// ServeHTTP serves http
func (g *GameServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	g.Handler.ServeHTTP(w, r)
}

func (g *GameServer) handleCreateRoom(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	log.Println("received create room request")

	var req NewRoomReq
	err := json.NewDecoder(r.Body).Decode(&req)
	defer r.Body.Close()
	if err != nil {
		writeParseError(err, w)
		return
	}

	// the registry treats bad sizes as contract violations, so they are
	// filtered here at the boundary
	if msg, ok := validateRoomSizes(req); !ok {
		writeJSON(w, http.StatusBadRequest, ErrorRes{Error: msg})
		return
	}

	roomID, err := g.registry.CreateRoom(req.Players, req.StartingHandSize, req.Decks)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, RoomRes{RoomID: roomID.String()})
}

func validateRoomSizes(req NewRoomReq) (string, bool) {
	if req.Players < 2 {
		return "at least 2 players required", false
	}
	if req.StartingHandSize < 1 || req.StartingHandSize > 13 {
		return "starting hand size must be between 1 and 13", false
	}
	if req.Decks < 0 {
		return "decks cannot be negative", false
	}
	if req.Decks > 0 && req.Decks*52 < req.Players*req.StartingHandSize {
		return "not enough decks for the number of players and starting hand size", false
	}
	return "", true
}

func (g *GameServer) handleJoin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	log.Println("received join request")

	var req JoinReq
	err := json.NewDecoder(r.Body).Decode(&req)
	defer r.Body.Close()
	if err != nil {
		writeParseError(err, w)
		return
	}

	roomID, err := uuid.FromString(req.RoomID)
	if err != nil {
		writeError(w, ErrUnknownRoom)
		return
	}

	token, err := g.registry.Join(roomID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, JoinRes{TokenType: "Bearer", Token: token})
}

func (g *GameServer) handlePlay(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	seat, roomID, err := g.authenticate(r)
	if err != nil {
		writeError(w, err)
		return
	}
	log.Printf("received play request from player %d", seat)

	var action room.Action
	err = json.NewDecoder(r.Body).Decode(&action)
	defer r.Body.Close()
	if err != nil {
		writeParseError(err, w)
		return
	}

	if err := g.registry.Play(action, seat, roomID); err != nil {
		writeError(w, err)
		return
	}
	g.registry.RemoveFinishedRooms()
	w.WriteHeader(http.StatusOK)
}

func (g *GameServer) handleTrick(w http.ResponseWriter, r *http.Request) {
	log.Println("received trick request")
	rm, ok := g.roomFromQuery(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, rm.TrickReceiver().Await(trickTimeout))
}

func (g *GameServer) handlePredictions(w http.ResponseWriter, r *http.Request) {
	log.Println("received predictions request")
	rm, ok := g.roomFromQuery(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, rm.PredictionsReceiver().Await(predictionsTimeout))
}

func (g *GameServer) handleRoundScores(w http.ResponseWriter, r *http.Request) {
	log.Println("received round scores request")
	rm, ok := g.roomFromQuery(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, rm.RoundScoresReceiver().Await(roundScoresTimeout))
}

func (g *GameServer) handleScores(w http.ResponseWriter, r *http.Request) {
	log.Println("received scores request")
	rm, ok := g.roomFromQuery(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, rm.GameScoresReceiver().Await(gameScoresTimeout))
}

func (g *GameServer) handleTrumpSuit(w http.ResponseWriter, r *http.Request) {
	log.Println("received trump suit request")
	rm, ok := g.roomFromQuery(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, rm.TrumpSuitReceiver().Await(trumpSuitTimeout))
}

func (g *GameServer) handleMyHand(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	seat, roomID, err := g.authenticate(r)
	if err != nil {
		writeError(w, err)
		return
	}
	log.Printf("received hand request from player %d", seat)

	hand, err := g.registry.HandOfPlayer(seat, roomID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, hand)
}

// authenticate resolves the Bearer credential on the request into the
// (seat, room) pair it binds
func (g *GameServer) authenticate(r *http.Request) (int, uuid.UUID, error) {
	auth := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(auth, prefix) {
		return 0, uuid.Nil, ErrInvalidToken
	}
	return g.registry.Verify(strings.TrimPrefix(auth, prefix))
}

// roomFromQuery looks up the room named by the room_id query parameter,
// writing the error response itself when there is none
func (g *GameServer) roomFromQuery(w http.ResponseWriter, r *http.Request) (*room.Room, bool) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusNotFound)
		return nil, false
	}
	vals, ok := r.URL.Query()["room_id"]
	if !ok || len(vals) != 1 {
		writeJSON(w, http.StatusBadRequest, ErrorRes{Error: "missing room ID"})
		return nil, false
	}
	roomID, err := uuid.FromString(vals[0])
	if err != nil {
		writeError(w, ErrUnknownRoom)
		return nil, false
	}
	rm, err := g.registry.Room(roomID)
	if err != nil {
		writeError(w, err)
		return nil, false
	}
	return rm, true
}

// writeError maps an error to its HTTP status class and writes it as a
// JSON payload
func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusFromError(err), ErrorRes{Error: err.Error()})
}

func statusFromError(err error) int {
	switch {
	case errors.Is(err, ErrInvalidToken):
		return http.StatusUnauthorized
	case errors.Is(err, ErrUnknownRoom), errors.Is(err, room.ErrUnknownSeat):
		return http.StatusNotFound
	case errors.Is(err, ErrServerFull), errors.Is(err, room.ErrRoomFull):
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	bytes, err := json.Marshal(payload)
	if err != nil {
		log.Println(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(bytes)
}

func writeParseError(err error, w http.ResponseWriter) {
	if err == io.EOF {
		log.Println(err.Error())
		writeJSON(w, http.StatusBadRequest, ErrorRes{Error: "missing body"})
		return
	}
	log.Println(err.Error())
	writeJSON(w, http.StatusBadRequest, ErrorRes{Error: "could not parse request"})
}
