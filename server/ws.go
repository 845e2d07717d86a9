package server

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/scimas/judgment/room"
	"github.com/scimas/judgment/watch"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// FacetUpdate is one message on the websocket stream: which facet changed
// and its new value
type FacetUpdate struct {
	Facet string      `json:"facet"`
	Value interface{} `json:"value"`
}

// handleWS streams every facet change of a room over a websocket, an
// alternative to long polling the individual facet endpoints. Each facet's
// current value is sent once on connect.
func (g *GameServer) handleWS(w http.ResponseWriter, r *http.Request) {
	rm, ok := g.roomFromQuery(w, r)
	if !ok {
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println(err)
		return
	}

	go streamFacets(conn, rm)
}

func streamFacets(conn *websocket.Conn, rm *room.Room) {
	defer conn.Close()

	done := make(chan struct{})
	go func() {
		// the client never needs to send anything; reading only to learn
		// about disconnection
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	updates := make(chan FacetUpdate)
	go watchFacet(done, updates, "trick", rm.TrickReceiver())
	go watchFacet(done, updates, "predictions", rm.PredictionsReceiver())
	go watchFacet(done, updates, "round_scores", rm.RoundScoresReceiver())
	go watchFacet(done, updates, "scores", rm.GameScoresReceiver())
	go watchFacet(done, updates, "trump_suit", rm.TrumpSuitReceiver())

	for {
		select {
		case <-done:
			return
		case update := <-updates:
			if err := conn.WriteJSON(update); err != nil {
				return
			}
		}
	}
}

func watchFacet[T any](done <-chan struct{}, updates chan<- FacetUpdate, facet string, receiver *watch.Receiver[T]) {
	// current value first, then only genuine changes
	pending, ok := receiver.Latest(), true
	for {
		if ok {
			select {
			case updates <- FacetUpdate{Facet: facet, Value: pending}:
			case <-done:
				return
			}
		}
		select {
		case <-done:
			return
		default:
		}
		pending, ok = receiver.AwaitChangeStop(done, time.Second)
	}
}
