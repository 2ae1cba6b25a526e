package game

import (
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

// Snapshot is the JSON state broadcast to debug stream clients
type Snapshot struct {
	Tick      uint64  `json:"tick"`
	ActorX    float64 `json:"actorX"`
	ActorY    float64 `json:"actorY"`
	Height    float64 `json:"height"`
	Sliding   bool    `json:"sliding"`
	Weather   string  `json:"weather"`
	Score     int     `json:"score"`
	Lives     int     `json:"lives"`
	Platforms int     `json:"platforms"`
	Hazards   int     `json:"hazards"`
	Landed    bool    `json:"landed"`
	Fell      bool    `json:"fell"`
	Obstacle  bool    `json:"obstacle"`
	Collected int     `json:"collected"`
	Crashed   int     `json:"crashed"`
}

// snapshot captures the current tick for the debug stream
func (g *Game) snapshot(ev Events) Snapshot {
	return Snapshot{
		Tick:      g.tick,
		ActorX:    g.actor.X,
		ActorY:    g.actor.Y,
		Height:    g.actor.Height,
		Sliding:   g.actor.Slide.Sliding,
		Weather:   g.weather.String(),
		Score:     g.score,
		Lives:     g.lives,
		Platforms: g.world.Arena.Len(),
		Hazards:   len(g.world.Hazards),
		Landed:    ev.DidLand,
		Fell:      ev.FellIntoWater,
		Obstacle:  ev.HitObstacle,
		Collected: len(ev.Collected),
		Crashed:   len(ev.Crashed),
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Local debugging tool, any origin is fine
	},
}

// DebugStream pushes tick snapshots to attached websocket clients. Slow or
// broken clients are dropped rather than allowed to stall the game loop.
type DebugStream struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
}

// NewDebugStream creates a stream with no clients
func NewDebugStream() *DebugStream {
	return &DebugStream{
		clients: make(map[*websocket.Conn]bool),
	}
}

// Start serves the websocket endpoint at /ws on the given address in a
// background goroutine
func (d *DebugStream) Start(addr string) {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", d.handleWS)

	go func() {
		log.Printf("debug stream listening on %s", addr)
		if err := http.ListenAndServe(addr, mux); err != nil {
			log.Printf("debug stream stopped: %v", err)
		}
	}()
}

func (d *DebugStream) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("debug stream upgrade failed: %v", err)
		return
	}

	d.mu.Lock()
	d.clients[conn] = true
	d.mu.Unlock()
}

// Publish sends a snapshot to every attached client
func (d *DebugStream) Publish(s Snapshot) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for conn := range d.clients {
		if err := conn.WriteJSON(s); err != nil {
			conn.Close()
			delete(d.clients, conn)
		}
	}
}
