// Package netsub implements locality.Exchanger over a real network using
// gorilla/websocket in a hub-and-spoke topology: locality 0 runs a Hub
// that every other locality (1..P-1) dials into as a Client. All traffic
// between two non-hub localities is relayed through the hub, the same
// register/broadcast channel shape a WebSocket UI hub would use,
// repurposed here from UI broadcast to generation-keyed collective
// rendezvous.
package netsub

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/MeKo-Tech/dfft2d/locality"
)

// Hub is the locality.Exchanger implementation for site 0. It accepts one
// WebSocket connection per remote locality and relays frames between them.
type Hub struct {
	site      int
	siteCount int
	router    *router

	mu    sync.RWMutex
	peers map[int]*peerConn

	httpServer *http.Server
	addr       string

	connected chan struct{}
	once      sync.Once
}

type peerConn struct {
	site int
	conn *websocket.Conn
	send chan frame
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	CheckOrigin:     func(_ *http.Request) bool { return true },
}

// NewHub creates a Hub for a world of siteCount localities, listening at addr.
func NewHub(addr string, siteCount int) *Hub {
	return &Hub{
		site:      0,
		siteCount: siteCount,
		router:    newRouter(),
		peers:     make(map[int]*peerConn),
		addr:      addr,
		connected: make(chan struct{}),
	}
}

// Start runs the hub's HTTP server and blocks until every expected peer
// has connected and registered its site id, or ctx is cancelled.
func (h *Hub) Start(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", h.handleWebSocket)

	h.httpServer = &http.Server{
		Addr:              h.addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)

	go func() {
		errCh <- h.httpServer.ListenAndServe()
	}()

	select {
	case <-h.connected:
		return nil
	case err := <-errCh:
		return fmt.Errorf("netsub: hub listen: %w", err)
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Shutdown stops the hub's HTTP server.
func (h *Hub) Shutdown(ctx context.Context) error {
	if h.httpServer == nil {
		return nil
	}

	return h.httpServer.Shutdown(ctx)
}

type helloMsg struct {
	Site int `json:"site"`
}

func (h *Hub) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	var hello helloMsg
	if err := conn.ReadJSON(&hello); err != nil {
		conn.Close()
		return
	}

	pc := &peerConn{site: hello.Site, conn: conn, send: make(chan frame, 64)}

	h.mu.Lock()
	h.peers[hello.Site] = pc
	allConnected := len(h.peers) == h.siteCount-1
	h.mu.Unlock()

	if allConnected {
		h.once.Do(func() { close(h.connected) })
	}

	go h.writePump(pc)
	h.readPump(pc)
}

func (h *Hub) writePump(pc *peerConn) {
	for fr := range pc.send {
		if err := pc.conn.WriteJSON(fr); err != nil {
			return
		}
	}
}

func (h *Hub) readPump(pc *peerConn) {
	defer pc.conn.Close()

	for {
		var fr frame
		if err := pc.conn.ReadJSON(&fr); err != nil {
			return
		}

		h.route(fr)
	}
}

// route delivers a frame locally if it targets the hub's own site,
// otherwise forwards it to the connected peer it targets.
func (h *Hub) route(fr frame) {
	if fr.To == h.site {
		h.deliverLocal(fr)
		return
	}

	h.mu.RLock()
	pc, ok := h.peers[fr.To]
	h.mu.RUnlock()

	if !ok {
		return
	}

	pc.send <- fr
}

func (h *Hub) deliverLocal(fr frame) {
	k := routerKey(fr.Basename, fr.Generation)

	switch fr.Kind {
	case kindScatterPiece:
		h.router.deliverScatter(k, fr.Data)
	case kindAllToAllPiece:
		h.router.deliverAllToAll(k, h.siteCount, fr.From, fr.Data)
	}
}

// send transmits a frame from the hub to whichever site it targets,
// reusing route's local/remote split.
func (h *Hub) send(fr frame) {
	h.route(fr)
}

func (h *Hub) NewCommunicator(basename string, siteCount, thisSite int) (locality.Communicator, error) {
	return locality.NewCommunicator(basename, siteCount, thisSite)
}

func (h *Hub) Close(comm locality.Communicator) error {
	h.router.forget(comm.Basename() + "/")
	return nil
}

func (h *Hub) ScatterTo(
	ctx context.Context,
	comm locality.Communicator,
	generation uint64,
	buffers [][]float64,
) ([]float64, error) {
	if len(buffers) != comm.SiteCount() {
		return nil, locality.ErrPeerCountMismatch
	}

	for j, buf := range buffers {
		if j == h.site {
			continue
		}

		h.send(frame{
			Kind: kindScatterPiece, Basename: comm.Basename(), Generation: generation,
			From: h.site, To: j, Data: cloneFloats(buf),
		})
	}

	return cloneFloats(buffers[h.site]), nil
}

// ScatterFrom blocks until the root identified by root delivers this
// site's piece. Since every non-hub-destined relay already resolved the
// path by the time a frame reaches deliverLocal, root itself is not
// needed to find the rendezvous slot — it is accepted for interface
// symmetry with the scatter scheme's call shape.
func (h *Hub) ScatterFrom(
	ctx context.Context,
	comm locality.Communicator,
	generation uint64,
	root int,
) ([]float64, error) {
	ch := h.router.scatterChan(routerKey(comm.Basename(), generation))

	select {
	case data := <-ch:
		return data, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (h *Hub) AllToAll(
	ctx context.Context,
	comm locality.Communicator,
	generation uint64,
	send [][]float64,
) ([][]float64, error) {
	if len(send) != comm.SiteCount() {
		return nil, locality.ErrPeerCountMismatch
	}

	k := routerKey(comm.Basename(), generation)
	h.router.deliverAllToAll(k, comm.SiteCount(), h.site, cloneFloats(send[h.site]))

	for j, buf := range send {
		if j == h.site {
			continue
		}

		h.send(frame{
			Kind: kindAllToAllPiece, Basename: comm.Basename(), Generation: generation,
			From: h.site, To: j, Data: cloneFloats(buf),
		})
	}

	slot := h.router.a2aSlotFor(k, comm.SiteCount())

	select {
	case <-slot.done:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	recv := make([][]float64, comm.SiteCount())

	slot.mu.Lock()
	for src, data := range slot.got {
		recv[src] = data
	}
	slot.mu.Unlock()

	return recv, nil
}

func cloneFloats(in []float64) []float64 {
	out := make([]float64, len(in))
	copy(out, in)

	return out
}
