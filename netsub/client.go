package netsub

import (
	"context"
	"fmt"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/MeKo-Tech/dfft2d/locality"
)

// Client is the locality.Exchanger implementation for sites 1..P-1. It
// dials the hub once and relays every collective call over that single
// connection; the hub is responsible for forwarding frames on to other
// clients, so a Client never talks to another Client directly.
type Client struct {
	site      int
	siteCount int
	router    *router

	conn    *websocket.Conn
	sendMu  sync.Mutex
	readErr chan error
}

// Dial connects to a hub at addr and announces this client's site id.
func Dial(ctx context.Context, addr string, siteCount, thisSite int) (*Client, error) {
	dialer := websocket.Dialer{}

	conn, _, err := dialer.DialContext(ctx, addr, nil)
	if err != nil {
		return nil, fmt.Errorf("netsub: dialing hub: %w", err)
	}

	if err := conn.WriteJSON(helloMsg{Site: thisSite}); err != nil {
		conn.Close()
		return nil, fmt.Errorf("netsub: announcing site: %w", err)
	}

	c := &Client{
		site:      thisSite,
		siteCount: siteCount,
		router:    newRouter(),
		conn:      conn,
		readErr:   make(chan error, 1),
	}

	go c.readPump()

	return c, nil
}

// CloseConn closes the underlying connection. It is safe to call once.
func (c *Client) CloseConn() error {
	return c.conn.Close()
}

func (c *Client) readPump() {
	for {
		var fr frame
		if err := c.conn.ReadJSON(&fr); err != nil {
			c.readErr <- err
			return
		}

		k := routerKey(fr.Basename, fr.Generation)

		switch fr.Kind {
		case kindScatterPiece:
			c.router.deliverScatter(k, fr.Data)
		case kindAllToAllPiece:
			c.router.deliverAllToAll(k, c.siteCount, fr.From, fr.Data)
		}
	}
}

func (c *Client) writeFrame(fr frame) error {
	c.sendMu.Lock()
	defer c.sendMu.Unlock()

	return c.conn.WriteJSON(fr)
}

func (c *Client) NewCommunicator(basename string, siteCount, thisSite int) (locality.Communicator, error) {
	return locality.NewCommunicator(basename, siteCount, thisSite)
}

func (c *Client) Close(comm locality.Communicator) error {
	c.router.forget(comm.Basename() + "/")
	return nil
}

func (c *Client) ScatterTo(
	ctx context.Context,
	comm locality.Communicator,
	generation uint64,
	buffers [][]float64,
) ([]float64, error) {
	if len(buffers) != comm.SiteCount() {
		return nil, locality.ErrPeerCountMismatch
	}

	for j, buf := range buffers {
		if j == c.site {
			continue
		}

		fr := frame{
			Kind: kindScatterPiece, Basename: comm.Basename(), Generation: generation,
			From: c.site, To: j, Data: cloneFloats(buf),
		}

		if err := c.writeFrame(fr); err != nil {
			return nil, fmt.Errorf("netsub: scatter-to write: %w", err)
		}
	}

	return cloneFloats(buffers[c.site]), nil
}

func (c *Client) ScatterFrom(
	ctx context.Context,
	comm locality.Communicator,
	generation uint64,
	root int,
) ([]float64, error) {
	ch := c.router.scatterChan(routerKey(comm.Basename(), generation))

	select {
	case data := <-ch:
		return data, nil
	case err := <-c.readErr:
		return nil, fmt.Errorf("netsub: connection lost while waiting on scatter: %w", err)
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (c *Client) AllToAll(
	ctx context.Context,
	comm locality.Communicator,
	generation uint64,
	send [][]float64,
) ([][]float64, error) {
	if len(send) != comm.SiteCount() {
		return nil, locality.ErrPeerCountMismatch
	}

	k := routerKey(comm.Basename(), generation)
	c.router.deliverAllToAll(k, comm.SiteCount(), c.site, cloneFloats(send[c.site]))

	for j, buf := range send {
		if j == c.site {
			continue
		}

		fr := frame{
			Kind: kindAllToAllPiece, Basename: comm.Basename(), Generation: generation,
			From: c.site, To: j, Data: cloneFloats(buf),
		}

		if err := c.writeFrame(fr); err != nil {
			return nil, fmt.Errorf("netsub: all-to-all write: %w", err)
		}
	}

	slot := c.router.a2aSlotFor(k, comm.SiteCount())

	select {
	case <-slot.done:
	case err := <-c.readErr:
		return nil, fmt.Errorf("netsub: connection lost during all-to-all: %w", err)
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
