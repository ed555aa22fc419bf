package netsub

import (
	"context"
	"fmt"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MeKo-Tech/dfft2d/locality"
)

// freeAddr picks an unused localhost port the same way Start/Dial expect to
// reach it: ws://host:port/ws for dialing, host:port for the hub's listener.
func freeAddr(t *testing.T) (listenAddr, dialAddr string) {
	t.Helper()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	addr := l.Addr().String()
	require.NoError(t, l.Close())

	return addr, fmt.Sprintf("ws://%s/ws", addr)
}

// startWorld brings up a Hub (site 0) and siteCount-1 Clients, all
// registered with each other, and returns every locality's Exchanger plus a
// teardown func.
func startWorld(t *testing.T, siteCount int) ([]locality.Exchanger, func()) {
	t.Helper()

	listenAddr, dialAddr := freeAddr(t)

	hub := NewHub(listenAddr, siteCount)

	startCtx, cancelStart := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelStart()

	startErr := make(chan error, 1)

	go func() { startErr <- hub.Start(startCtx) }()

	exchangers := make([]locality.Exchanger, siteCount)
	exchangers[0] = hub

	clients := make([]*Client, 0, siteCount-1)

	for site := 1; site < siteCount; site++ {
		dialCtx, cancelDial := context.WithTimeout(context.Background(), 5*time.Second)

		var (
			client *Client
			err    error
		)

		// The hub's /ws handler isn't registered until Start's goroutine
		// reaches ListenAndServe; retry the dial briefly rather than
		// racing it.
		for deadline := time.Now().Add(5 * time.Second); time.Now().Before(deadline); {
			client, err = Dial(dialCtx, dialAddr, siteCount, site)
			if err == nil {
				break
			}

			time.Sleep(10 * time.Millisecond)
		}

		cancelDial()
		require.NoError(t, err)

		clients = append(clients, client)
		exchangers[site] = client
	}

	require.NoError(t, <-startErr)

	teardown := func() {
		for _, c := range clients {
			_ = c.CloseConn()
		}

		_ = hub.Shutdown(context.Background())
	}

	return exchangers, teardown
}

func TestHubAndClient_ScatterRoundTrip(t *testing.T) {
	const p = 3

	exchangers, teardown := startWorld(t, p)
	defer teardown()

	comms := make([]locality.Communicator, p)

	for site := 0; site < p; site++ {
		c, err := exchangers[site].NewCommunicator("scatter-roundtrip", p, site)
		require.NoError(t, err)

		comms[site] = c
	}

	const root = 0

	var wg sync.WaitGroup

	got := make([]float64, p)

	for site := 0; site < p; site++ {
		site := site

		wg.Add(1)

		go func() {
			defer wg.Done()

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if site == root {
				buffers := make([][]float64, p)
				for j := range buffers {
					buffers[j] = []float64{float64(10 + j)}
				}

				own, err := exchangers[site].ScatterTo(ctx, comms[site], 0, buffers)
				require.NoError(t, err)
				got[site] = own[0]

				return
			}

			buf, err := exchangers[site].ScatterFrom(ctx, comms[site], 0, root)
			require.NoError(t, err)
			got[site] = buf[0]
		}()
	}

	wg.Wait()

	for site := 0; site < p; site++ {
		assert.Equalf(t, float64(10+site), got[site], "site=%d", site)
	}
}

func TestHubAndClient_AllToAll(t *testing.T) {
	const p = 3

	exchangers, teardown := startWorld(t, p)
	defer teardown()

	comms := make([]locality.Communicator, p)

	for site := 0; site < p; site++ {
		c, err := exchangers[site].NewCommunicator("a2a", p, site)
		require.NoError(t, err)

		comms[site] = c
	}

	var wg sync.WaitGroup

	recv := make([][][]float64, p)

	for site := 0; site < p; site++ {
		site := site

		wg.Add(1)

		go func() {
			defer wg.Done()

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			send := make([][]float64, p)
			for j := range send {
				send[j] = []float64{float64(site*10 + j)}
			}

			out, err := exchangers[site].AllToAll(ctx, comms[site], 0, send)
			require.NoError(t, err)
			recv[site] = out
		}()
	}

	wg.Wait()

	for site := 0; site < p; site++ {
		for src := 0; src < p; src++ {
			assert.Equalf(t, float64(src*10+site), recv[site][src][0], "site=%d src=%d", site, src)
		}
	}
}
