package netsub

// frame is the wire envelope for one collective message relayed between
// the hub (site 0) and a client. The payload itself is a contiguous real
// buffer encoding complex pairs in real-imag order; frame only adds the
// addressing the hub needs to route it (From/To site, and the
// (Basename, Generation) rendezvous key).
type frame struct {
	Kind       string    `json:"kind"`
	Basename   string    `json:"basename"`
	Generation uint64    `json:"generation"`
	From       int       `json:"from"`
	To         int       `json:"to"`
	Data       []float64 `json:"data"`
}

const (
	kindScatterPiece = "scatter_piece"
	kindAllToAllPiece = "a2a_piece"
)
