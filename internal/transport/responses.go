package transport

import "github.com/goodnatureofminers/matchledger/internal/model"

const (
	msgMined      = "block successfully mined!"
	msgConnected  = "Connected node. Blockchain contains the following connected nodes:"
	msgUpdated    = "Blockchain successfully updated."
	msgUpToDate   = "Current blockchain version is already updated."
	msgNoNodes    = "no nodes given"
	statusHealthy = "ok"
)

type mineResponse struct {
	Message      string          `json:"message"`
	Index        int             `json:"index"`
	Timestamp    model.Timestamp `json:"timestamp"`
	Edition      string          `json:"edition"`
	PreviousHash model.Hash      `json:"previous_hash"`
	Result       string          `json:"result"`
	Warning      string          `json:"warning,omitempty"`
}

type connectRequest struct {
	Nodes []string `json:"nodes"`
}

type connectResponse struct {
	Message    string   `json:"message"`
	TotalNodes []string `json:"total_nodes"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}
