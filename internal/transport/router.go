package transport

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/goodnatureofminers/matchledger/internal/mining"
	"github.com/goodnatureofminers/matchledger/internal/model"
	"github.com/goodnatureofminers/matchledger/internal/node"
	"github.com/goodnatureofminers/matchledger/internal/peer"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type handler struct {
	node   Node
	logger *zap.Logger
}

// NewRouter wires the node API, health and metrics endpoints.
func NewRouter(n Node, logger *zap.Logger) *gin.Engine {
	h := &handler{node: n, logger: logger}

	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(logger), requestMetrics())

	r.GET("/mine_block", h.mineBlock)
	r.GET("/get_chain", h.getChain)
	r.POST("/connect_node", h.connectNode)
	r.GET("/update_chain", h.updateChain)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": statusHealthy})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	return r
}

func (h *handler) mineBlock(c *gin.Context) {
	res, err := h.node.Mine(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	if res.Outcome == mining.OutcomeNoWork {
		c.Status(http.StatusNoContent)
		return
	}

	block := res.Block
	resp := mineResponse{
		Message:      msgMined,
		Index:        block.Index,
		Timestamp:    block.Timestamp,
		Edition:      block.Edition,
		PreviousHash: block.PreviousHash,
		Result:       block.Result,
	}
	if res.RetireErr != nil {
		resp.Warning = fmt.Sprintf("artifacts could not be retired: %v", res.RetireErr)
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handler) getChain(c *gin.Context) {
	chain := h.node.Chain()
	c.JSON(http.StatusOK, model.ChainResponse{Chain: chain, Length: len(chain)})
}

func (h *handler) connectNode(c *gin.Context) {
	var req connectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	if len(req.Nodes) == 0 {
		c.JSON(http.StatusBadRequest, errorResponse{Error: msgNoNodes})
		return
	}

	peers, err := h.node.ConnectPeers(req.Nodes)
	switch {
	case errors.Is(err, node.ErrNoPeers), errors.Is(err, peer.ErrMalformedAddress):
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, connectResponse{Message: msgConnected, TotalNodes: peers})
}

func (h *handler) updateChain(c *gin.Context) {
	updated, err := h.node.Reconcile(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	msg := msgUpToDate
	if updated {
		msg = msgUpdated
	}
	c.JSON(http.StatusOK, messageResponse{Message: msg})
}
