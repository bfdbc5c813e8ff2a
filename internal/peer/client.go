package peer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/goodnatureofminers/matchledger/internal/model"
	"go.uber.org/ratelimit"
)

// ErrUnreachable wraps every failure to obtain a peer's ledger.
var ErrUnreachable = errors.New("peer unreachable")

const chainPath = "/get_chain"

// Client fetches peer ledgers over HTTP.
type Client struct {
	http    *resty.Client
	limiter ratelimit.Limiter
	metrics Metrics
}

// NewClient builds a Client. rps <= 0 disables outbound rate limiting.
func NewClient(timeout time.Duration, rps int, metrics Metrics) *Client {
	limiter := ratelimit.NewUnlimited()
	if rps > 0 {
		limiter = ratelimit.New(rps)
	}

	return &Client{
		http: resty.New().
			SetTimeout(timeout).
			SetHeader("Accept", "application/json"),
		limiter: limiter,
		metrics: metrics,
	}
}

// FetchChain requests the full ledger of the peer at address (host:port).
func (c *Client) FetchChain(ctx context.Context, address string) (chain []model.Block, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("get_chain", err, started)
	}()

	c.limiter.Take()
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrUnreachable, address, err)
	}

	var out model.ChainResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		ForceContentType("application/json").
		Get("http://" + address + chainPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnreachable, address, err)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("%w: %s: status %d", ErrUnreachable, address, resp.StatusCode())
	}
	if out.Length != len(out.Chain) {
		return nil, fmt.Errorf("%w: %s: length %d does not match %d blocks", ErrUnreachable, address, out.Length, len(out.Chain))
	}

	return out.Chain, nil
}
