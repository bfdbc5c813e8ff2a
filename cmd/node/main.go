package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/matchledger/internal/consensus"
	"github.com/goodnatureofminers/matchledger/internal/ledger"
	"github.com/goodnatureofminers/matchledger/internal/matching"
	"github.com/goodnatureofminers/matchledger/internal/metrics"
	"github.com/goodnatureofminers/matchledger/internal/mining"
	"github.com/goodnatureofminers/matchledger/internal/node"
	"github.com/goodnatureofminers/matchledger/internal/peer"
	"github.com/goodnatureofminers/matchledger/internal/transport"
	"github.com/goodnatureofminers/matchledger/internal/workitem"
)

type config struct {
	Addr         string        `long:"addr" env:"MATCHLEDGER_ADDR" description:"HTTP listen address" default:":5000"`
	NodeName     string        `long:"node-name" env:"MATCHLEDGER_NODE_NAME" description:"node name used in logs and metrics"`
	LogJSON      bool          `long:"log-json" env:"MATCHLEDGER_LOG_JSON" description:"emit production JSON logs"`
	Backend      string        `long:"backend" env:"MATCHLEDGER_BACKEND" description:"work item backend" choice:"s3" choice:"fs" default:"s3"`
	Bucket       string        `long:"bucket" env:"MATCHLEDGER_BUCKET" description:"versioned S3 bucket holding preference files"`
	S3Endpoint   string        `long:"s3-endpoint" env:"MATCHLEDGER_S3_ENDPOINT" description:"custom S3 endpoint URL"`
	S3Region     string        `long:"s3-region" env:"MATCHLEDGER_S3_REGION" description:"S3 region"`
	S3PathStyle  bool          `long:"s3-path-style" env:"MATCHLEDGER_S3_PATH_STYLE" description:"use path-style S3 addressing"`
	S3AccessKey  string        `long:"s3-access-key" env:"MATCHLEDGER_S3_ACCESS_KEY" description:"static S3 access key id"`
	S3SecretKey  string        `long:"s3-secret-key" env:"MATCHLEDGER_S3_SECRET_KEY" description:"static S3 secret access key"`
	DataDir      string        `long:"data-dir" env:"MATCHLEDGER_DATA_DIR" description:"root directory of the fs backend" default:"./editions"`
	PeerTimeout  time.Duration `long:"peer-timeout" env:"MATCHLEDGER_PEER_TIMEOUT" description:"timeout of one peer ledger fetch" default:"5s"`
	PeerWorkers  int           `long:"peer-workers" env:"MATCHLEDGER_PEER_WORKERS" description:"concurrent peer ledger fetches" default:"4"`
	PeerRPS      int           `long:"peer-rps" env:"MATCHLEDGER_PEER_RPS" description:"peer requests per second, 0 for unlimited" default:"0"`
	TieBreak     string        `long:"tie-break" env:"MATCHLEDGER_TIE_BREAK" description:"equal-length ledger policy" choice:"older-head" choice:"newer-head" default:"older-head"`
	MineInterval time.Duration `long:"mine-interval" env:"MATCHLEDGER_MINE_INTERVAL" description:"autonomous mining interval, 0 disables" default:"0"`
	Peers        []string      `long:"peer" env:"MATCHLEDGER_PEERS" env-delim:"," description:"initial peer address (repeatable)"`
}

type workItemSource interface {
	mining.WorkItemSource
	consensus.WorkItems
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger, err := newLogger(cfg.LogJSON)
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if cfg.NodeName == "" {
		cfg.NodeName, _ = os.Hostname()
	}
	logger = logger.With(zap.String("node", cfg.NodeName))

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("matchledger node failed", zap.Error(err))
	}
}

func newLogger(jsonOutput bool) (*zap.Logger, error) {
	if jsonOutput {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	source, err := newWorkItemSource(ctx, cfg, logger.Named("workitem"))
	if err != nil {
		return fmt.Errorf("init work item source: %w", err)
	}
	tieBreak, err := consensus.ParseTieBreak(cfg.TieBreak)
	if err != nil {
		return err
	}

	l := ledger.New()
	registry := peer.NewRegistry()
	if len(cfg.Peers) > 0 {
		if err := registry.AddAll(cfg.Peers); err != nil {
			return fmt.Errorf("initial peers: %w", err)
		}
	}

	resolverMetrics := metrics.NewResolver(cfg.NodeName)
	validator, err := consensus.NewValidator(l, source, resolverMetrics, logger.Named("validator"))
	if err != nil {
		return err
	}
	resolver, err := consensus.NewResolver(
		l,
		registry,
		peer.NewClient(cfg.PeerTimeout, cfg.PeerRPS, metrics.NewPeerClient()),
		validator,
		resolverMetrics,
		logger.Named("resolver"),
		consensus.WithTieBreak(tieBreak),
		consensus.WithFetchWorkers(cfg.PeerWorkers),
	)
	if err != nil {
		return err
	}
	miner, err := mining.NewOrchestrator(
		l,
		resolver,
		source,
		matching.NewSolver(),
		metrics.NewMiner(cfg.NodeName),
		logger.Named("miner"),
	)
	if err != nil {
		return err
	}
	n, err := node.New(l, registry, resolver, miner, logger.Named("node"))
	if err != nil {
		return err
	}

	if cfg.MineInterval > 0 {
		go func() {
			if err := n.Run(ctx, cfg.MineInterval); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("mining loop stopped", zap.Error(err))
			}
		}()
	}

	s := &http.Server{
		Addr:              cfg.Addr,
		Handler:           cors.Default().Handler(transport.NewRouter(n, logger.Named("http"))),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      5 * time.Minute,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down the http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.Shutdown(shutdownCtx); err != nil {
			logger.Error("Failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("Starting HTTP server",
		zap.String("addr", cfg.Addr),
		zap.String("backend", cfg.Backend),
		zap.Strings("peers", registry.Peers()),
	)
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func newWorkItemSource(ctx context.Context, cfg config, logger *zap.Logger) (workItemSource, error) {
	sourceMetrics := metrics.NewWorkItemSource(cfg.Backend)
	switch cfg.Backend {
	case "fs":
		return workitem.NewFSSource(cfg.DataDir, sourceMetrics, logger)
	case "s3":
		client, err := workitem.NewS3Client(ctx, workitem.S3Config{
			Region:          cfg.S3Region,
			Endpoint:        cfg.S3Endpoint,
			PathStyle:       cfg.S3PathStyle,
			AccessKeyID:     cfg.S3AccessKey,
			SecretAccessKey: cfg.S3SecretKey,
		})
		if err != nil {
			return nil, err
		}
		return workitem.NewS3Source(client, cfg.Bucket, sourceMetrics, logger)
	default:
		return nil, fmt.Errorf("unknown backend %q", cfg.Backend)
	}
}
