package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/MrSnakeDoc/svcreport/internal/config"
	"github.com/MrSnakeDoc/svcreport/internal/index"
	"github.com/MrSnakeDoc/svcreport/internal/logger"
	"github.com/MrSnakeDoc/svcreport/internal/output"
	"github.com/MrSnakeDoc/svcreport/internal/redis"
	"github.com/MrSnakeDoc/svcreport/internal/report"
	"github.com/MrSnakeDoc/svcreport/internal/sources/inventory"
	redisstore "github.com/MrSnakeDoc/svcreport/internal/store/redis"
	"github.com/MrSnakeDoc/svcreport/internal/version"
)

var (
	ErrUsage        = errors.New("usage: svcreport <basedir> <dstdir>")
	ErrNotDirectory = errors.New("is not a valid directory")
)

type App struct {
	cfg    *config.Config
	logger logger.Logger
	now    func() time.Time
	newID  func() string
}

func New(cfg *config.Config, log logger.Logger) *App {
	return &App{
		cfg:    cfg,
		logger: log,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// Run generates the report for args = [basedir, dstdir].
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	src, dst := args[0], args[1]
	for _, dir := range []string{src, dst} {
		if err := checkDir(dir); err != nil {
			return err
		}
	}

	policy, err := report.ParsePolicy(a.cfg.MissingRefs)
	if err != nil {
		return err
	}

	runID := a.newID()
	started := a.now()
	log := a.logger.With(logger.String("run_id", runID))
	log.Info("generating report",
		logger.String("source", src),
		logger.String("destination", dst),
		logger.String("version", version.Version))

	inv, err := inventory.NewLoader(src, log).Load()
	if err != nil {
		return err
	}

	idx := index.New()
	idx.AddServices(inv.Services)
	idx.AddChainEntries(inv.Chains)
	idx.AddSans(inv.Sans)
	idx.AddComponents(inv.Components)
	idx.AddLinks(inv.Links)
	log.Debug("built index",
		logger.Int("services", idx.Stats()["services"]),
		logger.Int("chains", idx.Stats()["chains"]),
		logger.Int("sans", idx.Stats()["sans"]))

	r, err := report.NewBuilder(idx, policy, log).Build()
	if err != nil {
		return err
	}

	if err := output.NewCSVWriter(dst, log).Write(r); err != nil {
		return err
	}

	if a.cfg.XLSX {
		if err := output.NewXLSXWriter(dst, log).Write(r); err != nil {
			return err
		}
	}

	if a.cfg.Manifest {
		m := &output.Manifest{
			RunID:       runID,
			GeneratedAt: started.UTC(),
			Version:     version.Version,
			Source:      src,
			Destination: dst,
			Inputs:      inv.Counts(),
			Outputs:     r.Counts(),
			Unresolved:  r.Unresolved,
		}
		if err := output.WriteManifest(dst, m); err != nil {
			return err
		}
	}

	if a.cfg.PublishEnabled() {
		run := redisstore.Run{ID: runID, GeneratedAt: started, Version: version.Version}
		if err := a.publish(ctx, log, run, r); err != nil {
			return err
		}
	}

	log.Info("report written",
		logger.String("destination", dst),
		logger.Duration("elapsed", a.now().Sub(started)))
	return nil
}

func (a *App) publish(ctx context.Context, log logger.Logger, run redisstore.Run, r *report.Report) error {
	ctx, cancel := context.WithTimeout(ctx, a.cfg.PublishTimeout)
	defer cancel()

	client, err := redis.New(ctx, redis.ConnectOptions{
		Addr:           a.cfg.RedisAddr,
		User:           a.cfg.RedisUser,
		Password:       a.cfg.RedisPassword,
		DB:             a.cfg.RedisDB,
		ConnectTimeout: a.cfg.RedisConnectTimeout,
		RetryInterval:  a.cfg.RedisRetryInterval,
		MaxWait:        a.cfg.RedisMaxWait,
	}, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := client.Close(); err != nil {
			log.Warnf("failed to close redis: %v", err)
		}
	}()

	if err := redisstore.NewPublisher(client, a.cfg.RedisPrefix, a.cfg.RedisTTL).Publish(ctx, run, r); err != nil {
		return err
	}
	log.Info("report published to redis",
		logger.String("addr", a.cfg.RedisAddr),
		logger.String("prefix", a.cfg.RedisPrefix))
	return nil
}

func checkDir(path string) error {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%s %w", path, ErrNotDirectory)
	}
	return nil
}
