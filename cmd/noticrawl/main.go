package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/noticrawl/pkg/config"
	"github.com/umputun/noticrawl/pkg/content"
	"github.com/umputun/noticrawl/pkg/crawler"
	"github.com/umputun/noticrawl/pkg/feed"
	"github.com/umputun/noticrawl/pkg/metrics"
	"github.com/umputun/noticrawl/pkg/notify"
	"github.com/umputun/noticrawl/pkg/push"
	"github.com/umputun/noticrawl/pkg/repository"
	"github.com/umputun/noticrawl/pkg/scheduler"
	"github.com/umputun/noticrawl/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" default:"config.yml" description:"configuration file"`
	Once   bool   `long:"once" env:"ONCE" description:"crawl all boards once and exit"`

	// common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	setupLog(opts.Debug, opts.NoColor)

	log.Printf("[INFO] starting noticrawl version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	err := run(ctx, opts)
	cancel()

	if err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}

	log.Print("[INFO] shutdown complete")
}

func run(ctx context.Context, opts Opts) error {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// hide credentials from logs
	setupLog(opts.Debug, opts.NoColor, secrets(cfg)...)

	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := repos.Close(); err != nil {
			log.Printf("[WARN] failed to close database: %v", err)
		}
	}()

	sender, err := makeSender(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize push: %w", err)
	}

	dedupCfg := crawler.DeduperConfig{Store: repos.Article, FullScan: cfg.Crawler.FullScan}
	if cfg.Extraction.Enabled {
		dedupCfg.Extractor = content.NewHTTPExtractor(cfg.Extraction.Timeout, cfg.Crawler.UserAgent, cfg.Extraction.MinTextLength)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	crawl := crawler.New(crawler.Config{
		Reader:       feed.NewReader(feed.NewHTTPFetcher(cfg.Crawler.Timeout, cfg.Crawler.UserAgent, cfg.Crawler.Retries)),
		Deduplicator: crawler.NewDeduper(dedupCfg),
		Notifier: notify.NewDispatcher(notify.Config{
			Directory:   repos.Subscriber,
			Sender:      sender,
			Mode:        notify.Mode(cfg.Push.Mode),
			TopicPrefix: cfg.Push.TopicPrefix,
			BodyLimit:   cfg.Push.BodyLimit,
		}),
		Recorder: metrics.New(reg),
	})

	boards := cfg.DomainBoards()
	if opts.Once {
		stats := crawl.Run(ctx, boards)
		log.Printf("[INFO] run %s done in %v, %d new entries, %d notifications, %d failed boards",
			stats.RunID, stats.Duration, stats.NewEntries, stats.Notifications, len(stats.FailedBoards))
		return nil
	}

	sched := scheduler.NewScheduler(scheduler.Params{Runner: crawl, Boards: boards, Interval: cfg.Schedule.Interval})

	g, gctx := errgroup.WithContext(ctx)
	sched.Start(gctx)
	g.Go(func() error {
		<-gctx.Done()
		sched.Stop()
		return nil
	})

	if listen, _ := cfg.GetServerConfig(); listen != "" {
		srv := server.New(server.Params{
			Config:    cfg,
			Database:  server.NewRepositoryAdapter(repos),
			Scheduler: sched,
			Boards:    boards,
			Metrics:   promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
			Version:   revision,
			Debug:     opts.Debug,
		})
		g.Go(func() error { return srv.Run(gctx) })
	}

	return g.Wait()
}

// makeSender returns firebase sender, or nil if push credentials are not configured
func makeSender(ctx context.Context, cfg *config.Config) (notify.Sender, error) {
	if !cfg.PushEnabled() {
		log.Printf("[WARN] push credentials are not configured, notifications disabled")
		return nil, nil
	}
	fcm, err := push.NewFCM(ctx, push.Options{
		CredentialsFile: cfg.Push.CredentialsFile,
		CredentialsJSON: cfg.Push.CredentialsJSON,
		ProjectID:       cfg.Push.ProjectID,
	})
	if errors.Is(err, push.ErrNoCredentials) {
		log.Printf("[WARN] push credentials are not configured, notifications disabled")
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	log.Printf("[INFO] push enabled, mode %s", cfg.Push.Mode)
	return fcm, nil
}

// secrets returns sensitive config values to be masked in logs
func secrets(cfg *config.Config) []string {
	res := []string{cfg.Push.CredentialsJSON}
	if u, err := url.Parse(cfg.Database.DSN); err == nil && u.User != nil {
		if pass, ok := u.User.Password(); ok {
			res = append(res, pass)
		}
	}
	return lo.Compact(res)
}

func setupLog(dbg, noColor bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	if !noColor {
		colorizer := lgr.Mapper{
			ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
			WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
			InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
			DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
			CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
			TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
		}
		logOpts = append(logOpts, lgr.Map(colorizer))
	}
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
