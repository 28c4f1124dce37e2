// Package main provides the vidbox entry point.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/alecthomas/kingpin/v2"
	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/vidbox/internal/api/shell"
	"github.com/osa030/vidbox/internal/app/filter"
	"github.com/osa030/vidbox/internal/app/session"
	"github.com/osa030/vidbox/internal/app/source"
	"github.com/osa030/vidbox/internal/infra/catalog"
	"github.com/osa030/vidbox/internal/infra/config"
	"github.com/osa030/vidbox/internal/infra/logger"
)

var (
	app         = kingpin.New("vidbox", "vidbox video catalog session")
	configPath  = app.Flag("config", "Path to config file").Envar("VIDBOX_CONFIG").String()
	catalogPath = app.Flag("catalog", "Path to a catalog file (replaces configured sources)").String()
	verbose     = app.Flag("verbose", "Enable verbose (DEBUG) logging").Short('v').Bool()
	logfile     = app.Flag("logfile", "Path to log file (default: stderr)").String()
	seed        = app.Flag("seed", "Random seed for PLAY_RANDOM (0: seeded from clock)").Uint64()

	// list-videos command
	listVideosCmd = app.Command("list-videos", "Print the catalog and exit")

	// list-filters command
	listFiltersCmd = app.Command("list-filters", "List playback filters and exit")
)

func init() {
	// shell command (default) - no need to store the command
	app.Command("shell", "Start the interactive shell (default)").Default()
}

func main() {
	// Load .env file if it exists (errors are ignored)
	_ = godotenv.Load()

	// Parse command
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	if command == listFiltersCmd.FullCommand() {
		printFilters()
		return
	}

	var opts []config.Option
	opts = append(opts, config.WithCatalogFile(*catalogPath), config.WithRandomSeed(*seed))
	if *verbose {
		opts = append(opts, config.WithLogLevel("debug"))
	}

	cfg, err := config.Load(*configPath, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	loggerConfig := logger.Config{
		Output: cfg.Log.Output,
		Level:  cfg.Log.Level,
	}
	// Override with command-line flags if specified
	if *logfile != "" {
		loggerConfig.Output = *logfile
	}
	closer, err := logger.Init(loggerConfig)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer closer.Close()

	zlog.Debug().Msgf("config loaded: path=%q sources=%v", *configPath, cfg.SourceTypes())

	if err := run(cfg, command); err != nil {
		zlog.Error().Msgf("vidbox error: %v", err)
		closer.Close()
		os.Exit(1)
	}
}

// run loads the catalog and runs the selected command. Using a separate
// function ensures deferred cleanup runs before exiting with an error.
func run(cfg *config.Config, command string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	lib, err := loadLibrary(ctx, cfg)
	if err != nil {
		return err
	}

	in := shell.NewLineReader(ctx, os.Stdin)
	sess := session.NewManager(cfg, lib, os.Stdout, in)

	if command == listVideosCmd.FullCommand() {
		sess.NumberOfVideos()
		sess.ShowAllVideos()
		return nil
	}

	zlog.Info().Msgf("starting shell: session_id=%s videos=%d", sess.ID(), lib.Count())
	return shell.New(sess, in, os.Stdout, cfg.Shell).Run(ctx)
}

// loadLibrary loads every configured source into an in-memory library.
func loadLibrary(ctx context.Context, cfg *config.Config) (*catalog.Library, error) {
	chain, err := source.NewChainFromConfig(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create catalog sources")
	}

	videos, err := chain.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load catalog")
	}

	lib, err := catalog.NewLibrary(videos)
	if err != nil {
		return nil, errors.Wrap(err, "invalid catalog")
	}

	zlog.Info().Msgf("catalog loaded: videos=%d", lib.Count())
	return lib, nil
}

// printFilters prints available filters.
func printFilters() {
	printFiltersTo(os.Stdout)
}

func printFiltersTo(w io.Writer) {
	fmt.Fprintln(w, "Available Filters:")
	for _, name := range filter.RegisteredNames() {
		f := filter.GetRegistered()[name]()
		codes := strings.Join(f.ReturnCodes(), ", ")
		fmt.Fprintf(w, "  %-30s - %s [codes: %s]\n", f.Name(), f.Description(), codes)
	}
}
