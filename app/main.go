package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"

	log "github.com/go-pkgz/lgr"
	"github.com/umputun/go-flags"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/umputun/jobboard/app/web"
)

var opts struct {
	Listen     string  `short:"l" long:"listen" env:"JOBBOARD_LISTEN" default:":4000" description:"listen address"`
	DB         string  `long:"db" env:"JOBBOARD_DB" default:"jobboard.db" description:"sqlite database file"`
	BaseURL    string  `long:"base-url" env:"JOBBOARD_BASE_URL" description:"base URL path for reverse proxy (e.g., /jobboard)"`
	Seed       bool    `long:"seed" env:"JOBBOARD_SEED" description:"seed default jobs on start if the board is empty"`
	WriteLimit float64 `long:"write-limit" env:"JOBBOARD_WRITE_LIMIT" default:"10" description:"max write requests per second per client, 0 to disable"`
	Dbg        bool    `long:"dbg" env:"JOBBOARD_DEBUG" description:"debug mode"`

	Log struct {
		Enabled         bool   `long:"enabled" env:"ENABLED" description:"enable logging to file"`
		Filename        string `long:"filename" env:"FILENAME" default:"jobboard.log" description:"log file name"`
		MaxSize         int    `long:"max-size" env:"MAX_SIZE" default:"100" description:"max log file size in megabytes"`
		MaxBackups      int    `long:"max-backups" env:"MAX_BACKUPS" default:"7" description:"max number of old log files to keep"`
		MaxAge          int    `long:"max-age" env:"MAX_AGE" default:"0" description:"max days to retain old log files, 0 to keep all"`
		EnabledCompress bool   `long:"enabled-compress" env:"ENABLED_COMPRESS" description:"compress rotated log files"`
	} `group:"log" namespace:"log" env-namespace:"JOBBOARD_LOG"`
}

var revision = "unknown"

func main() {
	fmt.Printf("jobboard %s\n", revision)

	if _, err := flags.Parse(&opts); err != nil {
		os.Exit(2)
	}
	setupLogger(setupLogs(), opts.Dbg)

	defer func() {
		if x := recover(); x != nil {
			log.Printf("[WARN] run time panic:\n%v", x)
			panic(x)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	signals(cancel) // handle SIGQUIT and SIGTERM

	if err := run(ctx); err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	server, err := web.New(web.Config{
		DBPath:      opts.DB,
		BaseURL:     validateBaseURL(opts.BaseURL),
		Version:     revision,
		WriteLimit:  opts.WriteLimit,
		SeedOnStart: opts.Seed,
	})
	if err != nil {
		return fmt.Errorf("failed to create web server: %w", err)
	}
	return server.Run(ctx, opts.Listen)
}

// setupLogs returns the log destination, rotated file if logging to file is enabled
func setupLogs() io.Writer {
	if !opts.Log.Enabled {
		return os.Stdout
	}
	return &lumberjack.Logger{
		Filename:   opts.Log.Filename,
		MaxSize:    opts.Log.MaxSize,
		MaxBackups: opts.Log.MaxBackups,
		MaxAge:     opts.Log.MaxAge,
		Compress:   opts.Log.EnabledCompress,
	}
}

func setupLogger(out io.Writer, dbg bool) {
	if dbg {
		log.Setup(log.Out(out), log.Err(out), log.Debug, log.Msec, log.CallerFunc, log.CallerPkg, log.CallerFile)
		return
	}
	log.Setup(log.Out(out), log.Err(out), log.Msec)
}

// validateBaseURL normalizes base URL, "/" and trailing slashes are dropped
func validateBaseURL(u string) string {
	return strings.TrimRight(u, "/")
}

func signals(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	go func() {
		stacktrace := make([]byte, 8192)
		for sig := range sigChan {
			if sig == syscall.SIGQUIT { // catch SIGQUIT and print stack traces
				length := runtime.Stack(stacktrace, true)
				fmt.Println(string(stacktrace[:length]))
				continue
			}
			cancel() // terminate on SIGTERM
		}
	}()
	signal.Notify(sigChan, syscall.SIGQUIT, syscall.SIGTERM, syscall.SIGINT)
}
