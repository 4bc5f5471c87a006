package main

import (
	"errors"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v2"

	"github.com/Makepad-fr/tadalist/internal/app"
	runner "github.com/Makepad-fr/tadalist/internal/cli"
	"github.com/Makepad-fr/tadalist/internal/config"
	"github.com/Makepad-fr/tadalist/internal/logging"
	"github.com/Makepad-fr/tadalist/internal/mcp"
	"github.com/Makepad-fr/tadalist/internal/todo"
	"github.com/Makepad-fr/tadalist/internal/tui"
	"github.com/Makepad-fr/tadalist/internal/ui"
	"github.com/Makepad-fr/tadalist/internal/web"
)

// newApp creates the CLI application with all commands.
func newApp() *cli.App {
	app := &cli.App{
		Name:    "tada",
		Usage:   "An in-memory todo list",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "Config file (default: tada.toml, then user config dir)"},
			&cli.StringFlag{Name: "theme", Usage: "Theme: classic|neon|mono"},
			&cli.StringFlag{Name: "color", Usage: "Color: auto|always|never"},
			&cli.StringFlag{Name: "log-level", Usage: "Log level: debug|info|warn|error"},
			&cli.StringFlag{Name: "log-file", Usage: "Write logs to this file"},
		},
		Action: tuiAction,
		Commands: []*cli.Command{
			tuiCmd(),
			serveCmd(),
			replCmd(),
			mcpCmd(),
		},
	}
	// errors are printed once by main
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// env is what every command needs: config, a logger and a fresh store.
type env struct {
	cfg    *config.Config
	logger *log.Logger
	closer io.Closer
	store  *todo.Store
}

func (e *env) Close() { _ = e.closer.Close() }

// loadEnv resolves config (file, env, then flags) and builds the logger.
// Interactive commands pass quiet so logs never hit the terminal unless a
// log file is configured.
func loadEnv(c *cli.Context, quiet bool) (*env, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, cli.Exit(err.Error(), 2)
	}
	if c.IsSet("theme") {
		cfg.Theme = c.String("theme")
	}
	if c.IsSet("color") {
		cfg.Color = c.String("color")
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	if c.IsSet("log-file") {
		cfg.LogFile = c.String("log-file")
	}
	if c.IsSet("addr") {
		cfg.Addr = c.String("addr")
	}
	if err := cfg.Validate(); err != nil {
		return nil, cli.Exit(err.Error(), 2)
	}

	ui.SetTheme(cfg.Theme)
	ui.SetColorMode(cfg.Color)

	opts := logging.DefaultOptions()
	opts.Level = cfg.LogLevel
	opts.File = cfg.LogFile
	if quiet && cfg.LogFile == "" {
		opts.Output = io.Discard
	}
	logger, closer, err := logging.New(opts)
	if err != nil {
		return nil, cli.Exit(err.Error(), 1)
	}
	if cfg.Path != "" {
		logger.Debug("config loaded", "path", cfg.Path)
	}
	return &env{cfg: cfg, logger: logger, closer: closer, store: todo.NewStore()}, nil
}

func tuiCmd() *cli.Command {
	return &cli.Command{
		Name:   "tui",
		Usage:  "Interactive todo list (default)",
		Flags:  []cli.Flag{&cli.BoolFlag{Name: "no-alt-screen", Usage: "Render inline instead of in the alternate screen"}},
		Action: tuiAction,
	}
}

func tuiAction(c *cli.Context) error {
	e, err := loadEnv(c, true)
	if err != nil {
		return err
	}
	defer e.Close()

	altScreen := e.cfg.AltScreen && !c.Bool("no-alt-screen")
	return tui.Run(c.Context, e.store, tui.Options{AltScreen: altScreen}, app.WithLogger(e.logger))
}

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the todo page over HTTP",
		Flags: []cli.Flag{&cli.StringFlag{Name: "addr", Aliases: []string{"a"}, Usage: "Listen address (default 127.0.0.1:8080)"}},
		Action: func(c *cli.Context) error {
			e, err := loadEnv(c, false)
			if err != nil {
				return err
			}
			defer e.Close()

			srv, h, err := web.NewServer(e.store, e.cfg.Addr, e.logger)
			if err != nil {
				return err
			}
			defer h.Close()
			return web.Run(c.Context, srv, e.logger)
		},
	}
}

func replCmd() *cli.Command {
	return &cli.Command{
		Name:  "repl",
		Usage: "Line-oriented session: add/done/rm/ls commands on stdin",
		Flags: []cli.Flag{&cli.StringFlag{Name: "prompt", Usage: "Prompt printed before each line"}},
		Action: func(c *cli.Context) error {
			e, err := loadEnv(c, false)
			if err != nil {
				return err
			}
			defer e.Close()

			r := runner.NewRunner(e.store, c.App.Writer, c.App.ErrWriter, runner.Options{
				Prompt: c.String("prompt"),
				Logger: e.logger,
			})
			defer r.Close()
			if code := r.Run(os.Stdin); code != 0 {
				return cli.Exit("", code)
			}
			return nil
		},
	}
}

func mcpCmd() *cli.Command {
	return &cli.Command{
		Name:  "mcp",
		Usage: "Serve the todo tools over MCP stdio",
		Action: func(c *cli.Context) error {
			e, err := loadEnv(c, false)
			if err != nil {
				return err
			}
			defer e.Close()
			return mcp.Run(e.store, Version, e.logger)
		},
	}
}

// exitCode maps an error to the process exit status (1 error, 2 usage).
func exitCode(err error) int {
	var ec cli.ExitCoder
	if errors.As(err, &ec) {
		return ec.ExitCode()
	}
	return 1
}
