package main

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"shopmate/internal/config"
	"shopmate/internal/db"
	"shopmate/internal/mcp"
	"shopmate/internal/recommend"
)

// Version is set via -ldflags at build time.
var Version = "dev"

// cliCommands contains known CLI subcommands.
var cliCommands = map[string]bool{
	"serve": true, "process": true, "products": true, "product": true,
	"reset": true, "checklist": true,
	"cart": true, "cart-add": true, "cart-update": true,
	"cart-remove": true, "cart-clear": true,
	"help": true,
}

// isCLIMode determines if we should run CLI vs MCP server.
func isCLIMode() bool {
	if len(os.Args) < 2 {
		return false // No args → MCP server
	}
	arg := os.Args[1]
	// Known subcommand → CLI
	if cliCommands[arg] {
		return true
	}
	// --help or --version → CLI
	if arg == "--help" || arg == "-h" || arg == "--version" || arg == "-v" {
		return true
	}
	return false // Default → MCP server
}

// isHelpOrVersion returns true if the user is requesting help or version info.
func isHelpOrVersion() bool {
	if len(os.Args) < 2 {
		return false
	}
	arg := os.Args[1]
	return arg == "--help" || arg == "-h" || arg == "--version" || arg == "-v" || arg == "help"
}

// isTerminal returns true if stdin is a terminal (not piped).
func isTerminal() bool {
	stat, _ := os.Stdin.Stat()
	return (stat.Mode() & os.ModeCharDevice) != 0
}

// printBanner displays a friendly banner when run interactively without args.
func printBanner() {
	fmt.Println(`
   ____  _                                 _
  / ___|| |__   ___  _ __  _ __ ___   __ _| |_ ___
  \___ \| '_ \ / _ \| '_ \| '_ ` + "`" + ` _ \ / _` + "`" + ` | __/ _ \
   ___) | | | | (_) | |_) | | | | | | (_| | ||  __/
  |____/|_| |_|\___/| .__/|_| |_| |_|\__,_|\__\___|
                    |_|

  Checklist-to-cart shopping assistant

  Usage: shopmate <command> [options]
         shopmate --help

  MCP server mode requires piped input.`)
}

func main() {
	// No args + interactive terminal → show banner and exit
	if len(os.Args) < 2 && isTerminal() {
		printBanner()
		return
	}

	// Handle --help/--version before DB init (no DB needed)
	if isHelpOrVersion() {
		app := newCLIApp(nil, nil, nil)
		if err := app.Run(os.Args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: could not determine home directory: %v\n", err)
		os.Exit(1)
	}

	baseDir := filepath.Join(homeDir, ".shopmate")

	cfg, err := config.Load(baseDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to load config: %v\n", err)
		os.Exit(1)
	}

	database, err := db.Init(cfg.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to initialize database: %v\n", err)
		os.Exit(1)
	}
	defer database.Close()
	db.ConfigurePool(database, cfg.DBMaxOpenConns, cfg.DBPath == "")

	engine := recommend.NewEngine(rand.NewSource(time.Now().UnixNano()))

	// CLI mode: known subcommand
	if isCLIMode() {
		app := newCLIApp(database, engine, cfg)
		if err := app.Run(os.Args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Unknown argument + terminal → show error (don't start MCP server)
	if len(os.Args) >= 2 && isTerminal() {
		fmt.Fprintf(os.Stderr, "error: unknown command %q\n", os.Args[1])
		fmt.Fprintf(os.Stderr, "Run 'shopmate --help' for usage.\n")
		os.Exit(1)
	}

	// Warn about unknown disabled tool/type names before serving
	for _, name := range mcp.ValidateDisabledTools(cfg.DisabledTools) {
		fmt.Fprintf(os.Stderr, "warning: unknown disabled tool %q\n", name)
	}
	for _, name := range mcp.ValidateDisabledTypes(cfg.DisabledTypes) {
		fmt.Fprintf(os.Stderr, "warning: unknown disabled type %q\n", name)
	}

	// MCP server mode (default)
	if err := mcp.Run(database, engine, cfg, Version); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
