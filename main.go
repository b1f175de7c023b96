package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joshm20/gridsheet/config"
	"github.com/joshm20/gridsheet/format"
	"github.com/joshm20/gridsheet/gui"
	"github.com/joshm20/gridsheet/lint"
	"github.com/joshm20/gridsheet/session"
	"github.com/joshm20/gridsheet/trace"
	"github.com/joshm20/gridsheet/tui"
)

// Version information - can be overridden at build time with:
// go build -ldflags "-X main.Version=v1.2.3"
var (
	Version = "dev"     // Version number (set by git tag at build time)
	Commit  = "unknown" // Git commit hash
	Date    = "unknown" // Build date
)

func main() {
	var (
		showVersion = flag.Bool("version", false, "Show version information")
		showHelp    = flag.Bool("help", false, "Show help information")
		configPath  = flag.String("config", "", "Path to config file (default: platform config dir)")
		guiMode     = flag.Bool("gui", false, "Use the graphical (fyne) frontend instead of the terminal UI")
		loadFile    = flag.String("load", "", "Batch-load a .gs cell-definition file at startup")
		lintFile    = flag.String("lint", "", "Validate every formula in a .gs file and exit, without starting the UI")
		fmtFile     = flag.String("fmt", "", "Canonicalize every formula in a .gs file in place and exit")
	)

	flag.Parse()

	if *showVersion {
		fmt.Printf("gridsheet %s\n", Version)
		if Commit != "unknown" {
			fmt.Printf("Commit: %s\n", Commit)
		}
		if Date != "unknown" {
			fmt.Printf("Built: %s\n", Date)
		}
		os.Exit(0)
	}

	if *showHelp {
		printHelp()
		os.Exit(0)
	}

	if *lintFile != "" {
		runLint(*lintFile)
		return
	}

	if *fmtFile != "" {
		runFormat(*fmtFile)
		return
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	sess := session.New(cfg.Grid.Rows, cfg.Grid.Cols)
	if cfg.Trace.Enabled {
		f, err := os.Create(cfg.Trace.OutputFile) // #nosec G304 -- configured trace output path
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening trace file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		sess.Trace = trace.New(f)
	}

	if *loadFile != "" {
		if err := sess.LoadFile(*loadFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error loading %s: %v\n", *loadFile, err)
			os.Exit(1)
		}
	}

	if *guiMode {
		gui.Run(sess, cfg)
		return
	}

	t := tui.NewTUI(sess, cfg)
	if err := t.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "TUI error: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFrom(path)
	}
	return config.Load()
}

func runLint(path string) {
	issues, err := lint.LintFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if issues.Len() == 0 {
		fmt.Println("no issues found")
		return
	}
	fmt.Println(issues.Error())
	os.Exit(1)
}

func runFormat(path string) {
	errs, err := format.FormatFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	for _, e := range errs {
		fmt.Fprintf(os.Stderr, "warning: %v\n", e)
	}
	fmt.Printf("formatted %s\n", path)
}

func printHelp() {
	fmt.Printf(`gridsheet %s

Usage: gridsheet [options]

Options:
  -help              Show this help message
  -version           Show version information
  -config PATH       Use the config file at PATH instead of the platform default
  -gui               Use the graphical (fyne) frontend instead of the terminal UI
  -load FILE         Batch-load a .gs cell-definition file at startup
  -lint FILE         Validate every formula in a .gs file and exit
  -fmt FILE          Canonicalize every formula in a .gs file in place and exit

Examples:
  # Start the terminal spreadsheet with an empty grid
  gridsheet

  # Load a batch of cell definitions at startup
  gridsheet -load examples/budget.gs

  # Validate a batch file before loading it interactively
  gridsheet -lint examples/budget.gs && gridsheet -load examples/budget.gs

  # Canonicalize formula text in place
  gridsheet -fmt examples/budget.gs
`, Version)
}
