package main

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/wilfierd/whodunit/internal/logging"
	"github.com/wilfierd/whodunit/pkg/mystery"
)

var (
	castPath string
	plain    bool
	noColor  bool
	verbose  bool
	logJSON  bool

	rootCmd = &cobra.Command{
		Use:   "whodunit",
		Short: "An interactive murder-mystery deduction shell",
		Long: `whodunit hosts a manor murder investigation. Feed it clues
("s.no edwin", "r.yes library") and it deduces the culprit, the weapon
and the room by checking every possible scenario against what you know.`,
		Run: func(cmd *cobra.Command, args []string) {
			runShell()
		},
	}
)

func init() {
	rootCmd.Flags().StringVar(&castPath, "cast", "", "Path to a JSON or YAML cast file; empty uses the built-in manor cast")
	rootCmd.Flags().BoolVar(&plain, "plain", false, "Read plain lines from stdin instead of the interactive editor")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "Disable styled output")
	rootCmd.Flags().BoolVar(&verbose, "verbose", false, "Log every recorded clue and deduction to stderr")
	rootCmd.Flags().BoolVar(&logJSON, "log-json", false, "Write logs as JSON")
}

func runShell() {
	level := "warn"
	if verbose {
		level = "debug"
	}
	logger := logging.New(logging.Config{Level: level, JSON: logJSON}).
		With("session", uuid.NewString())

	cast, err := loadCast(castPath)
	if err != nil {
		log.Fatalf("cannot load cast: %v", err)
	}

	session, err := mystery.NewSession(cast, mystery.WithLogger(logger))
	if err != nil {
		log.Fatalf("cannot start session: %v", err)
	}

	color := !noColor && isatty.IsTerminal(os.Stdout.Fd())
	shell := &repl{
		session:  session,
		reader:   NewInputReader(plain),
		renderer: newRenderer(os.Stdout, color),
		logger:   logger,
	}
	if err := shell.run(); err != nil {
		log.Fatalf("shell stopped: %v", err)
	}
}

func loadCast(path string) (mystery.Cast, error) {
	if path == "" {
		return mystery.DefaultCast(), nil
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return mystery.CastFromYAML(path)
	default:
		return mystery.CastFromJSON(path)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("cannot execute command: %v", err)
	}
}
