package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/justinabrahms/atchess-rules/internal/chess"
	"github.com/justinabrahms/atchess-rules/internal/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Parse command line flags
	var showHelp bool
	var configPath string
	flag.BoolVar(&showHelp, "help", false, "Show help information")
	flag.BoolVar(&showHelp, "h", false, "Show help information")
	flag.StringVar(&configPath, "config", "", "Path to a config file (default: ./config.yaml)")
	flag.Parse()

	if showHelp {
		showHelpMessage()
		return
	}

	// Load config
	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.LoadFile(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	// Setup logging
	setupLogging(cfg)

	opts, err := cfg.GameOptions()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid game configuration")
	}
	history := chess.NewLogWithLogger(log.Logger)
	game, err := chess.NewGame(append(opts, chess.WithHistory(history))...)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create game")
	}
	log.Info().Str("game", game.ID()).Str("toMove", game.ToMove().String()).Msg("Game started")

	lines := make(chan string)
	go readLines(os.Stdin, lines)

	// Wait for input or an interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case <-quit:
			log.Info().Msg("Interrupted")
			return
		case line, ok := <-lines:
			if !ok {
				log.Info().Msg("Input closed")
				return
			}
			if done := handle(game, history, cfg.Game.HistoryWindow, line); done {
				return
			}
		}
	}
}

func setupLogging(cfg *config.Config) {
	if cfg.Development.Debug {
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	} else {
		log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	}
	zerolog.SetGlobalLevel(cfg.Level())
}

func readLines(r io.Reader, out chan<- string) {
	defer close(out)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		out <- scanner.Text()
	}
	if err := scanner.Err(); err != nil {
		log.Error().Err(err).Msg("Failed to read input")
	}
}

// handle runs one input line and reports whether the session is over.
func handle(game *chess.Game, history *chess.Log, window int, line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}

	switch strings.ToLower(fields[0]) {
	case "quit", "exit":
		return true
	case "history":
		for _, r := range history.Last(window) {
			fmt.Println(r)
		}
		return false
	case "captured":
		for _, c := range []chess.Color{chess.White, chess.Black} {
			fmt.Printf("%s took %d: %v\n", c, len(game.CapturedBy(c)), game.CapturedBy(c))
		}
		return false
	case "castle":
		if len(fields) != 2 {
			log.Warn().Str("input", line).Msg("Usage: castle <rook cell>")
			return false
		}
		rook, err := chess.ParseCell(fields[1])
		if err != nil {
			log.Warn().Err(err).Msg("Invalid cell")
			return false
		}
		report(game.Castling(rook))
		return false
	}

	if len(fields) < 2 || len(fields) > 3 {
		log.Warn().Str("input", line).Msg("Usage: <from> <to> [promotion]")
		return false
	}
	from, err := chess.ParseCell(fields[0])
	if err != nil {
		log.Warn().Err(err).Msg("Invalid cell")
		return false
	}
	to, err := chess.ParseCell(fields[1])
	if err != nil {
		log.Warn().Err(err).Msg("Invalid cell")
		return false
	}
	if len(fields) == 3 {
		report(game.MoveWithPromotion(from, to, parsePromotion(fields[2])))
		return false
	}
	report(game.MoveToPosition(from, to))
	return false
}

func report(check bool, err error) {
	if err != nil {
		var merr *chess.MoveError
		if errors.As(err, &merr) {
			log.Warn().Str("op", merr.Op).Str("reason", merr.Err.Error()).Msg("Move refused")
			return
		}
		log.Error().Err(err).Msg("Move failed")
		return
	}
	if check {
		fmt.Println("Check!")
	}
}

func parsePromotion(p string) chess.Kind {
	switch strings.ToLower(p) {
	case "q":
		return chess.Queen
	case "r":
		return chess.Rook
	case "b":
		return chess.Bishop
	case "n":
		return chess.Knight
	default:
		return chess.Pawn
	}
}

func showHelpMessage() {
	fmt.Println(`chess - play a two-player game of standard chess on the console

USAGE:
    chess [OPTIONS]

OPTIONS:
    -h, --help         Show this help message
    -config <path>     Read configuration from <path>

INPUT (one command per line):
    E2 E4              Move the piece on E2 to E4
    E7 E8 N            Move and promote (Q, R, B or N; default Q)
    castle H1          Castle with the rook on H1
    history            Show the most recent moves
    captured           Show the pieces each side has taken
    quit               Leave the game

CONFIGURATION:
    Read from config.yaml in the current directory or ./config, and from
    CHESS_* environment variables.

        development:
          debug: false
          log_level: info
        game:
          first_player: white
          legacy_rollback: false
          history_window: 8`)
}
