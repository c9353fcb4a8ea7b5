// chessmatch plays a short, move-limited chess match between a human on
// stdin and an external move-generating engine, reached either as a child
// process speaking the UCI line protocol or through an HTTP best-move
// endpoint. Positions travel as FEN; moves travel in the four/five
// character text form ("e2e4", "e7e8q").
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"chessmatch/internal/board"
	"chessmatch/internal/engineio"
	"chessmatch/internal/match"
	"chessmatch/internal/storage"
)

var (
	enginePath = flag.String("engine", "", "path to a UCI engine binary")
	endpoint   = flag.String("endpoint", "", "HTTP best-move endpoint, used instead of -engine")
	startFEN   = flag.String("fen", "", "starting position in FEN; empty plays the standard opening position")
	moveLimit  = flag.Int("movelimit", 0, "match length in plies; 0 uses the stored preference")
	moveTime   = flag.Duration("movetime", 0, "engine time per move; 0 uses the stored preference")
	depth      = flag.Int("depth", 0, "engine search depth; 0 leaves the budget to movetime")
	colorFlag  = flag.String("color", "", "side the human plays, w or b; empty uses the stored preference")
	cacheDir   = flag.String("cachedir", "", "engine reply cache directory; empty keeps the cache in memory")
	noStats    = flag.Bool("nostats", false, "do not touch the preferences/stats database")
)

func main() {
	flag.Parse()
	log.SetFlags(0)

	var store *storage.Storage
	prefs := storage.DefaultPreferences()
	if !*noStats {
		dbDir, err := storage.GetDatabaseDir()
		if err != nil {
			log.Fatalf("locating data directory: %v", err)
		}
		store, err = storage.Open(dbDir)
		if err != nil {
			log.Fatalf("opening stats database: %v", err)
		}
		defer store.Close()

		prefs, err = store.LoadPreferences()
		if err != nil {
			log.Fatalf("loading preferences: %v", err)
		}
	}
	mergeFlags(prefs)

	humanColor := board.White
	if !prefs.HumanWhite {
		humanColor = board.Black
	}

	m, err := match.New(match.Config{
		StartFEN:   prefs.StartFEN,
		MoveLimit:  prefs.MoveLimit,
		HumanColor: humanColor,
	})
	if err != nil {
		log.Fatalf("starting match: %v", err)
	}

	client, err := buildClient(prefs)
	if err != nil {
		log.Fatalf("connecting engine: %v", err)
	}
	defer client.Close()

	budget := engineio.Budget{
		MoveTime: time.Duration(prefs.MoveTimeMs) * time.Millisecond,
		Depth:    *depth,
	}

	m.OnMove = func(rec match.MoveRecord) {
		fmt.Printf("%3d. %-7s %s\n", rec.Ply, rec.SAN, rec.Move)
	}

	result := runMatch(m, client, budget, humanColor)
	fmt.Println(result)

	if store != nil {
		if err := store.SavePreferences(prefs); err != nil {
			log.Printf("saving preferences: %v", err)
		}
		if err := store.RecordMatch(outcomeFor(result, humanColor), result.Reason == match.ByMoveLimit); err != nil {
			log.Printf("recording result: %v", err)
		}
	}
}

// mergeFlags overlays explicitly set flags onto the stored preferences.
func mergeFlags(prefs *storage.Preferences) {
	if *enginePath != "" {
		prefs.EnginePath = *enginePath
	}
	if *endpoint != "" {
		prefs.Endpoint = *endpoint
	}
	if *startFEN != "" {
		prefs.StartFEN = *startFEN
	}
	if *moveLimit > 0 {
		prefs.MoveLimit = *moveLimit
	}
	if *moveTime > 0 {
		prefs.MoveTimeMs = int(moveTime.Milliseconds())
	}
	switch *colorFlag {
	case "w":
		prefs.HumanWhite = true
	case "b":
		prefs.HumanWhite = false
	}
}

// buildClient picks the transport and wraps it in the reply cache.
func buildClient(prefs *storage.Preferences) (engineio.Client, error) {
	var inner engineio.Client
	if prefs.Endpoint != "" {
		inner = engineio.NewHTTPClient(prefs.Endpoint)
	} else {
		var err error
		inner, err = engineio.NewProcessClient(prefs.EnginePath)
		if err != nil {
			return nil, err
		}
	}
	return engineio.NewCachedClient(inner, *cacheDir)
}

// runMatch alternates human and engine turns until the match ends.
func runMatch(m *match.Match, client engineio.Client, budget engineio.Budget, humanColor board.Color) match.Result {
	scanner := bufio.NewScanner(os.Stdin)

	for !m.Over() {
		pos := m.Position()
		fmt.Println(pos.String())

		if m.HumanTurn() {
			if !humanTurn(m, scanner) {
				// Stdin closed; adjudicate what is on the board.
				log.Printf("input closed, adjudicating")
				break
			}
			continue
		}
		engineTurn(m, client, budget)
	}

	result, over := m.Result()
	if !over {
		// Early exit path: score the board as a move-limit finish.
		switch balance := m.Position().Material(); {
		case balance > 0:
			result = match.Result{Winner: board.White, Reason: match.ByMoveLimit}
		case balance < 0:
			result = match.Result{Winner: board.Black, Reason: match.ByMoveLimit}
		default:
			result = match.Result{Winner: board.NoColor, Draw: true, Reason: match.ByMoveLimit}
		}
	}
	return result
}

// humanTurn reads moves from stdin until one is accepted. Returns false
// when stdin is exhausted.
func humanTurn(m *match.Match, scanner *bufio.Scanner) bool {
	for {
		fmt.Printf("%s to move> ", m.Turn())
		if !scanner.Scan() {
			return false
		}
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		if err := m.HumanMove(text); err != nil {
			fmt.Printf("rejected: %v\n", err)
			continue
		}
		return true
	}
}

// engineTurn asks the engine for a move; if the reply is illegal or
// missing, falls back to the first legal move rather than forfeiting.
func engineTurn(m *match.Match, client engineio.Client, budget engineio.Budget) {
	text, err := client.BestMove(m.FEN(), budget)
	if err != nil {
		log.Printf("engine error: %v", err)
		playFallback(m)
		return
	}

	if err := m.EngineMove(text); err != nil {
		var illegal *match.IllegalEngineMoveError
		if errors.As(err, &illegal) {
			log.Printf("%v, falling back", illegal)
			playFallback(m)
			return
		}
		log.Printf("engine move failed: %v", err)
	}
}

// playFallback plays the first legal move for the engine's side.
func playFallback(m *match.Match) {
	moves := m.LegalMoves()
	if moves.Len() == 0 {
		return // terminal detection already settled the match
	}
	if err := m.HumanMove(moves.Get(0).String()); err != nil {
		log.Printf("fallback move failed: %v", err)
	}
}

// outcomeFor translates a match result into the human's outcome.
func outcomeFor(r match.Result, humanColor board.Color) storage.Outcome {
	if r.Draw {
		return storage.OutcomeDraw
	}
	if r.Winner == humanColor {
		return storage.OutcomeWin
	}
	return storage.OutcomeLoss
}
