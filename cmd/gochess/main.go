// gochess plays chess against the built-in engine on the terminal.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/trinhtuanphong123/gochess/internal/board"
	"github.com/trinhtuanphong123/gochess/internal/engine"
	"github.com/trinhtuanphong123/gochess/internal/game"
	"github.com/trinhtuanphong123/gochess/internal/storage"
)

var (
	difficulty = flag.String("difficulty", "medium", "engine difficulty: easy, medium or hard")
	humanColor = flag.String("color", "white", "side the human plays: white or black")
	moveTime   = flag.Duration("time", 0, "engine move time budget (0 = difficulty default)")
	startFEN   = flag.String("fen", "", "start from a FEN position instead of the initial one")
	noStore    = flag.Bool("nostore", false, "disable preference/statistics persistence")
)

func main() {
	flag.Parse()

	eng := engine.New()
	switch *difficulty {
	case "easy":
		eng.SetDifficulty(engine.Easy)
	case "medium":
		eng.SetDifficulty(engine.Medium)
	case "hard":
		eng.SetDifficulty(engine.Hard)
	default:
		log.Fatalf("unknown difficulty %q", *difficulty)
	}

	human := board.White
	if *humanColor == "black" {
		human = board.Black
	} else if *humanColor != "white" {
		log.Fatalf("unknown color %q", *humanColor)
	}

	var store *storage.Storage
	if !*noStore {
		var err error
		store, err = storage.OpenDefault()
		if err != nil {
			log.Printf("storage unavailable: %v", err)
		} else {
			defer store.Close()
		}
	}

	sess, err := newSession(eng)
	if err != nil {
		log.Fatal(err)
	}

	start := time.Now()
	run(sess, human, store)

	if store != nil && sess.IsOver() {
		recordResult(store, sess, human, eng.Difficulty(), time.Since(start))
	}
}

func newSession(eng *engine.Engine) (*game.Session, error) {
	if *startFEN != "" {
		return game.NewSessionFromFEN(*startFEN, eng)
	}
	return game.NewSession(eng), nil
}

func run(sess *game.Session, human board.Color, store *storage.Storage) {
	scanner := bufio.NewScanner(os.Stdin)

	for !sess.IsOver() {
		pos := sess.Position()
		fmt.Print(pos)

		if pos.SideToMove != human {
			move, ok := sess.RequestAIMove(*moveTime)
			if !ok {
				break // no legal moves; status already terminal
			}
			result, err := sess.Apply(move)
			if err != nil {
				log.Fatalf("engine produced illegal move %s: %v", move, err)
			}
			announce(move, result)
			continue
		}

		fmt.Print("your move> ")
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())

		switch {
		case line == "":
			continue
		case line == "quit":
			return
		case line == "undo":
			// Take back the engine's reply as well, so it is the
			// human's turn again.
			if !sess.Undo() {
				fmt.Println("nothing to undo")
				continue
			}
			sess.Undo()
		case line == "moves":
			for _, m := range sess.Position().LegalMoves(human) {
				fmt.Printf("%s ", m)
			}
			fmt.Println()
		case strings.HasPrefix(line, "save "):
			saveGame(store, sess, strings.TrimSpace(strings.TrimPrefix(line, "save ")))
		default:
			move, err := sess.Position().ParseMove(line)
			if err != nil {
				fmt.Println(err)
				continue
			}
			result, err := sess.Apply(move)
			if err != nil {
				fmt.Println(err)
				continue
			}
			announce(move, result)
		}
	}

	fmt.Print(sess.Position())
	fmt.Printf("game over: %s\n", sess.Status())
}

func announce(m board.Move, r game.MoveResult) {
	fmt.Printf("played %s", m)
	if r.Captured != board.NoPiece {
		fmt.Printf(" (captured %s)", r.Captured.Type())
	}
	switch {
	case r.IsCheckmate:
		fmt.Print(" checkmate")
	case r.IsStalemate:
		fmt.Print(" stalemate")
	case r.IsCheck:
		fmt.Print(" check")
	}
	fmt.Println()
}

func saveGame(store *storage.Storage, sess *game.Session, id string) {
	if store == nil {
		fmt.Println("storage disabled")
		return
	}
	if id == "" {
		fmt.Println("usage: save <id>")
		return
	}

	moves := make([]string, 0, len(sess.History()))
	for _, m := range sess.History() {
		moves = append(moves, m.String())
	}

	err := store.SaveGame(&storage.SavedGame{
		ID:     id,
		Moves:  moves,
		Result: sess.Status().String(),
	})
	if err != nil {
		log.Printf("save failed: %v", err)
		return
	}
	fmt.Printf("saved %d moves as %q\n", len(moves), id)
}

func recordResult(store *storage.Storage, sess *game.Session, human board.Color, diff engine.Difficulty, elapsed time.Duration) {
	result := storage.GameResult{
		Difficulty: storage.Difficulty(diff),
		Duration:   elapsed,
	}
	switch sess.Status() {
	case board.StatusCheckmate:
		// The side to move is mated; the human won if that side is
		// the engine's.
		result.Won = sess.Position().SideToMove != human
	case board.StatusStalemate, board.StatusDraw:
		result.Draw = true
	}

	if err := store.RecordGame(result); err != nil {
		log.Printf("record game: %v", err)
	}
}
