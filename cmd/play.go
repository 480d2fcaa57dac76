package cmd

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/outbreak-sim/outbreak-sim/sim"
)

// keyDirections maps WASD keys to movement directions.
var keyDirections = map[rune]sim.Direction{
	'w': sim.Up,
	'a': sim.Left,
	's': sim.Down,
	'd': sim.Right,
}

// playCmd starts the interactive keyboard-driven mode
var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Drive the outbreak interactively with WASD keys",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		cfg, err := resolveConfig()
		if err != nil {
			logrus.Fatalf("Invalid simulation input: %v", err)
		}

		game, err := runInteractive(cfg)
		if err != nil {
			logrus.Fatalf("Interactive mode failed: %v", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Game over!")
		fmt.Fprintln(out, game.summary())
	},
}

// runInteractive owns the terminal for the duration of the session
// and returns the final game state once the player quits.
func runInteractive(cfg sim.Config) (*gameState, error) {
	game, err := newGameState(cfg)
	if err != nil {
		return nil, err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	defer screen.Fini()

	for {
		drawText(screen, game.render())
		screen.Show()

		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
				return game, nil
			}
			if ev.Key() != tcell.KeyRune {
				continue
			}
			switch r := unicode.ToLower(ev.Rune()); r {
			case 'q':
				return game, nil
			case 'r':
				game, err = newGameState(cfg)
				if err != nil {
					return nil, err
				}
				game.message = "Game reset!"
			default:
				if d, ok := keyDirections[r]; ok {
					game.step(d)
				}
			}
		}
	}
}

// drawText paints a multi-line string onto the screen from the top
// left corner.
func drawText(screen tcell.Screen, text string) {
	screen.Clear()
	for y, line := range strings.Split(text, "\n") {
		x := 0
		for _, r := range line {
			screen.SetContent(x, y, r, nil, tcell.StyleDefault)
			x++
		}
	}
}
