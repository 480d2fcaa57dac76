package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/outbreak-sim/outbreak-sim/sim"
)

var (
	// CLI flags shared by the subcommands
	logLevel     string // Log verbosity level
	worldSize    int    // Grid size (N for an NxN world)
	zombieStart  string // Seed zombie position, e.g. "3,1" or "(3,1)"
	creatureList string // Creature positions, e.g. "0,1 1,2 1,1"
	moveString   string // Movement sequence, e.g. "RDRU"
	scenarioFile string // YAML scenario presets file
	scenarioName string // Named scenario inside the presets file

	// CLI flags for the run subcommand
	verbose     bool // Print the per-step event log
	showMap     bool // Draw the final state as an ASCII map
	showMetrics bool // Print run counters after the result
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "outbreak-sim",
	Short: "Zombie outbreak simulator on a toroidal grid",
}

// setupLogging applies the --log flag to the global logger.
func setupLogging() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

// resolveConfig builds the simulation input from a scenario preset or
// from the direct flags. With neither given it falls back to the
// canonical RDRU example.
func resolveConfig() (sim.Config, error) {
	if scenarioFile != "" {
		return GetScenarioConfig(scenarioFile, scenarioName)
	}
	if worldSize == 0 && zombieStart == "" && creatureList == "" && moveString == "" {
		logrus.Info("No input flags given, running the canonical example")
		return sim.ParseConfig(4, "3,1", "0,1 1,2 1,1", "RDRU")
	}
	if worldSize == 0 || zombieStart == "" {
		return sim.Config{}, fmt.Errorf("--size and --zombie must be provided together")
	}
	return sim.ParseConfig(worldSize, zombieStart, creatureList, moveString)
}

// consoleHandler mirrors the classic simulation log: one line per
// movement and per infection.
func consoleHandler(w io.Writer) sim.EventHandler {
	return func(ev sim.Event) {
		switch e := ev.(type) {
		case sim.ZombieMoved:
			fmt.Fprintf(w, "zombie %d moved to %s\n", e.ZombieID, e.NewPosition)
		case sim.CreatureInfected:
			fmt.Fprintf(w, "zombie %d infected creature at %s\n", e.ZombieID, e.Position)
		}
	}
}

// runCmd executes one batch simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the outbreak simulation to completion",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		cfg, err := resolveConfig()
		if err != nil {
			logrus.Fatalf("Invalid simulation input: %v", err)
		}

		out := cmd.OutOrStdout()
		var handler sim.EventHandler
		if verbose {
			handler = consoleHandler(out)
		}

		simulation, err := sim.NewSimulationFromConfig(cfg, handler)
		if err != nil {
			logrus.Fatalf("Could not construct simulation: %v", err)
		}

		result, err := simulation.Run()
		if err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}

		if verbose {
			fmt.Fprintln(out)
		}
		fmt.Fprintln(out, result.FormatOutput())
		if showMap {
			fmt.Fprintln(out)
			fmt.Fprintln(out, DrawResult(cfg.WorldSize, result))
		}
		if showMetrics {
			simulation.Metrics().Print()
		}
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	rootCmd.PersistentFlags().IntVar(&worldSize, "size", 0, "Grid size (N for an NxN world)")
	rootCmd.PersistentFlags().StringVar(&zombieStart, "zombie", "", "Seed zombie position, e.g. '3,1' or '(3,1)'")
	rootCmd.PersistentFlags().StringVar(&creatureList, "creatures", "", "Creature positions, e.g. '0,1 1,2 1,1'")
	rootCmd.PersistentFlags().StringVar(&moveString, "moves", "", "Movement sequence, e.g. 'RDRU'")
	rootCmd.PersistentFlags().StringVar(&scenarioFile, "scenario-file", "", "YAML file with scenario presets")
	rootCmd.PersistentFlags().StringVar(&scenarioName, "scenario", "example", "Scenario name inside the presets file")

	runCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show the detailed movement log")
	runCmd.Flags().BoolVar(&showMap, "map", false, "Draw the final state as an ASCII map")
	runCmd.Flags().BoolVar(&showMetrics, "metrics", false, "Print run counters after the result")

	// Attach subcommands to `root`
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(watchCmd)
}
