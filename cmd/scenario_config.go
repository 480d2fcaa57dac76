package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	sim "github.com/outbreak-sim/outbreak-sim/sim"
)

// Define struct for YAML
type ScenarioConfig struct {
	Scenarios map[string]Scenario `yaml:"scenarios"`
}

type Scenario struct {
	Size      int    `yaml:"size"`
	Zombie    string `yaml:"zombie"`
	Creatures string `yaml:"creatures"`
	Moves     string `yaml:"moves"`
}

// GetScenarioConfig loads a named scenario preset from a YAML file and
// parses it into a simulation configuration.
func GetScenarioConfig(scenarioFilePath string, name string) (sim.Config, error) {
	data, err := os.ReadFile(scenarioFilePath)
	if err != nil {
		return sim.Config{}, fmt.Errorf("unable to read scenario file: %w", err)
	}

	var cfg ScenarioConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return sim.Config{}, fmt.Errorf("unable to parse scenario file: %w", err)
	}

	scenario, exists := cfg.Scenarios[name]
	if !exists {
		return sim.Config{}, fmt.Errorf("scenario %q not found in %s", name, scenarioFilePath)
	}

	logrus.Infof("Using preset scenario %v", name)
	return sim.ParseConfig(scenario.Size, scenario.Zombie, scenario.Creatures, scenario.Moves)
}
