package cmd

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/outbreak-sim/outbreak-sim/sim"
)

var watchAddr string // Listen address for the watch server

// watchCmd serves simulation runs as websocket event streams
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Serve the simulation as a websocket event stream",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		cfg, err := resolveConfig()
		if err != nil {
			logrus.Fatalf("Invalid simulation input: %v", err)
		}

		server := newWatchServer(cfg)
		logrus.Infof("Watch server listening on %s", watchAddr)
		if err := http.ListenAndServe(watchAddr, server); err != nil {
			logrus.Fatalf("Watch server failed: %v", err)
		}
	},
}

func init() {
	watchCmd.Flags().StringVar(&watchAddr, "addr", ":8080", "Listen address for the watch server")
}

// eventFrame is the JSON wire format for one simulation event.
type eventFrame struct {
	Type        string `json:"type"`
	ZombieID    int    `json:"zombie_id"`
	X           int    `json:"x"`
	Y           int    `json:"y"`
	NewZombieID int    `json:"new_zombie_id,omitempty"`
}

// resultFrame closes the stream with the final snapshot.
type resultFrame struct {
	Type      string   `json:"type"`
	Zombies   [][2]int `json:"zombies"`
	Creatures [][2]int `json:"creatures"`
}

// watchServer runs one fresh simulation per websocket connection and
// streams its events as JSON frames, ending with a result frame.
type watchServer struct {
	cfg      sim.Config
	upgrader websocket.Upgrader
}

func newWatchServer(cfg sim.Config) *watchServer {
	return &watchServer{
		cfg: cfg,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true // Allow connections from any origin
			},
		},
	}
}

func (s *watchServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logrus.Errorf("Failed to upgrade connection: %v", err)
		return
	}
	defer conn.Close()

	var streamErr error
	handler := func(ev sim.Event) {
		if streamErr != nil {
			return
		}
		streamErr = conn.WriteJSON(frameFor(ev))
	}

	simulation, err := sim.NewSimulationFromConfig(s.cfg, handler)
	if err != nil {
		logrus.Errorf("Could not construct simulation: %v", err)
		return
	}

	result, err := simulation.Run()
	if err != nil {
		logrus.Errorf("Simulation failed: %v", err)
		return
	}
	if streamErr != nil {
		logrus.Warnf("Client dropped mid-stream: %v", streamErr)
		return
	}

	if err := conn.WriteJSON(resultFrameFor(result)); err != nil {
		logrus.Warnf("Failed to send result frame: %v", err)
	}
}

func frameFor(ev sim.Event) eventFrame {
	switch e := ev.(type) {
	case sim.ZombieMoved:
		return eventFrame{
			Type:     "zombie_moved",
			ZombieID: e.ZombieID,
			X:        e.NewPosition.X,
			Y:        e.NewPosition.Y,
		}
	case sim.CreatureInfected:
		return eventFrame{
			Type:        "creature_infected",
			ZombieID:    e.ZombieID,
			X:           e.Position.X,
			Y:           e.Position.Y,
			NewZombieID: e.NewZombieID,
		}
	}
	return eventFrame{Type: "unknown"}
}

func resultFrameFor(result *sim.Result) resultFrame {
	frame := resultFrame{
		Type:      "result",
		Zombies:   make([][2]int, 0, len(result.Zombies)),
		Creatures: make([][2]int, 0, len(result.SurvivingCreatures)),
	}
	for _, z := range result.Zombies {
		frame.Zombies = append(frame.Zombies, [2]int{z.Position.X, z.Position.Y})
	}
	for _, c := range result.SurvivingCreatures {
		frame.Creatures = append(frame.Creatures, [2]int{c.Position().X, c.Position().Y})
	}
	return frame
}
