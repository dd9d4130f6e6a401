package game

import (
	"bytes"
	"io"

	"gopkg.in/yaml.v3"
)

// PlayState is where a game is in its lifecycle.
type PlayState string

const (
	PlayStateWaiting  PlayState = "waiting"
	PlayStatePlaying  PlayState = "playing"
	PlayStateGameOver PlayState = "game_over"
)

type EventType string

const (
	EventPlay     EventType = "play"
	EventExchange EventType = "exchange"
	EventPass     EventType = "pass"
	// EventEndTray records the points moved at the end of the game for
	// tiles left in the trays.
	EventEndTray EventType = "end_tray"
)

// A PlacedTile is one tile of a play, as recorded in the history.
type PlacedTile struct {
	Coords string `yaml:"coords"`
	Symbol string `yaml:"symbol"`
	Value  int    `yaml:"value"`
}

// An Event is one entry in the game history.
type Event struct {
	Turn        int          `yaml:"turn"`
	PlayerIndex int          `yaml:"player_index"`
	Player      string       `yaml:"player"`
	Type        EventType    `yaml:"type"`
	Tray        string       `yaml:"tray,omitempty"`
	Placed      []PlacedTile `yaml:"placed,omitempty"`
	Equations   []string     `yaml:"equations,omitempty"`
	Exchanged   string       `yaml:"exchanged,omitempty"`
	Bingo       bool         `yaml:"bingo,omitempty"`
	Score       int          `yaml:"score"`
	Cumulative  int          `yaml:"cumulative"`
}

// History is the log of a game.
type History struct {
	UID          string    `yaml:"uid"`
	Description  string    `yaml:"description"`
	Distribution string    `yaml:"distribution"`
	Players      []string  `yaml:"players"`
	PlayState    PlayState `yaml:"play_state"`
	Events       []Event   `yaml:"events"`
	FinalScores  []int     `yaml:"final_scores,omitempty"`
}

const Description = "Created with amath"

func newHistory(players playerStates, distName string) *History {
	names := make([]string, len(players))
	for i, p := range players {
		names[i] = p.Nickname
	}
	return &History{
		UID:          newGameID(),
		Description:  Description,
		Distribution: distName,
		Players:      names,
		PlayState:    PlayStateWaiting,
		Events:       []Event{},
	}
}

// WriteYAML writes the history as a YAML document.
func (h *History) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(h); err != nil {
		return err
	}
	return enc.Close()
}

// ParseYAML reads a history written by WriteYAML.
func ParseYAML(r io.Reader) (*History, error) {
	h := &History{}
	if err := yaml.NewDecoder(r).Decode(h); err != nil {
		return nil, err
	}
	return h, nil
}

// ExportYAML returns the game history as YAML.
func (g *Game) ExportYAML() ([]byte, error) {
	var buf bytes.Buffer
	if err := g.history.WriteYAML(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
