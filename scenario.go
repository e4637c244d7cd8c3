package main

import "fmt"

// Scenario is a hand-written starting point for a game, loaded from YAML.
// Example:
//
//	Rows:
//	  - ".........."
//	  - "IIII.IIIII"
//	Pieces: [0, 0, 3]
//
// Rows are bottom-aligned, see ParseGrid. Pieces are indexes into the piece
// catalog (0 = I, 1 = J, 2 = L, 3 = O, 4 = S, 5 = T, 6 = Z) and are handed out
// in order before the random generator takes over.
type Scenario struct {
	Rows   []string `yaml:"Rows"`
	Pieces []int    `yaml:"Pieces"`
}

func LoadScenario(fsys FS, name string) (s Scenario) {
	LoadYAML(fsys, name, &s)
	Check(s.Validate())
	return
}

func (s *Scenario) Validate() error {
	if _, err := ParseGrid(s.Rows); err != nil {
		return fmt.Errorf("invalid scenario rows: %w", err)
	}
	for i, p := range s.Pieces {
		if p < 0 || p >= NumShapes {
			return fmt.Errorf("invalid piece %d at index %d, must be between 0 "+
				"and %d", p, i, NumShapes-1)
		}
	}
	return nil
}

func (s *Scenario) Board() (*Board, error) {
	return NewBoardFromRows(s.Rows)
}

// Source returns a RandSource that gives out the scenario's pieces and then
// continues with fallback.
func (s *Scenario) Source(fallback RandSource) RandSource {
	return &scriptedSource{
		values:   s.Pieces,
		fallback: fallback,
	}
}

// NewGameFromScenario starts a game on the scenario's board. An empty
// scenario gives the same game as NewGame(seed).
func NewGameFromScenario(s Scenario, seed int64) *Game {
	board, err := s.Board()
	Check(err)
	if err != nil {
		board = NewBoard()
	}
	r := NewRand(seed)
	return NewGameWithFactory(board, NewPieceFactory(board, s.Source(&r)))
}

type scriptedSource struct {
	values   []int
	next     int
	fallback RandSource
}

func (s *scriptedSource) RInt(min, max int) int {
	if s.next < len(s.values) {
		v := s.values[s.next]
		s.next++
		if v >= min && v <= max {
			return v
		}
	}
	return s.fallback.RInt(min, max)
}
