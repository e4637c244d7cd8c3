package main

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

// RandomPlaythrough generates nFrames of random input. Most frames are empty,
// like they are when a person plays.
func RandomPlaythrough(s Scenario, seed int64, nFrames int) Playthrough {
	p := NewPlaythrough(s, seed)
	r := NewRand(seed)
	for i := range nFrames {
		var input PlayerInput
		switch r.RInt(0, 9) {
		case 0:
			input.Left = true
		case 1:
			input.Right = true
		case 2:
			input.Rotate = true
		case 3:
			input.Down = true
		}
		input.Tick = i%30 == 29
		p.History = append(p.History, input)
	}
	return p
}

func TestPlaythrough_SerializeDeserialize(t *testing.T) {
	s := Scenario{
		Rows:   []string{"I.........", "##########"},
		Pieces: []int{6, 0, 3},
	}
	p := RandomPlaythrough(s, 12, 3000)

	data := p.Serialize()
	back := DeserializePlaythrough(data)
	assert.Equal(t, p, back)
	assert.Equal(t, int64(InputVersion), back.InputVersion)
	assert.Equal(t, int64(SimulationVersion), back.SimulationVersion)
	assert.Equal(t, int64(ReleaseVersion), back.ReleaseVersion)
}

func TestPlaythrough_Compressed(t *testing.T) {
	p := RandomPlaythrough(Scenario{}, 1, 10000)
	// Each input is 5 bytes before compression.
	assert.Less(t, len(p.Serialize()), 5*len(p.History)/2)
}

func TestPlaythrough_IdsAreUnique(t *testing.T) {
	p1 := NewPlaythrough(Scenario{}, 1)
	p2 := NewPlaythrough(Scenario{}, 1)
	assert.NotEqual(t, p1.Id, p2.Id)
}

func TestPlaythrough_Clone(t *testing.T) {
	p := RandomPlaythrough(Scenario{Rows: []string{"#########."}, Pieces: []int{1}}, 3, 10)
	clone := p.Clone()
	require.Equal(t, p, *clone)

	clone.History[0].Left = !clone.History[0].Left
	clone.Rows[0] = ".........#"
	clone.Pieces[0] = 2
	assert.NotEqual(t, p.History[0], clone.History[0])
	assert.Equal(t, "#########.", p.Rows[0])
	assert.Equal(t, 1, p.Pieces[0])
}

func TestDeserializePlaythrough_WrongInputVersion(t *testing.T) {
	p := NewPlaythrough(Scenario{}, 1)
	p.InputVersion = InputVersion + 1
	data := p.Serialize()
	assert.Panics(t, func() { DeserializePlaythrough(data) })
}

func TestNewGameFromPlaythrough_WrongSimulationVersion(t *testing.T) {
	p := NewPlaythrough(Scenario{}, 1)
	p.SimulationVersion = SimulationVersion + 1
	assert.Panics(t, func() { NewGameFromPlaythrough(p) })
}

// A game replayed from a playthrough goes through the same states as the game
// that was recorded.
func TestNewGameFromPlaythrough_Replays(t *testing.T) {
	p := RandomPlaythrough(Scenario{}, 5, 0)
	live := NewGameFromPlaythrough(p)
	r := NewRand(99)
	for range 2000 {
		input := PlayerInput{
			Left:  r.RInt(0, 5) == 0,
			Right: r.RInt(0, 5) == 0,
			Down:  r.RInt(0, 2) == 0,
		}
		p.History = append(p.History, input)
		live.Step(input)
	}

	replayed := NewGameFromPlaythrough(DeserializePlaythrough(p.Serialize()))
	for _, input := range p.History {
		replayed.Step(input)
	}
	assert.Equal(t, live.StateBytes(), replayed.StateBytes())
}

func TestZip(t *testing.T) {
	data := make([]byte, 10000)
	for i := range data {
		data[i] = byte(i % 7)
	}
	zipped := Zip(data)
	assert.Less(t, len(zipped), len(data))
	assert.Equal(t, data, Unzip(zipped))
}
