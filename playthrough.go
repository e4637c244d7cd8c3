package main

import (
	"bytes"
	"fmt"
	"slices"

	"github.com/google/uuid"
)

// InputVersion is the version of the byte representation of the Playthrough
// structure. If serializing a Playthrough produces different bytes than
// before, InputVersion must change.
// Out of the 3 versions (ReleaseVersion, SimulationVersion and InputVersion),
// InputVersion is the one expected to change the least often.
const InputVersion = 1

// SimulationVersion identifies the rules of the Game. Feeding the same
// Playthrough to two Games with the same SimulationVersion must produce the
// same sequence of states, see RegressionId.
const SimulationVersion = 1

// Playthrough is all the input sent to a Game from the moment it was created.
// The starting board and pieces come from the Scenario and the Seed, the rest
// comes from History, one PlayerInput per frame.
type Playthrough struct {
	InputVersion      int64
	SimulationVersion int64
	ReleaseVersion    int64
	Scenario
	Id      uuid.UUID
	Seed    int64
	History []PlayerInput
}

func NewPlaythrough(s Scenario, seed int64) (p Playthrough) {
	p.InputVersion = InputVersion
	p.SimulationVersion = SimulationVersion
	p.ReleaseVersion = ReleaseVersion
	p.Scenario = s
	p.Id = uuid.New()
	p.Seed = seed
	return
}

func (p *Playthrough) Serialize() []byte {
	buf := new(bytes.Buffer)
	Serialize(buf, p.InputVersion)
	Serialize(buf, p.SimulationVersion)
	Serialize(buf, p.ReleaseVersion)
	Serialize(buf, int64(len(p.Rows)))
	for _, row := range p.Rows {
		SerializeString(buf, row)
	}
	pieces := make([]int64, len(p.Pieces))
	for i := range p.Pieces {
		pieces[i] = int64(p.Pieces[i])
	}
	SerializeSlice(buf, pieces)
	Serialize(buf, p.Id)
	Serialize(buf, p.Seed)
	SerializeSlice(buf, p.History)
	return Zip(buf.Bytes())
}

func (p *Playthrough) Clone() *Playthrough {
	clone := *p
	clone.Rows = slices.Clone(p.Rows)
	clone.Pieces = slices.Clone(p.Pieces)
	clone.History = slices.Clone(p.History)
	return &clone
}

func DeserializePlaythrough(data []byte) (p Playthrough) {
	buf := bytes.NewBuffer(Unzip(data))
	Deserialize(buf, &p.InputVersion)
	if p.InputVersion != InputVersion {
		Check(fmt.Errorf("can't deserialize this playthrough - we are at "+
			"InputVersion %d and playthrough was generated with InputVersion "+
			"%d", InputVersion, p.InputVersion))
		return
	}
	Deserialize(buf, &p.SimulationVersion)
	Deserialize(buf, &p.ReleaseVersion)
	var nRows int64
	Deserialize(buf, &nRows)
	for range nRows {
		p.Rows = append(p.Rows, DeserializeString(buf))
	}
	var pieces []int64
	DeserializeSlice(buf, &pieces)
	for _, piece := range pieces {
		p.Pieces = append(p.Pieces, int(piece))
	}
	Deserialize(buf, &p.Id)
	Deserialize(buf, &p.Seed)
	DeserializeSlice(buf, &p.History)
	return
}

// NewGameFromPlaythrough creates the Game the playthrough started with. The
// History is not applied, the caller steps through it.
func NewGameFromPlaythrough(p Playthrough) *Game {
	if p.SimulationVersion != SimulationVersion {
		Check(fmt.Errorf("can't play this playthrough - we are at "+
			"SimulationVersion %d and playthrough was generated with "+
			"SimulationVersion %d", SimulationVersion, p.SimulationVersion))
	}
	return NewGameFromScenario(p.Scenario, p.Seed)
}
