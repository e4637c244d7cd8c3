package main

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
)

// StateBytes is an array of bytes that represents the state of the Game as
// perceived by the outside: the locked cells, the current piece and whether
// the game is over. If two Games have the same StateBytes they are considered
// "the same", even if they are implemented differently.
// The random generator is not part of it. A change in how pieces are picked
// shows up soon enough as a different current piece.
func (g *Game) StateBytes() []byte {
	buf := new(bytes.Buffer)
	grid := g.board.Grid()
	Serialize(buf, grid)
	for _, pt := range g.current.Cells() {
		Serialize(buf, int64(pt.X))
		Serialize(buf, int64(pt.Y))
	}
	Serialize(buf, g.current.color)
	Serialize(buf, int64(g.state))
	return buf.Bytes()
}

// RegressionId returns a string which uniquely identifies the playthrough.
// It is a hash of all the states the Game goes through. It is meant to check
// that a refactoring of the Game didn't change how it plays:
// - Compute the RegressionId for a playthrough.
// - Refactor the Game.
// - Compute the RegressionId for the same playthrough again.
// - If it changed, the refactoring changed the game.
// The check is only as good as the playthrough. A playthrough where the
// player never rotates will not catch a broken rotation.
func RegressionId(p *Playthrough) string {
	hash := sha256.New()

	g := NewGameFromPlaythrough(*p)
	hash.Write(g.StateBytes())

	for i := range p.History {
		g.Step(p.History[i])
		hash.Write(g.StateBytes())
	}

	return hex.EncodeToString(hash.Sum(nil))
}
