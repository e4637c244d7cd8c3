package main

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

var shapeI = pieceTemplates[0].Shape
var shapeJ = pieceTemplates[1].Shape
var shapeO = pieceTemplates[3].Shape

func TestNewPiece_SpawnPos(t *testing.T) {
	p := NewPiece(shapeJ, Blue, NewBoard())
	assert.Equal(t, Pt{4, 0}, p.Pos())
	assert.Equal(t, shapeJ, p.Shape())
	assert.Equal(t, Blue, p.Color())
	assert.Equal(t, [ShapeSize]Pt{{4, 1}, {5, 1}, {6, 1}, {6, 0}}, p.Cells())
}

func TestPiece_MovesStopAtWalls(t *testing.T) {
	p := NewPiece(shapeI, Cyan, NewBoard())

	p.MoveLeft()
	assert.Equal(t, Pt{3, 0}, p.Pos())
	for range 10 {
		p.MoveLeft()
	}
	assert.Equal(t, Pt{0, 0}, p.Pos())

	for range 10 {
		p.MoveRight()
	}
	assert.Equal(t, Pt{BoardWidth - 4, 0}, p.Pos())

	// The I lies on the second row of its offsets, so it stops one row higher
	// than its position would suggest.
	for range 30 {
		p.MoveDown()
	}
	assert.Equal(t, Pt{BoardWidth - 4, BoardHeight - 2}, p.Pos())
	assert.False(t, p.CanMoveDown())
}

func TestPiece_MovesStopAtBlocks(t *testing.T) {
	b, err := NewBoardFromRows([]string{
		"##........",
		"##.......#",
	})
	require.NoError(t, err)

	p := NewPiece(shapeO, Yellow, b)
	p.MoveLeft()
	p.MoveLeft()
	assert.Equal(t, Pt{2, 0}, p.Pos())
	for range 30 {
		p.MoveDown()
	}
	assert.Equal(t, Pt{2, BoardHeight - 2}, p.Pos())

	// Sliding left into the blocks doesn't work.
	p.MoveLeft()
	assert.Equal(t, Pt{2, BoardHeight - 2}, p.Pos())
	assert.False(t, p.CanMoveDown())
}

func TestPiece_CanMoveDownIsPure(t *testing.T) {
	p := NewPiece(shapeJ, Blue, NewBoard())
	for range 5 {
		assert.True(t, p.CanMoveDown())
	}
	assert.Equal(t, Pt{4, 0}, p.Pos())
}

func TestShape_RotatedAroundPivot(t *testing.T) {
	rotated := shapeJ.Rotated()
	assert.Equal(t, Shape{{1, 0}, {1, 1}, {1, 2}, {2, 2}}, rotated)
	// The pivot doesn't move.
	assert.Equal(t, shapeJ[1], rotated[1])

	// Four rotations give back the original shape.
	for _, tmpl := range pieceTemplates {
		s := tmpl.Shape
		for range 4 {
			s = s.Rotated()
		}
		assert.Equal(t, tmpl.Shape, s, tmpl.Name)
	}
}

func TestPiece_Rotate(t *testing.T) {
	p := NewPiece(shapeJ, Blue, NewBoard())
	p.Rotate()
	assert.Equal(t, shapeJ.Rotated(), p.Shape())
	assert.Equal(t, Pt{4, 0}, p.Pos())
	assert.Equal(t, [ShapeSize]Pt{{5, 0}, {5, 1}, {5, 2}, {6, 2}}, p.Cells())
}

// A rotation that would put cells above the board is allowed.
func TestPiece_RotateAboveBoard(t *testing.T) {
	p := NewPiece(shapeO, Yellow, NewBoard())
	p.Rotate()
	assert.Equal(t, Shape{{1, -1}, {1, 0}, {0, -1}, {0, 0}}, p.Shape())
}

func TestPiece_RotateBlockedByFloor(t *testing.T) {
	p := NewPiece(shapeI, Cyan, NewBoard())
	for range 30 {
		p.MoveDown()
	}
	require.False(t, p.CanMoveDown())

	// Standing up would put the I through the floor.
	p.Rotate()
	assert.Equal(t, shapeI, p.Shape())
}

func TestPiece_RotateBlockedByBlock(t *testing.T) {
	b := NewBoard()
	b.PlacePiece(singleCell, Pt{5, 3}, Gray)
	p := NewPiece(shapeI, Cyan, b)

	// The vertical I would cover (5, 0) to (5, 3).
	p.Rotate()
	assert.Equal(t, shapeI, p.Shape())

	// One column to the left it fits.
	p.MoveLeft()
	p.Rotate()
	assert.Equal(t, shapeI.Rotated(), p.Shape())
}

func TestPiece_RotateBlockedByWall(t *testing.T) {
	p := NewPiece(shapeI, Cyan, NewBoard())
	p.Rotate()
	for range 10 {
		p.MoveRight()
	}
	// Vertical I in the last column.
	require.Equal(t, [ShapeSize]Pt{{9, 0}, {9, 1}, {9, 2}, {9, 3}}, p.Cells())

	// Lying down would put a cell past the right wall. There are no wall
	// kicks, so nothing happens.
	p.Rotate()
	assert.Equal(t, shapeI.Rotated(), p.Shape())
	assert.Equal(t, Pt{8, 0}, p.Pos())
}
