// Package transformlang parses a small semicolon-separated language of
// mesh pre-transform statements (center, rotate, move, scale,
// homothety) into an ordered list of Op values that mesh.Apply runs
// against a mesh in sequence.
//
// Grammar:
//
//	program  = [ stmt { ";" stmt } [ ";" ] ] .
//	stmt     = "center"
//	         | "rotate" "(" axis "," number ")"
//	         | "move" "(" number "," number "," number ")"
//	         | "scale" "(" number "," number "," number ")"
//	         | "homothety" "(" number ")" .
//	axis     = "X" | "Y" | "Z" .
package transformlang

import (
	"fmt"
)

// Axis names one of the three rotation axes.
type Axis int

const (
	X Axis = iota
	Y
	Z
)

func (a Axis) String() string {
	switch a {
	case X:
		return "X"
	case Y:
		return "Y"
	case Z:
		return "Z"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// Op is one step of a transform chain, applied in list order.
type Op interface {
	isOp()
}

// Center recenters the mesh by translating it by the negation of its
// vertex centroid (the mean vertex position, not the bounding-box
// midpoint).
type Center struct{}

// Rotate turns the mesh by Theta radians about Axis.
type Rotate struct {
	Axis  Axis
	Theta float64
}

// Move translates the mesh by (DX, DY, DZ).
type Move struct {
	DX, DY, DZ float64
}

// Scale stretches the mesh independently along each axis.
type Scale struct {
	SX, SY, SZ float64
}

// Homothety scales the mesh uniformly by S.
type Homothety struct {
	S float64
}

func (Center) isOp()    {}
func (Rotate) isOp()    {}
func (Move) isOp()      {}
func (Scale) isOp()     {}
func (Homothety) isOp() {}

// ParseError reports where in the source a transform chain failed to
// parse.
type ParseError struct {
	Pos int
	Msg string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("transformlang: %s at offset %d", e.Msg, e.Pos)
}

// Parse reads a semicolon-separated chain of transform statements.
func Parse(src string) ([]Op, error) {
	p := &parser{lex: newLexer(src)}
	return p.parseProgram()
}
