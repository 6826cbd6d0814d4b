// Package tstrip converts indexed triangle lists into triangle strips and back.
//
// Strips are stored in one flat []int in either of two encodings:
//
//	Term:   v0 v1 v2 ... -1  v0 v1 v2 ... -1
//	Length: n  v0 v1 ... vn-1  n  v0 v1 ...
//
// Both encodings hold exactly (vertices emitted + strips) elements.
package tstrip

import (
	"fmt"

	"github.com/pkg/errors"
)

// Terminator ends a strip in the Term encoding.
const Terminator = -1

// NoFace marks a boundary edge in an Adjacency table.
const NoFace = -1

// Strip errors.
var (
	ErrAdjacencyMismatch = errors.New("adjacency table does not match face count")
	ErrBadNeighbor       = errors.New("adjacency references a face out of range")
	ErrMalformedStrips   = errors.New("malformed strip array")
	ErrShortStrip        = errors.New("strip has fewer than 3 vertices")
)

// Face is a triangle given by three vertex indices. Order is winding.
type Face [3]int

// IndexOf returns the local index of vertex v in f, or -1.
func (f Face) IndexOf(v int) int {
	switch v {
	case f[0]:
		return 0
	case f[1]:
		return 1
	case f[2]:
		return 2
	}
	return -1
}

// Adjacency maps (face, local edge) to the face on the other side of that
// edge, or NoFace. Edge i is the edge opposite vertex i.
type Adjacency [][3]int

// Rep selects a strip encoding.
type Rep int

const (
	Term   Rep = iota // -1 after each strip
	Length            // vertex count before each strip
)

// String returns the encoding name used in config files and flags.
func (r Rep) String() string {
	switch r {
	case Term:
		return "term"
	case Length:
		return "length"
	default:
		return fmt.Sprintf("Rep(%d)", int(r))
	}
}

// ParseRep parses "term" or "length".
func ParseRep(s string) (Rep, error) {
	switch s {
	case "term", "terminator":
		return Term, nil
	case "length", "len":
		return Length, nil
	}
	return Term, errors.Errorf("unknown strip representation %q", s)
}

// Stats summarizes a strip array.
type Stats struct {
	Strips int
	Faces  int
}

// AvgLength returns the mean number of triangles per strip.
func (s Stats) AvgLength() float64 {
	if s.Strips == 0 {
		return 0
	}
	return float64(s.Faces) / float64(s.Strips)
}

func next3(i int) int {
	if i == 2 {
		return 0
	}
	return i + 1
}

func prev3(i int) int {
	if i == 0 {
		return 2
	}
	return i - 1
}
