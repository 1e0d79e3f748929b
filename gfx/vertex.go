package gfx

import (
	"errors"
	"iter"
)

var ErrNoVertices = errors.New("no vertices")

// Vertex is a 2D position with an RGB color.
type Vertex struct {
	Position [2]float32
	Color    [3]float32
}

// VertexBuffer holds an immutable copy of the vertices it was created with.
type VertexBuffer struct {
	vertices []Vertex
}

// NewVertexBuffer copies vertices into a new buffer. Surfaces call this from
// their own NewVertexBuffer after any backend allocation succeeds.
func NewVertexBuffer(vertices []Vertex) (*VertexBuffer, error) {
	if len(vertices) == 0 {
		return nil, &BufferAllocationError{Err: ErrNoVertices}
	}

	buf := &VertexBuffer{vertices: make([]Vertex, len(vertices))}
	copy(buf.vertices, vertices)
	return buf, nil
}

// Len returns the number of vertices in the buffer.
func (b *VertexBuffer) Len() int {
	return len(b.vertices)
}

// All iterates over the vertices in upload order.
func (b *VertexBuffer) All() iter.Seq2[int, Vertex] {
	return func(yield func(int, Vertex) bool) {
		for i, v := range b.vertices {
			if !yield(i, v) {
				return
			}
		}
	}
}

// PrimitiveType is the topology used to assemble vertices.
type PrimitiveType uint8

const (
	TrianglesList PrimitiveType = iota
)

// Primitives returns how many primitives n vertices assemble into.
func (p PrimitiveType) Primitives(n int) int {
	switch p {
	case TrianglesList:
		return n / 3
	default:
		return 0
	}
}

// NoIndices draws vertices in buffer order without an index buffer.
type NoIndices struct {
	Primitive PrimitiveType
}

// Indices returns the implicit index list 0..n-1 for backends that always
// need one.
func (NoIndices) Indices(n int) []uint16 {
	out := make([]uint16, n)
	for i := range out {
		out[i] = uint16(i)
	}
	return out
}
