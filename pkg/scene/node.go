package scene

import (
	"math"

	"github.com/df07/go-outdoor-mapgen/pkg/core"
)

// Transform is a 3x3 basis plus an origin, row-major in basis rows.
// Matches the layout the scene-file grammar expects.
type Transform struct {
	Basis  [9]float64
	Origin core.Vec3
}

// IdentityTransform returns an unrotated, unscaled transform at origin
func IdentityTransform(origin core.Vec3) Transform {
	return Transform{
		Basis:  [9]float64{1, 0, 0, 0, 1, 0, 0, 0, 1},
		Origin: origin,
	}
}

// YawScaleTransform builds a transform rotated by yaw about the vertical axis
// and uniformly scaled
func YawScaleTransform(yaw, scale float64, origin core.Vec3) Transform {
	c := math.Cos(yaw)
	s := math.Sin(yaw)
	return Transform{
		Basis: [9]float64{
			c * scale, 0, s * scale,
			0, scale, 0,
			-s * scale, 0, c * scale,
		},
		Origin: origin,
	}
}

// Node is one element of the composed scene graph. The tree is owned by the
// composer until handed to the writer; nothing mutates it afterwards.
type Node struct {
	Name        string
	Transform   *Transform // nil means no transform property is emitted
	ResourceRef string     // wrapper-scene key for instanced leaves, "" for plain nodes
	Children    []*Node
}

// AddChild appends a child, preserving insertion order
func (n *Node) AddChild(child *Node) {
	n.Children = append(n.Children, child)
}

// Walk visits the tree depth-first using an explicit worklist, parents before
// children and siblings in insertion order
func (n *Node) Walk(visit func(node *Node, parent *Node)) {
	type item struct {
		node   *Node
		parent *Node
	}
	stack := []item{{node: n}}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		visit(current.node, current.parent)
		// Push children in reverse so they pop in insertion order
		for i := len(current.node.Children) - 1; i >= 0; i-- {
			stack = append(stack, item{node: current.node.Children[i], parent: current.node})
		}
	}
}

// Count returns the number of nodes in the tree including the receiver
func (n *Node) Count() int {
	count := 0
	n.Walk(func(*Node, *Node) { count++ })
	return count
}
