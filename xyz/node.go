// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"cogentcore.org/core/math32"
)

// Walk return values, for readability of walk functions.
const (
	// Continue continues the walk into the children of the node.
	Continue = true

	// Break skips the children of the node.
	Break = false
)

// Node is the interface for all xyz scene graph nodes.
type Node interface {
	// AsNodeBase returns the [NodeBase] for this Node,
	// which provides the core functionality of a node.
	AsNodeBase() *NodeBase

	// IsSolid returns true if this is an [Solid] node,
	// which has a mesh and a material.
	IsSolid() bool

	// AsSolid returns the node as a [Solid] (nil if not).
	AsSolid() *Solid
}

// NodeBase is the basic xyz scene graph node, which has a [Pose]
// and a list of children. It is embedded in all other node types.
type NodeBase struct {

	// Name is the name of the node, used in logging and lookups.
	Name string

	// Pose is the complete specification of position and orientation.
	Pose Pose

	// Invisible hides the node and everything below it from
	// rendering and picking.
	Invisible bool

	// Parent is the parent node, nil for the scene root.
	Parent Node

	// Children are the child nodes, in order added.
	Children []Node
}

func (nb *NodeBase) AsNodeBase() *NodeBase {
	return nb
}

func (nb *NodeBase) IsSolid() bool {
	return false
}

func (nb *NodeBase) AsSolid() *Solid {
	return nil
}

// IsVisible returns true if the node is not marked Invisible.
func (nb *NodeBase) IsVisible() bool {
	return !nb.Invisible
}

// SetVisible sets the visibility of the node.
func (nb *NodeBase) SetVisible(visible bool) {
	nb.Invisible = !visible
}

// WorldPos returns the world position of the node,
// as of the last [UpdateWorldMatrix].
func (nb *NodeBase) WorldPos() math32.Vector3 {
	return nb.Pose.WorldMatrix.Pos()
}

// AddChild adds the given child to the given parent.
func AddChild(parent, child Node) {
	pb := parent.AsNodeBase()
	cb := child.AsNodeBase()
	cb.Parent = parent
	pb.Children = append(pb.Children, child)
}

// WalkDown calls fun on the node and then recursively on its children,
// in order. Children are skipped when fun returns [Break].
func WalkDown(n Node, fun func(n Node) bool) {
	if !fun(n) {
		return
	}
	for _, kid := range n.AsNodeBase().Children {
		WalkDown(kid, fun)
	}
}

// UpdateWorldMatrix updates the world matrix for node and everything inside it.
func UpdateWorldMatrix(n Node) {
	nb := n.AsNodeBase()
	if nb.Parent == nil {
		nb.Pose.UpdateWorldMatrix(math32.Identity4())
	} else {
		nb.Pose.UpdateWorldMatrix(&nb.Parent.AsNodeBase().Pose.WorldMatrix)
	}
	for _, kid := range nb.Children {
		UpdateWorldMatrix(kid)
	}
}
