// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

// Group collects individual elements in a scene but does not have a Mesh or Material of
// its own. It does have a transform that applies to all nodes under it.
type Group struct {
	NodeBase
}

// NewGroup adds a new [Group] with the given name to the given parent.
func NewGroup(parent Node, name string) *Group {
	gp := &Group{}
	gp.Name = name
	gp.Pose.Defaults()
	AddChild(parent, gp)
	return gp
}

// SetPos sets the [Pose.Pos] position of the group
func (gp *Group) SetPos(x, y, z float32) *Group {
	gp.Pose.Pos.Set(x, y, z)
	return gp
}

// SetRot sets the [Pose.Rot] Euler rotation of the group, in radians.
func (gp *Group) SetRot(x, y, z float32) *Group {
	gp.Pose.Rot.Set(x, y, z)
	return gp
}
