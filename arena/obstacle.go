// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.
//
// The ProbeChain is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package arena

// Obstacle is a single axis-aligned square of side unit_size, centered on a
// grid-cell center (spec.md §3).
type Obstacle struct {
	Center Point
}

// aabb returns the obstacle's axis-aligned bounding box expanded by margin
// on every side (spec.md §4.7's Minkowski-sum expansion by the robot
// radius, used by DistanceToCollision; margin 0 recovers the obstacle's own
// AABB, used by CheckCollision).
func (o Obstacle) aabb(halfSize, margin float64) (minX, minY, maxX, maxY float64) {
	h := halfSize + margin
	return o.Center.X - h, o.Center.Y - h, o.Center.X + h, o.Center.Y + h
}
