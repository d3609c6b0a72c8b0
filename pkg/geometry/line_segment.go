package geometry

import (
	"fmt"
	"math"

	"github.com/df07/court-model/pkg/core"
)

// degenerateEpsilon is the length below which a direction is treated as zero
const degenerateEpsilon = 1e-9

// lineSegmentFaces is the fixed topology of a line segment slab. Vertices
// 0-3 lie on the segment plane, 4-7 are the same corners raised along Up.
var lineSegmentFaces = [12][3]int{
	{0, 1, 2}, {1, 3, 2}, // bottom
	{4, 6, 5}, {5, 6, 7}, // top
	{0, 2, 4}, {2, 6, 4}, // +perpendicular side
	{1, 5, 3}, {3, 5, 7}, // -perpendicular side
	{0, 4, 1}, {1, 4, 5}, // start cap
	{2, 3, 6}, {3, 7, 6}, // end cap
}

// NewLineSegment builds a flat strip of the given width from start to end,
// raised by width along the up axis so it has a minimal thickness.
// The width direction is perpendicular to both the segment and Up, so a
// segment parallel to Up is rejected with ErrVerticalSegment.
func NewLineSegment(start, end core.Vec3, width float64) (*Mesh, error) {
	if !(width > 0) || math.IsInf(width, 0) {
		return nil, fmt.Errorf("%w: line width %v", ErrInvalidDimension, width)
	}

	if !start.IsFinite() || !end.IsFinite() {
		return nil, fmt.Errorf("%w: endpoint %v to %v", ErrInvalidDimension, start, end)
	}

	delta := end.Subtract(start)
	length := delta.Length()
	if length < degenerateEpsilon {
		return nil, fmt.Errorf("%w: %v to %v", ErrDegenerateSegment, start, end)
	}
	direction := delta.Multiply(1 / length)

	perp := direction.Cross(core.Up)
	if perp.Length() < degenerateEpsilon {
		return nil, fmt.Errorf("%w: %v to %v", ErrVerticalSegment, start, end)
	}
	perp = perp.Normalize().Multiply(width / 2)
	raise := core.Up.Multiply(width)

	vertices := []core.Vec3{
		start.Add(perp),
		start.Subtract(perp),
		end.Add(perp),
		end.Subtract(perp),
		start.Add(perp).Add(raise),
		start.Subtract(perp).Add(raise),
		end.Add(perp).Add(raise),
		end.Subtract(perp).Add(raise),
	}

	tracer().Debugf("line segment %v -> %v, length %.3f, width %.3f", start, end, length, width)
	return NewMesh(vertices, lineSegmentFaces[:])
}
