package court

import (
	"fmt"

	"github.com/df07/court-model/pkg/core"
	"github.com/df07/court-model/pkg/geometry"
)

// NetSagSegments is the number of straight pieces the net top is drawn with
const NetSagSegments = 10

// NetSagHeight returns the height of the net's top edge at t in [0,1]
// across the net. The profile is a parabola through the post height at
// both ends and the center height at t = 0.5.
func NetSagHeight(d Dimensions, t float64) float64 {
	return d.NetPostHeight - (d.NetPostHeight-d.NetCenterHeight)*4*t*(1-t)
}

// NetSagPoints samples the net's top edge at NetSagSegments+1 evenly
// spaced points between the two posts.
func NetSagPoints(d Dimensions) []core.Vec3 {
	points := make([]core.Vec3, NetSagSegments+1)
	left := -d.DoublesWidth / 2
	step := d.DoublesWidth / NetSagSegments
	for i := range points {
		t := float64(i) / NetSagSegments
		points[i] = core.NewVec3(left+step*float64(i), NetSagHeight(d, t), 0)
	}
	return points
}

// netSagFeatures returns one line feature per consecutive pair of sag points
func netSagFeatures(d Dimensions) []Feature {
	points := NetSagPoints(d)
	features := make([]Feature, 0, NetSagSegments)
	for i := 1; i < len(points); i++ {
		features = append(features, line(
			fmt.Sprintf("net_sag_%02d", i-1),
			points[i-1], points[i], d.NetThickness,
		))
	}
	return features
}

// line describes a line segment feature
func line(name string, start, end core.Vec3, width float64) Feature {
	return Feature{
		Name: name,
		Build: func() (*geometry.Mesh, error) {
			return geometry.NewLineSegment(start, end, width)
		},
	}
}
