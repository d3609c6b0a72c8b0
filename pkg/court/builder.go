package court

import (
	"fmt"

	"github.com/df07/court-model/pkg/core"
	"github.com/df07/court-model/pkg/geometry"
	"github.com/df07/court-model/pkg/scene"
)

// Feature is one named solid of the court together with its constructor
type Feature struct {
	Name  string
	Build func() (*geometry.Mesh, error)
}

// Features lists the court's solids in the order they are emitted:
// outer lines, singles lines, service lines, center line and mark, net
// posts, the two net tapes and finally the sagging net top.
func Features(d Dimensions) []Feature {
	halfLength := d.CourtLength / 2
	halfDoubles := d.DoublesWidth / 2
	halfSingles := d.SinglesWidth / 2
	service := d.ServiceLineDistance
	halfMark := d.CenterMarkLength / 2

	p := core.NewVec3
	features := []Feature{
		// Doubles outline
		line("baseline_far", p(-halfDoubles, 0, -halfLength), p(halfDoubles, 0, -halfLength), d.BaselineWidth),
		line("doubles_sideline_right", p(halfDoubles, 0, -halfLength), p(halfDoubles, 0, halfLength), d.LineWidth),
		line("baseline_near", p(halfDoubles, 0, halfLength), p(-halfDoubles, 0, halfLength), d.BaselineWidth),
		line("doubles_sideline_left", p(-halfDoubles, 0, halfLength), p(-halfDoubles, 0, -halfLength), d.LineWidth),

		// Singles court
		line("singles_baseline_far", p(-halfSingles, 0, -halfLength), p(halfSingles, 0, -halfLength), d.LineWidth),
		line("singles_sideline_right", p(halfSingles, 0, -halfLength), p(halfSingles, 0, halfLength), d.LineWidth),
		line("singles_baseline_near", p(halfSingles, 0, halfLength), p(-halfSingles, 0, halfLength), d.LineWidth),
		line("singles_sideline_left", p(-halfSingles, 0, halfLength), p(-halfSingles, 0, -halfLength), d.LineWidth),

		// Service lines
		line("service_line_far", p(-halfDoubles, 0, -service), p(halfDoubles, 0, -service), d.LineWidth),
		line("service_line_near", p(-halfDoubles, 0, service), p(halfDoubles, 0, service), d.LineWidth),

		line("center_service_line", p(0, 0, -service), p(0, 0, service), d.LineWidth),
		line("center_mark", p(-halfMark, 0, 0), p(halfMark, 0, 0), d.LineWidth),

		post("net_post_left", p(-halfDoubles, 0, 0), d),
		post("net_post_right", p(halfDoubles, 0, 0), d),

		line("net_top_tape", p(-halfDoubles, d.NetPostHeight, 0), p(halfDoubles, d.NetPostHeight, 0), d.NetThickness),
		line("net_center_tape", p(-halfDoubles, 0, 0), p(halfDoubles, 0, 0), d.NetThickness),
	}
	return append(features, netSagFeatures(d)...)
}

// post describes a net post standing on base
func post(name string, base core.Vec3, d Dimensions) Feature {
	return Feature{
		Name: name,
		Build: func() (*geometry.Mesh, error) {
			return geometry.NewCylinder(base, d.NetPostDiameter/2, d.NetPostHeight, d.PostSections)
		},
	}
}

// Build validates d and constructs every court feature into a new scene.
// Construction is all-or-nothing: on error no scene is returned.
func Build(d Dimensions) (*scene.Scene, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	s := scene.New()
	for _, f := range Features(d) {
		mesh, err := f.Build()
		if err != nil {
			return nil, fmt.Errorf("build %s: %w", f.Name, err)
		}
		if err := s.Add(f.Name, mesh); err != nil {
			return nil, err
		}
		tracer().Debugf("added %s: %d vertices, %d triangles", f.Name, mesh.VertexCount(), mesh.TriangleCount())
	}

	tracer().Infof("court built: %d solids, %d triangles", s.Len(), s.GetTriangleCount())
	return s, nil
}
