package geometry

import (
	"fmt"
	"math"

	"github.com/df07/court-model/pkg/core"
)

// DefaultCylinderSections is the number of facets around a cylinder
const DefaultCylinderSections = 32

// NewCylinder creates a closed cylinder standing on base with its axis
// along Up. The mesh is generated centred on the origin and then translated,
// so base is the centre of the bottom cap.
func NewCylinder(base core.Vec3, radius, height float64, sections int) (*Mesh, error) {
	if !(radius > 0) || math.IsInf(radius, 0) {
		return nil, fmt.Errorf("%w: cylinder radius %v", ErrInvalidDimension, radius)
	}
	if !(height > 0) || math.IsInf(height, 0) {
		return nil, fmt.Errorf("%w: cylinder height %v", ErrInvalidDimension, height)
	}
	if sections < 3 {
		return nil, fmt.Errorf("%w: cylinder needs at least 3 sections, got %d", ErrInvalidDimension, sections)
	}

	halfHeight := height / 2
	n := sections

	// Bottom ring 0..n-1, top ring n..2n-1, then the two cap centres
	vertices := make([]core.Vec3, 2*n+2)
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		x := radius * math.Cos(theta)
		z := radius * math.Sin(theta)
		vertices[i] = core.NewVec3(x, -halfHeight, z)
		vertices[n+i] = core.NewVec3(x, halfHeight, z)
	}
	bottomCenter := 2 * n
	topCenter := 2*n + 1
	vertices[bottomCenter] = core.NewVec3(0, -halfHeight, 0)
	vertices[topCenter] = core.NewVec3(0, halfHeight, 0)

	faces := make([][3]int, 0, 4*n)
	for i := 0; i < n; i++ {
		next := (i + 1) % n
		faces = append(faces,
			[3]int{i, n + i, next},
			[3]int{next, n + i, n + next},
			[3]int{bottomCenter, i, next},
			[3]int{topCenter, n + next, n + i},
		)
	}

	canonical, err := NewMesh(vertices, faces)
	if err != nil {
		return nil, err
	}

	tracer().Debugf("cylinder at %v, radius %.3f, height %.3f, %d sections", base, radius, height, n)
	return canonical.Translate(base.Add(core.NewVec3(0, halfHeight, 0))), nil
}
