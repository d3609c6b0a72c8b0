package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAABBFromPoints(t *testing.T) {
	box := NewAABBFromPoints(
		NewVec3(1, 0, -2),
		NewVec3(-3, 4, 0),
		NewVec3(0, -1, 5),
	)
	assert.True(t, box.Min.Equals(NewVec3(-3, -1, -2)), "min %v", box.Min)
	assert.True(t, box.Max.Equals(NewVec3(1, 4, 5)), "max %v", box.Max)
	assert.True(t, box.IsValid())
	assert.True(t, box.Size().Equals(NewVec3(4, 5, 7)))
	assert.True(t, box.Center().Equals(NewVec3(-1, 1.5, 1.5)))

	assert.Equal(t, AABB{}, NewAABBFromPoints())
}

func TestAABB_UnionAndContains(t *testing.T) {
	a := NewAABB(NewVec3(0, 0, 0), NewVec3(1, 1, 1))
	b := NewAABB(NewVec3(-1, 0.5, 0.5), NewVec3(0.5, 2, 0.5))
	u := a.Union(b)

	assert.True(t, u.Min.Equals(NewVec3(-1, 0, 0)))
	assert.True(t, u.Max.Equals(NewVec3(1, 2, 1)))
	assert.True(t, u.Contains(NewVec3(-1, 2, 1)), "boundary point should be inside")
	assert.False(t, u.Contains(NewVec3(0, 2.01, 0)))
}
