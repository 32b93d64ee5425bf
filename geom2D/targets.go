package geom2D

import (
	"fmt"
)

// Targets is a set of evaluation points for the layer potential kernels.
// Normals are optional and only consulted by outputs that need a direction
// at the target, such as traction. A Targets built by SelfTargets aliases
// the segment nodes and marks the set for on-surface self evaluation;
// coincidence of coordinates alone never triggers self evaluation rules.
type Targets struct {
	Z   []complex128 // target points
	Nx  []complex128 // optional unit normals at the targets, nil if absent
	seg *Segment     // set when the targets are the nodes of this segment
}

func NewTargets(z []complex128) *Targets {
	return &Targets{Z: z}
}

func NewTargetsWithNormals(z, nx []complex128) (tg *Targets, err error) {
	if len(z) != len(nx) {
		err = fmt.Errorf("mismatch in target allocation: %d points, %d normals", len(z), len(nx))
		return
	}
	tg = &Targets{Z: z, Nx: nx}
	return
}

// SelfTargets marks the nodes of seg as the evaluation points, engaging the
// on-surface self interaction rules of the kernels.
func SelfTargets(seg *Segment) *Targets {
	return &Targets{
		Z:   seg.Z.DataP,
		Nx:  seg.Nx.DataP,
		seg: seg,
	}
}

// IsSelf reports whether the targets are the nodes of seg itself. Identity
// of the segment decides, not geometric proximity.
func (tg *Targets) IsSelf(seg *Segment) bool {
	return tg.seg != nil && tg.seg == seg
}

func (tg *Targets) Len() int { return len(tg.Z) }

// HasNormals reports whether a direction is available at every target.
func (tg *Targets) HasNormals() bool { return len(tg.Nx) == len(tg.Z) && tg.Nx != nil }
