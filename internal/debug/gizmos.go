package debug

import (
	"github.com/MironCo/mirgo-player/internal/engine"
	"github.com/MironCo/mirgo-player/internal/movement"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const gizmoAlpha = 0.35

// ProbeColor returns the gizmo color for a probe: the ground probe is green when it
// hits and red when it does not, the cover probe red when blocked and blue when clear.
func ProbeColor(p movement.Probe) rl.Color {
	switch {
	case p.Kind == movement.ProbeGrounded && p.Hit:
		return rl.Fade(rl.Green, gizmoAlpha)
	case p.Kind == movement.ProbeGrounded:
		return rl.Fade(rl.Red, gizmoAlpha)
	case p.Hit:
		return rl.Fade(rl.Red, gizmoAlpha)
	default:
		return rl.Fade(rl.Blue, gizmoAlpha)
	}
}

// DrawProbes draws each probe as a translucent sphere. Call inside BeginMode3D.
func DrawProbes(probes []movement.Probe) {
	for _, p := range probes {
		center := engine.FromVec3(p.Center)
		col := ProbeColor(p)
		rl.DrawSphere(center, p.Radius, col)
		rl.DrawSphereWires(center, p.Radius, 8, 12, rl.Fade(col, 0.8))
	}
}
