package animation

import (
	"time"

	"github.com/grimworks/go-skull/pkg/eyes"
	"github.com/grimworks/go-skull/pkg/servo"
)

// IdleSequence is the built-in scripted show: a slow look around with a
// few jaw snaps, looping every ten seconds. Compiled in; never mutated.
var IdleSequence = Sequence{
	Name: "idle",
	Keyframes: []Keyframe{
		{
			Offset: 0,
			Targets: []Target{
				{servo.Pan, servo.PanCenter},
				{servo.Nod, servo.NodCenter},
				{servo.Jaw, servo.JawClosed},
			},
			Eye: eyes.Offset{H: eyes.HCenter, V: eyes.VCenter},
		},
		{
			Offset: 1500 * time.Millisecond,
			Targets: []Target{
				{servo.Pan, servo.PanLeft},
			},
			Eye: eyes.Offset{H: eyes.HLeft, V: eyes.VCenter},
		},
		{
			Offset: 3000 * time.Millisecond,
			Targets: []Target{
				{servo.Pan, servo.PanRight},
				{servo.Nod, servo.NodUp},
			},
			Eye: eyes.Offset{H: eyes.HRight, V: eyes.VUp},
		},
		{
			Offset: 4500 * time.Millisecond,
			Targets: []Target{
				{servo.Pan, servo.PanCenter},
				{servo.Nod, servo.NodCenter},
				{servo.Jaw, servo.JawOpen},
			},
			Eye: eyes.Offset{H: eyes.HCenter, V: eyes.VDown},
		},
		{
			Offset: 5000 * time.Millisecond,
			Targets: []Target{
				{servo.Jaw, servo.JawClosed},
			},
			Eye: eyes.Offset{H: eyes.HCenter, V: eyes.VCenter},
		},
		{
			Offset: 7000 * time.Millisecond,
			Targets: []Target{
				{servo.Nod, servo.NodDown},
			},
			Eye: eyes.Offset{H: eyes.HCenter, V: eyes.VDown},
		},
		{
			Offset: 10000 * time.Millisecond,
			Targets: []Target{
				{servo.Pan, servo.PanCenter},
				{servo.Nod, servo.NodCenter},
				{servo.Jaw, servo.JawClosed},
			},
			Eye: eyes.Offset{H: eyes.HCenter, V: eyes.VCenter},
		},
	},
}
