// Package phenome provides evaluators: functions that drive a
// BlackBox through a scripted or simulated task and return a fitness
// score. Evaluators never fail — a degenerate network simply scores low —
// mirroring the teacher's orgEvaluate/runCart split, generalized from a
// two-output argmax controller to the single bounded-force output the
// core's BlackBox contract exposes.
package phenome

import (
	"github.com/nn-phenome/phenomecore/engine"
	"math"
)

const twelveDegrees = 12.0 * math.Pi / 180.0

// cart-pole physical constants, as used by runCart/doAction in the
// teacher's single-pole emulator.
const (
	gravity        = 9.8
	cartMass       = 1.0
	poleMass       = 0.1
	poleHalfLength = 0.5
	forceMag       = 10.0
	tau            = 0.02
)

// SinglePoleConfig parameterizes SinglePoleBalance.
type SinglePoleConfig struct {
	MaxTimesteps       int
	TrackLengthMeters  float64
	PoleAngleThreshold float64
}

// DefaultSinglePoleConfig returns the canonical parameters.
func DefaultSinglePoleConfig() SinglePoleConfig {
	return SinglePoleConfig{
		MaxTimesteps:       200000,
		TrackLengthMeters:  2.4,
		PoleAngleThreshold: math.Pi / 15,
	}
}

// poleState is the 4-variable physical state of the cart-pole system.
type poleState struct {
	cartPos, cartVel, poleAngle, poleAngVel float64
}

// step integrates the cart-pole physics forward by tau seconds using
// Euler's method, exactly as the teacher's doAction does, with the pole
// mass taken from this package's poleMass constant (0.1kg) rather than the
// teacher's 0.5kg.
func (s poleState) step(force float64) poleState {
	totalMass := poleMass + cartMass
	poleMassLength := poleMass * poleHalfLength

	cosTheta := math.Cos(s.poleAngle)
	sinTheta := math.Sin(s.poleAngle)

	temp := (force + poleMassLength*s.poleAngVel*s.poleAngVel*sinTheta) / totalMass
	thetaAcc := (gravity*sinTheta - cosTheta*temp) /
		(poleHalfLength * (4.0/3.0 - poleMass*cosTheta*cosTheta/totalMass))
	xAcc := temp - poleMassLength*thetaAcc*cosTheta/totalMass

	return poleState{
		cartPos:    s.cartPos + tau*s.cartVel,
		cartVel:    s.cartVel + tau*xAcc,
		poleAngle:  s.poleAngle + tau*s.poleAngVel,
		poleAngVel: s.poleAngVel + tau*thetaAcc,
	}
}

// clamp restricts x to [lo, hi].
func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// SinglePoleBalance drives box through the single-pole balancing task and
// returns a fitness of elapsed timesteps plus a proximity-to-center bonus,
// per the teacher's runCart generalized to a single bounded-force output
// instead of a two-output argmax controller.
func SinglePoleBalance(box engine.BlackBox, cfg SinglePoleConfig) float64 {
	state := poleState{}
	in := box.InputVector()
	out := box.OutputVector()

	elapsed := 0
	for ; elapsed < cfg.MaxTimesteps; elapsed++ {
		in.Set(0, 1.0)
		in.Set(1, state.cartPos/cfg.TrackLengthMeters)
		in.Set(2, state.cartVel)
		in.Set(3, state.poleAngle/twelveDegrees)
		in.Set(4, state.poleAngVel)

		box.Activate()

		force := clamp(out.Get(0)-0.5, -1, 1) * forceMag
		state = state.step(force)

		if math.Abs(state.cartPos) > cfg.TrackLengthMeters || math.Abs(state.poleAngle) > cfg.PoleAngleThreshold {
			break
		}
	}

	return float64(elapsed) + (cfg.TrackLengthMeters-math.Abs(state.cartPos))*5.0
}
