package phenome

import (
	"github.com/nn-phenome/phenomecore/engine"
	"math"
)

const thirtySixDegrees = 36 * math.Pi / 180.0

// DoublePoleConfig parameterizes DoublePoleBalance. Markov mode exposes all
// six state variables (including velocities) plus a bias input; non-Markov
// mode withholds velocities, exactly as the teacher's CartDoublePole does.
type DoublePoleConfig struct {
	Markov       bool
	MaxTimesteps int
}

// DefaultDoublePoleConfig returns the canonical non-Markov parameters.
func DefaultDoublePoleConfig() DoublePoleConfig {
	return DoublePoleConfig{Markov: false, MaxTimesteps: 100000}
}

// doublePoleState is (x, ẋ, θ1, θ̇1, θ2, θ̇2): cart position/velocity and the
// two poles' angle/angular velocity.
type doublePoleState [6]float64

const (
	doublePoleMup       = 0.000002
	doublePoleGravity   = -9.8
	doublePoleForceMag  = 10.0
	doublePoleMassCart  = 1.0
	doublePoleMassPole1 = 1.0
	doublePoleLength1   = 0.5
	doublePoleLength2   = 0.05
	doublePoleMassPole2 = 0.1
	doublePoleRK4Tau    = 0.01
)

// doublePoleDerivatives computes the system's derivative vector at state st under the
// given force action, grounded on CartDoublePole.step.
func doublePoleDerivatives(action float64, st doublePoleState) doublePoleState {
	force := (action - 0.5) * doublePoleForceMag * 2.0
	cosTheta1, sinTheta1 := math.Cos(st[2]), math.Sin(st[2])
	gSinTheta1 := doublePoleGravity * sinTheta1
	cosTheta2, sinTheta2 := math.Cos(st[4]), math.Sin(st[4])
	gSinTheta2 := doublePoleGravity * sinTheta2

	ml1 := doublePoleLength1 * doublePoleMassPole1
	ml2 := doublePoleLength2 * doublePoleMassPole2
	temp1 := doublePoleMup * st[3] / ml1
	temp2 := doublePoleMup * st[5] / ml2
	fi1 := (ml1 * st[3] * st[3] * sinTheta1) + (0.75 * doublePoleMassPole1 * cosTheta1 * (temp1 + gSinTheta1))
	fi2 := (ml2 * st[5] * st[5] * sinTheta2) + (0.75 * doublePoleMassPole2 * cosTheta2 * (temp2 + gSinTheta2))
	mi1 := doublePoleMassPole1 * (1 - (0.75 * cosTheta1 * cosTheta1))
	mi2 := doublePoleMassPole2 * (1 - (0.75 * cosTheta2 * cosTheta2))

	var d doublePoleState
	d[0] = st[1]
	d[2] = st[3]
	d[4] = st[5]
	d[1] = (force + fi1 + fi2) / (mi1 + mi2 + doublePoleMassCart)
	d[3] = -0.75 * (d[1]*cosTheta1 + gSinTheta1 + temp1) / doublePoleLength1
	d[5] = -0.75 * (d[1]*cosTheta2 + gSinTheta2 + temp2) / doublePoleLength2
	return d
}

// rk4Step advances st by tau seconds under the given force action using
// 4th-order Runge-Kutta integration, ported from CartDoublePole.rk4.
func rk4Step(action float64, y doublePoleState, dydx doublePoleState, tau float64) doublePoleState {
	hh := tau * 0.5
	h6 := tau / 6.0

	var yt doublePoleState
	for i := range yt {
		yt[i] = y[i] + hh*dydx[i]
	}
	dyt := doublePoleDerivatives(action, yt)

	for i := range yt {
		yt[i] = y[i] + hh*dyt[i]
	}
	dym := doublePoleDerivatives(action, yt)

	for i := range yt {
		yt[i] = y[i] + tau*dym[i]
		dym[i] += dyt[i]
	}
	dyt = doublePoleDerivatives(action, yt)

	var out doublePoleState
	for i := range out {
		out[i] = y[i] + h6*(dydx[i]+dyt[i]+2.0*dym[i])
	}
	return out
}

func (s doublePoleState) outsideBounds() bool {
	return s[0] < -2.4 || s[0] > 2.4 ||
		s[2] < -thirtySixDegrees || s[2] > thirtySixDegrees ||
		s[4] < -thirtySixDegrees || s[4] > thirtySixDegrees
}

// DoublePoleBalance drives box through the two-pole balancing task, using
// RK4 integration run twice per control step (as the teacher's
// performAction does — each control action is held for two consecutive
// TAU=0.01s RK4 steps, 0.02s in all) and returns a Gruau-style jiggle-damped fitness in non-Markov
// mode, or raw elapsed steps in Markov mode.
func DoublePoleBalance(box engine.BlackBox, cfg DoublePoleConfig) float64 {
	var state doublePoleState
	if !cfg.Markov {
		state[2] = math.Pi / 180.0 // one degree, as CartDoublePole.resetState does for non-Markov
	}

	in := box.InputVector()
	out := box.OutputVector()

	jiggle := make([]float64, cfg.MaxTimesteps)
	balancedSteps := 0

	elapsed := 0
	for ; elapsed < cfg.MaxTimesteps; elapsed++ {
		if cfg.Markov {
			in.Set(0, (state[0]+2.4)/4.8)
			in.Set(1, (state[1]+1.0)/2.0)
			in.Set(2, (state[2]+thirtySixDegrees)/(thirtySixDegrees*2.0))
			in.Set(3, (state[3]+1.0)/2.0)
			in.Set(4, (state[4]+thirtySixDegrees)/(thirtySixDegrees*2.0))
			in.Set(5, (state[5]+1.0)/2.0)
			in.Set(6, 0.5)
		} else {
			in.Set(0, state[0]/4.8)
			in.Set(1, state[2]/0.52)
			in.Set(2, state[4]/0.52)
			in.Set(3, 1.0)
		}

		box.Activate()
		action := out.Get(0)

		for i := 0; i < 2; i++ {
			d := doublePoleDerivatives(action, state)
			state = rk4Step(action, state, d, doublePoleRK4Tau)
		}

		jiggle[elapsed] = math.Abs(state[0]) + math.Abs(state[1]) + math.Abs(state[2]) + math.Abs(state[3])
		if !state.outsideBounds() {
			balancedSteps++
		}

		if state.outsideBounds() {
			elapsed++
			break
		}
	}

	if cfg.Markov {
		return float64(elapsed)
	}

	jiggleTotal := 0.0
	if elapsed >= 100 {
		for i := elapsed - 100; i < elapsed; i++ {
			jiggleTotal += jiggle[i]
		}
	}
	if balancedSteps >= 100 {
		return 0.1*float64(balancedSteps)/1000.0 + 0.9*0.75/jiggleTotal
	}
	return 0.1 * float64(balancedSteps) / 1000.0
}
