package phenome

import "github.com/nn-phenome/phenomecore/engine"

// TruthTableCase is one row of a truth table: the non-bias input values and
// the expected (ideal) output sign, +1 or -1.
type TruthTableCase struct {
	Inputs []float64
	Target float64
}

// allCorrectBonus is added to the accumulated reward when every case in the
// table was answered with the correct sign, generalizing the teacher's
// XOR.go win-threshold check (organism.Fitness >= 15.5-ish territory) into
// an explicit per-case-reward-plus-bonus scheme per the truth-table
// evaluator's continuous-reward contract.
const allCorrectBonus = 10.0

// caseReward scores a single case's output y against its target sign,
// generalizing XOR.go's squared-error accumulation
// (math.Pow(4.0-errorSum, 2.0)) into a symmetric continuous reward that
// rewards y close to +1 for a positive target and close to -1 for a
// negative one.
func caseReward(y, target float64) float64 {
	if target >= 0 {
		return 0.75 + 0.5*y - 0.25*y*y
	}
	return 0.75 - 0.5*y - 0.25*y*y
}

// EvaluateTruthTable drives box through every case in table, writing a bias
// input of 1.0 followed by each case's inputs, accumulating caseReward per
// case, and resetting the box's state between cases as spec.md's
// truth-table evaluator requires. A bonus is added if every case's output
// had the correct sign.
func EvaluateTruthTable(box engine.BlackBox, table []TruthTableCase) float64 {
	total := 0.0
	allCorrect := true

	in := box.InputVector()
	out := box.OutputVector()

	for _, c := range table {
		box.ResetState()

		in.Set(0, 1.0)
		for i, v := range c.Inputs {
			in.Set(i+1, v)
		}

		box.Activate()
		y := out.Get(0)

		total += caseReward(y, c.Target)

		correct := (c.Target >= 0 && y > 0) || (c.Target < 0 && y <= 0)
		if !correct {
			allCorrect = false
		}
	}

	if allCorrect {
		total += allCorrectBonus
	}
	return total
}

// XORTable is the canonical 2-input XOR truth table in bipolar encoding
// (-1/+1 rather than 0/1), matching the four input combinations
// {(-1,-1),(-1,1),(1,-1),(1,1)} and expected outputs {-1,+1,+1,-1}.
func XORTable() []TruthTableCase {
	return []TruthTableCase{
		{Inputs: []float64{-1, -1}, Target: -1},
		{Inputs: []float64{-1, 1}, Target: 1},
		{Inputs: []float64{1, -1}, Target: 1},
		{Inputs: []float64{1, 1}, Target: -1},
	}
}

// MultiplexerTable builds the truth table for the 2^addressBits-line
// address/data multiplexer task: the first addressBits inputs select which
// of the remaining 2^addressBits data inputs is routed to the output.
func MultiplexerTable(addressBits int) []TruthTableCase {
	dataLines := 1 << addressBits
	totalLines := addressBits + dataLines
	totalCombos := 1 << totalLines

	table := make([]TruthTableCase, 0, totalCombos)
	for combo := 0; combo < totalCombos; combo++ {
		inputs := make([]float64, totalLines)
		address := 0
		for i := 0; i < totalLines; i++ {
			bit := (combo >> i) & 1
			inputs[i] = float64(bit)
			if i < addressBits {
				address |= bit << i
			}
		}
		selected := inputs[addressBits+address]
		target := -1.0
		if selected != 0 {
			target = 1.0
		}
		table = append(table, TruthTableCase{Inputs: inputs, Target: target})
	}
	return table
}
