package phenome

// EvaluateBJ is a suspect evaluator carried over unexplained: in the source
// material this module's evaluators were ported from, its fitness
// accumulator had most of its arithmetic commented out, leaving only a
// fragment of the original expression active. No corresponding file exists
// anywhere in this module's reference corpus, and what the evaluator was
// meant to measure ("BJ") is not explained anywhere either. Per the
// decision to preserve source ambiguity rather than guess, this reproduces
// only the fragment that was actually active rather than reconstructing
// the commented-out arithmetic around it.
func EvaluateBJ(rawOutputs []float64) float64 {
	if len(rawOutputs) == 0 {
		return 0
	}
	// sum := rawOutputs[0]*weightA - rawOutputs[1]*weightB + bias (commented out upstream)
	return rawOutputs[0]
}
