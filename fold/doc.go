// Package fold provides the sequential pipeline evaluator: a left fold of
// named binary operations over an ordered list of operands.
//
// Operation i is applied to (operands[i], operands[i+1]) and its result
// becomes operands[i+1], so each intermediate value lands at its own index.
//
// # Usage
//
//	operands := []float64{1, 1, 3, 0, 4}
//	result, err := fold.Zip(operands, []fold.Operation[float64]{
//	    arith.Add, arith.Multiply, arith.Add, arith.Divide,
//	})
//	// result == 1.5, operands == [1 2 6 6 1.5]
//
// Zip uses the operand slice as its scratch buffer. Evaluate runs the same
// fold on a copy and returns every partial result alongside the final value.
package fold
