package solver

import (
	"math/big"
	"math/bits"
)

// assemble turns a free-column assignment into a complete press vector for
// the residual system and validates it.
//
// Each pivot value is target_row − Σ(coefficient × free count), evaluated
// with exact rationals. The assignment is infeasible when any pivot value is
// not an integer, is negative, or exceeds the column's press bound. Valid
// vectors are replayed against the residual matrix as a final check before
// the total is trusted.
func assemble(counts []uint64, ech *echelon, rs *reducedSystem, bounds []uint64) (total uint64, presses []uint64, feasible bool, err error) {
	nbCols := len(rs.cols)
	presses = make([]uint64, nbCols)
	for i, col := range ech.free {
		presses[col] = counts[i]
	}
	var val, term big.Rat
	var count big.Int
	for rowIdx, pivotCol := range ech.pivots {
		val.Set(ech.rhs[rowIdx])
		for i, col := range ech.free {
			coef := ech.coefs[rowIdx][col]
			if coef.Sign() == 0 || counts[i] == 0 {
				continue
			}
			count.SetUint64(counts[i])
			term.SetInt(&count)
			term.Mul(&term, coef)
			val.Sub(&val, &term)
		}
		if !val.IsInt() || val.Sign() < 0 {
			return 0, nil, false, nil
		}
		num := val.Num()
		if !num.IsUint64() {
			// Larger than any counter demand, so larger than the bound.
			return 0, nil, false, nil
		}
		pivotCount := num.Uint64()
		if pivotCount > bounds[pivotCol] {
			return 0, nil, false, nil
		}
		presses[pivotCol] = pivotCount
	}
	if !replay(rs.matrix, rs.target, presses) {
		return 0, nil, false, nil
	}
	for _, p := range presses {
		var ok bool
		if total, ok = addU64(total, p); !ok {
			return 0, nil, false, ErrOverflow
		}
	}
	return total, presses, true, nil
}

// replay confirms that the press vector hits every row target exactly.
func replay(matrix [][]uint8, target []uint64, presses []uint64) bool {
	for rowIdx, row := range matrix {
		var sum uint64
		for colIdx, entry := range row {
			if entry == 0 {
				continue
			}
			var carry uint64
			sum, carry = bits.Add64(sum, presses[colIdx], 0)
			if carry != 0 {
				return false
			}
		}
		if sum != target[rowIdx] {
			return false
		}
	}
	return true
}
