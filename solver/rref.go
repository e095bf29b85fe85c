package solver

import "math/big"

// An echelon is the reduced row-echelon form of a residual system, truncated
// to its pivot rows. Coefficients are exact rationals: floating point would
// silently corrupt large targets through rounding.
// An echelon is never mutated after construction.
type echelon struct {
	coefs  [][]*big.Rat // rank × cols.
	rhs    []*big.Rat   // rank.
	pivots []int        // Pivot column of each echelon row, increasing.
	free   []int        // Columns without a pivot, increasing.
}

// newEchelon runs Gauss-Jordan elimination on matrix and target.
// ok is false when the system is inconsistent, i.e. some zero row ends up
// with a non-zero right-hand side.
func newEchelon(matrix [][]uint8, target []uint64) (e *echelon, ok bool) {
	nbRows := len(matrix)
	if nbRows == 0 {
		for _, v := range target {
			if v != 0 {
				return nil, false
			}
		}
		return &echelon{}, true
	}
	nbCols := len(matrix[0])
	coefs := make([][]*big.Rat, nbRows)
	for i, row := range matrix {
		coefs[i] = make([]*big.Rat, nbCols)
		for j, v := range row {
			coefs[i][j] = new(big.Rat).SetInt64(int64(v))
		}
	}
	rhs := make([]*big.Rat, nbRows)
	for i, v := range target {
		rhs[i] = new(big.Rat).SetInt(new(big.Int).SetUint64(v))
	}

	var pivots []int
	cur := 0
	var tmp big.Rat
	for col := 0; col < nbCols && cur < nbRows; col++ {
		pivot := -1
		for row := cur; row < nbRows; row++ {
			if coefs[row][col].Sign() != 0 {
				pivot = row
				break
			}
		}
		if pivot < 0 {
			continue // Free column: no pivot available.
		}
		coefs[cur], coefs[pivot] = coefs[pivot], coefs[cur]
		rhs[cur], rhs[pivot] = rhs[pivot], rhs[cur]
		pivotVal := new(big.Rat).Set(coefs[cur][col])
		for c := col; c < nbCols; c++ {
			coefs[cur][c].Quo(coefs[cur][c], pivotVal)
		}
		rhs[cur].Quo(rhs[cur], pivotVal)
		for row := 0; row < nbRows; row++ {
			if row == cur || coefs[row][col].Sign() == 0 {
				continue
			}
			factor := new(big.Rat).Set(coefs[row][col])
			for c := col; c < nbCols; c++ {
				tmp.Mul(coefs[cur][c], factor)
				coefs[row][c].Sub(coefs[row][c], &tmp)
			}
			tmp.Mul(rhs[cur], factor)
			rhs[row].Sub(rhs[row], &tmp)
		}
		pivots = append(pivots, col)
		cur++
	}

	// A row that vanished from the matrix but not from the target admits no
	// solution at all.
	for row := cur; row < nbRows; row++ {
		allZero := true
		for _, v := range coefs[row] {
			if v.Sign() != 0 {
				allZero = false
				break
			}
		}
		if allZero && rhs[row].Sign() != 0 {
			return nil, false
		}
	}

	// Rows beyond the pivot count are linear combinations of the pivot rows
	// and carry no information.
	isPivot := make([]bool, nbCols)
	for _, col := range pivots {
		isPivot[col] = true
	}
	var free []int
	for col := 0; col < nbCols; col++ {
		if !isPivot[col] {
			free = append(free, col)
		}
	}
	rank := len(pivots)
	return &echelon{coefs: coefs[:rank], rhs: rhs[:rank], pivots: pivots, free: free}, true
}
