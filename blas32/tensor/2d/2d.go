package tensor2d

import (
	"gonum.org/v1/gonum/blas/blas32"
)

func NewZeros(rows, cols int) blas32.General {
	return blas32.General{
		Rows:   rows,
		Cols:   cols,
		Stride: cols,
		Data:   make([]float32, rows*cols),
	}
}

func N(gen blas32.General) int {
	return gen.Rows * gen.Cols
}

func At(gen blas32.General, row, col int) int {
	return (row * gen.Stride) + col
}

// Row は row 行目をコピーせずに返します。
func Row(gen blas32.General, row int) []float32 {
	start := row * gen.Stride
	return gen.Data[start : start+gen.Cols]
}

// IsContiguous は行間に隙間がなく、Data をそのまま平坦な配列として扱えるかを返します。
func IsContiguous(gen blas32.General) bool {
	return gen.Stride == gen.Cols && len(gen.Data) == N(gen)
}
