package tensor2d_test

import (
	"testing"

	"go.viam.com/test"
	"gonum.org/v1/gonum/blas/blas32"

	"github.com/sw965/dsprep/blas32/tensor/2d"
)

func TestRow(t *testing.T) {
	x := blas32.General{
		Rows:   3,
		Cols:   5,
		Stride: 5,
		Data: []float32{
			1, 2, 3, 4, 5,
			2, 5, 4, 1, 3,
			3, 1, 5, 2, 4,
		},
	}

	test.That(t, tensor2d.N(x), test.ShouldEqual, 15)
	test.That(t, tensor2d.Row(x, 1), test.ShouldResemble, []float32{2, 5, 4, 1, 3})
	test.That(t, x.Data[tensor2d.At(x, 2, 3)], test.ShouldEqual, float32(2))
	test.That(t, tensor2d.IsContiguous(x), test.ShouldBeTrue)

	// 行をまたぐ隙間があると平坦な配列としては扱えない
	padded := blas32.General{Rows: 2, Cols: 2, Stride: 3, Data: []float32{1, 2, 0, 3, 4, 0}}
	test.That(t, tensor2d.Row(padded, 1), test.ShouldResemble, []float32{3, 4})
	test.That(t, tensor2d.IsContiguous(padded), test.ShouldBeFalse)
}

func TestNewZeros(t *testing.T) {
	gen := tensor2d.NewZeros(4, 784)
	test.That(t, gen.Stride, test.ShouldEqual, 784)
	test.That(t, gen.Data, test.ShouldHaveLength, 4*784)
	test.That(t, tensor2d.IsContiguous(gen), test.ShouldBeTrue)
}
