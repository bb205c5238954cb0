package tensor4d_test

import (
	"slices"
	"testing"

	"github.com/pkg/errors"
	"go.viam.com/test"
	"gonum.org/v1/gonum/blas/blas32"

	"github.com/sw965/dsprep/blas32/tensor/2d"
	"github.com/sw965/dsprep/blas32/tensor/4d"
)

func TestNewZeros(t *testing.T) {
	gen := tensor4d.NewZeros(2, 3, 4, 1)
	test.That(t, gen.Shape(), test.ShouldResemble, [4]int{2, 3, 4, 1})
	test.That(t, gen.N(), test.ShouldEqual, 24)
	test.That(t, gen.BatchStride, test.ShouldEqual, 12)
	test.That(t, gen.RowStride, test.ShouldEqual, 4)
	test.That(t, gen.ColStride, test.ShouldEqual, 1)
	test.That(t, gen.Data, test.ShouldHaveLength, 24)
}

func TestFromFlat(t *testing.T) {
	data := []float32{
		1, 2, 3, 4,
		5, 6, 7, 8,
	}

	gen, err := tensor4d.FromFlat(data, 2, 2, 2, 1)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, gen.Shape(), test.ShouldResemble, [4]int{2, 2, 2, 1})
	test.That(t, gen.Data[gen.At(1, 0, 1, 0)], test.ShouldEqual, float32(6))
	test.That(t, gen.Data[gen.At(0, 1, 0, 0)], test.ShouldEqual, float32(3))

	_, err = tensor4d.FromFlat(data, 3, 2, 2, 1)
	test.That(t, errors.Is(err, tensor4d.ErrShapeMismatch), test.ShouldBeTrue)

	_, err = tensor4d.FromFlat(data, 2, 0, 2, 1)
	test.That(t, errors.Is(err, tensor4d.ErrShapeMismatch), test.ShouldBeTrue)
}

func TestReshape(t *testing.T) {
	rows := 5
	table := tensor2d.NewZeros(rows, 784)
	for i := range table.Data {
		table.Data[i] = float32(i % 251)
	}

	gen, err := tensor4d.Reshape(table, 28, 28, 1)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, gen.Shape(), test.ShouldResemble, [4]int{5, 28, 28, 1})
	test.That(t, gen.N(), test.ShouldEqual, tensor2d.N(table))

	for b := 0; b < rows; b++ {
		test.That(t, slices.Equal(gen.Sample(b), tensor2d.Row(table, b)), test.ShouldBeTrue)
	}

	_, err = tensor4d.Reshape(tensor2d.NewZeros(rows, 783), 28, 28, 1)
	test.That(t, errors.Is(err, tensor4d.ErrShapeMismatch), test.ShouldBeTrue)

	_, err = tensor4d.Reshape(table, 27, 28, 1)
	test.That(t, errors.Is(err, tensor4d.ErrShapeMismatch), test.ShouldBeTrue)

	padded := blas32.General{Rows: 1, Cols: 4, Stride: 5, Data: make([]float32, 5)}
	_, err = tensor4d.Reshape(padded, 2, 2, 1)
	test.That(t, errors.Is(err, tensor4d.ErrShapeMismatch), test.ShouldBeTrue)
}

func TestGather(t *testing.T) {
	gen, err := tensor4d.FromFlat([]float32{
		0, 0, 0, 0,
		1, 1, 1, 1,
		2, 2, 2, 2,
	}, 3, 2, 2, 1)
	test.That(t, err, test.ShouldBeNil)

	result, err := gen.Gather([]int{2, 0})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, result.Shape(), test.ShouldResemble, [4]int{2, 2, 2, 1})
	test.That(t, result.Data, test.ShouldResemble, []float32{2, 2, 2, 2, 0, 0, 0, 0})

	// 元のテンソルとはメモリを共有しない
	result.Data[0] = 100
	test.That(t, gen.Data[8], test.ShouldEqual, float32(2))

	_, err = gen.Gather([]int{3})
	test.That(t, err, test.ShouldNotBeNil)
}

func TestScal(t *testing.T) {
	gen, err := tensor4d.FromFlat([]float32{0, 255, 51, 102}, 1, 2, 2, 1)
	test.That(t, err, test.ShouldBeNil)

	gen.Scal(1.0 / 255.0)
	expected := []float32{0, 1, 0.2, 0.4}
	for i := range expected {
		test.That(t, gen.Data[i], test.ShouldAlmostEqual, expected[i], 1e-6)
	}

	empty := tensor4d.NewZeros(0, 28, 28, 1)
	empty.Scal(2)
	test.That(t, empty.N(), test.ShouldEqual, 0)
}

func TestClone(t *testing.T) {
	gen := tensor4d.NewZeros(1, 1, 2, 1)
	clone := gen.Clone()
	clone.Data[0] = 1
	test.That(t, gen.Data[0], test.ShouldEqual, float32(0))
	test.That(t, clone.Shape(), test.ShouldResemble, gen.Shape())
}
