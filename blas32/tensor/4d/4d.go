package tensor4d

import (
	"fmt"
	"slices"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/blas/blas32"

	"github.com/sw965/dsprep/blas32/tensor/2d"
)

// ErrShapeMismatch は要素数が形状と一致しない場合に返されます。
var ErrShapeMismatch = errors.New("tensor4d: shape mismatch")

// General は (Batches, Rows, Cols, Channels) の順に並ぶ NHWC 形式の4次元テンソルです。
type General struct {
	Batches     int
	Rows        int
	Cols        int
	Channels    int
	BatchStride int
	RowStride   int
	ColStride   int
	Data        []float32
}

func NewZeros(batches, rows, cols, chs int) General {
	colStride := chs
	rowStride := cols * colStride
	batchStride := rows * rowStride
	n := batches * batchStride

	return General{
		Batches:     batches,
		Rows:        rows,
		Cols:        cols,
		Channels:    chs,
		BatchStride: batchStride,
		RowStride:   rowStride,
		ColStride:   colStride,
		Data:        make([]float32, n),
	}
}

func NewZerosLike(gen General) General {
	return NewZeros(gen.Batches, gen.Rows, gen.Cols, gen.Channels)
}

// FromFlat は平坦なデータを (batches, rows, cols, chs) として解釈します。
// データはコピーされず、そのまま Data になります。
func FromFlat(data []float32, batches, rows, cols, chs int) (General, error) {
	if batches < 0 || rows <= 0 || cols <= 0 || chs <= 0 {
		return General{}, errors.Wrapf(ErrShapeMismatch, "invalid shape (%d, %d, %d, %d)", batches, rows, cols, chs)
	}
	if want := batches * rows * cols * chs; len(data) != want {
		return General{}, errors.Wrapf(
			ErrShapeMismatch, "cannot reshape %d elements into (%d, %d, %d, %d)",
			len(data), batches, rows, cols, chs,
		)
	}
	gen := NewZeros(0, rows, cols, chs)
	gen.Batches = batches
	gen.Data = data
	return gen, nil
}

// Reshape は (n, rows*cols*chs) の行列を要素の並びを変えずに (n, rows, cols, chs) と解釈します。
// 行列の Data はコピーされません。
func Reshape(gen blas32.General, rows, cols, chs int) (General, error) {
	if !tensor2d.IsContiguous(gen) {
		return General{}, errors.Wrapf(ErrShapeMismatch, "matrix with stride %d and %d columns is not contiguous", gen.Stride, gen.Cols)
	}
	if gen.Cols != rows*cols*chs {
		return General{}, errors.Wrapf(ErrShapeMismatch, "row size %d != %d*%d*%d", gen.Cols, rows, cols, chs)
	}
	return FromFlat(gen.Data, gen.Rows, rows, cols, chs)
}

func (g General) N() int {
	return g.Batches * g.Rows * g.Cols * g.Channels
}

func (g General) Shape() [4]int {
	return [4]int{g.Batches, g.Rows, g.Cols, g.Channels}
}

func (g General) String() string {
	return fmt.Sprintf("tensor4d.General%v", g.Shape())
}

func (g General) Clone() General {
	return General{
		Batches:     g.Batches,
		Rows:        g.Rows,
		Cols:        g.Cols,
		Channels:    g.Channels,
		BatchStride: g.BatchStride,
		RowStride:   g.RowStride,
		ColStride:   g.ColStride,
		Data:        slices.Clone(g.Data),
	}
}

func (g General) At(batch, row, col, ch int) int {
	return (batch * g.BatchStride) + (row * g.RowStride) + (col * g.ColStride) + ch
}

// Sample は batch 番目の画像を平坦なスライスとして返します。コピーではありません。
func (g General) Sample(batch int) []float32 {
	start := batch * g.BatchStride
	return g.Data[start : start+g.BatchStride]
}

func (g General) ToVector() blas32.Vector {
	return blas32.Vector{
		N:    g.N(),
		Inc:  1,
		Data: g.Data,
	}
}

// Gather は indices の順にサンプルを集めた新しいテンソルを返します。
func (g General) Gather(indices []int) (General, error) {
	dst := NewZeros(len(indices), g.Rows, g.Cols, g.Channels)
	for i, idx := range indices {
		if idx < 0 || idx >= g.Batches {
			return General{}, errors.Errorf("batch index out of range at %d: %d (batches=%d)", i, idx, g.Batches)
		}
		src := blas32.Vector{N: g.BatchStride, Inc: 1, Data: g.Sample(idx)}
		y := blas32.Vector{N: dst.BatchStride, Inc: 1, Data: dst.Sample(i)}
		blas32.Copy(src, y)
	}
	return dst, nil
}

func (g General) Scal(alpha float32) {
	if g.N() == 0 {
		return
	}
	blas32.Scal(alpha, g.ToVector())
}
