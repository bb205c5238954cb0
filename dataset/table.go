package dataset

import (
	"io"
	"slices"

	"github.com/chewxy/math32"
	"github.com/go-gota/gota/dataframe"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/blas/blas32"

	"github.com/sw965/dsprep/blas32/tensor/2d"
)

var (
	ErrMissingLabel = errors.New("label column not found")
	ErrFeatureCount = errors.New("unexpected number of feature columns")
	ErrInvalidValue = errors.New("invalid cell value")
	ErrEmpty        = errors.New("dataset has no rows")
)

// Table はラベル列と画素列を分離した表です。Pixels は (行数, 画素列数) の行列です。
type Table struct {
	Labels []int
	Pixels blas32.General
}

func (t Table) Rows() int {
	return len(t.Labels)
}

func (t Table) Features() int {
	return t.Pixels.Cols
}

// Row は i 行目の画素列を返します。
func (t Table) Row(i int) []float32 {
	return tensor2d.Row(t.Pixels, i)
}

// ReadTable はヘッダー付きの CSV を読み込み、ラベル列とそれ以外の画素列に分けます。
func ReadTable(r io.Reader, opts Options) (Table, error) {
	df := dataframe.ReadCSV(r)
	if err := df.Error(); err != nil {
		return Table{}, errors.Wrap(err, "parse csv")
	}

	if !slices.Contains(df.Names(), opts.LabelColumn) {
		return Table{}, errors.Wrapf(ErrMissingLabel, "%q", opts.LabelColumn)
	}

	features := df.Drop(opts.LabelColumn)
	if err := features.Error(); err != nil {
		return Table{}, errors.Wrap(err, "drop label column")
	}
	if want := opts.FeatureSize(); features.Ncol() != want {
		return Table{}, errors.Wrapf(
			ErrFeatureCount, "got %d, want %d (%dx%dx%d)",
			features.Ncol(), want, opts.Rows, opts.Cols, opts.Channels,
		)
	}

	n := df.Nrow()
	if n == 0 {
		return Table{}, ErrEmpty
	}

	labelCol := df.Col(opts.LabelColumn)
	labels, err := labelCol.Int()
	if err != nil {
		return Table{}, errors.Wrapf(ErrInvalidValue, "column %q: %v", opts.LabelColumn, err)
	}
	for i, v := range labelCol.Float() {
		if v != float64(labels[i]) {
			return Table{}, errors.Wrapf(ErrInvalidValue, "row %d column %q: %v is not an integer", i+1, opts.LabelColumn, v)
		}
	}

	pixels := tensor2d.NewZeros(n, features.Ncol())
	for j, name := range features.Names() {
		col := features.Col(name)
		for i, v := range col.Float() {
			x := float32(v)
			if math32.IsNaN(x) || math32.IsInf(x, 0) {
				return Table{}, errors.Wrapf(ErrInvalidValue, "row %d column %q: %q", i+1, name, col.Elem(i).String())
			}
			pixels.Data[tensor2d.At(pixels, i, j)] = x
		}
	}

	return Table{Labels: labels, Pixels: pixels}, nil
}
