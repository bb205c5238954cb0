package dataset

import (
	"github.com/chewxy/math32"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	TrainCSV        = "train.csv"
	LabelColumn     = "label"
	ImageRows       = 28
	ImageCols       = 28
	ImageChannels   = 1
	ValidationRatio = 0.2
	Seed            = 42
)

var ErrInvalidOptions = errors.New("invalid dataset options")

// Options は LoadLabeledImages の設定です。DefaultOptions から変更して使います。
type Options struct {
	FileName        string
	LabelColumn     string
	Rows            int
	Cols            int
	Channels        int
	ValidationRatio float64
	Seed            uint64
	// Scale は読み込んだ画素値に掛ける係数です。1.0/255 で [0, 1] に正規化されます。
	Scale  float32
	Logger *zap.SugaredLogger
}

func DefaultOptions() Options {
	return Options{
		FileName:        TrainCSV,
		LabelColumn:     LabelColumn,
		Rows:            ImageRows,
		Cols:            ImageCols,
		Channels:        ImageChannels,
		ValidationRatio: ValidationRatio,
		Seed:            Seed,
		Scale:           1,
	}
}

// FeatureSize は1サンプルあたりの画素列の数です。
func (o Options) FeatureSize() int {
	return o.Rows * o.Cols * o.Channels
}

func (o Options) Validate() error {
	if o.FileName == "" {
		return errors.Wrap(ErrInvalidOptions, "file name is required")
	}
	if o.LabelColumn == "" {
		return errors.Wrap(ErrInvalidOptions, "label column is required")
	}
	if o.Rows <= 0 || o.Cols <= 0 || o.Channels <= 0 {
		return errors.Wrapf(ErrInvalidOptions, "image shape (%d, %d, %d) must be positive", o.Rows, o.Cols, o.Channels)
	}
	if o.ValidationRatio < 0 || o.ValidationRatio > 1 {
		return errors.Wrapf(ErrInvalidOptions, "validation ratio %v is outside [0, 1]", o.ValidationRatio)
	}
	if o.Scale == 0 || math32.IsNaN(o.Scale) || math32.IsInf(o.Scale, 0) {
		return errors.Wrapf(ErrInvalidOptions, "scale %v must be finite and non-zero", o.Scale)
	}
	return nil
}

func (o Options) logger() *zap.SugaredLogger {
	if o.Logger == nil {
		return zap.NewNop().Sugar()
	}
	return o.Logger
}
