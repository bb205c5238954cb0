// Package dataset は CSV 形式のラベル付き画像データセットを読み込み、
// 画像テンソルに整形して訓練用と検証用に分割します。
package dataset

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/sw965/dsprep/blas32/tensor/4d"
)

// LoadLabeledImages は root/opts.FileName を読み込み、(n, Rows, Cols, Channels) の画像に整形してから
// 訓練用と検証用に分割します。root は呼び出し側が必ず指定します。
func LoadLabeledImages(root string, opts Options) (split Split, err error) {
	if err := opts.Validate(); err != nil {
		return Split{}, err
	}
	logger := opts.logger()

	path := filepath.Join(root, opts.FileName)
	f, err := os.Open(path)
	if err != nil {
		return Split{}, errors.Wrap(err, "open dataset")
	}
	defer func() {
		err = multierr.Append(err, f.Close())
	}()

	table, err := ReadTable(f, opts)
	if err != nil {
		return Split{}, errors.Wrapf(err, "read %s", path)
	}
	logger.Debugw("table loaded", "path", path, "rows", table.Rows(), "features", table.Features())

	images, err := tensor4d.Reshape(table.Pixels, opts.Rows, opts.Cols, opts.Channels)
	if err != nil {
		return Split{}, err
	}
	if opts.Scale != 1 {
		images.Scal(opts.Scale)
	}

	split, err = SplitTrainValidation(images, table.Labels, opts.ValidationRatio, opts.Seed)
	if err != nil {
		return Split{}, err
	}

	logger.Infow("dataset split",
		"path", path,
		"train", split.TrainLen(),
		"val", split.ValLen(),
		"shape", images.Shape(),
		"seed", opts.Seed,
	)
	return split, nil
}
