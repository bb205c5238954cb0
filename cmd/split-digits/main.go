// split-digits は train.csv を読み込んで (n, 28, 28, 1) の画像に整形し、
// 訓練用と検証用に分割した結果を gob に保存します。
package main

import (
	"flag"
	"os"

	"go.uber.org/zap"

	"github.com/sw965/dsprep/dataset"
)

func main() {
	logger := zap.Must(zap.NewDevelopment()).Sugar()
	defer logger.Sync()

	opts := dataset.DefaultOptions()
	root := flag.String("root", "", "train.csv を含むディレクトリ")
	out := flag.String("out", "", "分割結果を保存する gob ファイル (省略時は保存しない)")
	flag.StringVar(&opts.FileName, "file", opts.FileName, "CSV ファイル名")
	flag.Uint64Var(&opts.Seed, "seed", opts.Seed, "分割に使う乱数シード")
	flag.Float64Var(&opts.ValidationRatio, "val-ratio", opts.ValidationRatio, "検証用の割合")
	normalize := flag.Bool("normalize", false, "画素値を 1/255 して [0, 1] にする")
	flag.Parse()

	if *root == "" {
		flag.Usage()
		os.Exit(2)
	}
	if *normalize {
		opts.Scale = 1.0 / 255.0
	}
	opts.Logger = logger

	split, err := dataset.LoadLabeledImages(*root, opts)
	if err != nil {
		logger.Fatalw("データセットの読み込みに失敗", "error", err)
	}
	logger.Infof("読み込み完了: Train[%d], Val[%d]", split.TrainLen(), split.ValLen())

	if *out == "" {
		return
	}
	if err := split.Save(*out); err != nil {
		logger.Fatalw("保存失敗", "error", err)
	}
	logger.Infof("完了！ '%s' に保存されました。", *out)
}
