// relocate-cifar はブラウザでダウンロードした CIFAR-10 のアーカイブを
// Keras のキャッシュディレクトリ (~/.keras/datasets) へ移します。
package main

import (
	"flag"
	"os"

	"go.uber.org/zap"

	"github.com/sw965/dsprep/archive"
)

func main() {
	logger := zap.Must(zap.NewDevelopment()).Sugar()
	defer logger.Sync()

	cfg, err := archive.DefaultConfigFromEnv()
	if err != nil {
		logger.Fatalw("設定の初期化に失敗", "error", err)
	}

	flag.StringVar(&cfg.SourcePath, "src", cfg.SourcePath, "ダウンロードしたアーカイブ")
	flag.StringVar(&cfg.DestDir, "dest-dir", cfg.DestDir, "キャッシュディレクトリ")
	flag.StringVar(&cfg.ArchiveName, "name", cfg.ArchiveName, "キャッシュ内のファイル名")
	flag.StringVar(&cfg.SHA256, "sha256", "", "期待する SHA-256 (16進数)")
	copyMode := flag.Bool("copy", false, "移動せずにコピーする")
	flag.Parse()

	if *copyMode {
		cfg.Mode = archive.ModeCopy
	}

	if err := archive.Relocate(cfg, logger); err != nil {
		logger.Errorw("アーカイブの配置に失敗", "error", err)
		logger.Sync()
		os.Exit(1)
	}
}
