package archive

import (
	"encoding/hex"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

const (
	CIFAR10DownloadName = "cifar-10-python.tar.gz"
	CIFAR10CacheName    = "cifar-10-batches-py.tar.gz"
)

// Mode はアーカイブを移動するかコピーするかを表します。
type Mode int

const (
	ModeMove Mode = iota
	ModeCopy
)

func (m Mode) String() string {
	switch m {
	case ModeMove:
		return "move"
	case ModeCopy:
		return "copy"
	default:
		return "unknown"
	}
}

// Config は Relocate の入力です。
type Config struct {
	SourcePath  string
	DestDir     string
	ArchiveName string
	Mode        Mode
	// SHA256 が空でなければ、移動前にソースのダイジェストを照合します。
	SHA256  string
	DirPerm fs.FileMode
}

// DefaultConfig は home/Downloads にある CIFAR-10 を Keras のキャッシュディレクトリへ移す設定を返します。
func DefaultConfig(home string) Config {
	return Config{
		SourcePath:  filepath.Join(home, "Downloads", CIFAR10DownloadName),
		DestDir:     filepath.Join(home, ".keras", "datasets"),
		ArchiveName: CIFAR10CacheName,
		Mode:        ModeMove,
		DirPerm:     0755,
	}
}

func DefaultConfigFromEnv() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, errors.Wrap(err, "resolve home directory")
	}
	return DefaultConfig(home), nil
}

func (c Config) DestPath() string {
	return filepath.Join(c.DestDir, c.ArchiveName)
}

func (c Config) Validate() error {
	if c.SourcePath == "" {
		return errors.Wrap(ErrInvalidConfig, "source path is required")
	}
	if c.DestDir == "" {
		return errors.Wrap(ErrInvalidConfig, "destination directory is required")
	}
	if c.ArchiveName == "" {
		return errors.Wrap(ErrInvalidConfig, "archive name is required")
	}
	if c.ArchiveName != filepath.Base(c.ArchiveName) {
		return errors.Wrapf(ErrInvalidConfig, "archive name %q must not contain a directory", c.ArchiveName)
	}
	if c.Mode != ModeMove && c.Mode != ModeCopy {
		return errors.Wrapf(ErrInvalidConfig, "unknown mode %d", c.Mode)
	}
	if c.SHA256 != "" {
		if b, err := hex.DecodeString(c.SHA256); err != nil || len(b) != 32 {
			return errors.Wrapf(ErrInvalidConfig, "sha256 %q is not a hex digest", c.SHA256)
		}
	}
	return nil
}

func (c Config) dirPerm() fs.FileMode {
	if c.DirPerm == 0 {
		return 0755
	}
	return c.DirPerm
}
