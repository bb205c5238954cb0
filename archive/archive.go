// Package archive はダウンロード済みのデータセットアーカイブを
// 機械学習ライブラリのキャッシュディレクトリへ配置します。
package archive

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

var (
	ErrInvalidConfig    = errors.New("invalid relocation config")
	ErrSourceNotFound   = errors.New("source archive not found")
	ErrSourceNotRegular = errors.New("source archive is not a regular file")
	ErrChecksumMismatch = errors.New("source archive checksum mismatch")
)

// Relocate は cfg.SourcePath を cfg.DestDir/cfg.ArchiveName へ移動(またはコピー)します。
// ソースが存在しない場合はディレクトリを作らずに ErrSourceNotFound を返します。
func Relocate(cfg Config, logger *zap.SugaredLogger) error {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	info, err := os.Stat(cfg.SourcePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return errors.Wrapf(&notFoundError{path: cfg.SourcePath, err: err}, "relocate")
		}
		return errors.Wrapf(err, "stat %s", cfg.SourcePath)
	}
	if !info.Mode().IsRegular() {
		return errors.Wrapf(ErrSourceNotRegular, "%s", cfg.SourcePath)
	}

	if cfg.SHA256 != "" {
		if err := verifySHA256(cfg.SourcePath, cfg.SHA256); err != nil {
			return err
		}
		logger.Debugw("checksum verified", "path", cfg.SourcePath)
	}

	if err := os.MkdirAll(cfg.DestDir, cfg.dirPerm()); err != nil {
		return errors.Wrapf(err, "create %s", cfg.DestDir)
	}

	dest := cfg.DestPath()
	switch cfg.Mode {
	case ModeCopy:
		err = copyFile(cfg.SourcePath, dest, info.Mode().Perm())
	default:
		err = moveFile(cfg.SourcePath, dest, info.Mode().Perm(), logger)
	}
	if err != nil {
		return err
	}

	logger.Infow("archive relocated",
		"mode", cfg.Mode.String(),
		"src", cfg.SourcePath,
		"dest", dest,
		"bytes", info.Size(),
	)
	return nil
}

// notFoundError は ErrSourceNotFound と fs.ErrNotExist の両方として判定できます。
type notFoundError struct {
	path string
	err  error
}

func (e *notFoundError) Error() string {
	return ErrSourceNotFound.Error() + ": " + e.path
}

func (e *notFoundError) Is(target error) bool {
	return target == ErrSourceNotFound
}

func (e *notFoundError) Unwrap() error {
	return e.err
}

func moveFile(src, dest string, perm fs.FileMode, logger *zap.SugaredLogger) error {
	err := os.Rename(src, dest)
	if err == nil {
		return nil
	}
	if !errors.Is(err, syscall.EXDEV) {
		return errors.Wrapf(err, "move %s", src)
	}

	// 別デバイス間では rename できないため、コピーしてから元を消す
	logger.Debugw("cross-device rename, falling back to copy", "src", src, "dest", dest)
	if err := copyFile(src, dest, perm); err != nil {
		return err
	}
	return errors.Wrapf(os.Remove(src), "remove %s", src)
}

// copyFile は dest と同じディレクトリの一時ファイルへ書き込んでから置き換えます。
func copyFile(src, dest string, perm fs.FileMode) (err error) {
	in, err := os.Open(src)
	if err != nil {
		return errors.Wrapf(err, "open %s", src)
	}
	defer func() {
		err = multierr.Append(err, in.Close())
	}()

	tmp, err := os.CreateTemp(filepath.Dir(dest), "."+filepath.Base(dest)+".*.tmp")
	if err != nil {
		return errors.Wrapf(err, "create temp file in %s", filepath.Dir(dest))
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			err = multierr.Append(err, ignoreNotExist(os.Remove(tmpName)))
		}
	}()

	if _, err := io.Copy(tmp, in); err != nil {
		return multierr.Append(errors.Wrapf(err, "copy %s", src), tmp.Close())
	}
	if err := tmp.Sync(); err != nil {
		return multierr.Append(errors.Wrapf(err, "sync %s", tmpName), tmp.Close())
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrapf(err, "close %s", tmpName)
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		return errors.Wrapf(err, "chmod %s", tmpName)
	}
	return errors.Wrapf(os.Rename(tmpName, dest), "rename into %s", dest)
}

func verifySHA256(path, want string) (err error) {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "open %s", path)
	}
	defer func() {
		err = multierr.Append(err, f.Close())
	}()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return errors.Wrapf(err, "hash %s", path)
	}
	got := hex.EncodeToString(h.Sum(nil))
	if !strings.EqualFold(got, want) {
		return errors.Wrapf(ErrChecksumMismatch, "%s: got %s, want %s", path, got, want)
	}
	return nil
}

func ignoreNotExist(err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
