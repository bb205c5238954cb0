package dataset

import (
	"bufio"
	"encoding/gob"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// Save は分割済みのデータセットを gob として path に書き出します。
func (s Split) Save(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create split cache")
	}
	defer func() {
		err = multierr.Append(err, f.Close())
	}()

	w := bufio.NewWriter(f)
	if err := gob.NewEncoder(w).Encode(s); err != nil {
		return errors.Wrapf(err, "encode %s", path)
	}
	return errors.Wrapf(w.Flush(), "flush %s", path)
}

// LoadSplit は Save で書き出した gob を読み込みます。
func LoadSplit(path string) (s Split, err error) {
	f, err := os.Open(path)
	if err != nil {
		return Split{}, errors.Wrap(err, "open split cache")
	}
	defer func() {
		err = multierr.Append(err, f.Close())
	}()

	if err := gob.NewDecoder(bufio.NewReader(f)).Decode(&s); err != nil {
		return Split{}, errors.Wrapf(err, "decode %s", path)
	}
	return s, nil
}
