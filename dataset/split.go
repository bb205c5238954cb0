package dataset

import (
	"math"
	"math/rand/v2"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat/sampleuv"

	"github.com/sw965/dsprep/blas32/tensor/4d"
)

// Split は訓練用と検証用に分割された画像とラベルを保持します。
type Split struct {
	TrainImages tensor4d.General
	TrainLabels []int
	ValImages   tensor4d.General
	ValLabels   []int
}

func (s Split) TrainLen() int {
	return len(s.TrainLabels)
}

func (s Split) ValLen() int {
	return len(s.ValLabels)
}

// ValidationCount は n 件のうち検証用に回す件数 round(ratio*n) を返します。
func ValidationCount(n int, ratio float64) int {
	return int(math.Round(ratio * float64(n)))
}

// Permutation は seed から決まる 0..n-1 の並び替えを返します。
func Permutation(n int, seed uint64) []int {
	if n == 0 {
		return []int{}
	}
	idxs := make([]int, n)
	sampleuv.WithoutReplacement(idxs, n, rand.NewPCG(seed, seed))
	return idxs
}

// SplitTrainValidation は images と labels を同じ並び替えでシャッフルし、
// 先頭 round(ratio*n) 件を検証用、残りを訓練用にします。層化はしません。
func SplitTrainValidation(images tensor4d.General, labels []int, ratio float64, seed uint64) (Split, error) {
	n := len(labels)
	if images.Batches != n {
		return Split{}, errors.Errorf("images have %d samples but labels have %d", images.Batches, n)
	}
	if ratio < 0 || ratio > 1 {
		return Split{}, errors.Wrapf(ErrInvalidOptions, "validation ratio %v is outside [0, 1]", ratio)
	}

	perm := Permutation(n, seed)
	nVal := ValidationCount(n, ratio)
	valIdxs, trainIdxs := perm[:nVal], perm[nVal:]

	trainImages, err := images.Gather(trainIdxs)
	if err != nil {
		return Split{}, err
	}
	valImages, err := images.Gather(valIdxs)
	if err != nil {
		return Split{}, err
	}

	return Split{
		TrainImages: trainImages,
		TrainLabels: gatherLabels(labels, trainIdxs),
		ValImages:   valImages,
		ValLabels:   gatherLabels(labels, valIdxs),
	}, nil
}

func gatherLabels(labels []int, idxs []int) []int {
	y := make([]int, len(idxs))
	for i, idx := range idxs {
		y[i] = labels[idx]
	}
	return y
}
