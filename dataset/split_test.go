package dataset_test

import (
	"slices"
	"testing"

	"go.viam.com/test"

	"github.com/sw965/dsprep/blas32/tensor/4d"
	"github.com/sw965/dsprep/dataset"
)

func TestValidationCount(t *testing.T) {
	for _, tc := range []struct {
		n     int
		ratio float64
		want  int
	}{
		{100, 0.2, 20},
		{42000, 0.2, 8400},
		{7, 0.2, 1},
		{8, 0.2, 2},
		{3, 0.5, 2},
		{1, 0.2, 0},
		{0, 0.2, 0},
		{10, 0, 0},
		{10, 1, 10},
	} {
		test.That(t, dataset.ValidationCount(tc.n, tc.ratio), test.ShouldEqual, tc.want)
	}
}

func TestPermutation(t *testing.T) {
	for _, n := range []int{0, 1, 2, 10, 1000} {
		perm := dataset.Permutation(n, 42)
		test.That(t, perm, test.ShouldHaveLength, n)

		sorted := slices.Clone(perm)
		slices.Sort(sorted)
		for i, v := range sorted {
			test.That(t, v, test.ShouldEqual, i)
		}
		test.That(t, dataset.Permutation(n, 42), test.ShouldResemble, perm)
	}
}

func TestSplitTrainValidation(t *testing.T) {
	n := 11
	images := tensor4d.NewZeros(n, 1, 2, 1)
	labels := make([]int, n)
	for i := range labels {
		labels[i] = i
		images.Data[images.At(i, 0, 0, 0)] = float32(i)
		images.Data[images.At(i, 0, 1, 0)] = float32(-i)
	}

	split, err := dataset.SplitTrainValidation(images, labels, 0.2, 3)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, split.ValLen(), test.ShouldEqual, 2)
	test.That(t, split.TrainLen(), test.ShouldEqual, 9)

	all := append(slices.Clone(split.TrainLabels), split.ValLabels...)
	slices.Sort(all)
	test.That(t, all, test.ShouldResemble, labels)

	for i, label := range split.TrainLabels {
		test.That(t, split.TrainImages.Sample(i), test.ShouldResemble, []float32{float32(label), float32(-label)})
	}
	for i, label := range split.ValLabels {
		test.That(t, split.ValImages.Sample(i), test.ShouldResemble, []float32{float32(label), float32(-label)})
	}

	_, err = dataset.SplitTrainValidation(images, labels[:5], 0.2, 3)
	test.That(t, err, test.ShouldNotBeNil)

	_, err = dataset.SplitTrainValidation(images, labels, -1, 3)
	test.That(t, err, test.ShouldNotBeNil)
}
