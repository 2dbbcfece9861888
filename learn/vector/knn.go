// Copyright 2025 skdata Project Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vector

import (
	"sort"

	"github.com/c-bata/goptuna"
	"github.com/chewxy/math32"
	"github.com/juju/errors"
	"github.com/samber/lo"

	"github.com/mohendra/skdata/learn"
)

// KNN is a k-nearest-neighbor classifier with Euclidean distance. Ties in
// the vote break toward the lexicographically smallest label so predictions
// are deterministic.
type KNN struct {
	learn.BaseModel
	k int
	x [][]float32
	y []string
}

// NewKNN creates a KNN classifier.
func NewKNN(params learn.Params) *KNN {
	knn := new(KNN)
	knn.SetParams(params)
	return knn
}

// SetParams sets hyper-parameters of the KNN classifier.
func (knn *KNN) SetParams(params learn.Params) {
	knn.BaseModel.SetParams(params)
	knn.k = knn.Params.GetInt(learn.K, 5)
}

func (knn *KNN) GetParamsGrid() learn.ParamsGrid {
	return learn.ParamsGrid{
		learn.K: {1, 3, 5, 7},
	}
}

func (knn *KNN) SuggestParams(trial goptuna.Trial) learn.Params {
	return learn.Params{
		learn.K: lo.Must(trial.SuggestStepInt(string(learn.K), 1, 15, 2)),
	}
}

// Clear drops the stored training data.
func (knn *KNN) Clear() {
	knn.x = nil
	knn.y = nil
}

// Fit memorizes the training data.
func (knn *KNN) Fit(x [][]float32, y []string) error {
	if len(x) == 0 || len(x) != len(y) {
		return errors.NotValidf("training data with %d vectors and %d labels", len(x), len(y))
	}
	knn.x = x
	knn.y = y
	return nil
}

// Predict labels each query vector by majority vote of its k nearest
// training vectors.
func (knn *KNN) Predict(x [][]float32) ([]string, error) {
	if len(knn.x) == 0 {
		return nil, errors.NotValidf("predict before fit")
	}
	k := knn.k
	if k > len(knn.x) {
		k = len(knn.x)
	}
	predictions := make([]string, len(x))
	for i, query := range x {
		type neighbor struct {
			distance float32
			label    string
		}
		neighbors := make([]neighbor, len(knn.x))
		for j, row := range knn.x {
			neighbors[j] = neighbor{distance: euclidean(query, row), label: knn.y[j]}
		}
		sort.Slice(neighbors, func(a, b int) bool {
			if neighbors[a].distance != neighbors[b].distance {
				return neighbors[a].distance < neighbors[b].distance
			}
			return neighbors[a].label < neighbors[b].label
		})
		votes := make(map[string]int)
		for _, n := range neighbors[:k] {
			votes[n.label]++
		}
		best := ""
		for label, count := range votes {
			if best == "" || count > votes[best] || (count == votes[best] && label < best) {
				best = label
			}
		}
		predictions[i] = best
	}
	return predictions, nil
}

func euclidean(a, b []float32) float32 {
	var sum float32
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math32.Sqrt(sum)
}
