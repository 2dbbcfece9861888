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
	"github.com/juju/errors"

	"github.com/mohendra/skdata/learn"
)

// NearestCentroid classifies a vector by the label of the closest class
// centroid.
type NearestCentroid struct {
	learn.BaseModel
	labels    []string
	centroids [][]float32
}

// NewNearestCentroid creates a nearest-centroid classifier.
func NewNearestCentroid(params learn.Params) *NearestCentroid {
	nc := new(NearestCentroid)
	nc.SetParams(params)
	return nc
}

func (nc *NearestCentroid) GetParamsGrid() learn.ParamsGrid {
	return learn.ParamsGrid{}
}

func (nc *NearestCentroid) SuggestParams(_ goptuna.Trial) learn.Params {
	return learn.Params{}
}

// Clear drops the fitted centroids.
func (nc *NearestCentroid) Clear() {
	nc.labels = nil
	nc.centroids = nil
}

// Fit computes the mean vector of each class. Labels are kept sorted so ties
// in Predict are deterministic.
func (nc *NearestCentroid) Fit(x [][]float32, y []string) error {
	if len(x) == 0 || len(x) != len(y) {
		return errors.NotValidf("training data with %d vectors and %d labels", len(x), len(y))
	}
	sums := make(map[string][]float32)
	counts := make(map[string]int)
	for i, row := range x {
		sum, exist := sums[y[i]]
		if !exist {
			sum = make([]float32, len(row))
			sums[y[i]] = sum
		}
		for j, value := range row {
			sum[j] += value
		}
		counts[y[i]]++
	}
	nc.labels = make([]string, 0, len(sums))
	for label := range sums {
		nc.labels = append(nc.labels, label)
	}
	sort.Strings(nc.labels)
	nc.centroids = make([][]float32, len(nc.labels))
	for i, label := range nc.labels {
		centroid := sums[label]
		for j := range centroid {
			centroid[j] /= float32(counts[label])
		}
		nc.centroids[i] = centroid
	}
	return nil
}

func (nc *NearestCentroid) Predict(x [][]float32) ([]string, error) {
	if len(nc.centroids) == 0 {
		return nil, errors.NotValidf("predict before fit")
	}
	predictions := make([]string, len(x))
	for i, query := range x {
		best := 0
		bestDistance := euclidean(query, nc.centroids[0])
		for j := 1; j < len(nc.centroids); j++ {
			if distance := euclidean(query, nc.centroids[j]); distance < bestDistance {
				best, bestDistance = j, distance
			}
		}
		predictions[i] = nc.labels[best]
	}
	return predictions, nil
}
