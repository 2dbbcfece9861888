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
	"testing"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"

	"github.com/mohendra/skdata/dataset"
	"github.com/mohendra/skdata/learn"
)

// blobs builds two well-separated clusters, class "a" around the origin and
// class "b" around (10, 10).
func blobs(name string, n int) *dataset.Task {
	x := make([][]float32, n)
	y := make([]string, n)
	for i := 0; i < n; i++ {
		jitter := float32(i) * 0.01
		if i%2 == 0 {
			x[i] = []float32{jitter, jitter}
			y[i] = "a"
		} else {
			x[i] = []float32{10 + jitter, 10 + jitter}
			y[i] = "b"
		}
	}
	return dataset.NewVectorTask(name, x, y)
}

func TestKNN(t *testing.T) {
	train, err := blobs("train", 10).VectorData()
	assert.NoError(t, err)
	test, err := blobs("test", 6).VectorData()
	assert.NoError(t, err)

	knn := NewKNN(learn.Params{learn.K: 3})
	assert.NoError(t, knn.Fit(train.X, train.Y))
	predictions, err := knn.Predict(test.X)
	assert.NoError(t, err)
	assert.Equal(t, test.Y, predictions)
}

func TestKNN_Params(t *testing.T) {
	knn := NewKNN(nil)
	assert.Equal(t, 5, knn.k)
	knn.SetParams(learn.Params{learn.K: 1})
	assert.Equal(t, 1, knn.k)
	assert.Contains(t, knn.GetParamsGrid(), learn.K)
}

func TestKNN_Preconditions(t *testing.T) {
	knn := NewKNN(nil)
	_, err := knn.Predict([][]float32{{0, 0}})
	assert.True(t, errors.IsNotValid(err))
	assert.True(t, errors.IsNotValid(knn.Fit(nil, nil)))
	assert.True(t, errors.IsNotValid(knn.Fit([][]float32{{0}}, []string{"a", "b"})))
}

func TestKNN_Clear(t *testing.T) {
	train, err := blobs("train", 10).VectorData()
	assert.NoError(t, err)
	knn := NewKNN(learn.Params{learn.K: 1})
	assert.NoError(t, knn.Fit(train.X, train.Y))
	knn.Clear()
	_, err = knn.Predict(train.X)
	assert.True(t, errors.IsNotValid(err))
}
