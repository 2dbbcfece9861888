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

package dataset

import (
	"fmt"

	"github.com/juju/errors"
	"github.com/mohendra/skdata/base"
)

// Splitter splits a task into (train, test) pairs.
type Splitter func(task *Task, seed int64) ([]*Split, error)

// NewKFoldSplitter creates a k-fold splitter. Fold assignment is a random
// permutation, deterministic per seed.
func NewKFoldSplitter(k int) Splitter {
	return func(task *Task, seed int64) ([]*Split, error) {
		if task == nil {
			return nil, errors.NotValidf("split of nil task")
		}
		if k < 2 {
			return nil, errors.NotValidf("k-fold split with k = %d", k)
		}
		count, err := task.Len()
		if err != nil {
			return nil, errors.Trace(err)
		}
		if count < k {
			return nil, errors.NotValidf("k-fold split of %d examples into %d folds", count, k)
		}
		rng := base.NewRandomGenerator(seed)
		perm := rng.Perm(count)
		splits := make([]*Split, 0, k)
		foldSize := count / k
		begin, end := 0, 0
		for i := 0; i < k; i++ {
			end += foldSize
			if i < count%k {
				end++
			}
			testIndex := perm[begin:end]
			trainIndex := make([]int, 0, count-len(testIndex))
			trainIndex = append(trainIndex, perm[:begin]...)
			trainIndex = append(trainIndex, perm[end:]...)
			train, err := subset(task, fmt.Sprintf("%s.fold%d.train", task.Name, i), trainIndex)
			if err != nil {
				return nil, errors.Trace(err)
			}
			test, err := subset(task, fmt.Sprintf("%s.fold%d.test", task.Name, i), testIndex)
			if err != nil {
				return nil, errors.Trace(err)
			}
			split, err := NewSplit(train, test)
			if err != nil {
				return nil, errors.Trace(err)
			}
			splits = append(splits, split)
			begin = end
		}
		return splits, nil
	}
}

// NewRatioSplitter creates a splitter drawing `repeat` independent
// (train, test) pairs where the test task holds `testRatio` of the examples.
func NewRatioSplitter(repeat int, testRatio float64) Splitter {
	return func(task *Task, seed int64) ([]*Split, error) {
		if task == nil {
			return nil, errors.NotValidf("split of nil task")
		}
		if testRatio <= 0 || testRatio >= 1 {
			return nil, errors.NotValidf("test ratio %v", testRatio)
		}
		count, err := task.Len()
		if err != nil {
			return nil, errors.Trace(err)
		}
		testSize := int(float64(count) * testRatio)
		if testSize == 0 || testSize == count {
			return nil, errors.NotValidf("test ratio %v of %d examples", testRatio, count)
		}
		rng := base.NewRandomGenerator(seed)
		splits := make([]*Split, 0, repeat)
		for i := 0; i < repeat; i++ {
			perm := rng.Perm(count)
			test, err := subset(task, fmt.Sprintf("%s.rep%d.test", task.Name, i), perm[:testSize])
			if err != nil {
				return nil, errors.Trace(err)
			}
			train, err := subset(task, fmt.Sprintf("%s.rep%d.train", task.Name, i), perm[testSize:])
			if err != nil {
				return nil, errors.Trace(err)
			}
			split, err := NewSplit(train, test)
			if err != nil {
				return nil, errors.Trace(err)
			}
			splits = append(splits, split)
		}
		return splits, nil
	}
}

// subset builds a task holding the selected examples. Indexed tasks keep
// sharing their backing arrays; plain vector tasks gather rows.
func subset(task *Task, name string, selected []int) (*Task, error) {
	switch task.Semantics {
	case VectorClassification:
		var data VectorData
		if err := task.Decode(&data); err != nil {
			return nil, errors.Trace(err)
		}
		x := make([][]float32, len(selected))
		y := make([]string, len(selected))
		for i, index := range selected {
			x[i] = data.X[index]
			y[i] = data.Y[index]
		}
		return NewVectorTask(name, x, y), nil
	case IndexedVectorClassification:
		var data IndexedVectorData
		if err := task.Decode(&data); err != nil {
			return nil, errors.Trace(err)
		}
		indexes := make([]int, len(selected))
		for i, index := range selected {
			indexes[i] = data.Indexes[index]
		}
		return NewIndexedVectorTask(name, data.AllVectors, data.AllLabels, indexes), nil
	default:
		return nil, errors.NotSupportedf("semantics %q", task.Semantics)
	}
}
