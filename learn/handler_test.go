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

package learn

import (
	"testing"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"

	"github.com/mohendra/skdata/dataset"
	"github.com/mohendra/skdata/dslang"
)

func TestAlgoHandler_CrossValidation(t *testing.T) {
	task := newBlobTask("blobs", 20)
	splits, err := dataset.NewKFoldSplitter(4)(task, 42)
	assert.NoError(t, err)

	algo := &constAlgo{loss: 0.5}
	v := dslang.NewVisitor(NewAlgoHandler(algo))
	value, err := v.Evaluate(dslang.CrossValidation(splits), nil)
	assert.NoError(t, err)
	assert.Equal(t, 0.5, value)
}

func TestAlgoHandler_BestModelMemoized(t *testing.T) {
	task := newBlobTask("blobs", 12)
	splits, err := dataset.NewKFoldSplitter(3)(task, 0)
	assert.NoError(t, err)

	algo := &constAlgo{loss: 0.25}
	v := dslang.NewVisitor(NewAlgoHandler(algo))
	// the same best_model node scored on two tasks trains once
	best := dslang.NewBestModel(dslang.NewSplitNode(splits[0]))
	node := dslang.NewAverage([]dslang.Node{
		dslang.NewScore(best, dslang.NewTaskNode(splits[0].Test)),
		dslang.NewScore(best, dslang.NewTaskNode(splits[1].Test)),
	})
	value, err := v.Evaluate(node, nil)
	assert.NoError(t, err)
	assert.Equal(t, 0.25, value)
	_, memoHits := v.Stats()
	assert.Equal(t, int64(1), memoHits)
}

func TestAlgoHandler_MergeTasks(t *testing.T) {
	a := newBlobTask("a", 4)
	b := newBlobTask("b", 6)
	v := dslang.NewVisitor(NewAlgoHandler(&constAlgo{}))
	value, err := v.Evaluate(dslang.NewMergeTasks(dslang.NewTaskNode(a), dslang.NewTaskNode(b)), nil)
	assert.NoError(t, err)
	merged, ok := value.(*dataset.Task)
	assert.True(t, ok)
	n, err := merged.Len()
	assert.NoError(t, err)
	assert.Equal(t, 10, n)
}

func TestAlgoHandler_TypeMismatch(t *testing.T) {
	task := newBlobTask("task", 4)
	v := dslang.NewVisitor(NewAlgoHandler(&constAlgo{loss: 0.5}))

	// best_model over a task expression instead of a split expression
	_, err := v.Evaluate(dslang.NewBestModel(dslang.NewTaskNode(task)), nil)
	assert.True(t, errors.IsNotValid(err))

	// score of something that is not a model
	_, err = v.Evaluate(dslang.NewScore(dslang.NewTaskNode(task), dslang.NewTaskNode(task)), nil)
	assert.True(t, errors.IsNotValid(err))
}

func TestAlgoHandler_RetrainClassifier(t *testing.T) {
	task := newBlobTask("task", 6)
	splits, err := dataset.NewKFoldSplitter(2)(task, 0)
	assert.NoError(t, err)

	v := dslang.NewVisitor(NewAlgoHandler(&constAlgo{loss: 0.5}))
	best := dslang.NewBestModel(dslang.NewSplitNode(splits[0]))
	_, err = v.Evaluate(dslang.NewRetrainClassifier(best, dslang.NewTaskNode(task)), nil)
	// constAlgo inherits the contract-only retrain_classifier
	assert.True(t, errors.IsNotImplemented(err))
}
