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
	"github.com/juju/errors"

	"github.com/mohendra/skdata/dataset"
	"github.com/mohendra/skdata/dslang"
)

// AlgoHandler is the concrete expression handler backed by a learning
// algorithm: BestModel trains, Score measures loss, MergeTasks concatenates
// tasks and RetrainClassifier refits the classifier part.
type AlgoHandler struct {
	algo LearningAlgo
}

// NewAlgoHandler creates a handler over a learning algorithm.
func NewAlgoHandler(algo LearningAlgo) *AlgoHandler {
	return &AlgoHandler{algo: algo}
}

func (h *AlgoHandler) evaluateTask(v *dslang.Visitor, node dslang.Node, memo dslang.Memo) (*dataset.Task, error) {
	value, err := v.Evaluate(node, memo)
	if err != nil {
		return nil, errors.Trace(err)
	}
	task, ok := value.(*dataset.Task)
	if !ok {
		return nil, errors.NotValidf("task expression evaluating to %T", value)
	}
	return task, nil
}

func (h *AlgoHandler) evaluateModel(v *dslang.Visitor, node dslang.Node, memo dslang.Memo) (Estimator, error) {
	value, err := v.Evaluate(node, memo)
	if err != nil {
		return nil, errors.Trace(err)
	}
	model, ok := value.(Estimator)
	if !ok {
		return nil, errors.NotValidf("model expression evaluating to %T", value)
	}
	return model, nil
}

func (h *AlgoHandler) OnScore(v *dslang.Visitor, node *dslang.Score, memo dslang.Memo) (dslang.Value, error) {
	model, err := h.evaluateModel(v, node.Model, memo)
	if err != nil {
		return nil, errors.Trace(err)
	}
	task, err := h.evaluateTask(v, node.Task, memo)
	if err != nil {
		return nil, errors.Trace(err)
	}
	loss, err := h.algo.Loss(model, task)
	if err != nil {
		return nil, errors.Trace(err)
	}
	return loss, nil
}

func (h *AlgoHandler) OnBestModel(v *dslang.Visitor, node *dslang.BestModel, memo dslang.Memo) (dslang.Value, error) {
	value, err := v.Evaluate(node.Split, memo)
	if err != nil {
		return nil, errors.Trace(err)
	}
	split, ok := value.(*dataset.Split)
	if !ok {
		return nil, errors.NotValidf("split expression evaluating to %T", value)
	}
	result, err := h.algo.BestModel(split.Train, nil)
	if err != nil {
		return nil, errors.Trace(err)
	}
	return result.Model, nil
}

func (h *AlgoHandler) OnMergeTasks(v *dslang.Visitor, node *dslang.MergeTasks, memo dslang.Memo) (dslang.Value, error) {
	tasks := make([]*dataset.Task, 0, len(node.Tasks))
	for _, child := range node.Tasks {
		task, err := h.evaluateTask(v, child, memo)
		if err != nil {
			return nil, errors.Trace(err)
		}
		tasks = append(tasks, task)
	}
	merged, err := dataset.Merge("", tasks...)
	if err != nil {
		return nil, errors.Trace(err)
	}
	return merged, nil
}

func (h *AlgoHandler) OnRetrainClassifier(v *dslang.Visitor, node *dslang.RetrainClassifier, memo dslang.Memo) (dslang.Value, error) {
	model, err := h.evaluateModel(v, node.Model, memo)
	if err != nil {
		return nil, errors.Trace(err)
	}
	task, err := h.evaluateTask(v, node.Task, memo)
	if err != nil {
		return nil, errors.Trace(err)
	}
	retrained, err := h.algo.RetrainClassifier(model, task, nil)
	if err != nil {
		return nil, errors.Trace(err)
	}
	return retrained, nil
}
