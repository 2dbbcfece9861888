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
	"github.com/juju/errors"
)

// Op names an operation a learning algorithm may be asked to execute. The
// instruction set is deliberately open: a view may prescribe operations only
// particular algorithms support, and drivers fail on names they don't know.
type Op string

const (
	// OpBestModel trains a model on the train task, optionally optimizing
	// for performance on the valid task.
	OpBestModel Op = "best_model"
	// OpLoss evaluates the current model on the test task.
	OpLoss Op = "loss"
	// OpRetrainClassifier retrains only the classifier part of the current
	// model. Some protocols require this dataset-specific step.
	OpRetrainClassifier Op = "retrain_classifier"
	// OpForgetTask signals that statistics related to the named task may be
	// dropped to keep memory use under control.
	OpForgetTask Op = "forget_task"
)

// Instruction is one step of an evaluation protocol. Only the fields
// relevant to the operation are set.
type Instruction struct {
	Op       Op
	Train    *Task
	Valid    *Task
	Test     *Task
	TaskName string
}

// View is an interpretation of a dataset as a standard learning problem. It
// prescribes the evaluation protocol a driver executes against a learning
// algorithm.
type View interface {
	Protocol() ([]Instruction, error)
}

// KFoldView evaluates an algorithm by k-fold cross-validation over a task.
type KFoldView struct {
	Task *Task
	K    int
	Seed int64
}

// Splits returns the cross-validation splits of the view.
func (v *KFoldView) Splits() ([]*Split, error) {
	splits, err := NewKFoldSplitter(v.K)(v.Task, v.Seed)
	if err != nil {
		return nil, errors.Trace(err)
	}
	return splits, nil
}

func (v *KFoldView) Protocol() ([]Instruction, error) {
	splits, err := v.Splits()
	if err != nil {
		return nil, errors.Trace(err)
	}
	instructions := make([]Instruction, 0, 3*len(splits))
	for _, split := range splits {
		instructions = append(instructions,
			Instruction{Op: OpBestModel, Train: split.Train},
			Instruction{Op: OpLoss, Test: split.Test},
			Instruction{Op: OpForgetTask, TaskName: split.Train.Name},
		)
	}
	return instructions, nil
}

// TrainTestView evaluates an algorithm on a fixed train/test split.
type TrainTestView struct {
	Train *Task
	Test  *Task
}

func (v *TrainTestView) Protocol() ([]Instruction, error) {
	if _, err := NewSplit(v.Train, v.Test); err != nil {
		return nil, errors.Trace(err)
	}
	return []Instruction{
		{Op: OpBestModel, Train: v.Train},
		{Op: OpLoss, Test: v.Test},
	}, nil
}
