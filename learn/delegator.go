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
)

// SemanticsAlgo implements best_model and loss for one task semantics.
type SemanticsAlgo interface {
	BestModel(train, valid *dataset.Task) (*BestModelResult, error)
	Loss(model Estimator, task *dataset.Task) (float64, error)
}

// SemanticsDelegator routes best_model and loss to the handler registered
// for the task's semantics tag.
type SemanticsDelegator struct {
	BaseAlgo
	handlers map[dataset.Semantics]SemanticsAlgo
}

// NewSemanticsDelegator creates an empty delegator.
func NewSemanticsDelegator() *SemanticsDelegator {
	return &SemanticsDelegator{
		handlers: make(map[dataset.Semantics]SemanticsAlgo),
	}
}

// Register installs a handler for a semantics tag.
func (d *SemanticsDelegator) Register(semantics dataset.Semantics, algo SemanticsAlgo) {
	d.handlers[semantics] = algo
}

func (d *SemanticsDelegator) lookup(semantics dataset.Semantics) (SemanticsAlgo, error) {
	handler, exist := d.handlers[semantics]
	if !exist {
		return nil, errors.NotSupportedf("semantics %q", semantics)
	}
	return handler, nil
}

// BestModel delegates to the handler of the train task's semantics. Train
// and valid must share the semantics tag.
func (d *SemanticsDelegator) BestModel(train, valid *dataset.Task) (*BestModelResult, error) {
	if train == nil {
		return nil, errors.NotValidf("best_model of nil train task")
	}
	if valid != nil && train.Semantics != valid.Semantics {
		return nil, errors.NotValidf("best_model with train semantics %q and valid semantics %q",
			train.Semantics, valid.Semantics)
	}
	handler, err := d.lookup(train.Semantics)
	if err != nil {
		return nil, errors.Trace(err)
	}
	return handler.BestModel(train, valid)
}

// Loss delegates to the handler of the task's semantics.
func (d *SemanticsDelegator) Loss(model Estimator, task *dataset.Task) (float64, error) {
	if task == nil {
		return 0, errors.NotValidf("loss on nil task")
	}
	handler, err := d.lookup(task.Semantics)
	if err != nil {
		return 0, errors.Trace(err)
	}
	return handler.Loss(model, task)
}
