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

// Package learn defines the contracts between evaluation protocols and
// learning algorithms, and the driver that executes a view's protocol
// against an algorithm.
package learn

import (
	"github.com/juju/errors"

	"github.com/mohendra/skdata/base"
	"github.com/mohendra/skdata/dataset"
)

// Estimator is the opaque model contract: something that can be fitted on
// labeled vectors and predict labels for new vectors.
type Estimator interface {
	Fit(x [][]float32, y []string) error
	Predict(x [][]float32) ([]string, error)
}

// Model is the interface for tunable estimators. Any estimator in this
// module that carries hyper-parameters should implement it.
type Model interface {
	// Set parameters.
	SetParams(params Params)
	// Get parameters.
	GetParams() Params
	// Get parameters grid.
	GetParamsGrid() ParamsGrid
	// Clear model weights.
	Clear()
}

// BaseModel must be included by every tunable estimator. Hyper-parameters
// and the random generator are managed by BaseModel.
type BaseModel struct {
	Params    Params // Hyper-parameters
	rng       base.RandomGenerator
	randState int64
}

// SetParams sets hyper-parameters for the BaseModel.
func (model *BaseModel) SetParams(params Params) {
	model.Params = params
	model.randState = model.Params.GetInt64(RandomState, 0)
	model.rng = base.NewRandomGenerator(model.randState)
}

// GetParams returns all hyper-parameters.
func (model *BaseModel) GetParams() Params {
	return model.Params
}

func (model *BaseModel) GetRandomGenerator() base.RandomGenerator {
	return model.rng
}

// BestModelResult is what best_model returns: an opaque fitted model, the
// loss on the training task, the loss on the validation task (NaN when no
// validation task was given) and whether the model seemed to work at all.
type BestModelResult struct {
	Model     Estimator
	TrainLoss float64
	ValidLoss float64
	Promising bool
}

// LearningAlgo is the capability interface protocol drivers call into. A
// protocol driver calls these methods in the order a view prescribes, and
// an implementation performs an experiment by side effect on itself.
type LearningAlgo interface {
	// BestModel trains a model on the train task, optionally optimizing for
	// performance on the valid task.
	BestModel(train, valid *dataset.Task) (*BestModelResult, error)
	// Loss returns the scalar loss of a model on a task. It must not
	// semantically modify the model or the task.
	Loss(model Estimator, task *dataset.Task) (float64, error)
	// RetrainClassifier retrains only the classifier part of a model. Some
	// protocols require this dataset-specific step.
	RetrainClassifier(model Estimator, train, valid *dataset.Task) (Estimator, error)
	// ForgetTask signals that statistics related to the named task may be
	// dropped. Implementations may safely ignore it.
	ForgetTask(name string) error
}

// BaseAlgo is the contract-only learning algorithm: every operation fails
// with a not-implemented error except ForgetTask, which may always be
// ignored.
type BaseAlgo struct{}

func (BaseAlgo) BestModel(_, _ *dataset.Task) (*BestModelResult, error) {
	return nil, errors.NotImplementedf("best_model")
}

func (BaseAlgo) Loss(_ Estimator, _ *dataset.Task) (float64, error) {
	return 0, errors.NotImplementedf("loss")
}

func (BaseAlgo) RetrainClassifier(_ Estimator, _, _ *dataset.Task) (Estimator, error) {
	return nil, errors.NotImplementedf("retrain_classifier")
}

func (BaseAlgo) ForgetTask(_ string) error {
	return nil
}
