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
	"math"

	"github.com/c-bata/goptuna"
	"github.com/juju/errors"
	"github.com/samber/lo"

	"github.com/mohendra/skdata/dataset"
	"github.com/mohendra/skdata/learn"
)

type ModelCreator func() Classifier

// SearchedModel is the winner of a model search.
type SearchedModel struct {
	Type    string
	Params  learn.Params
	ErrRate float64
}

// ModelSearch is a goptuna objective searching jointly over classifier types
// and their hyper-parameters, minimizing validation error rate.
type ModelSearch struct {
	modelCreators map[string]ModelCreator
	modelTypes    []string
	train         *dataset.Task
	valid         *dataset.Task
	result        SearchedModel
}

func NewModelSearch(models map[string]ModelCreator, train, valid *dataset.Task) *ModelSearch {
	return &ModelSearch{
		modelCreators: models,
		modelTypes:    lo.Keys(models),
		train:         train,
		valid:         valid,
		result:        SearchedModel{ErrRate: math.Inf(1)},
	}
}

func (ms *ModelSearch) Objective(trial goptuna.Trial) (float64, error) {
	if len(ms.modelCreators) == 0 {
		return 0, errors.New("no model to search")
	}
	modelType, err := trial.SuggestCategorical("Model", ms.modelTypes)
	if err != nil {
		return 0, errors.Trace(err)
	}
	m := ms.modelCreators[modelType]()
	m.SetParams(m.GetParams().Overwrite(m.SuggestParams(trial)))
	trainData, err := ms.train.VectorData()
	if err != nil {
		return 0, errors.Trace(err)
	}
	validData, err := ms.valid.VectorData()
	if err != nil {
		return 0, errors.Trace(err)
	}
	if err := m.Fit(trainData.X, trainData.Y); err != nil {
		return 0, errors.Trace(err)
	}
	predictions, err := m.Predict(validData.X)
	if err != nil {
		return 0, errors.Trace(err)
	}
	errRate, err := ErrorRate(predictions, validData.Y)
	if err != nil {
		return 0, errors.Trace(err)
	}
	if errRate < ms.result.ErrRate {
		ms.result = SearchedModel{
			Type:    modelType,
			Params:  m.GetParams(),
			ErrRate: errRate,
		}
	}
	return errRate, nil
}

func (ms *ModelSearch) Result() SearchedModel {
	return ms.result
}
