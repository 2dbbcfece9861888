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

// Package vector implements learning algorithms for the vector
// classification semantics: classifiers over labeled feature vectors, the
// experiment log around them, and hyper-parameter search.
package vector

import (
	"math"

	"github.com/c-bata/goptuna"
	"github.com/juju/errors"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/mohendra/skdata/base/log"
	"github.com/mohendra/skdata/dataset"
	"github.com/mohendra/skdata/learn"
)

// Classifier is a tunable estimator over labeled vectors.
type Classifier interface {
	learn.Estimator
	learn.Model
	SuggestParams(trial goptuna.Trial) learn.Params
}

// Record is one line of a classifier's experiment log.
type Record struct {
	Op        string
	TaskName  string
	TrainedOn string
	ErrRate   float64
}

// trainedModel annotates a fitted estimator with the task it was trained on.
type trainedModel struct {
	learn.Estimator
	trainedOn string
}

// Provenance reports which task a model was trained on. Models returned by
// VectorClassifier.BestModel implement it.
type Provenance interface {
	TrainedOn() string
}

func (m *trainedModel) TrainedOn() string {
	return m.trainedOn
}

// VectorClassifier adapts a classifier constructor into a learning algorithm
// for both vector classification semantics. Every best_model call fits a
// fresh classifier, and every call appends to the experiment log. ForgetTask
// drops log records about the named task.
type VectorClassifier struct {
	*learn.SemanticsDelegator
	newClassifier func() Classifier
	Results       []Record
}

// NewVectorClassifier creates a classifier-backed learning algorithm.
func NewVectorClassifier(newClassifier func() Classifier) *VectorClassifier {
	c := &VectorClassifier{
		SemanticsDelegator: learn.NewSemanticsDelegator(),
		newClassifier:      newClassifier,
	}
	c.Register(dataset.VectorClassification, (*vectorHandler)(c))
	c.Register(dataset.IndexedVectorClassification, (*vectorHandler)(c))
	return c
}

// vectorHandler is the per-semantics view of VectorClassifier. Both vector
// semantics share it since Task.VectorData materializes either.
type vectorHandler VectorClassifier

func (h *vectorHandler) BestModel(train, valid *dataset.Task) (*learn.BestModelResult, error) {
	data, err := train.VectorData()
	if err != nil {
		return nil, errors.Trace(err)
	}
	model := h.newClassifier()
	if err := model.Fit(data.X, data.Y); err != nil {
		return nil, errors.Trace(err)
	}
	trained := &trainedModel{Estimator: model, trainedOn: train.Name}
	trainErr, err := h.errRate(trained, data)
	if err != nil {
		return nil, errors.Trace(err)
	}
	validErr := math.NaN()
	if valid != nil {
		validData, err := valid.VectorData()
		if err != nil {
			return nil, errors.Trace(err)
		}
		if validErr, err = h.errRate(trained, validData); err != nil {
			return nil, errors.Trace(err)
		}
	}
	h.Results = append(h.Results, Record{
		Op:        string(dataset.OpBestModel),
		TaskName:  train.Name,
		TrainedOn: train.Name,
		ErrRate:   trainErr,
	})
	log.Logger().Debug("fitted classifier",
		zap.String("train", train.Name),
		zap.Float64("train_err", trainErr))
	return &learn.BestModelResult{
		Model:     trained,
		TrainLoss: trainErr,
		ValidLoss: validErr,
		Promising: trainErr <= chanceErrRate(data.Y),
	}, nil
}

func (h *vectorHandler) Loss(model learn.Estimator, task *dataset.Task) (float64, error) {
	if model == nil {
		return 0, errors.NotValidf("loss of nil model")
	}
	data, err := task.VectorData()
	if err != nil {
		return 0, errors.Trace(err)
	}
	errRate, err := h.errRate(model, data)
	if err != nil {
		return 0, errors.Trace(err)
	}
	record := Record{
		Op:       string(dataset.OpLoss),
		TaskName: task.Name,
		ErrRate:  errRate,
	}
	if provenance, ok := model.(Provenance); ok {
		record.TrainedOn = provenance.TrainedOn()
	}
	h.Results = append(h.Results, record)
	return errRate, nil
}

func (h *vectorHandler) errRate(model learn.Estimator, data *dataset.VectorData) (float64, error) {
	predictions, err := model.Predict(data.X)
	if err != nil {
		return 0, errors.Trace(err)
	}
	return ErrorRate(predictions, data.Y)
}

// RetrainClassifier refits a fresh classifier on the union of the train and
// valid tasks, keeping the provenance of the new model.
func (c *VectorClassifier) RetrainClassifier(_ learn.Estimator, train, valid *dataset.Task) (learn.Estimator, error) {
	if train == nil {
		return nil, errors.NotValidf("retrain_classifier of nil train task")
	}
	task := train
	if valid != nil {
		merged, err := dataset.Merge("", train, valid)
		if err != nil {
			return nil, errors.Trace(err)
		}
		task = merged
	}
	result, err := c.BestModel(task, nil)
	if err != nil {
		return nil, errors.Trace(err)
	}
	return result.Model, nil
}

// ForgetTask drops experiment log records about the named task.
func (c *VectorClassifier) ForgetTask(name string) error {
	c.Results = lo.Filter(c.Results, func(record Record, _ int) bool {
		return record.TaskName != name && record.TrainedOn != name
	})
	return nil
}

// chanceErrRate is the error rate of always predicting the most common
// label.
func chanceErrRate(y []string) float64 {
	if len(y) == 0 {
		return 1
	}
	counts := lo.CountValues(y)
	most := lo.Max(lo.Values(counts))
	return 1 - float64(most)/float64(len(y))
}
