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

// Package dataset defines the shared vocabulary between dataset authors and
// learning-algorithm authors: tasks, splits, views and evaluation protocols.
//
// A task is the smallest unit of data packaging for training a model. Its
// semantics tag identifies what a learning algorithm is supposed to do with
// the task, so that algorithms stay portable between datasets that agree on
// the same semantics.
package dataset

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/juju/errors"
)

// Semantics identifies the shape and contract of a task's data. Learning
// algorithms dispatch on this tag.
type Semantics string

const (
	// VectorClassification tasks carry a feature matrix `x` with a row per
	// example and a label vector `y`.
	VectorClassification Semantics = "vector_classification"
	// IndexedVectorClassification tasks reference rows of a shared feature
	// matrix through an index list, so that many tasks can share one copy
	// of the underlying data.
	IndexedVectorClassification Semantics = "indexed_vector_classification"
)

// Attributes is the open attribute bag of a task.
type Attributes map[string]interface{}

// Task is a named bundle of data plus a semantics tag, handed to a learning
// algorithm for training or evaluation. Construction stores the attribute
// bag verbatim; interpretation is deferred to Decode.
type Task struct {
	Semantics  Semantics
	Name       string
	Attributes Attributes
}

// NewTask creates a task.
func NewTask(semantics Semantics, name string, attributes Attributes) *Task {
	if attributes == nil {
		attributes = Attributes{}
	}
	return &Task{
		Semantics:  semantics,
		Name:       name,
		Attributes: attributes,
	}
}

var validate = validator.New()

// Decode decodes the attribute bag into a typed payload record and validates
// its required fields.
func (t *Task) Decode(out interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{Result: out})
	if err != nil {
		return errors.Trace(err)
	}
	if err := decoder.Decode(map[string]interface{}(t.Attributes)); err != nil {
		return errors.NewNotValid(err, fmt.Sprintf("attributes of task %q", t.Name))
	}
	if err := validate.Struct(out); err != nil {
		return errors.NewNotValid(err, fmt.Sprintf("attributes of task %q", t.Name))
	}
	return nil
}

// VectorData is the payload record of vector classification tasks.
type VectorData struct {
	X [][]float32 `mapstructure:"x" validate:"required"`
	Y []string    `mapstructure:"y" validate:"required"`
}

// IndexedVectorData is the payload record of indexed vector classification
// tasks. AllVectors and AllLabels are shared between tasks; Indexes selects
// the rows belonging to this task.
type IndexedVectorData struct {
	AllVectors [][]float32 `mapstructure:"all_vectors" validate:"required"`
	AllLabels  []string    `mapstructure:"all_labels" validate:"required"`
	Indexes    []int       `mapstructure:"indexes" validate:"required"`
}

// Materialize gathers the indexed rows into a plain vector payload.
func (d *IndexedVectorData) Materialize() *VectorData {
	x := make([][]float32, len(d.Indexes))
	y := make([]string, len(d.Indexes))
	for i, index := range d.Indexes {
		x[i] = d.AllVectors[index]
		y[i] = d.AllLabels[index]
	}
	return &VectorData{X: x, Y: y}
}

// NewVectorTask creates a vector classification task.
func NewVectorTask(name string, x [][]float32, y []string) *Task {
	return NewTask(VectorClassification, name, Attributes{
		"x": x,
		"y": y,
	})
}

// NewIndexedVectorTask creates an indexed vector classification task over a
// shared feature matrix.
func NewIndexedVectorTask(name string, allVectors [][]float32, allLabels []string, indexes []int) *Task {
	return NewTask(IndexedVectorClassification, name, Attributes{
		"all_vectors": allVectors,
		"all_labels":  allLabels,
		"indexes":     indexes,
	})
}

// VectorData decodes the task into a materialized vector payload, whatever
// of the two vector semantics the task carries.
func (t *Task) VectorData() (*VectorData, error) {
	switch t.Semantics {
	case VectorClassification:
		var data VectorData
		if err := t.Decode(&data); err != nil {
			return nil, errors.Trace(err)
		}
		return &data, nil
	case IndexedVectorClassification:
		var data IndexedVectorData
		if err := t.Decode(&data); err != nil {
			return nil, errors.Trace(err)
		}
		return data.Materialize(), nil
	default:
		return nil, errors.NotSupportedf("semantics %q", t.Semantics)
	}
}

// Len returns the number of examples in a vector task.
func (t *Task) Len() (int, error) {
	switch t.Semantics {
	case VectorClassification:
		var data VectorData
		if err := t.Decode(&data); err != nil {
			return 0, errors.Trace(err)
		}
		return len(data.X), nil
	case IndexedVectorClassification:
		var data IndexedVectorData
		if err := t.Decode(&data); err != nil {
			return 0, errors.Trace(err)
		}
		return len(data.Indexes), nil
	default:
		return 0, errors.NotSupportedf("semantics %q", t.Semantics)
	}
}
