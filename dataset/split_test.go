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
	"testing"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
)

func TestNewSplit(t *testing.T) {
	train := NewVectorTask("train", [][]float32{{1}}, []string{"a"})
	test := NewVectorTask("test", [][]float32{{2}}, []string{"b"})
	split, err := NewSplit(train, test)
	assert.NoError(t, err)
	assert.Same(t, train, split.Train)
	assert.Same(t, test, split.Test)
}

func TestNewSplit_MixedSemantics(t *testing.T) {
	train := NewVectorTask("train", [][]float32{{1}}, []string{"a"})
	test := NewIndexedVectorTask("test", [][]float32{{2}}, []string{"b"}, []int{0})
	_, err := NewSplit(train, test)
	assert.True(t, errors.IsNotValid(err))
}

func TestNewSplit_OverlappingIndexes(t *testing.T) {
	all := [][]float32{{0}, {1}, {2}}
	labels := []string{"a", "b", "c"}
	train := NewIndexedVectorTask("train", all, labels, []int{0, 1})
	test := NewIndexedVectorTask("test", all, labels, []int{1, 2})
	_, err := NewSplit(train, test)
	assert.True(t, errors.IsNotValid(err))
}

func TestNewSplit_NilTask(t *testing.T) {
	train := NewVectorTask("train", [][]float32{{1}}, []string{"a"})
	_, err := NewSplit(train, nil)
	assert.True(t, errors.IsNotValid(err))
}

func TestMerge(t *testing.T) {
	a := NewVectorTask("a", [][]float32{{1}, {2}}, []string{"x", "y"})
	b := NewVectorTask("b", [][]float32{{3}}, []string{"z"})
	merged, err := Merge("", a, b)
	assert.NoError(t, err)
	assert.Equal(t, "merge(a,b)", merged.Name)
	assert.Equal(t, VectorClassification, merged.Semantics)
	data, err := merged.VectorData()
	assert.NoError(t, err)
	assert.Equal(t, [][]float32{{1}, {2}, {3}}, data.X)
	assert.Equal(t, []string{"x", "y", "z"}, data.Y)
}

func TestMerge_Indexed(t *testing.T) {
	all := [][]float32{{0}, {1}, {2}}
	labels := []string{"a", "b", "c"}
	first := NewIndexedVectorTask("first", all, labels, []int{0})
	second := NewIndexedVectorTask("second", all, labels, []int{2})
	merged, err := Merge("both", first, second)
	assert.NoError(t, err)
	data, err := merged.VectorData()
	assert.NoError(t, err)
	assert.Equal(t, [][]float32{{0}, {2}}, data.X)
	assert.Equal(t, []string{"a", "c"}, data.Y)
}

func TestMerge_MixedSemantics(t *testing.T) {
	a := NewVectorTask("a", [][]float32{{1}}, []string{"x"})
	b := NewIndexedVectorTask("b", [][]float32{{2}}, []string{"y"}, []int{0})
	_, err := Merge("", a, b)
	assert.True(t, errors.IsNotValid(err))
}

func TestMerge_Empty(t *testing.T) {
	_, err := Merge("")
	assert.True(t, errors.IsNotValid(err))
}
