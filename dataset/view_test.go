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

func newViewTask(name string, n int) *Task {
	x := make([][]float32, n)
	y := make([]string, n)
	for i := range x {
		x[i] = []float32{float32(i)}
		y[i] = "a"
	}
	return NewVectorTask(name, x, y)
}

func TestKFoldView_Protocol(t *testing.T) {
	task := newViewTask("numbers", 12)
	view := &KFoldView{Task: task, K: 3, Seed: 42}
	instructions, err := view.Protocol()
	assert.NoError(t, err)
	assert.Equal(t, 9, len(instructions))
	for i := 0; i < len(instructions); i += 3 {
		assert.Equal(t, OpBestModel, instructions[i].Op)
		assert.NotNil(t, instructions[i].Train)
		assert.Equal(t, OpLoss, instructions[i+1].Op)
		assert.NotNil(t, instructions[i+1].Test)
		assert.Equal(t, OpForgetTask, instructions[i+2].Op)
		assert.Equal(t, instructions[i].Train.Name, instructions[i+2].TaskName)
	}
}

func TestKFoldView_Splits(t *testing.T) {
	view := &KFoldView{Task: newViewTask("numbers", 10), K: 5, Seed: 0}
	splits, err := view.Splits()
	assert.NoError(t, err)
	assert.Equal(t, 5, len(splits))
}

func TestTrainTestView_Protocol(t *testing.T) {
	view := &TrainTestView{
		Train: newViewTask("train", 8),
		Test:  newViewTask("test", 4),
	}
	instructions, err := view.Protocol()
	assert.NoError(t, err)
	assert.Equal(t, 2, len(instructions))
	assert.Equal(t, OpBestModel, instructions[0].Op)
	assert.Equal(t, OpLoss, instructions[1].Op)
}

func TestTrainTestView_MixedSemantics(t *testing.T) {
	data, err := newViewTask("all", 8).VectorData()
	assert.NoError(t, err)
	view := &TrainTestView{
		Train: newViewTask("train", 8),
		Test:  NewIndexedVectorTask("test", data.X, data.Y, []int{0, 1}),
	}
	_, err = view.Protocol()
	assert.True(t, errors.IsNotValid(err))
}
