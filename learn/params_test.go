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

	"github.com/stretchr/testify/assert"
)

func TestParams_Copy(t *testing.T) {
	a := Params{K: 3}
	b := a.Copy()
	b[K] = 5
	assert.Equal(t, 3, a.GetInt(K, 0))
	assert.Equal(t, 5, b.GetInt(K, 0))
}

func TestParams_GetInt(t *testing.T) {
	p := Params{}
	assert.Equal(t, -1, p.GetInt(K, -1))
	p[K] = 0
	assert.Equal(t, 0, p.GetInt(K, -1))
	p[K] = "hello"
	assert.Equal(t, -1, p.GetInt(K, -1))
}

func TestParams_GetInt64(t *testing.T) {
	p := Params{}
	assert.Equal(t, int64(-1), p.GetInt64(RandomState, -1))
	p[RandomState] = int64(0)
	assert.Equal(t, int64(0), p.GetInt64(RandomState, -1))
	p[RandomState] = 42
	assert.Equal(t, int64(42), p.GetInt64(RandomState, -1))
}

func TestParams_GetFloat64(t *testing.T) {
	p := Params{}
	assert.Equal(t, -1.0, p.GetFloat64(K, -1))
	p[K] = float32(0.5)
	assert.Equal(t, 0.5, p.GetFloat64(K, -1))
	p[K] = 2
	assert.Equal(t, 2.0, p.GetFloat64(K, -1))
}

func TestParams_Overwrite(t *testing.T) {
	a := Params{K: 3, RandomState: int64(1)}
	b := a.Overwrite(Params{K: 7})
	assert.Equal(t, 7, b.GetInt(K, 0))
	assert.Equal(t, int64(1), b.GetInt64(RandomState, 0))
	assert.Equal(t, 3, a.GetInt(K, 0))
}

func TestParamsGrid(t *testing.T) {
	grid := ParamsGrid{K: {1, 3, 5}}
	assert.Equal(t, 1, grid.Len())
	assert.Equal(t, 3, grid.NumCombinations())
	grid.Fill(ParamsGrid{K: {9}, RandomState: {int64(0), int64(1)}})
	assert.Equal(t, []interface{}{1, 3, 5}, grid[K])
	assert.Equal(t, 6, grid.NumCombinations())
}
