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
	"reflect"

	"go.uber.org/zap"

	"github.com/mohendra/skdata/base/log"
)

// ParamName is the type of hyper-parameter names.
type ParamName string

// Predefined hyper-parameter names
const (
	K           ParamName = "K"           // number of neighbors
	RandomState ParamName = "RandomState" // random state (seed)
)

// Params stores hyper-parameters for a model. It is a map between names and
// values. For example, hyper-parameters for KNN are given by:
//
//	learn.Params{
//		learn.K:           5,
//		learn.RandomState: 0,
//	}
type Params map[ParamName]interface{}

// Copy hyper-parameters.
func (params Params) Copy() Params {
	newParams := make(Params)
	for k, v := range params {
		newParams[k] = v
	}
	return newParams
}

// GetInt gets an integer parameter by name. Returns _default if not exists
// or type doesn't match.
func (params Params) GetInt(name ParamName, _default int) int {
	if val, exist := params[name]; exist {
		switch val := val.(type) {
		case int:
			return val
		default:
			log.Logger().Error("Params.GetInt: type mismatch",
				zap.String("name", string(name)), zap.String("type", reflect.TypeOf(val).String()))
		}
	}
	return _default
}

// GetInt64 gets an int64 parameter by name. Returns _default if not exists
// or type doesn't match. The type will be converted if given int.
func (params Params) GetInt64(name ParamName, _default int64) int64 {
	if val, exist := params[name]; exist {
		switch val := val.(type) {
		case int64:
			return val
		case int:
			return int64(val)
		default:
			log.Logger().Error("Params.GetInt64: type mismatch",
				zap.String("name", string(name)), zap.String("type", reflect.TypeOf(val).String()))
		}
	}
	return _default
}

// GetFloat64 gets a float parameter by name. Returns _default if not exists
// or type doesn't match. The type will be converted if given int or float32.
func (params Params) GetFloat64(name ParamName, _default float64) float64 {
	if val, exist := params[name]; exist {
		switch val := val.(type) {
		case float64:
			return val
		case float32:
			return float64(val)
		case int:
			return float64(val)
		default:
			log.Logger().Error("Params.GetFloat64: type mismatch",
				zap.String("name", string(name)), zap.String("type", reflect.TypeOf(val).String()))
		}
	}
	return _default
}

// GetString gets a string parameter. Returns _default if not exists or type
// doesn't match.
func (params Params) GetString(name ParamName, _default string) string {
	if val, exist := params[name]; exist {
		switch val := val.(type) {
		case string:
			return val
		default:
			log.Logger().Error("Params.GetString: type mismatch",
				zap.String("name", string(name)), zap.String("type", reflect.TypeOf(val).String()))
		}
	}
	return _default
}

// Overwrite merges params into the receiver, the argument winning on
// conflicts.
func (params Params) Overwrite(other Params) Params {
	merged := make(Params)
	for k, v := range params {
		merged[k] = v
	}
	for k, v := range other {
		merged[k] = v
	}
	return merged
}

// ParamsGrid contains candidates for grid search.
type ParamsGrid map[ParamName][]interface{}

func (grid ParamsGrid) Len() int {
	return len(grid)
}

// NumCombinations returns the size of the Cartesian product of the grid.
func (grid ParamsGrid) NumCombinations() int {
	count := 1
	for _, values := range grid {
		count *= len(values)
	}
	return count
}

// Fill adds the default candidates for parameters missing from the grid.
func (grid ParamsGrid) Fill(_default ParamsGrid) {
	for param, values := range _default {
		if _, exist := grid[param]; !exist {
			grid[param] = values
		}
	}
}
