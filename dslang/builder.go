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

package dslang

import (
	"github.com/samber/lo"

	"github.com/mohendra/skdata/dataset"
)

// CrossValidation builds the expression of a cross-validated experiment:
// the average over all splits of the score of the best model of each split
// on its test task.
func CrossValidation(splits []*dataset.Split) *Average {
	scores := lo.Map(splits, func(split *dataset.Split, _ int) Node {
		return NewScore(NewBestModel(NewSplitNode(split)), NewTaskNode(split.Test))
	})
	return NewAverage(scores)
}
