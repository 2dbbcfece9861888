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
	"fmt"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/juju/errors"
	"github.com/samber/lo"
)

// Split is a (train, test) pair of tasks with no common examples, used in
// cross-validation to learn parameters on the train task and evaluate them
// on the test task.
type Split struct {
	Train *Task
	Test  *Task
}

// NewSplit creates a split. Both tasks must carry the same semantics. For
// indexed tasks the index sets must be disjoint.
func NewSplit(train, test *Task) (*Split, error) {
	if train == nil || test == nil {
		return nil, errors.NotValidf("split with nil task")
	}
	if train.Semantics != test.Semantics {
		return nil, errors.NotValidf("split semantics: train %q, test %q", train.Semantics, test.Semantics)
	}
	if train.Semantics == IndexedVectorClassification {
		var trainData, testData IndexedVectorData
		if err := train.Decode(&trainData); err != nil {
			return nil, errors.Trace(err)
		}
		if err := test.Decode(&testData); err != nil {
			return nil, errors.Trace(err)
		}
		trainSet := mapset.NewSet(trainData.Indexes...)
		testSet := mapset.NewSet(testData.Indexes...)
		if trainSet.Intersect(testSet).Cardinality() > 0 {
			return nil, errors.NotValidf("split with overlapping examples between %q and %q", train.Name, test.Name)
		}
	}
	return &Split{Train: train, Test: test}, nil
}

// Merge concatenates tasks of equal semantics into a single vector
// classification task. Indexed tasks are materialized before merging since
// their backing arrays may differ.
func Merge(name string, tasks ...*Task) (*Task, error) {
	if len(tasks) == 0 {
		return nil, errors.NotValidf("merge of zero tasks")
	}
	semantics := tasks[0].Semantics
	for _, task := range tasks[1:] {
		if task.Semantics != semantics {
			return nil, errors.NotValidf("merge of mixed semantics: %q and %q", semantics, task.Semantics)
		}
	}
	var x [][]float32
	var y []string
	for _, task := range tasks {
		data, err := task.VectorData()
		if err != nil {
			return nil, errors.Trace(err)
		}
		x = append(x, data.X...)
		y = append(y, data.Y...)
	}
	if name == "" {
		names := lo.Map(tasks, func(task *Task, _ int) string { return task.Name })
		name = fmt.Sprintf("merge(%s)", strings.Join(names, ","))
	}
	return NewVectorTask(name, x, y), nil
}
