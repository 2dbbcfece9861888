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
	"context"
	"fmt"

	"github.com/juju/errors"
	"go.uber.org/zap"

	"github.com/mohendra/skdata/base"
	"github.com/mohendra/skdata/base/log"
	"github.com/mohendra/skdata/base/progress"
	"github.com/mohendra/skdata/dataset"
	"github.com/mohendra/skdata/learn"
)

// ParamsSearchResult contains the return of grid search. Scores are
// validation error rates, lower is better.
type ParamsSearchResult struct {
	BestScore  float64
	BestModel  Classifier
	BestParams learn.Params
	BestIndex  int
	Scores     []float64
	Params     []learn.Params
}

// GridSearchCV finds the best parameters for a classifier by exhausting the
// Cartesian product of the grid, scoring each combination on the valid task.
func GridSearchCV(ctx context.Context, estimator Classifier, train, valid *dataset.Task,
	paramGrid learn.ParamsGrid) (ParamsSearchResult, error) {
	trainData, err := train.VectorData()
	if err != nil {
		return ParamsSearchResult{}, errors.Trace(err)
	}
	validData, err := valid.VectorData()
	if err != nil {
		return ParamsSearchResult{}, errors.Trace(err)
	}
	// Retrieve parameter names and length
	paramNames := make([]learn.ParamName, 0, len(paramGrid))
	total := 1
	for paramName, values := range paramGrid {
		paramNames = append(paramNames, paramName)
		total *= len(values)
	}
	// Construct DFS procedure
	results := ParamsSearchResult{
		Scores: make([]float64, 0, total),
		Params: make([]learn.Params, 0, total),
	}
	_, span := progress.Start(ctx, "GridSearchCV", total)
	var dfs func(deep int, params learn.Params) error
	dfs = func(deep int, params learn.Params) error {
		if deep == len(paramNames) {
			log.Logger().Info(fmt.Sprintf("grid search %v/%v", span.Count(), total),
				zap.Any("params", params))
			estimator.Clear()
			estimator.SetParams(estimator.GetParams().Overwrite(params))
			if err := estimator.Fit(trainData.X, trainData.Y); err != nil {
				return errors.Trace(err)
			}
			predictions, err := estimator.Predict(validData.X)
			if err != nil {
				return errors.Trace(err)
			}
			score, err := ErrorRate(predictions, validData.Y)
			if err != nil {
				return errors.Trace(err)
			}
			if len(results.Scores) == 0 || score < results.BestScore {
				results.BestScore = score
				results.BestParams = params.Copy()
				results.BestIndex = len(results.Params)
			}
			results.Scores = append(results.Scores, score)
			results.Params = append(results.Params, params.Copy())
			span.Add(1)
			return nil
		}
		paramName := paramNames[deep]
		for _, val := range paramGrid[paramName] {
			params[paramName] = val
			if err := dfs(deep+1, params); err != nil {
				return errors.Trace(err)
			}
		}
		return nil
	}
	if err := dfs(0, learn.Params{}); err != nil {
		span.Fail(err)
		return ParamsSearchResult{}, errors.Trace(err)
	}
	span.End()
	// Refit the winner so BestModel reflects BestParams.
	estimator.Clear()
	estimator.SetParams(estimator.GetParams().Overwrite(results.BestParams))
	if err := estimator.Fit(trainData.X, trainData.Y); err != nil {
		return ParamsSearchResult{}, errors.Trace(err)
	}
	results.BestModel = estimator
	return results, nil
}

// RandomSearchCV searches hyper-parameters by random sampling from the grid.
func RandomSearchCV(ctx context.Context, estimator Classifier, train, valid *dataset.Task,
	paramGrid learn.ParamsGrid, numTrials int, seed int64) (ParamsSearchResult, error) {
	// if the number of combinations is less than number of trials, use grid search
	if paramGrid.NumCombinations() <= numTrials {
		return GridSearchCV(ctx, estimator, train, valid, paramGrid)
	}
	trainData, err := train.VectorData()
	if err != nil {
		return ParamsSearchResult{}, errors.Trace(err)
	}
	validData, err := valid.VectorData()
	if err != nil {
		return ParamsSearchResult{}, errors.Trace(err)
	}
	rng := base.NewRandomGenerator(seed)
	results := ParamsSearchResult{
		Scores: make([]float64, 0, numTrials),
		Params: make([]learn.Params, 0, numTrials),
	}
	_, span := progress.Start(ctx, "RandomSearchCV", numTrials)
	for i := 1; i <= numTrials; i++ {
		params := learn.Params{}
		for paramName, values := range paramGrid {
			params[paramName] = values[rng.Intn(len(values))]
		}
		log.Logger().Info(fmt.Sprintf("random search %v/%v", i, numTrials),
			zap.Any("params", params))
		estimator.Clear()
		estimator.SetParams(estimator.GetParams().Overwrite(params))
		if err := estimator.Fit(trainData.X, trainData.Y); err != nil {
			span.Fail(err)
			return ParamsSearchResult{}, errors.Trace(err)
		}
		predictions, err := estimator.Predict(validData.X)
		if err != nil {
			span.Fail(err)
			return ParamsSearchResult{}, errors.Trace(err)
		}
		score, err := ErrorRate(predictions, validData.Y)
		if err != nil {
			span.Fail(err)
			return ParamsSearchResult{}, errors.Trace(err)
		}
		if len(results.Scores) == 0 || score < results.BestScore {
			results.BestScore = score
			results.BestParams = params.Copy()
			results.BestIndex = len(results.Params)
		}
		results.Scores = append(results.Scores, score)
		results.Params = append(results.Params, params.Copy())
		span.Add(1)
	}
	span.End()
	estimator.Clear()
	estimator.SetParams(estimator.GetParams().Overwrite(results.BestParams))
	if err := estimator.Fit(trainData.X, trainData.Y); err != nil {
		return ParamsSearchResult{}, errors.Trace(err)
	}
	results.BestModel = estimator
	return results, nil
}
