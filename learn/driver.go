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
	"context"

	"github.com/juju/errors"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"

	"github.com/mohendra/skdata/base/log"
	"github.com/mohendra/skdata/base/progress"
	"github.com/mohendra/skdata/dataset"
)

// Report collects the outcome of running a view's protocol: one loss per
// `loss` instruction and their mean.
type Report struct {
	Losses   []float64
	MeanLoss float64
}

// RunProtocol executes a view's protocol against a learning algorithm. The
// current model is threaded between instructions: `best_model` installs it,
// `loss` and `retrain_classifier` consume it.
func RunProtocol(ctx context.Context, view dataset.View, algo LearningAlgo) (*Report, error) {
	instructions, err := view.Protocol()
	if err != nil {
		return nil, errors.Trace(err)
	}
	_, span := progress.Start(ctx, "RunProtocol", len(instructions))
	report := &Report{}
	var model Estimator
	for _, instruction := range instructions {
		switch instruction.Op {
		case dataset.OpBestModel:
			result, err := algo.BestModel(instruction.Train, instruction.Valid)
			if err != nil {
				span.Fail(err)
				return nil, errors.Trace(err)
			}
			model = result.Model
			log.Logger().Debug("best model trained",
				zap.String("train", instruction.Train.Name),
				zap.Float64("train_loss", result.TrainLoss),
				zap.Bool("promising", result.Promising))
		case dataset.OpLoss:
			if model == nil {
				err := errors.NotValidf("loss before any best_model")
				span.Fail(err)
				return nil, err
			}
			loss, err := algo.Loss(model, instruction.Test)
			if err != nil {
				span.Fail(err)
				return nil, errors.Trace(err)
			}
			report.Losses = append(report.Losses, loss)
			log.Logger().Debug("loss measured",
				zap.String("test", instruction.Test.Name),
				zap.Float64("loss", loss))
		case dataset.OpRetrainClassifier:
			if model == nil {
				err := errors.NotValidf("retrain_classifier before any best_model")
				span.Fail(err)
				return nil, err
			}
			retrained, err := algo.RetrainClassifier(model, instruction.Train, instruction.Valid)
			if err != nil {
				span.Fail(err)
				return nil, errors.Trace(err)
			}
			model = retrained
		case dataset.OpForgetTask:
			if err := algo.ForgetTask(instruction.TaskName); err != nil {
				span.Fail(err)
				return nil, errors.Trace(err)
			}
		default:
			err := errors.NotSupportedf("operation %q", instruction.Op)
			span.Fail(err)
			return nil, err
		}
		span.Add(1)
	}
	span.End()
	report.MeanLoss = stat.Mean(report.Losses, nil)
	return report, nil
}
