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
package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mohendra/skdata/base"
	"github.com/mohendra/skdata/base/log"
	"github.com/mohendra/skdata/config"
	"github.com/mohendra/skdata/dataset"
	"github.com/mohendra/skdata/dslang"
	"github.com/mohendra/skdata/learn"
	"github.com/mohendra/skdata/learn/vector"
)

var skdataCommand = &cobra.Command{
	Use:   "skdata",
	Short: "Run a cross-validation experiment on a synthetic dataset.",
	Run: func(cmd *cobra.Command, args []string) {
		// setup logger
		debug, _ := cmd.PersistentFlags().GetBool("debug")
		log.SetLogger(cmd.PersistentFlags(), debug)

		// load config
		configPath, _ := cmd.PersistentFlags().GetString("config")
		conf := config.GetDefaultConfig()
		if configPath != "" {
			log.Logger().Info("load config", zap.String("config", configPath))
			var err error
			if conf, err = config.LoadConfig(configPath); err != nil {
				log.Logger().Fatal("failed to load config", zap.Error(err))
			}
		}
		if err := runExperiment(cmd.Context(), conf); err != nil {
			log.Logger().Fatal("failed to run experiment", zap.Error(err))
		}
	},
}

// blobsTask samples a Gaussian blob per class and bundles the examples into
// a vector classification task.
func blobsTask(conf *config.ExperimentConfig) *dataset.Task {
	rng := base.NewRandomGenerator(conf.Seed)
	x := make([][]float32, 0, conf.NumExamples)
	y := make([]string, 0, conf.NumExamples)
	for i := 0; i < conf.NumExamples; i++ {
		class := i % conf.NumClasses
		center := float32(class) * 10
		x = append(x, rng.NormalVector(conf.NumFeatures, center, 1))
		y = append(y, fmt.Sprintf("class%d", class))
	}
	return dataset.NewVectorTask(conf.Name, x, y)
}

func newClassifier(conf *config.ClassifierConfig) func() vector.Classifier {
	switch conf.Model {
	case "nearest_centroid":
		return func() vector.Classifier { return vector.NewNearestCentroid(nil) }
	default:
		k := conf.K
		return func() vector.Classifier { return vector.NewKNN(learn.Params{learn.K: k}) }
	}
}

func runExperiment(ctx context.Context, conf *config.Config) error {
	task := blobsTask(&conf.Experiment)
	creator := newClassifier(&conf.Classifier)

	// optional grid search over K on a held-out split
	if conf.Search.Enable && conf.Classifier.Model == "knn" {
		splits, err := dataset.NewRatioSplitter(1, 0.2)(task, conf.Experiment.Seed)
		if err != nil {
			return err
		}
		grid := learn.ParamsGrid{learn.K: intCandidates(conf.Search.GridK)}
		result, err := vector.GridSearchCV(ctx, vector.NewKNN(nil), splits[0].Train, splits[0].Test, grid)
		if err != nil {
			return err
		}
		log.Logger().Info("grid search complete",
			zap.Any("best_params", result.BestParams),
			zap.Float64("best_err_rate", result.BestScore))
		bestK := result.BestParams.GetInt(learn.K, conf.Classifier.K)
		creator = func() vector.Classifier { return vector.NewKNN(learn.Params{learn.K: bestK}) }
	}

	view := &dataset.KFoldView{Task: task, K: conf.Experiment.NumFolds, Seed: conf.Experiment.Seed}

	// run the protocol imperatively
	algo := vector.NewVectorClassifier(creator)
	report, err := learn.RunProtocol(ctx, view, algo)
	if err != nil {
		return err
	}
	log.Logger().Info("protocol complete",
		zap.Int("folds", len(report.Losses)),
		zap.Float64("mean_err_rate", report.MeanLoss))

	// evaluate the equivalent expression tree
	splits, err := view.Splits()
	if err != nil {
		return err
	}
	visitor := dslang.NewVisitor(learn.NewAlgoHandler(vector.NewVectorClassifier(creator)))
	value, err := visitor.Evaluate(dslang.CrossValidation(splits), nil)
	if err != nil {
		return err
	}
	evaluations, memoHits := visitor.Stats()
	log.Logger().Info("expression complete",
		zap.Any("mean_err_rate", value),
		zap.Int64("evaluations", evaluations),
		zap.Int64("memo_hits", memoHits))
	return nil
}

func intCandidates(values []int) []interface{} {
	candidates := make([]interface{}, len(values))
	for i, v := range values {
		candidates[i] = v
	}
	return candidates
}

func init() {
	log.AddFlags(skdataCommand.PersistentFlags())
	skdataCommand.PersistentFlags().Bool("debug", false, "use debug log mode")
	skdataCommand.PersistentFlags().StringP("config", "c", "", "configuration file path")
}

func main() {
	if err := skdataCommand.Execute(); err != nil {
		log.Logger().Fatal("failed to execute", zap.Error(err))
	}
}
