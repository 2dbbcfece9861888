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

// Package config loads experiment configuration from TOML files.
package config

import (
	"github.com/go-playground/validator/v10"
	"github.com/juju/errors"
	"github.com/spf13/viper"
)

// Config is the configuration of an experiment run.
type Config struct {
	Experiment ExperimentConfig `mapstructure:"experiment"`
	Classifier ClassifierConfig `mapstructure:"classifier"`
	Search     SearchConfig     `mapstructure:"search"`
}

// ExperimentConfig describes the synthetic dataset and the evaluation
// protocol.
type ExperimentConfig struct {
	Name        string `mapstructure:"name" validate:"required"`
	NumExamples int    `mapstructure:"n_examples" validate:"gt=0"`
	NumFeatures int    `mapstructure:"n_features" validate:"gt=0"`
	NumClasses  int    `mapstructure:"n_classes" validate:"gt=1"`
	NumFolds    int    `mapstructure:"n_folds" validate:"gt=1"`
	Seed        int64  `mapstructure:"seed"`
}

// ClassifierConfig selects and parameterizes the classifier.
type ClassifierConfig struct {
	Model string `mapstructure:"model" validate:"oneof=knn nearest_centroid"`
	K     int    `mapstructure:"k" validate:"gt=0"`
}

// SearchConfig controls hyper-parameter search before the experiment.
type SearchConfig struct {
	Enable bool  `mapstructure:"enable"`
	GridK  []int `mapstructure:"grid_k"`
}

func setDefault() {
	// [experiment]
	viper.SetDefault("experiment.name", "blobs")
	viper.SetDefault("experiment.n_examples", 200)
	viper.SetDefault("experiment.n_features", 2)
	viper.SetDefault("experiment.n_classes", 3)
	viper.SetDefault("experiment.n_folds", 5)
	viper.SetDefault("experiment.seed", 42)
	// [classifier]
	viper.SetDefault("classifier.model", "knn")
	viper.SetDefault("classifier.k", 5)
	// [search]
	viper.SetDefault("search.enable", false)
	viper.SetDefault("search.grid_k", []int{1, 3, 5, 7})
}

// GetDefaultConfig returns the default configuration.
func GetDefaultConfig() *Config {
	return &Config{
		Experiment: ExperimentConfig{
			Name:        "blobs",
			NumExamples: 200,
			NumFeatures: 2,
			NumClasses:  3,
			NumFolds:    5,
			Seed:        42,
		},
		Classifier: ClassifierConfig{
			Model: "knn",
			K:     5,
		},
		Search: SearchConfig{
			Enable: false,
			GridK:  []int{1, 3, 5, 7},
		},
	}
}

var validate = validator.New()

// Validate checks the configuration invariants.
func (config *Config) Validate() error {
	if err := validate.Struct(config); err != nil {
		return errors.NewNotValid(err, "config")
	}
	return nil
}

// LoadConfig loads and validates configuration from a TOML file. Missing
// keys fall back to defaults.
func LoadConfig(path string) (*Config, error) {
	setDefault()
	viper.SetConfigType("toml")
	viper.SetConfigFile(path)
	if err := viper.ReadInConfig(); err != nil {
		return nil, errors.Trace(err)
	}
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, errors.Trace(err)
	}
	if err := config.Validate(); err != nil {
		return nil, errors.Trace(err)
	}
	return &config, nil
}
