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
	"github.com/juju/errors"
)

// ErrorRate is the fraction of predictions that differ from the truth.
func ErrorRate(predictions, truth []string) (float64, error) {
	if len(predictions) != len(truth) {
		return 0, errors.NotValidf("%d predictions against %d labels", len(predictions), len(truth))
	}
	if len(truth) == 0 {
		return 0, errors.NotValidf("error rate of zero examples")
	}
	wrong := 0
	for i := range truth {
		if predictions[i] != truth[i] {
			wrong++
		}
	}
	return float64(wrong) / float64(len(truth)), nil
}

// Accuracy is the fraction of predictions matching the truth.
func Accuracy(predictions, truth []string) (float64, error) {
	errRate, err := ErrorRate(predictions, truth)
	if err != nil {
		return 0, errors.Trace(err)
	}
	return 1 - errRate, nil
}
