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
	"testing"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
)

func TestErrorRate(t *testing.T) {
	errRate, err := ErrorRate([]string{"a", "b", "a", "a"}, []string{"a", "b", "b", "b"})
	assert.NoError(t, err)
	assert.Equal(t, 0.5, errRate)

	accuracy, err := Accuracy([]string{"a", "b", "a", "a"}, []string{"a", "b", "b", "b"})
	assert.NoError(t, err)
	assert.Equal(t, 0.5, accuracy)

	_, err = ErrorRate([]string{"a"}, []string{"a", "b"})
	assert.True(t, errors.IsNotValid(err))
	_, err = ErrorRate(nil, nil)
	assert.True(t, errors.IsNotValid(err))
}
