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
	"github.com/juju/errors"
	"go.uber.org/atomic"
	"gonum.org/v1/gonum/stat"
)

// Memo caches evaluation results keyed by node identity. All nodes are
// pointers, so map lookups compare identity, not structure. A memo is bound
// to one immutable tree and one goroutine; reuse it across Evaluate calls to
// share sub-results between evaluations.
type Memo map[Node]Value

// Handler supplies the application-specific behavior of Score, BestModel,
// MergeTasks and RetrainClassifier nodes. Hooks receive the visitor and the
// memo so nested evaluations share the same cache.
type Handler interface {
	OnScore(v *Visitor, node *Score, memo Memo) (Value, error)
	OnBestModel(v *Visitor, node *BestModel, memo Memo) (Value, error)
	OnMergeTasks(v *Visitor, node *MergeTasks, memo Memo) (Value, error)
	OnRetrainClassifier(v *Visitor, node *RetrainClassifier, memo Memo) (Value, error)
}

// BaseHandler is the contract-only handler: every hook fails with a
// not-implemented error until a concrete handler overrides it.
type BaseHandler struct{}

func (BaseHandler) OnScore(_ *Visitor, _ *Score, _ Memo) (Value, error) {
	return nil, errors.NotImplementedf("score handler")
}

func (BaseHandler) OnBestModel(_ *Visitor, _ *BestModel, _ Memo) (Value, error) {
	return nil, errors.NotImplementedf("best model handler")
}

func (BaseHandler) OnMergeTasks(_ *Visitor, _ *MergeTasks, _ Memo) (Value, error) {
	return nil, errors.NotImplementedf("merge tasks handler")
}

func (BaseHandler) OnRetrainClassifier(_ *Visitor, _ *RetrainClassifier, _ Memo) (Value, error) {
	return nil, errors.NotImplementedf("retrain classifier handler")
}

// Visitor evaluates expression trees with memoization: each node is
// evaluated at most once per memo instance. Evaluation itself is a plain
// synchronous tree walk; the counters are atomic so one visitor can be
// shared between evaluations running on separate memos.
type Visitor struct {
	handler     Handler
	evaluations atomic.Int64
	memoHits    atomic.Int64
}

// NewVisitor creates a visitor. A nil handler leaves the abstract hooks
// unimplemented.
func NewVisitor(handler Handler) *Visitor {
	if handler == nil {
		handler = BaseHandler{}
	}
	return &Visitor{handler: handler}
}

// Stats reports how many nodes were evaluated and how many evaluations were
// answered from the memo.
func (v *Visitor) Stats() (evaluations, memoHits int64) {
	return v.evaluations.Load(), v.memoHits.Load()
}

// Evaluate computes the value of a node. A nil memo starts a fresh cache.
func (v *Visitor) Evaluate(node Node, memo Memo) (Value, error) {
	if node == nil {
		return nil, errors.NotValidf("nil node")
	}
	if memo == nil {
		memo = Memo{}
	}
	if value, ok := memo[node]; ok {
		v.memoHits.Inc()
		return value, nil
	}
	v.evaluations.Inc()
	value, err := v.dispatch(node, memo)
	if err != nil {
		return nil, errors.Trace(err)
	}
	memo[node] = value
	return value, nil
}

func (v *Visitor) dispatch(node Node, memo Memo) (Value, error) {
	switch node := node.(type) {
	case *Average:
		return v.onAverage(node, memo)
	case *Score:
		return v.handler.OnScore(v, node, memo)
	case *BestModel:
		return v.handler.OnBestModel(v, node, memo)
	case *MergeTasks:
		return v.handler.OnMergeTasks(v, node, memo)
	case *RetrainClassifier:
		return v.handler.OnRetrainClassifier(v, node, memo)
	case *TaskNode:
		return node.Task, nil
	case *SplitNode:
		return node.Split, nil
	default:
		return nil, errors.NotSupportedf("node type %T", node)
	}
}

func (v *Visitor) onAverage(node *Average, memo Memo) (Value, error) {
	if len(node.Values) == 0 {
		return nil, errors.NotValidf("average of empty value list")
	}
	values := make([]float64, len(node.Values))
	for i, child := range node.Values {
		result, err := v.Evaluate(child, memo)
		if err != nil {
			return nil, errors.Trace(err)
		}
		scalar, err := toFloat64(result)
		if err != nil {
			return nil, errors.Trace(err)
		}
		values[i] = scalar
	}
	return stat.Mean(values, nil), nil
}

func toFloat64(value Value) (float64, error) {
	switch value := value.(type) {
	case float64:
		return value, nil
	case float32:
		return float64(value), nil
	case int:
		return float64(value), nil
	default:
		return 0, errors.NotValidf("non-scalar value %T", value)
	}
}
