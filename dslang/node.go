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

// Package dslang is a small expression language for describing
// cross-validation experiments as lazy expression trees. Nodes carry no
// behavior; evaluation is performed by a Visitor, so several evaluators can
// walk the same tree.
package dslang

import (
	"github.com/mohendra/skdata/dataset"
)

// Value is the result of evaluating a node: a scalar for Average and Score,
// a model for BestModel and RetrainClassifier, a task or split for leaves.
type Value interface{}

// Node is one vertex of an unevaluated expression tree. The variant set is
// closed; the visitor fails on anything else.
type Node interface {
	dslNode()
}

// Average is the arithmetic mean of its child values.
type Average struct {
	Values []Node
}

// NewAverage creates an Average over the given children.
func NewAverage(values []Node) *Average {
	return &Average{Values: values}
}

func (*Average) dslNode() {}

// Score is the loss of a model on a task.
type Score struct {
	Model Node
	Task  Node
}

// NewScore creates a Score of a model-producing node on a task-producing node.
func NewScore(model, task Node) *Score {
	return &Score{Model: model, Task: task}
}

func (*Score) dslNode() {}

// BestModel is the model trained on a split.
type BestModel struct {
	Split Node
}

// NewBestModel creates a BestModel over a split-producing node.
func NewBestModel(split Node) *BestModel {
	return &BestModel{Split: split}
}

func (*BestModel) dslNode() {}

// MergeTasks is the concatenation of several tasks into one.
type MergeTasks struct {
	Tasks []Node
}

// NewMergeTasks creates a MergeTasks over the given task nodes.
func NewMergeTasks(tasks ...Node) *MergeTasks {
	return &MergeTasks{Tasks: tasks}
}

func (*MergeTasks) dslNode() {}

// RetrainClassifier is a model whose classifier part was retrained on a task.
type RetrainClassifier struct {
	Model Node
	Task  Node
}

// NewRetrainClassifier creates a RetrainClassifier node.
func NewRetrainClassifier(model, task Node) *RetrainClassifier {
	return &RetrainClassifier{Model: model, Task: task}
}

func (*RetrainClassifier) dslNode() {}

// TaskNode is a leaf holding a task. It evaluates to the task itself.
type TaskNode struct {
	Task *dataset.Task
}

// NewTaskNode wraps a task as a leaf node.
func NewTaskNode(task *dataset.Task) *TaskNode {
	return &TaskNode{Task: task}
}

func (*TaskNode) dslNode() {}

// SplitNode is a leaf holding a split. It evaluates to the split itself.
type SplitNode struct {
	Split *dataset.Split
}

// NewSplitNode wraps a split as a leaf node.
func NewSplitNode(split *dataset.Split) *SplitNode {
	return &SplitNode{Split: split}
}

func (*SplitNode) dslNode() {}
