package model

import (
	"fmt"
	"slices"

	"github.com/samber/lo"

	"premium_api/internal/domain/entity"
)

// Forest is a random forest classifier. It is immutable after New and safe
// for concurrent use.
type Forest struct {
	version string
	classes []string
	encoder encoder
	trees   []Tree
}

func New(artifact Artifact) (*Forest, error) {
	if err := artifact.validate(); err != nil {
		return nil, err
	}

	return &Forest{
		version: artifact.Version,
		classes: slices.Clone(artifact.Classes),
		encoder: newEncoder(artifact.Columns),
		trees:   cloneTrees(artifact.Estimators),
	}, nil
}

// cloneTrees copies the trees down to the leaf values so that later changes
// to the artifact do not reach the forest.
func cloneTrees(trees []Tree) []Tree {
	return lo.Map(trees, func(tree Tree, _ int) Tree {
		return Tree{
			Nodes: lo.Map(tree.Nodes, func(node Node, _ int) Node {
				node.Value = slices.Clone(node.Value)
				return node
			}),
		}
	})
}

// Version is the version recorded in the artifact, empty if none.
func (f *Forest) Version() string {
	return f.version
}

// Classes returns the class labels in the order PredictProba reports them.
func (f *Forest) Classes() []string {
	return slices.Clone(f.classes)
}

func (f *Forest) Estimators() int {
	return len(f.trees)
}

// PredictProba averages the normalized leaf distributions of all trees.
func (f *Forest) PredictProba(row entity.Row) ([]float64, error) {
	x, err := f.encoder.encode(row)
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}

	probabilities := make([]float64, len(f.classes))

	for _, tree := range f.trees {
		value := tree.leafValue(x)
		total := lo.Sum(value)

		for i, v := range value {
			probabilities[i] += v / total
		}
	}

	for i := range probabilities {
		probabilities[i] /= float64(len(f.trees))
	}

	return probabilities, nil
}

// Predict returns the most probable class; the first class wins a tie.
func (f *Forest) Predict(row entity.Row) (string, error) {
	probabilities, err := f.PredictProba(row)
	if err != nil {
		return "", err
	}

	best := 0

	for i, p := range probabilities {
		if p > probabilities[best] {
			best = i
		}
	}

	return f.classes[best], nil
}

func (t Tree) leafValue(x []float64) []float64 {
	i := 0

	for t.Nodes[i].Left != leaf {
		node := t.Nodes[i]

		if x[node.Feature] <= node.Threshold {
			i = node.Left
		} else {
			i = node.Right
		}
	}

	return t.Nodes[i].Value
}
