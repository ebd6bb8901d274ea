// Package model loads the trained classifier artifact and serves predictions
// from it.
//
// The artifact is the trained pipeline exported to JSON: a column transformer
// (numeric passthrough, one-hot for categorical columns) followed by a random
// forest whose trees index the encoded feature vector.
package model

import (
	"errors"
	"fmt"
	"math"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/samber/lo"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

var ErrInvalidArtifact = errors.New("invalid artifact")

// leaf marks the absent child of a tree leaf.
const leaf = -1

type ColumnType string

const (
	ColumnNumeric     ColumnType = "numeric"
	ColumnCategorical ColumnType = "categorical"
)

type Artifact struct {
	Version    string   `json:"version,omitempty"`
	Classes    []string `json:"classes"`
	Columns    []Column `json:"columns"`
	Estimators []Tree   `json:"estimators"`
}

type Column struct {
	Name       string     `json:"name"`
	Type       ColumnType `json:"type"`
	Categories []string   `json:"categories,omitempty"`
}

type Tree struct {
	Nodes []Node `json:"nodes"`
}

// Node routes x[Feature] <= Threshold to Left, otherwise to Right. Leaves have
// Left == Right == -1 and carry per-class weights in Value.
type Node struct {
	Feature   int       `json:"feature"`
	Threshold float64   `json:"threshold"`
	Left      int       `json:"left"`
	Right     int       `json:"right"`
	Value     []float64 `json:"value,omitempty"`
}

// Load reads the artifact at path and builds the classifier. A missing or
// corrupt artifact is an error; there is no fallback.
func Load(path string) (*Forest, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile: %w", err)
	}

	var artifact Artifact

	if err = json.Unmarshal(payload, &artifact); err != nil {
		return nil, fmt.Errorf("%w: json.Unmarshal: %w", ErrInvalidArtifact, err)
	}

	forest, err := New(artifact)
	if err != nil {
		return nil, fmt.Errorf("model.New: %w", err)
	}

	return forest, nil
}

func (a Artifact) validate() error {
	if len(a.Classes) == 0 {
		return fmt.Errorf("%w: no classes", ErrInvalidArtifact)
	}

	if duplicates := lo.FindDuplicates(a.Classes); len(duplicates) > 0 {
		return fmt.Errorf("%w: duplicate classes %q", ErrInvalidArtifact, duplicates)
	}

	if len(a.Columns) == 0 {
		return fmt.Errorf("%w: no columns", ErrInvalidArtifact)
	}

	names := lo.Map(a.Columns, func(c Column, _ int) string { return c.Name })
	if duplicates := lo.FindDuplicates(names); len(duplicates) > 0 {
		return fmt.Errorf("%w: duplicate columns %q", ErrInvalidArtifact, duplicates)
	}

	for _, column := range a.Columns {
		if err := column.validate(); err != nil {
			return err
		}
	}

	if len(a.Estimators) == 0 {
		return fmt.Errorf("%w: no estimators", ErrInvalidArtifact)
	}

	width := encodedWidth(a.Columns)

	for i, tree := range a.Estimators {
		if err := tree.validate(width, len(a.Classes)); err != nil {
			return fmt.Errorf("estimator %d: %w", i, err)
		}
	}

	return nil
}

func (c Column) validate() error {
	if c.Name == "" {
		return fmt.Errorf("%w: column without a name", ErrInvalidArtifact)
	}

	switch c.Type {
	case ColumnNumeric:
		return nil
	case ColumnCategorical:
		if len(c.Categories) == 0 {
			return fmt.Errorf("%w: column %q has no categories", ErrInvalidArtifact, c.Name)
		}

		if duplicates := lo.FindDuplicates(c.Categories); len(duplicates) > 0 {
			return fmt.Errorf("%w: column %q has duplicate categories %q", ErrInvalidArtifact, c.Name, duplicates)
		}

		return nil
	default:
		return fmt.Errorf("%w: column %q has unknown type %q", ErrInvalidArtifact, c.Name, c.Type)
	}
}

// validate checks that every path from the root ends in a leaf: children
// always come after their parent.
func (t Tree) validate(width, classes int) error {
	if len(t.Nodes) == 0 {
		return fmt.Errorf("%w: no nodes", ErrInvalidArtifact)
	}

	for i, node := range t.Nodes {
		if node.Left == leaf || node.Right == leaf {
			if node.Left != node.Right {
				return fmt.Errorf("%w: node %d has a single child", ErrInvalidArtifact, i)
			}

			if err := validateLeafValue(node.Value, classes); err != nil {
				return fmt.Errorf("node %d: %w", i, err)
			}

			continue
		}

		if node.Left <= i || node.Left >= len(t.Nodes) || node.Right <= i || node.Right >= len(t.Nodes) {
			return fmt.Errorf("%w: node %d has children out of range", ErrInvalidArtifact, i)
		}

		if node.Feature < 0 || node.Feature >= width {
			return fmt.Errorf("%w: node %d splits on feature %d of %d", ErrInvalidArtifact, i, node.Feature, width)
		}

		if math.IsNaN(node.Threshold) || math.IsInf(node.Threshold, 0) {
			return fmt.Errorf("%w: node %d has a non-finite threshold", ErrInvalidArtifact, i)
		}
	}

	return nil
}

func validateLeafValue(value []float64, classes int) error {
	if len(value) != classes {
		return fmt.Errorf("%w: leaf has %d values for %d classes", ErrInvalidArtifact, len(value), classes)
	}

	for _, v := range value {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: leaf value %v", ErrInvalidArtifact, v)
		}
	}

	if lo.Sum(value) <= 0 {
		return fmt.Errorf("%w: leaf values sum to zero", ErrInvalidArtifact)
	}

	return nil
}
