package model

import (
	"fmt"
	"math"
	"strconv"

	"premium_api/internal/domain/entity"
)

// encoder turns a row into the feature vector the trees were trained on.
// Numeric columns pass through; categorical columns are one-hot encoded and
// an unseen category encodes to all zeros.
type encoder struct {
	columns    []Column
	offsets    []int
	categories []map[string]int
	width      int
}

func encodedWidth(columns []Column) int {
	width := 0

	for _, column := range columns {
		if column.Type == ColumnCategorical {
			width += len(column.Categories)
		} else {
			width++
		}
	}

	return width
}

func newEncoder(columns []Column) encoder {
	e := encoder{
		columns:    columns,
		offsets:    make([]int, len(columns)),
		categories: make([]map[string]int, len(columns)),
		width:      encodedWidth(columns),
	}

	offset := 0

	for i, column := range columns {
		e.offsets[i] = offset

		if column.Type != ColumnCategorical {
			offset++
			continue
		}

		e.categories[i] = make(map[string]int, len(column.Categories))
		for j, category := range column.Categories {
			e.categories[i][category] = j
		}

		offset += len(column.Categories)
	}

	return e
}

func (e encoder) encode(row entity.Row) ([]float64, error) {
	x := make([]float64, e.width)

	for i, column := range e.columns {
		raw, ok := row[column.Name]
		if !ok {
			return nil, fmt.Errorf("column %q is missing", column.Name)
		}

		if column.Type == ColumnCategorical {
			if j, known := e.categories[i][categoryOf(raw)]; known {
				x[e.offsets[i]+j] = 1
			}

			continue
		}

		v, err := numericOf(raw)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", column.Name, err)
		}

		x[e.offsets[i]] = v
	}

	return x, nil
}

func categoryOf(raw any) string {
	if s, ok := raw.(string); ok {
		return s
	}

	return fmt.Sprint(raw)
}

func numericOf(raw any) (float64, error) {
	var v float64

	switch t := raw.(type) {
	case float64:
		v = t
	case float32:
		v = float64(t)
	case int:
		v = float64(t)
	case int32:
		v = float64(t)
	case int64:
		v = float64(t)
	case string:
		parsed, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return 0, fmt.Errorf("%q is not numeric", t)
		}

		v = parsed
	default:
		return 0, fmt.Errorf("%v (%T) is not numeric", raw, raw)
	}

	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%v is not finite", v)
	}

	return v, nil
}
