package sparse

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// Number constrains matrix element types to ones with arithmetic.
type Number interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

type cell struct{ row, col int }

// Matrix is a sparse rows×cols matrix storing only cells that differ
// from the default value.
type Matrix[T Number] struct {
	entries      map[cell]T
	rows, cols   int
	defaultValue T
}

// NewMatrix returns a rows×cols matrix where every cell initially
// holds defaultValue.
func NewMatrix[T Number](rows, cols int, defaultValue T) *Matrix[T] {
	return &Matrix[T]{entries: map[cell]T{}, rows: rows, cols: cols, defaultValue: defaultValue}
}

func (m *Matrix[T]) checkBounds(row, col int) {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		panic(fmt.Sprintf("sparse: matrix index [%d,%d] out of range for %dx%d", row, col, m.rows, m.cols))
	}
}

// Get returns the value at (row, col). Panics when out of range.
func (m *Matrix[T]) Get(row, col int) T {
	m.checkBounds(row, col)
	if v, ok := m.entries[cell{row, col}]; ok {
		return v
	}
	return m.defaultValue
}

// Set stores value at (row, col). Storing the default value releases
// the cell.
func (m *Matrix[T]) Set(row, col int, value T) {
	m.checkBounds(row, col)
	if value == m.defaultValue {
		delete(m.entries, cell{row, col})
	} else {
		m.entries[cell{row, col}] = value
	}
}

func (m *Matrix[T]) Rows() int   { return m.rows }
func (m *Matrix[T]) Cols() int   { return m.cols }
func (m *Matrix[T]) Stored() int { return len(m.entries) }

// Clear removes all stored cells.
func (m *Matrix[T]) Clear() { m.entries = map[cell]T{} }

// Add returns the element-wise sum. Both matrices must share
// dimensions and default value.
func (m *Matrix[T]) Add(other *Matrix[T]) (*Matrix[T], error) {
	if m.rows != other.rows || m.cols != other.cols {
		return nil, errors.Errorf("matrix add: dimension mismatch %dx%d vs %dx%d", m.rows, m.cols, other.rows, other.cols)
	}
	if m.defaultValue != other.defaultValue {
		return nil, errors.Errorf("matrix add: default value mismatch %v vs %v", m.defaultValue, other.defaultValue)
	}
	result := NewMatrix(m.rows, m.cols, m.defaultValue)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			result.Set(i, j, m.Get(i, j)+other.Get(i, j))
		}
	}
	return result, nil
}

// Mul returns the matrix product. The default value must be the
// additive zero: only stored cells contribute to the accumulation.
func (m *Matrix[T]) Mul(other *Matrix[T]) (*Matrix[T], error) {
	if m.cols != other.rows {
		return nil, errors.Errorf("matrix mul: inner dimension mismatch %d vs %d", m.cols, other.rows)
	}
	result := NewMatrix(m.rows, other.cols, m.defaultValue)
	for c, v := range m.entries {
		for j := 0; j < other.cols; j++ {
			ov := other.Get(c.col, j)
			if ov == other.defaultValue {
				continue
			}
			result.Set(c.row, j, result.Get(c.row, j)+v*ov)
		}
	}
	return result, nil
}

// MulVector returns m·vec, under the same zero-default assumption as Mul.
func (m *Matrix[T]) MulVector(vec []T) ([]T, error) {
	if len(vec) != m.cols {
		return nil, errors.Errorf("matrix vector mul: want %d elements, got %d", m.cols, len(vec))
	}
	result := make([]T, m.rows)
	for c, v := range m.entries {
		result[c.row] += v * vec[c.col]
	}
	return result, nil
}

// Transpose returns the transposed matrix.
func (m *Matrix[T]) Transpose() *Matrix[T] {
	result := NewMatrix(m.cols, m.rows, m.defaultValue)
	for c, v := range m.entries {
		result.entries[cell{c.col, c.row}] = v
	}
	return result
}

// String renders a summary plus the stored cells in row-major order.
func (m *Matrix[T]) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "SparseMatrix[%dx%d, stored=%d]", m.rows, m.cols, len(m.entries))
	for _, c := range m.sortedCells() {
		fmt.Fprintf(&sb, " (%d,%d)=%v", c.row, c.col, m.entries[c])
	}
	return sb.String()
}

func (m *Matrix[T]) sortedCells() []cell {
	cells := make([]cell, 0, len(m.entries))
	for c := range m.entries {
		cells = append(cells, c)
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].row != cells[j].row {
			return cells[i].row < cells[j].row
		}
		return cells[i].col < cells[j].col
	})
	return cells
}

type matrixFile[T Number] struct {
	Rows    int              `json:"rows"`
	Cols    int              `json:"cols"`
	Default T                `json:"default"`
	Entries []matrixEntry[T] `json:"entries"`
}

type matrixEntry[T Number] struct {
	Row   int `json:"row"`
	Col   int `json:"col"`
	Value T   `json:"value"`
}

// Save writes the matrix as JSON, cells in row-major order.
func (m *Matrix[T]) Save(path string) error {
	file := matrixFile[T]{Rows: m.rows, Cols: m.cols, Default: m.defaultValue}
	for _, c := range m.sortedCells() {
		file.Entries = append(file.Entries, matrixEntry[T]{Row: c.row, Col: c.col, Value: m.entries[c]})
	}
	b, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode sparse matrix")
	}
	return errors.Wrapf(os.WriteFile(path, b, 0o644), "save sparse matrix to %s", path)
}

// LoadMatrix reads a matrix previously written by Save.
func LoadMatrix[T Number](path string) (*Matrix[T], error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "load sparse matrix from %s", path)
	}
	var file matrixFile[T]
	if err := json.Unmarshal(b, &file); err != nil {
		return nil, errors.Wrapf(err, "decode sparse matrix from %s", path)
	}
	matrix := NewMatrix(file.Rows, file.Cols, file.Default)
	for _, e := range file.Entries {
		if e.Row < 0 || e.Row >= file.Rows || e.Col < 0 || e.Col >= file.Cols {
			return nil, errors.Errorf("decode sparse matrix from %s: cell (%d,%d) out of range", path, e.Row, e.Col)
		}
		matrix.Set(e.Row, e.Col, e.Value)
	}
	return matrix, nil
}
