// Package costtable loads a symmetric pairwise-cost matrix from CSV for
// the pairwise-cost metric.
package costtable

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/sumofpairs/multialign/internal/alphabet"
)

// AsymmetricEntryError is returned when T[row][col] != T[col][row] at
// load time.
type AsymmetricEntryError struct {
	Row, Col   byte
	Got, Other int
}

func (e *AsymmetricEntryError) Error() string {
	return fmt.Sprintf("cost table asymmetric at (%q, %q): %d vs %d", e.Row, e.Col, e.Got, e.Other)
}

func (e *AsymmetricEntryError) IsCostTableError() {}

// NonZeroIdentityDiagonalError is returned when a label's self-cost
// entry is nonzero, violating the diagonal-double-counting convention
// the pairwise-cost metric relies on (see internal/metric).
type NonZeroIdentityDiagonalError struct {
	Label byte
	Got   int
}

func (e *NonZeroIdentityDiagonalError) Error() string {
	return fmt.Sprintf("cost table entry T[%q][%q] = %d, want 0 (identity kinds must cost 0 on the diagonal)", e.Label, e.Label, e.Got)
}

func (e *NonZeroIdentityDiagonalError) IsCostTableError() {}

// Table is a symmetric (A+1)x(A+1) cost matrix indexed by dense
// alphabet index, with index A reserved for the gap.
type Table struct {
	alphabet *alphabet.Alphabet
	size     int // A+1
	costs    []int32
}

// Size returns A+1, the matrix dimension including the gap slot.
func (t *Table) Size() int { return t.size }

// Cost returns T[i][j].
func (t *Table) Cost(i, j uint8) int32 {
	return t.costs[int(i)*t.size+int(j)]
}

// Load parses a CSV cost table per the row-0-header, row-label-per-row
// convention: row 0 lists column labels (single characters, '*' or '-'
// for gap); each subsequent row starts with its own label followed by
// one signed integer per column.
func Load(r io.Reader, a *alphabet.Alphabet) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing cost table csv: %w", err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("cost table must have a header row and at least one data row")
	}

	header := rows[0]
	if len(header) < 2 {
		return nil, fmt.Errorf("cost table header must have at least one column label")
	}
	colLabels, colIdx, err := decodeLabels(header[1:], a)
	if err != nil {
		return nil, fmt.Errorf("cost table header: %w", err)
	}
	seenCols := make(map[uint8]bool, len(colIdx))
	for i, c := range colIdx {
		if seenCols[c] {
			return nil, fmt.Errorf("cost table column label %q duplicated", colLabels[i])
		}
		seenCols[c] = true
	}

	size := a.Size() + 1
	table := &Table{alphabet: a, size: size, costs: make([]int32, size*size)}
	filled := make([]bool, size*size)

	seenRowLabels := make(map[uint8]bool, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) < 1 {
			continue
		}
		rowIdx, err := decodeLabel(row[0], a)
		if err != nil {
			return nil, fmt.Errorf("cost table row label: %w", err)
		}
		if seenRowLabels[rowIdx] {
			return nil, fmt.Errorf("cost table row label %q duplicated", row[0])
		}
		seenRowLabels[rowIdx] = true

		if len(row)-1 != len(colIdx) {
			return nil, fmt.Errorf("cost table row %q has %d values, want %d", row[0], len(row)-1, len(colIdx))
		}

		for j, cell := range row[1:] {
			var v int
			if _, err := fmt.Sscanf(cell, "%d", &v); err != nil {
				return nil, fmt.Errorf("cost table cell (%q, %q): not an integer: %q", row[0], colLabels[j], cell)
			}
			idx := int(rowIdx)*size + int(colIdx[j])
			table.costs[idx] = int32(v)
			filled[idx] = true
		}
	}

	if len(seenRowLabels) != len(colIdx) {
		return nil, fmt.Errorf("cost table row labels and column labels must cover the same set")
	}
	for idx := range seenRowLabels {
		found := false
		for _, c := range colIdx {
			if c == idx {
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("row label not present among column labels")
		}
	}

	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			if !filled[i*size+j] {
				continue
			}
			if !filled[j*size+i] {
				return nil, fmt.Errorf("cost table missing entry (%d,%d) needed to verify symmetry with (%d,%d)", j, i, i, j)
			}
			got, other := table.costs[i*size+j], table.costs[j*size+i]
			if got != other {
				return nil, &AsymmetricEntryError{Row: byteLabel(a, uint8(i)), Col: byteLabel(a, uint8(j)), Got: int(got), Other: int(other)}
			}
		}
		if filled[i*size+i] && table.costs[i*size+i] != 0 {
			return nil, &NonZeroIdentityDiagonalError{Label: byteLabel(a, uint8(i)), Got: int(table.costs[i*size+i])}
		}
	}

	return table, nil
}

func byteLabel(a *alphabet.Alphabet, idx uint8) byte {
	if idx == a.GapIndex() {
		return '-'
	}
	return a.ByteOf(idx)
}

func decodeLabel(cell string, a *alphabet.Alphabet) (uint8, error) {
	if len(cell) != 1 {
		return 0, fmt.Errorf("label %q must be a single character", cell)
	}
	return a.Decode(cell[0], 0)
}

func decodeLabels(cells []string, a *alphabet.Alphabet) ([]byte, []uint8, error) {
	labels := make([]byte, len(cells))
	idx := make([]uint8, len(cells))
	for i, cell := range cells {
		labels[i] = []byte(cell)[0]
		decoded, err := decodeLabel(cell, a)
		if err != nil {
			return nil, nil, err
		}
		idx[i] = decoded
	}
	return labels, idx, nil
}

// LoadFile opens path and parses it as a cost table.
func LoadFile(path string, a *alphabet.Alphabet) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening cost table %s: %w", path, err)
	}
	defer f.Close()
	return Load(f, a)
}
