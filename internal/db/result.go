package db

import (
	"fmt"
	"io"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// NullText is how a SQL NULL column value is rendered in printed and collected rows.
const NullText = "null"

// resultSet is the subset of pgx.Rows the result helpers read.
type resultSet interface {
	Next() bool
	FieldDescriptions() []pgconn.FieldDescription
	RawValues() [][]byte
	Err() error
	Close()
}

func printResult(w io.Writer, rs resultSet) (int, error) {
	defer rs.Close()

	count := 0
	for rs.Next() {
		if count == 0 {
			var header strings.Builder
			for _, fd := range rs.FieldDescriptions() {
				header.WriteString(fd.Name)
				header.WriteByte('\t')
			}
			fmt.Fprintln(w, header.String())
		}
		fmt.Fprintln(w, formatRow(rs.RawValues()))
		count++
	}
	if err := rs.Err(); err != nil {
		return count, fmt.Errorf("failed to read rows: %w", err)
	}
	return count, nil
}

func collectResult(rs resultSet) ([][]string, error) {
	defer rs.Close()

	var result [][]string
	for rs.Next() {
		raw := rs.RawValues()
		record := make([]string, len(raw))
		for i, v := range raw {
			record[i] = stringify(v)
		}
		result = append(result, record)
	}
	if err := rs.Err(); err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}
	return result, nil
}

func existsResult(rs resultSet) (int, error) {
	defer rs.Close()

	found := 0
	if rs.Next() {
		found = 1
	}
	if err := rs.Err(); err != nil {
		return 0, fmt.Errorf("failed to read rows: %w", err)
	}
	return found, nil
}

func formatRow(raw [][]byte) string {
	var b strings.Builder
	for _, v := range raw {
		b.WriteString(stringify(v))
		b.WriteByte('\t')
	}
	return b.String()
}

func stringify(v []byte) string {
	if v == nil {
		return NullText
	}
	return string(v)
}
