package services

import (
	"context"
	"strings"
)

// fakeReader serves canned rows keyed by a distinctive substring of the
// cypher text, standing in for the Neo4j client.
type fakeReader struct {
	rows map[string][]map[string]any
	err  error
}

func (f *fakeReader) ReadQuery(_ context.Context, cypher string, _ map[string]any) ([]map[string]any, error) {
	if f.err != nil {
		return nil, f.err
	}
	for key, rows := range f.rows {
		if strings.Contains(cypher, key) {
			return rows, nil
		}
	}
	return nil, nil
}
