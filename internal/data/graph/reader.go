package graph

import "context"

// Reader is the narrow read surface the query layer needs from the
// Neo4j client. Tests substitute a fake returning canned rows.
type Reader interface {
	ReadQuery(ctx context.Context, cypher string, params map[string]any) ([]map[string]any, error)
}
