package cleanup

import "context"

// TableTarget identifies one resolved table by its fully qualified name.
type TableTarget struct {
	Project string
	Dataset string
	Table   string
}

// Catalog lists the tables of a dataset in the catalog's natural order.
// The order must be deterministic within one call; it need not be stable
// across calls.
type Catalog interface {
	ListTables(ctx context.Context, project, dataset string) ([]TableTarget, error)
}

// ResolveTargets queries the catalog for the dataset's tables and, in
// filtered mode, restricts them to the requested names. Matching is exact and
// case-sensitive; no wildcards, no normalization. An empty result is not an
// error, it is the NoTargets terminal outcome handled by Run.
func ResolveTargets(ctx context.Context, catalog Catalog, req Request) ([]TableTarget, error) {
	tables, err := catalog.ListTables(ctx, req.ProjectID, req.DatasetID)
	if err != nil {
		return nil, err
	}
	if !req.Filtered {
		return tables, nil
	}
	wanted := make(map[string]struct{}, len(req.TableNames))
	for _, name := range req.TableNames {
		wanted[name] = struct{}{}
	}
	var targets []TableTarget
	for _, table := range tables {
		if _, ok := wanted[table.Table]; ok {
			targets = append(targets, table)
		}
	}
	return targets, nil
}
