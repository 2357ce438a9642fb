package cleanup

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveTargetsUnfiltered(t *testing.T) {
	catalog := &fakeCatalog{tables: datasetTables("t2", "t1", "t3")}

	targets, err := ResolveTargets(context.Background(), catalog, Request{
		ProjectID:  "p",
		DatasetID:  "d",
		Filtered:   false,
		TableNames: []string{"t1"},
	})

	require.NoError(t, err)
	// Full set, catalog order preserved, name set ignored.
	assert.Equal(t, datasetTables("t2", "t1", "t3"), targets)
}

func TestResolveTargetsFilteredIntersection(t *testing.T) {
	catalog := &fakeCatalog{tables: datasetTables("t1", "t2", "t3")}

	targets, err := ResolveTargets(context.Background(), catalog, Request{
		ProjectID:  "p",
		DatasetID:  "d",
		Filtered:   true,
		TableNames: []string{"t3", "t1", "not_there"},
	})

	require.NoError(t, err)
	assert.Equal(t, datasetTables("t1", "t3"), targets, "catalog order wins over name-set order")
}

func TestResolveTargetsCaseSensitive(t *testing.T) {
	catalog := &fakeCatalog{tables: datasetTables("Events")}

	targets, err := ResolveTargets(context.Background(), catalog, Request{
		ProjectID:  "p",
		DatasetID:  "d",
		Filtered:   true,
		TableNames: []string{"events"},
	})

	require.NoError(t, err)
	assert.Empty(t, targets)
}
