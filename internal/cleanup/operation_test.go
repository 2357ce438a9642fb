package cleanup

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
)

func TestOperationValidate(t *testing.T) {
	tests := []struct {
		op      Operation
		wantErr bool
	}{
		{OpTruncate, false},
		{OpDrop, false},
		{OpTruncateAndDrop, false},
		{Operation("DELETE"), true},
		{Operation("truncate"), true}, // case-sensitive
		{Operation(""), true},
	}
	for _, tt := range tests {
		t.Run(string(tt.op), func(t *testing.T) {
			err := tt.op.Validate()
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrInvalidOperation))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestOperationPhases(t *testing.T) {
	assert.True(t, OpTruncate.includesTruncate())
	assert.False(t, OpTruncate.IncludesDrop())
	assert.False(t, OpDrop.includesTruncate())
	assert.True(t, OpDrop.IncludesDrop())
	assert.True(t, OpTruncateAndDrop.includesTruncate())
	assert.True(t, OpTruncateAndDrop.IncludesDrop())
}
