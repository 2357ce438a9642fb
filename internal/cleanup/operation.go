package cleanup

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// Operation selects which destructive phases run against each resolved table.
type Operation string

const (
	OpTruncate        Operation = "TRUNCATE"
	OpDrop            Operation = "DROP"
	OpTruncateAndDrop Operation = "TRUNCATE_AND_DROP"
)

var validOperations = []Operation{OpTruncate, OpDrop, OpTruncateAndDrop}

var ErrInvalidOperation = errors.New("invalid operation")

// Validate rejects unknown operation values. It runs before any catalog
// access, so a failure here guarantees no side effects happened.
func (op Operation) Validate() error {
	for _, valid := range validOperations {
		if op == valid {
			return nil
		}
	}
	return errors.Wrapf(ErrInvalidOperation, "%q is not one of %s", string(op), validOperationList())
}

func validOperationList() string {
	names := make([]string, len(validOperations))
	for i, op := range validOperations {
		names[i] = string(op)
	}
	return strings.Join(names, ", ")
}

func (op Operation) includesTruncate() bool {
	return op == OpTruncate || op == OpTruncateAndDrop
}

// IncludesDrop reports whether the operation removes table objects.
func (op Operation) IncludesDrop() bool {
	return op == OpDrop || op == OpTruncateAndDrop
}
