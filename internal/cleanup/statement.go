package cleanup

// Phase is one of the two destructive actions a sweep can take on a table.
type Phase int

const (
	// PhaseTruncate removes all rows but preserves the table object.
	PhaseTruncate Phase = iota
	// PhaseDrop removes the table object itself, tolerating its absence.
	PhaseDrop
)

// Statement is an unrendered statement: which table, which phase. Rendering
// to literal SQL is dialect-specific and happens only at the execution
// boundary, which keeps statement construction testable without a warehouse.
type Statement struct {
	Target TableTarget
	Phase  Phase
}

// StatementPair holds both statements derivable for a target. Both always
// exist; the operation decides which are used.
type StatementPair struct {
	Truncate Statement
	Drop     Statement
}

// BuildStatements is a pure function from a target to its statement pair.
func BuildStatements(target TableTarget) StatementPair {
	return StatementPair{
		Truncate: Statement{Target: target, Phase: PhaseTruncate},
		Drop:     Statement{Target: target, Phase: PhaseDrop},
	}
}

// Renderer produces the literal SQL for a statement in one warehouse dialect.
// The drop rendering must carry if-exists semantics.
type Renderer interface {
	Render(stmt Statement) string
}
