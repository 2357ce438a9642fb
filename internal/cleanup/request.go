package cleanup

// Request carries the six inputs of one sweep invocation. It is constructed
// once by the caller and never mutated.
//
// TableNames is only consulted when Filtered is true; an unfiltered request
// sweeps every table in the dataset no matter what the list contains.
type Request struct {
	ProjectID  string
	DatasetID  string
	Filtered   bool
	TableNames []string
	Operation  Operation
	DryRun     bool
}
