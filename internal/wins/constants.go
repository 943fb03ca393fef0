package wins

// Minimum matches for a paying line and a paying cluster
const (
	MinLineRun     = 3
	MinClusterSize = 5
)
