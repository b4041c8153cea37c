package aggregate

import "github.com/poiesic/lancer/core"

// Monitor provides hooks to observe the aggregation process.
// Implement this interface to track per-source outcomes during a query.
type Monitor interface {
	Start(query string)
	SourceSucceeded(name string, results int)
	SourceFailed(name string, err error)
	Finish(merged []core.MergedResult)
}

// noopMonitor is a no-op implementation of Monitor
type noopMonitor struct{}

var _ Monitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                      {}
func (n *noopMonitor) SourceSucceeded(_ string, _ int)     {}
func (n *noopMonitor) SourceFailed(_ string, _ error)      {}
func (n *noopMonitor) Finish(_ []core.MergedResult)        {}
