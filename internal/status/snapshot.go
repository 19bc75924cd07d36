// internal/status/snapshot.go
package status

// Snapshot counts file outcomes of one run.
// It contains no logic beyond counting.
type Snapshot struct {
	Total   int
	Changed int
	Failed  int

	// Check is set when nothing was written.
	Check bool
}

// Observe records one file outcome. A failed file is never counted as changed.
func (s *Snapshot) Observe(changed, failed bool) {
	s.Total++
	switch {
	case failed:
		s.Failed++
	case changed:
		s.Changed++
	}
}
