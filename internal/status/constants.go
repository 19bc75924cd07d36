// internal/status/constants.go
package status

// Process exit codes.
// These values are a contract with hooks and CI scripts and MUST NOT be configurable.

// ---- EXIT CODES ----

// ExitClean means every file was already normalized.
const ExitClean = 0

// ExitChanged means at least one file was (or in check mode would be) rewritten.
// Pre-commit treats it as "re-stage and retry".
const ExitChanged = 1

// ExitFailed means at least one file could not be processed.
const ExitFailed = 2

// ExitUsage means the run never started: bad flags or configuration.
const ExitUsage = 3
