package engine

import "errors"

// ErrNotInitialized is returned by operations that require Init to have
// built a grid first. DoPhysics itself treats an uninitialized engine as
// a silent no-op rather than surfacing this, matching the "missing grid"
// row of the tick state machine; ForceVelocity surfaces it since arming
// an override against a nonexistent grid is a caller mistake worth
// reporting.
var ErrNotInitialized = errors.New("engine: not initialized")
