package selections

import "github.com/pkg/errors"

// errContractf builds the error value passed to panic when the storage
// detects a contract violation: a LineLength that lies about its bounds,
// or (in debug mode) an invariant broken by a bug in this package. It is
// never returned from a public method, only panicked with.
func errContractf(format string, args ...interface{}) error {
	return errors.Wrapf(errors.Errorf(format, args...), "selections: contract violation")
}
