package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrConflict indicates that the requested operation conflicts with current state.
var ErrConflict = errors.New("conflicting state")

// ErrInternal indicates an unexpected internal failure.
var ErrInternal = errors.New("internal error")

// ErrPersistence indicates that an atomic posting could not be durably
// committed. When this is returned no leg of the posting and no asset
// mutation was applied.
var ErrPersistence = errors.New("persistence failure")

// ErrUnmappedAccount indicates an account code absent from the cash-flow
// category map. The classifier excludes such transactions from reports and
// surfaces a count instead of failing; this sentinel exists for callers that
// want to treat a lookup miss as a hard error.
var ErrUnmappedAccount = errors.New("account code not mapped to a cash-flow category")
