package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrReference indicates a broken or blocking cross-reference: either the input
// points at a resource that does not exist, or a delete is refused because other
// resources still reference the target.
var ErrReference = errors.New("reference constraint violated")

// ErrAuth indicates a failed login. Wrong credentials and an unverified account
// are deliberately not distinguished to the caller.
var ErrAuth = errors.New("invalid credentials or email not verified")

// ErrForbidden indicates the caller is not allowed to perform the action
// (e.g. deleting their own account, or a non-admin hitting an admin surface).
var ErrForbidden = errors.New("forbidden")
