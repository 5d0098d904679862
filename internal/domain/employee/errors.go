package employee

import "errors"

// Employee domain errors
var (
	ErrEmployeeNotFound  = errors.New("employee not found")
	ErrRestrictedField   = errors.New("you do not have permission to edit restricted fields")
	ErrNoChangesDetected = errors.New("no changes detected")
)
