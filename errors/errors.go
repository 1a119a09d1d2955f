package errors

import "fmt"

var (
	ErrValidation         = fmt.Errorf("validation failed")
	ErrDependencyCycle    = fmt.Errorf("dependency would create a cycle")
	ErrDependencyUnmet    = fmt.Errorf("dependency is not completed")
	ErrNotCreator         = fmt.Errorf("only the creator may modify this sub-point")
	ErrAlreadyClaimed     = fmt.Errorf("responsibility has already been claimed")
	ErrNotFound           = fmt.Errorf("not found")
	ErrInvalidCredentials = fmt.Errorf("invalid credentials")
	ErrTokenGeneration    = fmt.Errorf("token generation failed")
)
