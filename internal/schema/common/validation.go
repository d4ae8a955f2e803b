package common

import "fmt"

// ValidationError is a semantic config error located by a dotted path such as "identity.scopes[1]".
type ValidationError struct {
	Path    string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// ValidationContext tracks where in the config tree validation currently is. Push methods return a new context
// and leave the receiver unchanged.
type ValidationContext struct {
	Path string
}

func (c *ValidationContext) PushField(field string) *ValidationContext {
	if c.Path == "" {
		return &ValidationContext{Path: field}
	}

	return &ValidationContext{Path: c.Path + "." + field}
}

func (c *ValidationContext) PushIndex(i int) *ValidationContext {
	return &ValidationContext{Path: fmt.Sprintf("%s[%d]", c.Path, i)}
}

func (c *ValidationContext) NewError(message string) *ValidationError {
	return &ValidationError{Path: c.Path, Message: message}
}

func (c *ValidationContext) NewErrorForField(field, message string) *ValidationError {
	return c.PushField(field).NewError(message)
}

func (c *ValidationContext) NewErrorfForField(field, format string, args ...interface{}) *ValidationError {
	return c.PushField(field).NewError(fmt.Sprintf(format, args...))
}
