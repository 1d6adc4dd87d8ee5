package manipulator

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

var ErrBadImage = errors.New("manipulator bad image provided")
var ErrEncodingFailed = errors.New("manipulator could not encode image")

// ParseError describes a malformed request parameter. Parse errors are never
// fatal: the offending parameter is treated as absent (or zero)
type ParseError struct {
	Key    string
	Value  string
	Reason string
}

func (err *ParseError) Error() string {
	return fmt.Sprintf("could not parse %s=%q: %s", err.Key, err.Value, err.Reason)
}

type ValidationError struct {
	errors map[string]string
}

func NewValidationError() *ValidationError {
	return &ValidationError{errors: make(map[string]string)}
}

func (err *ValidationError) Add(k, v string) {
	err.errors[k] = v
}

func (err *ValidationError) Empty() bool {
	return len(err.errors) == 0
}

func (err *ValidationError) Error() string {
	keys := make([]string, 0, len(err.errors))
	for k := range err.errors {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	messages := make([]string, 0, len(keys))
	for _, k := range keys {
		messages = append(messages, k+": "+err.errors[k])
	}

	return "validation: " + strings.Join(messages, "; ")
}

func (err *ValidationError) Errors() map[string]string {
	return err.errors
}
