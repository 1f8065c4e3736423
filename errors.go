package brew

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownBase is matched by every *UnknownBaseError.
	ErrUnknownBase = errors.New("brew: unknown base kind")
	// ErrUnknownCondiment is matched by every *UnknownCondimentError.
	ErrUnknownCondiment = errors.New("brew: unknown condiment kind")
	// ErrRuleRejected is matched by a *RuleError whose rule evaluated to false.
	ErrRuleRejected = errors.New("brew: rule rejected order")
)

// UnknownBaseError reports a base name that is not on the menu.
type UnknownBaseError struct {
	Name string
}

func (e *UnknownBaseError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("brew: unknown base kind %q", e.Name)
}

func (e *UnknownBaseError) Is(target error) bool {
	return target == ErrUnknownBase
}

// UnknownCondimentError reports a condiment name that is not on the menu.
// Position is the index of the name in the request.
type UnknownCondimentError struct {
	Name     string
	Position int
}

func (e *UnknownCondimentError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("brew: unknown condiment kind %q at position %d", e.Name, e.Position)
}

func (e *UnknownCondimentError) Is(target error) bool {
	return target == ErrUnknownCondiment
}

// RuleError captures the order rule that stopped a build.
type RuleError struct {
	Rule   string
	Engine string
	Err    error
}

func (e *RuleError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("brew: rule %q (%s): %v", e.Rule, e.Engine, e.Err)
}

func (e *RuleError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
