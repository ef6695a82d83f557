package config

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/stylekit/internal/style"
	"github.com/alexisbeaulieu97/stylekit/internal/ui/components"
	stylekiterrors "github.com/alexisbeaulieu97/stylekit/pkg/errors"
)

// BaseChecker tells raw base elements apart from component references.
type BaseChecker interface {
	IsBaseElement(id string) bool
}

// ValidateStylesheet performs structural and cross-field validation on an
// entire stylesheet: schema tags, unique names, resolvable bases, acyclic
// inheritance and well-formed style parameters.
func ValidateStylesheet(sheet *Stylesheet, engine BaseChecker) error {
	if sheet == nil {
		return stylekiterrors.NewValidationError("stylesheet", "stylesheet is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(sheet); err != nil {
		return convertValidationError(err)
	}

	builtins := components.Builtins()
	index := make(map[string]int, len(sheet.Components))
	for i, comp := range sheet.Components {
		if _, exists := index[comp.Name]; exists {
			return stylekiterrors.NewValidationError(fieldForComponent(i, "name"), fmt.Sprintf("duplicate component name %q", comp.Name), nil)
		}
		if _, exists := builtins[comp.Name]; exists {
			return stylekiterrors.NewValidationError(fieldForComponent(i, "name"), fmt.Sprintf("component name %q shadows a built-in definition", comp.Name), nil)
		}
		if engine.IsBaseElement(comp.Name) {
			return stylekiterrors.NewValidationError(fieldForComponent(i, "name"), fmt.Sprintf("component name %q shadows a base element", comp.Name), nil)
		}
		index[comp.Name] = i
	}

	for i, comp := range sheet.Components {
		if err := validateComponent(comp, i, index, builtins, engine); err != nil {
			return err
		}
	}

	if cycle := detectCycle(sheet.Components); len(cycle) > 0 {
		return stylekiterrors.NewValidationError("components", fmt.Sprintf("inheritance cycle detected: %s", strings.Join(cycle, " -> ")), nil)
	}

	return nil
}

func validateComponent(comp ComponentConfig, i int, index map[string]int, builtins map[string]*style.Definition, engine BaseChecker) error {
	_, local := index[comp.Base]
	_, builtin := builtins[comp.Base]
	if !local && !builtin && !engine.IsBaseElement(comp.Base) {
		return stylekiterrors.NewValidationError(fieldForComponent(i, "base"), fmt.Sprintf("references unknown base %q", comp.Base), nil)
	}
	if comp.Base == comp.Name {
		return stylekiterrors.NewValidationError(fieldForComponent(i, "base"), "component cannot extend itself", nil)
	}

	if err := comp.Style.Validate(); err != nil {
		return stylekiterrors.NewValidationError(fieldForComponent(i, "style"), err.Error(), err)
	}
	for j, rule := range comp.Computed {
		if err := rule.Style.Validate(); err != nil {
			return stylekiterrors.NewValidationError(fieldForComponent(i, fmt.Sprintf("computed[%d].style", j)), err.Error(), err)
		}
	}
	return nil
}
