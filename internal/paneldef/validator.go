package paneldef

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	overlayerrors "github.com/gridwell/overlaykit/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	controlIDPattern = regexp.MustCompile(`^[a-z0-9_-]+$`)
)

// validatorInstance configures and returns the shared validator used across
// the package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("control_id", func(fl validator.FieldLevel) bool {
			return controlIDPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})
	return validateInst
}

// Validate performs structural and cross-field validation on a full panel
// definition document.
func Validate(doc *Document) error {
	if doc == nil {
		return overlayerrors.NewValidationError("document", "panel definition is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(doc); err != nil {
		return convertValidationError(err)
	}

	controlTypes := make(map[string]string)

	for i, p := range doc.Panels {
		settings := make(map[string]struct{}, len(p.Controls))

		for j, c := range p.Controls {
			if c.Setting == "name" {
				return overlayerrors.NewValidationError(fieldForControl(i, j, "setting"),
					`"name" is reserved for panel metadata`, nil)
			}
			if _, exists := settings[c.Setting]; exists {
				return overlayerrors.NewValidationError(fieldForControl(i, j, "setting"),
					fmt.Sprintf("duplicate setting %q", c.Setting), nil)
			}
			settings[c.Setting] = struct{}{}

			// A control shared by several panels must keep one type.
			if prior, exists := controlTypes[c.ID]; exists && prior != c.Type {
				return overlayerrors.NewValidationError(fieldForControl(i, j, "type"),
					fmt.Sprintf("control %q already declared with type %q", c.ID, prior), nil)
			}
			controlTypes[c.ID] = c.Type

			if c.Type == "list" {
				if err := validateListPayload(c.List, i, j); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

func validateListPayload(payload *ListDef, panelIdx, controlIdx int) error {
	if payload == nil || len(payload.Options) == 0 {
		return overlayerrors.NewValidationError(fieldForControl(panelIdx, controlIdx, "options"),
			"list control declares no options", nil)
	}

	selectable := 0
	for k, opt := range payload.Options {
		if opt.NewCol {
			continue
		}
		if opt.Label == "" && !opt.Cancel {
			return overlayerrors.NewValidationError(
				fmt.Sprintf("panels[%d].controls[%d].options[%d].label", panelIdx, controlIdx, k),
				"option needs a label", nil)
		}
		if !opt.Skip && !opt.Custom && !opt.Cancel {
			selectable++
		}
	}
	if selectable == 0 {
		return overlayerrors.NewValidationError(fieldForControl(panelIdx, controlIdx, "options"),
			"list control has no selectable options", nil)
	}
	return nil
}

// convertValidationError normalizes validator errors into the package's
// typed validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return overlayerrors.NewValidationError(field, msg, err)
	}

	return overlayerrors.NewValidationError("document", err.Error(), err)
}

func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	lowered := make([]string, 0, len(parts))
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}

func fieldForControl(panelIdx, controlIdx int, field string) string {
	return fmt.Sprintf("panels[%d].controls[%d].%s", panelIdx, controlIdx, field)
}
