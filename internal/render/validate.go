package render

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"

	"dconn.dev/folio/internal/models"
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("href", validateHref); err != nil {
		panic("render: failed to register href validation: " + err.Error())
	}
	if err := v.RegisterValidation("imgsrc", validateImgSrc); err != nil {
		panic("render: failed to register imgsrc validation: " + err.Error())
	}
	return v
}

// validateHref accepts relative references and absolute http(s) URLs.
func validateHref(fl validator.FieldLevel) bool {
	return hasScheme(fl.Field().String(), "", "http", "https")
}

// validateImgSrc also accepts inline data: images.
func validateImgSrc(fl validator.FieldLevel) bool {
	return hasScheme(fl.Field().String(), "", "http", "https", "data")
}

func hasScheme(raw string, allowed ...string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	scheme := strings.ToLower(u.Scheme)
	for _, s := range allowed {
		if scheme == s {
			return true
		}
	}
	return false
}

func (r *Renderer) validateProjects(projects []models.Project) error {
	if r.validate == nil {
		return nil
	}
	for i := range projects {
		if err := r.validate.Struct(projects[i]); err != nil {
			return fmt.Errorf("%w: project %d: %v", ErrInvalidProject, i, err)
		}
	}
	return nil
}
