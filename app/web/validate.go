package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/invopop/jsonschema"

	"github.com/umputun/jobboard/app/domain"
)

// maxSeedJobs limits the size of a single seed request
const maxSeedJobs = 20

// Validator checks request shapes before anything reaches the store
type Validator struct {
	v *validator.Validate
}

// NewValidator makes a Validator reporting fields by their json names
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{v: v}
}

// Struct validates a request struct, returns a single error describing all failed fields
func (vl *Validator) Struct(req any) error {
	err := vl.v.Struct(req)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return errors.New(strings.Join(msgs, "; "))
}

// Email validates a single email value, used for path parameters
func (vl *Validator) Email(email string) error {
	if err := vl.v.Var(email, "required,email,max=254"); err != nil {
		return fmt.Errorf("invalid email %q", email)
	}
	return nil
}

// SeedJobs validates a seed batch
func (vl *Validator) SeedJobs(jobs []domain.NewJob) error {
	if len(jobs) == 0 {
		return errors.New("at least one job is required")
	}
	if len(jobs) > maxSeedJobs {
		return fmt.Errorf("too many jobs, max %d", maxSeedJobs)
	}
	for i, j := range jobs {
		if err := vl.Struct(j); err != nil {
			return fmt.Errorf("job %d: %w", i+1, err)
		}
	}
	return nil
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email", fe.Field())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed %s check", fe.Field(), fe.Tag())
	}
}

// parseID parses a positive integer id from a path value
func parseID(val string) (int64, error) {
	id, err := strconv.ParseInt(val, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid id %q", val)
	}
	return id, nil
}

// requestSchemas renders json schemas of all request bodies accepted by the server
func requestSchemas() (map[string][]byte, error) {
	types := map[string]any{
		"job":         &domain.NewJob{},
		"application": &domain.NewApplication{},
		"message":     &domain.NewMessage{},
	}
	res := make(map[string][]byte, len(types))
	for name, tp := range types {
		schema := jsonschema.Reflect(tp)
		schema.Title = name + " request"
		data, err := json.MarshalIndent(schema, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal %s schema: %w", name, err)
		}
		res[name] = data
	}
	return res, nil
}
