package application

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/ProfJake/lab10/internal/domain/repository"
)

// InputError reports a rejected submission. Nothing carrying an InputError
// is ever persisted or turned into a query.
type InputError struct {
	Field  string
	Reason string
}

func (e *InputError) Error() string {
	return "invalid input: " + e.Field + " " + e.Reason
}

// IsInputError reports whether err is a validation rejection.
func IsInputError(err error) bool {
	var ie *InputError
	return errors.As(err, &ie)
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// requireField trims and rejects blank values. A single blank field rejects
// the whole submission.
func requireField(fields map[string]string, name string) (string, error) {
	v := strings.TrimSpace(fields[name])
	if v == "" {
		return "", &InputError{Field: name, Reason: "must not be blank"}
	}
	return v, nil
}

func requireNumber(fields map[string]string, name string) (float64, error) {
	v, err := requireField(fields, name)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, &InputError{Field: name, Reason: "must be a number"}
	}
	return n, nil
}

// ActivityInput is a validated activity submission. Range checks are left
// to the calorie computation, which rejects unusable measurements.
type ActivityInput struct {
	Type     string
	Weight   float64
	Distance float64
	Time     float64
	UserID   string
}

// ParseActivityInput validates the raw field set of an insert request.
func ParseActivityInput(fields map[string]string) (ActivityInput, error) {
	var in ActivityInput
	var err error

	if in.Type, err = requireField(fields, "activity"); err != nil {
		return ActivityInput{}, err
	}
	if in.Weight, err = requireNumber(fields, "weight"); err != nil {
		return ActivityInput{}, err
	}
	if in.Distance, err = requireNumber(fields, "distance"); err != nil {
		return ActivityInput{}, err
	}
	if in.Time, err = requireNumber(fields, "time"); err != nil {
		return ActivityInput{}, err
	}
	if in.UserID, err = requireField(fields, "user"); err != nil {
		return ActivityInput{}, err
	}
	return in, nil
}

// ParseSearchInput validates a search request and decides typed coercion:
// user handles and activity kinds match as strings, every other searchable
// field coerces its value to a number. A non-numeric value where a number
// is required is a rejection, never a silent zero.
func ParseSearchInput(fields map[string]string) (repository.SearchCriteria, error) {
	prop, err := requireField(fields, "prop")
	if err != nil {
		return repository.SearchCriteria{}, err
	}
	value, err := requireField(fields, "value")
	if err != nil {
		return repository.SearchCriteria{}, err
	}

	field, ok := repository.ParseSearchField(prop)
	if !ok {
		return repository.SearchCriteria{}, &InputError{Field: "prop", Reason: "is not a searchable field"}
	}

	criteria := repository.SearchCriteria{Field: field}
	if field.Numeric() {
		n, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return repository.SearchCriteria{}, &InputError{Field: "value", Reason: "must be a number"}
		}
		criteria.Number = n
	} else {
		criteria.Text = value
	}
	return criteria, nil
}

// SignupInput is a validated signup submission.
type SignupInput struct {
	UserID   string `validate:"required"`
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Age      int    `validate:"required,gt=0"`
	Password string `validate:"required"`
}

// ParseSignupInput applies the blank-field rule, then struct-level
// validation for email shape and a positive age.
func ParseSignupInput(fields map[string]string) (SignupInput, error) {
	var in SignupInput
	var err error

	if in.UserID, err = requireField(fields, "user"); err != nil {
		return SignupInput{}, err
	}
	if in.Name, err = requireField(fields, "name"); err != nil {
		return SignupInput{}, err
	}
	if in.Email, err = requireField(fields, "email"); err != nil {
		return SignupInput{}, err
	}
	ageRaw, err := requireField(fields, "age")
	if err != nil {
		return SignupInput{}, err
	}
	if in.Age, err = strconv.Atoi(ageRaw); err != nil {
		return SignupInput{}, &InputError{Field: "age", Reason: "must be a whole number"}
	}
	if in.Password, err = requireField(fields, "password"); err != nil {
		return SignupInput{}, err
	}

	if err := validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return SignupInput{}, &InputError{
				Field:  formName(verrs[0].StructField()),
				Reason: reasonFor(verrs[0]),
			}
		}
		return SignupInput{}, &InputError{Field: "payload", Reason: "is invalid"}
	}
	return in, nil
}

func formName(structField string) string {
	switch structField {
	case "UserID":
		return "user"
	default:
		return strings.ToLower(structField)
	}
}

func reasonFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "email":
		return "must be a valid email"
	case "gt":
		return "must be greater than " + fe.Param()
	default:
		return "is invalid"
	}
}
