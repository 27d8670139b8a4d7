package validation

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// MinQueryLength is the minimum trimmed length of a search query
const MinQueryLength = 3

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Registration only fails on an empty tag or nil func
	_ = v.RegisterValidation("trimmed_min", trimmedMin)
	return v
}

// trimmedMin checks the rune length of a string after trimming whitespace
func trimmedMin(fl validator.FieldLevel) bool {
	n, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return utf8.RuneCountInString(strings.TrimSpace(fl.Field().String())) >= n
}

type queryInput struct {
	Query string `validate:"trimmed_min=3"`
}

// ValidateQuery checks the minimum-length contract and returns the trimmed query.
func ValidateQuery(query string) (string, error) {
	if err := validate.Struct(queryInput{Query: query}); err != nil {
		return "", &Error{
			Field:   "query",
			Message: fmt.Sprintf("Query must be at least %d characters long", MinQueryLength),
		}
	}
	return strings.TrimSpace(query), nil
}
