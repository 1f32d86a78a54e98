// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/bipval/correction"
	"github.com/katalvlaran/bipval/significance"
)

// ErrInvalidArgument indicates a bad command line: wrong argument count,
// unknown tail or method, or a threshold outside [0,1].
var ErrInvalidArgument = errors.New("config: invalid argument")

// Usage is the bipval synopsis. The output naming rule matches
// report.OutputPath.
const Usage = "bipval <edgelist_path> <tail: over|under|both> <method: B|FDR> <stat_threshold> [<name_extension>]; " +
	"writes <edgelist_base>_<name_extension>.txt, a leading '_' on name_extension is not doubled " +
	"(default " + DefaultNameExtension + ")"

const (
	minArgs = 4
	maxArgs = 5
)

// Params are the validated positional arguments of bipval.
type Params struct {
	Path          string  `validate:"required"`
	TailName      string  `validate:"required,oneof=over under both"`
	MethodName    string  `validate:"required,oneof=B FDR"`
	Threshold     float64 `validate:"gte=0,lte=1"`
	NameExtension string  `validate:"required,excludesall=/"`

	// Set by ParseArgs after validation.
	Tail   significance.Tail `validate:"-"`
	Method correction.Method `validate:"-"`
}

// ParseArgs validates args (program name excluded). defaultExt is used when
// the optional fifth argument is absent.
func ParseArgs(args []string, defaultExt string) (Params, error) {
	if len(args) < minArgs || len(args) > maxArgs {
		return Params{}, fmt.Errorf("%w: expected %d or %d arguments, got %d", ErrInvalidArgument, minArgs, maxArgs, len(args))
	}
	threshold, err := strconv.ParseFloat(args[3], 64)
	if err != nil {
		return Params{}, fmt.Errorf("%w: stat_threshold %q is not a number", ErrInvalidArgument, args[3])
	}

	p := Params{
		Path:          args[0],
		TailName:      args[1],
		MethodName:    args[2],
		Threshold:     threshold,
		NameExtension: defaultExt,
	}
	if len(args) == maxArgs {
		p.NameExtension = args[4]
	}
	if err := validate.Struct(p); err != nil {
		return Params{}, fmt.Errorf("%w: %s", ErrInvalidArgument, formatValidationError(err))
	}

	if p.Tail, err = significance.ParseTail(p.TailName); err != nil {
		return Params{}, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	if p.Method, err = correction.ParseMethod(p.MethodName); err != nil {
		return Params{}, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}

	return p, nil
}

// formatValidationError joins the field errors into one message.
func formatValidationError(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		msgs = append(msgs, formatFieldError(e))
	}

	return strings.Join(msgs, "; ")
}

func formatFieldError(e validator.FieldError) string {
	field := fieldName(e.Field())

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s (got %v)", field, e.Param(), e.Value())
	case "gte":
		return fmt.Sprintf("%s must be at least %s (got %v)", field, e.Param(), e.Value())
	case "lte":
		return fmt.Sprintf("%s must be at most %s (got %v)", field, e.Param(), e.Value())
	case "excludesall":
		return fmt.Sprintf("%s must not contain any of %q", field, e.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// fieldName maps struct fields to the names users see.
func fieldName(f string) string {
	switch f {
	case "Path":
		return "edgelist_path"
	case "TailName":
		return "tail"
	case "MethodName":
		return "method"
	case "Threshold":
		return "stat_threshold"
	case "NameExtension":
		return "name_extension"
	default:
		return strings.ToLower(f)
	}
}
