package forms

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/ahmedgamal1254/lms-portal/internal/api"
)

// Mode is the dialog state: closed → (create|edit|delete) → submitting →
// closed on success, or back to the open mode on failure.
type Mode string

const (
	ModeClosed Mode = "closed"
	ModeCreate Mode = "create"
	ModeEdit   Mode = "edit"
	ModeDelete Mode = "delete"
)

var (
	// ErrSubmitPending guards against double submits while a mutation is
	// in flight (the submit control is disabled, this is the backstop).
	ErrSubmitPending = errors.New("a submission is already in progress")
	ErrFormClosed    = errors.New("form is not open")
	// ErrInvalid means client-side validation failed and no request was
	// issued; the field errors carry the details.
	ErrInvalid = errors.New("form validation failed")
)

// CrossValidator adds cross-field checks on top of the tag validation,
// e.g. the subscription date ordering.
type CrossValidator interface {
	CrossValidate() map[string]string
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func validator10() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		// Report errors under the wire field name, not the Go one.
		validate.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := field.Tag.Get("form")
			if name == "" || name == "-" {
				return field.Name
			}
			return name
		})
	})
	return validate
}

// Form owns the transient state of one CRUD dialog.
type Form[V any] struct {
	mu          sync.Mutex
	mode        Mode
	submitting  bool
	targetID    int64
	values      V
	fieldErrors map[string]string
	formError   string
	logger      *zap.Logger
}

func New[V any](logger *zap.Logger) *Form[V] {
	return &Form[V]{
		mode:   ModeClosed,
		logger: logger,
	}
}

// OpenCreate opens the dialog with default field values.
func (f *Form[V]) OpenCreate(defaults V) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.open(ModeCreate, 0, defaults)
}

// OpenEdit opens the dialog pre-filled from the selected row.
func (f *Form[V]) OpenEdit(id int64, values V) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.open(ModeEdit, id, values)
}

// OpenDelete opens the delete confirmation for the selected row.
func (f *Form[V]) OpenDelete(id int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var zero V
	f.open(ModeDelete, id, zero)
}

func (f *Form[V]) open(mode Mode, id int64, values V) {
	f.mode = mode
	f.targetID = id
	f.values = values
	f.submitting = false
	f.fieldErrors = nil
	f.formError = ""
}

// Close discards the dialog state without submitting.
func (f *Form[V]) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	var zero V
	f.open(ModeClosed, 0, zero)
}

func (f *Form[V]) Mode() Mode {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.mode
}

// Submitting reports whether a mutation is in flight; the submit control
// is disabled while it is true.
func (f *Form[V]) Submitting() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitting
}

func (f *Form[V]) TargetID() int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.targetID
}

func (f *Form[V]) Values() V {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values
}

// SetValues replaces the field values as the user types.
func (f *Form[V]) SetValues(values V) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.mode == ModeClosed || f.submitting {
		return
	}
	f.values = values
}

// FieldError returns the message attached to one input, if any.
func (f *Form[V]) FieldError(field string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fieldErrors[field]
}

// FieldErrors returns all field-keyed messages.
func (f *Form[V]) FieldErrors() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	errs := make(map[string]string, len(f.fieldErrors))
	for field, message := range f.fieldErrors {
		errs[field] = message
	}
	return errs
}

// Error returns the form-level error message, if any.
func (f *Form[V]) Error() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.formError
}

// Submit validates client-side and runs action. Validation failure means
// no request at all. On success the dialog closes; on failure it stays
// open with the field values preserved and the server's error map applied.
func (f *Form[V]) Submit(ctx context.Context, action func(ctx context.Context, mode Mode, id int64, values V) error) error {
	f.mu.Lock()
	if f.mode == ModeClosed {
		f.mu.Unlock()
		return ErrFormClosed
	}
	if f.submitting {
		f.mu.Unlock()
		return ErrSubmitPending
	}

	mode := f.mode
	id := f.targetID
	values := f.values

	// Delete confirmations have no fields to validate.
	if mode != ModeDelete {
		if fieldErrs := clientValidate(values); len(fieldErrs) > 0 {
			f.fieldErrors = fieldErrs
			f.formError = ""
			f.mu.Unlock()
			return ErrInvalid
		}
	}

	f.submitting = true
	f.fieldErrors = nil
	f.formError = ""
	f.mu.Unlock()

	err := action(ctx, mode, id, values)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitting = false

	if err == nil {
		var zero V
		f.open(ModeClosed, 0, zero)
		return nil
	}

	// Keep the dialog open so the user can correct and resubmit.
	var validationErr *api.ValidationError
	if errors.As(err, &validationErr) {
		f.fieldErrors = validationErr.Fields
		f.formError = validationErr.Message
	} else {
		f.formError = userMessage(err)
	}

	f.logger.Warn("Form submission failed",
		zap.String("mode", string(mode)),
		zap.Int64("target_id", id),
		zap.Error(err))
	return err
}

func clientValidate(values any) map[string]string {
	fieldErrs := map[string]string{}

	if err := validator10().Struct(values); err != nil {
		var invalid *validator.InvalidValidationError
		if errors.As(err, &invalid) {
			return fieldErrs
		}
		for _, fieldErr := range err.(validator.ValidationErrors) {
			fieldErrs[fieldErr.Field()] = tagMessage(fieldErr)
		}
	}

	if cross, ok := values.(CrossValidator); ok {
		for field, message := range cross.CrossValidate() {
			fieldErrs[field] = message
		}
	}

	return fieldErrs
}

func tagMessage(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email address"
	case "gt":
		return fmt.Sprintf("Must be greater than %s", fieldErr.Param())
	case "min":
		return fmt.Sprintf("Must be at least %s", fieldErr.Param())
	default:
		return "Invalid value"
	}
}

// userMessage maps an error to the text shown inside the dialog.
func userMessage(err error) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		if apiErr.Message != "" {
			return apiErr.Message
		}
		return "❌ The server rejected the request"
	}
	if strings.Contains(err.Error(), "context deadline exceeded") {
		return "❌ The request timed out, please try again"
	}
	return "❌ Something went wrong, please try again"
}
