package forms

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ahmedgamal1254/lms-portal/internal/api"
)

func validSubscription() SubscriptionValues {
	return SubscriptionValues{
		StudentID: 7,
		PlanID:    2,
		StartDate: "2026-01-01",
		EndDate:   "2026-02-01",
	}
}

// noAction fails the test if the form issues a request.
func noAction(t *testing.T) func(context.Context, Mode, int64, SubscriptionValues) error {
	return func(context.Context, Mode, int64, SubscriptionValues) error {
		t.Fatal("action must not run when validation fails")
		return nil
	}
}

func TestSubmitRequiredFieldsBlockRequest(t *testing.T) {
	form := New[SubscriptionValues](zap.NewNop())
	form.OpenCreate(SubscriptionValues{})

	err := form.Submit(context.Background(), noAction(t))
	require.ErrorIs(t, err, ErrInvalid)

	assert.Equal(t, "This field is required", form.FieldError("student_id"))
	assert.Equal(t, "This field is required", form.FieldError("start_date"))
	assert.Equal(t, ModeCreate, form.Mode(), "dialog stays open")
}

func TestSubmitDateOrderingBlocksRequest(t *testing.T) {
	cases := []struct {
		name       string
		start, end string
	}{
		{"end before start", "2026-02-01", "2026-01-01"},
		{"end equals start", "2026-01-01", "2026-01-01"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			form := New[SubscriptionValues](zap.NewNop())
			form.OpenCreate(SubscriptionValues{
				StudentID: 7,
				PlanID:    2,
				StartDate: tc.start,
				EndDate:   tc.end,
			})

			err := form.Submit(context.Background(), noAction(t))
			require.ErrorIs(t, err, ErrInvalid)
			assert.Equal(t, "End date must be after start date", form.FieldError("end_date"))
		})
	}
}

func TestSubmitSuccessClosesForm(t *testing.T) {
	form := New[SubscriptionValues](zap.NewNop())
	form.OpenEdit(11, validSubscription())

	var calls int
	err := form.Submit(context.Background(), func(_ context.Context, mode Mode, id int64, values SubscriptionValues) error {
		calls++
		assert.Equal(t, ModeEdit, mode)
		assert.Equal(t, int64(11), id)
		assert.Equal(t, int64(7), values.StudentID)
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, ModeClosed, form.Mode())
	assert.Empty(t, form.FieldErrors())
}

func TestSubmitServerValidationKeepsFormOpen(t *testing.T) {
	form := New[SubscriptionValues](zap.NewNop())
	form.OpenCreate(validSubscription())

	serverErr := &api.ValidationError{
		Message: "Validation failed",
		Fields:  map[string]string{"plan_id": "The selected plan is full."},
	}
	err := form.Submit(context.Background(), func(context.Context, Mode, int64, SubscriptionValues) error {
		return serverErr
	})

	require.Error(t, err)
	assert.Equal(t, ModeCreate, form.Mode(), "dialog stays open for correction")
	assert.Equal(t, "The selected plan is full.", form.FieldError("plan_id"))
	assert.Equal(t, validSubscription(), form.Values(), "entered values survive the failure")
	assert.False(t, form.Submitting())
}

func TestSubmitServerErrorSetsFormMessage(t *testing.T) {
	form := New[SubscriptionValues](zap.NewNop())
	form.OpenCreate(validSubscription())

	err := form.Submit(context.Background(), func(context.Context, Mode, int64, SubscriptionValues) error {
		return &api.Error{Status: 500, Message: "Server is busy"}
	})

	require.Error(t, err)
	assert.Equal(t, ModeCreate, form.Mode())
	assert.Equal(t, "Server is busy", form.Error())
}

func TestSubmitDeleteSkipsValidation(t *testing.T) {
	form := New[SubscriptionValues](zap.NewNop())
	form.OpenDelete(42)

	var gotID int64
	err := form.Submit(context.Background(), func(_ context.Context, mode Mode, id int64, _ SubscriptionValues) error {
		assert.Equal(t, ModeDelete, mode)
		gotID = id
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), gotID)
	assert.Equal(t, ModeClosed, form.Mode())
}

func TestSubmitWhileClosed(t *testing.T) {
	form := New[SubscriptionValues](zap.NewNop())

	err := form.Submit(context.Background(), noAction(t))
	assert.ErrorIs(t, err, ErrFormClosed)
}

func TestSubmitWhilePending(t *testing.T) {
	form := New[SubscriptionValues](zap.NewNop())
	form.OpenDelete(5)

	release := make(chan struct{})
	started := make(chan struct{})
	done := make(chan error, 1)

	go func() {
		done <- form.Submit(context.Background(), func(context.Context, Mode, int64, SubscriptionValues) error {
			close(started)
			<-release
			return nil
		})
	}()

	<-started
	err := form.Submit(context.Background(), func(context.Context, Mode, int64, SubscriptionValues) error {
		return nil
	})
	assert.ErrorIs(t, err, ErrSubmitPending)

	close(release)
	assert.NoError(t, <-done)
}

func TestSetValuesIgnoredWhileClosed(t *testing.T) {
	form := New[SubscriptionValues](zap.NewNop())

	form.SetValues(validSubscription())
	assert.Equal(t, SubscriptionValues{}, form.Values())

	form.OpenCreate(SubscriptionValues{})
	form.SetValues(validSubscription())
	assert.Equal(t, validSubscription(), form.Values())
}

func TestParentEmailValidation(t *testing.T) {
	form := New[ParentValues](zap.NewNop())
	form.OpenCreate(ParentValues{Name: "Mona", Email: "not-an-email", Phone: "0100000000", CountryCode: "+20"})

	err := form.Submit(context.Background(), func(context.Context, Mode, int64, ParentValues) error {
		t.Fatal("action must not run when validation fails")
		return nil
	})
	require.ErrorIs(t, err, ErrInvalid)
	assert.Equal(t, "Invalid email address", form.FieldError("email"))
}

func TestUserMessageFallsBackToGenericText(t *testing.T) {
	assert.Equal(t, "❌ Something went wrong, please try again", userMessage(errors.New("boom")))
	assert.Equal(t, "❌ The request timed out, please try again",
		userMessage(errors.New("Get \"/x\": context deadline exceeded")))
}
