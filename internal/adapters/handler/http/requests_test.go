package http

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/progress-tracker/internal/core/domain"
)

func TestSessionRequest_ToInput(t *testing.T) {
	rome, err := time.LoadLocation("Europe/Rome")
	require.NoError(t, err)
	cal := domain.NewCalendar(rome)

	weight, reps := 60.0, 10

	t.Run("Zone-less date is read in the calendar zone", func(t *testing.T) {
		req := sessionRequest{
			Date:        "2024-03-10",
			WorkoutType: "pull",
			Workout: []exerciseRequest{
				{Name: "Row", Sets: []setRequest{{Weight: &weight, Reps: &reps}}},
			},
		}

		input, err := req.toInput(cal)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 3, 9, 23, 0, 0, 0, time.UTC), input.Date)
		assert.Equal(t, []domain.SessionExercise{{Name: "Row", Sets: []domain.Set{{Weight: 60, Reps: 10}}}}, input.Workout)
	})

	t.Run("Absent workout stays nil", func(t *testing.T) {
		input, err := sessionRequest{Date: "2024-03-10T08:00:00Z", WorkoutType: "pull"}.toInput(cal)
		require.NoError(t, err)
		assert.Nil(t, input.Workout)
	})

	t.Run("Set missing weight", func(t *testing.T) {
		req := sessionRequest{
			Date:    "2024-03-10",
			Workout: []exerciseRequest{{Name: "Row", Sets: []setRequest{{Reps: &reps}}}},
		}
		_, err := req.toInput(cal)
		assert.ErrorIs(t, err, domain.ErrSetIncomplete)
	})

	t.Run("Bad date", func(t *testing.T) {
		_, err := sessionRequest{Date: "yesterday"}.toInput(cal)
		assert.ErrorIs(t, err, domain.ErrInvalidDate)
	})
}
