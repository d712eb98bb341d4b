package chat

import (
	"testing"

	"vetchat/models"

	"github.com/stretchr/testify/require"
)

func TestAdvanceBookingOpeningPrompt(t *testing.T) {
	res := advanceBooking("", "I want to book an appointment", models.BookingData{}, models.SessionContext{})

	require.Equal(t, outcomeContinue, res.Outcome)
	require.Equal(t, StepOwnerName, res.Next)
	require.Nil(t, res.Patch)
	require.Contains(t, res.Reply, "full name")
}

func TestAdvanceBookingOwnerName(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		wantNext BookingStep
		wantName string
	}{
		{name: "valid name", message: "Jane Doe", wantNext: StepPetName, wantName: "Jane Doe"},
		{name: "trims whitespace", message: "  Jane Doe  ", wantNext: StepPetName, wantName: "Jane Doe"},
		{name: "too short re-prompts", message: "J", wantNext: StepOwnerName},
		{name: "whitespace only re-prompts", message: "   ", wantNext: StepOwnerName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := advanceBooking(StepOwnerName, tt.message, models.BookingData{}, models.SessionContext{})
			require.Equal(t, outcomeContinue, res.Outcome)
			require.Equal(t, tt.wantNext, res.Next)
			if tt.wantName != "" {
				require.NotNil(t, res.Patch)
				require.Equal(t, tt.wantName, res.Patch.OwnerName)
			} else {
				require.Nil(t, res.Patch)
			}
		})
	}
}

func TestAdvanceBookingPetName(t *testing.T) {
	res := advanceBooking(StepPetName, "Max, labrador", models.BookingData{OwnerName: "Jane Doe"}, models.SessionContext{})
	require.Equal(t, StepPhone, res.Next)
	require.Equal(t, "Max, labrador", res.Patch.PetName)

	res = advanceBooking(StepPetName, "x", models.BookingData{}, models.SessionContext{})
	require.Equal(t, StepPetName, res.Next)
	require.Nil(t, res.Patch)
}

func TestAdvanceBookingPhoneValidation(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		valid bool
	}{
		{name: "too short", phone: "12345", valid: false},
		{name: "formatted international", phone: "+1 555-123-4567", valid: true},
		{name: "seven digits minimum", phone: "1234567", valid: true},
		{name: "letters rejected", phone: "call me maybe", valid: false},
		{name: "parentheses accepted", phone: "(555) 123-4567", valid: true},
		{name: "too long", phone: "1234567890123456", valid: false},
	}

	data := models.BookingData{OwnerName: "Jane Doe", PetName: "Max"}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := advanceBooking(StepPhone, tt.phone, data, models.SessionContext{})
			require.Equal(t, outcomeContinue, res.Outcome)
			if tt.valid {
				require.Equal(t, StepDateTime, res.Next)
				require.NotNil(t, res.Patch)
			} else {
				require.Equal(t, StepPhone, res.Next)
				require.Nil(t, res.Patch)
			}
		})
	}
}

func TestAdvanceBookingDateTime(t *testing.T) {
	data := models.BookingData{OwnerName: "Jane Doe", PetName: "Max, labrador", Phone: "+15551234567"}

	// Four characters is below the non-triviality floor.
	res := advanceBooking(StepDateTime, "abcd", data, models.SessionContext{})
	require.Equal(t, StepDateTime, res.Next)
	require.Nil(t, res.Patch)

	// Free-form date expressions are deliberately allowed.
	res = advanceBooking(StepDateTime, "June 2", data, models.SessionContext{})
	require.Equal(t, StepConfirm, res.Next)
	require.Equal(t, "June 2", res.Patch.DateTime)

	// The confirmation prompt echoes every collected field.
	require.Contains(t, res.Reply, "Jane Doe")
	require.Contains(t, res.Reply, "Max, labrador")
	require.Contains(t, res.Reply, "+15551234567")
	require.Contains(t, res.Reply, "June 2")
}

func TestAdvanceBookingConfirm(t *testing.T) {
	data := models.BookingData{OwnerName: "Jane", PetName: "Max", Phone: "1234567", DateTime: "June 20th at 2pm"}

	tests := []struct {
		name        string
		message     string
		wantOutcome string
		wantNext    BookingStep
	}{
		{name: "confirm", message: "confirm", wantOutcome: outcomeConfirmed},
		{name: "confirm uppercase", message: "CONFIRM", wantOutcome: outcomeConfirmed},
		{name: "confirm in sentence", message: "yes please confirm it", wantOutcome: outcomeConfirmed},
		{name: "cancel", message: "cancel", wantOutcome: outcomeCancelled},
		{name: "anything else re-prompts", message: "hmm let me think", wantOutcome: outcomeContinue, wantNext: StepConfirm},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := advanceBooking(StepConfirm, tt.message, data, models.SessionContext{})
			require.Equal(t, tt.wantOutcome, res.Outcome)
			require.Equal(t, tt.wantNext, res.Next)
		})
	}
}

// A full walk through the workflow must visit every step in order with no
// skips.
func TestAdvanceBookingStepOrder(t *testing.T) {
	sessionCtx := models.SessionContext{}
	data := models.BookingData{}

	step := BookingStep("")
	inputs := map[BookingStep]string{
		"":            "I want to book an appointment",
		StepOwnerName: "Jane Doe",
		StepPetName:   "Max, labrador",
		StepPhone:     "+15551234567",
		StepDateTime:  "June 20th at 2pm",
	}
	wantOrder := []BookingStep{StepOwnerName, StepPetName, StepPhone, StepDateTime, StepConfirm}

	var visited []BookingStep
	for i := 0; i < len(wantOrder); i++ {
		res := advanceBooking(step, inputs[step], data, sessionCtx)
		require.Equal(t, outcomeContinue, res.Outcome)
		if res.Patch != nil {
			data.Apply(*res.Patch)
		}
		step = res.Next
		visited = append(visited, step)
	}
	require.Equal(t, wantOrder, visited)

	res := advanceBooking(step, "confirm", data, sessionCtx)
	require.Equal(t, outcomeConfirmed, res.Outcome)
	require.Equal(t, models.BookingData{
		OwnerName: "Jane Doe",
		PetName:   "Max, labrador",
		Phone:     "+15551234567",
		DateTime:  "June 20th at 2pm",
	}, data)
}

// A validation failure keeps previously collected data intact.
func TestAdvanceBookingFailureKeepsData(t *testing.T) {
	data := models.BookingData{OwnerName: "Jane Doe", PetName: "Max"}
	res := advanceBooking(StepPhone, "nope", data, models.SessionContext{})
	require.Equal(t, StepPhone, res.Next)
	require.Nil(t, res.Patch)
	require.Equal(t, "Jane Doe", data.OwnerName)
	require.Equal(t, "Max", data.PetName)
}
