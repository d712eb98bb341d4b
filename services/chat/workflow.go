package chat

import (
	"fmt"
	"regexp"
	"strings"

	"vetchat/models"
)

// BookingStep enumerates the booking workflow states. The empty step means
// the workflow has not produced its opening prompt yet.
type BookingStep string

const (
	StepOwnerName BookingStep = "owner_name"
	StepPetName   BookingStep = "pet_name"
	StepPhone     BookingStep = "phone"
	StepDateTime  BookingStep = "datetime"
	StepConfirm   BookingStep = "confirm"
)

// Workflow outcomes.
const (
	outcomeContinue  = "continue"
	outcomeConfirmed = "confirmed"
	outcomeCancelled = "cancelled"
)

// phonePattern accepts 7-15 characters of digits, spaces, dashes and
// parentheses with an optional leading plus, matched against the whole
// trimmed input.
var phonePattern = regexp.MustCompile(`^[+]?[\d\s\-()]{7,15}$`)

func validatePhone(phone string) bool {
	return phonePattern.MatchString(strings.TrimSpace(phone))
}

// validateDateTime only checks non-triviality; free-form date expressions
// like "Tomorrow afternoon" must pass.
func validateDateTime(dateTime string) bool {
	return len(strings.TrimSpace(dateTime)) >= 5
}

// bookingResult is the outcome of one workflow transition.
type bookingResult struct {
	Reply   string
	Next    BookingStep
	Patch   *models.BookingData
	Outcome string
}

type transitionFunc func(message string, data models.BookingData, sessionCtx models.SessionContext) bookingResult

// transitions maps every step to its handler, so an unhandled step is a
// lookup miss rather than a silent fallthrough.
var transitions = map[BookingStep]transitionFunc{
	StepOwnerName: advanceOwnerName,
	StepPetName:   advancePetName,
	StepPhone:     advancePhone,
	StepDateTime:  advanceDateTime,
	StepConfirm:   advanceConfirm,
}

// advanceBooking is the pure transition function of the booking workflow:
// current step + message + accumulated data in, reply + next step + data
// patch + outcome out. It never mutates its inputs.
func advanceBooking(step BookingStep, message string, data models.BookingData, sessionCtx models.SessionContext) bookingResult {
	fn, ok := transitions[step]
	if !ok {
		// Start of the workflow (or an unknown persisted step): emit the
		// opening prompt. This transition never rejects.
		return bookingResult{
			Reply:   "I'd be happy to help you book an appointment! 🐾\n\nLet's get that scheduled. Could you please provide your **full name**?",
			Next:    StepOwnerName,
			Outcome: outcomeContinue,
		}
	}
	return fn(message, data, sessionCtx)
}

func advanceOwnerName(message string, _ models.BookingData, _ models.SessionContext) bookingResult {
	name := strings.TrimSpace(message)
	if len(name) < 2 {
		return bookingResult{
			Reply:   "Please enter your full name to continue.",
			Next:    StepOwnerName,
			Outcome: outcomeContinue,
		}
	}
	return bookingResult{
		Reply:   fmt.Sprintf("Great, %s! 😊\n\nWhat is your **pet's name** and **species** (e.g., \"Max, golden retriever\")?", name),
		Next:    StepPetName,
		Patch:   &models.BookingData{OwnerName: name},
		Outcome: outcomeContinue,
	}
}

func advancePetName(message string, _ models.BookingData, _ models.SessionContext) bookingResult {
	pet := strings.TrimSpace(message)
	if len(pet) < 2 {
		return bookingResult{
			Reply:   "Please tell me your pet's name and type.",
			Next:    StepPetName,
			Outcome: outcomeContinue,
		}
	}
	return bookingResult{
		Reply:   fmt.Sprintf("%s sounds adorable! 🐶🐱\n\nWhat is your **phone number** so we can confirm the appointment?", pet),
		Next:    StepPhone,
		Patch:   &models.BookingData{PetName: pet},
		Outcome: outcomeContinue,
	}
}

func advancePhone(message string, _ models.BookingData, _ models.SessionContext) bookingResult {
	if !validatePhone(message) {
		return bookingResult{
			Reply:   "That doesn't look like a valid phone number. Please enter a valid phone number (e.g., +1 555-123-4567).",
			Next:    StepPhone,
			Outcome: outcomeContinue,
		}
	}
	return bookingResult{
		Reply:   "Perfect! 📞\n\nWhen would you like the appointment? Please provide your **preferred date and time** (e.g., \"June 20th at 2 PM\" or \"Tomorrow afternoon\").",
		Next:    StepDateTime,
		Patch:   &models.BookingData{Phone: strings.TrimSpace(message)},
		Outcome: outcomeContinue,
	}
}

func advanceDateTime(message string, data models.BookingData, _ models.SessionContext) bookingResult {
	if !validateDateTime(message) {
		return bookingResult{
			Reply:   "Please provide a valid date and time for your appointment.",
			Next:    StepDateTime,
			Outcome: outcomeContinue,
		}
	}
	dateTime := strings.TrimSpace(message)
	return bookingResult{
		Reply: fmt.Sprintf(
			"Almost done! Please **confirm** the following details:\n\n👤 **Owner:** %s\n🐾 **Pet:** %s\n📞 **Phone:** %s\n📅 **Date/Time:** %s\n\nType **\"confirm\"** to book this appointment or **\"cancel\"** to start over.",
			data.OwnerName, data.PetName, data.Phone, dateTime,
		),
		Next:    StepConfirm,
		Patch:   &models.BookingData{DateTime: dateTime},
		Outcome: outcomeContinue,
	}
}

func advanceConfirm(message string, _ models.BookingData, _ models.SessionContext) bookingResult {
	lower := strings.ToLower(message)
	switch {
	case strings.Contains(lower, "confirm"):
		// The orchestrator formats the confirmation summary once the
		// appointment record is committed.
		return bookingResult{Outcome: outcomeConfirmed}
	case strings.Contains(lower, "cancel"):
		return bookingResult{
			Reply:   "No problem! Your booking has been cancelled. Is there anything else I can help you with?",
			Outcome: outcomeCancelled,
		}
	default:
		return bookingResult{
			Reply:   "Please type **\"confirm\"** to complete your booking or **\"cancel\"** to start over.",
			Next:    StepConfirm,
			Outcome: outcomeContinue,
		}
	}
}
