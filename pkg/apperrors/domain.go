package apperrors

import (
	"net/http"
)

// --- Registration ---

var ErrMissingFields = New(
	CodeMissingFields,
	"registration",
	"All fields are required and you must agree to terms.",
	http.StatusBadRequest,
)

var ErrInvalidEmail = New(
	CodeInvalidEmail,
	"validation",
	"Invalid email address.",
	http.StatusBadRequest,
)

var ErrPasswordMismatch = New(
	CodePasswordMismatch,
	"registration",
	"Passwords do not match.",
	http.StatusBadRequest,
)

var ErrWeakPassword = New(
	CodeWeakPassword,
	"registration",
	"Password must be at least 8 characters.",
	http.StatusBadRequest,
)

var ErrInvalidUserType = New(
	CodeInvalidUserType,
	"registration",
	"Invalid user type.",
	http.StatusBadRequest,
)

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"registration",
	"Email already registered.",
	http.StatusConflict,
)

var ErrMissingInfluencerFields = New(
	CodeMissingFields,
	"influencer",
	"All influencer fields are required.",
	http.StatusBadRequest,
)

var ErrMissingBrandFields = New(
	CodeMissingFields,
	"brand",
	"All brand fields are required.",
	http.StatusBadRequest,
)

var ErrInvalidFollowerCount = New(
	CodeInvalidFollowers,
	"influencer",
	"Invalid follower count.",
	http.StatusBadRequest,
)

var ErrFollowerCountNotPositive = New(
	CodeInvalidFollowers,
	"influencer_positive",
	"Follower count must be a positive number.",
	http.StatusBadRequest,
)

// --- Uploads ---

var ErrFileTooLarge = New(
	CodeLimitExceeded,
	"upload",
	"File size exceeds the allowed limit",
	http.StatusRequestEntityTooLarge,
)

// --- Login ---

var ErrLoginFieldsRequired = New(
	CodeMissingFields,
	"auth",
	"Email and password are required.",
	http.StatusBadRequest,
)

// ErrAccountNotFound и ErrIncorrectPassword различаются намеренно:
// так ведет себя сайт сейчас. Для закрытой конфигурации есть ErrInvalidCredentials.
var ErrAccountNotFound = New(
	CodeAccountNotFound,
	"auth",
	"No account found with that email.",
	http.StatusUnauthorized,
)

var ErrIncorrectPassword = New(
	CodeIncorrectPassword,
	"auth",
	"Incorrect password.",
	http.StatusUnauthorized,
)

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password.",
	http.StatusUnauthorized,
)

// --- Contact ---

var ErrContactFieldsRequired = New(
	CodeMissingFields,
	"contact",
	"All fields are required.",
	http.StatusBadRequest,
)

var ErrMessageTooShort = New(
	CodeValidationFailed,
	"contact",
	"Message must be at least 2 characters long.",
	http.StatusBadRequest,
)

var ErrMailNotConfigured = New(
	CodeMailNotConfigured,
	"mail",
	"Email configuration is missing.",
	http.StatusInternalServerError,
)

var ErrMailAuthFailed = New(
	CodeMailAuthFailed,
	"mail",
	"Authentication failed. Please check your email credentials.",
	http.StatusInternalServerError,
)

var ErrMailDelivery = New(
	CodeMailDelivery,
	"mail",
	"Failed to send message. Please try again later.",
	http.StatusInternalServerError,
)
