package util

import "errors"

var (
	ErrDuplicateSubmission = errors.New("a response with this identification already exists")
	ErrResponseNotFound    = errors.New("response not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrUserWithoutPhone    = errors.New("user has no phone number")
	ErrTwilioNotConfigured = errors.New("twilio client not configured")
	ErrAnalysisUnavailable = errors.New("AI analysis not configured")
)
