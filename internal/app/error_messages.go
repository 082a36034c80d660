// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// expense-keeper server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgAuthenticationRequired is returned when a protected endpoint is
	// called without a User-ID header.
	MsgAuthenticationRequired = "authentication required"

	// MsgInvalidAuthCredential is returned when the User-ID header is
	// present but is not a positive integer.
	MsgInvalidAuthCredential = "invalid authentication credential"

	// MsgInvalidUsernamePassword is returned for every failed login,
	// regardless of whether the username was unknown or the password wrong.
	MsgInvalidUsernamePassword = "invalid username or password"

	// MsgUsernameAlreadyExists is returned when a registration attempt is
	// rejected because the requested username is already in use.
	MsgUsernameAlreadyExists = "username already registered"

	// MsgPasswordTooShort is returned when a registration password fails
	// the minimum-length policy.
	MsgPasswordTooShort = "password is too short"

	// MsgUsernameTooShort is returned when a registration username has
	// fewer than three characters.
	MsgUsernameTooShort = "username is too short"

	// MsgInvalidDate is returned when a date path segment or body field
	// does not parse as YYYY-MM-DD.
	MsgInvalidDate = "invalid date"

	// MsgInvalidDateRange is returned when a range query's start date lies
	// after its end date.
	MsgInvalidDateRange = "invalid date range"

	// MsgNoUserIDProvided is returned when a handler requires a user ID but
	// none is present in the request context.
	MsgNoUserIDProvided = "no user ID provided"

	// MsgRegistrationFailed is returned when the registration handler
	// encounters an unexpected error that prevents account creation.
	MsgRegistrationFailed = "registration failed"

	// MsgLoginFailed is returned when the login handler encounters an
	// unexpected error that prevents authentication.
	MsgLoginFailed = "login failed"
)
