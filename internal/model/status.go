package model

import "fmt"

// Status is the outcome of processing one unit of work. Code 0 with an
// empty message means success; any failure carries code 1 and a message.
type Status struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Success returns the ok Status.
func Success() Status {
	return Status{}
}

// Error returns a failing Status with the given message.
func Error(message string) Status {
	return Status{Code: 1, Message: message}
}

// Errorf returns a failing Status with a formatted message.
func Errorf(format string, args ...interface{}) Status {
	return Error(fmt.Sprintf(format, args...))
}

// Wrap prefixes context onto a failing Status, keeping the inner code.
func Wrap(inner Status, message string) Status {
	return Status{Code: inner.Code, Message: message + ": " + inner.Message}
}

// Ok reports whether the Status is a success.
func (s Status) Ok() bool {
	return s.Code == 0
}
