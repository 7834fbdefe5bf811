package elloapi

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrMalformedContinuation is the cause of every error reporting a continuation that cannot be merged
	ErrMalformedContinuation = errors.New("malformed continuation")
	// ErrMissingMapping is the cause of the panic raised when a variant has no registry entry
	ErrMissingMapping = errors.New("missing mapping")
	// ErrNoBaseURL is returned when a live request is made with no base URL configured
	ErrNoBaseURL = errors.New("no base url")
	// ErrNoDeserializer is returned by Provider.Fetch when no deserializer is supplied
	ErrNoDeserializer = errors.New("no deserializer")
)

type ErrorKind int

const (
	ErrorContinuation ErrorKind = iota
	ErrorStatus
)

// Error represents the basic error for errors produced by requests & continuations
type Error interface {
	error
	Type() ErrorKind
	Cause() error
	Unwrap() error
}

// ContinuationError reports a continuation (cursor) whose query items cannot be merged
//
// the pagination sequence it belongs to should be treated as terminal
type ContinuationError interface {
	Error
	Key() string
	Values() []string
}

// StatusError reports a non-2xx response
type StatusError interface {
	Error
	Status() int
	Body() []byte
	Endpoint() Endpoint
}

type continuationError struct {
	msg    string
	key    string
	values []string
}

var _ ContinuationError = (*continuationError)(nil)

func newContinuationError(key string, msg string, values ...string) error {
	return &continuationError{
		msg:    msg,
		key:    key,
		values: values,
	}
}

func (e *continuationError) Error() string {
	var b strings.Builder
	b.WriteString(ErrMalformedContinuation.Error())
	b.WriteString(": ")
	b.WriteString(e.msg)
	if e.key != "" {
		b.WriteString(" (key ")
		b.WriteString(strconv.Quote(e.key))
		if len(e.values) > 0 {
			b.WriteString(", values ")
			b.WriteString(fmt.Sprintf("%q", e.values))
		}
		b.WriteString(")")
	}
	return b.String()
}

func (e *continuationError) Type() ErrorKind {
	return ErrorContinuation
}

func (e *continuationError) Cause() error {
	return ErrMalformedContinuation
}

func (e *continuationError) Unwrap() error {
	return ErrMalformedContinuation
}

func (e *continuationError) Key() string {
	return e.key
}

func (e *continuationError) Values() []string {
	return e.values
}

type statusError struct {
	status   int
	body     []byte
	endpoint Endpoint
}

var _ StatusError = (*statusError)(nil)

func newStatusError(status int, body []byte, e Endpoint) error {
	return &statusError{
		status:   status,
		body:     body,
		endpoint: e,
	}
}

func (e *statusError) Error() string {
	return fmt.Sprintf("%s: unexpected status %d", Describe(e.endpoint), e.status)
}

func (e *statusError) Type() ErrorKind {
	return ErrorStatus
}

func (e *statusError) Cause() error {
	return nil
}

func (e *statusError) Unwrap() error {
	return nil
}

func (e *statusError) Status() int {
	return e.status
}

// Body is the raw response body - to be decoded as ErrorType
func (e *statusError) Body() []byte {
	return e.body
}

func (e *statusError) Endpoint() Endpoint {
	return e.endpoint
}

// missingMappingError is the panic value when a variant cannot be resolved by the registry
type missingMappingError struct {
	tag    Tag
	detail string
}

func (e *missingMappingError) Error() string {
	return fmt.Sprintf("%s: %s (tag %d %s)", ErrMissingMapping.Error(), e.detail, int(e.tag), e.tag)
}

func (e *missingMappingError) Unwrap() error {
	return ErrMissingMapping
}
