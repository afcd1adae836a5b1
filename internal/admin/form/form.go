// Package form reads admin form submissions: presence checks in a fixed
// order, delimited lists, and the normalization rules for stored fields.
package form

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Error is a validation failure for one form field.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string { return e.Message }

// Values is the read side of a posted form. *gin.Context satisfies it.
type Values interface {
	GetPostForm(key string) (string, bool)
}

// URLValues adapts url.Values to Values.
type URLValues url.Values

func (v URLValues) GetPostForm(key string) (string, bool) {
	vs, ok := v[key]
	if !ok || len(vs) == 0 {
		return "", false
	}
	return vs[0], true
}

// Reader checks fields in call order and keeps only the first violation.
// Once a check fails, later calls return zero values without checking.
type Reader struct {
	src Values
	err *Error
}

func NewReader(src Values) *Reader {
	return &Reader{src: src}
}

// Err returns the first violation, or nil.
func (r *Reader) Err() error {
	if r.err == nil {
		return nil
	}
	return r.err
}

// Fail records a violation unless one is already recorded.
func (r *Reader) Fail(field, message string) {
	if r.err == nil {
		r.err = &Error{Field: field, Message: message}
	}
}

// Required returns the trimmed value, failing with message when the field
// is missing or blank.
func (r *Reader) Required(field, message string) string {
	if r.err != nil {
		return ""
	}
	v, ok := r.src.GetPostForm(field)
	if !ok || strings.TrimSpace(v) == "" {
		r.Fail(field, message)
		return ""
	}
	return strings.TrimSpace(v)
}

// Present returns the raw value, failing when the field is missing. Empty
// strings are accepted.
func (r *Reader) Present(field string) string {
	if r.err != nil {
		return ""
	}
	v, ok := r.src.GetPostForm(field)
	if !ok {
		r.Fail(field, invalid(field))
		return ""
	}
	return v
}

// Optional returns the raw value and whether it was sent.
func (r *Reader) Optional(field string) (string, bool) {
	if r.err != nil {
		return "", false
	}
	return r.src.GetPostForm(field)
}

// ID reads a required positive integer id.
func (r *Reader) ID(field, missing, malformed string) int64 {
	raw := r.Required(field, missing)
	if r.err != nil {
		return 0
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		r.Fail(field, malformed)
		return 0
	}
	return id
}

// Date reads a required calendar date.
func (r *Reader) Date(field, message string) time.Time {
	raw := r.Required(field, message)
	if r.err != nil {
		return time.Time{}
	}
	t, err := ParseDate(raw)
	if err != nil {
		r.Fail(field, invalid(field))
		return time.Time{}
	}
	return t
}

// OptionalDate reads a date that may be missing or blank.
func (r *Reader) OptionalDate(field string) *time.Time {
	raw, ok := r.Optional(field)
	if !ok || strings.TrimSpace(raw) == "" {
		return nil
	}
	t, err := ParseDate(raw)
	if err != nil {
		r.Fail(field, invalid(field))
		return nil
	}
	return &t
}

// Order reads the achievement order hint, clamped into range.
func (r *Reader) Order(field string) int {
	raw := r.Present(field)
	if r.err != nil {
		return 0
	}
	n, err := ParseOrder(raw)
	if err != nil {
		r.Fail(field, invalid(field))
		return 0
	}
	return n
}

// List reads a present comma-separated field.
func (r *Reader) List(field string) []string {
	return SplitList(r.Present(field))
}

// Lines reads a present newline-separated field.
func (r *Reader) Lines(field string) []string {
	return SplitLines(r.Present(field))
}

// Check runs a membership check on an already parsed value.
func (r *Reader) Check(field string, err error) {
	if err != nil {
		r.Fail(field, fmt.Sprintf("%s: %v", invalid(field), err))
	}
}

// ParseDate accepts a form date (2006-01-02) or an RFC 3339 timestamp.
func ParseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse(time.DateOnly, raw); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, raw)
}

func invalid(field string) string {
	return "Invalid form data: " + field
}
