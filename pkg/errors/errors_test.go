package errors

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidArgument, "not a directory: %s", "/tmp/x")

	if err.Code != ErrCodeInvalidArgument {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidArgument)
	}

	if err.Message != "not a directory: /tmp/x" {
		t.Errorf("Message = %v, want %v", err.Message, "not a directory: /tmp/x")
	}

	expected := "INVALID_ARGUMENT: not a directory: /tmp/x"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("zip: not a valid zip file")
	err := Wrap(ErrCodeArchiveOpen, cause, "open broken.jar")

	if err.Code != ErrCodeArchiveOpen {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeArchiveOpen)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	if unwrapped := errors.Unwrap(err); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}

	expected := "ARCHIVE_OPEN_FAILURE: open broken.jar: zip: not a valid zip file"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeXMLParse, "test"),
			code:     ErrCodeXMLParse,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeXMLParse, "test"),
			code:     ErrCodeArchiveOpen,
			expected: false,
		},
		{
			name:     "wrapped error",
			err:      Wrap(ErrCodeFileRead, New(ErrCodeXMLParse, "inner"), "outer"),
			code:     ErrCodeFileRead,
			expected: true,
		},
		{
			name:     "non-Error type",
			err:      errors.New("plain error"),
			code:     ErrCodeXMLParse,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodeXMLParse,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Code
	}{
		{"Error type", New(ErrCodeMissingCoord, "test"), ErrCodeMissingCoord},
		{"plain error", errors.New("plain"), ""},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.expected {
				t.Errorf("GetCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"Error type", New(ErrCodeInvalidArgument, "friendly message"), "friendly message"},
		{"wrapped", Wrap(ErrCodeFileRead, errors.New("denied"), "open a.pom"), "open a.pom: denied"},
		{"plain error", errors.New("plain error"), "plain error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.expected {
				t.Errorf("UserMessage() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestCodeFatal(t *testing.T) {
	fatal := []Code{ErrCodeInvalidArgument, ErrCodeInvalidConfig, ErrCodeOutputWrite}
	for _, c := range fatal {
		if !c.Fatal() {
			t.Errorf("%s.Fatal() = false, want true", c)
		}
	}

	perFile := []Code{
		ErrCodeXMLParse, ErrCodeFileRead, ErrCodeDirectoryRead,
		ErrCodeArchiveOpen, ErrCodeArchiveRead, ErrCodeMissingCoord,
	}
	for _, c := range perFile {
		if c.Fatal() {
			t.Errorf("%s.Fatal() = true, want false", c)
		}
	}
}
