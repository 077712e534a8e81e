package exitcode_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/CodexForgeBR/henvdall/internal/exitcode"
)

func TestExitCodeValues(t *testing.T) {
	tests := []struct {
		name     string
		code     int
		expected int
	}{
		{"Success", exitcode.Success, 0},
		{"Error", exitcode.Error, 1},
		{"PlaceholdersFound", exitcode.PlaceholdersFound, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.code)
		})
	}
}

func TestExitCodeNames(t *testing.T) {
	tests := []struct {
		code         int
		expectedName string
	}{
		{exitcode.Success, "Success"},
		{exitcode.Error, "Error"},
		{exitcode.PlaceholdersFound, "PlaceholdersFound"},
		{2, "unknown"},
		{130, "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expectedName, func(t *testing.T) {
			assert.Equal(t, tt.expectedName, exitcode.Name(tt.code))
		})
	}
}

func TestExitError(t *testing.T) {
	bare := &exitcode.ExitError{Code: exitcode.PlaceholdersFound}
	assert.Equal(t, "PlaceholdersFound", bare.Error())
	assert.Nil(t, bare.Unwrap())

	cause := errors.New("disk full")
	wrapped := fmt.Errorf("sync: %w", &exitcode.ExitError{Code: exitcode.Error, Err: cause})
	assert.Equal(t, "sync: disk full", wrapped.Error())
	assert.ErrorIs(t, wrapped, cause)

	var exitErr *exitcode.ExitError
	assert.True(t, errors.As(wrapped, &exitErr))
	assert.Equal(t, exitcode.Error, exitErr.Code)
}
