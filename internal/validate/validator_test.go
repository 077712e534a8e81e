package validate_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodexForgeBR/henvdall/internal/envfile"
	"github.com/CodexForgeBR/henvdall/internal/validate"
)

func TestIntValidator(t *testing.T) {
	tests := []struct {
		value string
		valid bool
	}{
		{"42", true},
		{"-10", true},
		{"0", true},
		{"007", true},
		{"4.2", false},
		{"", false},
		{"abc", false},
		{"ten", false},
		{" 42", false},
		{"42 ", false},
		{"+5", false},
		{"-", false},
		{"1e3", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			err := validate.Int{}.Validate(tt.value)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestURLValidator(t *testing.T) {
	tests := []struct {
		value string
		valid bool
	}{
		{"https://x.com", true},
		{"http://localhost:8080", true},
		{"https://api.example.com/v1/users", true},
		{"HTTPS://EXAMPLE.COM", true},
		{"ftp://x.com", false},
		{"not a url", false},
		{"example.com", false},
		{"https://", false},
		{"https:///path-only", false},
		{"https://x.com/a b", false},
		{"", false},
		{"postgresql://localhost/mydb", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			err := validate.URL{}.Validate(tt.value)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidationErrorDetails(t *testing.T) {
	err := validate.URL{}.Validate("abc")
	require.Error(t, err)

	var verr *validate.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, envfile.URLAnnotation, verr.Annotation)
	assert.Equal(t, "abc", verr.Value)
	assert.Contains(t, err.Error(), `"abc" is not a valid url`)
}

func TestFor(t *testing.T) {
	assert.IsType(t, validate.Int{}, validate.For(envfile.IntAnnotation))
	assert.IsType(t, validate.URL{}, validate.For(envfile.URLAnnotation))
	assert.IsType(t, validate.Any{}, validate.For(envfile.NoAnnotation))
	assert.Panics(t, func() { validate.For(envfile.Annotation(99)) })
}

func TestValue(t *testing.T) {
	tests := []struct {
		name       string
		annotation envfile.Annotation
		value      string
		valid      bool
	}{
		{"int ok", envfile.IntAnnotation, "42", true},
		{"int bad", envfile.IntAnnotation, "4.2", false},
		{"url ok", envfile.URLAnnotation, "https://x.com", true},
		{"url bad", envfile.URLAnnotation, "ftp://x.com", false},
		{"unannotated anything", envfile.NoAnnotation, "anything goes", true},
		{"unannotated empty", envfile.NoAnnotation, "", false},
		{"int empty", envfile.IntAnnotation, "", false},
		{"url empty", envfile.URLAnnotation, "", false},
		{"unannotated whitespace", envfile.NoAnnotation, "   ", false},
		{"unannotated tab", envfile.NoAnnotation, "\t", false},
		{"unannotated inner spaces", envfile.NoAnnotation, " a b ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate.Value(tt.annotation, tt.value)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValueEmptyIsErrEmpty(t *testing.T) {
	for _, ann := range []envfile.Annotation{envfile.NoAnnotation, envfile.IntAnnotation, envfile.URLAnnotation} {
		assert.ErrorIs(t, validate.Value(ann, ""), validate.ErrEmpty)
		assert.ErrorIs(t, validate.Value(ann, "  \t "), validate.ErrEmpty)
	}
}
