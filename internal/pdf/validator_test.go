package pdf

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_ValidateFile(t *testing.T) {
	validator := NewValidator(1024 * 1024) // 1MB limit

	tests := []struct {
		name        string
		req         PDFValidateFileRequest
		expectValid bool
	}{
		{
			name:        "empty path",
			req:         PDFValidateFileRequest{Path: ""},
			expectValid: false,
		},
		{
			name:        "non-existent file",
			req:         PDFValidateFileRequest{Path: "/non/existent/file.pdf"},
			expectValid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := validator.ValidateFile(tt.req)
			require.NoError(t, err) // validation failures go into the result, not the error

			require.NotNil(t, result)
			assert.Equal(t, tt.expectValid, result.Valid)
			assert.Equal(t, tt.req.Path, result.Path)
			if !tt.expectValid {
				assert.NotEmpty(t, result.Message)
			}
		})
	}
}

func TestValidator_ErrorKinds(t *testing.T) {
	tempDir := t.TempDir()

	emptyPath := filepath.Join(tempDir, "empty.pdf")
	require.NoError(t, os.WriteFile(emptyPath, nil, 0o644))

	notPDFPath := filepath.Join(tempDir, "fake.pdf")
	require.NoError(t, os.WriteFile(notPDFPath, []byte("this is not a pdf"), 0o644))

	largePath := filepath.Join(tempDir, "large.pdf")
	require.NoError(t, os.WriteFile(largePath, make([]byte, 2048), 0o644))

	validator := NewValidator(1024)

	tests := []struct {
		name     string
		path     string
		wantKind error
	}{
		{"missing file", filepath.Join(tempDir, "missing.pdf"), ErrInputNotFound},
		{"directory", tempDir, ErrInputNotFound},
		{"empty file", emptyPath, ErrInputFormat},
		{"unparseable content", notPDFPath, ErrInputFormat},
		{"over size limit", largePath, ErrInputFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.validatePDFFile(tt.path)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantKind), "expected %v kind, got: %v", tt.wantKind, err)
			assert.False(t, validator.IsValidPDF(tt.path))
		})
	}
}
