package pdf

import (
	"fmt"
	"os"

	"github.com/ledongthuc/pdf"
)

// Validator handles PDF file validation operations
type Validator struct {
	maxFileSize int64
}

// NewValidator creates a new PDF validator with the specified constraints
func NewValidator(maxFileSize int64) *Validator {
	return &Validator{
		maxFileSize: maxFileSize,
	}
}

// ValidateFile performs comprehensive validation on a PDF file
func (v *Validator) ValidateFile(req PDFValidateFileRequest) (*PDFValidateFileResult, error) {
	result := &PDFValidateFileResult{
		Path:  req.Path,
		Valid: false,
	}

	err := v.validatePDFFile(req.Path)
	if err != nil {
		result.Message = err.Error()
		return result, nil //nolint:nilerr // Return result with validation error, not a processing error
	}

	result.Valid = true
	return result, nil
}

// validatePDFFile performs detailed validation on a PDF file
func (v *Validator) validatePDFFile(filePath string) error {
	if filePath == "" {
		return fmt.Errorf("%w: path cannot be empty", ErrInputNotFound)
	}

	// Check if file exists and get basic info
	fileInfo, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		return fmt.Errorf("%w: %s", ErrInputNotFound, filePath)
	}
	if err != nil {
		return fmt.Errorf("%w: cannot access %s: %v", ErrInputNotFound, filePath, err)
	}

	// Check if it's a regular file (not a directory)
	if fileInfo.IsDir() {
		return fmt.Errorf("%w: path is a directory, not a file: %s", ErrInputNotFound, filePath)
	}

	// Check file size
	if fileInfo.Size() == 0 {
		return fmt.Errorf("%w: file is empty: %s", ErrInputFormat, filePath)
	}

	if fileInfo.Size() > v.maxFileSize {
		return fmt.Errorf("%w: file too large: %d bytes (max: %d bytes): %s",
			ErrInputFormat, fileInfo.Size(), v.maxFileSize, filePath)
	}

	// Try to open the PDF to validate it's a valid PDF file
	f, _, err := pdf.Open(filePath)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInputFormat, filePath, err)
	}
	defer f.Close()

	return nil
}

// IsValidPDF performs a quick check to see if a file is a valid PDF
func (v *Validator) IsValidPDF(filePath string) bool {
	return v.validatePDFFile(filePath) == nil
}
