package pdf

import "fmt"

// Service handles PDF highlight operations by orchestrating the validator
// and the collector.
type Service struct {
	maxFileSize int64
	validator   *Validator
	collector   *Collector
}

// NewService creates a new PDF service with all components
func NewService(maxFileSize int64) *Service {
	return &Service{
		maxFileSize: maxFileSize,
		validator:   NewValidator(maxFileSize),
		collector:   NewCollector(maxFileSize),
	}
}

// ExtractHighlights validates the input file and collects its highlighted
// passages grouped by page.
func (s *Service) ExtractHighlights(req HighlightExtractRequest) (*HighlightExtractResult, error) {
	if err := s.validator.validatePDFFile(req.Path); err != nil {
		return nil, err
	}
	return s.collector.ExtractHighlights(req)
}

// PDFValidateFile performs validation on a PDF file
func (s *Service) PDFValidateFile(req PDFValidateFileRequest) (*PDFValidateFileResult, error) {
	return s.validator.ValidateFile(req)
}

// IsValidPDF performs a quick validation check on a file
func (s *Service) IsValidPDF(filePath string) bool {
	return s.validator.IsValidPDF(filePath)
}

// GetMaxFileSize returns the maximum file size limit
func (s *Service) GetMaxFileSize() int64 {
	return s.maxFileSize
}

// ValidateConfiguration validates the service configuration
func (s *Service) ValidateConfiguration() error {
	if s.maxFileSize <= 0 {
		return fmt.Errorf("maxFileSize must be greater than 0")
	}

	if s.maxFileSize > 1024*1024*1024 { // 1GB limit
		return fmt.Errorf("maxFileSize cannot exceed 1GB")
	}

	return nil
}
