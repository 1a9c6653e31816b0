package services

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
)

// ErrFileTooLarge is returned for uploads above the configured size.
var ErrFileTooLarge = errors.New("file too large")

type UploadService interface {
	ReadResume(file *multipart.FileHeader) ([]byte, error)
	MaxFileSize() int64
}

type uploadService struct {
	extensions  []string
	maxFileSize int64
}

func NewUploadService(extensions []string, maxFileSize int64) UploadService {
	return &uploadService{
		extensions:  extensions,
		maxFileSize: maxFileSize,
	}
}

func (s *uploadService) MaxFileSize() int64 {
	return s.maxFileSize
}

// ReadResume validates the uploaded resume and reads it into memory. Nothing
// is written to disk.
func (s *uploadService) ReadResume(file *multipart.FileHeader) ([]byte, error) {
	if file == nil {
		return nil, NewValidationError("No resume file provided")
	}
	if file.Filename == "" {
		return nil, NewValidationError("No file selected")
	}

	// Validate file extension
	if !HasAllowedExtension(file.Filename, s.extensions) {
		return nil, NewValidationError("Only PDF files are allowed")
	}

	if file.Size > s.maxFileSize {
		return nil, ErrFileTooLarge
	}

	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, s.maxFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read uploaded file: %w", err)
	}
	if int64(len(data)) > s.maxFileSize {
		return nil, ErrFileTooLarge
	}

	return data, nil
}

// HasAllowedExtension reports whether filename ends in one of extensions,
// ignoring case.
func HasAllowedExtension(filename string, extensions []string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		return false
	}

	for _, allowed := range extensions {
		if ext == strings.ToLower(allowed) {
			return true
		}
	}
	return false
}
