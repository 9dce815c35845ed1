// File: filex.go
// Title: Core File Utilities
// Description: Implements the file helpers used by the letter tools: source
//              reading with a size limit, size formatting and atomic
//              rewriting of formatted files.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive file utilities
// - 2026-10-18 v0.2.0: Reduced to source file handling, atomic writes

package filex

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	mdwerror "github.com/msto63/letter/foundation/core/error"
)

// ===============================
// Size Formatting
// ===============================

// FormatSize formats a size in bytes to a human-readable string
func FormatSize(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}

	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}

	units := []string{"KB", "MB", "GB", "TB", "PB"}
	return fmt.Sprintf("%.1f %s", float64(bytes)/float64(div), units[exp])
}

// ===============================
// File Reading Operations
// ===============================

// ReadString reads a regular file as text. A positive maxBytes rejects
// larger files before they are read completely.
func ReadString(path string, maxBytes int64) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		code := mdwerror.CodeInternal
		if os.IsNotExist(err) {
			code = mdwerror.CodeNotFound
		}
		return "", mdwerror.Wrap(err, fmt.Sprintf("failed to read file %s", path)).
			WithCode(code).
			WithOperation("filex.ReadString").
			WithDetail("path", path)
	}
	if !info.Mode().IsRegular() {
		return "", mdwerror.New(fmt.Sprintf("%s is not a regular file", path)).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("filex.ReadString").
			WithDetail("path", path)
	}

	file, err := os.Open(path)
	if err != nil {
		return "", mdwerror.Wrap(err, fmt.Sprintf("failed to open file %s", path)).
			WithCode(mdwerror.CodeInternal).
			WithOperation("filex.ReadString").
			WithDetail("path", path)
	}
	defer file.Close()

	var reader io.Reader = file
	if maxBytes > 0 {
		// one byte more than allowed tells a too large file apart
		reader = io.LimitReader(file, maxBytes+1)
	}

	content, err := io.ReadAll(reader)
	if err != nil {
		return "", mdwerror.Wrap(err, fmt.Sprintf("failed to read file %s", path)).
			WithCode(mdwerror.CodeInternal).
			WithOperation("filex.ReadString").
			WithDetail("path", path)
	}
	if maxBytes > 0 && int64(len(content)) > maxBytes {
		return "", mdwerror.New(fmt.Sprintf("%s exceeds maximum size of %s", path, FormatSize(maxBytes))).
			WithCode(mdwerror.CodeInputTooLong).
			WithOperation("filex.ReadString").
			WithDetail("path", path).
			WithDetail("limit", maxBytes)
	}

	return string(content), nil
}

// ===============================
// File Writing Operations
// ===============================

// WriteStringAtomic replaces the content of path. The data goes to a
// temporary file in the same directory which is then renamed over path,
// so readers see either the old or the new content. An existing file
// keeps its permissions.
func WriteStringAtomic(path, content string) error {
	perm := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temporary file for %s: %w", path, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		return fmt.Errorf("failed to set permissions on %s: %w", path, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to replace file %s: %w", path, err)
	}
	return nil
}
