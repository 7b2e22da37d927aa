package cliutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// ValidateOutputPath checks that outputPath would not overwrite the input.
// An empty inputPath or "-" names a stream and never conflicts.
func ValidateOutputPath(outputPath, inputPath string) error {
	absOutputPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("invalid output path: %w", err)
	}
	if inputPath == "" || inputPath == "-" {
		return nil
	}
	absInputPath, err := filepath.Abs(inputPath)
	if err != nil {
		return fmt.Errorf("invalid input path %s: %w", inputPath, err)
	}
	if absOutputPath == absInputPath {
		return fmt.Errorf("output file %s would overwrite input file %s", outputPath, inputPath)
	}
	return nil
}

// RejectSymlinkOutput checks if the output path is a symlink and returns an error if so.
// This prevents symlink attacks where a symlink could redirect output to an unintended location.
func RejectSymlinkOutput(cleanedPath string) error {
	info, err := os.Lstat(cleanedPath)
	if os.IsNotExist(err) {
		// File doesn't exist yet, safe to write.
		return nil
	}
	if err != nil {
		return fmt.Errorf("checking output path: %w", err)
	}
	if info.Mode()&os.ModeSymlink != 0 {
		return fmt.Errorf("refusing to write to symlink: %s", cleanedPath)
	}
	return nil
}

// CheckOutputPath cleans outputPath and applies both checks above. It
// returns the cleaned path to write to.
func CheckOutputPath(outputPath, inputPath string) (string, error) {
	cleaned := filepath.Clean(outputPath)
	if err := ValidateOutputPath(cleaned, inputPath); err != nil {
		return "", err
	}
	if err := RejectSymlinkOutput(cleaned); err != nil {
		return "", err
	}
	return cleaned, nil
}
