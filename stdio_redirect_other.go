//go:build !unix

package main

import "os"

// Runtime panics still go to the original stderr here; only Go-level
// writes through os.Stdout/os.Stderr are captured.
func redirectStdIO(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	os.Stdout = f
	os.Stderr = f
	return nil
}
