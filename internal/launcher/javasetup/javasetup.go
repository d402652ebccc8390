// Package javasetup verifies that a suitable Java runtime is available
// before the game can be launched, optionally installing one when it is not.
package javasetup

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/permadeath/launcher/internal/logging"
)

// Installer provisions a Java runtime of the given major version.
type Installer interface {
	Install(ctx context.Context, version string) error
}

// Setup checks for and, when configured, installs the Java runtime the
// game requires.
type Setup struct {
	log       logging.Logger
	installer Installer

	// runVersion invokes "java -version" and returns its combined output.
	// Replaceable in tests.
	runVersion func(ctx context.Context) (string, error)
}

func New(log logging.Logger, installer Installer) *Setup {
	return &Setup{
		log:        log,
		installer:  installer,
		runVersion: javaVersionOutput,
	}
}

// javaVersionOutput runs the java binary from PATH. The JVM prints version
// information to stderr, so combined output is required.
func javaVersionOutput(ctx context.Context) (string, error) {
	out, err := exec.CommandContext(ctx, "java", "-version").CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("error running java: %w", err)
	}
	return string(out), nil
}

// Check reports whether a Java runtime of the given major version is
// available on PATH.
func (s *Setup) Check(ctx context.Context, version string) bool {
	out, err := s.runVersion(ctx)
	if err != nil {
		s.log.Debug(ctx, "java not found", "error", err)
		return false
	}

	// Version output looks like: openjdk version "21.0.2" 2024-01-16
	if strings.Contains(out, `version "`+version+`.`) || strings.Contains(out, `version "`+version+`"`) {
		return true
	}

	s.log.Debug(ctx, "java version mismatch", "required", version, "output", firstLine(out))
	return false
}

// EnsureInstalled verifies the required Java runtime, installing it when
// absent and an installer is configured. It returns an error when the
// runtime is still unavailable afterwards.
func (s *Setup) EnsureInstalled(ctx context.Context, version string) error {
	if s.Check(ctx, version) {
		return nil
	}

	if s.installer == nil {
		return fmt.Errorf("java %s is required but not installed", version)
	}

	s.log.Info(ctx, "installing java runtime", "version", version)

	if err := s.installer.Install(ctx, version); err != nil {
		return fmt.Errorf("error installing java %s: %w", version, err)
	}

	if !s.Check(ctx, version) {
		return fmt.Errorf("java %s still unavailable after install", version)
	}

	return nil
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
