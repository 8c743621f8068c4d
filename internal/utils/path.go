package utils

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// PathResolver finds the names file when it is given as a relative path.
type PathResolver struct {
	executableDir string
	workDir       string
	configDir     string
}

// NewPathResolver creates a resolver rooted at the running executable.
func NewPathResolver(configDir string) (*PathResolver, error) {
	execDir, err := ExecutableDir()
	if err != nil {
		return nil, err
	}

	cwd, err := os.Getwd()
	if err != nil {
		log.Warnf("Could not determine working directory: %v", err)
		cwd = "."
	}

	pr := &PathResolver{
		executableDir: execDir,
		workDir:       cwd,
		configDir:     configDir,
	}
	log.Debugf("PathResolver initialized: execDir=%s, cwd=%s, configDir=%s",
		pr.executableDir, pr.workDir, pr.configDir)
	return pr, nil
}

// Candidates lists where a names file given as path is looked for, in order.
func (pr *PathResolver) Candidates(path string) []string {
	if filepath.IsAbs(path) {
		return []string{path}
	}
	candidates := []string{filepath.Join(pr.workDir, path)}
	if pr.executableDir != "" {
		candidates = append(candidates, filepath.Join(pr.executableDir, path))
	}
	if pr.configDir != "" {
		candidates = append(candidates, filepath.Join(pr.configDir, path))
	}
	return candidates
}

// ResolveNamesFile returns the first candidate that exists. When none does it
// returns the working-directory path so the open error names a sensible file.
func (pr *PathResolver) ResolveNamesFile(path string) string {
	candidates := pr.Candidates(path)
	for _, candidate := range candidates {
		if IsFile(candidate) {
			log.Debugf("Found names file: %s", candidate)
			return candidate
		}
		log.Debugf("Names file candidate not found: %s", candidate)
	}
	return candidates[0]
}
