package analyzer

import (
	"strings"

	"github.com/blackwell-systems/hiresignal/internal/profile"
)

// StructureAnalysis captures the engineering-maturity signals visible in a
// repository's file tree.
type StructureAnalysis struct {
	RepoName string `json:"repo_name"`

	// Score is the sum of the points awarded for each detected signal (0-100).
	Score int `json:"score"`

	HasSrcDir         bool `json:"has_src_dir"`
	HasTests          bool `json:"has_tests"`
	HasPackageJSON    bool `json:"has_package_json"`
	HasPythonManifest bool `json:"has_python_manifest"`
	HasEnvExample     bool `json:"has_env_example"`
	HasDocker         bool `json:"has_docker"`
	HasCIWorkflows    bool `json:"has_ci_workflows"`
	HasGitignore      bool `json:"has_gitignore"`
	HasContributing   bool `json:"has_contributing"`
	HasChangelog      bool `json:"has_changelog"`
	HasLinterConfig   bool `json:"has_linter_config"`

	// DirectoryCount is the number of distinct top-level directories.
	DirectoryCount int `json:"directory_count"`

	// IsModular is true when the tree has three or more top-level directories.
	IsModular bool `json:"is_modular"`

	// Missing lists absent maturity signals, in fixed order.
	Missing []string `json:"missing"`
}

// AnalyzeStructure inspects a file listing. Paths are compared lower-cased.
func AnalyzeStructure(repoName string, files []profile.TreeFile) StructureAnalysis {
	s := StructureAnalysis{RepoName: repoName}
	dirs := make(map[string]bool)

	for _, f := range files {
		p := strings.ToLower(f.Path)

		if hasAnyPrefix(p, "src/", "lib/", "app/") {
			s.HasSrcDir = true
		}
		if hasAnyPrefix(p, "test/", "tests/", "__tests__/", "spec/") ||
			strings.Contains(p, ".test.") || strings.Contains(p, ".spec.") {
			s.HasTests = true
		}
		switch p {
		case "package.json":
			s.HasPackageJSON = true
		case "requirements.txt", "pyproject.toml", "setup.py", "pipfile":
			s.HasPythonManifest = true
		case ".env.example", ".env.sample", ".env.template":
			s.HasEnvExample = true
		case "dockerfile":
			s.HasDocker = true
		case ".gitignore":
			s.HasGitignore = true
		case "contributing.md", "contributing":
			s.HasContributing = true
		case "changelog.md", "changelog", "history.md":
			s.HasChangelog = true
		case ".editorconfig", ".prettierrc":
			s.HasLinterConfig = true
		}
		if strings.HasPrefix(p, "docker-compose") {
			s.HasDocker = true
		}
		if strings.HasPrefix(p, ".github/workflows/") {
			s.HasCIWorkflows = true
		}
		if strings.Contains(p, "eslint") {
			s.HasLinterConfig = true
		}
		if i := strings.Index(p, "/"); i > 0 {
			dirs[p[:i]] = true
		}
	}

	s.DirectoryCount = len(dirs)
	s.IsModular = s.DirectoryCount >= 3
	s.Score = structurePoints(s)
	s.Missing = structureMissing(s)
	return s
}

// AnalyzeStructures analyzes every tree sample, preserving input order.
func AnalyzeStructures(samples []profile.TreeSample) []StructureAnalysis {
	out := make([]StructureAnalysis, 0, len(samples))
	for _, t := range samples {
		out = append(out, AnalyzeStructure(t.RepoName, t.Files))
	}
	return out
}

// MeanStructureScore returns the average structure score, or 0 with no samples.
func MeanStructureScore(structures []StructureAnalysis) float64 {
	if len(structures) == 0 {
		return 0
	}
	total := 0
	for _, s := range structures {
		total += s.Score
	}
	return float64(total) / float64(len(structures))
}

func structurePoints(s StructureAnalysis) int {
	score := 0
	if s.HasSrcDir {
		score += 15
	}
	if s.HasTests {
		score += 15
	}
	if s.HasPackageJSON || s.HasPythonManifest {
		score += 10
	}
	if s.HasEnvExample {
		score += 10
	}
	if s.HasDocker {
		score += 10
	}
	if s.HasCIWorkflows {
		score += 15
	}
	if s.HasGitignore {
		score += 5
	}
	if s.HasContributing {
		score += 5
	}
	if s.HasLinterConfig {
		score += 5
	}
	if s.IsModular {
		score += 10
	}
	return min(100, score)
}

func structureMissing(s StructureAnalysis) []string {
	missing := []string{}
	if !s.HasTests {
		missing = append(missing, "No tests directory")
	}
	if !s.HasCIWorkflows {
		missing = append(missing, "No CI configuration")
	}
	if !s.HasEnvExample {
		missing = append(missing, "No environment config sample")
	}
	if !s.HasDocker {
		missing = append(missing, "No Docker setup")
	}
	if !s.HasSrcDir {
		missing = append(missing, "No organized source directory")
	}
	if !s.HasLinterConfig {
		missing = append(missing, "No linter/formatter config")
	}
	if !s.HasContributing {
		missing = append(missing, "No contributing guide")
	}
	return missing
}

func hasAnyPrefix(s string, prefixes ...string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
