package openssl

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pybundle/pyinstall/internal/executor"
	"github.com/pybundle/pyinstall/internal/logger"
)

// DefaultCandidates are conventional OpenSSL directories, in ranking
// order: RHEL/Fedora (current and old), Debian, Gentoo, local builds,
// and the macOS system location.
var DefaultCandidates = []string{
	"/usr/share/ssl",
	"/etc/pki/tls",
	"/usr/lib/ssl",
	"/etc/ssl",
	"/usr/local/ssl",
	"/System/Library/OpenSSL",
}

// Scoring weights and recommendation thresholds.
const (
	scoreDefault  = 1
	scoreCertPem  = 4
	scoreCertsDir = 2

	thresholdBoth     = 6
	thresholdCertFile = 4
	thresholdCertDir  = 2
)

// Recommendation is the ranker's advisory result.
type Recommendation struct {
	Found     bool     `json:"found"`
	Dir       string   `json:"dir,omitempty"`
	Score     int      `json:"score"`
	CertFile  bool     `json:"cert_file"` // recommend SSL_CERT_FILE
	CertDir   bool     `json:"cert_dir"`  // recommend SSL_CERT_DIR
	Ambiguous []string `json:"ambiguous,omitempty"`
}

// Ranker inspects candidate OpenSSL directories. The executor and the
// candidate list are injectable for tests.
type Ranker struct {
	Exec       executor.CommandExecutor
	Candidates []string
}

// NewRanker creates a Ranker over the default candidate list.
func NewRanker(exec executor.CommandExecutor) *Ranker {
	return &Ranker{
		Exec:       exec,
		Candidates: DefaultCandidates,
	}
}

// DefaultDir asks the system openssl tool for its compiled-in
// directory. The output of `openssl version -d` has the form
// `OPENSSLDIR: "/usr/lib/ssl"`; the first quoted field is the
// directory. Any failure means no system default, never an error.
func (r *Ranker) DefaultDir() (string, bool) {
	out, err := r.Exec.Execute("openssl", "version", "-d")
	if err != nil {
		logger.Debug("openssl version -d failed: %v", err)
		return "", false
	}
	parts := strings.Split(string(out), `"`)
	if len(parts) < 2 || parts[1] == "" {
		logger.Debug("could not parse openssl version -d output: %q", out)
		return "", false
	}
	return parts[1], true
}

// scored pairs a candidate directory with its rank.
type scored struct {
	dir   string
	score int
}

// rank scores every existing candidate directory, preserving candidate
// order: the system default first (when present), then the fixed list.
func (r *Ranker) rank(defaultDir string) []scored {
	candidates := r.Candidates
	if defaultDir != "" {
		candidates = append([]string{defaultDir}, candidates...)
	}

	var ranked []scored
	seen := make(map[string]bool)
	for _, dir := range candidates {
		if seen[dir] {
			continue
		}
		seen[dir] = true

		if !isDir(dir) {
			continue
		}

		score := 0
		if dir == defaultDir {
			score += scoreDefault
		}
		if isFile(filepath.Join(dir, "cert.pem")) {
			score += scoreCertPem
		}
		if isDir(filepath.Join(dir, "certs")) {
			score += scoreCertsDir
		}
		ranked = append(ranked, scored{dir: dir, score: score})
	}
	return ranked
}

// Recommend runs the full ranking pass and maps the best score to the
// environment-variable recommendations. With no existing candidate at
// all the result is Found=false with both recommendations off.
func (r *Ranker) Recommend() Recommendation {
	defaultDir, _ := r.DefaultDir()
	ranked := r.rank(defaultDir)
	if len(ranked) == 0 {
		return Recommendation{}
	}

	best := ranked[0]
	for _, c := range ranked[1:] {
		if c.score > best.score {
			best = c
		}
	}

	var ambiguous []string
	for _, c := range ranked {
		if c.score == best.score {
			ambiguous = append(ambiguous, c.dir)
		}
	}
	// First-encountered candidate with the max score is canonical
	rec := Recommendation{
		Found: true,
		Dir:   ambiguous[0],
		Score: best.score,
	}
	if len(ambiguous) > 1 {
		rec.Ambiguous = ambiguous
		logger.Warn("multiple working openssl directories found: %s", strings.Join(ambiguous, ", "))
	}

	switch {
	case best.score >= thresholdBoth:
		rec.CertFile = true
		rec.CertDir = true
	case best.score >= thresholdCertFile:
		rec.CertFile = true
	case best.score >= thresholdCertDir:
		rec.CertDir = true
	}
	return rec
}

// Guidance renders the recommendation as shell export lines for the
// final install report. A not-found recommendation yields a single
// informational line.
func Guidance(rec Recommendation) []string {
	if !rec.Found {
		return []string{"Openssl directory not found in an expected location."}
	}

	lines := []string{"export OPENSSLDIR=" + rec.Dir}
	if rec.CertFile {
		lines = append(lines, "export SSL_CERT_FILE="+filepath.Join(rec.Dir, "cert.pem"))
	}
	if rec.CertDir {
		lines = append(lines, "export SSL_CERT_DIR="+filepath.Join(rec.Dir, "certs"))
	}
	return lines
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
