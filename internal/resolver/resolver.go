package resolver

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/anoopvshukla/wabot-launch/internal/config"
)

// systemPathLocation labels candidates resolved through the search path
// rather than a fixed directory in operator-facing output.
const systemPathLocation = "system PATH"

// Candidate is one (location, name) pair evaluated during resolution.
// An empty Dir means the candidate is looked up across the search path.
type Candidate struct {
	Dir    string
	Name   string
	Legacy bool
}

// Location renders the candidate for display to an operator.
func (c Candidate) Location() string {
	if c.Dir == "" {
		return fmt.Sprintf("%s (%s)", c.Name, systemPathLocation)
	}
	return filepath.Join(c.Dir, c.Name)
}

// ResolvedBinary is the path of the first candidate that exists and is
// executable. Legacy carries the matching candidate's flag.
type ResolvedBinary struct {
	Path   string
	Legacy bool
}

// NotFoundError reports that no candidate resolved. Searched holds every
// probed location in priority order, ready for operator display.
type NotFoundError struct {
	Name     string
	Searched []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no executable %q found (searched: %s)", e.Name, strings.Join(e.Searched, ", "))
}

// Resolver performs the ordered, short-circuiting executable search.
type Resolver struct {
	fs  afero.Fs
	cfg *config.LaunchConfig
	log *zerolog.Logger
}

// New creates a Resolver backed by the real filesystem.
func New(cfg *config.LaunchConfig, log *zerolog.Logger) *Resolver {
	return NewWithFs(afero.NewOsFs(), cfg, log)
}

// NewWithFs creates a Resolver with an explicit filesystem (useful for tests).
func NewWithFs(fs afero.Fs, cfg *config.LaunchConfig, log *zerolog.Logger) *Resolver {
	return &Resolver{
		fs:  fs,
		cfg: cfg,
		log: log,
	}
}

// Candidates returns the fixed priority list: canonical name in the bot
// directory, the node tooling directory, then the search path, followed by
// the legacy name across the same three locations.
func (r *Resolver) Candidates() []Candidate {
	return []Candidate{
		{Dir: r.cfg.BotDir, Name: config.CanonicalName},
		{Dir: r.cfg.NodeDir, Name: config.CanonicalName},
		{Name: config.CanonicalName},
		{Dir: r.cfg.BotDir, Name: config.LegacyName, Legacy: true},
		{Dir: r.cfg.NodeDir, Name: config.LegacyName, Legacy: true},
		{Name: config.LegacyName, Legacy: true},
	}
}

// Resolve evaluates the candidates in priority order and returns the first
// match. Priority is purely positional: no comparison is made between
// co-existing matches, and the scan stops at the first success.
func (r *Resolver) Resolve() (*ResolvedBinary, error) {
	candidates := r.Candidates()

	for _, c := range candidates {
		path, ok := r.probe(c)
		if !ok {
			continue
		}
		if c.Legacy {
			r.log.Warn().
				Str("path", path).
				Msgf("resolved via legacy name %q; rename your install to %q", c.Name, config.CanonicalName)
		}
		return &ResolvedBinary{Path: path, Legacy: c.Legacy}, nil
	}

	searched := make([]string, 0, len(candidates))
	for _, c := range candidates {
		searched = append(searched, c.Location())
	}
	return nil, &NotFoundError{Name: config.CanonicalName, Searched: searched}
}

// probe checks a single candidate.
func (r *Resolver) probe(c Candidate) (string, bool) {
	if c.Dir != "" {
		path := filepath.Join(c.Dir, c.Name)
		return path, r.isExecutable(path)
	}
	return r.lookPath(c.Name)
}

// lookPath scans the augmented search path in order and returns the first
// executable match, mirroring exec.LookPath against the configured path.
func (r *Resolver) lookPath(name string) (string, bool) {
	for _, dir := range filepath.SplitList(r.cfg.SearchPath) {
		if dir == "" {
			// POSIX: an empty PATH entry means the current directory.
			dir = "."
		}
		path := filepath.Join(dir, name)
		if r.isExecutable(path) {
			return path, true
		}
	}
	return "", false
}

// isExecutable reports whether path is a regular file with an executable
// permission bit. Anything else counts as not found.
func (r *Resolver) isExecutable(path string) bool {
	info, err := r.fs.Stat(path)
	if err != nil {
		return false
	}
	mode := info.Mode()
	return mode.IsRegular() && mode.Perm()&0o111 != 0
}
