package eventregistry

import (
	"errors"
	"strings"
)

// DefaultResourceSuffixes identifies event-definition files by name.
var DefaultResourceSuffixes = []string{".event"}

// Classifier errors
var (
	ErrNoSuffixes  = errors.New("resource classifier requires at least one suffix")
	ErrEmptySuffix = errors.New("resource suffix cannot be empty")
)

// ResourceClassifier decides whether a named resource is an event-definition artifact.
type ResourceClassifier interface {
	IsEventResource(name string) bool
}

// SuffixClassifier matches resource names against a fixed set of suffixes.
// Matching is case-sensitive.
type SuffixClassifier struct {
	suffixes []string
}

// NewSuffixClassifier creates a classifier for the given suffixes.
func NewSuffixClassifier(suffixes ...string) (*SuffixClassifier, error) {
	if len(suffixes) == 0 {
		return nil, ErrNoSuffixes
	}
	for _, s := range suffixes {
		if s == "" {
			return nil, ErrEmptySuffix
		}
	}
	return &SuffixClassifier{suffixes: append([]string(nil), suffixes...)}, nil
}

// DefaultClassifier returns a classifier for DefaultResourceSuffixes.
func DefaultClassifier() *SuffixClassifier {
	return &SuffixClassifier{suffixes: append([]string(nil), DefaultResourceSuffixes...)}
}

// IsEventResource reports whether name ends with one of the configured suffixes.
func (c *SuffixClassifier) IsEventResource(name string) bool {
	for _, suffix := range c.suffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}

// Suffixes returns the configured suffixes.
func (c *SuffixClassifier) Suffixes() []string {
	return c.suffixes
}

// Compile-time check that SuffixClassifier implements ResourceClassifier.
var _ ResourceClassifier = (*SuffixClassifier)(nil)
