package system

import (
	"net/url"
	"os"
	"strings"

	"shelfbox/internal/ports"
)

// ExistenceChecker implements ports.ExistenceChecker against the local
// filesystem. URLs always report existing; no network check is made.
type ExistenceChecker struct{}

var _ ports.ExistenceChecker = ExistenceChecker{}

// NewExistenceChecker creates a filesystem existence checker
func NewExistenceChecker() ExistenceChecker {
	return ExistenceChecker{}
}

func (ExistenceChecker) Exists(target string) bool {
	if strings.TrimSpace(target) == "" {
		return false
	}
	if isWebURL(target) {
		return true
	}
	_, err := os.Stat(target)
	return err == nil
}

func isWebURL(target string) bool {
	u, err := url.Parse(target)
	if err != nil {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}
