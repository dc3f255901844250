// Package whitelist decides which senders bypass scoring.
package whitelist

import (
	"net/mail"
	"strings"

	"go.uber.org/zap"
)

// Checker provides functionality to check if email domains are whitelisted
type Checker struct {
	domains map[string]struct{}
	logger  *zap.Logger
}

// NewChecker creates a new whitelist checker
func NewChecker(domains []string, logger *zap.Logger) *Checker {
	normalized := make(map[string]struct{}, len(domains))
	names := make([]string, 0, len(domains))
	for _, domain := range domains {
		domain = strings.ToLower(strings.TrimSpace(domain))
		if domain == "" {
			continue
		}
		if _, dup := normalized[domain]; !dup {
			normalized[domain] = struct{}{}
			names = append(names, domain)
		}
	}

	if len(names) > 0 && logger != nil {
		logger.Info("Initialized whitelist checker", zap.Strings("domains", names))
	}

	return &Checker{
		domains: normalized,
		logger:  logger,
	}
}

// IsWhitelisted checks if the sender's domain is in the whitelist. from may
// be a bare address or a full From header such as "Alice <alice@example.com>".
func (c *Checker) IsWhitelisted(from string) bool {
	if len(c.domains) == 0 {
		return false
	}

	domain := senderDomain(from)
	if domain == "" {
		return false
	}

	if _, ok := c.domains[domain]; ok {
		if c.logger != nil {
			c.logger.Debug("Domain is whitelisted",
				zap.String("domain", domain),
				zap.String("email", from))
		}
		return true
	}

	return false
}

// senderDomain returns the lower-cased domain of an address, or "" if none
func senderDomain(from string) string {
	address := strings.TrimSpace(from)
	if parsed, err := mail.ParseAddress(address); err == nil {
		address = parsed.Address
	}

	at := strings.LastIndex(address, "@")
	if at < 0 || at == len(address)-1 {
		return ""
	}
	return strings.ToLower(address[at+1:])
}
