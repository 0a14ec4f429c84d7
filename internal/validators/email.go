package validators

import (
	"context"
	"net"
	"strings"
)

// DomainChecker reports whether the domain of an e-mail address can
// receive mail.
type DomainChecker interface {
	Valid(ctx context.Context, email string) bool
}

// DNSDomainChecker accepts a domain with an MX record, or at least an
// address record.
type DNSDomainChecker struct {
	Resolver *net.Resolver
}

func NewDNSDomainChecker() *DNSDomainChecker {
	return &DNSDomainChecker{Resolver: net.DefaultResolver}
}

func (d *DNSDomainChecker) Valid(ctx context.Context, email string) bool {
	domain, ok := Domain(email)
	if !ok {
		return false
	}

	if mx, err := d.Resolver.LookupMX(ctx, domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := d.Resolver.LookupIPAddr(ctx, domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}

// AcceptAll is used when domain checks are switched off.
type AcceptAll struct{}

func (AcceptAll) Valid(context.Context, string) bool { return true }

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func Domain(email string) (string, bool) {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return "", false
	}
	return email[at+1:], true
}
