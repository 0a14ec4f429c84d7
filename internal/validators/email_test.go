package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "ana@example.com", NormalizeEmail("  Ana@Example.COM "))
}

func TestDomain(t *testing.T) {
	d, ok := Domain("ana@example.com")
	assert.True(t, ok)
	assert.Equal(t, "example.com", d)

	for _, bad := range []string{"", "ana", "ana@", "@example.com"} {
		_, ok := Domain(bad)
		assert.False(t, ok, bad)
	}
}

func TestDNSDomainCheckerRejectsMalformed(t *testing.T) {
	assert.False(t, NewDNSDomainChecker().Valid(context.Background(), "no-at-sign"))
}

func TestAcceptAll(t *testing.T) {
	assert.True(t, AcceptAll{}.Valid(context.Background(), "whatever"))
}
