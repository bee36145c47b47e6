package verify

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
)

// VerifyEmail checks that the value has exactly one "@", a local part of
// 1..63 characters, and a domain with at least one MX record. A domain that
// fails to resolve is a data error on the field, not a transport failure.
func (e *Engine) VerifyEmail(ctx context.Context, name string, value any) (bool, []string) {
	s, ok := value.(string)
	if !ok {
		return false, []string{fmt.Sprintf("%s type is invalid. Expected str but received %s", name, typeName(value))}
	}

	if strings.Count(s, "@") != 1 {
		return false, []string{fmt.Sprintf("%s is invalid. Email must only contain one @", name)}
	}

	local, domain, _ := strings.Cut(s, "@")

	one := 1
	sixtyThree := 63
	if ok, errs := e.VerifyString("Email", local, Restrictions{MinLen: &one, MaxLen: &sixtyThree}); !ok {
		return false, errs
	}

	mx, err := e.resolver.LookupMX(ctx, domain)
	if err != nil {
		var dnsErr *net.DNSError
		if errors.As(err, &dnsErr) && dnsErr.IsNotFound {
			return false, []string{fmt.Sprintf("%s has an invalid domain", name)}
		}
		return false, []string{fmt.Sprintf("%s was unable to be verified", name)}
	}

	if len(mx) == 0 {
		return false, []string{fmt.Sprintf("%s was unable to be verified", name)}
	}

	return true, nil
}
