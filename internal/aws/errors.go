package aws

import (
	"errors"
	"net"
	"strings"

	"github.com/aws/smithy-go"
)

// FailureKind groups provider failures for the login screen.
type FailureKind int

const (
	FailureUnknown FailureKind = iota
	FailureAuth
	FailureNetwork
)

func (k FailureKind) String() string {
	switch k {
	case FailureAuth:
		return "auth"
	case FailureNetwork:
		return "network"
	}
	return "unknown"
}

var authErrorCodes = map[string]bool{
	"AccessDenied":                true,
	"AccessDeniedException":       true,
	"AuthFailure":                 true,
	"ExpiredToken":                true,
	"ExpiredTokenException":       true,
	"InvalidClientTokenId":        true,
	"SignatureDoesNotMatch":       true,
	"UnauthorizedOperation":       true,
	"UnrecognizedClientException": true,
}

// Classify maps err to a FailureKind. API error codes are read through
// smithy; credential resolution failures never reach the API and are
// matched on their message.
func Classify(err error) FailureKind {
	if err == nil {
		return FailureUnknown
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		if authErrorCodes[apiErr.ErrorCode()] {
			return FailureAuth
		}
		return FailureUnknown
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return FailureNetwork
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "retrieve credentials"),
		strings.Contains(msg, "no valid credential"),
		strings.Contains(msg, "token has expired"),
		strings.Contains(msg, "sso session"):
		return FailureAuth
	case strings.Contains(msg, "no such host"),
		strings.Contains(msg, "connection refused"),
		strings.Contains(msg, "i/o timeout"):
		return FailureNetwork
	}
	return FailureUnknown
}
