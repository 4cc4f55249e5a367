package model

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gnames/dsconf/pkg/version"
)

// Interceptor identifies a request-processing stage of the directory
// service. The tag is carried through migrations, never executed.
type Interceptor int

const (
	UnknownInterceptor Interceptor = iota
	Normalization
	Authentication
	Referral
	AciAuthorization
	DefaultAuthorization
	Exception
	OperationalAttribute
	Schema
	Subentry
	CollectiveAttribute
	Event
	Trigger
	Replication
	KeyDerivation
)

var interceptorNames = map[Interceptor]string{
	Normalization:        "NORMALIZATION",
	Authentication:       "AUTHENTICATION",
	Referral:             "REFERRAL",
	AciAuthorization:     "ACI_AUTHORIZATION",
	DefaultAuthorization: "DEFAULT_AUTHORIZATION",
	Exception:            "EXCEPTION",
	OperationalAttribute: "OPERATIONAL_ATTRIBUTE",
	Schema:               "SCHEMA",
	Subentry:             "SUBENTRY",
	CollectiveAttribute:  "COLLECTIVE_ATTRIBUTE",
	Event:                "EVENT",
	Trigger:              "TRIGGER",
	Replication:          "REPLICATION",
	KeyDerivation:        "KEY_DERIVATION",
}

func (i Interceptor) String() string {
	return enumString(interceptorNames, i)
}

func (i Interceptor) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

func (i *Interceptor) UnmarshalText(b []byte) error {
	return enumParse(interceptorNames, string(b), i)
}

var interceptorsV150 = []Interceptor{
	Normalization, Authentication, Referral, AciAuthorization,
	DefaultAuthorization, Exception, OperationalAttribute, Schema,
	Subentry, CollectiveAttribute, Event, Trigger, Replication,
}

var interceptorsV154 = []Interceptor{
	Normalization, Authentication, AciAuthorization,
	DefaultAuthorization, Exception, OperationalAttribute, Schema,
	Subentry, CollectiveAttribute, Event, Trigger, Replication,
}

var interceptorsV157 = []Interceptor{
	Normalization, Authentication, Referral, AciAuthorization,
	DefaultAuthorization, Exception, OperationalAttribute, Schema,
	Subentry, CollectiveAttribute, Event, Trigger, Replication,
	KeyDerivation,
}

// Interceptors returns the interceptor variants known to a version in
// their default chain order.
func Interceptors(v version.Version) []Interceptor {
	switch {
	case v <= version.V153:
		return slices.Clone(interceptorsV150)
	case v <= version.V156:
		return slices.Clone(interceptorsV154)
	default:
		return slices.Clone(interceptorsV157)
	}
}

// ExtendedOperation identifies an LDAP extended operation handler.
type ExtendedOperation int

const (
	UnknownExtendedOperation ExtendedOperation = iota
	StartTls
	GracefulShutdown
	LaunchDiagnosticUi
)

var extendedOperationNames = map[ExtendedOperation]string{
	StartTls:           "START_TLS",
	GracefulShutdown:   "GRACEFUL_SHUTDOWN",
	LaunchDiagnosticUi: "LAUNCH_DIAGNOSTIC_UI",
}

func (e ExtendedOperation) String() string {
	return enumString(extendedOperationNames, e)
}

func (e ExtendedOperation) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

func (e *ExtendedOperation) UnmarshalText(b []byte) error {
	return enumParse(extendedOperationNames, string(b), e)
}

// ExtendedOperations returns the extended operations known to a version.
func ExtendedOperations(v version.Version) []ExtendedOperation {
	if v == version.V150 {
		return []ExtendedOperation{GracefulShutdown, LaunchDiagnosticUi}
	}
	return []ExtendedOperation{StartTls, GracefulShutdown, LaunchDiagnosticUi}
}

// SaslQop is a SASL quality of protection.
type SaslQop int

const (
	UnknownSaslQop SaslQop = iota
	Auth
	AuthInt
	AuthConf
)

var saslQopNames = map[SaslQop]string{
	Auth:     "auth",
	AuthInt:  "auth-int",
	AuthConf: "auth-conf",
}

func (q SaslQop) String() string {
	return enumString(saslQopNames, q)
}

func (q SaslQop) MarshalText() ([]byte, error) {
	return []byte(q.String()), nil
}

func (q *SaslQop) UnmarshalText(b []byte) error {
	return enumParse(saslQopNames, string(b), q)
}

// SaslQops returns quality of protection variants known to a version.
// Versions 1.5.0 and 1.5.7 have none.
func SaslQops(v version.Version) []SaslQop {
	if v == version.V150 || v >= version.V157 {
		return []SaslQop{}
	}
	return []SaslQop{Auth, AuthInt, AuthConf}
}

// Mechanism is a SASL authentication mechanism.
type Mechanism int

const (
	UnknownMechanism Mechanism = iota
	Simple
	CramMd5
	DigestMd5
	Gssapi
	Ntlm
	GssSpnego
)

var mechanismNames = map[Mechanism]string{
	Simple:    "SIMPLE",
	CramMd5:   "CRAM-MD5",
	DigestMd5: "DIGEST-MD5",
	Gssapi:    "GSSAPI",
	Ntlm:      "NTLM",
	GssSpnego: "GSS-SPNEGO",
}

func (m Mechanism) String() string {
	return enumString(mechanismNames, m)
}

func (m Mechanism) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Mechanism) UnmarshalText(b []byte) error {
	return enumParse(mechanismNames, string(b), m)
}

// Mechanisms returns SASL mechanisms known to a version. NTLM and
// GSS-SPNEGO appeared in 1.5.3, version 1.5.0 has no SASL support.
func Mechanisms(v version.Version) []Mechanism {
	switch {
	case v == version.V150:
		return []Mechanism{}
	case v <= version.V152:
		return []Mechanism{Simple, CramMd5, DigestMd5, Gssapi}
	default:
		return []Mechanism{Simple, CramMd5, DigestMd5, Gssapi, Ntlm, GssSpnego}
	}
}

// ParseMechanism finds a mechanism by its SASL name, for example
// "DIGEST-MD5".
func ParseMechanism(s string) (Mechanism, bool) {
	var res Mechanism
	err := enumParse(mechanismNames, s, &res)
	return res, err == nil
}

// ParseSaslQop finds a quality of protection by its name, ignoring case.
func ParseSaslQop(s string) (SaslQop, bool) {
	for k, v := range saslQopNames {
		if strings.EqualFold(v, s) {
			return k, true
		}
	}
	return UnknownSaslQop, false
}

func enumString[T comparable](names map[T]string, v T) string {
	if res, ok := names[v]; ok {
		return res
	}
	return "UNKNOWN"
}

func enumParse[T comparable](names map[T]string, s string, res *T) error {
	for k, v := range names {
		if v == s {
			*res = k
			return nil
		}
	}
	return fmt.Errorf("unknown value %q", s)
}
