// Package model holds the structured form of an ApacheDS server.xml.
//
// One ServerConfiguration type serves all schema versions. Its Version
// field tells which fields are meaningful and which enum variants are
// allowed (see Interceptors, ExtendedOperations, SaslQops and Mechanisms).
//
// A nil slice means "not configured", an empty slice means "configured
// with no entries". Readers, writers and migrations keep the two apart.
package model

import (
	"github.com/gnames/dsconf/pkg/ldif"
	"github.com/gnames/dsconf/pkg/version"
)

// ServerConfiguration is the content of one server.xml document.
type ServerConfiguration struct {
	// Version is the schema version the configuration belongs to.
	Version version.Version `json:"version" yaml:"version"`

	// Principal, Password and BinaryAttributes come from the JNDI
	// environment bean of 1.5.0 and 1.5.1 documents.
	Principal        string   `json:"principal,omitempty" yaml:"principal,omitempty"`
	Password         string   `json:"password,omitempty" yaml:"password,omitempty"`
	BinaryAttributes []string `json:"binaryAttributes,omitempty" yaml:"binaryAttributes,omitempty"`

	EnableLdap           bool `json:"enableLdap" yaml:"enableLdap"`
	LdapPort             int  `json:"ldapPort" yaml:"ldapPort"`
	EnableLdaps          bool `json:"enableLdaps" yaml:"enableLdaps"`
	LdapsPort            int  `json:"ldapsPort" yaml:"ldapsPort"`
	EnableKerberos       bool `json:"enableKerberos" yaml:"enableKerberos"`
	KerberosPort         int  `json:"kerberosPort" yaml:"kerberosPort"`
	EnableChangePassword bool `json:"enableChangePassword" yaml:"enableChangePassword"`
	ChangePasswordPort   int  `json:"changePasswordPort" yaml:"changePasswordPort"`
	EnableNtp            bool `json:"enableNtp" yaml:"enableNtp"`
	NtpPort              int  `json:"ntpPort" yaml:"ntpPort"`
	EnableDns            bool `json:"enableDns" yaml:"enableDns"`
	DnsPort              int  `json:"dnsPort" yaml:"dnsPort"`

	EnableAccessControl  bool `json:"enableAccessControl" yaml:"enableAccessControl"`
	AllowAnonymousAccess bool `json:"allowAnonymousAccess" yaml:"allowAnonymousAccess"`
	DenormalizeOpAttr    bool `json:"denormalizeOpAttr" yaml:"denormalizeOpAttr"`

	// MaxTimeLimit is the maximum search time in milliseconds.
	MaxTimeLimit int `json:"maxTimeLimit" yaml:"maxTimeLimit"`
	// MaxSizeLimit is the maximum number of search results.
	MaxSizeLimit int `json:"maxSizeLimit" yaml:"maxSizeLimit"`
	// MaxThreads is the size of the server thread pool. Removed in 1.5.7.
	MaxThreads int `json:"maxThreads" yaml:"maxThreads"`
	// SynchronizationPeriod is the period of flushing data to disk in
	// milliseconds.
	SynchronizationPeriod int64 `json:"synchronizationPeriod" yaml:"synchronizationPeriod"`

	SaslHost            string               `json:"saslHost,omitempty" yaml:"saslHost,omitempty"`
	SaslPrincipal       string               `json:"saslPrincipal,omitempty" yaml:"saslPrincipal,omitempty"`
	SearchBaseDn        string               `json:"searchBaseDn,omitempty" yaml:"searchBaseDn,omitempty"`
	SaslRealms          []string             `json:"saslRealms" yaml:"saslRealms"`
	SaslQops            []SaslQop            `json:"saslQops" yaml:"saslQops"`
	SupportedMechanisms []SupportedMechanism `json:"supportedMechanisms" yaml:"supportedMechanisms"`

	Partitions         []*Partition        `json:"partitions" yaml:"partitions"`
	Interceptors       []Interceptor       `json:"interceptors" yaml:"interceptors"`
	ExtendedOperations []ExtendedOperation `json:"extendedOperations" yaml:"extendedOperations"`
}

// Partition is a naming context with its cache and index settings.
type Partition struct {
	ID                     string             `json:"id" yaml:"id"`
	CacheSize              int                `json:"cacheSize" yaml:"cacheSize"`
	Suffix                 string             `json:"suffix" yaml:"suffix"`
	EnableOptimizer        bool               `json:"enableOptimizer" yaml:"enableOptimizer"`
	SynchronizationOnWrite bool               `json:"synchronizationOnWrite" yaml:"synchronizationOnWrite"`
	SystemPartition        bool               `json:"systemPartition" yaml:"systemPartition"`
	IndexedAttributes      []IndexedAttribute `json:"indexedAttributes" yaml:"indexedAttributes"`
	ContextEntry           *ldif.Attributes   `json:"contextEntry" yaml:"contextEntry"`
}

// IndexedAttribute is an attribute index of a partition.
type IndexedAttribute struct {
	AttributeID string `json:"attributeId" yaml:"attributeId"`
	CacheSize   int    `json:"cacheSize" yaml:"cacheSize"`
}

// SupportedMechanism is a SASL mechanism offered by the LDAP server.
// NtlmProviderFqcn is set only for NTLM and GSS-SPNEGO handlers.
type SupportedMechanism struct {
	Mechanism        Mechanism `json:"mechanism" yaml:"mechanism"`
	NtlmProviderFqcn string    `json:"ntlmProviderFqcn,omitempty" yaml:"ntlmProviderFqcn,omitempty"`
}

// New creates an empty configuration of the given version.
func New(v version.Version) *ServerConfiguration {
	return &ServerConfiguration{Version: v}
}

// SystemPartition returns the system partition or nil if there is none.
func (sc *ServerConfiguration) SystemPartition() *Partition {
	for _, p := range sc.Partitions {
		if p.SystemPartition {
			return p
		}
	}
	return nil
}

// UserPartitions returns partitions that are not the system partition,
// preserving their order.
func (sc *ServerConfiguration) UserPartitions() []*Partition {
	var res []*Partition
	for _, p := range sc.Partitions {
		if !p.SystemPartition {
			res = append(res, p)
		}
	}
	return res
}

// Clone returns a deep copy of the configuration. Nil slices stay nil,
// empty slices stay empty.
func (sc *ServerConfiguration) Clone() *ServerConfiguration {
	if sc == nil {
		return nil
	}
	res := *sc
	res.BinaryAttributes = cloneSlice(sc.BinaryAttributes)
	res.SaslRealms = cloneSlice(sc.SaslRealms)
	res.SaslQops = cloneSlice(sc.SaslQops)
	res.SupportedMechanisms = cloneSlice(sc.SupportedMechanisms)
	res.Interceptors = cloneSlice(sc.Interceptors)
	res.ExtendedOperations = cloneSlice(sc.ExtendedOperations)
	if sc.Partitions != nil {
		res.Partitions = make([]*Partition, len(sc.Partitions))
		for i, p := range sc.Partitions {
			res.Partitions[i] = p.Clone()
		}
	}
	return &res
}

// Clone returns a deep copy of the partition.
func (p *Partition) Clone() *Partition {
	if p == nil {
		return nil
	}
	res := *p
	res.IndexedAttributes = cloneSlice(p.IndexedAttributes)
	res.ContextEntry = p.ContextEntry.Clone()
	return &res
}

func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	res := make([]T, len(s))
	copy(res, s)
	return res
}
