package serverxml_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gnames/dsconf/pkg/errcode"
	"github.com/gnames/dsconf/pkg/migrate"
	"github.com/gnames/dsconf/pkg/model"
	"github.com/gnames/dsconf/pkg/serverxml"
	"github.com/gnames/dsconf/pkg/version"
	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readDoc(t *testing.T, v version.Version) []byte {
	t.Helper()
	path := filepath.Join("testdata", "server-"+v.String()+".xml")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return data
}

func parse(t *testing.T, v version.Version, data []byte) *model.ServerConfiguration {
	t.Helper()
	sio, err := serverxml.New(v)
	require.NoError(t, err)
	res, err := sio.Parse(data)
	require.NoError(t, err)
	return res
}

func errCode(t *testing.T, err error) gn.ErrorCode {
	t.Helper()
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok, "Error should be of type *gn.Error")
	return gnErr.Code
}

func TestNew(t *testing.T) {
	for _, v := range version.All() {
		sio, err := serverxml.New(v)
		require.NoError(t, err)
		assert.Equal(t, v, sio.Version())
	}

	_, err := serverxml.New(version.Unknown)
	require.Error(t, err)
	assert.Equal(t, errcode.UnknownVersionError, errCode(t, err))
}

func TestParseV150(t *testing.T) {
	sc := parse(t, version.V150, readDoc(t, version.V150))

	assert.Equal(t, version.V150, sc.Version)
	assert.Equal(t, "uid=admin,ou=system", sc.Principal)
	assert.Equal(t, "secret", sc.Password)
	assert.Equal(t,
		[]string{"photo", "personalSignature", "audio", "jpegPhoto"},
		sc.BinaryAttributes,
	)
	assert.True(t, sc.EnableLdap)
	assert.Equal(t, 10389, sc.LdapPort)
	assert.Equal(t, int64(15000), sc.SynchronizationPeriod)
	assert.Equal(t, 15000, sc.MaxTimeLimit)
	assert.Equal(t, 1000, sc.MaxSizeLimit)
	assert.Equal(t, 8, sc.MaxThreads)
	assert.True(t, sc.EnableKerberos)
	assert.False(t, sc.EnableNtp)
	assert.True(t, sc.DenormalizeOpAttr)

	// unknown interceptor class is skipped
	assert.Equal(t, []model.Interceptor{
		model.Normalization, model.Authentication, model.Referral, model.Schema,
	}, sc.Interceptors)
	assert.Equal(t, []model.ExtendedOperation{
		model.GracefulShutdown, model.LaunchDiagnosticUi,
	}, sc.ExtendedOperations)

	require.Len(t, sc.Partitions, 2)
	sys := sc.SystemPartition()
	require.NotNil(t, sys)
	assert.Equal(t, "system", sys.ID)
	assert.Equal(t, "ou=system", sys.Suffix)
	// index without cache size is skipped
	assert.Equal(t,
		[]model.IndexedAttribute{{AttributeID: "objectClass", CacheSize: 100}},
		sys.IndexedAttributes,
	)
	assert.Equal(t, []string{"system"}, sys.ContextEntry.Get("ou"))

	user := sc.UserPartitions()
	require.Len(t, user, 1)
	assert.Equal(t, "example", user[0].ID)
	assert.Equal(t, "dc=example,dc=com", user[0].Suffix)
	assert.Equal(t,
		[]string{"top", "domain", "extensibleObject"},
		user[0].ContextEntry.Get("objectClass"),
	)
}

func TestParseV151(t *testing.T) {
	sc := parse(t, version.V151, readDoc(t, version.V151))

	assert.Nil(t, sc.BinaryAttributes)
	assert.True(t, sc.EnableLdap)
	assert.Equal(t, 10389, sc.LdapPort)
	assert.True(t, sc.EnableLdaps)
	assert.Equal(t, 10636, sc.LdapsPort)
	assert.True(t, sc.EnableDns)
	assert.Equal(t, 8053, sc.DnsPort)
	assert.False(t, sc.EnableKerberos)
	assert.Equal(t, 60088, sc.KerberosPort)
	assert.False(t, sc.EnableChangePassword)
	assert.Equal(t, 60464, sc.ChangePasswordPort)
	assert.True(t, sc.EnableAccessControl)
	assert.Equal(t, "ldap.example.com", sc.SaslHost)
	assert.Equal(t, "ou=users,ou=system", sc.SearchBaseDn)
	assert.Equal(t, []string{"example.com", "apache.org"}, sc.SaslRealms)
	assert.Equal(t,
		[]model.SaslQop{model.Auth, model.AuthInt, model.AuthConf},
		sc.SaslQops,
	)
	assert.Len(t, sc.SupportedMechanisms, 4)
	assert.Equal(t, []model.Interceptor{
		model.Normalization, model.Authentication,
		model.AciAuthorization, model.Replication,
	}, sc.Interceptors)
	assert.Len(t, sc.ExtendedOperations, 3)

	sys := sc.SystemPartition()
	require.NotNil(t, sys)
	assert.Nil(t, sys.IndexedAttributes)
	user := sc.UserPartitions()
	require.Len(t, user, 1)
	assert.Equal(t, 50, user[0].CacheSize)
	assert.False(t, user[0].EnableOptimizer)
	assert.Len(t, user[0].IndexedAttributes, 2)
}

func TestParseV153(t *testing.T) {
	sc := parse(t, version.V153, readDoc(t, version.V153))

	assert.False(t, sc.EnableAccessControl)
	assert.False(t, sc.AllowAnonymousAccess)
	assert.Equal(t, 8, sc.MaxThreads)
	assert.Equal(t, int64(15000), sc.SynchronizationPeriod)
	assert.Len(t, sc.Interceptors, 12)
	assert.Contains(t, sc.Interceptors, model.Referral)

	// ntpServer without "enabled" is disabled
	assert.False(t, sc.EnableNtp)
	assert.Equal(t, 60123, sc.NtpPort)
	assert.False(t, sc.EnableDns)
	assert.Equal(t, 0, sc.DnsPort)

	// ldapsServer needs both enabled and enableLdaps
	assert.False(t, sc.EnableLdaps)
	assert.Equal(t, 10636, sc.LdapsPort)
	// ldapServer without "enabled" is enabled
	assert.True(t, sc.EnableLdap)
	assert.Equal(t, 10389, sc.LdapPort)

	require.Len(t, sc.SupportedMechanisms, 6)
	assert.Equal(t, model.SupportedMechanism{
		Mechanism:        model.GssSpnego,
		NtlmProviderFqcn: "com.foo.Bar",
	}, sc.SupportedMechanisms[5])
	assert.Equal(t,
		[]model.SaslQop{model.Auth, model.AuthInt, model.AuthConf},
		sc.SaslQops,
	)
	assert.Equal(t, []model.ExtendedOperation{
		model.GracefulShutdown, model.LaunchDiagnosticUi,
	}, sc.ExtendedOperations)

	sys := sc.SystemPartition()
	require.NotNil(t, sys)
	assert.Len(t, sys.IndexedAttributes, 2)
	assert.Equal(t,
		[]string{"top", "organizationalUnit", "extensibleObject"},
		sys.ContextEntry.Get("objectClass"),
	)
	user := sc.UserPartitions()
	require.Len(t, user, 1)
	assert.Equal(t, []string{"example"}, user[0].ContextEntry.Get("dc"))
}

func TestParseV152(t *testing.T) {
	sc := parse(t, version.V152, readDoc(t, version.V152))
	assert.Equal(t, []model.SupportedMechanism{
		{Mechanism: model.Simple},
		{Mechanism: model.CramMd5},
		{Mechanism: model.DigestMd5},
		{Mechanism: model.Gssapi},
	}, sc.SupportedMechanisms)
}

func TestParseV154(t *testing.T) {
	data := readDoc(t, version.V154)
	for _, v := range []version.Version{version.V154, version.V155, version.V156} {
		sc := parse(t, v, data)
		assert.Equal(t, v, sc.Version)
		assert.Len(t, sc.Interceptors, 11)
		assert.NotContains(t, sc.Interceptors, model.Referral)
		assert.True(t, sc.EnableLdap)
		assert.Equal(t, 10636, sc.LdapsPort)
		for _, p := range sc.Partitions {
			assert.Nil(t, p.ContextEntry)
		}
	}
}

func TestParseV157(t *testing.T) {
	sc := parse(t, version.V157, readDoc(t, version.V157))

	assert.True(t, sc.EnableAccessControl)
	assert.Equal(t, int64(15000), sc.SynchronizationPeriod)
	assert.Equal(t, 0, sc.MaxThreads)
	assert.True(t, sc.EnableKerberos)
	assert.Equal(t, 60088, sc.KerberosPort)
	assert.False(t, sc.EnableNtp)
	assert.True(t, sc.EnableLdap)
	assert.Equal(t, 10389, sc.LdapPort)
	assert.True(t, sc.EnableLdaps)
	assert.Equal(t, 10636, sc.LdapsPort)
	assert.Nil(t, sc.SaslQops)
	assert.Len(t, sc.Interceptors, 13)
	assert.Contains(t, sc.Interceptors, model.KeyDerivation)
	assert.Equal(t, []model.ExtendedOperation{
		model.StartTls, model.GracefulShutdown,
	}, sc.ExtendedOperations)
	require.Len(t, sc.SupportedMechanisms, 3)
	assert.Equal(t, "com.foo.Bar", sc.SupportedMechanisms[2].NtlmProviderFqcn)
	require.Len(t, sc.UserPartitions(), 1)
	assert.Nil(t, sc.UserPartitions()[0].IndexedAttributes)
}

// TestRoundTrip verifies that parsing the output of ToXML gives back the
// parsed configuration.
func TestRoundTrip(t *testing.T) {
	for _, v := range []version.Version{
		version.V150, version.V151, version.V152,
		version.V153, version.V154, version.V157,
	} {
		t.Run(v.String(), func(t *testing.T) {
			sio, err := serverxml.New(v, serverxml.OptIndent(4))
			require.NoError(t, err)

			sc, err := sio.Parse(readDoc(t, v))
			require.NoError(t, err)

			out, err := sio.ToXML(sc)
			require.NoError(t, err)
			assert.True(t, sio.IsValid([]byte(out)))

			sc2, err := sio.Parse([]byte(out))
			require.NoError(t, err)
			assert.Equal(t, sc, sc2)

			detected, err := serverxml.Detect([]byte(out))
			require.NoError(t, err)
			assert.Equal(t, v, detected)
		})
	}
}

func TestToXMLUnsupported(t *testing.T) {
	for _, v := range []version.Version{version.V155, version.V156} {
		sio, err := serverxml.New(v)
		require.NoError(t, err)
		assert.False(t, serverxml.CanWrite(v))

		out, err := sio.ToXML(model.New(v))
		require.Error(t, err)
		assert.Empty(t, out)
		assert.True(t, serverxml.IsUnsupported(err))
		assert.False(t, serverxml.IsStructural(err))
	}
}

// TestMissingMandatory verifies that absent mandatory tokens are named in
// the error instead of getting default values.
func TestMissingMandatory(t *testing.T) {
	doc := string(readDoc(t, version.V153))

	tests := []struct {
		msg   string
		from  string
		to    string
		token string
	}{
		{"access control", `accessControlEnabled="false"`, "", "accessControlEnabled"},
		{"denormalize", `denormalizeOpAttrsEnabled="false"`, "", "denormalizeOpAttrsEnabled"},
		{"thread pool", `<standardThreadPool id="pool" maxThreads="8"/>`, "", "standardThreadPool"},
		{"max threads", `maxThreads="8"`, "", "maxThreads"},
		{"partition suffix", `suffix="dc=example,dc=com"`, "", "suffix"},
		{"context entry bean", `#exampleContextEntry`, "#missingEntry", "missingEntry"},
		{"arguments", `<s:property name="arguments">`, `<s:property name="args">`, "arguments"},
		{"server port", `ipPort="60464"`, "", "ipPort"},
		{"sasl host", `saslHost="ldap.example.com"`, "", "saslHost"},
	}

	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			data := strings.Replace(doc, tt.from, tt.to, 1)
			require.NotEqual(t, doc, data)

			_, err := serverxml.Parse(version.V153, []byte(data))
			require.Error(t, err)
			assert.True(t, serverxml.IsStructural(err))

			gnErr, ok := err.(*gn.Error)
			require.True(t, ok)
			assert.Equal(t, errcode.StructuralParseError, gnErr.Code)
			require.NotEmpty(t, gnErr.Vars)
			assert.Equal(t, tt.token, gnErr.Vars[0])
		})
	}
}

// TestBooleanStrictness verifies only exact "true" and "false" are
// accepted.
func TestBooleanStrictness(t *testing.T) {
	doc := string(readDoc(t, version.V153))
	for _, val := range []string{"1", "yes", "True ", "TRUE", ""} {
		data := strings.Replace(doc,
			`accessControlEnabled="false"`,
			`accessControlEnabled="`+val+`"`, 1)
		_, err := serverxml.Parse(version.V153, []byte(data))
		require.Error(t, err, val)
		assert.True(t, serverxml.IsBooleanFormat(err), val)
		assert.False(t, serverxml.IsStructural(err), val)
	}

	data := strings.Replace(doc,
		`accessControlEnabled="false"`, `accessControlEnabled="true"`, 1)
	sc, err := serverxml.Parse(version.V153, []byte(data))
	require.NoError(t, err)
	assert.True(t, sc.EnableAccessControl)
}

func TestNumberFormat(t *testing.T) {
	tests := []struct {
		v        version.Version
		from, to string
	}{
		{version.V153, `maxTimeLimit="15000"`, `maxTimeLimit="15s"`},
		{version.V153, `<jdbmIndex attributeId="dc" cacheSize="100"/>`, `<jdbmIndex attributeId="dc" cacheSize="x"/>`},
		{version.V150, `<property name="ldapPort" value="10389"/>`, `<property name="ldapPort" value="ldap"/>`},
		{version.V157, `port="60088" nbThreads="4" backLog="50"/>
      <udpTransport`, `port="" nbThreads="4" backLog="50"/>
      <udpTransport`},
	}

	for _, tt := range tests {
		doc := string(readDoc(t, tt.v))
		data := strings.Replace(doc, tt.from, tt.to, 1)
		require.NotEqual(t, doc, data)

		_, err := serverxml.Parse(tt.v, []byte(data))
		require.Error(t, err)
		assert.True(t, serverxml.IsNumberFormat(err))
		assert.Equal(t, errcode.NumberFormatError, errCode(t, err))
	}
}

// TestContextEntryResolution verifies a partition gets the LDIF of the
// bean it references.
func TestContextEntryResolution(t *testing.T) {
	doc := `<beans xmlns:s="http://www.springframework.org/schema/beans">
  <defaultDirectoryService accessControlEnabled="false" denormalizeOpAttrsEnabled="false">
    <systemPartition>
      <jdbmPartition id="system" cacheSize="10" suffix="ou=system"
                     optimizerEnabled="true" syncOnWrite="true">
        <contextEntry>#ctx1</contextEntry>
      </jdbmPartition>
    </systemPartition>
  </defaultDirectoryService>
  <s:bean id="ctx1">
    <s:property name="arguments">
      <s:list><s:value>dc: example</s:value></s:list>
    </s:property>
  </s:bean>
  <standardThreadPool maxThreads="4"/>
</beans>`

	sc, err := serverxml.Parse(version.V153, []byte(doc))
	require.NoError(t, err)
	require.Len(t, sc.Partitions, 1)
	assert.Equal(t,
		map[string][]string{"dc": {"example"}},
		sc.Partitions[0].ContextEntry.Map(),
	)
	assert.Nil(t, sc.Interceptors)
	assert.False(t, sc.EnableLdap)

	noLDIF := strings.Replace(doc, "dc: example", "dc=example", 1)
	sc, err = serverxml.Parse(version.V153, []byte(noLDIF))
	require.NoError(t, err)
	assert.Nil(t, sc.Partitions[0].ContextEntry)

	sio, err := serverxml.New(version.V153)
	require.NoError(t, err)
	out, err := sio.ToXML(sc)
	require.NoError(t, err)
	sc, err = serverxml.Parse(version.V153, []byte(out))
	require.NoError(t, err)
	require.Len(t, sc.Partitions, 1)
}

// TestLdapServerIDCase verifies LDAP and LDAPS servers are found by ids
// in any letter case.
func TestLdapServerIDCase(t *testing.T) {
	data := readDoc(t, version.V153)
	want := parse(t, version.V153, data)

	doc := strings.Replace(string(data), `id="ldapServer"`, `id="LDAPSERVER"`, 1)
	doc = strings.Replace(doc, `id="ldapsServer"`, `id="LdapsServer"`, 1)
	require.NotEqual(t, string(data), doc)

	sc := parse(t, version.V153, []byte(doc))
	assert.Equal(t, want.LdapPort, sc.LdapPort)
	assert.Equal(t, want.EnableLdap, sc.EnableLdap)
	assert.Equal(t, want.LdapsPort, sc.LdapsPort)
	assert.Equal(t, want.EnableLdaps, sc.EnableLdaps)
	assert.Equal(t, want.SupportedMechanisms, sc.SupportedMechanisms)
}

// TestVariantsBelongToVersion verifies every parsed enum value exists in
// the version of the document.
func TestVariantsBelongToVersion(t *testing.T) {
	for _, v := range []version.Version{
		version.V150, version.V151, version.V152,
		version.V153, version.V154, version.V157,
	} {
		t.Run(v.String(), func(t *testing.T) {
			sc := parse(t, v, readDoc(t, v))
			assert.Subset(t, model.Interceptors(v), sc.Interceptors)
			assert.Subset(t, model.ExtendedOperations(v), sc.ExtendedOperations)
			assert.Subset(t, model.SaslQops(v), sc.SaslQops)
			for _, sm := range sc.SupportedMechanisms {
				assert.Contains(t, model.Mechanisms(v), sm.Mechanism)
			}
		})
	}
}

// TestForeignVariants verifies values of other versions are dropped on
// parsing so the result can be migrated.
func TestForeignVariants(t *testing.T) {
	tests := []struct {
		msg           string
		v             version.Version
		before, after string
		check         func(*testing.T, *model.ServerConfiguration)
	}{
		{
			msg:    "referral interceptor in 1.5.4",
			v:      version.V154,
			before: "<triggerInterceptor/>",
			after:  "<triggerInterceptor/>\n      <referralInterceptor/>",
			check: func(t *testing.T, sc *model.ServerConfiguration) {
				assert.NotContains(t, sc.Interceptors, model.Referral)
				assert.Contains(t, sc.Interceptors, model.Trigger)
			},
		},
		{
			msg:    "key derivation interceptor in 1.5.4",
			v:      version.V154,
			before: "<triggerInterceptor/>",
			after:  "<triggerInterceptor/>\n      <keyDerivationInterceptor/>",
			check: func(t *testing.T, sc *model.ServerConfiguration) {
				assert.NotContains(t, sc.Interceptors, model.KeyDerivation)
			},
		},
		{
			msg:    "start tls handler in 1.5.0",
			v:      version.V150,
			before: `<bean class="org.apache.directory.server.ldap.support.extended.GracefulShutdownHandler"/>`,
			after:  `<bean class="org.apache.directory.server.ldap.support.starttls.StartTlsHandler"/>
        <bean class="org.apache.directory.server.ldap.support.extended.GracefulShutdownHandler"/>`,
			check: func(t *testing.T, sc *model.ServerConfiguration) {
				assert.NotContains(t, sc.ExtendedOperations, model.StartTls)
				assert.Contains(t, sc.ExtendedOperations, model.GracefulShutdown)
			},
		},
		{
			msg:    "ntlm mechanism in 1.5.2",
			v:      version.V152,
			before: "<s:value>GSSAPI</s:value>",
			after:  "<s:value>GSSAPI</s:value>\n      <s:value>NTLM</s:value>",
			check: func(t *testing.T, sc *model.ServerConfiguration) {
				require.NotEmpty(t, sc.SupportedMechanisms)
				for _, sm := range sc.SupportedMechanisms {
					assert.NotEqual(t, model.Ntlm, sm.Mechanism)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			data := string(readDoc(t, tt.v))
			require.Contains(t, data, tt.before)
			doc := strings.Replace(data, tt.before, tt.after, 1)

			sc := parse(t, tt.v, []byte(doc))
			tt.check(t, sc)

			res, err := migrate.Migrate(sc, version.V157)
			require.NoError(t, err)
			assert.Equal(t, version.V157, res.Version)
		})
	}
}

func TestIsValid(t *testing.T) {
	docs := make(map[version.Version][]byte)
	for _, v := range []version.Version{
		version.V150, version.V151, version.V152,
		version.V153, version.V154, version.V157,
	} {
		docs[v] = readDoc(t, v)
	}

	tests := []struct {
		v     version.Version
		doc   version.Version
		valid bool
	}{
		{version.V150, version.V150, true},
		{version.V150, version.V151, false},
		{version.V151, version.V151, true},
		{version.V151, version.V150, false},
		{version.V152, version.V152, true},
		{version.V152, version.V153, true},
		{version.V152, version.V157, false},
		{version.V153, version.V153, true},
		{version.V153, version.V154, false},
		{version.V154, version.V154, true},
		{version.V154, version.V153, false},
		{version.V155, version.V150, true},
		{version.V156, version.V157, true},
		{version.V157, version.V157, true},
		{version.V157, version.V154, false},
	}

	for _, tt := range tests {
		sio, err := serverxml.New(tt.v)
		require.NoError(t, err)
		assert.Equal(t, tt.valid, sio.IsValid(docs[tt.doc]),
			"%s validity check on %s document", tt.v, tt.doc)
	}

	for _, v := range version.All() {
		sio, err := serverxml.New(v)
		require.NoError(t, err)
		assert.NotPanics(t, func() {
			sio.IsValid([]byte("<beans>"))
			sio.IsValid(nil)
		})
	}
}

func TestDetect(t *testing.T) {
	for _, v := range []version.Version{
		version.V150, version.V151, version.V152,
		version.V153, version.V154, version.V157,
	} {
		res, err := serverxml.Detect(readDoc(t, v))
		require.NoError(t, err)
		assert.Equal(t, v, res)
	}

	for _, doc := range []string{"", "not xml", "<beans/>", "<html><body/></html>"} {
		res, err := serverxml.Detect([]byte(doc))
		require.Error(t, err)
		assert.Equal(t, version.Unknown, res)
		assert.Equal(t, errcode.UndetectedVersionError, errCode(t, err))
	}
}

func TestSyntaxError(t *testing.T) {
	for _, v := range version.All() {
		_, err := serverxml.Parse(v, []byte("<beans><bean></beans>"))
		require.Error(t, err)
		assert.True(t, serverxml.IsStructural(err))
		assert.Equal(t, errcode.XMLSyntaxError, errCode(t, err))
	}
}

// TestNilVersusEmpty verifies present empty containers survive a round
// trip as empty, absent ones as nil.
func TestNilVersusEmpty(t *testing.T) {
	sio, err := serverxml.New(version.V153)
	require.NoError(t, err)
	sc, err := sio.Parse(readDoc(t, version.V153))
	require.NoError(t, err)

	sc.Interceptors = []model.Interceptor{}
	sc.SaslRealms = nil
	sc.ExtendedOperations = []model.ExtendedOperation{}

	out, err := sio.ToXML(sc)
	require.NoError(t, err)
	res, err := sio.Parse([]byte(out))
	require.NoError(t, err)

	assert.NotNil(t, res.Interceptors)
	assert.Empty(t, res.Interceptors)
	assert.Nil(t, res.SaslRealms)
	assert.NotNil(t, res.ExtendedOperations)
	assert.Empty(t, res.ExtendedOperations)
}
