package serverxml

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/beevik/etree"
	"github.com/gnames/dsconf/pkg/ldif"
	"github.com/gnames/dsconf/pkg/model"
	"github.com/gnames/dsconf/pkg/version"
)

const (
	nsXbeanSpring  = "http://xbean.apache.org/schemas/spring/1.0"
	nsSpringBeans  = "http://www.springframework.org/schema/beans"
	nsApacheDS     = "http://apacheds.org/config/1.0"
	nsApacheDSV157 = "http://apacheds.org/config/1.5.7"

	classMethodInvoking = "org.springframework.beans.factory.config.MethodInvokingFactoryBean"
)

var xbeanInterceptors = []struct {
	interceptor model.Interceptor
	tag         string
}{
	{model.Normalization, "normalizationInterceptor"},
	{model.Authentication, "authenticationInterceptor"},
	{model.Referral, "referralInterceptor"},
	{model.AciAuthorization, "aciAuthorizationInterceptor"},
	{model.DefaultAuthorization, "defaultAuthorizationInterceptor"},
	{model.Exception, "exceptionInterceptor"},
	{model.OperationalAttribute, "operationalAttributeInterceptor"},
	{model.Schema, "schemaInterceptor"},
	{model.Subentry, "subentryInterceptor"},
	{model.CollectiveAttribute, "collectiveAttributeInterceptor"},
	{model.Event, "eventInterceptor"},
	{model.Trigger, "triggerInterceptor"},
	{model.Replication, "replicationInterceptor"},
	{model.KeyDerivation, "keyDerivationInterceptor"},
}

var mechanismHandlers = []struct {
	mechanism model.Mechanism
	tag       string
}{
	{model.Simple, "simpleMechanismHandler"},
	{model.CramMd5, "cramMd5MechanismHandler"},
	{model.DigestMd5, "digestMd5MechanismHandler"},
	{model.Gssapi, "gssapiMechanismHandler"},
	{model.Ntlm, "ntlmMechanismHandler"},
	{model.GssSpnego, "ntlmMechanismHandler"},
}

var extendedOperationTags = []struct {
	op  model.ExtendedOperation
	tag string
}{
	{model.StartTls, "startTlsHandler"},
	{model.GracefulShutdown, "gracefulShutdownHandler"},
	{model.LaunchDiagnosticUi, "launchDiagnosticUiHandler"},
}

// xbeanServers are optional protocol servers of the xbean dialect.
var xbeanServers = []struct {
	tag       string
	nbThreads string
	get       func(*model.ServerConfiguration) (*bool, *int)
}{
	{
		"changePasswordServer", "2",
		func(sc *model.ServerConfiguration) (*bool, *int) {
			return &sc.EnableChangePassword, &sc.ChangePasswordPort
		},
	},
	{
		"kdcServer", "4",
		func(sc *model.ServerConfiguration) (*bool, *int) { return &sc.EnableKerberos, &sc.KerberosPort },
	},
	{
		"ntpServer", "1",
		func(sc *model.ServerConfiguration) (*bool, *int) { return &sc.EnableNtp, &sc.NtpPort },
	},
	{
		"dnsServer", "2",
		func(sc *model.ServerConfiguration) (*bool, *int) { return &sc.EnableDns, &sc.DnsPort },
	},
}

// xbeanIO handles the xbean dialect of 1.5.2 to 1.5.6.
type xbeanIO struct {
	v version.Version
	settings
}

func (x *xbeanIO) Version() version.Version {
	return x.v
}

// ldapTag is the element of LDAP and LDAPS servers. It was renamed to
// ldapService in 1.5.4.
func (x *xbeanIO) ldapTag() string {
	if x.v < version.V154 {
		return "ldapServer"
	}
	return "ldapService"
}

func (x *xbeanIO) ldapsID() string {
	if x.v < version.V154 {
		return "ldapsServer"
	}
	return "ldapsService"
}

// hasContextEntries is true for versions that seed partitions with a
// context entry bean.
func (x *xbeanIO) hasContextEntries() bool {
	return x.v < version.V154
}

func (x *xbeanIO) IsValid(data []byte) bool {
	if x.v == version.V155 || x.v == version.V156 {
		return true
	}

	root := lenientRoot(data)
	if root == nil || !strings.EqualFold(root.Tag, "beans") {
		return false
	}
	if root.SelectElement("apacheDS") == nil {
		return false
	}
	switch x.v {
	case version.V153:
		return root.SelectElement("ldapServer") != nil
	case version.V154:
		return root.SelectElement("ldapService") != nil
	}
	return true
}

func (x *xbeanIO) Parse(data []byte) (*model.ServerConfiguration, error) {
	root, err := readRoot(data)
	if err != nil {
		return nil, err
	}
	res := model.New(x.v)

	if _, err = readDirectoryService(root, res, x.hasContextEntries()); err != nil {
		return nil, err
	}

	pool := root.SelectElement("standardThreadPool")
	if pool == nil {
		return nil, StructuralError("standardThreadPool", root.Tag)
	}
	a := newAttrs(pool)
	res.MaxThreads = a.integer("maxThreads")
	if a.err != nil {
		return nil, a.err
	}

	for _, srv := range xbeanServers {
		enabled, port := srv.get(res)
		if err = readXbeanServer(root, srv.tag, enabled, port); err != nil {
			return nil, err
		}
	}

	if err = x.readLdapServers(root, res); err != nil {
		return nil, err
	}

	if ads := root.SelectElement("apacheDS"); ads != nil {
		a := newAttrs(ads)
		res.SynchronizationPeriod = int64(a.integer("synchPeriodMillis"))
		if a.err != nil {
			return nil, a.err
		}
	}

	restrictVariants(res)
	return res, nil
}

// readDirectoryService reads the mandatory defaultDirectoryService
// element with its partitions and interceptors.
func readDirectoryService(
	root *etree.Element,
	sc *model.ServerConfiguration,
	contextEntries bool,
) (*etree.Element, error) {
	dds := root.SelectElement("defaultDirectoryService")
	if dds == nil {
		return nil, StructuralError("defaultDirectoryService", root.Tag)
	}

	a := newAttrs(dds)
	sc.EnableAccessControl = a.boolean("accessControlEnabled")
	sc.DenormalizeOpAttr = a.boolean("denormalizeOpAttrsEnabled")
	sc.AllowAnonymousAccess = a.optBoolean("allowAnonymousAccess", false)
	if a.err != nil {
		return nil, a.err
	}

	sysEl := dds.SelectElement("systemPartition")
	if sysEl == nil {
		return nil, StructuralError("systemPartition", dds.Tag)
	}
	jp := sysEl.SelectElement("jdbmPartition")
	if jp == nil {
		return nil, StructuralError("jdbmPartition", sysEl.Tag)
	}
	sys, err := readJdbmPartition(root, jp, true, contextEntries)
	if err != nil {
		return nil, err
	}
	sc.Partitions = []*model.Partition{sys}

	if pe := dds.SelectElement("partitions"); pe != nil {
		for _, jp := range pe.SelectElements("jdbmPartition") {
			p, err := readJdbmPartition(root, jp, false, contextEntries)
			if err != nil {
				return nil, err
			}
			sc.Partitions = append(sc.Partitions, p)
		}
	}

	if ie := dds.SelectElement("interceptors"); ie != nil {
		sc.Interceptors = []model.Interceptor{}
		for _, el := range ie.ChildElements() {
			it, ok := interceptorByTag(el.Tag)
			if !ok {
				slog.Debug("Skipping unknown interceptor", "tag", el.Tag)
				continue
			}
			sc.Interceptors = append(sc.Interceptors, it)
		}
	}
	return dds, nil
}

func interceptorByTag(tag string) (model.Interceptor, bool) {
	for _, xi := range xbeanInterceptors {
		if strings.EqualFold(xi.tag, tag) {
			return xi.interceptor, true
		}
	}
	return model.UnknownInterceptor, false
}

func readJdbmPartition(
	root, el *etree.Element,
	system, contextEntry bool,
) (*model.Partition, error) {
	a := newAttrs(el)
	res := &model.Partition{
		ID:                     a.str("id"),
		CacheSize:              a.integer("cacheSize"),
		Suffix:                 a.str("suffix"),
		EnableOptimizer:        a.boolean("optimizerEnabled"),
		SynchronizationOnWrite: a.boolean("syncOnWrite"),
		SystemPartition:        system,
	}
	if a.err != nil {
		return nil, a.err
	}

	if ie := el.SelectElement("indexedAttributes"); ie != nil {
		res.IndexedAttributes = []model.IndexedAttribute{}
		for _, ji := range ie.SelectElements("jdbmIndex") {
			attrID := ji.SelectAttr("attributeId")
			size := ji.SelectAttr("cacheSize")
			if attrID == nil || size == nil {
				slog.Debug("Skipping incomplete indexed attribute", "partition", res.ID)
				continue
			}
			cacheSize, err := parseInt("cacheSize", size.Value)
			if err != nil {
				return nil, err
			}
			res.IndexedAttributes = append(
				res.IndexedAttributes,
				model.IndexedAttribute{AttributeID: attrID.Value, CacheSize: cacheSize},
			)
		}
	}

	if contextEntry {
		ce, err := resolveContextEntry(root, el)
		if err != nil {
			return nil, err
		}
		res.ContextEntry = ce
	}
	return res, nil
}

// resolveContextEntry follows the "#id" reference of a partition to a
// top-level bean and parses the first LDIF-looking value of its
// "arguments" list.
func resolveContextEntry(root, partition *etree.Element) (*ldif.Attributes, error) {
	ce := partition.SelectElement("contextEntry")
	if ce == nil {
		return nil, StructuralError("contextEntry", partition.Tag)
	}
	id := strings.TrimPrefix(strings.TrimSpace(ce.Text()), "#")

	var bean *etree.Element
	for _, b := range root.SelectElements("bean") {
		if strings.EqualFold(b.SelectAttrValue("id", ""), id) {
			bean = b
			break
		}
	}
	if bean == nil {
		return nil, StructuralError(id, root.Tag)
	}

	var args *etree.Element
	for _, p := range bean.SelectElements("property") {
		if strings.EqualFold(p.SelectAttrValue("name", ""), "arguments") {
			args = p
			break
		}
	}
	if args == nil {
		return nil, StructuralError("arguments", id)
	}

	if list := args.SelectElement("list"); list != nil {
		for _, v := range list.SelectElements("value") {
			if strings.Contains(v.Text(), ":") {
				return ldif.Parse(v.Text()), nil
			}
		}
	}
	return nil, nil
}

func readXbeanServer(root *etree.Element, tag string, enabled *bool, port *int) error {
	el := root.SelectElement(tag)
	if el == nil {
		return nil
	}
	a := newAttrs(el)
	*enabled = a.optBoolean("enabled", false)
	*port = a.integer("ipPort")
	return a.err
}

// readLdapServers finds LDAP and LDAPS servers among elements of the same
// tag by their ids.
func (x *xbeanIO) readLdapServers(root *etree.Element, sc *model.ServerConfiguration) error {
	var ldap, ldaps *etree.Element
	for _, el := range root.SelectElements(x.ldapTag()) {
		id := el.SelectAttr("id")
		if id == nil {
			return StructuralError("id", el.Tag)
		}
		switch {
		case strings.EqualFold(id.Value, x.ldapTag()):
			ldap = el
		case strings.EqualFold(id.Value, x.ldapsID()):
			ldaps = el
		}
	}

	if ldaps != nil {
		a := newAttrs(ldaps)
		enableLdaps := a.optBoolean("enableLdaps", false)
		enabled := a.optBoolean("enabled", false)
		sc.EnableLdaps = enableLdaps && enabled
		sc.LdapsPort = a.integer("ipPort")
		if a.err != nil {
			return a.err
		}
	}

	if ldap == nil {
		return nil
	}
	a := newAttrs(ldap)
	sc.EnableLdap = a.optBoolean("enabled", true)
	sc.LdapPort = a.integer("ipPort")
	if err := readLdapSettings(a, sc); err != nil {
		return err
	}

	if x.v == version.V152 {
		if se := ldap.SelectElement("supportedMechanisms"); se != nil {
			sc.SupportedMechanisms = []model.SupportedMechanism{}
			for _, v := range se.SelectElements("value") {
				m, ok := model.ParseMechanism(strings.TrimSpace(v.Text()))
				if !ok {
					slog.Debug("Skipping unknown SASL mechanism", "value", v.Text())
					continue
				}
				sc.SupportedMechanisms = append(sc.SupportedMechanisms, model.SupportedMechanism{Mechanism: m})
			}
		}
	} else {
		sc.SupportedMechanisms = readMechanismHandlers(ldap)
	}

	if qe := ldap.SelectElement("saslQop"); qe != nil {
		sc.SaslQops = []model.SaslQop{}
		for _, v := range qe.SelectElements("value") {
			q, ok := model.ParseSaslQop(strings.TrimSpace(v.Text()))
			if !ok {
				slog.Debug("Skipping unknown SASL QOP", "value", v.Text())
				continue
			}
			sc.SaslQops = append(sc.SaslQops, q)
		}
	}
	sc.SaslRealms = readSaslRealms(ldap)
	sc.ExtendedOperations = readExtendedOperations(ldap)
	return nil
}

// readLdapSettings reads mandatory attributes shared by all xbean LDAP
// servers.
func readLdapSettings(a *attrs, sc *model.ServerConfiguration) error {
	sc.AllowAnonymousAccess = a.boolean("allowAnonymousAccess")
	sc.SaslHost = a.str("saslHost")
	sc.SaslPrincipal = a.str("saslPrincipal")
	sc.SearchBaseDn = a.str("searchBaseDn")
	sc.MaxTimeLimit = a.integer("maxTimeLimit")
	sc.MaxSizeLimit = a.integer("maxSizeLimit")
	return a.err
}

func readMechanismHandlers(ldap *etree.Element) []model.SupportedMechanism {
	he := ldap.SelectElement("saslMechanismHandlers")
	if he == nil {
		return nil
	}
	res := []model.SupportedMechanism{}
	for _, el := range he.ChildElements() {
		mechName := el.SelectAttrValue("mech-name", "")
		var found bool
		for _, mh := range mechanismHandlers {
			if !strings.EqualFold(mh.tag, el.Tag) ||
				!strings.EqualFold(mh.mechanism.String(), mechName) {
				continue
			}
			sm := model.SupportedMechanism{Mechanism: mh.mechanism}
			if mh.mechanism == model.Ntlm || mh.mechanism == model.GssSpnego {
				sm.NtlmProviderFqcn = el.SelectAttrValue("ntlmProviderFqcn", "")
			}
			res = append(res, sm)
			found = true
			break
		}
		if !found {
			slog.Debug("Skipping unknown SASL mechanism handler", "tag", el.Tag, "mech-name", mechName)
		}
	}
	return res
}

func readSaslRealms(ldap *etree.Element) []string {
	re := ldap.SelectElement("saslRealms")
	if re == nil {
		return nil
	}
	res := []string{}
	for _, v := range re.SelectElements("value") {
		res = append(res, strings.TrimSpace(v.Text()))
	}
	return res
}

func readExtendedOperations(ldap *etree.Element) []model.ExtendedOperation {
	ee := ldap.SelectElement("extendedOperationHandlers")
	if ee == nil {
		return nil
	}
	res := []model.ExtendedOperation{}
	for _, el := range ee.ChildElements() {
		var found bool
		for _, et := range extendedOperationTags {
			if strings.EqualFold(et.tag, el.Tag) {
				res = append(res, et.op)
				found = true
				break
			}
		}
		if !found {
			slog.Debug("Skipping unknown extended operation", "tag", el.Tag)
		}
	}
	return res
}

func (x *xbeanIO) ToXML(sc *model.ServerConfiguration) (string, error) {
	if !CanWrite(x.v) {
		return "", UnsupportedDirectionError(x.v)
	}

	doc, root := newXbeanDocument(nsApacheDS)

	dds := root.CreateElement("defaultDirectoryService")
	dds.CreateAttr("id", "directoryService")
	dds.CreateAttr("instanceId", "default")
	dds.CreateAttr("workingDirectory", "example.com")
	dds.CreateAttr("allowAnonymousAccess", formatBool(sc.AllowAnonymousAccess))
	dds.CreateAttr("accessControlEnabled", formatBool(sc.EnableAccessControl))
	dds.CreateAttr("denormalizeOpAttrsEnabled", formatBool(sc.DenormalizeOpAttr))
	writeDirectoryServiceChildren(dds, sc, x.hasContextEntries())

	pool := root.CreateElement("standardThreadPool")
	pool.CreateAttr("id", "pool")
	pool.CreateAttr("maxThreads", formatInt(sc.MaxThreads))

	for _, tag := range []string{"datagramAcceptor", "socketAcceptor"} {
		el := root.CreateElement(tag)
		el.CreateAttr("id", tag)
		el.CreateAttr("logicExecutor", "#pool")
	}

	for _, srv := range xbeanServers {
		enabled, port := srv.get(sc)
		if !*enabled && *port == 0 {
			continue
		}
		el := root.CreateElement(srv.tag)
		el.CreateAttr("id", srv.tag)
		el.CreateAttr("ipPort", formatInt(*port))
		el.CreateAttr("enabled", formatBool(*enabled))
		refChild(el, "directoryService", "directoryService")
		refChild(el, "datagramAcceptor", "datagramAcceptor")
		refChild(el, "socketAcceptor", "socketAcceptor")
	}

	if sc.EnableLdaps || sc.LdapsPort != 0 {
		el := root.CreateElement(x.ldapTag())
		el.CreateAttr("id", x.ldapsID())
		el.CreateAttr("ipPort", formatInt(sc.LdapsPort))
		el.CreateAttr("enabled", formatBool(sc.EnableLdaps))
		el.CreateAttr("enableLdaps", formatBool(sc.EnableLdaps))
		refChild(el, "directoryService", "directoryService")
		refChild(el, "socketAcceptor", "socketAcceptor")
	}

	ldap := root.CreateElement(x.ldapTag())
	ldap.CreateAttr("id", x.ldapTag())
	ldap.CreateAttr("ipPort", formatInt(sc.LdapPort))
	ldap.CreateAttr("enabled", formatBool(sc.EnableLdap))
	writeLdapSettings(ldap, sc)
	refChild(ldap, "directoryService", "directoryService")
	refChild(ldap, "socketAcceptor", "socketAcceptor")
	if x.v == version.V152 {
		if sc.SupportedMechanisms != nil {
			se := ldap.CreateElement("supportedMechanisms")
			for _, m := range sc.SupportedMechanisms {
				se.CreateElement("s:value").SetText(m.Mechanism.String())
			}
		}
	} else {
		writeMechanismHandlers(ldap, sc.SupportedMechanisms)
	}
	if sc.SaslQops != nil {
		qe := ldap.CreateElement("saslQop")
		for _, q := range sc.SaslQops {
			qe.CreateElement("s:value").SetText(q.String())
		}
	}
	writeSaslRealms(ldap, sc.SaslRealms)
	writeExtendedOperations(ldap, sc.ExtendedOperations)

	ads := root.CreateElement("apacheDS")
	ads.CreateAttr("id", "apacheDS")
	ads.CreateAttr("synchPeriodMillis", fmt.Sprint(sc.SynchronizationPeriod))
	ads.CreateAttr("allowAnonymousAccess", formatBool(sc.AllowAnonymousAccess))
	refChild(ads, "directoryService", "directoryService")
	refChild(ads, x.ldapTag(), x.ldapTag())
	refChild(ads, x.ldapsID(), x.ldapsID())

	if x.hasContextEntries() {
		for _, p := range sc.Partitions {
			writeContextEntryBean(root, p)
		}
	}
	writeXbeanEditorConfigurer(root)

	return serialize(doc, x.indent)
}

func newXbeanDocument(ns string) (*etree.Document, *etree.Element) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement("spring:beans")
	root.CreateAttr("xmlns:spring", nsXbeanSpring)
	root.CreateAttr("xmlns:s", nsSpringBeans)
	root.CreateAttr("xmlns", ns)
	return doc, root
}

// refChild adds a child element referencing a bean by "#id".
func refChild(el *etree.Element, tag, id string) {
	el.CreateElement(tag).SetText("#" + id)
}

func writeDirectoryServiceChildren(
	dds *etree.Element,
	sc *model.ServerConfiguration,
	contextEntries bool,
) {
	if sys := sc.SystemPartition(); sys != nil {
		writeJdbmPartition(dds.CreateElement("systemPartition"), sys, contextEntries)
	}
	pe := dds.CreateElement("partitions")
	for _, p := range sc.UserPartitions() {
		writeJdbmPartition(pe, p, contextEntries)
	}

	if sc.Interceptors == nil {
		return
	}
	ie := dds.CreateElement("interceptors")
	for _, it := range sc.Interceptors {
		var found bool
		for _, xi := range xbeanInterceptors {
			if xi.interceptor == it {
				ie.CreateElement(xi.tag)
				found = true
				break
			}
		}
		if !found {
			slog.Debug("Interceptor is not written", "interceptor", it)
		}
	}
}

func writeJdbmPartition(parent *etree.Element, p *model.Partition, contextEntry bool) {
	jp := parent.CreateElement("jdbmPartition")
	jp.CreateAttr("id", p.ID)
	jp.CreateAttr("cacheSize", formatInt(p.CacheSize))
	jp.CreateAttr("suffix", p.Suffix)
	jp.CreateAttr("optimizerEnabled", formatBool(p.EnableOptimizer))
	jp.CreateAttr("syncOnWrite", formatBool(p.SynchronizationOnWrite))

	if p.IndexedAttributes != nil {
		ie := jp.CreateElement("indexedAttributes")
		for _, ia := range p.IndexedAttributes {
			ji := ie.CreateElement("jdbmIndex")
			ji.CreateAttr("attributeId", ia.AttributeID)
			ji.CreateAttr("cacheSize", formatInt(ia.CacheSize))
		}
	}
	if contextEntry {
		jp.CreateElement("contextEntry").SetText("#" + contextEntryID(p))
	}
}

func contextEntryID(p *model.Partition) string {
	return p.ID + "ContextEntry"
}

// writeContextEntryBean writes the factory bean that creates the
// context entry of a partition.
func writeContextEntryBean(root *etree.Element, p *model.Partition) {
	bean := root.CreateElement("s:bean")
	bean.CreateAttr("id", contextEntryID(p))
	bean.CreateAttr("class", classMethodInvoking)

	target := bean.CreateElement("s:property")
	target.CreateAttr("name", "targetObject")
	target.CreateElement("s:ref").CreateAttr("local", "directoryService")

	method := bean.CreateElement("s:property")
	method.CreateAttr("name", "targetMethod")
	method.CreateElement("s:value").SetText("newEntry")

	args := bean.CreateElement("s:property")
	args.CreateAttr("name", "arguments")
	list := args.CreateElement("s:list")
	var entry string
	if p.ContextEntry != nil {
		entry = p.ContextEntry.String()
	}
	list.CreateElement("s:value").SetText(entry)
	list.CreateElement("s:value").SetText(p.Suffix)
}

func writeXbeanEditorConfigurer(root *etree.Element) {
	bean := root.CreateElement("s:bean")
	bean.CreateAttr("class", classEditorConfigurer)
	prop := bean.CreateElement("s:property")
	prop.CreateAttr("name", "customEditors")
	entry := prop.CreateElement("s:map").CreateElement("s:entry")
	entry.CreateAttr("key", "javax.naming.directory.Attributes")
	entry.CreateElement("s:bean").CreateAttr("class", classAttributesEditor)
}

func writeLdapSettings(ldap *etree.Element, sc *model.ServerConfiguration) {
	ldap.CreateAttr("allowAnonymousAccess", formatBool(sc.AllowAnonymousAccess))
	ldap.CreateAttr("saslHost", sc.SaslHost)
	ldap.CreateAttr("saslPrincipal", sc.SaslPrincipal)
	ldap.CreateAttr("searchBaseDn", sc.SearchBaseDn)
	ldap.CreateAttr("maxTimeLimit", formatInt(sc.MaxTimeLimit))
	ldap.CreateAttr("maxSizeLimit", formatInt(sc.MaxSizeLimit))
}

func writeMechanismHandlers(ldap *etree.Element, mechs []model.SupportedMechanism) {
	if mechs == nil {
		return
	}
	he := ldap.CreateElement("saslMechanismHandlers")
	for _, sm := range mechs {
		for _, mh := range mechanismHandlers {
			if mh.mechanism != sm.Mechanism {
				continue
			}
			el := he.CreateElement(mh.tag)
			el.CreateAttr("mech-name", sm.Mechanism.String())
			if sm.NtlmProviderFqcn != "" {
				el.CreateAttr("ntlmProviderFqcn", sm.NtlmProviderFqcn)
			}
			break
		}
	}
}

func writeSaslRealms(ldap *etree.Element, realms []string) {
	if realms == nil {
		return
	}
	re := ldap.CreateElement("saslRealms")
	for _, r := range realms {
		re.CreateElement("s:value").SetText(r)
	}
}

func writeExtendedOperations(ldap *etree.Element, ops []model.ExtendedOperation) {
	if ops == nil {
		return
	}
	ee := ldap.CreateElement("extendedOperationHandlers")
	for _, op := range ops {
		for _, et := range extendedOperationTags {
			if et.op == op {
				ee.CreateElement(et.tag)
				break
			}
		}
	}
}
