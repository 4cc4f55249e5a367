package serverxml

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/beevik/etree"
	"github.com/gnames/dsconf/pkg/contenttype"
	"github.com/gnames/dsconf/pkg/ldif"
	"github.com/gnames/dsconf/pkg/model"
	"github.com/gnames/dsconf/pkg/version"
)

const (
	classPartition        = "org.apache.directory.server.core.partition.impl.btree.MutableBTreePartitionConfiguration"
	classIndex            = "org.apache.directory.server.core.partition.impl.btree.MutableIndexConfiguration"
	classInterceptor      = "org.apache.directory.server.core.configuration.MutableInterceptorConfiguration"
	classJdbmPartition    = "org.apache.directory.server.core.partition.impl.btree.jdbm.JdbmPartition"
	classProperties       = "org.springframework.beans.factory.config.PropertiesFactoryBean"
	classEditorConfigurer = "org.springframework.beans.factory.config.CustomEditorConfigurer"
	classAttributesEditor = "org.apache.directory.server.core.configuration.AttributesPropertyEditor"

	springDoctype = `DOCTYPE beans PUBLIC "-//SPRING//DTD BEAN//EN" "http://www.springframework.org/dtd/spring-beans.dtd"`

	envPrincipal   = "java.naming.security.principal"
	envCredentials = "java.naming.security.credentials"
	envBinary      = "java.naming.ldap.attributes.binary"
	envAuth        = "java.naming.security.authentication"
)

var flatInterceptors = []struct {
	interceptor model.Interceptor
	name        string
	class       string
}{
	{model.Normalization, "normalizationService", "org.apache.directory.server.core.normalization.NormalizationService"},
	{model.Authentication, "authenticationService", "org.apache.directory.server.core.authn.AuthenticationService"},
	{model.Referral, "referralService", "org.apache.directory.server.core.referral.ReferralService"},
	{model.AciAuthorization, "authorizationService", "org.apache.directory.server.core.authz.AuthorizationService"},
	{model.DefaultAuthorization, "defaultAuthorizationService", "org.apache.directory.server.core.authz.DefaultAuthorizationService"},
	{model.Exception, "exceptionService", "org.apache.directory.server.core.exception.ExceptionService"},
	{model.OperationalAttribute, "operationalAttributeService", "org.apache.directory.server.core.operational.OperationalAttributeService"},
	{model.Schema, "schemaService", "org.apache.directory.server.core.schema.SchemaService"},
	{model.Subentry, "subentryService", "org.apache.directory.server.core.subtree.SubentryService"},
	{model.CollectiveAttribute, "collectiveAttributeService", "org.apache.directory.server.core.collective.CollectiveAttributeService"},
	{model.Event, "eventService", "org.apache.directory.server.core.event.EventService"},
	{model.Trigger, "triggerService", "org.apache.directory.server.core.trigger.TriggerService"},
	{model.Replication, "replicationService", "org.apache.directory.mitosis.service.ReplicationService"},
}

var flatExtendedOperations = map[model.ExtendedOperation]string{
	model.StartTls:           "org.apache.directory.server.ldap.support.starttls.StartTlsHandler",
	model.GracefulShutdown:   "org.apache.directory.server.ldap.support.extended.GracefulShutdownHandler",
	model.LaunchDiagnosticUi: "org.apache.directory.server.ldap.support.extended.LaunchDiagnosticUiHandler",
}

// flatServers are the protocol beans of 1.5.1 documents.
var flatServers = []struct {
	id    string
	class string
	get   func(*model.ServerConfiguration) (*bool, *int)
}{
	{
		"changePasswordConfiguration",
		"org.apache.directory.server.changepw.ChangePasswordConfiguration",
		func(sc *model.ServerConfiguration) (*bool, *int) {
			return &sc.EnableChangePassword, &sc.ChangePasswordPort
		},
	},
	{
		"ntpConfiguration",
		"org.apache.directory.server.ntp.NtpConfiguration",
		func(sc *model.ServerConfiguration) (*bool, *int) { return &sc.EnableNtp, &sc.NtpPort },
	},
	{
		"dnsConfiguration",
		"org.apache.directory.server.dns.DnsConfiguration",
		func(sc *model.ServerConfiguration) (*bool, *int) { return &sc.EnableDns, &sc.DnsPort },
	},
	{
		"kdcConfiguration",
		"org.apache.directory.server.kdc.KdcConfiguration",
		func(sc *model.ServerConfiguration) (*bool, *int) { return &sc.EnableKerberos, &sc.KerberosPort },
	},
	{
		"ldapsConfiguration",
		"org.apache.directory.server.ldap.LdapConfiguration",
		func(sc *model.ServerConfiguration) (*bool, *int) { return &sc.EnableLdaps, &sc.LdapsPort },
	},
}

const classLdapConfiguration = "org.apache.directory.server.ldap.LdapConfiguration"

// flatIO handles the Spring bean dialect of 1.5.0 and 1.5.1.
type flatIO struct {
	v version.Version
	settings
}

func (f *flatIO) Version() version.Version {
	return f.v
}

// partitionKey is the property naming a partition, it was renamed from
// "name" to "id" in 1.5.1.
func (f *flatIO) partitionKey() string {
	if f.v == version.V150 {
		return "name"
	}
	return "id"
}

// IsValid looks for a partition bean named with the version's key.
func (f *flatIO) IsValid(data []byte) bool {
	root := lenientRoot(data)
	if root == nil {
		return false
	}
	for _, bean := range root.SelectElements("bean") {
		if bean.SelectAttrValue("class", "") != classPartition {
			continue
		}
		if _, ok := beanProperty(bean, f.partitionKey()); ok {
			return true
		}
	}
	return false
}

func (f *flatIO) Parse(data []byte) (*model.ServerConfiguration, error) {
	root, err := readRoot(data)
	if err != nil {
		return nil, err
	}

	res := model.New(f.v)
	res.EnableLdap = true
	readEnvironment(root, res)

	conf := beanByID(root, "configuration")
	if conf == nil {
		return nil, StructuralError("configuration", root.Tag)
	}
	if err = f.readConfiguration(root, conf, res); err != nil {
		return nil, err
	}

	if f.v == version.V151 {
		for _, srv := range flatServers {
			enabled, port := srv.get(res)
			if err = readFlatServer(root, srv.id, enabled, port); err != nil {
				return nil, err
			}
		}
		if err = f.readLdapConfiguration(root, res); err != nil {
			return nil, err
		}
	}

	restrictVariants(res)
	return res, nil
}

func readEnvironment(root *etree.Element, sc *model.ServerConfiguration) {
	env := beanByID(root, "environment")
	if env == nil {
		return
	}
	prop := env.SelectElement("property")
	if prop == nil {
		return
	}
	props := prop.SelectElement("props")
	if props == nil {
		return
	}
	for _, p := range props.SelectElements("prop") {
		val := strings.TrimSpace(p.Text())
		switch p.SelectAttrValue("key", "") {
		case envPrincipal:
			sc.Principal = val
		case envCredentials:
			sc.Password = val
		case envBinary:
			sc.BinaryAttributes = strings.Fields(val)
		}
	}
}

func (f *flatIO) readConfiguration(
	root, conf *etree.Element,
	sc *model.ServerConfiguration,
) error {
	pr := newProps(conf)
	pr.integer64("synchPeriodMillis", &sc.SynchronizationPeriod)
	pr.integer("maxThreads", &sc.MaxThreads)
	pr.boolean("allowAnonymousAccess", &sc.AllowAnonymousAccess)
	pr.boolean("accessControlEnabled", &sc.EnableAccessControl)
	pr.boolean("denormalizeOpAttrsEnabled", &sc.DenormalizeOpAttr)
	if f.v == version.V150 {
		pr.integer("ldapPort", &sc.LdapPort)
		pr.integer("maxTimeLimit", &sc.MaxTimeLimit)
		pr.integer("maxSizeLimit", &sc.MaxSizeLimit)
		pr.boolean("enableNtp", &sc.EnableNtp)
		pr.boolean("enableKerberos", &sc.EnableKerberos)
		pr.boolean("enableChangePassword", &sc.EnableChangePassword)
	}
	if pr.err != nil {
		return pr.err
	}

	sysID, ok := beanProperty(conf, "systemPartitionConfiguration")
	if !ok {
		return StructuralError("systemPartitionConfiguration", "configuration")
	}
	sys, err := f.readPartition(root, sysID, true)
	if err != nil {
		return err
	}
	sc.Partitions = []*model.Partition{sys}

	if prop := propertyElement(conf, "partitionConfigurations"); prop != nil {
		if set := prop.SelectElement("set"); set != nil {
			for _, ref := range set.SelectElements("ref") {
				id := ref.SelectAttrValue("bean", "")
				p, err := f.readPartition(root, id, false)
				if err != nil {
					return err
				}
				sc.Partitions = append(sc.Partitions, p)
			}
		}
	}

	sc.Interceptors = readFlatInterceptors(conf)
	if f.v == version.V150 {
		sc.ExtendedOperations = readFlatExtendedOperations(conf)
	}
	return nil
}

func (f *flatIO) readPartition(
	root *etree.Element,
	id string,
	system bool,
) (*model.Partition, error) {
	bean := beanByID(root, id)
	if bean == nil {
		return nil, StructuralError(id, root.Tag)
	}

	res := &model.Partition{SystemPartition: system}
	pr := newProps(bean)
	pr.str(f.partitionKey(), &res.ID)
	pr.integer("cacheSize", &res.CacheSize)
	pr.str("suffix", &res.Suffix)
	pr.boolean("optimizerEnabled", &res.EnableOptimizer)
	pr.boolean("synchOnWrite", &res.SynchronizationOnWrite)
	if pr.err != nil {
		return nil, pr.err
	}

	if prop := propertyElement(bean, "indexedAttributes"); prop != nil {
		res.IndexedAttributes = []model.IndexedAttribute{}
		if set := prop.SelectElement("set"); set != nil {
			for _, ib := range set.SelectElements("bean") {
				attrID, okID := beanProperty(ib, "attributeId")
				size, okSize := beanProperty(ib, "cacheSize")
				if !okID || !okSize {
					slog.Debug("Skipping incomplete indexed attribute", "partition", res.ID)
					continue
				}
				cacheSize, err := parseInt("cacheSize", size)
				if err != nil {
					return nil, err
				}
				res.IndexedAttributes = append(
					res.IndexedAttributes,
					model.IndexedAttribute{AttributeID: attrID, CacheSize: cacheSize},
				)
			}
		}
	}

	res.ContextEntry = ldif.NewAttributes()
	if prop := propertyElement(bean, "contextEntry"); prop != nil {
		if val := prop.SelectElement("value"); val != nil {
			res.ContextEntry = ldif.Parse(val.Text())
		}
	}
	return res, nil
}

func readFlatInterceptors(conf *etree.Element) []model.Interceptor {
	prop := propertyElement(conf, "interceptorConfigurations")
	if prop == nil {
		return nil
	}
	res := []model.Interceptor{}
	list := prop.SelectElement("list")
	if list == nil {
		return res
	}
	for _, bean := range list.SelectElements("bean") {
		class, _ := beanProperty(bean, "interceptorClassName")
		if ip := propertyElement(bean, "interceptor"); ip != nil {
			if ib := ip.SelectElement("bean"); ib != nil {
				class = ib.SelectAttrValue("class", "")
			}
		}
		name, _ := beanProperty(bean, "name")

		var found bool
		for _, fi := range flatInterceptors {
			if fi.class == class || (class == "" && fi.name == name) {
				res = append(res, fi.interceptor)
				found = true
				break
			}
		}
		if !found {
			slog.Debug("Skipping unknown interceptor", "name", name, "class", class)
		}
	}
	return res
}

func readFlatExtendedOperations(bean *etree.Element) []model.ExtendedOperation {
	prop := propertyElement(bean, "extendedOperationHandlers")
	if prop == nil {
		return nil
	}
	res := []model.ExtendedOperation{}
	list := prop.SelectElement("list")
	if list == nil {
		return res
	}
	for _, b := range list.SelectElements("bean") {
		class := b.SelectAttrValue("class", "")
		var found bool
		for _, op := range []model.ExtendedOperation{
			model.StartTls, model.GracefulShutdown, model.LaunchDiagnosticUi,
		} {
			if flatExtendedOperations[op] == class {
				res = append(res, op)
				found = true
			}
		}
		if !found {
			slog.Debug("Skipping unknown extended operation", "class", class)
		}
	}
	return res
}

func readFlatServer(root *etree.Element, id string, enabled *bool, port *int) error {
	bean := beanByID(root, id)
	if bean == nil {
		return nil
	}
	pr := newProps(bean)
	pr.boolean("enabled", enabled)
	pr.integer("ipPort", port)
	return pr.err
}

func (f *flatIO) readLdapConfiguration(root *etree.Element, sc *model.ServerConfiguration) error {
	bean := beanByID(root, "ldapConfiguration")
	if bean == nil {
		return nil
	}
	pr := newProps(bean)
	pr.integer("ipPort", &sc.LdapPort)
	pr.boolean("allowAnonymousAccess", &sc.AllowAnonymousAccess)
	pr.str("saslHost", &sc.SaslHost)
	pr.str("saslPrincipal", &sc.SaslPrincipal)
	pr.str("searchBaseDN", &sc.SearchBaseDn)
	pr.str("searchBaseDn", &sc.SearchBaseDn)
	pr.integer("maxTimeLimit", &sc.MaxTimeLimit)
	pr.integer("maxSizeLimit", &sc.MaxSizeLimit)
	if pr.err != nil {
		return pr.err
	}

	if vals, ok := listValues(bean, "supportedMechanisms"); ok {
		sc.SupportedMechanisms = []model.SupportedMechanism{}
		for _, v := range vals {
			m, ok := model.ParseMechanism(v)
			if !ok {
				slog.Debug("Skipping unknown SASL mechanism", "value", v)
				continue
			}
			sc.SupportedMechanisms = append(sc.SupportedMechanisms, model.SupportedMechanism{Mechanism: m})
		}
	}
	if vals, ok := listValues(bean, "saslQop"); ok {
		sc.SaslQops = []model.SaslQop{}
		for _, v := range vals {
			q, ok := model.ParseSaslQop(v)
			if !ok {
				slog.Debug("Skipping unknown SASL QOP", "value", v)
				continue
			}
			sc.SaslQops = append(sc.SaslQops, q)
		}
	}
	if vals, ok := listValues(bean, "saslRealms"); ok {
		sc.SaslRealms = vals
	}
	sc.ExtendedOperations = readFlatExtendedOperations(bean)
	return nil
}

func (f *flatIO) ToXML(sc *model.ServerConfiguration) (string, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	doc.CreateDirective(springDoctype)
	root := doc.CreateElement("beans")

	writeEnvironment(root, sc)

	conf := addBean(root, "configuration", contenttype.ServerStartupClass)
	addProperty(conf, "workingDirectory", "example.com")
	addProperty(conf, "synchPeriodMillis", fmt.Sprint(sc.SynchronizationPeriod))
	addProperty(conf, "maxThreads", formatInt(sc.MaxThreads))
	addProperty(conf, "allowAnonymousAccess", formatBool(sc.AllowAnonymousAccess))
	addProperty(conf, "accessControlEnabled", formatBool(sc.EnableAccessControl))
	addProperty(conf, "denormalizeOpAttrsEnabled", formatBool(sc.DenormalizeOpAttr))
	if f.v == version.V150 {
		addProperty(conf, "ldapPort", formatInt(sc.LdapPort))
		addProperty(conf, "maxTimeLimit", formatInt(sc.MaxTimeLimit))
		addProperty(conf, "maxSizeLimit", formatInt(sc.MaxSizeLimit))
		addProperty(conf, "enableNtp", formatBool(sc.EnableNtp))
		addProperty(conf, "enableKerberos", formatBool(sc.EnableKerberos))
		addProperty(conf, "enableChangePassword", formatBool(sc.EnableChangePassword))
	} else {
		addRefProperty(conf, "ldapConfiguration", "ldapConfiguration")
		for _, srv := range flatServers {
			addRefProperty(conf, srv.id, srv.id)
		}
	}

	var partitionBeans []*etree.Element
	if sys := sc.SystemPartition(); sys != nil {
		addRefProperty(conf, "systemPartitionConfiguration", "systemPartitionConfiguration")
		partitionBeans = append(partitionBeans, f.partitionBean(sys, "systemPartitionConfiguration"))
	}
	set := addProperty(conf, "partitionConfigurations", "").CreateElement("set")
	for _, p := range sc.UserPartitions() {
		id := p.ID + "PartitionConfiguration"
		set.CreateElement("ref").CreateAttr("bean", id)
		partitionBeans = append(partitionBeans, f.partitionBean(p, id))
	}

	if sc.Interceptors != nil {
		list := addProperty(conf, "interceptorConfigurations", "").CreateElement("list")
		for _, it := range sc.Interceptors {
			f.writeInterceptor(list, it)
		}
	}
	if f.v == version.V150 {
		writeFlatExtendedOperations(conf, sc.ExtendedOperations)
	} else {
		f.writeServers(root, sc)
	}

	for _, pb := range partitionBeans {
		root.AddChild(pb)
	}
	writeEditorConfigurer(root)

	return serialize(doc, f.indent)
}

func writeEnvironment(root *etree.Element, sc *model.ServerConfiguration) {
	env := addBean(root, "environment", classProperties)
	props := addProperty(env, "properties", "").CreateElement("props")
	addProp := func(key, val string) {
		p := props.CreateElement("prop")
		p.CreateAttr("key", key)
		p.SetText(val)
	}
	addProp(envAuth, "simple")
	addProp(envPrincipal, sc.Principal)
	addProp(envCredentials, sc.Password)
	if sc.BinaryAttributes != nil {
		addProp(envBinary, strings.Join(sc.BinaryAttributes, " "))
	}
}

func (f *flatIO) partitionBean(p *model.Partition, id string) *etree.Element {
	bean := etree.NewElement("bean")
	bean.CreateAttr("id", id)
	bean.CreateAttr("class", classPartition)
	addProperty(bean, f.partitionKey(), p.ID)
	if f.v == version.V151 {
		addProperty(bean, "partitionClassName", classJdbmPartition)
	}
	addProperty(bean, "cacheSize", formatInt(p.CacheSize))
	addProperty(bean, "suffix", p.Suffix)
	addProperty(bean, "optimizerEnabled", formatBool(p.EnableOptimizer))
	addProperty(bean, "synchOnWrite", formatBool(p.SynchronizationOnWrite))

	if p.IndexedAttributes != nil {
		set := addProperty(bean, "indexedAttributes", "").CreateElement("set")
		for _, ia := range p.IndexedAttributes {
			ib := set.CreateElement("bean")
			ib.CreateAttr("class", classIndex)
			addProperty(ib, "attributeId", ia.AttributeID)
			addProperty(ib, "cacheSize", formatInt(ia.CacheSize))
		}
	}
	if p.ContextEntry != nil {
		ce := addProperty(bean, "contextEntry", "")
		ce.CreateElement("value").SetText(p.ContextEntry.String())
	}
	return bean
}

func (f *flatIO) writeInterceptor(list *etree.Element, it model.Interceptor) {
	for _, fi := range flatInterceptors {
		if fi.interceptor != it {
			continue
		}
		bean := list.CreateElement("bean")
		bean.CreateAttr("class", classInterceptor)
		addProperty(bean, "name", fi.name)
		if f.v == version.V150 {
			ib := addProperty(bean, "interceptor", "").CreateElement("bean")
			ib.CreateAttr("class", fi.class)
		} else {
			addProperty(bean, "interceptorClassName", fi.class)
		}
		return
	}
	slog.Debug("Interceptor is not written", "version", f.v, "interceptor", it)
}

func writeFlatExtendedOperations(bean *etree.Element, ops []model.ExtendedOperation) {
	if ops == nil {
		return
	}
	list := addProperty(bean, "extendedOperationHandlers", "").CreateElement("list")
	for _, op := range ops {
		class, ok := flatExtendedOperations[op]
		if !ok {
			continue
		}
		list.CreateElement("bean").CreateAttr("class", class)
	}
}

func (f *flatIO) writeServers(root *etree.Element, sc *model.ServerConfiguration) {
	ldap := addBean(root, "ldapConfiguration", classLdapConfiguration)
	addProperty(ldap, "ipPort", formatInt(sc.LdapPort))
	addProperty(ldap, "allowAnonymousAccess", formatBool(sc.AllowAnonymousAccess))
	addProperty(ldap, "saslHost", sc.SaslHost)
	addProperty(ldap, "saslPrincipal", sc.SaslPrincipal)
	addProperty(ldap, "searchBaseDn", sc.SearchBaseDn)
	addProperty(ldap, "maxTimeLimit", formatInt(sc.MaxTimeLimit))
	addProperty(ldap, "maxSizeLimit", formatInt(sc.MaxSizeLimit))
	if sc.SupportedMechanisms != nil {
		vals := make([]string, len(sc.SupportedMechanisms))
		for i, m := range sc.SupportedMechanisms {
			vals[i] = m.Mechanism.String()
		}
		addListProperty(ldap, "supportedMechanisms", vals)
	}
	if sc.SaslQops != nil {
		vals := make([]string, len(sc.SaslQops))
		for i, q := range sc.SaslQops {
			vals[i] = q.String()
		}
		addListProperty(ldap, "saslQop", vals)
	}
	if sc.SaslRealms != nil {
		addListProperty(ldap, "saslRealms", sc.SaslRealms)
	}
	writeFlatExtendedOperations(ldap, sc.ExtendedOperations)

	for _, srv := range flatServers {
		enabled, port := srv.get(sc)
		bean := addBean(root, srv.id, srv.class)
		addProperty(bean, "enabled", formatBool(*enabled))
		addProperty(bean, "ipPort", formatInt(*port))
		if srv.id == "ldapsConfiguration" {
			addProperty(bean, "enableLdaps", "true")
		}
	}
}

func writeEditorConfigurer(root *etree.Element) {
	bean := root.CreateElement("bean")
	bean.CreateAttr("class", classEditorConfigurer)
	entry := addProperty(bean, "customEditors", "").
		CreateElement("map").
		CreateElement("entry")
	entry.CreateAttr("key", "javax.naming.directory.Attributes")
	entry.CreateElement("bean").CreateAttr("class", classAttributesEditor)
}

func beanByID(root *etree.Element, id string) *etree.Element {
	for _, bean := range root.SelectElements("bean") {
		if bean.SelectAttrValue("id", "") == id {
			return bean
		}
	}
	return nil
}

func propertyElement(bean *etree.Element, name string) *etree.Element {
	for _, p := range bean.SelectElements("property") {
		if p.SelectAttrValue("name", "") == name {
			return p
		}
	}
	return nil
}

// beanProperty returns the literal value or the reference of a property.
func beanProperty(bean *etree.Element, name string) (string, bool) {
	p := propertyElement(bean, name)
	if p == nil {
		return "", false
	}
	if at := p.SelectAttr("value"); at != nil {
		return at.Value, true
	}
	if at := p.SelectAttr("ref"); at != nil {
		return at.Value, true
	}
	if v := p.SelectElement("value"); v != nil {
		return strings.TrimSpace(v.Text()), true
	}
	return "", false
}

// listValues returns texts of property/list/value elements. The boolean
// is false when the property does not exist.
func listValues(bean *etree.Element, name string) ([]string, bool) {
	p := propertyElement(bean, name)
	if p == nil {
		return nil, false
	}
	res := []string{}
	list := p.SelectElement("list")
	if list == nil {
		return res, true
	}
	for _, v := range list.SelectElements("value") {
		res = append(res, strings.TrimSpace(v.Text()))
	}
	return res, true
}

func addBean(parent *etree.Element, id, class string) *etree.Element {
	bean := parent.CreateElement("bean")
	bean.CreateAttr("id", id)
	bean.CreateAttr("class", class)
	return bean
}

// addProperty creates a property element. An empty value leaves the
// property for nested content.
func addProperty(bean *etree.Element, name, value string) *etree.Element {
	p := bean.CreateElement("property")
	p.CreateAttr("name", name)
	if value != "" {
		p.CreateAttr("value", value)
	}
	return p
}

func addRefProperty(bean *etree.Element, name, ref string) {
	p := bean.CreateElement("property")
	p.CreateAttr("name", name)
	p.CreateAttr("ref", ref)
}

func addListProperty(bean *etree.Element, name string, vals []string) {
	list := addProperty(bean, name, "").CreateElement("list")
	for _, v := range vals {
		list.CreateElement("value").SetText(v)
	}
}

// props reads optional bean properties, a property that is absent
// leaves the destination untouched. The first error is kept.
type props struct {
	bean *etree.Element
	err  error
}

func newProps(bean *etree.Element) *props {
	return &props{bean: bean}
}

func (p *props) lookup(name string) (string, bool) {
	if p.err != nil {
		return "", false
	}
	return beanProperty(p.bean, name)
}

func (p *props) str(name string, dst *string) {
	if s, ok := p.lookup(name); ok {
		*dst = s
	}
}

func (p *props) boolean(name string, dst *bool) {
	s, ok := p.lookup(name)
	if !ok {
		return
	}
	*dst, p.err = parseBool(name, s)
}

func (p *props) integer(name string, dst *int) {
	s, ok := p.lookup(name)
	if !ok {
		return
	}
	*dst, p.err = parseInt(name, s)
}

func (p *props) integer64(name string, dst *int64) {
	var i int
	s, ok := p.lookup(name)
	if !ok {
		return
	}
	i, p.err = parseInt(name, s)
	*dst = int64(i)
}
