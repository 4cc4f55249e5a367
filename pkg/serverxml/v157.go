package serverxml

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"
	"github.com/gnames/dsconf/pkg/model"
	"github.com/gnames/dsconf/pkg/version"
)

// v157IO handles 1.5.7 documents. Servers declare their ports in
// transports, there is no thread pool and no apacheDS element.
type v157IO struct {
	settings
}

func (*v157IO) Version() version.Version {
	return version.V157
}

// IsValid checks that the root declares the 1.5.7 namespace.
func (*v157IO) IsValid(data []byte) bool {
	root := lenientRoot(data)
	if root == nil || !strings.EqualFold(root.Tag, "beans") {
		return false
	}
	for _, a := range root.Attr {
		isNS := a.Space == "xmlns" || (a.Space == "" && a.Key == "xmlns")
		if isNS && a.Value == nsApacheDSV157 {
			return true
		}
	}
	return false
}

func (v *v157IO) Parse(data []byte) (*model.ServerConfiguration, error) {
	root, err := readRoot(data)
	if err != nil {
		return nil, err
	}
	res := model.New(version.V157)

	dds, err := readDirectoryService(root, res, false)
	if err != nil {
		return nil, err
	}
	a := newAttrs(dds)
	res.SynchronizationPeriod = int64(a.integer("syncPeriodMillis"))
	if a.err != nil {
		return nil, a.err
	}

	for _, srv := range xbeanServers {
		enabled, port := srv.get(res)
		if err = readTransportServer(root, srv.tag, enabled, port); err != nil {
			return nil, err
		}
	}

	if err = readV157Ldap(root, res); err != nil {
		return nil, err
	}
	restrictVariants(res)
	return res, nil
}

// readTransportServer enables a server by its presence and takes the port
// of its TCP transport.
func readTransportServer(root *etree.Element, tag string, enabled *bool, port *int) error {
	el := root.SelectElement(tag)
	if el == nil {
		return nil
	}
	*enabled = true

	var tcp *etree.Element
	if te := el.SelectElement("transports"); te != nil {
		tcp = te.SelectElement("tcpTransport")
	}
	if tcp == nil {
		return StructuralError("tcpTransport", tag)
	}
	a := newAttrs(tcp)
	*port = a.integer("port")
	return a.err
}

func readV157Ldap(root *etree.Element, sc *model.ServerConfiguration) error {
	ldap := root.SelectElement("ldapServer")
	if ldap == nil {
		return nil
	}
	if err := readLdapSettings(newAttrs(ldap), sc); err != nil {
		return err
	}

	te := ldap.SelectElement("transports")
	if te == nil {
		return StructuralError("transports", ldap.Tag)
	}
	for _, tcp := range te.SelectElements("tcpTransport") {
		a := newAttrs(tcp)
		port := a.integer("port")
		ssl := a.optBoolean("enableSSL", false)
		if a.err != nil {
			return a.err
		}
		if ssl {
			sc.EnableLdaps = true
			sc.LdapsPort = port
		} else {
			sc.EnableLdap = true
			sc.LdapPort = port
		}
	}

	sc.SupportedMechanisms = readMechanismHandlers(ldap)
	sc.SaslRealms = readSaslRealms(ldap)
	sc.ExtendedOperations = readExtendedOperations(ldap)
	return nil
}

func (v *v157IO) ToXML(sc *model.ServerConfiguration) (string, error) {
	doc, root := newXbeanDocument(nsApacheDSV157)

	dds := root.CreateElement("defaultDirectoryService")
	dds.CreateAttr("id", "directoryService")
	dds.CreateAttr("instanceId", "default")
	dds.CreateAttr("replicaId", "1")
	dds.CreateAttr("workingDirectory", "example.com")
	dds.CreateAttr("allowAnonymousAccess", formatBool(sc.AllowAnonymousAccess))
	dds.CreateAttr("accessControlEnabled", formatBool(sc.EnableAccessControl))
	dds.CreateAttr("denormalizeOpAttrsEnabled", formatBool(sc.DenormalizeOpAttr))
	dds.CreateAttr("syncPeriodMillis", fmt.Sprint(sc.SynchronizationPeriod))
	dds.CreateAttr("maxPDUSize", "2000000")
	writeDirectoryServiceChildren(dds, sc, false)

	for _, srv := range xbeanServers {
		enabled, port := srv.get(sc)
		if !*enabled {
			continue
		}
		el := root.CreateElement(srv.tag)
		el.CreateAttr("id", srv.tag)
		te := el.CreateElement("transports")
		for _, tag := range []string{"tcpTransport", "udpTransport"} {
			t := te.CreateElement(tag)
			t.CreateAttr("port", formatInt(*port))
			t.CreateAttr("nbThreads", srv.nbThreads)
			t.CreateAttr("backLog", "50")
		}
		refChild(el, "directoryService", "directoryService")
	}

	ldap := root.CreateElement("ldapServer")
	ldap.CreateAttr("id", "ldapServer")
	writeLdapSettings(ldap, sc)
	refChild(ldap, "directoryService", "directoryService")
	te := ldap.CreateElement("transports")
	if sc.EnableLdap {
		t := te.CreateElement("tcpTransport")
		t.CreateAttr("address", "0.0.0.0")
		t.CreateAttr("port", formatInt(sc.LdapPort))
		t.CreateAttr("nbThreads", "8")
		t.CreateAttr("backLog", "50")
		t.CreateAttr("enableSSL", "false")
	}
	if sc.EnableLdaps {
		t := te.CreateElement("tcpTransport")
		t.CreateAttr("address", "localhost")
		t.CreateAttr("port", formatInt(sc.LdapsPort))
		t.CreateAttr("nbThreads", "8")
		t.CreateAttr("backLog", "50")
		t.CreateAttr("enableSSL", "true")
	}
	writeMechanismHandlers(ldap, sc.SupportedMechanisms)
	writeSaslRealms(ldap, sc.SaslRealms)
	writeExtendedOperations(ldap, sc.ExtendedOperations)

	return serialize(doc, v.indent)
}
