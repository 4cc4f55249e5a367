package serverxml

import (
	"strings"

	"github.com/gnames/dsconf/pkg/contenttype"
	"github.com/gnames/dsconf/pkg/version"
)

// Detect guesses the schema version of a document. Versions 1.5.5 and
// 1.5.6 share the 1.5.4 format and are never returned.
func Detect(data []byte) (version.Version, error) {
	if contenttype.IsValid(data) {
		if (&flatIO{v: version.V151}).IsValid(data) {
			return version.V151, nil
		}
		return version.V150, nil
	}

	if (&v157IO{}).IsValid(data) {
		return version.V157, nil
	}

	root := lenientRoot(data)
	if root == nil || !strings.EqualFold(root.Tag, "beans") ||
		root.SelectElement("apacheDS") == nil {
		return version.Unknown, UndetectedVersionError()
	}

	if root.SelectElement("ldapService") != nil {
		return version.V154, nil
	}

	var hasHandlers, hasMechList bool
	for _, ldap := range root.SelectElements("ldapServer") {
		if ldap.SelectElement("saslMechanismHandlers") != nil {
			hasHandlers = true
		}
		if ldap.SelectElement("supportedMechanisms") != nil {
			hasMechList = true
		}
	}
	switch {
	case hasHandlers:
		return version.V153, nil
	case hasMechList:
		return version.V152, nil
	case root.SelectElement("ldapServer") != nil:
		return version.V153, nil
	}
	return version.V152, nil
}
