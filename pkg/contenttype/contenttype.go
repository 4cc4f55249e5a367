// Package contenttype sniffs whether a document is an ApacheDS server.xml.
package contenttype

import (
	"github.com/beevik/etree"
)

// ServerStartupClass is the class of the "configuration" bean that marks
// a server.xml document.
const ServerStartupClass = "org.apache.directory.server.configuration.MutableServerStartupConfiguration"

// IsValid reports whether data is an XML document with a top-level bean
// "configuration" of ServerStartupClass. It never fails: malformed input
// is reported as invalid.
func IsValid(data []byte) bool {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return false
	}
	root := doc.Root()
	if root == nil {
		return false
	}

	for _, bean := range root.SelectElements("bean") {
		if bean.SelectAttrValue("id", "") != "configuration" {
			continue
		}
		return bean.SelectAttrValue("class", "") == ServerStartupClass
	}
	return false
}
