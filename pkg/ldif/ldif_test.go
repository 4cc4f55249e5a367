package ldif_test

import (
	"testing"

	"github.com/gnames/dsconf/pkg/ldif"
	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"
)

// TestParse verifies parsing of context entry lines.
func TestParse(t *testing.T) {
	tests := []struct {
		msg   string
		in    string
		names []string
		res   map[string][]string
	}{
		{
			msg:   "single line",
			in:    "dc: example",
			names: []string{"dc"},
			res:   map[string][]string{"dc": {"example"}},
		},
		{
			msg: "repeated names accumulate",
			in: `objectClass: top
objectClass: domain
objectClass: extensibleObject
dc: example`,
			names: []string{"objectClass", "dc"},
			res: map[string][]string{
				"objectClass": {"top", "domain", "extensibleObject"},
				"dc":          {"example"},
			},
		},
		{
			msg:   "blank and indented lines",
			in:    "\n   objectClass: top\n\n   ou: system  \n",
			names: []string{"objectClass", "ou"},
			res: map[string][]string{
				"objectClass": {"top"},
				"ou":          {"system"},
			},
		},
		{
			msg:   "malformed lines are skipped",
			in:    "no colon here\n: value\nbad name: x\nou: users",
			names: []string{"ou"},
			res:   map[string][]string{"ou": {"users"}},
		},
		{
			msg:   "base64 value",
			in:    "description:: aGVsbG8gd29ybGQ=",
			names: []string{"description"},
			res:   map[string][]string{"description": {"hello world"}},
		},
		{
			msg:   "broken base64 is skipped",
			in:    "description:: ***\ncn: x",
			names: []string{"cn"},
			res:   map[string][]string{"cn": {"x"}},
		},
		{
			msg:   "names are case-insensitive",
			in:    "objectClass: top\nobjectclass: domain",
			names: []string{"objectClass"},
			res:   map[string][]string{"objectClass": {"top", "domain"}},
		},
		{
			msg:   "empty value",
			in:    "description:",
			names: []string{"description"},
			res:   map[string][]string{"description": {""}},
		},
		{
			msg:   "windows line ends",
			in:    "dc: a\r\nou: b\r\n",
			names: []string{"dc", "ou"},
			res:   map[string][]string{"dc": {"a"}, "ou": {"b"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			attrs := ldif.Parse(tt.in)
			assert.Equal(t, tt.names, attrs.Names())
			assert.Equal(t, tt.res, attrs.Map())
		})
	}
}

func TestParseEmpty(t *testing.T) {
	attrs := ldif.Parse("")
	assert.NotNil(t, attrs)
	assert.Equal(t, 0, attrs.Len())
	assert.Equal(t, "", attrs.String())
}

func TestAttributesGet(t *testing.T) {
	attrs := ldif.Parse("objectClass: top\ndc: example")
	assert.Equal(t, []string{"top"}, attrs.Get("OBJECTCLASS"))
	assert.Nil(t, attrs.Get("ou"))

	var none *ldif.Attributes
	assert.Nil(t, none.Get("dc"))
	assert.Equal(t, 0, none.Len())
	assert.Nil(t, none.Clone())
}

// TestString verifies that rendered attributes parse back unchanged.
func TestString(t *testing.T) {
	in := "objectClass: top\nobjectClass: domain\ndc: example\n"
	attrs := ldif.Parse(in)
	assert.Equal(t, in, attrs.String())
	assert.Equal(t, attrs, ldif.Parse(attrs.String()))
}

func TestClone(t *testing.T) {
	attrs := ldif.Parse("dc: example")
	cl := attrs.Clone()
	assert.Equal(t, attrs, cl)
	cl.Add("ou", "users")
	assert.Equal(t, 1, attrs.Len())
	assert.Equal(t, 2, cl.Len())
}

func TestMarshalYAML(t *testing.T) {
	attrs := ldif.Parse("objectClass: top\ndc: example\ndescription: 123")
	bs, err := yaml.Marshal(attrs)
	assert.NoError(t, err)
	assert.Equal(t,
		"objectClass:\n    - top\ndc:\n    - example\ndescription:\n    - \"123\"\n",
		string(bs),
	)
}
