package extract

import (
	"bytes"

	"github.com/leonelquinteros/gotext"
	. "gopkg.in/check.v1"
)

func (extractSuite) TestWritePOT(c *C) {
	occs := []Occurrence{
		{"one line", "foo.go", 4},
		{"two\nlines", "file.go", 100},
		{"one line", "bar.go", 42},
		{"hello\tworld", "xxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxx.go", 10},
		{"hello\tworld", "yyyyyyyyyyyyyyyyyyyyyyyyyyyyyyyyyyyyyyyyyyyyyyyyyy.go", 20},
	}
	header := POTHeader{
		PackageName:      "testing",
		MsgidBugsAddress: "bugs@example.org",
		CreationDate:     "1970-01-01 TT:TT+00:00",
	}

	var buffer bytes.Buffer
	c.Assert(WritePOT(&buffer, occs, header, true), IsNil)

	const expectedPot = `# SOME DESCRIPTIVE TITLE.
# Copyright (C) YEAR THE PACKAGE'S COPYRIGHT HOLDER
# This file is distributed under the same license as the PACKAGE package.
# FIRST AUTHOR <EMAIL@ADDRESS>, YEAR.
#
#, fuzzy
msgid ""
msgstr ""
"Project-Id-Version: testing\n"
"Report-Msgid-Bugs-To: bugs@example.org\n"
"POT-Creation-Date: 1970-01-01 TT:TT+00:00\n"
"PO-Revision-Date: YEAR-MO-DA HO:MI+ZONE\n"
"Last-Translator: FULL NAME <EMAIL@ADDRESS>\n"
"Language-Team: LANGUAGE <LL@li.org>\n"
"Language: \n"
"MIME-Version: 1.0\n"
"Content-Type: text/plain; charset=UTF-8\n"
"Content-Transfer-Encoding: 8bit\n"

#: xxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxx.go:10
#: yyyyyyyyyyyyyyyyyyyyyyyyyyyyyyyyyyyyyyyyyyyyyyyyyy.go:20
msgid "hello\tworld"
msgstr ""

#: foo.go:4 bar.go:42
msgid "one line"
msgstr ""

#: file.go:100
msgid ""
"two\n"
"lines"
msgstr ""
`
	c.Check(buffer.String(), Equals, expectedPot)
}

func (extractSuite) TestWritePOTReadsBack(c *C) {
	occs := []Occurrence{
		{"Hello {name}!", "a.go", 1},
		{"Save", "a.go", 2},
	}
	var buffer bytes.Buffer
	c.Assert(WritePOT(&buffer, occs, POTHeader{}, false), IsNil)

	po := gotext.NewPo()
	po.Parse(buffer.Bytes())
	// Untranslated entries come back as their msgid.
	c.Check(po.Get("Hello {name}!"), Equals, "Hello {name}!")
	c.Check(po.Get("Save"), Equals, "Save")
}
