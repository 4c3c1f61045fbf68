package extract

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"text/template"
)

// POTHeader fills the header entry of a PO template.
type POTHeader struct {
	PackageName      string
	MsgidBugsAddress string
	CreationDate     string
}

const potTemplateData = `# SOME DESCRIPTIVE TITLE.
# Copyright (C) YEAR THE PACKAGE'S COPYRIGHT HOLDER
# This file is distributed under the same license as the PACKAGE package.
# FIRST AUTHOR <EMAIL@ADDRESS>, YEAR.
#
#, fuzzy
msgid ""
msgstr ""
"Project-Id-Version: {{ or .Header.PackageName "PACKAGE" }}\n"
{{ if .Header.MsgidBugsAddress -}}
"Report-Msgid-Bugs-To: {{ .Header.MsgidBugsAddress }}\n"
{{ end -}}
"POT-Creation-Date: {{ .Header.CreationDate }}\n"
"PO-Revision-Date: YEAR-MO-DA HO:MI+ZONE\n"
"Last-Translator: FULL NAME <EMAIL@ADDRESS>\n"
"Language-Team: LANGUAGE <LL@li.org>\n"
"Language: \n"
"MIME-Version: 1.0\n"
"Content-Type: text/plain; charset=UTF-8\n"
"Content-Transfer-Encoding: 8bit\n"
{{ range .Messages -}}
{{ "\n" -}}
{{ .Positions -}}
msgid {{ .Msgid }}
msgstr ""
{{end -}}
`

var potTemplate = template.Must(template.New("pot").Parse(potTemplateData))

type potMessage struct {
	key       string
	Msgid     string
	Positions string
}

func quoteMsgid(msg string) string {
	if len(msg) == 0 {
		return `""`
	}

	quoted := []string{`""`}
	for _, line := range strings.SplitAfter(msg, "\n") {
		if len(line) == 0 {
			continue
		}
		quoted = append(quoted, strconv.Quote(line))
	}

	if len(quoted) == 2 {
		return quoted[1]
	}
	return strings.Join(quoted, "\n")
}

// WritePOT writes occs as a gettext PO template, one message per distinct
// key in the order first found, or sorted by key if sorted is set. Each
// message lists the positions it was found at.
func WritePOT(w io.Writer, occs []Occurrence, header POTHeader, sorted bool) error {
	var messages []*potMessage
	byKey := make(map[string]*potMessage)
	lines := make(map[*potMessage]string)
	for _, occ := range occs {
		msg, ok := byKey[occ.Key]
		if !ok {
			msg = &potMessage{key: occ.Key, Msgid: quoteMsgid(occ.Key)}
			byKey[occ.Key] = msg
			messages = append(messages, msg)
		}

		pos := fmt.Sprintf("%s:%d", occ.File, occ.Line)
		if len(lines[msg])+len(pos) > 75 {
			msg.Positions += "#:" + lines[msg] + "\n"
			lines[msg] = ""
		}
		lines[msg] += " " + pos
	}
	for _, msg := range messages {
		if len(lines[msg]) > 0 {
			msg.Positions += "#:" + lines[msg] + "\n"
		}
	}

	if sorted {
		sort.Slice(messages, func(i, j int) bool {
			return messages[i].key < messages[j].key
		})
	}

	return potTemplate.Execute(w, struct {
		Header   POTHeader
		Messages []*potMessage
	}{
		Header:   header,
		Messages: messages,
	})
}
