// internal/passes/legal.go
package passes

import (
	"errors"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"
)

// ---- LICENSE NOTICES ----

// Named license notices; {0} stands for the programme name.
// Any other configured value is used as the notice text itself.
const (
	LicenseGPL3      = "gpl3+"
	LicenseUnlicense = "unlicense"
)

var licenseNotices = map[string]string{
	LicenseGPL3: `This file is part of {0}.

{0} is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

{0} is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with {0}.  If not, see <https://www.gnu.org/licenses/>.`,

	LicenseUnlicense: `This file is part of {0}.

This is free and unencumbered software released into the public domain.

Anyone is free to copy, modify, publish, use, compile, sell, or
distribute this software, either in source code form or as a compiled
binary, for any purpose, commercial or non-commercial, and by any
means.

In jurisdictions that recognize copyright laws, the author or authors
of this software dedicate any and all copyright interest in the
software to the public domain. We make this dedication for the benefit
of the public at large and to the detriment of our heirs and
successors. We intend this dedication to be an overt act of
relinquishment in perpetuity of all present and future rights to this
software under copyright law.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.
IN NO EVENT SHALL THE AUTHORS BE LIABLE FOR ANY CLAIM, DAMAGES OR
OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE,
ARISING FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR
OTHER DEALINGS IN THE SOFTWARE.

For more information, please refer to <http://unlicense.org/>`,
}

// LegalOptions configures the copyright and license notice.
type LegalOptions struct {
	// CopyrightString opens every copyright line and marks the block
	// comment that holds the notice.
	CopyrightString string
	ProgrammeName   string

	// LicenseNotice is LicenseGPL3, LicenseUnlicense or literal text.
	LicenseNotice string

	Preamble  string
	Postamble string

	// Aliases maps a commit author name to the name printed in the notice.
	Aliases map[string]string
}

// Contribution is one commit touching a file.
type Contribution struct {
	Author string
	Year   string
}

// ---- PASS ----

// Legal keeps a copyright and license comment at the head of every file.
// The first block comment containing the copyright string is replaced;
// without one, the notice is prepended.
type Legal struct {
	copyright string
	programme string
	license   string
	preamble  string
	postamble string
	aliases   map[string]string

	// history lists the commits of a file; nil when unknown.
	history func(path string) []Contribution
}

func NewLegal(o LegalOptions) (Legal, error) {
	if o.CopyrightString == "" {
		return Legal{}, errors.New("copyright string required")
	}
	if strings.Contains(o.CopyrightString, "*/") {
		return Legal{}, errors.New("copyright string must not close a comment")
	}

	license, ok := licenseNotices[o.LicenseNotice]
	if !ok {
		license = o.LicenseNotice
	}
	if license == "" {
		return Legal{}, errors.New("license notice required")
	}

	return Legal{
		copyright: o.CopyrightString,
		programme: o.ProgrammeName,
		license:   license,
		preamble:  o.Preamble,
		postamble: o.Postamble,
		aliases:   o.Aliases,
		history:   gitHistory,
	}, nil
}

func (Legal) Name() string { return NameLegal }

func (l Legal) Apply(f File) (string, error) {
	notice := l.Notice(f.Path)

	if start, end, ok := l.find(f.Content); ok {
		return f.Content[:start] + notice + f.Content[end:], nil
	}
	return notice + "\n\n" + f.Content, nil
}

// Notice renders the complete comment for path, delimiters included.
func (l Legal) Notice(path string) string {
	var b strings.Builder

	b.WriteString("/*")
	if l.preamble != "" {
		b.WriteString("\n" + l.preamble)
	}
	b.WriteString("\n" + l.copyrightLines(path) + "\n\n")
	b.WriteString(strings.ReplaceAll(l.license, "{0}", l.programme))
	if l.postamble != "" {
		b.WriteString("\n" + l.postamble)
	}
	b.WriteString("\n*/")

	return b.String()
}

// copyrightLines prints one line per author with the sorted years they
// committed in, or the bare copyright string without history.
func (l Legal) copyrightLines(path string) string {
	years := map[string][]string{}
	for _, c := range l.history(path) {
		author := c.Author
		if alias, ok := l.aliases[author]; ok {
			author = alias
		}
		years[author] = append(years[author], c.Year)
	}
	if len(years) == 0 {
		return l.copyright
	}

	lines := make([]string, 0, len(years))
	for author, ys := range years {
		slices.Sort(ys)
		ys = slices.Compact(ys)
		lines = append(lines, l.copyright+" "+strings.Join(ys, ", ")+" "+author)
	}
	slices.Sort(lines)

	return strings.Join(lines, "\n")
}

// find locates the first block comment whose copyright string comes
// before its terminator. end is just past the `*/`.
func (l Legal) find(content string) (start, end int, ok bool) {
	pos := 0
	for {
		i := strings.Index(content[pos:], "/*")
		if i < 0 {
			return 0, 0, false
		}
		start = pos + i

		mark := strings.Index(content[start:], l.copyright)
		closing := strings.Index(content[start:], "*/")

		switch {
		case mark >= 0 && closing >= 0 && mark < closing:
			return start, start + closing + 2, true
		case closing >= 0:
			pos = start + closing
		case mark >= 0:
			pos = start + mark
		default:
			return 0, 0, false
		}
		pos = max(pos, start+1)
	}
}

// ---- HISTORY ----

// gitHistory asks git for the authors of path, following renames.
// Any failure, such as a file outside a repository, yields no history.
func gitHistory(path string) []Contribution {
	cmd := exec.Command("git", "--no-pager", "log",
		"--pretty=format:%an|%ad", "--date=format:%Y",
		"--follow", "--", filepath.Base(path))
	cmd.Dir = filepath.Dir(path)

	out, err := cmd.Output()
	if err != nil {
		return nil
	}
	return parseHistory(string(out))
}

// parseHistory reads `author|year` lines; malformed lines are skipped.
func parseHistory(out string) []Contribution {
	var cs []Contribution
	for _, line := range strings.Split(out, "\n") {
		author, year, ok := strings.Cut(strings.TrimSpace(line), "|")
		if !ok || author == "" || year == "" {
			continue
		}
		cs = append(cs, Contribution{Author: author, Year: year})
	}
	return cs
}
