// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"cmp"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/slices"
)

const (
	InputMissingId Id = iota + 1
	ToolFailedId
	ExecutableNotFoundId
	RepeatCountRequiresIncrementId
	InvalidRepeatCountId
	InvalidTimeId
	ConfigLoadFailedId
	TaskFileInvalidId
)

type (
	Id int

	MarkdownMsg string

	HttpLink string

	Issue struct {
		id       Id          // ID used to lookup the issue
		name     string      // stable kebab-case name used on the command line
		mdMsg    MarkdownMsg // Markdown text that will be rendered
		docLinks []HttpLink
	}
)

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) Name() string {
	return i.name
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

// Render renders the issue as terminal Markdown using the given glamour
// style ("dark", "light", "notty", or a path to a JSON style).
func (i *Issue) Render(stylePath string) (string, error) {
	md := string(i.mdMsg)
	if len(i.docLinks) > 0 {
		md += "\n\n## See also\n"
		for _, link := range i.docLinks {
			md += "- <" + string(link) + ">\n"
		}
	}
	return render(md, stylePath)
}

var (
	render = glamour.Render

	inputMissingIssue = &Issue{
		id:   InputMissingId,
		name: "input-missing",
		mdMsg: `
# No file name matched the input

The TIMETAG input file does not exist, or it is a directory. inttag.e was
not started and the command exited with status 2.

## Things you can try:
- Check the spelling of the file name, including the ` + "`_tag.fits`" + ` suffix
- Run the command from the directory holding the event list, or pass an absolute path
~~~
$ stistools inttag od8k51igq_tag.fits od8k51igq_out.fits
~~~`,
	}

	toolFailedIssue = &Issue{
		id:   ToolFailedId,
		name: "tool-failed",
		mdMsg: `
# inttag.e reported a failure

The integration tool ran but exited with a non-zero status. The command
exits with status 1 whatever the tool's own code was.

## Things you can try:
- Re-run with ` + "`-v`" + ` to see the tool's status and its own messages
- Check that the input is a TIMETAG EVENTS table and that the output can be written
- Check that the start time falls inside the exposure`,
	}

	executableNotFoundIssue = &Issue{
		id:   ExecutableNotFoundId,
		name: "executable-not-found",
		mdMsg: `
# inttag.e was not found

The wrapper could not start the compiled integration tool.

## Things you can try:
- Install the STIS calibration binaries and add their directory to PATH
- Or set the executable explicitly:
~~~cue
inttag: {
	executable: "/opt/stsci/bin/inttag.e"
}
~~~`,
	}

	repeatCountRequiresIncrementIssue = &Issue{
		id:   RepeatCountRequiresIncrementId,
		name: "rcount-requires-increment",
		mdMsg: `
# A repeat count needs an increment

With a repeat count above 1, inttag.e reads the increment from its fourth
positional argument, so the increment must be given.

~~~
$ stistools inttag --increment 5 -r 3 in_tag.fits out.fits
~~~`,
	}

	invalidRepeatCountIssue = &Issue{
		id:   InvalidRepeatCountId,
		name: "invalid-rcount",
		mdMsg: `
# The repeat count must be positive

The repeat count is the number of image sets to write. Use 1 (the default)
for a single image.`,
	}

	invalidTimeIssue = &Issue{
		id:   InvalidTimeId,
		name: "invalid-time",
		mdMsg: `
# Start time and increment must be positive

Both values are seconds. Leave the start time out to begin at the first GTI
START time, and leave the increment out to integrate up to the last GTI STOP.`,
	}

	configLoadFailedIssue = &Issue{
		id:   ConfigLoadFailedId,
		name: "config-load-failed",
		mdMsg: `
# Failed to load configuration!

The configuration file could not be read or did not match the schema.

## Things you can try:
- Print the effective configuration:
~~~
$ stistools config show
~~~
- Recreate the defaults:
~~~
$ stistools config init
~~~`,
	}

	taskFileInvalidIssue = &Issue{
		id:   TaskFileInvalidId,
		name: "task-file-invalid",
		mdMsg: `
# The task file is invalid

Task files hold the keyword form of an inttag run.

~~~cue
input:     "od8k51igq_tag.fits"
output:    "od8k51igq_out.fits"
starttime: 10.0
increment: 5.0
rcount:    3
verbose:   true
highres:   false
allevents: false
~~~

YAML, TOML and JSON files with the same keys are accepted too.`,
	}

	issues = map[Id]*Issue{
		inputMissingIssue.Id():                 inputMissingIssue,
		toolFailedIssue.Id():                   toolFailedIssue,
		executableNotFoundIssue.Id():           executableNotFoundIssue,
		repeatCountRequiresIncrementIssue.Id(): repeatCountRequiresIncrementIssue,
		invalidRepeatCountIssue.Id():           invalidRepeatCountIssue,
		invalidTimeIssue.Id():                  invalidTimeIssue,
		configLoadFailedIssue.Id():             configLoadFailedIssue,
		taskFileInvalidIssue.Id():              taskFileInvalidIssue,
	}
)

// Values returns every issue ordered by Id.
func Values() []*Issue {
	vals := make([]*Issue, 0, len(issues))
	for _, i := range issues {
		vals = append(vals, i)
	}
	slices.SortFunc(vals, func(a, b *Issue) int { return cmp.Compare(a.id, b.id) })
	return vals
}

func Get(id Id) *Issue {
	return issues[id]
}

// Lookup finds an issue by its command-line name.
func Lookup(name string) (*Issue, bool) {
	for _, i := range issues {
		if i.name == name {
			return i, true
		}
	}
	return nil, false
}
