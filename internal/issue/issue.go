// SPDX-License-Identifier: EPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	ManifestNotFoundId Id = iota + 1
	ManifestParseErrorId
	ConfigLoadFailedId
	InvalidRewriteRuleId
	ReportWriteFailedId
	NoModulesSelectedId
)

type MarkdownMsg string

type HttpLink string

type Renderer interface {
	Render(in string, stylePath string) (string, error)
}

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink  // must never be empty, because we need to have docs about all issue types
	extLinks []HttpLink  // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		extraMd += "\n\n"
		extraMd += "## See also: "
		for _, link := range i.docLinks {
			extraMd += "- [" + string(link) + "]"
		}
		for _, link := range i.extLinks {
			extraMd += "- [" + string(link) + "]"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	manifestNotFoundIssue = &Issue{
		id: ManifestNotFoundId,
		mdMsg: `
# No helpmod manifest found!

We searched for a helpmod manifest but couldn't find one in the given paths.

## What we look for:
- A file named ` + "`helpmod.cue`" + `
- Files ending in ` + "`.helpmod.cue`" + ` (e.g. ` + "`files.helpmod.cue`" + `)

## Things you can try:
- Create a starter manifest in your current directory:
~~~
$ helplint init
~~~

- Or point at the directory that holds your manifests:
~~~
$ helplint check ./modules
~~~`,
	}

	manifestParseErrorIssue = &Issue{
		id: ManifestParseErrorId,
		mdMsg: `
# Failed to parse helpmod manifest!

Your manifest contains syntax errors or invalid declarations.

## Common issues:
- Invalid CUE syntax (missing quotes, braces, etc.)
- A parameter name written with its "--" marker (declare the bare name)
- Duplicate function or parameter names
- An empty module name

## Things you can try:
- Check the error message above for the specific field
- Run with verbose mode for more details:
~~~
$ helplint --verbose check ./modules
~~~

## Example of a valid manifest:
~~~cue
module: "files"

functions: [
	{
		name: "remove-item"
		synopsis: "Removes an item."
		description: "Removes a file or directory at the given path."
		inputs: ["string"]
		examples: ["remove-item --path /tmp/a"]
		parameters: [
			{name: "path", description: "The file path.", required: true},
		]
	},
]
~~~`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

Could not load the helplint configuration file.

## Configuration file locations:
- Linux: ~/.config/helplint/config.cue
- macOS: ~/Library/Application Support/helplint/config.cue
- Windows: %APPDATA%\helplint\config.cue

## Things you can try:
- Create a default configuration:
~~~
$ helplint config init
~~~

- Check the configuration syntax
- Remove the config file to use defaults:
~~~
$ rm ~/.config/helplint/config.cue
~~~

## Example configuration:
~~~cue
rewrite_rules: {
	path: [
		{search: "\\.$", replace: ""},
	]
}

consistency_exclusions: {
	path: ["legacy-item"]
}

ui: {
	color_scheme: "auto"
	verbose: false
}
~~~`,
	}

	invalidRewriteRuleIssue = &Issue{
		id: InvalidRewriteRuleId,
		mdMsg: `
# Invalid rewrite rule!

A rewrite rule's search pattern is not a valid regular expression.

## Things you can try:
- Check the pattern named in the error above
- Remember that CUE strings escape backslashes, so a literal dot is ` + "`\\\\.`" + `
- Test the pattern with a regex tool before committing it

## Example:
~~~cue
rewrite_rules: {
	path: [
		{search: "\\.$", replace: ""},       // strip trailing period
		{search: "removes", replace: "deletes"},
	]
}
~~~`,
	}

	reportWriteFailedIssue = &Issue{
		id: ReportWriteFailedId,
		mdMsg: `
# Failed to write the audit report!

The audit ran, but the report could not be written to disk.

## Common causes:
- The output directory does not exist and could not be created
- Permission denied on the output path
- The disk is full

## Things you can try:
- Check the output path and its permissions
- Choose a different location:
~~~
$ helplint check ./modules --output /tmp/help-audit.md
~~~`,
	}

	noModulesSelectedIssue = &Issue{
		id: NoModulesSelectedId,
		mdMsg: `
# Nothing to audit!

No module sources were selected for the audit.

## Things you can try:
- Pass one or more manifest paths or directories:
~~~
$ helplint check ./modules
~~~

- Audit helplint's own command tree:
~~~
$ helplint check --self
~~~`,
	}

	issues = map[Id]*Issue{
		manifestNotFoundIssue.Id():   manifestNotFoundIssue,
		manifestParseErrorIssue.Id(): manifestParseErrorIssue,
		configLoadFailedIssue.Id():   configLoadFailedIssue,
		invalidRewriteRuleIssue.Id(): invalidRewriteRuleIssue,
		reportWriteFailedIssue.Id():  reportWriteFailedIssue,
		noModulesSelectedIssue.Id():  noModulesSelectedIssue,
	}
)

func Values() []*Issue {
	return maps.Values(issues)
}

func Get(id Id) *Issue {
	return issues[id]
}
