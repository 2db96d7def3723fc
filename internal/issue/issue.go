// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/slices"
)

type Id int

const (
	ConfigLoadFailedId Id = iota + 1
	UnknownInstallTypeId
	InstallPathNotFoundId
	ExecutableNotFoundId
	NoLaunchPathId
	InstallationNotRegisteredId
)

type MarkdownMsg string

type HttpLink string

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink
	extLinks []HttpLink // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

// Title returns the page heading without its markdown marker and
// trailing punctuation.
func (i *Issue) Title() string {
	for line := range strings.SplitSeq(string(i.mdMsg), "\n") {
		if heading, ok := strings.CutPrefix(strings.TrimSpace(line), "# "); ok {
			return strings.TrimRight(heading, "!.")
		}
	}
	return ""
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

// Render renders the issue page with the given glamour style ("dark",
// "light", "notty" or a path to a JSON style file).
func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		extraMd += "\n\n## See also:\n"
		for _, link := range i.docLinks {
			extraMd += "- [" + string(link) + "](" + string(link) + ")\n"
		}
		for _, link := range i.extLinks {
			extraMd += "- [" + string(link) + "](" + string(link) + ")\n"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

Your smm configuration file could not be read or does not match the schema.

## Things you can try:
- Check the file for CUE syntax errors (missing quotes, braces, commas)
- Compare it with the default configuration:
~~~
$ smm config init
$ smm config show
~~~
- Every entry in 'installations' needs a 'path', a 'type' and a 'launcher'
- Paths in 'installations' and 'custom_installs' must be unique`,
		extLinks: []HttpLink{"https://cuelang.org/docs/"},
	}

	unknownInstallTypeIssue = &Issue{
		id: UnknownInstallTypeId,
		mdMsg: `
# Unknown install type!

The install type has no matching build target. Known install types are:

| Install type     | Target        |
|------------------|---------------|
| windows          | Windows       |
| windows-client   | Windows       |
| windows-server   | WindowsServer |
| linux-server     | LinuxServer   |

## Things you can try:
- Check the spelling of the install type (it is case-sensitive)
- Resolve leniently with the launcher that manages the installation:
~~~
$ smm target <install-type> --launcher Custom
~~~`,
	}

	installPathNotFoundIssue = &Issue{
		id: InstallPathNotFoundId,
		mdMsg: `
# Installation directory not found!

The path given for the installation does not exist or is not a directory.

## Things you can try:
- Use the game's root directory, the one containing 'FactoryGame'
- Quote paths that contain spaces:
~~~
$ smm install add "D:/Games/Satisfactory Early Access"
~~~`,
	}

	executableNotFoundIssue = &Issue{
		id: ExecutableNotFoundId,
		mdMsg: `
# Game executable not found!

No game executable was found in the installation directory, so the game
cannot be launched through Steam.

## Locations that are checked:
- FactoryGame/Binaries/Win64/FactoryGame-Win64-Shipping.exe
- FactoryGame/Binaries/Win64/FactoryGame.exe
- FactoryGame.exe
- FactoryGameSteam.exe

## Things you can try:
- Verify the game files are complete
- Re-add the installation after fixing its layout:
~~~
$ smm install add <path>
~~~`,
	}

	noLaunchPathIssue = &Issue{
		id: NoLaunchPathId,
		mdMsg: `
# No launch command for this installation!

The installation does not declare how the game should be started.

## Things you can try:
- Add a 'launch_path' to the installation entry in your config file:
~~~cue
installations: [{
	path:        "/games/satisfactory"
	type:        "windows-client"
	launcher:    "Steam"
	launch_path: ["steam", "steam://rungameid/526870"]
}]
~~~`,
	}

	installationNotRegisteredIssue = &Issue{
		id: InstallationNotRegisteredId,
		mdMsg: `
# Installation not registered!

smm only launches installations it knows about.

## Things you can try:
- List the known installations:
~~~
$ smm install list
~~~
- Register a manually installed copy of the game:
~~~
$ smm install add <path>
~~~`,
	}

	issues = map[Id]*Issue{
		configLoadFailedIssue.Id():          configLoadFailedIssue,
		unknownInstallTypeIssue.Id():        unknownInstallTypeIssue,
		installPathNotFoundIssue.Id():       installPathNotFoundIssue,
		executableNotFoundIssue.Id():        executableNotFoundIssue,
		noLaunchPathIssue.Id():              noLaunchPathIssue,
		installationNotRegisteredIssue.Id(): installationNotRegisteredIssue,
	}
)

// Values returns every registered issue, sorted by Id.
func Values() []*Issue {
	values := make([]*Issue, 0, len(issues))
	for _, i := range issues {
		values = append(values, i)
	}
	slices.SortFunc(values, func(a, b *Issue) int { return int(a.id) - int(b.id) })
	return values
}

// Get returns the issue registered for id, or nil.
func Get(id Id) *Issue {
	return issues[id]
}
