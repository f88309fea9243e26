package main

import (
	. "github.com/saylorsolutions/modmake"
)

const (
	appName         = "nodehash"
	appPath         = "cmd/nodehash"
	nodehashVersion = "0.1.0"
)

type target struct {
	os, arch string
}

// releaseTargets are the platforms a nodehash release is built for.
// Peers commonly run on small ARM boards, so both ARM flavors are included for Linux.
var releaseTargets = []target{
	{"linux", "amd64"},
	{"linux", "arm64"},
	{"linux", "arm"},
	{"darwin", "amd64"},
	{"darwin", "arm64"},
	{"windows", "amd64"},
}

func main() {
	b := NewBuild()
	b.Generate().DependsOnRunner("tidy", "", Go().ModTidy())

	app := NewAppBuild(appName, appPath, nodehashVersion)
	app.Build(func(gb *GoBuild) {
		gb.
			StripDebugSymbols().
			SetVariable("main", "version", nodehashVersion).
			CgoEnabled(false)
	})
	for _, t := range releaseTargets {
		app.Variant(t.os, t.arch)
	}
	b.ImportApp(app)

	b.Execute()
}
