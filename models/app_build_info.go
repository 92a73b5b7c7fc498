// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

const unknownBuildValue = "N/A"

// AppBuildInfo identifies the daemon or console binary. The values come
// from -ldflags and any of them may be empty in a dev build.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: strings.TrimSpace(buildVersion),
		buildDate:    strings.TrimSpace(buildDate),
		buildCommit:  strings.TrimSpace(buildCommit),
	}
}

// BuildVersion is empty when the binary was built without a version.
func (a AppBuildInfo) BuildVersion() string { return a.buildVersion }

func (a AppBuildInfo) BuildDate() string { return a.buildDate }

func (a AppBuildInfo) BuildCommit() string { return a.buildCommit }

// String renders the banner both binaries print on start, one value per
// line, with N/A for unknown values.
func (a AppBuildInfo) String() string {
	var b strings.Builder
	for _, line := range [][2]string{
		{"Build version", a.buildVersion},
		{"Build date", a.buildDate},
		{"Build commit", a.buildCommit},
	} {
		v := line[1]
		if v == "" {
			v = unknownBuildValue
		}
		b.WriteString(line[0] + ": " + v + "\n")
	}
	return b.String()
}
