//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package version holds the build-time version string for the engine,
// reported via the -version flag and the UCI "id name" response.
package version

// these are overridden at build time via
//  -ldflags "-X github.com/frankkopp/FrankyGo/internal/version.appVersion=1.2.3 -X .../version.gitBranch=... -X .../version.gitCommit=... -X .../version.buildTime=..."
var (
	appVersion = "0.1.0"
	gitBranch  = "unknown"
	gitCommit  = "unknown"
	buildTime  = "unknown"
)

// Version returns the engine's semantic version string.
func Version() string {
	return appVersion
}

// Info returns a multi-line string with detailed build information.
func Info() string {
	return "Version:    " + appVersion + "\n" +
		"Git Branch: " + gitBranch + "\n" +
		"Git Commit: " + gitCommit + "\n" +
		"Build Time: " + buildTime
}
