// Copyright 2026 The Dhall-Go Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package imports defines the payload the kernel's Embed node carries for
// an unresolved or resolved Dhall import. The kernel never interprets this
// payload — shift, subst, and normalize pass it through unchanged — so its
// shape is free to evolve without touching the normalizer.
package imports

import (
	digest "github.com/opencontainers/go-digest"
)

// Prefix distinguishes the kinds of local import path.
type Prefix int

const (
	// Here is a path relative to the importing file ("./foo").
	Here Prefix = iota
	// Parent is a path relative to the importing file's parent ("../foo").
	Parent
	// Home is a path relative to the user's home directory ("~/foo").
	Home
	// Absolute is a path rooted at the filesystem root ("/foo").
	Absolute
)

// Mode selects whether an import is parsed as Dhall code or slurped as raw
// text (the "as Text" import form).
type Mode int

const (
	// Code imports are parsed and normalized like any other expression.
	Code Mode = iota
	// RawText imports are embedded verbatim as a Dhall Text literal.
	RawText
)

// Location identifies where an import's bytes come from. Exactly one of
// the constructors below should be used to build a Location; the kernel
// never inspects which one.
type Location struct {
	kind kindTag

	// Local fields.
	LocalPrefix Prefix
	Path        []string // path components, already split on '/'

	// Remote fields (reserved; resolution is out of scope for the kernel).
	URL string

	// Env fields (reserved).
	EnvName string
}

type kindTag int

const (
	kindLocal kindTag = iota
	kindRemote
	kindEnv
	kindMissing
)

// LocalImport builds a Location for a filesystem-relative import.
func LocalImport(prefix Prefix, path []string) Location {
	return Location{kind: kindLocal, LocalPrefix: prefix, Path: path}
}

// RemoteImport builds a Location for an http(s) import. Resolution of the
// URL is an external collaborator's responsibility; the kernel only ever
// carries the descriptor.
func RemoteImport(url string) Location {
	return Location{kind: kindRemote, URL: url}
}

// EnvImport builds a Location for an environment-variable import.
func EnvImport(name string) Location {
	return Location{kind: kindEnv, EnvName: name}
}

// MissingImport builds a Location for the `missing` keyword, which always
// fails to resolve and exists to be caught by `?` (ImportAlt).
func MissingImport() Location {
	return Location{kind: kindMissing}
}

// IsLocal, IsRemote, IsEnv, and IsMissing report which Location variant l
// holds.
func (l Location) IsLocal() bool   { return l.kind == kindLocal }
func (l Location) IsRemote() bool  { return l.kind == kindRemote }
func (l Location) IsEnv() bool     { return l.kind == kindEnv }
func (l Location) IsMissing() bool { return l.kind == kindMissing }

// Descriptor is the payload carried by an Embed node: enough information
// to resolve an import, without performing the resolution.
type Descriptor struct {
	Location Location
	Hash     digest.Digest // zero value ("") means no integrity check requested
	Mode     Mode
}

// HasHash reports whether d pins an expected digest.
func (d Descriptor) HasHash() bool { return d.Hash != "" }
