// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// enum is a helper for generating boilerplate related to Go enums.
//
// To generate boilerplate for a given file, use
//
//	//go:generate go run github.com/bufbuild/oxyjs/internal/enum kind.yaml
//
// The YAML file must contain an array of the Enum type defined in this
// package. The generated code is written to a .go file with the same name as
// the YAML file, in the package named by $GOPACKAGE.
//
//nolint:revive // We use _ in field names to disambiguate them from methods, while still exporting them.
package main

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"go/format"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"
)

// generator is the name written into the "Code generated" line.
const generator = "github.com/bufbuild/oxyjs/internal/enum"

type Enum struct {
	Name    string   `yaml:"name"`  // The name of the new type.
	Type    string   `yaml:"type"`  // The underlying type.
	Docs    string   `yaml:"docs"`  // Documentation for the type.
	Total   string   `yaml:"total"` // The name of a "total values" constant.
	Methods []Method `yaml:"methods"`
	Values_ []Value  `yaml:"values"`
}

func (e *Enum) Values() []Value {
	for i := range e.Values_ {
		e.Values_[i].Parent = e
		e.Values_[i].Idx = i
	}
	return e.Values_
}

// check reports mistakes that would otherwise only show up when compiling
// the generated file.
func (e *Enum) check() error {
	if e.Name == "" || e.Type == "" {
		return errors.New("enum needs a name and a type")
	}
	if len(e.Values_) == 0 {
		return fmt.Errorf("%s: no values", e.Name)
	}
	names := make(map[string]bool)
	strs := make(map[string]string)
	for _, v := range e.Values_ {
		if names[v.Name] {
			return fmt.Errorf("%s: duplicate value %s", e.Name, v.Name)
		}
		names[v.Name] = true
		if v.Alias != "" {
			if !names[v.Alias] {
				return fmt.Errorf("%s: %s aliases %s, which must be declared before it", e.Name, v.Name, v.Alias)
			}
			continue
		}
		if prev, ok := strs[v.String()]; ok {
			return fmt.Errorf("%s: %s and %s have the same string %q", e.Name, prev, v.Name, v.String())
		}
		strs[v.String()] = v.Name
	}
	for _, m := range e.Methods {
		if _, err := m.Name(); err != nil {
			return fmt.Errorf("%s: %w", e.Name, err)
		}
		for _, skip := range m.Skip {
			if !names[skip] {
				return fmt.Errorf("%s: cannot skip unknown value %s", e.Name, skip)
			}
		}
	}
	return nil
}

type Value struct {
	Name    string `yaml:"name"`   // The name of the value.
	Alias   string `yaml:"alias"`  // Another value this value aliases, if any.
	String_ string `yaml:"string"` // The string representation of this value.
	Docs    string `yaml:"docs"`   // Documentation for the value.

	Parent *Enum `yaml:"-"`
	Idx    int   `yaml:"-"`
}

// HasSuffixDocs returns whether this value's docs fit on the same line as
// the value itself.
func (v Value) HasSuffixDocs() bool {
	if v.Docs == "" || strings.Contains(v.Docs, "\n") {
		return false
	}
	next := v.Idx + 1
	return next >= len(v.Parent.Values_) || v.Parent.Values_[next].Docs != ""
}

func (v Value) String() string {
	if v.String_ == "" {
		return v.Name
	}
	return v.String_
}

type Method struct {
	Kind  MethodKind `yaml:"kind"` // The kind of method to generate.
	Name_ string     `yaml:"name"` // The method's name; optional for some methods.
	Docs_ string     `yaml:"docs"` // Documentation for the method.
	Skip  []string   `yaml:"skip"` // Enum values to ignore in this method.
}

func (m Method) Name() (string, error) {
	if m.Name_ != "" {
		return m.Name_, nil
	}

	switch m.Kind {
	case MethodFromString:
		return "", fmt.Errorf("missing name for kind: %#v", MethodFromString)
	case MethodGoString:
		return "GoString", nil
	case MethodString:
		return "String", nil
	default:
		return "", fmt.Errorf("unexpected kind: %#v", m.Kind)
	}
}

func (m Method) Docs() string {
	if m.Docs_ != "" {
		return m.Docs_
	}

	switch m.Kind {
	case MethodGoString:
		return "GoString implements [fmt.GoStringer]."
	case MethodString:
		return "String implements [fmt.Stringer]."
	default:
		return ""
	}
}

type MethodKind string

const (
	MethodString     MethodKind = "string"
	MethodGoString   MethodKind = "go-string"
	MethodFromString MethodKind = "from-string"
)

//go:embed enum.go.tmpl
var tmplText string

var tmpl = template.Must(template.New("enum.go.tmpl").Funcs(template.FuncMap{
	"makeDocs": makeDocs,
	"contains": slices.Contains[[]string],
}).Parse(tmplText))

// makeDocs converts a data into doc comments.
func makeDocs(data, indent string) string {
	if data == "" {
		return ""
	}

	var out strings.Builder
	for _, line := range strings.Split(strings.TrimSpace(data), "\n") {
		out.WriteString(indent)
		if line == "" {
			out.WriteString("//\n")
			continue
		}
		out.WriteString("// ")
		out.WriteString(line)
		out.WriteString("\n")
	}
	return out.String()
}

// input is the data the template is executed with.
type input struct {
	Binary, Package, Config string
	YAML                    []Enum
}

// parse decodes a YAML config. Unknown keys are rejected.
func parse(r io.Reader) ([]Enum, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var enums []Enum
	if err := dec.Decode(&enums); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	for i := range enums {
		if err := enums[i].check(); err != nil {
			return nil, err
		}
	}
	return enums, nil
}

// generate renders enums as gofmt-ed Go source.
func generate(pkg, config string, enums []Enum) ([]byte, error) {
	var buf bytes.Buffer
	err := tmpl.Execute(&buf, input{
		Binary:  generator,
		Package: pkg,
		Config:  config,
		YAML:    enums,
	})
	if err != nil {
		return nil, err
	}
	out, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("generated invalid code: %w", err)
	}
	return out, nil
}

func Main(config string) error {
	if filepath.Ext(config) != ".yaml" {
		return errors.New("file argument must end in .yaml")
	}
	pkg := os.Getenv("GOPACKAGE")
	if pkg == "" {
		return errors.New("$GOPACKAGE is not set; run this with go generate")
	}

	f, err := os.Open(config)
	if err != nil {
		return err
	}
	defer f.Close()
	enums, err := parse(f)
	if err != nil {
		return err
	}

	out, err := generate(pkg, filepath.Base(config), enums)
	if err != nil {
		return err
	}
	return os.WriteFile(strings.TrimSuffix(config, ".yaml")+".go", out, 0o644) //nolint:gosec // Generated code is not secret.
}

func main() {
	var failed bool
	for _, config := range os.Args[1:] {
		if err := Main(config); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", config, err)
			failed = true
		}
	}

	if failed {
		os.Exit(1)
	}
}
