// Copyright (c) 2019 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package declfile reads RPC method declarations from YAML and TOML files.
//
// A declaration file holds a list of methods:
//
//	methods:
//	  - name: getinfo
//	    description: Returns basic information about the wallet.
//	    args:
//	      - name: verbose
//	        type: bool
//	        optional: true
//
// Argument types are the names of rpchelp.Type values, matched without regard
// to case.  An argument with an args list, even an empty one, is declared as a
// container and an argument without one as a scalar.
package declfile

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/decred/dcrhelp/errors"
	"github.com/decred/dcrhelp/rpchelp"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// File is the decoded form of a declaration file.
type File struct {
	Methods []Method `yaml:"methods" toml:"methods"`
}

// Method declares an RPC method.
type Method struct {
	Name        string   `yaml:"name" toml:"name" validate:"required,excludesall=/\\"`
	Description string   `yaml:"description" toml:"description" validate:"required"`
	Result      string   `yaml:"result" toml:"result"`
	Examples    []string `yaml:"examples" toml:"examples"`
	Args        []Arg    `yaml:"args" toml:"args"`
}

// Arg declares a method argument.  Summary is nil when no override is
// declared.  Args is nil for scalars.
type Arg struct {
	Name        string  `yaml:"name" toml:"name"`
	Type        string  `yaml:"type" toml:"type" validate:"required,argtype"`
	Optional    bool    `yaml:"optional" toml:"optional"`
	Summary     *string `yaml:"summary" toml:"summary"`
	Description string  `yaml:"description" toml:"description"`
	Args        *[]Arg  `yaml:"args" toml:"args"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	err := v.RegisterValidation("argtype", func(fl validator.FieldLevel) bool {
		_, ok := parseType(fl.Field().String())
		return ok
	})
	if err != nil {
		panic(err)
	}
	return v
}

func parseType(s string) (rpchelp.Type, bool) {
	return rpchelp.ParseType(strings.ToUpper(s))
}

// Load reads the declaration file at path.  The format is chosen by the file
// extension.
func Load(path string) ([]*rpchelp.Method, error) {
	const op errors.Op = "declfile.Load"
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.E(op, errors.IO, err)
	}
	methods, err := Parse(path, data)
	if err != nil {
		return nil, errors.E(op, err)
	}
	log.Debugf("Loaded %d method declarations from %s", len(methods), path)
	return methods, nil
}

// Parse decodes the declarations in data, read from a file named name.  Files
// ending in .yaml or .yml are decoded as YAML and files ending in .toml as
// TOML.  Unknown keys are rejected.
func Parse(name string, data []byte) ([]*rpchelp.Method, error) {
	const op errors.Op = "declfile.Parse"

	var f File
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil && err != io.EOF {
			return nil, errors.E(op, errors.Encoding, errors.Errorf("%s: %w", name, err))
		}
	case ".toml":
		md, err := toml.Decode(string(data), &f)
		if err != nil {
			return nil, errors.E(op, errors.Encoding, errors.Errorf("%s: %w", name, err))
		}
		if undecoded := md.Undecoded(); len(undecoded) != 0 {
			return nil, errors.E(op, errors.Encoding,
				errors.Errorf("%s: unknown key %s", name, undecoded[0]))
		}
	default:
		return nil, errors.E(op, errors.Invalid,
			errors.Errorf("%s: unknown declaration file extension %q", name, ext))
	}

	methods := make([]*rpchelp.Method, 0, len(f.Methods))
	for i := range f.Methods {
		m, err := f.Methods[i].build()
		if err != nil {
			return nil, errors.E(op, errors.Errorf("%s: %w", name, err))
		}
		methods = append(methods, m)
	}
	return methods, nil
}

func (d *Method) build() (*rpchelp.Method, error) {
	const op errors.Op = "declfile.build"
	if err := validate.Struct(d); err != nil {
		return nil, errors.E(op, errors.Invalid,
			errors.Errorf("method %q: %s", d.Name, validationMessage(err)))
	}

	args, err := buildArgs(d.Name, d.Args)
	if err != nil {
		return nil, err
	}
	return rpchelp.NewMethod(d.Name, d.Description, args,
		rpchelp.WithResult(d.Result), rpchelp.WithExamples(d.Examples...)), nil
}

func buildArgs(parent string, decls []Arg) ([]rpchelp.Arg, error) {
	args := make([]rpchelp.Arg, 0, len(decls))
	for i := range decls {
		a, err := decls[i].build(parent)
		if err != nil {
			return nil, err
		}
		args = append(args, a)
	}
	return args, nil
}

// build creates the descriptor of the argument.  parent is the dotted path of
// the enclosing method or argument.
func (d *Arg) build(parent string) (rpchelp.Arg, error) {
	const op errors.Op = "declfile.build"

	path := parent + "." + d.Name
	if d.Name == "" {
		path = parent + ".[]"
	}
	if err := validate.Struct(d); err != nil {
		return nil, errors.E(op, errors.Invalid,
			errors.Errorf("argument %s: %s", path, validationMessage(err)))
	}
	typ, _ := parseType(d.Type)

	var opts []rpchelp.Option
	if d.Summary != nil {
		opts = append(opts, rpchelp.WithSummary(*d.Summary))
	}
	if d.Description != "" {
		opts = append(opts, rpchelp.WithDescription(d.Description))
	}

	var a rpchelp.Arg
	var err error
	if d.Args == nil {
		a, err = rpchelp.NewScalar(d.Name, typ, d.Optional, opts...)
	} else {
		var children []rpchelp.Arg
		children, err = buildArgs(path, *d.Args)
		if err != nil {
			return nil, err
		}
		a, err = rpchelp.NewContainer(d.Name, typ, children, d.Optional, opts...)
	}
	if err != nil {
		return nil, errors.E(op, errors.Descriptor, errors.Errorf("argument %s: %w", path, err))
	}
	return a, nil
}

// validationMessage describes the failed struct validations of err.
func validationMessage(err error) string {
	var valErrs validator.ValidationErrors
	if !errors.As(err, &valErrs) {
		return err.Error()
	}
	messages := make([]string, 0, len(valErrs))
	for _, ve := range valErrs {
		var msg string
		switch ve.Tag() {
		case "required":
			msg = "required"
		case "excludesall":
			msg = "must not contain path separators"
		case "argtype":
			msg = "unknown type " + `"` + ve.Value().(string) + `"`
		default:
			msg = "failed " + ve.Tag() + " validation"
		}
		messages = append(messages, ve.Field()+": "+msg)
	}
	return strings.Join(messages, "; ")
}
