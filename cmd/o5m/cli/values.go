// Copyright 2026 the original author or authors.
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

package cli

import (
	"github.com/spf13/pflag"

	"m4o.io/o5m"
)

// -- o5m.Format Value
type formatValue struct {
	value *o5m.Format
	set   *bool
}

// NewFormatValue creates a cobra Value object for an o5m.Format.  set
// reports whether the flag was given.
func NewFormatValue(p *o5m.Format, set *bool) pflag.Value {
	return &formatValue{value: p, set: set}
}

func (f *formatValue) Set(val string) error {
	v, err := o5m.ParseFormat(val)
	if err != nil {
		return err
	}

	*f.value = v
	*f.set = true

	return nil
}

func (f *formatValue) Type() string {
	return "format"
}

func (f *formatValue) String() string {
	if f.set == nil || !*f.set {
		return ""
	}

	return f.value.String()
}

// -- o5m.Compression Value
type compressionValue struct {
	value *o5m.Compression
	set   *bool
}

// NewCompressionValue creates a cobra Value object for an o5m.Compression.
func NewCompressionValue(p *o5m.Compression, set *bool) pflag.Value {
	return &compressionValue{value: p, set: set}
}

func (c *compressionValue) Set(val string) error {
	v, err := o5m.ParseCompression(val)
	if err != nil {
		return err
	}

	*c.value = v
	*c.set = true

	return nil
}

func (c *compressionValue) Type() string {
	return "compression"
}

func (c *compressionValue) String() string {
	if c.set == nil || !*c.set {
		return ""
	}

	return c.value.String()
}
