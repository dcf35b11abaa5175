// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"reflect"

	"github.com/caarlos0/env/v11"
	"github.com/inhies/go-bytesize"
)

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [StructuredConfig] and its nested types. Byte sizes such as
// "10MB" are parsed with go-bytesize.
func parseEnv(cfg any) error {
	err := env.ParseWithOptions(cfg, env.Options{
		FuncMap: map[reflect.Type]env.ParserFunc{
			reflect.TypeOf(bytesize.ByteSize(0)): func(v string) (any, error) {
				return bytesize.Parse(v)
			},
		},
	})
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
