// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.SessionKey == "" || cfg.App.MaxUploadSize == 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if err := cfg.Storage.Results.validate(); err != nil {
		return err
	}

	return nil
}

func (r Results) validate() error {
	switch r.Mode {
	case ResultsModeLocal:
		if r.MaxCost <= 0 {
			return ErrInvalidStorageConfigs
		}
	case ResultsModeRemote:
		if r.Address == "" {
			return ErrInvalidStorageConfigs
		}
	default:
		return ErrInvalidStorageConfigs
	}

	if r.TTL <= 0 {
		return ErrInvalidStorageConfigs
	}

	return nil
}

func (a Adapter) validate() error {
	if a.HTTPAddress == "" || a.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
