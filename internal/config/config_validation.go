// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.Backend != BackendMemory && cfg.Storage.Backend != BackendMongoDB {
		return ErrInvalidStorageConfigs
	}

	if cfg.Storage.Backend == BackendMongoDB && cfg.Storage.MongoURI == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.Address == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.App.AdminUsername == "" || cfg.App.AdminPassword == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}
