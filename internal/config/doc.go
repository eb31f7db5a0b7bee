// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading for yamlpad.
//
// Configuration is TOML, looked up at ~/.yamlpad/config.toml, with
// built-in defaults for every field so a missing file is not an
// error. Values are validated on load; invalid values fall back to
// their defaults rather than aborting startup.
package config
