// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles centralizes the lipgloss styles used by the editor
// view so color choices live in one place. Colors are adaptive to
// light and dark terminal backgrounds.
package styles
