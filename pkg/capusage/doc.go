// doc.go - documentation
// SPDX-License-Identifier: GPL-3.0-or-later

// Package capusage renders help and usage text for a
// github.com/tidycli/cap/pkg/capparser.Config. It never touches argv or
// does any parsing; it is pure presentation over a frozen configuration.
package capusage
