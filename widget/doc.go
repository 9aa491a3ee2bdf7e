// SPDX-License-Identifier: Unlicense OR MIT

// Package widget implements common user interface controls. Widgets
// contain persistent state and process user events. Theme packages
// such as `widget/material` implements drawing of widgets.
package widget
