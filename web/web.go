// Package web embeds the static dashboard front end.
package web

import "embed"

//go:embed dist
var DistFS embed.FS
