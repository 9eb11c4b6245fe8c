// Package web embeds the form templates and static assets served by the
// spendtrack server.
package web

import "embed"

// TemplatesFS holds the page and fragment templates.
//
//go:embed templates/*.html
var TemplatesFS embed.FS

// StaticFS holds css/js assets.
//
//go:embed static/*
var StaticFS embed.FS
