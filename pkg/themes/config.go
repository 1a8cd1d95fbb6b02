package themes

import (
	"strings"

	theme "github.com/goliatone/go-theme"
)

// RendererConfig flattens a selection into the renderer configuration.
// Variant tokens, templates and asset files override the manifest base;
// fallbacks fill partial keys neither defines. Every token is exposed as a
// CSS custom property named "--<token>".
func RendererConfig(selection *theme.Selection, fallbacks map[string]string) *theme.RendererConfig {
	if selection == nil || selection.Manifest == nil {
		return nil
	}
	manifest := selection.Manifest
	variant := manifest.Variants[selection.Variant]

	partials := make(map[string]string, len(fallbacks)+len(manifest.Templates))
	mergeInto(partials, fallbacks)
	mergeInto(partials, manifest.Templates)
	mergeInto(partials, variant.Templates)

	tokens := make(map[string]string, len(manifest.Tokens))
	mergeInto(tokens, manifest.Tokens)
	mergeInto(tokens, variant.Tokens)

	cssVars := make(map[string]string, len(tokens))
	for key, value := range tokens {
		cssVars["--"+key] = value
	}

	files := make(map[string]string, len(manifest.Assets.Files))
	mergeInto(files, manifest.Assets.Files)
	mergeInto(files, variant.Assets.Files)
	prefix := manifest.Assets.Prefix
	if variant.Assets.Prefix != "" {
		prefix = variant.Assets.Prefix
	}

	return &theme.RendererConfig{
		Theme:    selection.Theme,
		Variant:  selection.Variant,
		Partials: partials,
		Tokens:   tokens,
		CSSVars:  cssVars,
		AssetURL: assetResolver(prefix, files),
	}
}

func assetResolver(prefix string, files map[string]string) func(string) string {
	prefix = strings.TrimRight(prefix, "/")
	return func(key string) string {
		file, ok := files[key]
		if !ok || file == "" {
			return ""
		}
		if strings.HasPrefix(file, "/") || strings.Contains(file, "://") {
			return file
		}
		return prefix + "/" + file
	}
}

func mergeInto(dst, src map[string]string) {
	for key, value := range src {
		dst[key] = value
	}
}
