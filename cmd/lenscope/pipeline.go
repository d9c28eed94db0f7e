package main

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"sync"

	"github.com/lexcodex/lenscope/lens"
	"github.com/lexcodex/lenscope/lsp"
)

type resolvedLens struct {
	lens    *lens.Lens
	result  lens.LensResult
	outcome lens.Outcome
}

// descriptorFor picks the language server for a file: user-configured
// entries first, then the built-in registry.
func descriptorFor(cfg *lens.Config, file, language string) (lsp.Descriptor, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(file)), ".")
	for _, sc := range cfg.Servers {
		if language != "" && sc.Language != language {
			continue
		}
		if language == "" && !hasExtension(sc.Extensions, ext) {
			continue
		}
		return lsp.Descriptor{
			ID:         sc.Language,
			Command:    sc.Command,
			Args:       sc.Args,
			LanguageID: sc.Language,
			Extensions: sc.Extensions,
		}, nil
	}
	if language == "" {
		language = lsp.InferLanguage(file)
	}
	desc, ok := lsp.Lookup(language)
	if !ok {
		return lsp.Descriptor{}, fmt.Errorf("no language server known for %q", file)
	}
	return desc, nil
}

func hasExtension(exts []string, ext string) bool {
	for _, known := range exts {
		if known == ext {
			return true
		}
	}
	return false
}

// scanFile runs the whole pipeline once: start the server, fetch the symbol
// tree, place anchors, resolve every lens. Resolutions run concurrently,
// each under its own cancellable context, so one slow or failing query
// never holds up the rest.
func scanFile(ctx context.Context, cfg *lens.Config, root, file, language string, logger *log.Logger) ([]resolvedLens, error) {
	desc, err := descriptorFor(cfg, file, language)
	if err != nil {
		return nil, err
	}
	client, err := desc.Start(root)
	if err != nil {
		return nil, err
	}
	defer client.Close()

	abs := file
	if !filepath.IsAbs(abs) {
		abs, err = filepath.Abs(filepath.Join(root, file))
		if err != nil {
			return nil, err
		}
	}

	tree, err := client.DocumentSymbols(ctx, abs)
	if err != nil {
		return nil, err
	}

	lenses := lens.CollectAnchors(abs, tree, lens.NameSpanRanger{})
	resolver := lens.NewResolver(client, logger)

	results := make([]resolvedLens, len(lenses))
	var wg sync.WaitGroup
	for i, l := range lenses {
		wg.Add(1)
		go func(i int, l *lens.Lens) {
			defer wg.Done()
			lensCtx, cancel := context.WithCancel(ctx)
			defer cancel()
			result := l.Resolve(lensCtx, resolver)
			_, outcome := l.Result()
			results[i] = resolvedLens{lens: l, result: result, outcome: outcome}
		}(i, l)
	}
	wg.Wait()
	return results, nil
}
