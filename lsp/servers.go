package lsp

import (
	"path/filepath"
	"sort"
	"strings"
)

// Descriptor captures what is needed to start a known language server.
type Descriptor struct {
	ID         string
	Command    string
	Args       []string
	LanguageID string
	Extensions []string
}

// Start launches the server rooted at the given workspace directory.
func (d Descriptor) Start(root string) (*Client, error) {
	return NewClient(ProcessConfig{
		Command:    d.Command,
		Args:       d.Args,
		RootDir:    root,
		LanguageID: d.LanguageID,
	})
}

var descriptorMap = map[string]Descriptor{}

func addDescriptor(aliases []string, desc Descriptor) {
	for _, alias := range aliases {
		descriptorMap[alias] = desc
	}
}

func init() {
	addDescriptor([]string{"go", "gopls"}, Descriptor{
		ID: "go", Command: "gopls", Args: []string{"serve"}, LanguageID: "go",
		Extensions: []string{"go"},
	})
	addDescriptor([]string{"ts", "typescript"}, Descriptor{
		ID: "ts", Command: "typescript-language-server", Args: []string{"--stdio"}, LanguageID: "typescript",
		Extensions: []string{"ts", "tsx"},
	})
	addDescriptor([]string{"javascript", "js"}, Descriptor{
		ID: "javascript", Command: "typescript-language-server", Args: []string{"--stdio"}, LanguageID: "javascript",
		Extensions: []string{"js", "jsx"},
	})
	addDescriptor([]string{"rust", "rs", "rust-analyzer"}, Descriptor{
		ID: "rust", Command: "rust-analyzer", LanguageID: "rust",
		Extensions: []string{"rs"},
	})
	addDescriptor([]string{"clang", "clangd", "c", "cpp", "cc"}, Descriptor{
		ID: "clangd", Command: "clangd", LanguageID: "c",
		Extensions: []string{"c", "h", "cpp", "hpp", "cc", "cxx"},
	})
	addDescriptor([]string{"python", "py"}, Descriptor{
		ID: "python", Command: "pylsp", LanguageID: "python",
		Extensions: []string{"py"},
	})
}

// Lookup finds the descriptor for a language key or alias.
func Lookup(language string) (Descriptor, bool) {
	desc, ok := descriptorMap[strings.ToLower(language)]
	return desc, ok
}

// Supported returns the known descriptors, one per ID, sorted.
func Supported() []Descriptor {
	seen := map[string]bool{}
	var descs []Descriptor
	for _, desc := range descriptorMap {
		if seen[desc.ID] {
			continue
		}
		seen[desc.ID] = true
		descs = append(descs, desc)
	}
	sort.Slice(descs, func(i, j int) bool { return descs[i].ID < descs[j].ID })
	return descs
}

// InferLanguage returns a descriptor key for a file path by extension, or
// "" when the extension is unknown.
func InferLanguage(path string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if ext == "" {
		return ""
	}
	for _, desc := range Supported() {
		for _, known := range desc.Extensions {
			if known == ext {
				return desc.ID
			}
		}
	}
	return ""
}
