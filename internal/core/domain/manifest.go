package domain

// ManifestFileName is the conventional manifest location, relative to the
// source root.
const ManifestFileName = "plank.toml"

// Manifest is the ordered list of logical paths plank expects to find in a
// source tree, grouped for presentation, plus the entrypoint file whose
// presence marks a directory as a valid source root. Order matters: groups
// and files are collected and embedded exactly as listed.
type Manifest struct {
	// Entrypoint must exist directly under the source root for a flatten
	// run to proceed.
	Entrypoint string

	// Groups are the named file groups, in bundle order.
	Groups []Group
}

// Group is one named, ordered run of expected logical paths.
type Group struct {
	Name  string
	Files []string
}

// Paths flattens the manifest's groups into one ordered path list.
func (m Manifest) Paths() []string {
	var paths []string
	for _, g := range m.Groups {
		paths = append(paths, g.Files...)
	}
	return paths
}

// Sections pairs each group name with the documents collected for it,
// preserving group order. Documents not named by the manifest are ignored.
func (m Manifest) Sections(docs []Document) []Section {
	byPath := make(map[string]Document, len(docs))
	for _, d := range docs {
		byPath[d.Path] = d
	}
	sections := make([]Section, 0, len(m.Groups))
	for _, g := range m.Groups {
		sec := Section{Name: g.Name}
		for _, p := range g.Files {
			if d, ok := byPath[p]; ok {
				sec.Documents = append(sec.Documents, d)
			}
		}
		sections = append(sections, sec)
	}
	return sections
}

// DefaultManifest returns the layout plank grew up on: a modular Neovim
// configuration with an init.lua entry point. It is used whenever a source
// root carries no manifest of its own, and `plank init` writes it out as a
// starting point.
func DefaultManifest() Manifest {
	return Manifest{
		Entrypoint: "init.lua",
		Groups: []Group{
			{
				Name:  "ENTRY POINT",
				Files: []string{"init.lua"},
			},
			{
				Name: "CORE CONFIGURATION",
				Files: []string{
					"lua/config/options.lua",
					"lua/config/keymaps.lua",
					"lua/config/autocmds.lua",
					"lua/config/lazy.lua",
				},
			},
			{
				Name:  "PLUGIN LOADER",
				Files: []string{"lua/plugins/init.lua"},
			},
			{
				Name: "PLUGIN SPECIFICATIONS",
				Files: []string{
					"lua/plugins/colorscheme.lua",
					"lua/plugins/ui.lua",
					"lua/plugins/editor.lua",
					"lua/plugins/telescope.lua",
					"lua/plugins/lsp.lua",
					"lua/plugins/completion.lua",
					"lua/plugins/flash.lua",
					"lua/plugins/git.lua",
					"lua/plugins/copilot.lua",
					"lua/plugins/aerial.lua",
					"lua/plugins/diffview.lua",
					"lua/plugins/oil.lua",
					"lua/plugins/treesitter-textobjects.lua",
				},
			},
		},
	}
}
