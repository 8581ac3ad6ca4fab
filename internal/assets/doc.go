// Package assets provides the stylesheet and HTML templates for study pages.
//
// # Loader Architecture
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - go:embed styles and templates (defaults)
//	    ├── FilesystemLoader  - a custom directory on disk, read through os.Root
//	    └── AssetResolver     - a chain of loaders, embedded last
//
// Both concrete loaders read from an fs.FS with the same lookup rules, so a
// custom directory and the embedded tree are laid out identically.
//
// # Directory Structure
//
//	{basePath}/
//	├── styles/
//	│   └── default.css
//	└── templates/
//	    ├── page.html    # one study day
//	    └── index.html   # optional home page
//
// A custom directory only needs the files it overrides.
//
// # Security
//
// Asset names may not contain separators or dots. FilesystemLoader opens
// basePath as an os.Root, which refuses any path or symlink leading outside it.
package assets
