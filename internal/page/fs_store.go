package page

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"syscall"

	"git.home.luguber.info/inful/doclinks/internal/docerror"
	"git.home.luguber.info/inful/doclinks/internal/frontmatter"
	"git.home.luguber.info/inful/doclinks/internal/locale"
	"git.home.luguber.info/inful/doclinks/internal/logfields"
)

const indexFile = "index.md"

type pageMeta struct {
	Title      string   `yaml:"title"`
	ShortTitle string   `yaml:"short-title"`
	Slug       string   `yaml:"slug"`
	PageType   string   `yaml:"page-type"`
	Status     []Status `yaml:"status"`
}

var knownStatus = []Status{StatusExperimental, StatusDeprecated, StatusNonStandard}

// FSStore reads pages from a content tree laid out as
// <root>/files/<locale>/<folder>/index.md.
type FSStore struct {
	root string
}

// NewFSStore creates a store rooted at a content directory.
func NewFSStore(root string) *FSStore {
	return &FSStore{root: root}
}

// PathFor returns the index file that backs a page.
func (s *FSStore) PathFor(loc locale.Locale, slug string) string {
	return filepath.Join(s.root, "files", loc.Folder(), filepath.FromSlash(FolderPath(slug)), indexFile)
}

// Load implements Store.
func (s *FSStore) Load(url string) (*Page, error) {
	loc, slug, err := ParseURL(url)
	if err != nil {
		return nil, err
	}

	path := s.PathFor(loc, slug)
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || isNotDir(err) {
			return nil, &docerror.PageNotFound{URL: url, Path: path}
		}
		return nil, &docerror.IO{Path: path, Err: err}
	}

	var meta pageMeta
	body, _, err := frontmatter.Decode(content, &meta)
	if err != nil {
		return nil, &docerror.MalformedPage{Path: path, Err: err}
	}
	if meta.Title == "" {
		return nil, &docerror.MalformedPage{Path: path, Err: errors.New("missing title")}
	}
	for _, st := range meta.Status {
		if !slices.Contains(knownStatus, st) {
			slog.Debug("Ignoring unknown page status", logfields.Path(path), slog.String("status", string(st)))
		}
	}
	if meta.Slug == "" {
		meta.Slug = slug
	}

	return &Page{
		URL:        URLFor(loc, meta.Slug),
		Locale:     loc,
		Slug:       meta.Slug,
		Title:      meta.Title,
		ShortTitle: meta.ShortTitle,
		PageType:   meta.PageType,
		Status:     meta.Status,
		SourcePath: path,
		Body:       body,
	}, nil
}

// isNotDir catches lookups where a path component is a regular file.
func isNotDir(err error) bool {
	return errors.Is(err, syscall.ENOTDIR)
}
