package nav_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdindex/pkg/nav"
)

const sampleMkdocs = `site_name: Stock Mindmap
theme:
  name: material
nav:
  - 首页: index.md
  - 分类:
      - strategy: strategy/index.md
      - markets: markets/index.md
      - 中文分类: 中文分类/index.md
  - 全部笔记: all-notes.md
docs_dir: notes
`

func TestYAMLExtractor(t *testing.T) {
	t.Parallel()

	t.Run("extracts entries in declaration order", func(t *testing.T) {
		t.Parallel()

		entries := nav.YAMLExtractor{Group: "分类"}.Extract(sampleMkdocs)

		require.Len(t, entries, 3)
		assert.Equal(t, nav.Entry{Title: "strategy", Path: "strategy/index.md"}, entries[0])
		assert.Equal(t, nav.Entry{Title: "markets", Path: "markets/index.md"}, entries[1])
		assert.Equal(t, nav.Entry{Title: "中文分类", Path: "中文分类/index.md"}, entries[2])
	})

	t.Run("empty on unparseable document", func(t *testing.T) {
		t.Parallel()

		entries := nav.YAMLExtractor{Group: "分类"}.Extract("nav:\n\t- broken: [tabs")
		assert.Empty(t, entries)
	})

	t.Run("empty when nav key missing", func(t *testing.T) {
		t.Parallel()

		entries := nav.YAMLExtractor{Group: "分类"}.Extract("site_name: x\n")
		assert.Empty(t, entries)
	})

	t.Run("empty when group missing", func(t *testing.T) {
		t.Parallel()

		entries := nav.YAMLExtractor{Group: "不存在"}.Extract(sampleMkdocs)
		assert.Empty(t, entries)
	})

	t.Run("skips non-scalar children", func(t *testing.T) {
		t.Parallel()

		doc := `nav:
  - 分类:
      - strategy: strategy/index.md
      - nested:
          - deep: deep/index.md
      - markets: markets/index.md
`
		entries := nav.YAMLExtractor{Group: "分类"}.Extract(doc)
		require.Len(t, entries, 2)
		assert.Equal(t, "strategy", entries[0].Title)
		assert.Equal(t, "markets", entries[1].Title)
	})
}

func TestLineScanExtractor(t *testing.T) {
	t.Parallel()

	scan := nav.LineScanExtractor{Group: "分类"}

	t.Run("extracts the indented block", func(t *testing.T) {
		t.Parallel()

		entries := scan.Extract(sampleMkdocs)

		require.Len(t, entries, 3)
		assert.Equal(t, nav.Entry{Title: "strategy", Path: "strategy/index.md"}, entries[0])
	})

	t.Run("blank lines inside the block are skipped", func(t *testing.T) {
		t.Parallel()

		doc := "nav:\n" +
			"  - 分类:\n" +
			"      - strategy: strategy/index.md\n" +
			"\n" +
			"      - markets: markets/index.md\n"

		entries := scan.Extract(doc)
		require.Len(t, entries, 2)
		assert.Equal(t, "markets", entries[1].Title)
	})

	t.Run("non-list line terminates the block", func(t *testing.T) {
		t.Parallel()

		doc := "  - 分类:\n" +
			"      - strategy: strategy/index.md\n" +
			"docs_dir: notes\n" +
			"      - markets: markets/index.md\n"

		entries := scan.Extract(doc)
		require.Len(t, entries, 1)
		assert.Equal(t, "strategy", entries[0].Title)
	})

	t.Run("list item at shallower indentation terminates", func(t *testing.T) {
		t.Parallel()

		doc := "  - 分类:\n" +
			"      - strategy: strategy/index.md\n" +
			"  - 全部笔记: all-notes.md\n" +
			"      - markets: markets/index.md\n"

		entries := scan.Extract(doc)
		require.Len(t, entries, 1)
	})

	t.Run("empty without a block marker", func(t *testing.T) {
		t.Parallel()

		entries := scan.Extract("site_name: x\n- other: y\n")
		assert.Empty(t, entries)
	})
}

func TestExtract(t *testing.T) {
	t.Parallel()

	t.Run("yaml strategy wins for valid documents", func(t *testing.T) {
		t.Parallel()

		// The block carries one scalar entry and one nested mapping. The
		// YAML walk keeps only the scalar; since it found something, the
		// scanner is never consulted.
		doc := `nav:
  - 分类:
      - strategy: strategy/index.md
      - nested:
          - deep: deep/index.md
`
		entries := nav.Extract(doc, "分类")
		require.Len(t, entries, 1)
		assert.Equal(t, "strategy", entries[0].Title)
	})

	t.Run("falls back to line scan on parse failure", func(t *testing.T) {
		t.Parallel()

		// Tabs make this invalid YAML, but the scanner still finds the
		// dash-prefixed entries below the marker.
		doc := "bad:\n\t- tabs\n" +
			"  - 分类:\n" +
			"      - strategy: strategy/index.md\n"

		entries := nav.Extract(doc, "分类")
		require.Len(t, entries, 1)
		assert.Equal(t, nav.Entry{Title: "strategy", Path: "strategy/index.md"}, entries[0])
	})

	t.Run("empty when both strategies find nothing", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, nav.Extract("site_name: x\n", "分类"))
	})
}
