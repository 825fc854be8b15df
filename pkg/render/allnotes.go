package render

import (
	"fmt"

	"github.com/yaklabco/mdindex/pkg/title"
)

const allNotesTitle = "# 全部笔记索引"

const allNotesIntro = "> 自动汇总 `notes/` 目录下的所有 Markdown 文件，按分类列出，便于快速查找。"

// AllNotes renders the flattened index: one level-2 section per category
// that has at least one note, in aggregator order. Empty categories are
// omitted entirely.
func AllNotes(sections []Section) string {
	parts := []string{allNotesTitle, "", allNotesIntro, ""}
	for _, s := range sections {
		if len(s.Notes) == 0 {
			continue
		}
		parts = append(parts, "## "+title.Escape(s.Category.Title))
		for _, n := range s.Notes {
			parts = append(parts, fmt.Sprintf("- [%s](%s/%s)",
				title.Escape(n.Title), s.Category.Name, n.File))
		}
		parts = append(parts, "")
	}
	return finish(parts)
}
