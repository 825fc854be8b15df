package render

import (
	"fmt"

	"github.com/yaklabco/mdindex/pkg/title"
)

const categoryPageNotice = "> 本分类下的全部笔记，按文件名排序。\n" +
	"> 此页面由索引脚本自动维护，手动修改会在下次同步时被覆盖。"

// categoryPagePlaceholder marks a category that has no notes yet.
const categoryPagePlaceholder = "（暂无条目）"

// CategoryPage renders one category's own index page. Note links are
// relative to the category directory, with no directory prefix.
func CategoryPage(s Section) string {
	parts := []string{"# " + title.Escape(s.Category.Title), "", categoryPageNotice, ""}
	if len(s.Notes) == 0 {
		parts = append(parts, categoryPagePlaceholder)
	} else {
		for _, n := range s.Notes {
			parts = append(parts, fmt.Sprintf("- [%s](%s)", title.Escape(n.Title), n.File))
		}
	}
	return finish(parts)
}
