package render

import (
	"fmt"

	"github.com/yaklabco/mdindex/pkg/catalog"
	"github.com/yaklabco/mdindex/pkg/title"
)

const landingIntro = "# Stock Mindmap 笔记导览\n" +
	"\n" +
	"> 本仓库的原始笔记全部保存在 `notes/` 目录。现已统一采用 [MkDocs](https://www.mkdocs.org/) + Material 主题生成静态站点，便于在线浏览与检索。"

const categoriesHeading = "## 分类结构"

const landingOutro = "更多笔记会在原有文件结构下继续扩展，方便使用者在本地编辑或在线浏览时保持一致体验。\n" +
	"\n" +
	"## 站点构建方式\n" +
	"\n" +
	"- 站点生成器：MkDocs 1.x + Material 主题\n" +
	"- 笔记目录：直接引用 `notes/`，无需额外迁移\n" +
	"- GitHub Pages：通过自动化工作流发布到 `gh-pages` 分支\n" +
	"\n" +
	"如需离线或自定义构建，可参考仓库根目录的 `README.md`。"

// builtinDescriptions maps category directory names to their landing-page
// blurbs. Config-provided descriptions override these.
var builtinDescriptions = map[string]string{
	"strategy":         "行为心理、仓位管理与模型复盘相关的体系化思考。",
	"markets":          "历史行情、黑天鹅事件、波动率分析等具体案例回顾。",
	"economy":          "宏观指标、央行政策、全球经济演化笔记。",
	"china":            "国内监管事件、产业政策与对外关系整理。",
	"personal_finance": "资产配置、税务与跨境资金管理经验。",
	"misc":             "未归类的阅读摘录、科技趋势和灵感记录。",
}

// placeholderDescription is used for directories absent from both the
// built-in table and the configured overrides.
const placeholderDescription = "（待补充简介）"

// Description returns the landing-page blurb for a category directory
// name, consulting the overrides before the built-in table.
func Description(name string, overrides map[string]string) string {
	if desc, ok := overrides[name]; ok {
		return desc
	}
	if desc, ok := builtinDescriptions[name]; ok {
		return desc
	}
	return placeholderDescription
}

// Landing renders the top-level landing index: intro, one bullet per
// category, and the site-build outro. Link targets keep their literal
// Unicode path segments; only display titles are escaped.
func Landing(categories []catalog.Category, overrides map[string]string) string {
	parts := []string{landingIntro, "", categoriesHeading, ""}
	for _, c := range categories {
		parts = append(parts, fmt.Sprintf("- [%s](%s)：%s",
			title.Escape(c.Title), c.IndexRelPath, Description(c.Name, overrides)))
	}
	parts = append(parts, "", landingOutro)
	return finish(parts)
}
