//go:build bench

package pipeline

import (
	"context"
	"fmt"
	"strings"
	"testing"
)

// BenchmarkParseDocument benchmarks the line classifier on days of growing size.
func BenchmarkParseDocument(b *testing.B) {
	for _, sections := range []int{1, 10, 50} {
		content := generateStudyDay(sections)
		b.Run(fmt.Sprintf("sections_%d", sections), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				_ = ParseDocument(content)
			}
		})
	}
}

// BenchmarkRenderSections benchmarks fragment rendering of a parsed day.
func BenchmarkRenderSections(b *testing.B) {
	doc := ParseDocument(generateStudyDay(20))

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		for _, s := range doc.Sections {
			_ = RenderSection(s)
		}
		_ = RenderTranslations(doc.Translations)
	}
}

// BenchmarkNormalizeMarkup benchmarks the LaTeX residue cleanup.
func BenchmarkNormalizeMarkup(b *testing.B) {
	line := strings.Repeat(`温故$\underset{\cdot}{而}$知新$^{*}$，`, 10)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = NormalizeMarkup(line)
	}
}

// BenchmarkGoldmarkToHTML benchmarks the index intro conversion.
func BenchmarkGoldmarkToHTML(b *testing.B) {
	converter := NewGoldmarkConverter()
	ctx := context.Background()
	content := "# 简介\n\n六天的**古文**拆分。\n\n| 天 | 主题 |\n|---|---|\n| 一 | 孩子 |\n"

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := converter.ToHTML(ctx, content); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkParseDocumentParallel benchmarks concurrent parsing, as the batch build does.
func BenchmarkParseDocumentParallel(b *testing.B) {
	content := generateStudyDay(20)

	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_ = ParseDocument(content)
		}
	})
}

func generateStudyDay(sections int) string {
	var sb strings.Builder
	sb.WriteString("第一天 “他们”都曾是“别人家的孩子”\n\n")
	for i := 1; i <= sections; i++ {
		sb.WriteString(fmt.Sprintf("## %02d 篇目%d\n\n", i, i))
		sb.WriteString("子曰：学而时习之，不亦$\\underset{\\cdot}{说}$乎？\n")
		sb.WriteString("（节选自《论语·学而》）\n")
		sb.WriteString("①说：同“悦”，愉快。\n")
		sb.WriteString("★②时：按时。\n")
		sb.WriteString("* 学而时习之，不亦说乎？\n")
		sb.WriteString("1.<动>温习\n")
		sb.WriteString("《论语》：温故而知新。\n")
		sb.WriteString("译文：温习旧知识而得到新的理解。\n\n")
	}
	sb.WriteString("## 课文参考译文\n")
	for i := 1; i <= sections; i++ {
		sb.WriteString(fmt.Sprintf("【%d】孔子说：学了又按时温习，\n不也很愉快吗？\n", i))
	}
	return sb.String()
}
