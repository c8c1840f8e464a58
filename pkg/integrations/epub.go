package integrations

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-shiori/go-epub"
	"github.com/kerbaras/lectures/pkg/data"
	"github.com/kerbaras/lectures/pkg/progress"
	"github.com/kerbaras/lectures/pkg/video"
)

// SyllabusBuilder writes a teacher's classes and lectures as an EPUB, one
// section per class, with completion marks and stream links.
type SyllabusBuilder struct {
	outputDir string
	resolver  *video.Resolver
	lang      string
}

func NewSyllabusBuilder(outputDir string, resolver *video.Resolver, lang string) *SyllabusBuilder {
	if lang == "" {
		lang = "ar"
	}
	return &SyllabusBuilder{outputDir: outputDir, resolver: resolver, lang: lang}
}

// Export compiles the syllabus and returns the written file path.
func (b *SyllabusBuilder) Export(course *data.Course, teacher *data.Teacher, checker progress.Checker) (string, error) {
	if teacher == nil {
		return "", fmt.Errorf("no teacher to export")
	}
	if len(teacher.Classes) == 0 {
		return "", fmt.Errorf("teacher %s has no classes", teacher.ID)
	}

	if err := os.MkdirAll(b.outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	title := teacher.Name
	if course != nil && course.Title != "" {
		title = fmt.Sprintf("%s - %s", teacher.Name, course.Title)
	}

	e, err := epub.NewEpub(title)
	if err != nil {
		return "", fmt.Errorf("failed to create EPub: %w", err)
	}
	e.SetAuthor(teacher.Name)
	if teacher.Subject != "" {
		e.SetDescription(teacher.Subject)
	}
	e.SetLang(b.lang)
	if b.lang == "ar" {
		e.SetPpd("rtl")
	}

	for i, class := range teacher.Classes {
		body := b.classSection(teacher.ID, i, class, checker)
		if _, err := e.AddSection(body, class.Name, "", ""); err != nil {
			return "", fmt.Errorf("failed to add class %d: %w", i, err)
		}
	}

	outputPath := filepath.Join(b.outputDir, sanitizeFilename(title)+".epub")
	if err := e.Write(outputPath); err != nil {
		return "", fmt.Errorf("failed to write EPub: %w", err)
	}
	return outputPath, nil
}

func (b *SyllabusBuilder) classSection(teacherID data.TeacherID, classIndex int, class data.Class, checker progress.Checker) string {
	var sb strings.Builder
	summary := progress.ClassSummary(checker, teacherID, classIndex, class)

	sb.WriteString(fmt.Sprintf("<h1>%s</h1>\n", html.EscapeString(class.Name)))
	sb.WriteString(fmt.Sprintf("<p>%d%% (%d/%d)</p>\n", summary.Percent, summary.Completed, summary.Total))
	sb.WriteString("<ol>\n")
	for _, lecture := range class.Lectures {
		mark := "☐"
		if checker.IsCompleted(teacherID, classIndex, lecture.Title) {
			mark = "☑"
		}
		sb.WriteString(fmt.Sprintf("<li>%s %s", mark, html.EscapeString(lecture.Title)))
		if _, stream, err := b.resolver.Resolve(lecture.URL); err == nil {
			sb.WriteString(fmt.Sprintf(` <a href="%s">%s</a>`, html.EscapeString(stream), html.EscapeString(stream)))
		}
		if lecture.Description != "" {
			sb.WriteString(fmt.Sprintf("<br/><small>%s</small>", html.EscapeString(lecture.Description)))
		}
		sb.WriteString("</li>\n")
	}
	sb.WriteString("</ol>\n")
	return sb.String()
}

// sanitizeFilename removes characters that are invalid in filenames
func sanitizeFilename(name string) string {
	invalid := []string{"/", "\\", ":", "*", "?", "\"", "<", ">", "|"}
	result := name
	for _, char := range invalid {
		result = strings.ReplaceAll(result, char, "_")
	}
	result = strings.TrimSpace(result)
	result = strings.Trim(result, ".")
	if result == "" {
		result = "syllabus"
	}
	return result
}
