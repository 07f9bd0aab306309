package utils

import (
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/gosimple/slug"
)

// StoredFileTimeLayout - префикс имени сохраненного файла, YYYYMMDDHHMMSS
const StoredFileTimeLayout = "20060102150405"

// CleanText обрезает пробелы и убирает управляющие символы.
// Переводы строк и табуляция внутри текста сохраняются.
func CleanText(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if r == '\r' || unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}

// CleanLine - CleanText для однострочных полей
func CleanLine(s string) string {
	return strings.Join(strings.Fields(CleanText(s)), " ")
}

// NormalizeEmail приводит адрес к виду, в котором он хранится
func NormalizeEmail(s string) string {
	return strings.ToLower(CleanLine(s))
}

// UniqueStrings чистит значения, выбрасывает пустые и дубликаты.
// Порядок первых вхождений сохраняется.
func UniqueStrings(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = CleanLine(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// SplitList разбивает строку через запятую в упорядоченный список без пустых элементов
func SplitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = CleanLine(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// FileExtension - расширение без точки в нижнем регистре
func FileExtension(name string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
}

// AllowedExtension проверяет расширение по списку (без учета регистра)
func AllowedExtension(name string, allowed []string) bool {
	ext := FileExtension(name)
	if ext == "" {
		return false
	}
	for _, a := range allowed {
		if strings.EqualFold(strings.TrimPrefix(a, "."), ext) {
			return true
		}
	}
	return false
}

// StoredFileName строит имя вида 20240131235959_my-photo.png.
// Основа имени проходит через slug, поэтому путь из имени не выйдет за каталог.
func StoredFileName(now time.Time, original string) string {
	base := filepath.Base(strings.ReplaceAll(original, "\\", "/"))
	ext := FileExtension(base)
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	s := slug.Make(stem)
	if s == "" {
		s = "file"
	}

	name := now.Format(StoredFileTimeLayout) + "_" + s
	if ext != "" {
		name += "." + ext
	}
	return name
}
