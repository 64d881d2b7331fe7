package media

import (
	"bytes"
	"path"
	"strings"
)

// sniffMIME resolves a content type for downloaded bytes. Magic bytes
// win over everything; the type the server declared comes next, then a
// guess from the URL extension, then a plain-text heuristic.
func sniffMIME(data []byte, declared, sourceURL string) string {
	if mime := magicMIME(data); mime != "" {
		return mime
	}
	if declared != "" && declared != "application/octet-stream" {
		return declared
	}
	if mime := extensionMIME(sourceURL); mime != "" {
		return mime
	}
	if looksLikeText(data) {
		return "text/plain"
	}
	return "application/octet-stream"
}

func magicMIME(data []byte) string {
	if len(data) < 4 {
		return ""
	}

	switch {
	case bytes.HasPrefix(data, []byte{0x89, 0x50, 0x4E, 0x47}):
		return "image/png"
	case bytes.HasPrefix(data, []byte{0xFF, 0xD8, 0xFF}):
		return "image/jpeg"
	case bytes.HasPrefix(data, []byte("GIF8")):
		return "image/gif"
	case len(data) >= 12 && bytes.HasPrefix(data, []byte("RIFF")) && bytes.Equal(data[8:12], []byte("WEBP")):
		return "image/webp"
	case bytes.HasPrefix(data, []byte("%PDF")):
		return "application/pdf"
	case bytes.HasPrefix(data, []byte{0x50, 0x4B, 0x03, 0x04}):
		return zipMIME(data)
	case bytes.HasPrefix(data, []byte{0xD0, 0xCF, 0x11, 0xE0}):
		return oleMIME(data)
	case bytes.HasPrefix(data, []byte("BM")):
		return "image/bmp"
	case bytes.HasPrefix(data, []byte{0x49, 0x49, 0x2A, 0x00}),
		bytes.HasPrefix(data, []byte{0x4D, 0x4D, 0x00, 0x2A}):
		return "image/tiff"
	case bytes.HasPrefix(data, []byte("Rar!")):
		return "application/x-rar-compressed"
	case len(data) >= 6 && bytes.HasPrefix(data, []byte{0x37, 0x7A, 0xBC, 0xAF, 0x27, 0x1C}):
		return "application/x-7z-compressed"
	case len(data) >= 12 && bytes.Equal(data[4:8], []byte("ftyp")):
		return "video/mp4"
	case bytes.HasPrefix(data, []byte{0xFF, 0xFB}),
		bytes.HasPrefix(data, []byte{0xFF, 0xF3}),
		bytes.HasPrefix(data, []byte("ID3")):
		return "audio/mpeg"
	}

	head := strings.TrimSpace(string(data[:min(100, len(data))]))
	if strings.HasPrefix(head, "<?xml") || strings.HasPrefix(head, "<svg") {
		return "image/svg+xml"
	}

	return ""
}

// zipMIME tells Office Open XML documents apart from plain archives by
// looking for their well-known inner paths near the start of the file.
func zipMIME(data []byte) string {
	head := string(data[:min(500, len(data))])
	switch {
	case strings.Contains(head, "word/"):
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case strings.Contains(head, "xl/"):
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case strings.Contains(head, "ppt/"):
		return "application/vnd.openxmlformats-officedocument.presentationml.presentation"
	}
	return "application/zip"
}

// oleMIME classifies legacy OLE compound documents by the stream name
// that follows the 512-byte header.
func oleMIME(data []byte) string {
	if len(data) > 512 {
		inner := string(data[512:min(612, len(data))])
		switch {
		case strings.Contains(inner, "WordDocument"):
			return "application/msword"
		case strings.Contains(inner, "Workbook"):
			return "application/vnd.ms-excel"
		case strings.Contains(inner, "PowerPoint"):
			return "application/vnd.ms-powerpoint"
		}
	}
	return "application/msword"
}

// looksLikeText treats the payload as text when fewer than 5% of its
// leading bytes are non-printable control characters.
func looksLikeText(data []byte) bool {
	sample := data[:min(1000, len(data))]
	if len(sample) == 0 {
		return false
	}

	nonPrintable := 0
	for _, b := range sample {
		if b < 32 && b != '\t' && b != '\n' && b != '\r' {
			nonPrintable++
		}
	}
	return float64(nonPrintable) < float64(len(sample))*0.05
}

var extensionMIMEs = map[string]string{
	".jpg": "image/jpeg", ".jpeg": "image/jpeg",
	".png": "image/png", ".gif": "image/gif", ".webp": "image/webp",
	".svg": "image/svg+xml", ".bmp": "image/bmp",
	".tiff": "image/tiff", ".tif": "image/tiff", ".ico": "image/x-icon",
	".pdf": "application/pdf", ".zip": "application/zip",
	".rar": "application/x-rar-compressed", ".7z": "application/x-7z-compressed",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".xls":  "application/vnd.ms-excel",
	".xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	".ppt":  "application/vnd.ms-powerpoint",
	".pptx": "application/vnd.openxmlformats-officedocument.presentationml.presentation",
	".odt":  "application/vnd.oasis.opendocument.text",
	".ods":  "application/vnd.oasis.opendocument.spreadsheet",
	".odp":  "application/vnd.oasis.opendocument.presentation",
	".txt":  "text/plain", ".html": "text/html", ".htm": "text/html",
	".csv": "text/csv", ".xml": "text/xml", ".json": "application/json",
	".mp4": "video/mp4", ".mpeg": "video/mpeg", ".mpg": "video/mpeg",
	".mov": "video/quicktime", ".avi": "video/x-msvideo",
	".wmv": "video/x-ms-wmv", ".webm": "video/webm",
	".mp3": "audio/mpeg", ".wav": "audio/wav", ".ogg": "audio/ogg",
	".flac": "audio/flac", ".aac": "audio/aac",
}

func extensionMIME(sourceURL string) string {
	ext := strings.ToLower(path.Ext(stripQuery(sourceURL)))
	return extensionMIMEs[ext]
}

var mimeExtensions = map[string]string{
	"image/jpeg": "jpg", "image/png": "png", "image/gif": "gif",
	"image/bmp": "bmp", "image/webp": "webp", "image/svg+xml": "svg",
	"image/tiff": "tiff", "image/x-icon": "ico",
	"application/pdf": "pdf", "application/zip": "zip",
	"application/x-rar-compressed": "rar", "application/x-7z-compressed": "7z",
	"application/msword": "doc",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": "docx",
	"application/vnd.ms-excel": "xls",
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": "xlsx",
	"application/vnd.ms-powerpoint":                                     "ppt",
	"application/vnd.openxmlformats-officedocument.presentationml.presentation": "pptx",
	"application/vnd.oasis.opendocument.text":                                   "odt",
	"application/vnd.oasis.opendocument.spreadsheet":                            "ods",
	"application/vnd.oasis.opendocument.presentation":                           "odp",
	"text/plain": "txt", "text/html": "html", "text/csv": "csv",
	"text/xml": "xml", "application/xml": "xml", "application/json": "json",
	"video/mp4": "mp4", "video/mpeg": "mpeg", "video/quicktime": "mov",
	"video/x-msvideo": "avi", "video/x-ms-wmv": "wmv", "video/webm": "webm",
	"audio/mpeg": "mp3", "audio/wav": "wav", "audio/ogg": "ogg",
	"audio/flac": "flac", "audio/aac": "aac",
}

// extensionForMIME gives the filename extension to append when the
// source URL carries none. Unknown types fall back to "bin".
func extensionForMIME(mime string) string {
	if ext, ok := mimeExtensions[mime]; ok {
		return ext
	}
	return "bin"
}

func stripQuery(rawURL string) string {
	if i := strings.IndexAny(rawURL, "?#"); i >= 0 {
		return rawURL[:i]
	}
	return rawURL
}
