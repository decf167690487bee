package ingest

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

var _ Extractor = DOCXExtractor{}

// maxZipEntrySize limits decompressed size of individual zip entries
// to prevent zip bomb attacks (100 MB).
const maxZipEntrySize = 100 << 20

// DOCXExtractor extracts plain text from DOCX documents by streaming OOXML
// tokens: body paragraph text in document order first, then each table's
// cell text row-major, cells space-joined and rows newline-joined.
type DOCXExtractor struct{}

func (DOCXExtractor) Extract(content []byte) (string, error) {
	if len(content) == 0 {
		return "", fmt.Errorf("empty docx content")
	}
	zr, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("open zip: %w", err)
	}
	docData, err := docxFindAndRead(zr)
	if err != nil {
		return "", err
	}
	return docxParseDocument(docData)
}

// docxFindAndRead locates and reads word/document.xml from a zip reader.
func docxFindAndRead(zr *zip.Reader) ([]byte, error) {
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			data, err := docxReadZipFile(f)
			if err != nil {
				return nil, fmt.Errorf("read document.xml: %w", err)
			}
			return data, nil
		}
	}
	return nil, fmt.Errorf("missing word/document.xml")
}

func docxReadZipFile(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	lr := io.LimitReader(rc, maxZipEntrySize+1)
	data, err := io.ReadAll(lr)
	if err != nil {
		return nil, err
	}
	if len(data) > maxZipEntrySize {
		return nil, fmt.Errorf("zip entry %s exceeds %d byte limit", f.Name, maxZipEntrySize)
	}
	return data, nil
}

// docxParseDocument walks the OOXML token stream. Paragraphs inside tables
// are collected into their cells, not into the body text.
func docxParseDocument(data []byte) (string, error) {
	decoder := xml.NewDecoder(bytes.NewReader(data))

	var (
		paragraphs []string
		tables     [][][]string // table -> row -> cell

		tableDepth  int
		inParagraph bool
		inText      bool
		paragraph   strings.Builder
	)

	appendCellText := func(s string) {
		if len(tables) == 0 {
			return
		}
		rows := tables[len(tables)-1]
		if len(rows) == 0 {
			return
		}
		cells := rows[len(rows)-1]
		if len(cells) == 0 {
			return
		}
		cells[len(cells)-1] += s
	}

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("parse document.xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "tbl":
				tableDepth++
				if tableDepth == 1 {
					tables = append(tables, nil)
				}
			case "tr":
				if tableDepth == 1 {
					tables[len(tables)-1] = append(tables[len(tables)-1], nil)
				}
			case "tc":
				if tableDepth == 1 {
					rows := tables[len(tables)-1]
					// Malformed documents can open a cell before any row.
					if len(rows) == 0 {
						rows = append(rows, nil)
					}
					rows[len(rows)-1] = append(rows[len(rows)-1], "")
					tables[len(tables)-1] = rows
				}
			case "p":
				if tableDepth == 0 {
					inParagraph = true
					paragraph.Reset()
				}
			case "t":
				inText = true
			case "tab":
				if tableDepth == 0 && inParagraph {
					paragraph.WriteByte('\t')
				}
			case "br":
				if tableDepth == 0 && inParagraph {
					paragraph.WriteByte('\n')
				}
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "tbl":
				tableDepth--
			case "p":
				if tableDepth == 0 && inParagraph {
					if s := strings.TrimSpace(paragraph.String()); s != "" {
						paragraphs = append(paragraphs, s)
					}
					inParagraph = false
				}
			case "t":
				inText = false
			}
		case xml.CharData:
			if !inText {
				continue
			}
			if tableDepth > 0 {
				appendCellText(string(t))
			} else if inParagraph {
				paragraph.Write(t)
			}
		}
	}

	var out strings.Builder
	for _, p := range paragraphs {
		out.WriteString(p)
		out.WriteByte('\n')
	}
	for _, table := range tables {
		for _, row := range table {
			for i, cell := range row {
				if i > 0 {
					out.WriteByte(' ')
				}
				out.WriteString(strings.TrimSpace(cell))
			}
			out.WriteByte('\n')
		}
	}
	return strings.TrimSpace(out.String()), nil
}
