// Package docx decodes .docx containers into the structural text blocks the
// extraction engine consumes: body paragraphs plus tables of cells. It reads
// only word/document.xml and ignores styling, headers, and footers.
package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrMalformedDocument indicates the input is not a readable .docx container.
var ErrMalformedDocument = errors.New("malformed document container")

// Document is the decoded structural content of one file.
type Document struct {
	Paragraphs []string // body paragraphs, document order
	Tables     []Table  // tables, document order
}

// Table is rows of cells, row-major.
type Table struct {
	Rows []Row
}

// Row is one table row.
type Row struct {
	Cells []Cell
}

// Cell holds the paragraphs inside one table cell.
type Cell struct {
	Paragraphs []string
}

// ReadFile decodes the .docx at path.
func ReadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return Read(data)
}

// Read decodes a .docx container from raw bytes.
func Read(data []byte) (*Document, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}

	var docFile *zip.File
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return nil, fmt.Errorf("%w: word/document.xml not found in archive", ErrMalformedDocument)
	}

	rc, err := docFile.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: open document.xml: %v", ErrMalformedDocument, err)
	}
	defer rc.Close()

	doc, err := decodeBody(rc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	return doc, nil
}

// decodeBody walks the WordprocessingML token stream. Paragraphs inside a
// w:tbl/w:tr/w:tc nesting belong to the enclosing cell; all others are body
// paragraphs. Nested tables are flattened into the outer cell's paragraphs,
// which matches reading order well enough for free-text reports.
func decodeBody(r io.Reader) (*Document, error) {
	decoder := xml.NewDecoder(r)

	doc := &Document{}
	var para strings.Builder
	inParagraph := false
	tableDepth := 0
	var curTable *Table
	var curRow *Row
	var curCell *Cell

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decode document.xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "tbl":
				tableDepth++
				if tableDepth == 1 {
					doc.Tables = append(doc.Tables, Table{})
					curTable = &doc.Tables[len(doc.Tables)-1]
				}
			case "tr":
				if tableDepth == 1 && curTable != nil {
					curTable.Rows = append(curTable.Rows, Row{})
					curRow = &curTable.Rows[len(curTable.Rows)-1]
				}
			case "tc":
				if tableDepth == 1 && curRow != nil {
					curRow.Cells = append(curRow.Cells, Cell{})
					curCell = &curRow.Cells[len(curRow.Cells)-1]
				}
			case "p":
				inParagraph = true
				para.Reset()
			case "tab":
				if inParagraph {
					para.WriteByte('\t')
				}
			case "br":
				if inParagraph {
					para.WriteByte('\n')
				}
			}

		case xml.CharData:
			if inParagraph {
				para.Write(t)
			}

		case xml.EndElement:
			switch t.Name.Local {
			case "p":
				if !inParagraph {
					continue
				}
				inParagraph = false
				text := para.String()
				if tableDepth > 0 && curCell != nil {
					curCell.Paragraphs = append(curCell.Paragraphs, text)
				} else if tableDepth == 0 {
					doc.Paragraphs = append(doc.Paragraphs, text)
				}
			case "tc":
				if tableDepth == 1 {
					curCell = nil
				}
			case "tr":
				if tableDepth == 1 {
					curRow = nil
				}
			case "tbl":
				tableDepth--
				if tableDepth == 0 {
					curTable = nil
				}
			}
		}
	}

	return doc, nil
}
