package services

import (
	"bytes"
	"fmt"
	"strings"
)

// buildPDF writes a minimal uncompressed PDF with one Helvetica text line per
// entry of each page. trailerExtra is appended verbatim to the trailer dict.
func buildPDF(pages [][]string, trailerExtra string) []byte {
	kids := make([]string, len(pages))
	for i := range pages {
		kids[i] = fmt.Sprintf("%d 0 R", 4+2*i)
	}

	objs := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), len(pages)),
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>",
	}

	for i, lines := range pages {
		objs = append(objs, fmt.Sprintf(
			"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>",
			5+2*i,
		))

		var cs strings.Builder
		cs.WriteString("BT\n/F1 12 Tf\n72 720 Td\n")
		for _, line := range lines {
			fmt.Fprintf(&cs, "(%s) Tj\n0 -14 Td\n", line)
		}
		cs.WriteString("ET")
		objs = append(objs, fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", cs.Len(), cs.String()))
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")

	offsets := make([]int, len(objs))
	for i, body := range objs {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, body)
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objs)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R%s >>\nstartxref\n%d\n%%%%EOF\n", len(objs)+1, trailerExtra, xref)

	return buf.Bytes()
}

var sampleResumeLines = []string{
	"Jane Doe - Software Engineer",
	"5 years of experience building backend services in Go and Python",
	"Developed REST API platforms on AWS with Docker and Kubernetes",
	"Led a team that implemented machine learning pipelines",
}
