package compiler

import "strings"

// buildProgram joins the data and text sections into the final program text.
// The .data header and the blank separator appear only when data is
// non-empty. The result always ends in a newline.
func buildProgram(data, text []string) string {
	var sb strings.Builder
	if len(data) > 0 {
		sb.WriteString(".data\n")
		for _, l := range data {
			sb.WriteString(l)
			sb.WriteByte('\n')
		}
		sb.WriteByte('\n')
	}
	for _, l := range text {
		sb.WriteString(l)
		sb.WriteByte('\n')
	}
	if sb.Len() == 0 {
		sb.WriteByte('\n')
	}
	return sb.String()
}
