package main

import (
	"encoding/json"
	"fmt"
	"os"

	"resume-builder/internal/editor"
	"resume-builder/internal/model"
	"resume-builder/internal/preview"
)

// Renders a resume document JSON file through the preview template, for
// iterating on templates/preview.html without a running server.
func main() {
	in := "resume.json"
	if len(os.Args) > 1 {
		in = os.Args[1]
	}
	b, err := os.ReadFile(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read document: %v\n", err)
		os.Exit(2)
	}
	var doc model.ResumeDocument
	if err := json.Unmarshal(b, &doc); err != nil {
		fmt.Fprintf(os.Stderr, "unmarshal: %v\n", err)
		os.Exit(2)
	}

	r, err := preview.NewRenderer("templates")
	if err != nil {
		fmt.Fprintf(os.Stderr, "parse tpl: %v\n", err)
		os.Exit(2)
	}
	html, err := r.Render(doc, editor.DefaultOrder())
	if err != nil {
		fmt.Fprintf(os.Stderr, "execute tpl: %v\n", err)
		os.Exit(2)
	}

	outFile := "preview_out.html"
	if err := os.WriteFile(outFile, []byte(html), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "create out: %v\n", err)
		os.Exit(2)
	}
	fmt.Printf("wrote %s\n", outFile)
}
