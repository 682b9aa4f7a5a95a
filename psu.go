// Package psu implements the PseudoScript Utility: a line-oriented
// interpreter that compiles declarative .psu markup scripts into static
// HTML pages.
//
// A script starts with the psload and psstart directives, then one command
// per line. Nesting is driven purely by indentation:
//
//	psload
//	psstart
//	set user = "Bob";
//	page "Welcome":
//	    paragraph "Hello ${user}":
//
// # Basic Usage
//
// Create an engine and compile a script:
//
//	engine := psu.MustNew()
//	doc, err := engine.Compile(ctx, source)
//	// doc.HTML holds the generated markup
//
// CompileFile reads a .psu file and writes the artifact (default
// index.html, or the name set by output_html) into the configured output
// directory:
//
//	engine := psu.MustNew(psu.WithOutputDir("dist"))
//	doc, err := engine.CompileFile(ctx, "site.psu")
//
// # Commands
//
// Structural commands (page, section, container, list, card, if, loop)
// open a block that spans all deeper-indented lines below them. Leaf
// commands (heading, paragraph, image, button, link, item, meta_info)
// emit a single element. set defines a variable; ${name} markers in any
// text or attribute value interpolate stored values. output_html names
// the artifact.
//
// # Validation
//
// Check runs a script without writing anything and reports structural
// errors and warnings as positioned issues:
//
//	result := engine.Check(ctx, source)
//	for _, issue := range result.Issues() {
//	    fmt.Printf("line %d: %s\n", issue.Line, issue.Message)
//	}
//
// # Sessions
//
// NewSession interprets lines incrementally, for interactive use. The
// header directives are implicit:
//
//	session := engine.NewSession(ctx)
//	result, err := session.Feed(`paragraph "hi":`)
//	html := session.Render()
package psu
