// Package proseml renders tokenized prose documents to HTML.
//
// The input is a finite, already-tokenized document: an ordered slice of Token
// values (headings, text lines, keywords, comments and so on) where text lines
// carry positional format spans and optional style flags. A Converter turns
// each token slice into an HTML body fragment, accumulates fragments across
// documents and finally assembles them into one HTML5 document with a
// generated stylesheet.
//
// Core properties:
//   - Soft-wrapped text lines are joined into paragraphs, with hard breaks
//   - Format spans are applied right-most first so offsets stay valid
//   - Typographic characters are encoded to entities in one pass, and decoded
//     again for the optional source reconstruction
//   - Keyword lines are resolved through an external Index and rendered as
//     tag anchors or cross-reference links
//
// Example:
//
//	conv := proseml.NewConverter(proseml.DefaultConfig(), proseml.WithMode(proseml.ModeExport))
//	if _, err := conv.Render(tokens); err != nil {
//		log.Fatal(err)
//	}
//	if err := conv.SaveHTML5("book.html"); err != nil {
//		log.Fatal(err)
//	}
//
// Converters are not safe for concurrent use; render independent documents
// concurrently with independent Converters.
package proseml
