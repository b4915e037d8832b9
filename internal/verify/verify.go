// Package verify checks generated source for syntax errors with tree-sitter
// before it is written out.
package verify

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/swift"
)

// SyntaxError locates a syntax error in checked content.
type SyntaxError struct {
	FilePath string
	Line     uint32 // 0-indexed
	Column   uint32 // 0-indexed
	Message  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s", e.FilePath, e.Line+1, e.Column+1, e.Message)
}

// Validate parses content and reports every ERROR or MISSING node as a
// *SyntaxError, joined with errors.Join. filePath selects the grammar and
// labels errors; content for a language without a grammar passes unchecked.
func Validate(ctx context.Context, content []byte, filePath string) error {
	root, err := parse(ctx, content, filePath)
	if err != nil || root == nil {
		return err
	}
	if !root.HasError() {
		return nil
	}
	var errs []error
	collect(root, filePath, &errs)
	if len(errs) == 0 {
		return &SyntaxError{FilePath: filePath, Message: "AST contains errors"}
	}
	return errors.Join(errs...)
}

func parse(ctx context.Context, content []byte, filePath string) (*sitter.Node, error) {
	lang := languageForPath(filePath)
	if lang == nil {
		return nil, nil
	}
	parser := sitter.NewParser()
	parser.SetLanguage(lang)
	tree, err := parser.ParseCtx(ctx, nil, content)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filePath, err)
	}
	root := tree.RootNode()
	if root == nil {
		return nil, fmt.Errorf("parse %s: no root node", filePath)
	}
	return root, nil
}

func newSyntaxError(n *sitter.Node, filePath string) *SyntaxError {
	msg := "syntax error"
	if n.IsMissing() {
		msg = fmt.Sprintf("missing %s", n.Type())
	}
	return &SyntaxError{
		FilePath: filePath,
		Line:     n.StartPoint().Row,
		Column:   n.StartPoint().Column,
		Message:  msg,
	}
}

// collect appends one error per ERROR or MISSING node without descending
// into them.
func collect(n *sitter.Node, filePath string, errs *[]error) {
	if n.IsError() || n.IsMissing() {
		*errs = append(*errs, newSyntaxError(n, filePath))
		return
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		if child.HasError() || child.IsError() || child.IsMissing() {
			collect(child, filePath, errs)
		}
	}
}

func languageForPath(filePath string) *sitter.Language {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".swift":
		return swift.GetLanguage()
	default:
		return nil
	}
}
