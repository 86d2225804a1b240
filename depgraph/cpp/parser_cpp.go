package cpp

import (
	"context"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/cpp"
)

// IncludeKind distinguishes between system and local includes.
type IncludeKind int

const (
	IncludeLocal IncludeKind = iota
	IncludeSystem
)

func (k IncludeKind) String() string {
	if k == IncludeSystem {
		return "system"
	}
	return "local"
}

// Include represents a C++ include directive.
type Include struct {
	Path string
	Kind IncludeKind
	// Line is the 1-based source line. Zero when unknown.
	Line int
}

// ParseCppIncludes parses C++ source code and extracts includes.
func ParseCppIncludes(sourceCode []byte) ([]Include, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(cpp.GetLanguage())

	tree, err := parser.ParseCtx(context.Background(), nil, sourceCode)
	if err != nil {
		return nil, fmt.Errorf("failed to parse C++ code: %w", err)
	}
	defer tree.Close()

	return extractIncludes(tree.RootNode(), sourceCode), nil
}

// UnexpandedIncludes returns the local includes in sourceCode whose lines the
// strict directive matcher rejects. Such lines are copied through verbatim by
// the expander, which is rarely what the author intended.
func UnexpandedIncludes(sourceCode []byte) ([]Include, error) {
	includes, err := ParseCppIncludes(sourceCode)
	if err != nil {
		return nil, err
	}

	lines := strings.Split(string(sourceCode), "\n")
	var missed []Include
	for _, inc := range includes {
		if inc.Kind != IncludeLocal || inc.Line < 1 || inc.Line > len(lines) {
			continue
		}
		if _, ok := MatchDirective(lines[inc.Line-1]); !ok {
			missed = append(missed, inc)
		}
	}
	return missed, nil
}

func extractIncludes(rootNode *sitter.Node, sourceCode []byte) []Include {
	var includes []Include

	var walk func(*sitter.Node)
	walk = func(n *sitter.Node) {
		if n == nil {
			return
		}

		if n.Type() == "preproc_include" {
			if inc := extractIncludeFromNode(n, sourceCode); inc.Path != "" {
				inc.Line = int(n.StartPoint().Row) + 1
				includes = append(includes, inc)
			}
		}

		for i := 0; i < int(n.ChildCount()); i++ {
			walk(n.Child(i))
		}
	}

	walk(rootNode)
	return includes
}

func extractIncludeFromNode(node *sitter.Node, sourceCode []byte) Include {
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		if child == nil {
			continue
		}
		switch child.Type() {
		case "string_literal":
			return Include{Path: cleanStringLiteral(child.Content(sourceCode)), Kind: IncludeLocal}
		case "system_lib_string":
			return Include{Path: cleanSystemInclude(child.Content(sourceCode)), Kind: IncludeSystem}
		}
	}

	return Include{}
}

func cleanStringLiteral(raw string) string {
	return strings.Trim(raw, "\"' ")
}

func cleanSystemInclude(raw string) string {
	trimmed := strings.TrimSpace(raw)
	trimmed = strings.TrimPrefix(trimmed, "<")
	trimmed = strings.TrimSuffix(trimmed, ">")
	return strings.TrimSpace(trimmed)
}
