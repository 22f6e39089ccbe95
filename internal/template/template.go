package template

import (
	"fmt"
	"strings"
)

// Template is a compiled fragment: parsed tag structure bound to the
// fragment's name for error reporting. Templates are immutable once
// parsed and safe for concurrent rendering.
type Template struct {
	name  string
	nodes []node
}

// Name returns the fragment name the template was compiled from.
func (t *Template) Name() string {
	return t.name
}

type node interface{}

type textNode string

type varNode string

type sectionNode struct {
	key  string
	body []node
}

type partialNode string

// Parse compiles fragment source against the substitution grammar:
// {{key}} scalar substitution, {{#key}}...{{/key}} sections, and
// {{>fragment}} partial inclusion.
func Parse(name, source string) (*Template, error) {
	toks, err := lex(name, source)
	if err != nil {
		return nil, err
	}
	trimStandalone(toks)

	root := []node{}
	// Stack of open sections; the zero frame is the template root.
	type frame struct {
		key  string
		body []node
	}
	stack := []frame{{body: root}}

	for _, tok := range toks {
		top := &stack[len(stack)-1]
		switch tok.kind {
		case tokText:
			if tok.text != "" {
				top.body = append(top.body, textNode(tok.text))
			}
		case tokVar:
			top.body = append(top.body, varNode(tok.text))
		case tokPartial:
			top.body = append(top.body, partialNode(tok.text))
		case tokOpen:
			stack = append(stack, frame{key: tok.text})
		case tokClose:
			if len(stack) == 1 {
				return nil, fmt.Errorf("fragment %q: close tag {{/%s}} without open section", name, tok.text)
			}
			if top.key != tok.text {
				return nil, fmt.Errorf("fragment %q: section {{#%s}} closed by {{/%s}}", name, top.key, tok.text)
			}
			closed := sectionNode{key: top.key, body: top.body}
			stack = stack[:len(stack)-1]
			stack[len(stack)-1].body = append(stack[len(stack)-1].body, closed)
		}
	}

	if len(stack) > 1 {
		return nil, fmt.Errorf("fragment %q: unclosed section {{#%s}}", name, stack[len(stack)-1].key)
	}
	return &Template{name: name, nodes: stack[0].body}, nil
}

type tokKind int

const (
	tokText tokKind = iota
	tokVar
	tokOpen
	tokClose
	tokPartial
)

type token struct {
	kind tokKind
	text string
}

func lex(name, source string) ([]token, error) {
	var toks []token
	for {
		open := strings.Index(source, "{{")
		if open < 0 {
			toks = append(toks, token{kind: tokText, text: source})
			return toks, nil
		}
		toks = append(toks, token{kind: tokText, text: source[:open]})
		rest := source[open+2:]
		end := strings.Index(rest, "}}")
		if end < 0 {
			return nil, fmt.Errorf("fragment %q: unterminated tag", name)
		}
		tag := strings.TrimSpace(rest[:end])
		source = rest[end+2:]

		if tag == "" {
			return nil, fmt.Errorf("fragment %q: empty tag", name)
		}
		switch tag[0] {
		case '#':
			toks = append(toks, token{kind: tokOpen, text: strings.TrimSpace(tag[1:])})
		case '/':
			toks = append(toks, token{kind: tokClose, text: strings.TrimSpace(tag[1:])})
		case '>':
			toks = append(toks, token{kind: tokPartial, text: strings.TrimSpace(tag[1:])})
		default:
			toks = append(toks, token{kind: tokVar, text: tag})
		}
	}
}

// trimStandalone removes the surrounding whitespace of section and
// partial tags that sit alone on a line, so a {{#key}} line contributes
// no blank line to the output. Scalar tags are always left inline.
// The lexer guarantees text tokens (possibly empty) on both sides of
// every tag.
func trimStandalone(toks []token) {
	standalone := make([]bool, len(toks))
	for i := range toks {
		k := toks[i].kind
		if k != tokOpen && k != tokClose && k != tokPartial {
			continue
		}

		// The tag must be first on its line. An empty preceding text
		// token means the previous tag ends immediately before this
		// one; that still counts when the previous tag owned its line.
		atStart := false
		indent := 0
		prev := toks[i-1].text
		if prev == "" {
			atStart = i == 1 || standalone[i-2]
		} else {
			tail := prev[strings.LastIndexByte(prev, '\n')+1:]
			if strings.TrimLeft(tail, " \t") == "" && (strings.ContainsRune(prev, '\n') || i == 1) {
				atStart = true
				indent = len(tail)
			}
		}
		if !atStart {
			continue
		}

		// And last on its line: only whitespace up to the next newline
		// or the end of the fragment.
		next := toks[i+1].text
		rest := strings.TrimLeft(next, " \t")
		cut := -1
		switch {
		case rest == "" && i+1 == len(toks)-1:
			cut = len(next)
		case strings.HasPrefix(rest, "\n"):
			cut = len(next) - len(rest) + 1
		}
		if cut < 0 {
			continue
		}

		standalone[i] = true
		toks[i+1].text = next[cut:]
		if indent > 0 {
			toks[i-1].text = prev[:len(prev)-indent]
		}
	}
}

// partialResolver resolves {{>name}} inclusions at render time.
type partialResolver interface {
	partial(name string) (*Template, error)
}

// Render substitutes the dictionary into the template. The partials
// resolver may be nil when the fragment contains no inclusions.
func (t *Template) Render(dict Dict, partials partialResolver) (string, error) {
	var sb strings.Builder
	if err := renderNodes(t.name, t.nodes, &sb, []Dict{dict}, partials); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func renderNodes(name string, nodes []node, sb *strings.Builder, scopes []Dict, partials partialResolver) error {
	for _, n := range nodes {
		switch n := n.(type) {
		case textNode:
			sb.WriteString(string(n))

		case varNode:
			v, ok := lookup(scopes, string(n))
			if !ok {
				return fmt.Errorf("fragment %q: undefined key %q", name, string(n))
			}
			s, ok := v.(String)
			if !ok {
				return fmt.Errorf("fragment %q: key %q is a %s, expected scalar", name, string(n), kindOf(v))
			}
			sb.WriteString(string(s))

		case sectionNode:
			v, ok := lookup(scopes, n.key)
			if !ok {
				return fmt.Errorf("fragment %q: undefined section key %q", name, n.key)
			}
			switch v := v.(type) {
			case Bool:
				if v {
					if err := renderNodes(name, n.body, sb, scopes, partials); err != nil {
						return err
					}
				}
			case List:
				for _, item := range v {
					if err := renderNodes(name, n.body, sb, append(scopes, item), partials); err != nil {
						return err
					}
				}
			case Dict:
				if err := renderNodes(name, n.body, sb, append(scopes, v), partials); err != nil {
					return err
				}
			default:
				return fmt.Errorf("fragment %q: section key %q is a %s, expected sequence, boolean, or dictionary", name, n.key, kindOf(v))
			}

		case partialNode:
			if partials == nil {
				return fmt.Errorf("fragment %q: no resolver for partial %q", name, string(n))
			}
			sub, err := partials.partial(string(n))
			if err != nil {
				return fmt.Errorf("fragment %q: %w", name, err)
			}
			if err := renderNodes(sub.name, sub.nodes, sb, scopes, partials); err != nil {
				return err
			}
		}
	}
	return nil
}

// lookup resolves a key against the scope chain, innermost first.
func lookup(scopes []Dict, key string) (Value, bool) {
	for i := len(scopes) - 1; i >= 0; i-- {
		if v, ok := scopes[i][key]; ok {
			return v, true
		}
	}
	return nil, false
}
