package deck

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
	"sync"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"golang.org/x/sync/errgroup"

	"github.com/vanderheijden86/podium/pkg/debug"
	"github.com/vanderheijden86/podium/pkg/metrics"
)

// The parser configuration never changes; goldmark parsers are safe to
// share because Parse keeps per-call state in the reader.
var (
	markdownParserInstance goldmark.Markdown
	markdownParserOnce     sync.Once
)

func getMarkdownParser() goldmark.Markdown {
	markdownParserOnce.Do(func() {
		markdownParserInstance = goldmark.New()
	})
	return markdownParserInstance
}

// noteComment matches <!-- notes: ... --> and <!-- note: ... -->.
var noteComment = regexp.MustCompile(`(?is)<!--\s*notes?\s*:\s*(.*?)\s*-->`)

// LoadFile reads and parses a markdown deck from disk.
func LoadFile(path string) (*Registry, Notes, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading deck: %w", err)
	}
	reg, notes, err := Parse(data)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return reg, notes, nil
}

// Bundle is a parsed deck plus its merged speaker notes.
type Bundle struct {
	Registry *Registry
	Notes    Notes
}

// LoadBundle loads the deck and, when notesPath is non-empty, a YAML notes
// sidecar. Both files are read concurrently; sidecar entries override
// notes embedded in the deck.
func LoadBundle(ctx context.Context, deckPath, notesPath string) (Bundle, error) {
	defer debug.LogEnterExit("deck.LoadBundle")()
	defer metrics.Timer(metrics.DeckLoad)()

	var (
		reg     *Registry
		inline  Notes
		sidecar Notes
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		var err error
		reg, inline, err = LoadFile(deckPath)
		return err
	})
	if notesPath != "" {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			var err error
			sidecar, err = LoadNotesFile(notesPath)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return Bundle{}, err
	}

	debug.Log("loaded %d slides, %d inline notes, %d sidecar notes", reg.Len(), len(inline), len(sidecar))
	return Bundle{Registry: reg, Notes: inline.Merge(sidecar)}, nil
}

// Parse splits a markdown document into slides. Slides are separated by
// lines consisting solely of "---" outside fenced code blocks; blank
// chunks are dropped. Speaker notes come from <!-- notes: ... --> comments
// and are keyed by 1-based slide number.
func Parse(source []byte) (*Registry, Notes, error) {
	defer metrics.Timer(metrics.DeckParse)()

	var slides []Slide
	notes := make(Notes)

	chunks, err := splitSlides(source)
	if err != nil {
		return nil, nil, fmt.Errorf("splitting slides: %w", err)
	}
	for _, chunk := range chunks {
		body := chunk
		var noteParts []string
		for _, m := range noteComment.FindAllStringSubmatch(body, -1) {
			if s := strings.TrimSpace(m[1]); s != "" {
				noteParts = append(noteParts, s)
			}
		}
		body = strings.TrimSpace(noteComment.ReplaceAllString(body, ""))
		if body == "" && len(noteParts) == 0 {
			continue
		}

		slides = append(slides, Slide{
			Title: firstHeading([]byte(body), 1),
			Body:  body,
		})
		if len(noteParts) > 0 {
			notes[len(slides)] = strings.Join(noteParts, "\n\n")
		}
	}

	reg, err := NewRegistry(slides)
	if err != nil {
		return nil, nil, err
	}
	return reg, notes, nil
}

// splitSlides cuts source at separator lines, ignoring separators inside
// ``` or ~~~ fences. Lines may be arbitrarily long.
func splitSlides(source []byte) ([]string, error) {
	var (
		chunks  []string
		current strings.Builder
		fence   string
	)

	reader := bufio.NewReader(bytes.NewReader(source))
	for {
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
		if line == "" && err != nil {
			break
		}
		line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
		trimmed := strings.TrimSpace(line)

		switch {
		case fence != "":
			if strings.HasPrefix(trimmed, fence) {
				fence = ""
			}
		case strings.HasPrefix(trimmed, "```"):
			fence = "```"
		case strings.HasPrefix(trimmed, "~~~"):
			fence = "~~~"
		case trimmed == "---":
			chunks = append(chunks, current.String())
			current.Reset()
			continue
		}

		current.WriteString(line)
		current.WriteByte('\n')
	}
	chunks = append(chunks, current.String())
	return chunks, nil
}

// firstHeading returns the text of the first heading of the given level.
func firstHeading(source []byte, level int) string {
	doc := getMarkdownParser().Parser().Parse(text.NewReader(source))

	var title string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok || h.Level != level {
			return ast.WalkContinue, nil
		}
		title = strings.TrimSpace(inlineText(h, source))
		return ast.WalkStop, nil
	})
	return title
}

// inlineText concatenates the literal text beneath n.
func inlineText(n ast.Node, source []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(child ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch c := child.(type) {
		case *ast.Text:
			b.Write(c.Segment.Value(source))
			if c.SoftLineBreak() || c.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(c.Value)
		}
		return ast.WalkContinue, nil
	})
	return b.String()
}
