// Package gemini provides LLM-backed analysis of extracted political
// documents using Google Gemini.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/politext"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// Ensure Analyzer implements politext.Analyzer at compile time.
var _ politext.Analyzer = (*Analyzer)(nil)

// Analyzer implements politext.Analyzer using Google Gemini.
type Analyzer struct {
	client *genai.Client
	docs   politext.DocumentService
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer(client *genai.Client, docs politext.DocumentService) *Analyzer {
	return &Analyzer{client: client, docs: docs}
}

// Analyze answers a natural language question about the stored corpus.
func (a *Analyzer) Analyze(ctx context.Context, question string) (string, error) {
	if question == "" {
		return "", politext.Errorf(politext.EINVALID, "question required")
	}

	docs, err := a.docs.FindDocuments(ctx, politext.DocumentFilter{SortBy: politext.SortByPosition})
	if err != nil {
		return "", err
	}
	if len(docs) == 0 {
		return "", politext.Errorf(politext.ENOTFOUND, "no documents stored")
	}

	prompt := BuildUserPrompt(docs, question)
	config := BuildConfig()

	result, err := a.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", politext.Errorf(politext.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.4)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are a political analyst answering questions about a corpus of extracted web documents. Answer based only on the documents provided. If the answer is not in the documents, say so.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildUserPrompt builds the user prompt containing documents and question.
func BuildUserPrompt(docs []*politext.Document, question string) string {
	var sb strings.Builder
	sb.WriteString("<documents>\n")
	for i, doc := range docs {
		title := doc.Title
		if title == "" {
			title = doc.SourceURL
		}
		sb.WriteString("<document>\n")
		fmt.Fprintf(&sb, "<index>%d</index>\n", i+1)
		fmt.Fprintf(&sb, "<title>%s</title>\n", title)
		fmt.Fprintf(&sb, "<source>%s</source>\n", doc.SourceURL)
		fmt.Fprintf(&sb, "<content>%s</content>\n", doc.Content)
		sb.WriteString("</document>\n")
	}
	sb.WriteString("</documents>\n\n")
	fmt.Fprintf(&sb, "Question: %s", question)
	return sb.String()
}
