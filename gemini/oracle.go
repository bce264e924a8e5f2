package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fwojciec/docdiff"
)

// Compile-time interface verification.
var _ docdiff.Oracle = (*Oracle)(nil)

// DefaultCallTimeout is the default timeout for a single oracle call.
const DefaultCallTimeout = 60 * time.Second

// Oracle implements docdiff.Oracle using Google Gemini. Its output is
// raw and untrusted; callers run it through docdiff.ValidateBlocks.
type Oracle struct {
	client  GenerativeClient
	model   string
	timeout time.Duration
}

// OracleOption configures an Oracle.
type OracleOption func(*Oracle)

// WithTimeout sets the timeout for API calls.
func WithTimeout(d time.Duration) OracleOption {
	return func(o *Oracle) {
		o.timeout = d
	}
}

// NewOracle creates a new Oracle.
func NewOracle(client GenerativeClient, model string, opts ...OracleOption) *Oracle {
	o := &Oracle{
		client:  client,
		model:   model,
		timeout: DefaultCallTimeout,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// ChangeBlocks asks the model to segment one chunk pair into
// change-block records.
func (o *Oracle) ChangeBlocks(ctx context.Context, oldChunk, newChunk string) ([]docdiff.RawBlock, error) {
	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	prompt := BuildChangeBlockPrompt(oldChunk, newChunk)
	contents := []*Content{{
		Parts: []*Part{{Text: prompt}},
	}}

	resp, err := o.client.GenerateContent(ctx, o.model, contents, BuildChangeBlockConfig())
	if err != nil {
		return nil, err
	}
	if resp == nil {
		return nil, fmt.Errorf("gemini: returned nil response")
	}

	var payload struct {
		ChangeBlocks []docdiff.RawBlock `json:"change_blocks"`
	}
	if err := json.Unmarshal([]byte(resp.Text), &payload); err != nil {
		return nil, fmt.Errorf("gemini: failed to parse response: %w", err)
	}
	if payload.ChangeBlocks == nil {
		return nil, fmt.Errorf("gemini: response missing change_blocks")
	}

	return payload.ChangeBlocks, nil
}

// BuildChangeBlockPrompt creates the user prompt for one chunk pair.
func BuildChangeBlockPrompt(oldChunk, newChunk string) string {
	return fmt.Sprintf(`Analyze the Original Text and the New Text below. Identify all changes and represent them as an ordered sequence of blocks.

Your response MUST be a single valid JSON object containing only the key "change_blocks", whose value is a JSON array of block objects. Each block object MUST have these keys:
- "status": one of "equal", "added", "deleted", "modified".
- "old_text": the relevant text from the Original Text; MUST be "" when status is "added".
- "new_text": the relevant text from the New Text; MUST be "" when status is "deleted".

Guidelines:
- Represent the entire content of both inputs through the sequence of blocks, without gaps or overlaps: concatenating old_text across all blocks must reconstruct the Original Text, and new_text the New Text.
- Preserve text segments and line breaks exactly, using \n inside JSON strings where needed.
- Use "modified" only for segments that correspond conceptually but differ internally (rephrasing, correction); prefer "deleted" plus "added" when text is unrelated.

--- Original Text ---
%s
--- End Original Text ---

--- New Text ---
%s
--- End New Text ---

Now provide the JSON output:`, oldChunk, newChunk)
}

// BuildChangeBlockConfig returns the GenerateContentConfig for
// change-block calls.
func BuildChangeBlockConfig() *GenerateContentConfig {
	temp := float32(0.1)
	return &GenerateContentConfig{
		SystemInstruction: &Content{
			Parts: []*Part{{
				Text: "You are a document comparison engine. You segment two versions of a text into an exhaustive, ordered sequence of change blocks and respond with JSON only.",
			}},
		},
		Temperature:      &temp,
		ResponseMIMEType: "application/json",
	}
}
