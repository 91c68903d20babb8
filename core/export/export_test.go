package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"opencosts-api/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func sampleRows() []domain.ProviderRow {
	latency := 0.5
	return []domain.ProviderRow{
		{
			ModelName:        "Anthropic: Claude Sonnet 4",
			ModelURL:         "https://openrouter.ai/anthropic/claude-sonnet-4",
			ModelID:          "anthropic/claude-sonnet-4",
			Provider:         "Anthropic",
			ContextLength:    intPtr(200000),
			PriceInputToken:  strPtr("0.000003"),
			PriceOutputToken: strPtr("0.000015"),
			Latency:          &latency,
			CreationDate:     strPtr("May 22, 2025"),
		},
		{
			ModelName: "Google: Gemini 2.5 Pro, preview",
			ModelURL:  "https://openrouter.ai/google/gemini-2.5-pro",
			ModelID:   "google/gemini-2.5-pro",
			Provider:  "Google Vertex",
		},
	}
}

func TestWriteCSV_DefaultIncludesCreationDate(t *testing.T) {
	var buf bytes.Buffer

	err := WriteCSV(&buf, sampleRows())

	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Model name,Model URL,OpenRouter model ID,Provider,Context length,Price/input token,Price/output token,Latency,Throughput,Creation date", lines[0])
	assert.Equal(t, `Anthropic: Claude Sonnet 4,https://openrouter.ai/anthropic/claude-sonnet-4,anthropic/claude-sonnet-4,Anthropic,200000,0.000003,0.000015,0.5,,"May 22, 2025"`, lines[1])
	assert.Equal(t, `"Google: Gemini 2.5 Pro, preview",https://openrouter.ai/google/gemini-2.5-pro,google/gemini-2.5-pro,Google Vertex,,,,,,`, lines[2])
}

func TestWriteCSV_WithoutCreationDate(t *testing.T) {
	var buf bytes.Buffer

	err := WriteCSV(&buf, sampleRows()[:1], WithCreationDate(false))

	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.False(t, strings.Contains(lines[0], CreationDateColumn))
	assert.Equal(t, 9, strings.Count(lines[1], ",")+1)
}

func TestWriteCSV_HeaderOnlyForNoRows(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, WriteCSV(&buf, nil))

	assert.Equal(t, strings.Join(Header(), ",")+"\n", buf.String())
}

func TestToAuthorEntries(t *testing.T) {
	authors := ToAuthorEntries(sampleRows())

	require.Len(t, authors, 2)
	assert.Equal(t, "Anthropic", authors[0].Name)
	assert.Equal(t, "Google", authors[1].Name)

	entry := authors[0].Models[0].Providers[0]
	assert.Equal(t, "200000", entry.ContextLength)
	assert.Equal(t, "0.5", entry.Latency)
	assert.Equal(t, "", entry.Throughput)
	assert.Equal(t, "May 22, 2025", entry.CreationDate)

	data, err := json.Marshal(authors[1].Models[0].Providers[0])
	require.NoError(t, err)
	var decoded map[string]string
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "Google Vertex", decoded["Provider"])
	assert.Equal(t, "", decoded["Context length"])
	assert.Equal(t, "", decoded["Price/input token"])
	assert.Contains(t, decoded, "OpenRouter model ID")
}

func TestToProviderEntry_ZeroContextRendersEmpty(t *testing.T) {
	entry := ToProviderEntry(domain.ProviderRow{Provider: "p", ContextLength: intPtr(0)})

	assert.Equal(t, "", entry.ContextLength)
}

func TestFormatReport(t *testing.T) {
	var buf bytes.Buffer
	snapshot := &domain.Snapshot{
		Models: []domain.DiscoveredModel{{ModelID: "anthropic/claude-sonnet-4"}, {ModelID: "google/gemini-2.5-pro"}},
		Rows:   sampleRows(),
	}

	require.NoError(t, FormatReport(&buf, snapshot))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "Found 2 matching models; emitting 2 provider rows.\n\n"))
	assert.Contains(t, out, "Anthropic: Claude Sonnet 4 |    Anthropic | ctx=200000 | in=0.000003 | out=0.000015 | lat=0.5 | tps=- | https://openrouter.ai/anthropic/claude-sonnet-4")
	assert.Contains(t, out, "ctx=- | in=- | out=-")
}

func TestShorten(t *testing.T) {
	assert.Equal(t, "a b", shorten("a   b", 10))
	assert.Equal(t, "abcdefg...", shorten("abcdefghijklmnop", 10))
}
