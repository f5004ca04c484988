package persona

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amplifyai/amplify-backend/internal/judgment"
	"github.com/amplifyai/amplify-backend/internal/report"
)

func TestDetectHighConfidence(t *testing.T) {
	text := "We are a startup backed by top venture funds. Our founding team raised a seed round through Y Combinator."

	det := Detect(text)

	assert.Equal(t, PersonaStartupFounder, det.Persona)
	assert.Equal(t, ConfidenceHigh, det.Confidence)
	assert.GreaterOrEqual(t, len(det.SignalsFound), 3)
}

func TestDetectMediumConfidence(t *testing.T) {
	// Two e-commerce signals, nothing else.
	det := Detect("Browse the shop and head to checkout.")

	assert.Equal(t, PersonaEcommerceOwner, det.Persona)
	assert.Equal(t, ConfidenceMedium, det.Confidence)
}

func TestDetectFallbackOnNoSignals(t *testing.T) {
	det := Detect("Nothing to see here.")

	assert.Equal(t, PersonaFallback, det.Persona)
	assert.Equal(t, ConfidenceLow, det.Confidence)
	assert.Empty(t, det.SignalsFound)
}

func TestDetectFallbackOnSingleWeakSignal(t *testing.T) {
	det := Detect("We offer coaching.")

	assert.Equal(t, PersonaFallback, det.Persona)
	assert.Equal(t, ConfidenceLow, det.Confidence)
}

func TestDetectCloseRaceIsNotHighConfidence(t *testing.T) {
	// Three SaaS signals vs two e-commerce signals: 3 < 2*2, so medium.
	text := "Our platform has an api and a dashboard. Visit the shop and checkout."

	det := Detect(text)

	assert.Equal(t, PersonaSaaSProduct, det.Persona)
	assert.Equal(t, ConfidenceMedium, det.Confidence)
}

func TestBrandName(t *testing.T) {
	assert.Equal(t, "Nike", BrandName("https://www.nike.com/us"))
	assert.Equal(t, "Acme-dental", BrandName("acme-dental.com"))
	assert.Equal(t, "Unknown Brand", BrandName("://not a url"))
}

func TestURLHashCanonicalizes(t *testing.T) {
	variants := []string{
		"https://www.acme.com/",
		"http://acme.com",
		"ACME.com",
		"acme.com/",
	}
	want := URLHash("acme.com")
	for _, v := range variants {
		assert.Equal(t, want, URLHash(v), v)
	}
	assert.Len(t, want, 16)
	assert.NotEqual(t, want, URLHash("other.com"))
}

func TestCacheGetSetAndTTL(t *testing.T) {
	c := NewCache(time.Minute, 10)
	now := time.Unix(1000, 0)
	c.now = func() time.Time { return now }

	c.SetReady("h1", FallbackCopy(Context{Industry: "Dental"}))

	e, ok := c.Get("h1")
	require.True(t, ok)
	assert.Equal(t, EntryReady, e.Status)
	require.NotNil(t, e.Copy)

	now = now.Add(2 * time.Minute)
	_, ok = c.Get("h1")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}

func TestCacheStatusTransitions(t *testing.T) {
	c := NewCache(time.Minute, 10)

	c.SetProcessing("h1")
	e, ok := c.Get("h1")
	require.True(t, ok)
	assert.Equal(t, EntryProcessing, e.Status)
	assert.Nil(t, e.Copy)

	c.SetError("h1")
	e, _ = c.Get("h1")
	assert.Equal(t, EntryError, e.Status)
}

func TestCacheEvictsOldestPastCapacity(t *testing.T) {
	c := NewCache(time.Hour, 1000)
	now := time.Unix(1000, 0)
	c.now = func() time.Time { return now }

	for i := 0; i < 1000; i++ {
		c.SetProcessing(fmt.Sprintf("h%04d", i))
		now = now.Add(time.Millisecond)
	}
	require.Equal(t, 1000, c.Len())

	c.SetProcessing("overflow")

	assert.Equal(t, 901, c.Len())
	_, ok := c.Get("h0000")
	assert.False(t, ok)
	_, ok = c.Get("h0999")
	assert.True(t, ok)
	_, ok = c.Get("overflow")
	assert.True(t, ok)
}

type fakeProvider struct {
	name     string
	response string
	err      error
}

func (f *fakeProvider) Name() string { return f.name }
func (f *fakeProvider) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	return f.response, f.err
}
func (f *fakeProvider) Close() error { return nil }

const validCopy = `{
	"messaging": {
		"pain_hook": "Patients are asking ChatGPT for dentists and hearing someone else's name.",
		"context_why": "Your site lacks the structure AI assistants parse.",
		"dream_outcome": "Become the practice AI recommends first.",
		"competitor_line": "3 nearby practices already outrank you.",
		"cta_button": "Claim My Fix Plan",
		"cta_subtext": "Takes 2 minutes.",
		"urgency_line": "Only 4 audit slots left this week."
	},
	"recovery_causes": [
		{"title": "Add FAQ schema", "priority": "high", "description": "Mark up common questions.", "impact_metric": "AI Citations", "status": "pending"}
	]
}`

func TestGenerateUsesProvider(t *testing.T) {
	g := NewGenerator([]judgment.Provider{&fakeProvider{name: "groq", response: validCopy}}, time.Second, false)

	out := g.Generate(context.Background(), Context{Industry: "Dental", Detection: Detection{Persona: PersonaLocalBusiness}})

	assert.Contains(t, out.Messaging.PainHook, "ChatGPT")
	require.Len(t, out.RecoveryCauses, 1)
	assert.Equal(t, report.PriorityHigh, out.RecoveryCauses[0].Priority)
}

func TestGenerateFallsBackAcrossProviders(t *testing.T) {
	g := NewGenerator([]judgment.Provider{
		&fakeProvider{name: "groq", err: errors.New("down")},
		&fakeProvider{name: "gemini", response: validCopy},
	}, time.Second, false)

	out := g.Generate(context.Background(), Context{Industry: "Dental"})
	assert.Contains(t, out.Messaging.PainHook, "ChatGPT")
}

func TestGenerateFallbackCopyWhenAllFail(t *testing.T) {
	g := NewGenerator([]judgment.Provider{
		&fakeProvider{name: "groq", response: "not json"},
	}, time.Second, false)

	out := g.Generate(context.Background(), Context{Industry: "Dental"})

	assert.Equal(t, FallbackCopy(Context{Industry: "Dental"}), out)
	assert.Contains(t, out.Messaging.PainHook, "Dental")
	assert.Len(t, out.RecoveryCauses, 3)
}

func TestBuildCopyPromptFormatsPersonaAndIssues(t *testing.T) {
	c := Context{
		URL:            "https://acme-dental.com",
		BrandName:      "Acme-dental",
		Industry:       "Dental",
		Score:          62,
		Benchmark:      80,
		DetectedIssues: []string{"No FAQ schema", "Thin content"},
		Detection:      Detection{Persona: PersonaLocalBusiness},
	}

	prompt := buildCopyPrompt(c)

	assert.Contains(t, prompt, "LOCAL BUSINESS")
	assert.Contains(t, prompt, "62/100 (Benchmark: 80)")
	assert.Contains(t, prompt, "- No FAQ schema")
}

func TestBuildCopyPromptNoIssues(t *testing.T) {
	prompt := buildCopyPrompt(Context{Detection: Detection{Persona: PersonaFallback}})
	assert.Contains(t, prompt, "- No specific issues detected")
}
