package translation

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGoogleProvider_Translate(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		if query.Get("sl") != "en" || query.Get("tl") != "fr" {
			t.Errorf("unexpected language pair: sl=%q tl=%q", query.Get("sl"), query.Get("tl"))
		}
		if query.Get("q") != "Hello world. How are you?" {
			t.Errorf("unexpected query text: %q", query.Get("q"))
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[[["Bonjour le monde. ","Hello world. ",null,null,3],["Comment allez-vous ?","How are you?",null,null,3]],null,"en"]`))
	}))
	defer server.Close()

	provider := NewGoogleProviderWithEndpoint(server.URL)
	resp, err := provider.Translate(context.Background(), TranslateRequest{
		Text:       "Hello world. How are you?",
		SourceLang: "en",
		TargetLang: "fr",
	})
	if err != nil {
		t.Fatalf("translate: %v", err)
	}
	if resp.Text != "Bonjour le monde. Comment allez-vous ?" {
		t.Fatalf("unexpected joined translation: %q", resp.Text)
	}
	if resp.ProviderName != "google" {
		t.Fatalf("unexpected provider name: %q", resp.ProviderName)
	}
}

func TestGoogleProvider_ErrorStatus(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "slow down", http.StatusTooManyRequests)
	}))
	defer server.Close()

	provider := NewGoogleProviderWithEndpoint(server.URL)
	_, err := provider.Translate(context.Background(), TranslateRequest{
		Text:       "Hello world",
		SourceLang: "en",
		TargetLang: "fr",
	})
	if err == nil {
		t.Fatal("expected an error for a non-2xx response")
	}
}

func TestGoogleProvider_RequiresTarget(t *testing.T) {
	t.Parallel()

	provider := NewGoogleProvider()
	if _, err := provider.Translate(context.Background(), TranslateRequest{Text: "hello"}); err == nil {
		t.Fatal("expected an error when the target language is missing")
	}
}

func TestGoogleProvider_DefaultsSourceToAuto(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("sl"); got != "auto" {
			t.Errorf("expected sl=auto for an unknown source, got %q", got)
		}
		_, _ = w.Write([]byte(`[[["hola","hello",null,null,3]],null,"en"]`))
	}))
	defer server.Close()

	provider := NewGoogleProviderWithEndpoint(server.URL)
	resp, err := provider.Translate(context.Background(), TranslateRequest{
		Text:       "hello",
		TargetLang: "es",
	})
	if err != nil {
		t.Fatalf("translate: %v", err)
	}
	if resp.Text != "hola" {
		t.Fatalf("unexpected translation: %q", resp.Text)
	}
}
